// Copyright 2025 Quillbooks GmbH
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bootstrap

import "github.com/looplab/fsm"

// Setup sequence states. The order is a strict total order; every state has
// exactly one successor on the happy path plus the abort transition.
const (
	StateNotInvoked            = "not_invoked"
	StateDispatched            = "dispatched"
	StateFilesystemReady       = "filesystem_ready"
	StateAssetsSwapped         = "assets_swapped"
	StatePermissionsNormalized = "permissions_normalized"
	StateProdOptimized         = "prod_optimized"
	StateFirstRunChecked       = "first_run_checked"
	StateSeeded                = "seeded"
	StateAccountCreated        = "account_created"
	StateReady                 = "ready"
	StateAborted               = "aborted"
)

// Setup sequence events.
const (
	eventDispatch             = "dispatch"
	eventPrepareFilesystem    = "prepare_filesystem"
	eventSwapAssets           = "swap_assets"
	eventNormalizePermissions = "normalize_permissions"
	eventOptimize             = "optimize"
	eventCheckFirstRun        = "check_first_run"
	eventSeed                 = "seed"
	eventCreateAccount        = "create_account"
	eventFinish               = "finish"
	eventAbort                = "abort"
)

// newMachine builds the sequence state machine. "finish" has three sources:
// after permission normalization outside production mode, after the first-run
// check when the instance is already initialized, and after account creation
// on a true first run.
func newMachine() *fsm.FSM {
	return fsm.NewFSM(
		StateNotInvoked,
		fsm.Events{
			{Name: eventDispatch, Src: []string{StateNotInvoked}, Dst: StateDispatched},
			{Name: eventPrepareFilesystem, Src: []string{StateDispatched}, Dst: StateFilesystemReady},
			{Name: eventSwapAssets, Src: []string{StateFilesystemReady}, Dst: StateAssetsSwapped},
			{Name: eventNormalizePermissions, Src: []string{StateAssetsSwapped}, Dst: StatePermissionsNormalized},
			{Name: eventOptimize, Src: []string{StatePermissionsNormalized}, Dst: StateProdOptimized},
			{Name: eventCheckFirstRun, Src: []string{StateProdOptimized}, Dst: StateFirstRunChecked},
			{Name: eventSeed, Src: []string{StateFirstRunChecked}, Dst: StateSeeded},
			{Name: eventCreateAccount, Src: []string{StateSeeded}, Dst: StateAccountCreated},
			{Name: eventFinish, Src: []string{
				StatePermissionsNormalized,
				StateFirstRunChecked,
				StateAccountCreated,
			}, Dst: StateReady},
			{Name: eventAbort, Src: []string{
				StateNotInvoked,
				StateDispatched,
				StateFilesystemReady,
				StateAssetsSwapped,
				StatePermissionsNormalized,
				StateProdOptimized,
				StateFirstRunChecked,
				StateSeeded,
				StateAccountCreated,
			}, Dst: StateAborted},
		},
		fsm.Callbacks{},
	)
}

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

// Package dispatch decides what this invocation of the entry process is:
// the normal supervisor startup (run full setup first), a healthcheck, or an
// arbitrary command (debug shell and friends) that gets handed off untouched.
package dispatch

import "path/filepath"

// StartupMode is the enumerated invocation mode of the entry process.
type StartupMode string

const (
	// ModeDefault is the supervisor start signature: run the full setup
	// sequence, then hand off to the supervisor.
	ModeDefault StartupMode = "default"

	// ModeHealthcheck runs the liveness prober and exits.
	ModeHealthcheck StartupMode = "healthcheck"

	// ModePassThrough skips all setup and hands off to whatever was
	// invoked. This is the designed escape hatch for interactive and
	// debugging invocations.
	ModePassThrough StartupMode = "pass-through"
)

// Signature is the recognized default startup invocation, decomposed into
// its structural parts rather than compared as one string.
type Signature struct {
	// Command is the supervisor binary; matched on its base name so both
	// "supervisord" and an absolute path to it qualify.
	Command string

	// ConfigFlag and ConfigPath form the fixed configuration argument.
	ConfigFlag string
	ConfigPath string
}

// Matches reports whether args is structurally exactly this signature:
// three tokens, the command, the flag, the path, in that order. Supersets,
// reorderings and substitutions all fail the match.
func (s Signature) Matches(args []string) bool {
	if len(args) != 3 {
		return false
	}

	return filepath.Base(args[0]) == s.Command &&
		args[1] == s.ConfigFlag &&
		args[2] == s.ConfigPath
}

// Args returns the signature as an argv slice for handoff.
func (s Signature) Args() []string {
	return []string{s.Command, s.ConfigFlag, s.ConfigPath}
}

// Dispatcher decides the startup mode of an invocation.
type Dispatcher struct {
	defaultSignature Signature
	healthcheckToken string
}

// NewDispatcher creates a dispatcher recognizing the given default signature
// and healthcheck token.
func NewDispatcher(defaultSignature Signature, healthcheckToken string) *Dispatcher {
	return &Dispatcher{
		defaultSignature: defaultSignature,
		healthcheckToken: healthcheckToken,
	}
}

// Detect maps invocation arguments (argv without the entry process itself)
// to a startup mode.
func (d *Dispatcher) Detect(args []string) StartupMode {
	if d.defaultSignature.Matches(args) {
		return ModeDefault
	}

	if len(args) == 1 && args[0] == d.healthcheckToken {
		return ModeHealthcheck
	}

	return ModePassThrough
}

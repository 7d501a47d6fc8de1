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

import "errors"

var (
	// ErrMissingAdminCredentials indicates the first-run condition holds but
	// the bootstrap credentials are absent. An uninitialized instance must
	// not silently start serving in an unusable state, so this aborts the
	// sequence before anything is seeded.
	ErrMissingAdminCredentials = errors.New("first run requires both admin bootstrap email and password")
)

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

package database

import "errors"

var (
	// ErrPrimaryTableMissing indicates the primary table is absent even
	// though migrations have already run. That is never a legitimate state,
	// so it aborts the sequence instead of being read as "not first run".
	ErrPrimaryTableMissing = errors.New("primary table missing after migrations")
)

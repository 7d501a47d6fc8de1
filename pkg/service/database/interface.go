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

// Package database answers one question: has this installation ever been
// initialized? The answer is recomputed from the database on every qualifying
// startup instead of being cached in a marker file, so a restored volume or a
// wiped database always gets the right treatment.
package database

import "context"

// Detector probes the application's persistent store for the first-run
// condition: the primary table exists and holds no record yet.
type Detector interface {
	// FirstRun reports whether seeding and account bootstrap are still
	// outstanding. A probe that cannot execute returns an error; it never
	// guesses.
	FirstRun(ctx context.Context) (bool, error)
}

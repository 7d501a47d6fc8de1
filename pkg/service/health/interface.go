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

// Package health implements the container liveness probe: is the supervisor
// master process present? It runs in a separate short-lived invocation of
// this binary, after handoff has replaced the original process image.
package health

import "context"

// Prober checks whether the supervised service's master process is alive.
type Prober interface {
	// Check performs a single probe.
	Check(ctx context.Context) error

	// CheckWithRetry probes repeatedly within the retry budget and returns
	// the last error once the budget is exhausted.
	CheckWithRetry(ctx context.Context) error
}

// ProcessLister enumerates the names of currently running processes.
type ProcessLister interface {
	ProcessNames(ctx context.Context) ([]string, error)
}

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

package constants

import "time"

const (
	// HealthCheckTimeout bounds a single process-table scan.
	HealthCheckTimeout = 3 * time.Second

	// HealthCheckRetryInterval is the pause between prober attempts.
	HealthCheckRetryInterval = 2 * time.Second

	// HealthCheckMaxRetries is the retry budget before the prober gives up
	// and the container is reported unhealthy.
	HealthCheckMaxRetries = 3
)

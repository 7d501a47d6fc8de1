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

import (
	"context"
	"sync/atomic"
)

// MockDetector is a mock implementation of the Detector interface.
type MockDetector struct {
	// FirstRunResult is returned when FirstRunFunc is nil.
	FirstRunResult bool
	// FirstRunErr is returned when FirstRunFunc is nil.
	FirstRunErr error
	// FirstRunFunc overrides the canned result when set.
	FirstRunFunc func(ctx context.Context) (bool, error)

	probeCount atomic.Int64
}

// NewMockDetector creates a new MockDetector.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// ProbeCount returns how often FirstRun was invoked.
func (m *MockDetector) ProbeCount() int {
	return int(m.probeCount.Load())
}

// FirstRun mocks the first-run probe.
func (m *MockDetector) FirstRun(ctx context.Context) (bool, error) {
	m.probeCount.Add(1)

	if m.FirstRunFunc != nil {
		return m.FirstRunFunc(ctx)
	}

	return m.FirstRunResult, m.FirstRunErr
}

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

package health

import (
	"context"
	"sync/atomic"
)

// MockLister is a mock implementation of the ProcessLister interface.
type MockLister struct {
	// Names is returned when NamesFunc is nil.
	Names []string
	// Err is returned when NamesFunc is nil.
	Err error
	// NamesFunc overrides the canned result when set; it receives the
	// 1-based call number so tests can model a process appearing late.
	NamesFunc func(call int) ([]string, error)

	callCount atomic.Int64
}

// NewMockLister creates a new MockLister.
func NewMockLister(names ...string) *MockLister {
	return &MockLister{Names: names}
}

// CallCount returns how often ProcessNames was invoked.
func (m *MockLister) CallCount() int {
	return int(m.callCount.Load())
}

// ProcessNames mocks listing process names.
func (m *MockLister) ProcessNames(ctx context.Context) ([]string, error) {
	call := int(m.callCount.Add(1))

	if m.NamesFunc != nil {
		return m.NamesFunc(call)
	}

	return m.Names, m.Err
}

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

package console

import (
	"context"
	"sync"
)

// MockService is a mock implementation of the console Service interface.
// Calls are recorded in order; each command succeeds unless its Func is set.
type MockService struct {
	OptimizeFunc         func(ctx context.Context) error
	DiscoverPackagesFunc func(ctx context.Context) error
	MigrateFunc          func(ctx context.Context) error
	SeedFunc             func(ctx context.Context) error
	CreateAccountFunc    func(ctx context.Context, email string, password string) error

	// CreatedEmail and CreatedPassword capture the last CreateAccount args.
	CreatedEmail    string
	CreatedPassword string

	mutex sync.Mutex
	calls []string
}

// NewMockService creates a new MockService.
func NewMockService() *MockService {
	return &MockService{}
}

func (m *MockService) record(command string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.calls = append(m.calls, command)
}

// Calls returns the commands invoked so far, in order.
func (m *MockService) Calls() []string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	out := make([]string, len(m.calls))
	copy(out, m.calls)

	return out
}

// CallCount returns how often the given command was invoked.
func (m *MockService) CallCount(command string) int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	count := 0
	for _, c := range m.calls {
		if c == command {
			count++
		}
	}

	return count
}

// Optimize mocks the optimize command.
func (m *MockService) Optimize(ctx context.Context) error {
	m.record("optimize")
	if m.OptimizeFunc != nil {
		return m.OptimizeFunc(ctx)
	}

	return nil
}

// DiscoverPackages mocks the package discovery command.
func (m *MockService) DiscoverPackages(ctx context.Context) error {
	m.record("package:discover")
	if m.DiscoverPackagesFunc != nil {
		return m.DiscoverPackagesFunc(ctx)
	}

	return nil
}

// Migrate mocks the migration command.
func (m *MockService) Migrate(ctx context.Context) error {
	m.record("migrate")
	if m.MigrateFunc != nil {
		return m.MigrateFunc(ctx)
	}

	return nil
}

// Seed mocks the seed command.
func (m *MockService) Seed(ctx context.Context) error {
	m.record("db:seed")
	if m.SeedFunc != nil {
		return m.SeedFunc(ctx)
	}

	return nil
}

// CreateAccount mocks the account creation command.
func (m *MockService) CreateAccount(ctx context.Context, email string, password string) error {
	m.record("quill:create-account")

	m.mutex.Lock()
	m.CreatedEmail = email
	m.CreatedPassword = password
	m.mutex.Unlock()

	if m.CreateAccountFunc != nil {
		return m.CreateAccountFunc(ctx, email, password)
	}

	return nil
}

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

package filesystem

import (
	"context"
	"io/fs"
	"os"
	"sync"
)

// MockFileSystem is a mock implementation of the filesystem.Service interface.
// Each operation succeeds as a no-op unless its Func field is set, and every
// call is recorded so tests can assert on what ran (and what didn't).
type MockFileSystem struct {
	EnsureDirectoryFunc     func(ctx context.Context, path string) error
	PathExistsFunc          func(ctx context.Context, path string) (bool, error)
	ReadDirFunc             func(ctx context.Context, path string) ([]os.DirEntry, error)
	RemoveFunc              func(ctx context.Context, path string) error
	RemoveAllFunc           func(ctx context.Context, path string) error
	RenameFunc              func(ctx context.Context, oldPath, newPath string) error
	StatFunc                func(ctx context.Context, path string) (os.FileInfo, error)
	ChmodFunc               func(ctx context.Context, path string, mode os.FileMode) error
	ChownFunc               func(ctx context.Context, path string, user string, group string) error
	ChownRecursiveFunc      func(ctx context.Context, path string, user string, group string) error
	WalkFunc                func(ctx context.Context, root string, fn fs.WalkDirFunc) error
	ExecuteCommandFunc      func(ctx context.Context, name string, args ...string) ([]byte, error)
	ExecuteCommandInDirFunc func(ctx context.Context, dir string, name string, args ...string) ([]byte, error)

	mutex sync.Mutex
	calls []string
}

// NewMockFileSystem creates a new MockFileSystem instance.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{}
}

func (m *MockFileSystem) record(op string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.calls = append(m.calls, op)
}

// Calls returns the operations invoked so far, in order.
func (m *MockFileSystem) Calls() []string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	out := make([]string, len(m.calls))
	copy(out, m.calls)

	return out
}

// EnsureDirectory mocks creating a directory.
func (m *MockFileSystem) EnsureDirectory(ctx context.Context, path string) error {
	m.record("EnsureDirectory:" + path)
	if m.EnsureDirectoryFunc != nil {
		return m.EnsureDirectoryFunc(ctx, path)
	}

	return nil
}

// PathExists mocks checking path existence.
func (m *MockFileSystem) PathExists(ctx context.Context, path string) (bool, error) {
	m.record("PathExists:" + path)
	if m.PathExistsFunc != nil {
		return m.PathExistsFunc(ctx, path)
	}

	return false, nil
}

// ReadDir mocks reading a directory.
func (m *MockFileSystem) ReadDir(ctx context.Context, path string) ([]os.DirEntry, error) {
	m.record("ReadDir:" + path)
	if m.ReadDirFunc != nil {
		return m.ReadDirFunc(ctx, path)
	}

	return nil, nil
}

// Remove mocks removing a file.
func (m *MockFileSystem) Remove(ctx context.Context, path string) error {
	m.record("Remove:" + path)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, path)
	}

	return nil
}

// RemoveAll mocks removing a tree.
func (m *MockFileSystem) RemoveAll(ctx context.Context, path string) error {
	m.record("RemoveAll:" + path)
	if m.RemoveAllFunc != nil {
		return m.RemoveAllFunc(ctx, path)
	}

	return nil
}

// Rename mocks moving a file or directory.
func (m *MockFileSystem) Rename(ctx context.Context, oldPath, newPath string) error {
	m.record("Rename:" + oldPath + "->" + newPath)
	if m.RenameFunc != nil {
		return m.RenameFunc(ctx, oldPath, newPath)
	}

	return nil
}

// Stat mocks returning file info.
func (m *MockFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	m.record("Stat:" + path)
	if m.StatFunc != nil {
		return m.StatFunc(ctx, path)
	}

	return nil, os.ErrNotExist
}

// Chmod mocks changing file mode.
func (m *MockFileSystem) Chmod(ctx context.Context, path string, mode os.FileMode) error {
	m.record("Chmod:" + path)
	if m.ChmodFunc != nil {
		return m.ChmodFunc(ctx, path, mode)
	}

	return nil
}

// Chown mocks changing file ownership.
func (m *MockFileSystem) Chown(ctx context.Context, path string, user string, group string) error {
	m.record("Chown:" + path)
	if m.ChownFunc != nil {
		return m.ChownFunc(ctx, path, user, group)
	}

	return nil
}

// ChownRecursive mocks changing tree ownership.
func (m *MockFileSystem) ChownRecursive(ctx context.Context, path string, user string, group string) error {
	m.record("ChownRecursive:" + path)
	if m.ChownRecursiveFunc != nil {
		return m.ChownRecursiveFunc(ctx, path, user, group)
	}

	return nil
}

// Walk mocks walking a tree.
func (m *MockFileSystem) Walk(ctx context.Context, root string, fn fs.WalkDirFunc) error {
	m.record("Walk:" + root)
	if m.WalkFunc != nil {
		return m.WalkFunc(ctx, root, fn)
	}

	return nil
}

// ExecuteCommand mocks running a command.
func (m *MockFileSystem) ExecuteCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.record("ExecuteCommand:" + name)
	if m.ExecuteCommandFunc != nil {
		return m.ExecuteCommandFunc(ctx, name, args...)
	}

	return nil, nil
}

// ExecuteCommandInDir mocks running a command in a directory.
func (m *MockFileSystem) ExecuteCommandInDir(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	m.record("ExecuteCommandInDir:" + name)
	if m.ExecuteCommandInDirFunc != nil {
		return m.ExecuteCommandInDirFunc(ctx, dir, name, args...)
	}

	return nil, nil
}

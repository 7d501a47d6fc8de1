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
)

// Service provides an interface for filesystem operations
// This allows for easier testing and separation of concerns.
type Service interface {
	// EnsureDirectory creates a directory (and parents) if it doesn't exist
	EnsureDirectory(ctx context.Context, path string) error

	// PathExists checks if a file or directory exists at the given path
	PathExists(ctx context.Context, path string) (bool, error)

	// ReadDir reads a directory, returning all its directory entries.
	// Hidden (dot) entries are included like any other entry.
	ReadDir(ctx context.Context, path string) ([]os.DirEntry, error)

	// Remove removes a file or empty directory
	Remove(ctx context.Context, path string) error

	// RemoveAll removes a path and all its contents
	RemoveAll(ctx context.Context, path string) error

	// Rename renames (moves) a file or directory from oldPath to newPath.
	// This operation is atomic on the same filesystem mount.
	Rename(ctx context.Context, oldPath, newPath string) error

	// Stat returns file info
	Stat(ctx context.Context, path string) (os.FileInfo, error)

	// Chmod changes the mode of the named file
	Chmod(ctx context.Context, path string, mode os.FileMode) error

	// Chown changes the owner and group of the named file
	Chown(ctx context.Context, path string, user string, group string) error

	// ChownRecursive changes the owner and group of a whole tree
	ChownRecursive(ctx context.Context, path string, user string, group string) error

	// Walk visits every entry under root, including root itself
	Walk(ctx context.Context, root string, fn fs.WalkDirFunc) error

	// ExecuteCommand executes a command with context
	ExecuteCommand(ctx context.Context, name string, args ...string) ([]byte, error)

	// ExecuteCommandInDir executes a command with context from inside dir
	ExecuteCommandInDir(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
}

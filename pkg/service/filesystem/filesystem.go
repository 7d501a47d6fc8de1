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
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/quillbooks/quillbooks/bootstrap/pkg/metrics"
)

// DefaultService is the default implementation of Service, backed by the
// real filesystem.
type DefaultService struct{}

// NewDefaultService creates a new DefaultService.
func NewDefaultService() *DefaultService {
	return &DefaultService{}
}

// do runs op in a goroutine so a cancelled context stops the wait even while
// the underlying syscall is still in flight, and records the outcome.
func (s *DefaultService) do(ctx context.Context, opName string, op func() error) error {
	if err := ctx.Err(); err != nil {
		metrics.RecordFilesystemOp(opName, err)
		return err
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- op()
	}()

	select {
	case err := <-errCh:
		metrics.RecordFilesystemOp(opName, err)
		return err
	case <-ctx.Done():
		err := ctx.Err()
		metrics.RecordFilesystemOp(opName, err)
		return err
	}
}

// EnsureDirectory creates a directory if it doesn't exist.
func (s *DefaultService) EnsureDirectory(ctx context.Context, path string) error {
	err := s.do(ctx, "EnsureDirectory", func() error {
		return os.MkdirAll(path, 0o755)
	})
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	return nil
}

// PathExists checks if a path (file or directory) exists.
func (s *DefaultService) PathExists(ctx context.Context, path string) (bool, error) {
	exists := false

	err := s.do(ctx, "PathExists", func() error {
		// Lstat so dangling symlinks still count as present
		_, err := os.Lstat(path)
		if os.IsNotExist(err) {
			return nil
		}
		if err != nil {
			return err
		}
		exists = true

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to check if path %s exists: %w", path, err)
	}

	return exists, nil
}

// ReadDir reads a directory, returning all its directory entries.
func (s *DefaultService) ReadDir(ctx context.Context, path string) ([]os.DirEntry, error) {
	var entries []os.DirEntry

	err := s.do(ctx, "ReadDir", func() error {
		var err error
		entries, err = os.ReadDir(path)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	return entries, nil
}

// Remove removes a file or empty directory.
func (s *DefaultService) Remove(ctx context.Context, path string) error {
	return s.do(ctx, "Remove", func() error {
		return os.Remove(path)
	})
}

// RemoveAll removes a path and all its contents.
func (s *DefaultService) RemoveAll(ctx context.Context, path string) error {
	err := s.do(ctx, "RemoveAll", func() error {
		return os.RemoveAll(path)
	})
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	return nil
}

// Rename renames (moves) a file or directory from oldPath to newPath.
func (s *DefaultService) Rename(ctx context.Context, oldPath, newPath string) error {
	err := s.do(ctx, "Rename", func() error {
		return os.Rename(oldPath, newPath)
	})
	if err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", oldPath, newPath, err)
	}

	return nil
}

// Stat returns file info.
func (s *DefaultService) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	var info os.FileInfo

	err := s.do(ctx, "Stat", func() error {
		var err error
		info, err = os.Stat(path)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for %s: %w", path, err)
	}

	return info, nil
}

// Chmod changes the mode of the named file.
func (s *DefaultService) Chmod(ctx context.Context, path string, mode os.FileMode) error {
	err := s.do(ctx, "Chmod", func() error {
		return os.Chmod(path, mode)
	})
	if err != nil {
		return fmt.Errorf("failed to change mode of %s: %w", path, err)
	}

	return nil
}

// Chown changes the owner and group of the named file.
// Shells out because os.Chown needs numeric user/group IDs.
func (s *DefaultService) Chown(ctx context.Context, path string, user string, group string) error {
	err := s.do(ctx, "Chown", func() error {
		return exec.CommandContext(ctx, "chown", fmt.Sprintf("%s:%s", user, group), path).Run()
	})
	if err != nil {
		return fmt.Errorf("failed to change owner of %s to %s:%s: %w", path, user, group, err)
	}

	return nil
}

// ChownRecursive changes the owner and group of a whole tree.
func (s *DefaultService) ChownRecursive(ctx context.Context, path string, user string, group string) error {
	err := s.do(ctx, "ChownRecursive", func() error {
		return exec.CommandContext(ctx, "chown", "-R", fmt.Sprintf("%s:%s", user, group), path).Run()
	})
	if err != nil {
		return fmt.Errorf("failed to change owner of tree %s to %s:%s: %w", path, user, group, err)
	}

	return nil
}

// Walk visits every entry under root, including root itself.
func (s *DefaultService) Walk(ctx context.Context, root string, fn fs.WalkDirFunc) error {
	return s.do(ctx, "Walk", func() error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			return fn(path, d, err)
		})
	})
}

// ExecuteCommand executes a command with context.
func (s *DefaultService) ExecuteCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return s.ExecuteCommandInDir(ctx, "", name, args...)
}

// ExecuteCommandInDir executes a command with context from inside dir.
// An empty dir runs the command in the current working directory.
func (s *DefaultService) ExecuteCommandInDir(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmdStr := name
	if len(args) > 0 {
		cmdStr = fmt.Sprintf("%s %s", name, strings.Join(args, " "))
	}

	if err := ctx.Err(); err != nil {
		metrics.RecordFilesystemOp("ExecuteCommand", err)
		return nil, err
	}

	// exec.CommandContext already respects context cancellation
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	metrics.RecordFilesystemOp("ExecuteCommand", err)
	if err != nil {
		// Callers log the output on failure, so hand it back alongside the error.
		return output, fmt.Errorf("failed to execute command %q: %w", cmdStr, err)
	}

	return output, nil
}

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

package bootstrap

import (
	"context"
	"path/filepath"
)

// swapAssets promotes the staged asset set into the live serving directory:
// every current entry of the serving directory is removed, then every staging
// entry is moved over. ReadDir returns dot entries like any other, so hidden
// configuration files and hidden metadata directories move with the rest.
//
// An absent or empty staging directory makes this a no-op, which is what
// keeps repeated startups of the same image idempotent: the first qualifying
// start drains staging, every later start finds it empty.
//
// The swap is not atomic. A crash mid-swap leaves the serving directory
// partially populated; staging is image-local state, so the accepted
// recovery is recreating the container.
func (b *Bootstrap) swapAssets(ctx context.Context) error {
	exists, err := b.fs.PathExists(ctx, b.layout.StagingDir)
	if err != nil {
		return err
	}

	if !exists {
		b.logger.Debug("No staging directory, leaving serving directory untouched")

		return nil
	}

	staged, err := b.fs.ReadDir(ctx, b.layout.StagingDir)
	if err != nil {
		return err
	}

	if len(staged) == 0 {
		b.logger.Debug("Staging directory empty, leaving serving directory untouched")

		return nil
	}

	b.logger.Infof("Promoting %d staged entries into %s", len(staged), b.layout.ServingDir)

	if err := b.fs.EnsureDirectory(ctx, b.layout.ServingDir); err != nil {
		return err
	}

	live, err := b.fs.ReadDir(ctx, b.layout.ServingDir)
	if err != nil {
		return err
	}

	for _, entry := range live {
		if err := b.fs.RemoveAll(ctx, filepath.Join(b.layout.ServingDir, entry.Name())); err != nil {
			return err
		}
	}

	for _, entry := range staged {
		oldPath := filepath.Join(b.layout.StagingDir, entry.Name())
		newPath := filepath.Join(b.layout.ServingDir, entry.Name())

		if err := b.fs.Rename(ctx, oldPath, newPath); err != nil {
			return err
		}
	}

	return nil
}

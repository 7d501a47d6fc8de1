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
	"io/fs"

	"github.com/quillbooks/quillbooks/bootstrap/pkg/constants"
)

// normalizePermissions hands the serving and storage trees to the service
// runtime user and normalizes mode bits: regular files become group-writable
// and never executable, directories stay traversable by everyone. It runs
// unconditionally after the swap, whether or not the swap changed anything.
func (b *Bootstrap) normalizePermissions(ctx context.Context) error {
	for _, root := range []string{b.layout.ServingDir, b.layout.StorageDir} {
		exists, err := b.fs.PathExists(ctx, root)
		if err != nil {
			return err
		}

		if !exists {
			continue
		}

		if err := b.fs.ChownRecursive(ctx, root, b.layout.Owner, b.layout.Group); err != nil {
			return err
		}

		if err := b.normalizeModes(ctx, root); err != nil {
			return err
		}
	}

	return nil
}

// normalizeModes applies the mode policy to every entry under root.
// Symlinks are left alone; chmod would follow them out of the tree.
func (b *Bootstrap) normalizeModes(ctx context.Context, root string) error {
	return b.fs.Walk(ctx, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		switch {
		case d.IsDir():
			return b.fs.Chmod(ctx, path, constants.NormalDirMode)
		case d.Type().IsRegular():
			return b.fs.Chmod(ctx, path, constants.NormalFileMode)
		default:
			return nil
		}
	})
}

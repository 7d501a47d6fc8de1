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

package filesystem_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quillbooks/quillbooks/bootstrap/pkg/service/filesystem"
)

var _ = Describe("DefaultService", func() {
	var (
		ctx    context.Context
		tmpDir string
		svc    *filesystem.DefaultService
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		tmpDir, err = os.MkdirTemp("", "filesystem-test-*")
		Expect(err).NotTo(HaveOccurred())

		svc = filesystem.NewDefaultService()
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	Describe("EnsureDirectory", func() {
		It("creates nested directories and tolerates existing ones", func() {
			dir := filepath.Join(tmpDir, "a", "b", "c")

			Expect(svc.EnsureDirectory(ctx, dir)).To(Succeed())

			info, err := os.Stat(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.IsDir()).To(BeTrue())

			// Second call must be a no-op, not an error
			Expect(svc.EnsureDirectory(ctx, dir)).To(Succeed())
		})
	})

	Describe("PathExists", func() {
		It("distinguishes present and absent paths", func() {
			file := filepath.Join(tmpDir, "present")
			Expect(os.WriteFile(file, []byte("x"), 0o644)).To(Succeed())

			exists, err := svc.PathExists(ctx, file)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = svc.PathExists(ctx, filepath.Join(tmpDir, "absent"))
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	Describe("ReadDir", func() {
		It("returns hidden entries alongside regular ones", func() {
			Expect(os.WriteFile(filepath.Join(tmpDir, "visible.txt"), []byte("x"), 0o644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(tmpDir, ".hidden"), []byte("x"), 0o644)).To(Succeed())
			Expect(os.MkdirAll(filepath.Join(tmpDir, ".well-known"), 0o755)).To(Succeed())

			entries, err := svc.ReadDir(ctx, tmpDir)
			Expect(err).NotTo(HaveOccurred())

			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Name())
			}

			Expect(names).To(ConsistOf(".hidden", ".well-known", "visible.txt"))
		})
	})

	Describe("Rename", func() {
		It("moves directories with their contents", func() {
			src := filepath.Join(tmpDir, "src")
			Expect(os.MkdirAll(src, 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(src, "f"), []byte("payload"), 0o644)).To(Succeed())

			dst := filepath.Join(tmpDir, "dst")
			Expect(svc.Rename(ctx, src, dst)).To(Succeed())

			content, err := os.ReadFile(filepath.Join(dst, "f"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("payload"))

			_, err = os.Stat(src)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})
	})

	Describe("RemoveAll", func() {
		It("removes trees and tolerates absent paths", func() {
			dir := filepath.Join(tmpDir, "tree", "deep")
			Expect(os.MkdirAll(dir, 0o755)).To(Succeed())

			Expect(svc.RemoveAll(ctx, filepath.Join(tmpDir, "tree"))).To(Succeed())
			Expect(svc.RemoveAll(ctx, filepath.Join(tmpDir, "tree"))).To(Succeed())
		})
	})

	Describe("Chmod", func() {
		It("changes mode bits", func() {
			file := filepath.Join(tmpDir, "f")
			Expect(os.WriteFile(file, []byte("x"), 0o777)).To(Succeed())

			Expect(svc.Chmod(ctx, file, 0o664)).To(Succeed())

			info, err := os.Stat(file)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o664)))
		})
	})

	Describe("Walk", func() {
		It("visits the root and every entry below it", func() {
			Expect(os.MkdirAll(filepath.Join(tmpDir, "d1", "d2"), 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(tmpDir, "d1", "f"), []byte("x"), 0o644)).To(Succeed())

			var visited []string
			err := svc.Walk(ctx, tmpDir, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				rel, relErr := filepath.Rel(tmpDir, path)
				if relErr != nil {
					return relErr
				}
				visited = append(visited, rel)

				return nil
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(visited).To(ConsistOf(".", "d1", filepath.Join("d1", "d2"), filepath.Join("d1", "f")))
		})

		It("stops when the context is cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			err := svc.Walk(cancelled, tmpDir, func(path string, d fs.DirEntry, err error) error {
				return err
			})
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("ExecuteCommandInDir", func() {
		It("runs the command from the given directory", func() {
			output, err := svc.ExecuteCommandInDir(ctx, tmpDir, "pwd")
			Expect(err).NotTo(HaveOccurred())

			// Resolve symlinks: on some systems MkdirTemp returns a
			// symlinked path while pwd prints the resolved one.
			resolved, resolveErr := filepath.EvalSymlinks(tmpDir)
			Expect(resolveErr).NotTo(HaveOccurred())
			Expect(string(output)).To(ContainSubstring(resolved))
		})

		It("returns an error for a failing command", func() {
			_, err := svc.ExecuteCommand(ctx, "false")
			Expect(err).To(HaveOccurred())
		})
	})
})

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

package console_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quillbooks/quillbooks/bootstrap/pkg/constants"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/service/console"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/service/filesystem"
)

type capturedCommand struct {
	dir  string
	name string
	args []string
}

var _ = Describe("DefaultService", func() {
	var (
		ctx      context.Context
		mockFS   *filesystem.MockFileSystem
		svc      *console.DefaultService
		captured []capturedCommand
	)

	BeforeEach(func() {
		ctx = context.Background()
		captured = nil

		mockFS = filesystem.NewMockFileSystem()
		mockFS.ExecuteCommandInDirFunc = func(_ context.Context, dir string, name string, args ...string) ([]byte, error) {
			captured = append(captured, capturedCommand{dir: dir, name: name, args: args})

			return []byte("ok"), nil
		}

		svc = console.NewDefaultService(mockFS)
	})

	It("runs optimize through php artisan in the application root", func() {
		Expect(svc.Optimize(ctx)).To(Succeed())

		Expect(captured).To(HaveLen(1))
		Expect(captured[0].dir).To(Equal(constants.AppRoot))
		Expect(captured[0].name).To(Equal(constants.PHPBinary))
		Expect(captured[0].args).To(Equal([]string{constants.ArtisanScript, "optimize"}))
	})

	It("rebuilds the package manifest", func() {
		Expect(svc.DiscoverPackages(ctx)).To(Succeed())

		Expect(captured).To(HaveLen(1))
		Expect(captured[0].args).To(Equal([]string{constants.ArtisanScript, "package:discover"}))
	})

	It("forces migrations so no prompt can block startup", func() {
		Expect(svc.Migrate(ctx)).To(Succeed())

		Expect(captured).To(HaveLen(1))
		Expect(captured[0].args).To(Equal([]string{constants.ArtisanScript, "migrate", "--force"}))
	})

	It("forces the seeder", func() {
		Expect(svc.Seed(ctx)).To(Succeed())

		Expect(captured).To(HaveLen(1))
		Expect(captured[0].args).To(Equal([]string{constants.ArtisanScript, "db:seed", "--force"}))
	})

	It("passes admin credentials to account creation", func() {
		Expect(svc.CreateAccount(ctx, "admin@example.com", "s3cret")).To(Succeed())

		Expect(captured).To(HaveLen(1))
		Expect(captured[0].args).To(Equal([]string{
			constants.ArtisanScript,
			"quill:create-account",
			"--email=admin@example.com",
			"--password=s3cret",
		}))
	})

	It("wraps command failures with the command name", func() {
		mockFS.ExecuteCommandInDirFunc = func(context.Context, string, string, ...string) ([]byte, error) {
			return []byte("SQLSTATE[08006] connection refused"), errors.New("exit status 1")
		}

		err := svc.Migrate(ctx)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("migrate"))
	})
})

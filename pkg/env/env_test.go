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

package env_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quillbooks/quillbooks/bootstrap/pkg/env"
)

const testKey = "BOOTSTRAP_ENV_TEST_VAR"

var _ = Describe("env accessors", func() {
	AfterEach(func() {
		Expect(os.Unsetenv(testKey)).To(Succeed())
	})

	Describe("GetAsString", func() {
		It("returns the value when set", func() {
			Expect(os.Setenv(testKey, "hello")).To(Succeed())

			value, err := env.GetAsString(testKey, true, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal("hello"))
		})

		It("returns the default when optional and unset", func() {
			value, err := env.GetAsString(testKey, false, "fallback")
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal("fallback"))
		})

		It("errors when required and unset", func() {
			_, err := env.GetAsString(testKey, true, "")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(testKey))
		})
	})

	Describe("GetAsInt", func() {
		It("parses integers", func() {
			Expect(os.Setenv(testKey, "5433")).To(Succeed())

			value, err := env.GetAsInt(testKey, true, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal(5433))
		})

		It("falls back to the default on garbage when optional", func() {
			Expect(os.Setenv(testKey, "garbage")).To(Succeed())

			value, err := env.GetAsInt(testKey, false, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal(42))
		})

		It("errors on garbage when required", func() {
			Expect(os.Setenv(testKey, "garbage")).To(Succeed())

			_, err := env.GetAsInt(testKey, true, 0)
			Expect(err).To(HaveOccurred())
		})
	})
})

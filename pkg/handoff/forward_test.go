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

package handoff_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quillbooks/quillbooks/bootstrap/pkg/handoff"
)

var _ = Describe("RunForwarding", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("returns zero for a successful child", func() {
		code, err := handoff.RunForwarding(ctx, []string{"true"})
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal(0))
	})

	It("passes the child's exit code through", func() {
		code, err := handoff.RunForwarding(ctx, []string{"sh", "-c", "exit 3"})
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal(3))
	})

	It("rejects an empty argv", func() {
		_, err := handoff.RunForwarding(ctx, nil)
		Expect(err).To(HaveOccurred())
	})

	It("errors when the target binary does not exist", func() {
		_, err := handoff.RunForwarding(ctx, []string{"/nonexistent/supervisord"})
		Expect(err).To(HaveOccurred())
	})
})

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

package health_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quillbooks/quillbooks/bootstrap/pkg/constants"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/service/health"
)

var _ = Describe("DefaultProber", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Check", func() {
		It("succeeds when the supervisor master process is running", func() {
			lister := health.NewMockLister("php-fpm", constants.SupervisorProcessName, "nginx")
			prober := health.NewDefaultProber(lister)

			Expect(prober.Check(ctx)).To(Succeed())
			Expect(lister.CallCount()).To(Equal(1))
		})

		It("fails when the supervisor is absent", func() {
			lister := health.NewMockLister("php-fpm", "nginx")
			prober := health.NewDefaultProber(lister)

			err := prober.Check(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(constants.SupervisorProcessName))
		})

		It("propagates listing failures", func() {
			lister := health.NewMockLister()
			lister.Err = errors.New("proc not mounted")
			prober := health.NewDefaultProber(lister)

			Expect(prober.Check(ctx)).To(MatchError(ContainSubstring("proc not mounted")))
		})
	})

	Describe("CheckWithRetry", func() {
		It("returns immediately on first success", func() {
			lister := health.NewMockLister(constants.SupervisorProcessName)
			prober := health.NewDefaultProber(lister)

			Expect(prober.CheckWithRetry(ctx)).To(Succeed())
			Expect(lister.CallCount()).To(Equal(1))
		})

		It("keeps probing until the supervisor appears", func() {
			lister := health.NewMockLister()
			lister.NamesFunc = func(call int) ([]string, error) {
				if call < 3 {
					return []string{"php-fpm"}, nil
				}

				return []string{constants.SupervisorProcessName}, nil
			}
			prober := health.NewDefaultProber(lister)

			Expect(prober.CheckWithRetry(ctx)).To(Succeed())
			Expect(lister.CallCount()).To(Equal(3))
		})

		It("gives up once the retry budget is exhausted", func() {
			lister := health.NewMockLister("php-fpm")
			prober := health.NewDefaultProber(lister)

			err := prober.CheckWithRetry(ctx)
			Expect(err).To(HaveOccurred())
			Expect(lister.CallCount()).To(Equal(int(constants.HealthCheckMaxRetries) + 1))
		})

		It("stops early when the context is cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			lister := health.NewMockLister("php-fpm")
			prober := health.NewDefaultProber(lister)

			Expect(prober.CheckWithRetry(cancelled)).To(HaveOccurred())
			Expect(lister.CallCount()).To(BeNumerically("<=", 1))
		})
	})
})

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

package database_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quillbooks/quillbooks/bootstrap/pkg/service/database"
)

var _ = Describe("PostgresDetector", func() {
	It("reports a connection failure instead of guessing first-run state", func() {
		// Port 1 is never a Postgres listener; the probe must fail loudly.
		detector := database.NewPostgresDetector("postgres://u:p@127.0.0.1:1/quillbooks")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		firstRun, err := detector.FirstRun(ctx)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("failed to connect"))
		Expect(firstRun).To(BeFalse())
	})

	It("honours context cancellation", func() {
		detector := database.NewPostgresDetector("postgres://u:p@127.0.0.1:1/quillbooks")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := detector.FirstRun(ctx)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("MockDetector", func() {
	It("returns the canned result and counts probes", func() {
		mock := database.NewMockDetector()
		mock.FirstRunResult = true

		firstRun, err := mock.FirstRun(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(firstRun).To(BeTrue())
		Expect(mock.ProbeCount()).To(Equal(1))
	})

	It("surfaces a missing primary table as a distinct error", func() {
		mock := database.NewMockDetector()
		mock.FirstRunErr = database.ErrPrimaryTableMissing

		_, err := mock.FirstRun(context.Background())
		Expect(errors.Is(err, database.ErrPrimaryTableMissing)).To(BeTrue())
	})
})

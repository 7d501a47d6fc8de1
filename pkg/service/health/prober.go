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

package health

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/constants"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/logger"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/metrics"
	"github.com/shirou/gopsutil/v3/process"
	"go.uber.org/zap"
)

// GopsutilLister lists process names from the real process table.
type GopsutilLister struct{}

// ProcessNames returns the names of all currently running processes.
// Individual processes may vanish between listing and name lookup; those are
// skipped rather than treated as errors.
func (GopsutilLister) ProcessNames(ctx context.Context) ([]string, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	names := make([]string, 0, len(procs))

	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}

		names = append(names, name)
	}

	return names, nil
}

// DefaultProber checks for the supervisor master process by name.
type DefaultProber struct {
	lister      ProcessLister
	processName string
	logger      *zap.SugaredLogger
}

// NewDefaultProber creates a prober looking for the supervisor master process.
func NewDefaultProber(lister ProcessLister) *DefaultProber {
	return &DefaultProber{
		lister:      lister,
		processName: constants.SupervisorProcessName,
		logger:      logger.For(logger.ComponentHealthService),
	}
}

// Check performs a single probe with a short timeout.
func (p *DefaultProber) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.HealthCheckTimeout)
	defer cancel()

	names, err := p.lister.ProcessNames(ctx)
	if err != nil {
		metrics.IncErrorCount(metrics.ComponentHealth)
		return err
	}

	for _, name := range names {
		if name == p.processName {
			return nil
		}
	}

	metrics.IncErrorCount(metrics.ComponentHealth)

	return fmt.Errorf("process %s not found", p.processName)
}

// CheckWithRetry probes at a fixed interval until one probe succeeds or the
// retry budget runs out.
func (p *DefaultProber) CheckWithRetry(ctx context.Context) error {
	attempt := 0

	operation := func() error {
		attempt++

		err := p.Check(ctx)
		if err != nil {
			p.logger.Warnf("Health probe attempt %d failed: %s", attempt, err)
		}

		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewConstantBackOff(constants.HealthCheckRetryInterval),
			constants.HealthCheckMaxRetries,
		),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		return fmt.Errorf("supervisor liveness check failed after %d attempts: %w", attempt, err)
	}

	return nil
}

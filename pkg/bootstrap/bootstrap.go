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

// Package bootstrap runs the one-time/idempotent environment setup that must
// precede the supervisor on a normal container start: directory provisioning,
// asset promotion, permission normalization, and in production mode the
// optimize/migrate/seed sequence. Execution is strictly sequential; the first
// failing step aborts everything and nothing is retried within one container
// lifecycle.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/looplab/fsm"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/config"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/constants"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/logger"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/metrics"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/service/console"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/service/database"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/service/filesystem"
	"go.uber.org/zap"
)

// Layout is the filesystem layout the sequence operates on. Production use
// always runs on DefaultLayout; tests substitute temp directories.
type Layout struct {
	// ServingDir is the live, web-server-exposed directory tree.
	ServingDir string

	// StagingDir holds built assets awaiting promotion into ServingDir.
	StagingDir string

	// StorageDir is the persistent storage tree.
	StorageDir string

	// RequiredDirs are created (if absent) by the filesystem preparer.
	RequiredDirs []string

	// Owner and Group identify the service runtime user.
	Owner string
	Group string
}

// DefaultLayout returns the fixed container layout.
func DefaultLayout() Layout {
	return Layout{
		ServingDir:   constants.ServingDir,
		StagingDir:   constants.StagingDir,
		StorageDir:   constants.StorageDir,
		RequiredDirs: constants.RequiredStorageDirs,
		Owner:        constants.ServiceUser,
		Group:        constants.ServiceGroup,
	}
}

// Bootstrap drives the setup sequence state machine.
type Bootstrap struct {
	cfg      *config.Config
	fs       filesystem.Service
	console  console.Service
	detector database.Detector
	layout   Layout
	machine  *fsm.FSM
	logger   *zap.SugaredLogger
}

// New creates a Bootstrap operating on the fixed container layout.
func New(cfg *config.Config, fs filesystem.Service, consoleService console.Service, detector database.Detector) *Bootstrap {
	return NewWithLayout(cfg, fs, consoleService, detector, DefaultLayout())
}

// NewWithLayout creates a Bootstrap operating on the given layout.
func NewWithLayout(cfg *config.Config, fs filesystem.Service, consoleService console.Service, detector database.Detector, layout Layout) *Bootstrap {
	return &Bootstrap{
		cfg:      cfg,
		fs:       fs,
		console:  consoleService,
		detector: detector,
		layout:   layout,
		machine:  newMachine(),
		logger:   logger.For(logger.ComponentBootstrap),
	}
}

// CurrentState returns the sequence state, for observability and tests.
func (b *Bootstrap) CurrentState() string {
	return b.machine.Current()
}

// step runs one unit of work and advances the state machine on success. On
// failure it transitions to aborted and returns the wrapped error; Run stops
// at the first failing step.
func (b *Bootstrap) step(ctx context.Context, event string, work func(context.Context) error) error {
	start := time.Now()

	err := work(ctx)
	metrics.ObserveStepDuration(event, time.Since(start))

	if err != nil {
		metrics.IncErrorCount(metrics.ComponentBootstrap)

		if abortErr := b.machine.Event(ctx, eventAbort); abortErr != nil {
			b.logger.Warnf("State machine abort transition failed: %s", abortErr)
		}

		return fmt.Errorf("%s: %w", event, err)
	}

	if err := b.machine.Event(ctx, event); err != nil {
		return fmt.Errorf("state machine rejected %s: %w", event, err)
	}

	b.logger.Debugf("Setup step done: %s (took %s)", event, time.Since(start))

	return nil
}

// Run executes the full setup sequence in its strict total order. It returns
// nil once the state machine reaches ready; the caller then performs the
// process handoff.
func (b *Bootstrap) Run(ctx context.Context) error {
	if err := b.machine.Event(ctx, eventDispatch); err != nil {
		return fmt.Errorf("sequence already started: %w", err)
	}

	if err := b.step(ctx, eventPrepareFilesystem, b.prepareFilesystem); err != nil {
		return err
	}

	if err := b.step(ctx, eventSwapAssets, b.swapAssets); err != nil {
		return err
	}

	if err := b.step(ctx, eventNormalizePermissions, b.normalizePermissions); err != nil {
		return err
	}

	if b.cfg.IsProduction() {
		if err := b.runProductionSteps(ctx); err != nil {
			return err
		}
	} else {
		b.logger.Infof("Deployment mode %q: skipping optimize/migrate/seed", b.cfg.Environment)
	}

	if err := b.machine.Event(ctx, eventFinish); err != nil {
		return fmt.Errorf("state machine rejected finish: %w", err)
	}

	b.logger.Info("Environment setup complete")

	return nil
}

// runProductionSteps performs the production-only part of the sequence:
// optimize and migrate on every startup, seed and account bootstrap only
// when the first-run probe says the instance was never initialized.
func (b *Bootstrap) runProductionSteps(ctx context.Context) error {
	if err := b.step(ctx, eventOptimize, b.optimizeAndMigrate); err != nil {
		return err
	}

	var firstRun bool

	err := b.step(ctx, eventCheckFirstRun, func(ctx context.Context) error {
		var err error
		firstRun, err = b.detector.FirstRun(ctx)

		return err
	})
	if err != nil {
		return err
	}

	if !firstRun {
		b.logger.Info("Instance already initialized, skipping seed and account bootstrap")

		return nil
	}

	if err := b.step(ctx, eventSeed, b.seed); err != nil {
		return err
	}

	return b.step(ctx, eventCreateAccount, b.createAccount)
}

// prepareFilesystem creates the required storage subdirectories. Creating a
// directory that already exists is a no-op, which keeps restarts idempotent.
func (b *Bootstrap) prepareFilesystem(ctx context.Context) error {
	for _, dir := range b.layout.RequiredDirs {
		if err := b.fs.EnsureDirectory(ctx, dir); err != nil {
			return err
		}
	}

	return nil
}

// optimizeAndMigrate runs the application's cache-warm, discovery and
// migration commands, in that order, on every production startup. Running
// migrations unconditionally is what makes rolling upgrades work; only
// seeding is gated on the first-run condition.
func (b *Bootstrap) optimizeAndMigrate(ctx context.Context) error {
	if err := b.console.Optimize(ctx); err != nil {
		return err
	}

	if err := b.console.DiscoverPackages(ctx); err != nil {
		return err
	}

	return b.console.Migrate(ctx)
}

// seed enforces the credential precondition and then seeds the schema. The
// credential check sits before the seed call so a misconfigured instance
// fails without having touched the database.
func (b *Bootstrap) seed(ctx context.Context) error {
	if !b.cfg.HasAdminCredentials() {
		return ErrMissingAdminCredentials
	}

	return b.console.Seed(ctx)
}

// createAccount creates the initial administrator account.
func (b *Bootstrap) createAccount(ctx context.Context) error {
	return b.console.CreateAccount(ctx, b.cfg.AdminEmail, b.cfg.AdminPassword)
}

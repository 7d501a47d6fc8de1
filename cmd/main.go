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

// The container entry process. Depending on how it is invoked it either runs
// the full environment setup and then hands the process image to the
// supervisor, answers a healthcheck, or passes an arbitrary command through
// untouched.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/quillbooks/quillbooks/bootstrap/pkg/bootstrap"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/config"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/constants"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/dispatch"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/handoff"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/logger"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/sentry"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/service/console"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/service/database"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/service/filesystem"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/service/health"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/version"
	"go.uber.org/zap"
)

// Exit codes. Zero is only ever produced by the replacement process after a
// successful handoff (or by a passing healthcheck).
const (
	exitMissingCredentials = 1
	exitSetupFailed        = 2
)

func main() {
	// Initialize the global logger first thing
	logger.Initialize()

	sentry.Init(version.GetAppVersion())

	log := logger.For(logger.ComponentCore)

	dispatcher := dispatch.NewDispatcher(dispatch.Signature{
		Command:    constants.SupervisorBinary,
		ConfigFlag: constants.SupervisorConfigFlag,
		ConfigPath: constants.SupervisorConfigPath,
	}, constants.HealthcheckToken)

	args := os.Args[1:]

	switch mode := dispatcher.Detect(args); mode {
	case dispatch.ModeDefault:
		runDefault(log, args)
	case dispatch.ModeHealthcheck:
		runHealthcheck(log)
	default:
		// Escape hatch for interactive and debugging invocations: no setup,
		// straight handoff with the original tokens.
		log.Infof("Invocation does not match the default startup signature, passing through: %v", args)
		execOrDie(log, args)
	}
}

func runDefault(log *zap.SugaredLogger, args []string) {
	cfg, err := config.Load()
	if err != nil {
		sentry.ReportIssuef(sentry.IssueTypeFatal, log, "Invalid configuration: %s", err)
		os.Exit(exitSetupFailed)
	}

	// The application's PDF renderer locates the browser through this
	// variable; the value depends on the CPU architecture of the image.
	if err := os.Setenv(constants.ChromiumPathEnvVar, cfg.ChromiumPath); err != nil {
		sentry.ReportIssuef(sentry.IssueTypeFatal, log, "Failed to set %s: %s", constants.ChromiumPathEnvVar, err)
		os.Exit(exitSetupFailed)
	}

	log.Infof("Starting environment setup (mode=%s, version=%s)", cfg.Environment, version.GetAppVersion())

	fsService := filesystem.NewDefaultService()
	consoleService := console.NewDefaultService(fsService)
	detector := database.NewPostgresDetector(cfg.Database.DSN())

	b := bootstrap.New(cfg, fsService, consoleService, detector)

	// No signal handling here: a termination signal during setup kills the
	// process and the surrounding orchestration layer restarts the
	// container. Nothing done so far is recorded as "done", so the next
	// start simply redoes the idempotent steps.
	if err := b.Run(context.Background()); err != nil {
		sentry.ReportIssue(err, sentry.IssueTypeFatal, log)

		if errors.Is(err, bootstrap.ErrMissingAdminCredentials) {
			os.Exit(exitMissingCredentials)
		}

		os.Exit(exitSetupFailed)
	}

	execOrDie(log, args)
}

func runHealthcheck(log *zap.SugaredLogger) {
	prober := health.NewDefaultProber(health.GopsutilLister{})

	if err := prober.CheckWithRetry(context.Background()); err != nil {
		log.Errorf("Unhealthy: %s", err)
		os.Exit(1)
	}

	os.Exit(0)
}

func execOrDie(log *zap.SugaredLogger, args []string) {
	if len(args) == 0 {
		log.Error("Nothing to hand off to: no command given")
		os.Exit(exitSetupFailed)
	}

	if err := handoff.Exec(args); err != nil {
		sentry.ReportIssue(err, sentry.IssueTypeFatal, log)
		os.Exit(exitSetupFailed)
	}
}

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

package console

import (
	"context"
	"fmt"

	"github.com/quillbooks/quillbooks/bootstrap/pkg/constants"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/logger"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/metrics"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/service/filesystem"
	"go.uber.org/zap"
)

// DefaultService runs the application console through the filesystem
// service's command executor from the application root.
type DefaultService struct {
	fs      filesystem.Service
	appRoot string
	logger  *zap.SugaredLogger
}

// NewDefaultService creates a console service that executes commands through fs.
func NewDefaultService(fs filesystem.Service) *DefaultService {
	return &DefaultService{
		fs:      fs,
		appRoot: constants.AppRoot,
		logger:  logger.For(logger.ComponentConsoleService),
	}
}

// run invokes one artisan command and logs its combined output on failure.
// Output on success stays at debug: the supervisor's own logs are the
// authoritative record once the application is up.
func (s *DefaultService) run(ctx context.Context, command string, extraArgs ...string) error {
	args := append([]string{constants.ArtisanScript, command}, extraArgs...)

	s.logger.Infof("Running console command: %s", command)

	output, err := s.fs.ExecuteCommandInDir(ctx, s.appRoot, constants.PHPBinary, args...)
	metrics.RecordCommandRun(command, err)
	if err != nil {
		if len(output) > 0 {
			s.logger.Errorf("Console command %s output: %s", command, string(output))
		}

		return fmt.Errorf("console command %s failed: %w", command, err)
	}

	s.logger.Debugf("Console command %s output: %s", command, string(output))

	return nil
}

// Optimize warms the application's configuration and route caches.
func (s *DefaultService) Optimize(ctx context.Context) error {
	return s.run(ctx, constants.ConsoleOptimize)
}

// DiscoverPackages rebuilds the application's package manifest.
func (s *DefaultService) DiscoverPackages(ctx context.Context) error {
	return s.run(ctx, constants.ConsoleDiscoverPackages)
}

// Migrate applies pending schema migrations without prompting. Safe to run
// on every startup; applied migrations are skipped by the application.
func (s *DefaultService) Migrate(ctx context.Context) error {
	return s.run(ctx, constants.ConsoleMigrate, constants.ConsoleForceFlag)
}

// Seed populates the freshly migrated schema with base data.
func (s *DefaultService) Seed(ctx context.Context) error {
	return s.run(ctx, constants.ConsoleSeed, constants.ConsoleForceFlag)
}

// CreateAccount creates the initial administrator account.
func (s *DefaultService) CreateAccount(ctx context.Context, email string, password string) error {
	return s.run(ctx, constants.ConsoleCreateAccount,
		"--email="+email,
		"--password="+password,
	)
}

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

// Package sentry reports fatal bootstrap failures to Sentry when a DSN is
// configured. The container must also start fully offline, so an absent DSN
// simply disables reporting and every Report* call degrades to plain logging.
package sentry

import (
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/getsentry/sentry-go"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/constants"
	"go.uber.org/zap"
)

// reportingEnabled tracks whether Init succeeded with a usable DSN.
var reportingEnabled = false

// Init initializes sentry with the given app version. Reporting stays
// disabled for local development builds and when SENTRY_DSN is unset.
func Init(appVersion string) {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		zap.S().Debug("Sentry disabled: no DSN configured")

		return
	}

	// Local test failures should never end up in the shared project.
	if appVersion == "" || appVersion == constants.DefaultAppVersion {
		zap.S().Debug("Sentry disabled for local development build")

		return
	}

	environment := constants.DefaultDevelopmentEnvironment

	version, err := semver.NewVersion(appVersion)
	if err != nil {
		zap.S().Errorf("Failed to parse app version, using default environment (development): %s", err)
	} else if version.Prerelease() == "" {
		environment = constants.DefaultProductionEnvironment
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:           dsn,
		Environment:   environment,
		Release:       "quillbooks-bootstrap@" + appVersion,
		EnableTracing: false,
	})
	if err != nil {
		zap.S().Errorf("Failed to initialize Sentry: %s", err)

		return
	}

	reportingEnabled = true
}

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

package constants

const (
	// DefaultAppVersion is the version a local build reports when no version
	// was injected via ldflags.
	DefaultAppVersion = "0.0.0-dev"

	// DefaultDevelopmentEnvironment labels non-release builds in error reports.
	DefaultDevelopmentEnvironment = "development"

	// DefaultProductionEnvironment labels release builds in error reports.
	DefaultProductionEnvironment = "production"

	// SupervisorBinary is the command token of the supervisor start signature.
	SupervisorBinary = "supervisord"

	// SupervisorConfigFlag is the flag carrying the supervisor configuration file.
	SupervisorConfigFlag = "-c"

	// SupervisorConfigPath is the fixed configuration file the container's CMD
	// passes to the supervisor. Part of the default startup signature.
	SupervisorConfigPath = "/etc/supervisor/supervisord.conf"

	// SupervisorProcessName is the process name the liveness prober looks for
	// once the supervisor has taken over as the primary process.
	SupervisorProcessName = "supervisord"

	// HealthcheckToken is the single argument that selects healthcheck mode,
	// so the container HEALTHCHECK can reuse this binary.
	HealthcheckToken = "healthcheck"

	// ProductionEnvironmentName is the APP_ENV value that enables the
	// optimize/migrate/seed part of the setup sequence.
	ProductionEnvironmentName = "production"

	// ChromiumPathEnvVar is exported into the application's environment so the
	// PDF renderer finds the browser binary for the current architecture.
	ChromiumPathEnvVar = "PDF_CHROMIUM_PATH"

	// ChromiumPathAMD64 is the browser binary location on x86_64 images.
	ChromiumPathAMD64 = "/usr/bin/chromium"

	// ChromiumPathARM64 is the browser binary location on arm64 images.
	ChromiumPathARM64 = "/usr/bin/chromium-browser"
)

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

// The application ships its own console tool. The orchestrator only sequences
// calls to it; every command below is expected to be idempotent.
const (
	// PHPBinary interprets the application's console entrypoint.
	PHPBinary = "php"

	// ArtisanScript is the application console entrypoint, relative to AppRoot.
	ArtisanScript = "artisan"

	// ConsoleOptimize warms the application's configuration and route caches.
	ConsoleOptimize = "optimize"

	// ConsoleDiscoverPackages rebuilds the application's package manifest.
	ConsoleDiscoverPackages = "package:discover"

	// ConsoleMigrate applies pending schema migrations without prompting.
	ConsoleMigrate = "migrate"

	// ConsoleSeed populates the freshly migrated schema with base data.
	ConsoleSeed = "db:seed"

	// ConsoleCreateAccount creates the initial administrator account.
	ConsoleCreateAccount = "quill:create-account"

	// ConsoleForceFlag suppresses interactive confirmation on destructive
	// commands when running unattended.
	ConsoleForceFlag = "--force"
)

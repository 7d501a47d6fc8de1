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

// Package console drives the application's own command line tool. The
// commands are opaque external capabilities: this package sequences them and
// surfaces their failures, nothing more.
package console

import "context"

// Service defines the interface for invoking application console commands.
type Service interface {
	// Optimize warms the application's configuration and route caches
	Optimize(ctx context.Context) error

	// DiscoverPackages rebuilds the application's package manifest
	DiscoverPackages(ctx context.Context) error

	// Migrate applies pending schema migrations, unattended
	Migrate(ctx context.Context) error

	// Seed populates the freshly migrated schema with base data
	Seed(ctx context.Context) error

	// CreateAccount creates the initial administrator account
	CreateAccount(ctx context.Context, email string, password string) error
}

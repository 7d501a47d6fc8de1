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

// Package config collects every environment input the orchestrator
// recognizes into one validated structure, built once at process start.
// Everything else in the environment is opaque and passed through to the
// application unchanged on handoff.
package config

import (
	"fmt"
	"net/url"
	"runtime"

	"github.com/quillbooks/quillbooks/bootstrap/pkg/constants"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/env"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/logger"
)

// DatabaseConfig holds the connection parameters of the application database.
// The same variables the application itself reads, so the probe and the
// application always target the same database.
type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
}

// DSN renders the config as a Postgres connection string. url.URL applies
// userinfo escaping, so credentials with reserved characters or spaces
// survive being parsed back out by the driver.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}

	if d.Password == "" {
		u.User = url.User(d.User)
	}

	return u.String()
}

// Config is the full recognized configuration of the orchestrator.
type Config struct {
	// Environment is the deployment mode (APP_ENV). The distinguished value
	// "production" enables the optimize/migrate/seed part of the sequence.
	Environment string

	// AdminEmail and AdminPassword are the bootstrap credentials for the
	// initial administrator account. Optional until the first-run condition
	// holds, at which point both become mandatory.
	AdminEmail    string
	AdminPassword string

	// Database is where the first-run probe looks.
	Database DatabaseConfig

	// ChromiumPath is the architecture-dependent browser binary the
	// application's PDF renderer needs. Derived, not read from the
	// environment.
	ChromiumPath string
}

// IsProduction reports whether the deployment mode gates in the
// optimize/migrate/seed steps.
func (c *Config) IsProduction() bool {
	return c.Environment == constants.ProductionEnvironmentName
}

// HasAdminCredentials reports whether both bootstrap credentials are present.
func (c *Config) HasAdminCredentials() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}

// Load reads the recognized environment variables and validates everything
// that is knowable before setup starts. Admin credential presence is only
// enforceable once the first-run probe has answered, so it is checked at the
// seed gate instead.
func Load() (*Config, error) {
	cfg := &Config{}

	var err error

	cfg.Environment, err = env.GetAsString("APP_ENV", false, constants.ProductionEnvironmentName)
	if err != nil {
		return nil, err
	}

	cfg.AdminEmail, err = env.GetAsString("APP_ADMIN_EMAIL", false, "")
	if err != nil {
		return nil, err
	}

	cfg.AdminPassword, err = env.GetAsString("APP_ADMIN_PASSWORD", false, "")
	if err != nil {
		return nil, err
	}

	cfg.Database.Host, err = env.GetAsString("DB_HOST", false, constants.DefaultDatabaseHost)
	if err != nil {
		return nil, err
	}

	cfg.Database.Port, err = env.GetAsInt("DB_PORT", false, constants.DefaultDatabasePort)
	if err != nil {
		return nil, err
	}

	cfg.Database.Name, err = env.GetAsString("DB_DATABASE", false, constants.DefaultDatabaseName)
	if err != nil {
		return nil, err
	}

	cfg.Database.User, err = env.GetAsString("DB_USERNAME", false, constants.DefaultDatabaseUser)
	if err != nil {
		return nil, err
	}

	// Passwordless databases are legal (trust auth), so an absent DB_PASSWORD
	// only warns in production instead of failing.
	cfg.Database.Password, err = env.GetAsString("DB_PASSWORD", false, "")
	if err != nil {
		return nil, err
	}

	if cfg.Environment == constants.ProductionEnvironmentName && cfg.Database.Password == "" {
		logger.For(logger.ComponentConfig).Warn("DB_PASSWORD is empty; assuming the database accepts passwordless authentication")
	}

	cfg.ChromiumPath = chromiumPathForArch(runtime.GOARCH)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// chromiumPathForArch maps the CPU architecture family to the browser binary
// location baked into the image for that family.
func chromiumPathForArch(goarch string) string {
	if goarch == "arm64" {
		return constants.ChromiumPathARM64
	}

	return constants.ChromiumPathAMD64
}

func (c *Config) validate() error {
	if c.Environment == "" {
		return fmt.Errorf("deployment mode must not be empty")
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("database port %d out of range", c.Database.Port)
	}

	// A lone credential is almost certainly a deployment mistake; surface it
	// now instead of failing at the seed gate on first run.
	if (c.AdminEmail == "") != (c.AdminPassword == "") {
		return fmt.Errorf("admin bootstrap credentials are incomplete: both APP_ADMIN_EMAIL and APP_ADMIN_PASSWORD must be set together")
	}

	return nil
}

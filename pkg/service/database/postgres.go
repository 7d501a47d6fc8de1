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

package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/constants"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/logger"
	"github.com/quillbooks/quillbooks/bootstrap/pkg/metrics"
	"go.uber.org/zap"
)

// PostgresDetector probes a Postgres database for the first-run condition.
// It opens one short-lived connection per probe; the probe runs once per
// startup, so pooling would buy nothing.
type PostgresDetector struct {
	dsn    string
	logger *zap.SugaredLogger
}

// NewPostgresDetector creates a detector for the database at dsn.
func NewPostgresDetector(dsn string) *PostgresDetector {
	return &PostgresDetector{
		dsn:    dsn,
		logger: logger.For(logger.ComponentDatabaseService),
	}
}

// FirstRun reports whether the primary table exists and is empty.
func (d *PostgresDetector) FirstRun(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseProbeTimeout)
	defer cancel()

	firstRun, err := d.probe(ctx)
	if err != nil {
		metrics.IncErrorCount(metrics.ComponentDatabase)
		return false, err
	}

	d.logger.Infof("First-run probe: table %s.%s present, empty=%t",
		constants.PrimaryTableSchema, constants.PrimaryTableName, firstRun)

	return firstRun, nil
}

func (d *PostgresDetector) probe(ctx context.Context) (bool, error) {
	conn, err := pgx.Connect(ctx, d.dsn)
	if err != nil {
		return false, fmt.Errorf("failed to connect to database: %w", err)
	}

	defer func() {
		if err := conn.Close(context.Background()); err != nil {
			d.logger.Warnf("Failed to close probe connection: %s", err)
		}
	}()

	var tableExists bool

	err = conn.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = $1 AND table_name = $2
		)`,
		constants.PrimaryTableSchema, constants.PrimaryTableName,
	).Scan(&tableExists)
	if err != nil {
		return false, fmt.Errorf("failed to check primary table existence: %w", err)
	}

	// The probe only runs after migrations, so an absent table means the
	// migration step lied about succeeding. Hard stop, no guessing.
	if !tableExists {
		return false, ErrPrimaryTableMissing
	}

	var empty bool

	err = conn.QueryRow(ctx,
		fmt.Sprintf(`SELECT NOT EXISTS (SELECT 1 FROM %s.%s LIMIT 1)`,
			constants.PrimaryTableSchema, constants.PrimaryTableName),
	).Scan(&empty)
	if err != nil {
		return false, fmt.Errorf("failed to check primary table contents: %w", err)
	}

	return empty, nil
}

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

import "time"

const (
	// PrimaryTableSchema is the schema holding the application's core tables.
	PrimaryTableSchema = "public"

	// PrimaryTableName is the first table the application seeds. Its presence
	// and emptiness together define the first-run condition.
	PrimaryTableName = "accounts"

	// DatabaseProbeTimeout bounds a single first-run probe. The probe runs
	// after migrations against a local-network database, so it finishing fast
	// is the normal case and anything slower indicates a real problem.
	DatabaseProbeTimeout = 15 * time.Second

	// DefaultDatabaseHost is the compose-internal hostname of the database.
	DefaultDatabaseHost = "db"

	// DefaultDatabasePort is the standard Postgres port.
	DefaultDatabasePort = 5432

	// DefaultDatabaseName is the application database.
	DefaultDatabaseName = "quillbooks"

	// DefaultDatabaseUser is the application database role.
	DefaultDatabaseUser = "quillbooks"
)

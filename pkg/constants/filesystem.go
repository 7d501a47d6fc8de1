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

import "os"

// Fixed filesystem layout of the application container. None of these paths
// are configurable; the image build stage and the web server both assume them.
const (
	// AppRoot is the application installation directory.
	AppRoot = "/var/www/html"

	// ServingDir is the live, web-server-exposed document root.
	ServingDir = AppRoot + "/public"

	// StagingDir holds freshly built web assets awaiting promotion into
	// ServingDir. Produced at image build time, drained on first qualifying
	// startup.
	StagingDir = AppRoot + "/public.staged"

	// StorageDir is the persistent storage tree of the application.
	StorageDir = AppRoot + "/storage"
)

// RequiredStorageDirs are created (if absent) before anything else runs.
var RequiredStorageDirs = []string{
	StorageDir + "/framework/sessions",
	StorageDir + "/framework/views",
	StorageDir + "/framework/cache",
}

const (
	// ServiceUser owns the serving and storage trees at runtime.
	ServiceUser = "www-data"

	// ServiceGroup is the runtime group of the serving and storage trees.
	ServiceGroup = "www-data"

	// NormalFileMode is applied to every regular file under the serving and
	// storage trees: read/write for owner and group, read for others, never
	// executable.
	NormalFileMode os.FileMode = 0o664

	// NormalDirMode is applied to every directory under the serving and
	// storage trees: full owner/group access, traversal for others.
	NormalDirMode os.FileMode = 0o775
)

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

package version

// appVersion is injected at build time via
// -ldflags "-X github.com/quillbooks/quillbooks/bootstrap/pkg/version.appVersion=...".
var appVersion = "0.0.0-dev"

// GetAppVersion returns the version this binary was built as.
func GetAppVersion() string {
	return appVersion
}

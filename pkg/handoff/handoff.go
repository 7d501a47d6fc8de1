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

// Package handoff transfers primary-process responsibility to the target
// command. The normal path replaces the process image, so the target becomes
// the container's PID-1-equivalent and receives termination signals directly.
package handoff

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/quillbooks/quillbooks/bootstrap/pkg/logger"
	"golang.org/x/sys/unix"
)

// Exec replaces the current process image with argv. On success it does not
// return; the environment is passed through unchanged, so every opaque
// database/cache variable reaches the target.
func Exec(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("nothing to hand off to: empty argv")
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", argv[0], err)
	}

	logger.For(logger.ComponentHandoff).Infof("Handing off to %s", path)

	// Flush before the process image disappears.
	_ = logger.Sync()

	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("failed to exec %s: %w", path, err)
	}

	// Unreachable: Exec either replaced the process or returned an error.
	return nil
}

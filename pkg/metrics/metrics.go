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

// Package metrics holds the prometheus collectors shared by all components.
// The bootstrap process execs away before anything could scrape it, so there
// is no HTTP endpoint; the collectors keep instrumentation call sites uniform
// and are read directly in tests.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Component labels.
	ComponentBootstrap = "bootstrap"
	ComponentDatabase  = "database"
	ComponentHealth    = "health"
)

var (
	// Namespace and subsystem for all metrics.
	namespace = "quillbooks"
	subsystem = "bootstrap"

	// Error counters.
	errorCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "errors_total",
			Help:      "Total number of errors encountered by component",
		},
		[]string{"component"},
	)

	// Setup step timing.
	stepDuration = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "step_duration_seconds",
			Help:      "Duration of setup sequence steps",
		},
		[]string{"step"},
	)

	// Filesystem operations.
	filesystemOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "filesystem_ops_total",
			Help:      "Total number of filesystem operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// External command invocations.
	commandRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "command_runs_total",
			Help:      "Total number of external command invocations by command and status",
		},
		[]string{"command", "status"},
	)
)

// IncErrorCount increments the error counter for a component.
func IncErrorCount(component string) {
	errorCounter.WithLabelValues(component).Inc()
}

// ObserveStepDuration records how long a setup step took.
func ObserveStepDuration(step string, duration time.Duration) {
	stepDuration.WithLabelValues(step).Observe(duration.Seconds())
}

// RecordFilesystemOp records a filesystem operation outcome.
func RecordFilesystemOp(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	filesystemOps.WithLabelValues(operation, status).Inc()
}

// RecordCommandRun records an external command invocation outcome.
func RecordCommandRun(command string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	commandRuns.WithLabelValues(command, status).Inc()
}

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

package sentry

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// IssueType classifies a report.
type IssueType string

const (
	IssueTypeWarning IssueType = "warning"
	IssueTypeError   IssueType = "error"
	IssueTypeFatal   IssueType = "fatal"
)

// ReportIssue logs an issue and forwards it to Sentry when reporting is
// enabled. The process is short-lived, so unlike long-running agents there is
// no debouncing; every issue is reported exactly once.
func ReportIssue(err error, issueType IssueType, log *zap.SugaredLogger) {
	if log == nil {
		// If logger initialization failed somehow, create a no-op logger to avoid nil panics
		log = zap.NewNop().Sugar()
	}

	switch issueType {
	case IssueTypeFatal:
		log.Errorf("Error: %s", err)
		log.Errorf("Stack trace: %s", string(debug.Stack()))
		capture(sentry.LevelFatal, err)
	case IssueTypeError:
		log.Error(err)
		capture(sentry.LevelError, err)
	case IssueTypeWarning:
		log.Warn(err)
		capture(sentry.LevelWarning, err)
	}
}

// ReportIssuef formats an error message and reports it.
func ReportIssuef(issueType IssueType, log *zap.SugaredLogger, template string, args ...interface{}) {
	ReportIssue(fmt.Errorf(template, args...), issueType, log)
}

func capture(level sentry.Level, err error) {
	if !reportingEnabled {
		return
	}

	event := sentry.NewEvent()
	event.Level = level
	event.Message = err.Error()
	sentry.CaptureEvent(event)

	// The process exits right after a fatal report; without a flush the
	// event would be lost with the process image.
	if level == sentry.LevelFatal {
		sentry.Flush(5 * time.Second)
	}
}

// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package attrib

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Severity classifies diagnostic reports.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

// Reporter is the diagnostic sink for all "reported but non-fatal"
// conditions: contract violations answer with safe sentinels after the
// report instead of aborting the operation. Implementations must not panic.
type Reporter interface {
	Report(sev Severity, msg string)
}

type discardReporter struct{}

func (discardReporter) Report(Severity, string) {}

// reporter is the process-wide default sink. Decoder and Encoder can carry
// their own Reporter; everything else reports here.
var reporter Reporter = discardReporter{}

// SetReporter installs the process-wide diagnostic sink. A nil reporter
// restores the discarding default.
func SetReporter(r Reporter) {
	if r == nil {
		r = discardReporter{}
	}
	reporter = r
}

func reportf(sev Severity, format string, args ...any) {
	reporter.Report(sev, fmt.Sprintf(format, args...))
}

func reportTo(r Reporter, sev Severity, format string, args ...any) {
	if r == nil {
		r = reporter
	}
	r.Report(sev, fmt.Sprintf(format, args...))
}

// LogReporter adapts a charmbracelet logger to the Reporter interface.
type LogReporter struct {
	l *log.Logger
}

// NewLogReporter wraps l as a diagnostic sink. A nil logger uses the
// package default logger.
func NewLogReporter(l *log.Logger) *LogReporter {
	if l == nil {
		l = log.Default()
	}
	return &LogReporter{l: l}
}

func (r *LogReporter) Report(sev Severity, msg string) {
	switch sev {
	case SeverityDebug:
		r.l.Debug(msg)
	case SeverityInfo:
		r.l.Info(msg)
	case SeverityWarn:
		r.l.Warn(msg)
	default:
		r.l.Error(msg)
	}
}

// Copyright 2026 The Inspektor Gadget authors
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

/*
Package logger provides the logger interface used by tables and data sources, backed by logrus.
*/
package logger

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

type Level = log.Level

// we use the log levels from logrus here
const (
	ErrorLevel = log.ErrorLevel
	WarnLevel  = log.WarnLevel
	InfoLevel  = log.InfoLevel
	DebugLevel = log.DebugLevel
)

type Logger interface {
	Error(params ...any)
	Errorf(fmt string, params ...any)
	Warn(params ...any)
	Warnf(fmt string, params ...any)
	Info(params ...any)
	Infof(fmt string, params ...any)
	Debug(params ...any)
	Debugf(fmt string, params ...any)

	SetLevel(Level)
	GetLevel() Level
}

// Format selects how log lines are written
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("invalid log format %q: expected %q or %q", s, FormatText, FormatJSON)
}

func ParseLevel(s string) (Level, error) {
	return log.ParseLevel(s)
}

// New returns a logrus logger writing to out
func New(out io.Writer, level Level, format Format) Logger {
	l := log.New()
	l.SetOutput(out)
	l.SetLevel(level)
	if format == FormatJSON {
		l.SetFormatter(&log.JSONFormatter{})
	}
	return l
}

// Discard returns a logger that drops all messages
func Discard() Logger {
	return New(io.Discard, ErrorLevel, FormatText)
}

func DefaultLogger() Logger {
	return log.StandardLogger()
}

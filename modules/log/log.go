// Copyright 2014 The Gogs Authors. All rights reserved.
// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package log provides the printf-style logging API used across the module.
// Messages are written through a logrus logger.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Level int

const (
	UNDEFINED Level = iota
	TRACE
	DEBUG
	INFO
	WARN
	ERROR
	FATAL
	NONE
)

var levelNames = map[Level]string{
	UNDEFINED: "undefined",
	TRACE:     "trace",
	DEBUG:     "debug",
	INFO:      "info",
	WARN:      "warn",
	ERROR:     "error",
	FATAL:     "fatal",
	NONE:      "none",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return "info"
}

// ParseLevel maps a case-insensitive level name to a Level, falling back to defaultLevel.
func ParseLevel(s string, defaultLevel Level) Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return WARN
	}
	for l, name := range levelNames {
		if l != UNDEFINED && name == s {
			return l
		}
	}
	return defaultLevel
}

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: false, FullTimestamp: true})
	return l
}

// SetOutput redirects all log output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel changes the lowest level that is written. NONE silences the logger.
func SetLevel(level Level) {
	switch level {
	case TRACE:
		logger.SetLevel(logrus.TraceLevel)
	case DEBUG:
		logger.SetLevel(logrus.DebugLevel)
	case WARN:
		logger.SetLevel(logrus.WarnLevel)
	case ERROR:
		logger.SetLevel(logrus.ErrorLevel)
	case FATAL:
		logger.SetLevel(logrus.FatalLevel)
	case NONE:
		logger.SetLevel(logrus.PanicLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
}

// GetLevel returns the current level.
func GetLevel() Level {
	switch logger.GetLevel() {
	case logrus.TraceLevel:
		return TRACE
	case logrus.DebugLevel:
		return DEBUG
	case logrus.InfoLevel:
		return INFO
	case logrus.WarnLevel:
		return WARN
	case logrus.ErrorLevel:
		return ERROR
	case logrus.FatalLevel:
		return FATAL
	default:
		return NONE
	}
}

func IsTrace() bool {
	return logger.IsLevelEnabled(logrus.TraceLevel)
}

func IsDebug() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}

func Trace(format string, v ...any) {
	logger.Tracef(format, v...)
}

func Debug(format string, v ...any) {
	logger.Debugf(format, v...)
}

func Info(format string, v ...any) {
	logger.Infof(format, v...)
}

func Warn(format string, v ...any) {
	logger.Warnf(format, v...)
}

func Error(format string, v ...any) {
	logger.Errorf(format, v...)
}

// Fatal logs at error level and exits the process.
func Fatal(format string, v ...any) {
	logger.Fatalf(format, v...)
}

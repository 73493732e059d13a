// Copyright 2025 go-highway Authors
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

// Package logging holds the process-wide logger used by the command-line
// tools. The hwy packages never log.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

// Init configures the logger. An unknown level falls back to info. When file
// is set, output is appended to it, in addition to stderr if console is set.
func Init(level, file string, console bool) error {
	l := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	var writers []io.Writer
	if console {
		writers = append(writers, os.Stderr)
	}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		writers = append(writers, f)
	}
	switch len(writers) {
	case 0:
		l.SetOutput(io.Discard)
	case 1:
		l.SetOutput(writers[0])
	default:
		l.SetOutput(io.MultiWriter(writers...))
	}

	log = l
	return nil
}

// Get returns the logger, creating a default one if Init was not called.
func Get() *logrus.Logger {
	if log == nil {
		log = logrus.New()
	}
	return log
}

func Debugf(format string, args ...any) { Get().Debugf(format, args...) }
func Infof(format string, args ...any)  { Get().Infof(format, args...) }
func Warnf(format string, args ...any)  { Get().Warnf(format, args...) }
func Errorf(format string, args ...any) { Get().Errorf(format, args...) }

// WithArch returns an entry tagged with the architecture tag name.
func WithArch(name string) *logrus.Entry {
	return Get().WithField("arch", name)
}

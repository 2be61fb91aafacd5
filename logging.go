// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
)

// journal is the part of *logger.L the CLI writes to.
type journal interface {
	Debugf(format string, arguments ...interface{})
	Infof(format string, arguments ...interface{})
	Warnf(format string, arguments ...interface{})
	Errorf(format string, arguments ...interface{})
}

type nopJournal struct{}

func (nopJournal) Debugf(string, ...interface{}) {}
func (nopJournal) Infof(string, ...interface{})  {}
func (nopJournal) Warnf(string, ...interface{})  {}
func (nopJournal) Errorf(string, ...interface{}) {}

var loggingReady bool

func logDirectory(cfg LogConfig) (string, error) {
	if cfg.Directory != "" {
		return cfg.Directory, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "avltree"), nil
}

// setupLogging starts the rotating file log. Callers keep running without
// a log when it fails.
func setupLogging(cfg LogConfig) error {
	dir, err := logDirectory(cfg)
	if err != nil {
		return fmt.Errorf("no log directory: %v", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %v", dir, err)
	}

	err = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      cfg.File,
		Size:      cfg.Size,
		Count:     cfg.Count,
		Console:   cfg.Console,
		Levels: map[string]string{
			logger.DefaultTag: cfg.Level,
		},
	})
	if err != nil {
		return fmt.Errorf("logger initialization failed: %v", err)
	}
	loggingReady = true
	return nil
}

func finaliseLogging() {
	if loggingReady {
		logger.Finalise()
		loggingReady = false
	}
}

// newJournal returns a logging channel, or a silent one before setupLogging
// succeeded.
func newJournal(tag string) journal {
	if !loggingReady {
		return nopJournal{}
	}
	if l := logger.New(tag); l != nil {
		return l
	}
	return nopJournal{}
}

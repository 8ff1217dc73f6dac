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
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/cybrota/avltree/avl"
)

var logLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true, "critical": true, "off": true,
}

// setupLogging starts the global logger from the logging section. The
// returned function flushes and closes the log.
func setupLogging(c LoggingConfig) (func(), error) {
	if c.Directory == "" {
		c.Directory = DefaultConfig().Logging.Directory
	}
	if c.File == "" {
		c.File = defaultConfig.Logging.File
	}
	clampLogRotation(&c)
	level := strings.ToLower(c.Level)
	if !logLevels[level] {
		return nil, fmt.Errorf("invalid log level: %q", c.Level)
	}

	if err := os.MkdirAll(c.Directory, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	err := logger.Initialise(logger.Configuration{
		Directory: c.Directory,
		File:      c.File,
		Size:      c.Size,
		Count:     c.Count,
		Console:   c.Console,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	})
	if err != nil {
		return nil, err
	}
	return logger.Finalise, nil
}

// loggingObserver writes every rotation to the log at debug level.
type loggingObserver struct {
	log *logger.L
}

func newLoggingObserver() *loggingObserver {
	return &loggingObserver{log: logger.New("avl")}
}

func (o *loggingObserver) Rotated(r avl.Rotation, pivot int) {
	o.log.Debugf("rotate %s at key %d", r, pivot)
}

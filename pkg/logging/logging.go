// SPDX-License-Identifier: Apache-2.0
/*
Copyright (C) 2026 The Zen Bridge Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package logging holds the logger shared by the packages of this module.
// A no-op logger is used unless one is installed with SetLogger or
// configured from the environment with ConfigureFromEnv.
package logging

import (
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogLevel is the environment variable read by ConfigureFromEnv.
const EnvLogLevel = "ZEN_BRIDGE_LOG_LEVEL"

var (
	nop    = zap.NewNop()
	logger atomic.Pointer[zap.Logger]
)

// Logger returns the current logger. It never returns nil.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger replaces the current logger. Passing nil restores the
// no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

// ConfigureFromEnv installs a production logger writing to stderr at the
// level named by EnvLogLevel. If the variable is unset or empty, the
// current logger is left untouched. An unparsable level is returned as
// an error and the current logger is left untouched.
func ConfigureFromEnv() error {
	v, ok := os.LookupEnv(EnvLogLevel)
	if !ok || v == "" {
		return nil
	}
	lvl, err := zapcore.ParseLevel(v)
	if err != nil {
		return fmt.Errorf("zen-bridge-go/logging: invalid %s value %q: %w", EnvLogLevel, v, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("zen-bridge-go/logging: building logger: %w", err)
	}
	SetLogger(l.Named("zen-bridge"))
	return nil
}

// Copyright (c) 2023 Colin McRae

package main

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
)

// maxVerbosity bounds --verbose; zap levels are int8.
const maxVerbosity = 10

// newLogger writes development-style console logs to w. logr verbosity v
// maps to zap level -v, so verbosity 4 enables the tree traces of the
// operad package.
func newLogger(w io.Writer, verbosity int) (logr.Logger, error) {
	if verbosity < 0 || verbosity > maxVerbosity {
		return logr.Discard(), formerr.InvalidArgumentType(
			"newLogger", "verbosity %d is not in {0,...,%d}", verbosity, maxVerbosity,
		)
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapcore.Level(-verbosity),
	)
	return zapr.NewLogger(zap.New(core)).WithName("dupont"), nil
}

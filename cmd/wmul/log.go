package main

import (
	"fmt"
	"os"

	"github.com/decred/slog"

	"window.mleku.dev"
)

var (
	// backendLog is the logging backend used to create all subsystem
	// loggers.
	backendLog = slog.NewBackend(os.Stderr)

	wndwLog = backendLog.Logger("WNDW")
	log     = backendLog.Logger("WMUL")
)

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"WNDW": wndwLog,
	"WMUL": log,
}

func init() {
	window.UseLogger(wndwLog)
}

// setLogLevels sets the logging level of every subsystem.
func setLogLevels(logLevel string) error {
	level, ok := slog.LevelFromString(logLevel)
	if !ok {
		return fmt.Errorf("invalid log level %q", logLevel)
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return nil
}

// Package logging wires the commonlog backend used by every reckon package.
package logging

import (
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// Quiet disables all log output.
const Quiet = -4

// GetLogger returns the named logger. Importing this package guarantees the
// simple backend is registered before package-level loggers are created.
func GetLogger(name string) commonlog.Logger {
	return commonlog.GetLogger(name)
}

// Configure sets the maximum level (0 = notice, 1 = info, 2 = debug,
// negative values silence progressively more) and an optional log file.
// An empty path logs to stderr.
func Configure(verbosity int, path string) {
	if path == "" {
		commonlog.Configure(verbosity, nil)
		return
	}
	commonlog.Configure(verbosity, &path)
}

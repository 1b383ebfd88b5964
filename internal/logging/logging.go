// Package logging constructs the zap logger shared by the commands.
package logging

import "go.uber.org/zap"

// New returns a development logger when verbose is set and a no-op
// logger otherwise. User-facing progress stays on plain stdout lines;
// the logger carries diagnostics only.
func New(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

package shared

import (
	"io"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a charmbracelet logger writing to w at level.
func SetupLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}

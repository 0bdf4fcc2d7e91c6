package events

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// LogConfig configures the logging handler
type LogConfig struct {
	// Writer is where logs are written (default: os.Stderr)
	Writer io.Writer

	// IncludePayload includes event payload in log output
	IncludePayload bool

	// TimeFormat defaults to RFC3339 but is not used: log lines carry no
	// timestamp
	TimeFormat string
}

// LogHandler returns a handler that logs events to the configured writer
// Format: [event.type] pool worker=name payload=...
func LogHandler(cfg LogConfig) Handler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = time.RFC3339
	}

	return func(e Event) {
		var buf strings.Builder
		buf.WriteString("[")
		buf.WriteString(string(e.Type))
		buf.WriteString("]")

		if e.Pool != "" {
			buf.WriteString(" ")
			buf.WriteString(e.Pool)
		}
		if e.Worker != "" {
			fmt.Fprintf(&buf, " worker=%s", e.Worker)
		}
		if cfg.IncludePayload && e.Payload != nil {
			fmt.Fprintf(&buf, " payload=%v", e.Payload)
		}
		if e.Error != "" {
			fmt.Fprintf(&buf, " error=%q", e.Error)
		}
		buf.WriteString("\n")

		fmt.Fprint(cfg.Writer, buf.String())
	}
}

// Package textlog sets up the logrus logger cmd/textdump reports
// progress and failures through, in the teacher's own logging style:
// a plain text formatter for a terminal, a logstash-style JSON
// formatter for machine consumption.
package textlog

import (
	"encoding/json"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Format selects the output encoding New's logger writes.
type Format string

const (
	// FormatText is a human-readable, colorized-when-a-TTY format.
	FormatText Format = "text"
	// FormatJSON is the logstash-style JSON format below.
	FormatJSON Format = "json"
)

// New returns a logger writing to out in the requested format at level.
func New(out io.Writer, format Format, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	if format == FormatJSON {
		logger.SetFormatter(&LogstashJSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// LogstashJSONFormatter renders log entries the way a logstash JSON
// input expects them: an "@timestamp"/"@version" pair, the level name
// spelled out, and any field that happens to be an error flattened to
// its message string.
type LogstashJSONFormatter struct{}

// Format implements logrus.Formatter.
func (f *LogstashJSONFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	e := make(map[string]interface{}, len(entry.Data)+4)
	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			e[k] = err.Error()
		} else {
			e[k] = v
		}
	}

	e["@timestamp"] = entry.Time.Format(time.RFC3339)
	e["@version"] = "1"
	e["message"] = entry.Message
	e["level_name"] = entry.Level.String()

	serialized, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return append(serialized, '\n'), nil
}

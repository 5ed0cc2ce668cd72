package logger

import (
	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. Setup configures it once at startup;
// packages import it instead of wiring their own output.
var Log = logrus.New()

// Setup applies the configured level and switches to structured JSON output.
// Unknown levels fall back to info rather than failing startup.
func Setup(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)
	Log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
}

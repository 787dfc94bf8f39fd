package logger

import (
	"io"
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger: structured output to stdout,
// mirrored into daily-rotated files under ./logs kept for a week. File
// rotation failures fall back to stdout only.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	log.SetLevel(logrus.InfoLevel)

	logPath := "./logs"
	if err := os.MkdirAll(logPath, 0755); err != nil {
		log.SetOutput(os.Stdout)
		return log
	}

	writer, err := rotatelogs.New(
		logPath+"/app.log.%Y-%m-%d",
		rotatelogs.WithLinkName(logPath+"/app.log"),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithMaxAge(7*24*time.Hour),
	)
	if err != nil {
		log.SetOutput(os.Stdout)
		return log
	}

	log.SetOutput(io.MultiWriter(os.Stdout, writer))
	return log
}

package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func InitLogger() {
	InitLoggerWithOutput(os.Stdout, os.Stderr)
}

// InitLoggerWithOutput lets tests capture log lines.
func InitLoggerWithOutput(info, errs io.Writer) {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	InfoLogger.SetOutput(info)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	ErrorLogger.SetOutput(errs)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	InfoLogger.SetLevel(logrus.InfoLevel)
	ErrorLogger.SetLevel(logrus.ErrorLevel)
}

func info() *logrus.Logger {
	if InfoLogger == nil {
		InitLogger()
	}
	return InfoLogger
}

// Info returns an entry on the info logger carrying fields.
func Info(fields logrus.Fields) *logrus.Entry {
	return info().WithFields(fields)
}

// LogError writes a structured error line naming where it happened.
func LogError(module, funcName, context string, data any, err error) {
	if ErrorLogger == nil {
		InitLogger()
	}
	fields := logrus.Fields{
		"module":   module,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	ErrorLogger.WithFields(fields).Error(err.Error())
}

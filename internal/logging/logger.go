package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

var (
	level  = new(slog.LevelVar)
	output io.Writer = os.Stdout
)

type Logger struct {
	*slog.Logger
}

// SetLevel changes the level of every logger built afterwards, info is the default
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetOutput redirects every logger built afterwards
func SetOutput(w io.Writer) {
	output = w
}

func BuildLogger() *Logger {
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))}
	return &logger
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	logger := BuildLogger()
	logger = &Logger{Logger: logger.With("path", ctx.Request.URL.Path)}
	return logger
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}

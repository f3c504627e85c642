package logger

import (
	"log/slog"
	"os"
)

// Logger — интерфейс логирования приложения.
// Errorf принимает ошибку отдельным аргументом, чтобы она попадала в структурированный атрибут.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

// SlogLogger реализует Logger поверх стандартного slog.
type SlogLogger struct {
	log *slog.Logger
}

// NewSlogLogger создает логгер с текстовым выводом в stdout.
// Уровень задается переменной окружения LOG_LEVEL (debug|info|warn|error), по умолчанию info.
func NewSlogLogger() *SlogLogger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return &SlogLogger{
		log: slog.New(handler),
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *SlogLogger) Debugf(format string, args ...any) {
	l.log.Debug(sprintf(format, args...))
}

func (l *SlogLogger) Infof(format string, args ...any) {
	l.log.Info(sprintf(format, args...))
}

func (l *SlogLogger) Warnf(format string, args ...any) {
	l.log.Warn(sprintf(format, args...))
}

func (l *SlogLogger) Errorf(err error, format string, args ...any) {
	l.log.Error(sprintf(format, args...), slog.Any("error", err))
}

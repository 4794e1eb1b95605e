package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type LoggerAdapter struct {
	log zerolog.Logger
}

// NewLoggerAdapter writes JSON lines in production and a readable console
// format everywhere else.
func NewLoggerAdapter(env string) *LoggerAdapter {
	var out io.Writer = os.Stdout
	level := zerolog.DebugLevel
	if env == "production" {
		level = zerolog.InfoLevel
	} else {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewLoggerAdapterWithWriter(out, level)
}

func NewLoggerAdapterWithWriter(w io.Writer, level zerolog.Level) *LoggerAdapter {
	return &LoggerAdapter{
		log: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

func NewNopLogger() *LoggerAdapter {
	return &LoggerAdapter{log: zerolog.Nop()}
}

func (l *LoggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.log.Error().Fields(fields).Msg(msg)
}

// Package logging configures the process-wide zerolog logger and adapts it
// for GORM's SQL logger.
package logging

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/config"
)

// Init sets the global level and output format. Logs always go to stderr so
// they never interleave with shell output on stdout.
func Init(cfg config.Log) {
	Setup(os.Stderr, cfg)
}

// Setup is Init with an explicit destination.
func Setup(w io.Writer, cfg config.Log) {
	zerolog.TimeFieldFormat = time.RFC3339

	if strings.EqualFold(cfg.Format, "json") {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	}

	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))
}

// ParseLevel falls back to warn for unknown or empty values.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.WarnLevel
	}
	return lvl
}

// gormLogger writes GORM's messages and SQL traces through zerolog. Failed
// statements are logged at error, slow ones at warn and everything else at
// debug.
type gormLogger struct {
	logger        zerolog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger returns a GORM logger that writes through the global zerolog
// logger. SQL traces are only emitted when the global level is debug or lower.
func NewGormLogger() gormlogger.Interface {
	level := gormlogger.Warn
	switch zerolog.GlobalLevel() {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		level = gormlogger.Info
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		level = gormlogger.Error
	case zerolog.Disabled:
		level = gormlogger.Silent
	}

	return &gormLogger{
		logger:        log.With().Str("component", "gorm").Logger(),
		level:         level,
		slowThreshold: 200 * time.Millisecond,
	}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		l.logger.Info().Msgf(msg, data...)
	}
}

func (l *gormLogger) Warn(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		l.logger.Warn().Msgf(msg, data...)
	}
}

func (l *gormLogger) Error(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		l.logger.Error().Msgf(msg, data...)
	}
}

func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var event *zerolog.Event
	msg := "query"
	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gormlogger.ErrRecordNotFound):
		event = l.logger.Error().Err(err)
		msg = "query failed"
	case l.slowThreshold != 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		event = l.logger.Warn().Dur("threshold", l.slowThreshold)
		msg = "slow query"
	case l.level >= gormlogger.Info:
		event = l.logger.Debug()
	default:
		return
	}

	sql, rows := fc()
	event.Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg(msg)
}

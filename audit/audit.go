// Package audit records ownership and permission changes as JSON lines.
package audit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nmeilick/oabutils/common"
	"github.com/nmeilick/oabutils/common/duration"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes one record per attempted mutation. The zero value is not
// usable; use New, NewWriter or Disabled.
type Logger struct {
	logger zerolog.Logger
	closer io.Closer
}

// Disabled returns a Logger that drops every record.
func Disabled() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// NewWriter returns a Logger writing records to w.
func NewWriter(w io.Writer) *Logger {
	return &Logger{
		logger: zerolog.New(w).With().
			Timestamp().
			Str("app", common.AppName).
			Int("euid", os.Geteuid()).
			Logger(),
	}
}

// New opens the rotating audit file described by cfg. A nil or disabled
// cfg yields a Disabled logger.
func New(cfg *Config) (*Logger, error) {
	if !cfg.Enabled() {
		return Disabled(), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0750); err != nil {
		return nil, fmt.Errorf("failed to create audit log directory: %w", err)
	}

	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     duration.Days(cfg.GetMaxAge()),
		Compress:   cfg.Compress,
	}

	l := NewWriter(w)
	l.closer = w
	return l, nil
}

// ChangeOwner records an ownership change attempt.
func (l *Logger) ChangeOwner(path string, uid, gid uint32, err error) {
	ev := l.event(err).
		Str("action", "change-owner").
		Str("path", path).
		Uint32("uid", uid).
		Uint32("gid", gid)
	ev.Msg("ownership change")
}

// SetMode records a permission change attempt. changed is false when the
// path already had the requested bits.
func (l *Logger) SetMode(path string, mode uint32, changed bool, err error) {
	ev := l.event(err).
		Str("action", "set-permissions").
		Str("path", path).
		Str("mode", fmt.Sprintf("%o", mode)).
		Bool("changed", changed)
	ev.Msg("permission change")
}

func (l *Logger) event(err error) *zerolog.Event {
	if err != nil {
		return l.logger.Error().Err(err)
	}
	return l.logger.Info()
}

// Close releases the audit file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

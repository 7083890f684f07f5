// Package obslog is the one place a concrete logging library is
// imported in this module, keeping the engine packages free of any
// logging import. It adapts github.com/rs/zerolog to the netkit.Logger
// port for the demonstration CLI (cmd/netkit-bench), which logs
// through it directly.
package obslog

import (
	"os"

	"github.com/rs/zerolog"
)

// ZeroLogger adapts a zerolog.Logger to netkit.Logger.
type ZeroLogger struct {
	log zerolog.Logger
}

// New builds a ZeroLogger writing human-readable console output,
// suited for local runs and development.
func New(debug bool) *ZeroLogger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return &ZeroLogger{log: zerolog.New(writer).Level(level).With().Timestamp().Logger()}
}

func withArgs(e *zerolog.Event, args ...any) *zerolog.Event {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, args[i+1])
	}
	return e
}

func (z *ZeroLogger) Trace(msg string, args ...any) {
	withArgs(z.log.Trace(), args...).Msg(msg)
}

func (z *ZeroLogger) Debug(msg string, args ...any) {
	withArgs(z.log.Debug(), args...).Msg(msg)
}

func (z *ZeroLogger) Info(msg string, args ...any) {
	withArgs(z.log.Info(), args...).Msg(msg)
}

func (z *ZeroLogger) Warn(msg string, args ...any) {
	withArgs(z.log.Warn(), args...).Msg(msg)
}

func (z *ZeroLogger) Error(msg string, err error, args ...any) {
	withArgs(z.log.Error().Err(err), args...).Msg(msg)
}

package logging

import (
	"go.uber.org/zap"

	"github.com/jask/cmdpattern/core"
)

// DispatchObserver logs every handled command at debug level.
func DispatchObserver(logger *zap.Logger) core.Observer {
	return func(e core.Event) {
		logger.Debug("command handled",
			zap.Uint64("seq", e.Seq),
			zap.String("command", e.Name),
			zap.Stringer("detail", commandStringer{e.Command}),
			zap.Duration("duration", e.Duration),
		)
	}
}

// DropLogger logs a pending command that was overwritten before it was flushed.
func DropLogger(logger *zap.Logger) func(dropped, replacement core.Command) {
	return func(dropped, replacement core.Command) {
		logger.Warn("pending command replaced",
			zap.Stringer("dropped", commandStringer{dropped}),
			zap.Stringer("replacement", commandStringer{replacement}),
		)
	}
}

type commandStringer struct{ cmd core.Command }

func (c commandStringer) String() string {
	if c.cmd == nil {
		return core.NoOp{}.Name()
	}
	if s, ok := c.cmd.(interface{ String() string }); ok {
		return s.String()
	}
	return c.cmd.Name()
}

package hostfuncs

import (
	"context"
	"log/slog"

	"github.com/gibberlink-dev/gibberlink-bridge/callback"
	"github.com/gibberlink-dev/gibberlink-bridge/domain/errors"
	"github.com/gibberlink-dev/gibberlink-bridge/wireformat"
)

// NewEmitEventHandler builds the emit_hardware_event handler: it decodes
// the wire event and hands it to the callback registry. The ack reports
// whether a callback was installed at delivery time; a malformed event is
// acked with a structured error so the core never traps on a bad payload.
func NewEmitEventHandler(reg *callback.Registry) ByteHandler {
	return NewJSONHandler(func(ctx context.Context, req wireformat.HardwareEventWire) wireformat.EventAckWire {
		ev, err := req.ToEvent()
		if err != nil {
			wfErr := &errors.WireFormatError{Err: err, Operation: "decode", Type: "HardwareEventWire"}
			return wireformat.EventAckWire{Error: errors.ToErrorDetail(wfErr)}
		}

		delivered := reg.Registered()
		reg.Deliver(ev)
		return wireformat.EventAckWire{Delivered: delivered}
	})
}

// NewLogMessageHandler builds the log_message handler, routing core log
// records into the host's structured logger.
func NewLogMessageHandler(log *slog.Logger) ByteHandler {
	if log == nil {
		log = slog.Default()
	}
	return NewJSONHandler(func(ctx context.Context, req wireformat.LogMessageWire) wireformat.EventAckWire {
		log.Log(ctx, coreLevel(req.Level), req.Message, "source", "core")
		return wireformat.EventAckWire{Delivered: true}
	})
}

func coreLevel(level string) slog.Level {
	switch level {
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

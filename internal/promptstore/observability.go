package promptstore

import (
	"go.uber.org/zap"
)

// CallEvent records metadata about a single store request.
type CallEvent struct {
	Store     string
	Op        string
	Phase     string
	Count     int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about store calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to a zap logger at debug level, or warn
// level for failures.
type LogObserver struct {
	logger *zap.Logger
}

// NewLogObserver creates an Observer that logs events to logger.
func NewLogObserver(logger *zap.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	fields := []zap.Field{
		zap.String("store", event.Store),
		zap.String("op", event.Op),
		zap.String("phase", event.Phase),
		zap.Int64("latency_ms", event.LatencyMs),
	}
	if !event.Success {
		o.logger.Warn("prompt_store_call", append(fields, zap.String("error_code", event.ErrorCode))...)
		return
	}
	o.logger.Debug("prompt_store_call", append(fields, zap.Int("count", event.Count))...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

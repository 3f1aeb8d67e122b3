package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTimeout bounds one sink call when NewRecorder gets zero.
const DefaultTimeout = 5 * time.Second

// Recorder hands events to a sink in the background. Record never blocks
// on the sink; Close waits for deliveries still in flight.
type Recorder struct {
	sink    Sink
	logger  *zap.Logger
	timeout time.Duration

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewRecorder(sink Sink, logger *zap.Logger, timeout time.Duration) *Recorder {
	if sink == nil {
		sink = NoopSink{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Recorder{sink: sink, logger: logger, timeout: timeout}
}

// Record schedules delivery of e. The delivery outlives ctx cancellation
// but not the recorder's own timeout. Events recorded after Close are dropped.
func (r *Recorder) Record(ctx context.Context, e domain.SuggestionEvent) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		r.logger.Debug("analytics recorder closed, dropping event", zap.String("event_id", e.ID))
		return
	}
	r.wg.Add(1)
	r.mu.Unlock()

	go r.deliver(context.WithoutCancel(ctx), e)
}

func (r *Recorder) deliver(ctx context.Context, e domain.SuggestionEvent) {
	defer r.wg.Done()
	defer func() {
		if p := recover(); p != nil {
			r.logger.Warn("analytics sink panicked",
				zap.String("event_id", e.ID), zap.Any("panic", p))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	if err := r.sink.Record(ctx, e); err != nil {
		r.logger.Warn("analytics event not recorded",
			zap.String("event_id", e.ID),
			zap.String("user_id", e.UserID),
			zap.Error(err))
		return
	}
	r.logger.Debug("analytics event recorded",
		zap.String("event_id", e.ID),
		zap.String("phase", e.PhaseDetected),
		zap.Duration("latency", time.Since(start)))
}

// Close stops accepting events and waits for in-flight deliveries or ctx,
// whichever ends first. It is safe to call more than once.
func (r *Recorder) Close(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for analytics deliveries: %w", ctx.Err())
	}
}

package progress

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shorts_studio/internal/domain"
)

// Reporter emits simulated progress on a fixed tick while a call is
// outstanding.
type Reporter struct {
	sim      *Simulator
	interval time.Duration
	logger   *slog.Logger
}

func NewReporter(sim *Simulator, interval time.Duration, logger *slog.Logger) *Reporter {
	return &Reporter{
		sim:      sim,
		interval: interval,
		logger:   logger,
	}
}

// Start emits the initial progress and then one update per tick until the
// returned stop function is called or ctx ends. Stop cancels the ticker and
// waits for the loop to exit, so emit is never called after stop returns.
// Stop is safe to call more than once.
func (r *Reporter) Start(ctx context.Context, emit func(domain.Progress)) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		r.run(ctx, emit)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

func (r *Reporter) run(ctx context.Context, emit func(domain.Progress)) {
	r.logger.Debug("progress reporter started", "interval", r.interval)
	emit(r.sim.Current())

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("progress reporter stopped")
			return
		case <-ticker.C:
			emit(r.sim.Advance())
		}
	}
}

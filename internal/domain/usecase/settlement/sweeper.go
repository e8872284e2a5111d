package settlement

import (
	"context"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/persistence"
)

// Sweeper periodically marks stale pending_otp challenges expired. Expiry is
// still enforced at confirm time regardless; the sweep exists so abandoned
// challenges reach a terminal state for observability instead of lingering.
type Sweeper struct {
	pendingRepo  persistence.PendingTransactionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	interval     time.Duration
	onSwept      func(count int64)

	mu      sync.Mutex
	stop    chan struct{}
	stopped sync.WaitGroup
}

// NewSweeper creates a sweeper with the given sweep interval
func NewSweeper(
	pendingRepo persistence.PendingTransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	interval time.Duration,
) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		pendingRepo:  pendingRepo,
		timeProvider: timeProvider,
		logger:       logger,
		interval:     interval,
	}
}

// OnSwept registers a callback invoked with the count after each sweep that
// expired at least one challenge. Must be set before Start.
func (w *Sweeper) OnSwept(fn func(count int64)) {
	w.onSwept = fn
}

// Start launches the background sweep loop. Calling Start on a running
// sweeper is a no-op.
func (w *Sweeper) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stop != nil {
		return
	}
	w.stop = make(chan struct{})
	w.stopped.Add(1)

	go w.run(w.stop)

	w.logger.Info("Expiry sweeper started", map[string]any{
		"interval": w.interval.String(),
	})
}

// Stop terminates the sweep loop and waits for it to finish
func (w *Sweeper) Stop() {
	w.mu.Lock()
	if w.stop == nil {
		w.mu.Unlock()
		return
	}
	close(w.stop)
	w.stop = nil
	w.mu.Unlock()

	w.stopped.Wait()
	w.logger.Info("Expiry sweeper stopped", nil)
}

func (w *Sweeper) run(stop chan struct{}) {
	defer w.stopped.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.SweepOnce(context.Background())
		case <-stop:
			return
		}
	}
}

// SweepOnce runs a single sweep pass, returning the number of challenges expired
func (w *Sweeper) SweepOnce(ctx context.Context) int64 {
	swept, err := w.pendingRepo.ExpireStale(ctx, w.timeProvider.Now())
	if err != nil {
		w.logger.Error("Expiry sweep failed", map[string]any{
			"error": err.Error(),
		})
		return 0
	}
	if swept > 0 {
		w.logger.Info("Expired stale pending transactions", map[string]any{
			"count": swept,
		})
		if w.onSwept != nil {
			w.onSwept(swept)
		}
	}
	return swept
}

package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/trademinutes/tmclient/internal/logging"
)

// DefaultInterval is the refetch period of the poller.
const DefaultInterval = 30 * time.Second

// Refresher is what the poller drives, normally a *Store.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Poller refreshes on a fixed interval, starting with an immediate fetch.
type Poller struct {
	target   Refresher
	interval time.Duration
	log      logging.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(target Refresher, interval time.Duration, log logging.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{target: target, interval: interval, log: log}
}

// Run polls until ctx is done. Fetch errors are logged and the schedule
// continues. It always returns nil.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	if err := p.target.Refresh(ctx); err != nil && ctx.Err() == nil {
		p.log.Warn(ctx, "fetching notifications failed", "error", err)
	}
}

// Start runs the poller in the background. Starting a running poller is a
// no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel, p.done = cancel, done

	go func() {
		defer close(done)
		_ = p.Run(ctx)
	}()
}

// Stop cancels the schedule and waits for the loop to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

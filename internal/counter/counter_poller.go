package counter

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type PollerConfig struct {
	Interval    time.Duration
	Concurrency int
	Logger      *zap.Logger
	Now         func() time.Time
}

// Poller is the only component that refreshes counts on a schedule.
type Poller struct {
	svc   Service
	cache Cache
	cfg   PollerConfig
}

func NewPoller(svc Service, cache Cache, cfg PollerConfig) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Poller{svc: svc, cache: cache, cfg: cfg}
}

func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	p.cfg.Logger.Info("count poller started", zap.Duration("interval", p.cfg.Interval))

	for {
		select {
		case <-ctx.Done():
			p.cfg.Logger.Info("count poller stopped")
			return nil
		case <-ticker.C:
			if err := p.Tick(ctx); err != nil {
				p.cfg.Logger.Error("count poll failed", zap.Error(err))
			}
		}
	}
}

// Tick refreshes every active session once.
func (p *Poller) Tick(ctx context.Context) error {
	sids, err := p.cache.Active(ctx, p.cfg.Now())
	if err != nil {
		return err
	}
	if len(sids) == 0 {
		return nil
	}

	p.cfg.Logger.Debug("refreshing counts", zap.Int("sessions", len(sids)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency)
	for _, sid := range sids {
		sid := sid
		g.Go(func() error {
			p.svc.Refresh(gctx, sid)
			return nil
		})
	}
	return g.Wait()
}

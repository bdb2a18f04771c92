package counter

import (
	"context"
	"errors"
	"time"

	"go-pet-storefront/internal/backend"
	"go-pet-storefront/internal/session"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	Get(ctx context.Context, sess session.Session) (Counts, error)
	// Refresh recomputes counts for sid and publishes them. Sessions without
	// a live token are dropped from the active set.
	Refresh(ctx context.Context, sid string)
	Invalidate(ctx context.Context, sid string) error
	Subscribe(ctx context.Context, sid string) (<-chan Counts, func())
	Touch(ctx context.Context, sid string)
}

type Broadcaster interface {
	Publish(ctx context.Context, sid string, counts Counts) error
	Subscribe(sid string) (<-chan Counts, func())
}

type Deps struct {
	Source Source
	Tokens TokenSource
	Cache  Cache
	Hub    Broadcaster
	Logger *zap.Logger
	Now    func() time.Time
}

type service struct {
	source Source
	tokens TokenSource
	cache  Cache
	hub    Broadcaster
	logger *zap.Logger
	now    func() time.Time
}

func NewService(deps Deps) Service {
	if deps.Source == nil {
		panic("count source cannot be nil")
	}
	if deps.Tokens == nil {
		panic("token source cannot be nil")
	}
	if deps.Cache == nil {
		panic("count cache cannot be nil")
	}
	if deps.Hub == nil {
		deps.Hub = NewHub(nil, deps.Logger)
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &service{
		source: deps.Source,
		tokens: deps.Tokens,
		cache:  deps.Cache,
		hub:    deps.Hub,
		logger: deps.Logger,
		now:    deps.Now,
	}
}

func (s *service) fetch(ctx context.Context, token string) (Counts, error) {
	ctx = backend.WithToken(ctx, token)

	var (
		carts []backend.Cart
		items []backend.WishlistItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		carts, err = s.source.ListUserCarts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.source.ListWishlist(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Counts{}, err
	}

	counts := Counts{Wishlist: len(items), UpdatedAt: s.now()}
	for _, c := range carts {
		counts.Cart += c.Quantity()
	}
	return counts, nil
}

func (s *service) Get(ctx context.Context, sess session.Session) (Counts, error) {
	if !sess.Valid(s.now()) {
		return Counts{}, session.ErrUnauthorized
	}
	s.Touch(ctx, sess.ID)

	logger := s.logger.With(zap.String("sid", sess.ID))

	cached, ok, err := s.cache.Get(ctx, sess.ID)
	if err != nil {
		logger.Warn("count cache read failed", zap.Error(err))
	}
	if ok {
		return cached, nil
	}

	counts, err := s.fetch(ctx, sess.Token)
	if err != nil {
		return Counts{}, backend.AsAppError(err)
	}
	if err := s.cache.Set(ctx, sess.ID, counts); err != nil {
		logger.Warn("count cache write failed", zap.Error(err))
	}
	return counts, nil
}

func (s *service) Refresh(ctx context.Context, sid string) {
	logger := s.logger.With(zap.String("sid", sid))

	token, err := s.tokens.Load(ctx, sid)
	if errors.Is(err, session.ErrNoSession) {
		s.drop(ctx, sid, "session gone")
		return
	}
	if err != nil {
		logger.Warn("load token failed", zap.Error(err))
		return
	}
	if _, err := session.ParseToken(token, s.now()); err != nil {
		s.drop(ctx, sid, "token not usable")
		return
	}

	counts, err := s.fetch(ctx, token)
	if err != nil {
		logger.Warn("fetch counts failed", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, sid, counts); err != nil {
		logger.Warn("count cache write failed", zap.Error(err))
	}
	if err := s.hub.Publish(ctx, sid, counts); err != nil {
		logger.Warn("publish counts failed", zap.Error(err))
	}
}

func (s *service) drop(ctx context.Context, sid, reason string) {
	s.logger.Debug("dropping session from count polling", zap.String("sid", sid), zap.String("reason", reason))
	if err := s.cache.Drop(ctx, sid); err != nil {
		s.logger.Warn("drop session failed", zap.String("sid", sid), zap.Error(err))
	}
}

func (s *service) Invalidate(ctx context.Context, sid string) error {
	return s.cache.Invalidate(ctx, sid)
}

func (s *service) Subscribe(ctx context.Context, sid string) (<-chan Counts, func()) {
	s.Touch(ctx, sid)
	return s.hub.Subscribe(sid)
}

func (s *service) Touch(ctx context.Context, sid string) {
	if err := s.cache.Touch(ctx, sid, s.now()); err != nil {
		s.logger.Warn("touch session failed", zap.String("sid", sid), zap.Error(err))
	}
}

package coupon

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-pet-storefront/internal/backend"
	"go-pet-storefront/internal/pricing"
	"go-pet-storefront/internal/session"

	"go.uber.org/zap"
)

//go:generate mockgen -source=coupon_service.go -destination=../mock/coupon/coupon_service_mock.go -package=mock
type Service interface {
	Validate(ctx context.Context, code string, now time.Time) (backend.Coupon, error)
	Apply(ctx context.Context, sess session.Session, code string) (ApplyResponse, error)
	Remove(ctx context.Context, sess session.Session) error
	Applied(ctx context.Context, sess session.Session) (*backend.Coupon, error)
}

type Deps struct {
	Repo   Repository
	Store  Store
	TTL    time.Duration
	Logger *zap.Logger
	Now    func() time.Time
}

type service struct {
	repo   Repository
	store  Store
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewService(deps Deps) Service {
	if deps.Repo == nil || deps.Store == nil {
		panic("coupon service needs a repository and a store")
	}
	if deps.TTL <= 0 {
		deps.TTL = 30 * time.Minute
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &service{
		repo:   deps.Repo,
		store:  deps.Store,
		ttl:    deps.TTL,
		logger: deps.Logger,
		now:    deps.Now,
	}
}

// Validate looks the code up at the backend. Any non-ok lookup means the
// code is invalid; a coupon whose expiry is before now is rejected.
func (s *service) Validate(ctx context.Context, code string, now time.Time) (backend.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return backend.Coupon{}, ErrCouponInvalid
	}

	c, err := s.repo.GetCoupon(ctx, code)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			return backend.Coupon{}, backend.AsAppError(err)
		}
		if errors.Is(err, backend.ErrNotFound) {
			return backend.Coupon{}, ErrCouponInvalid
		}
		return backend.Coupon{}, backend.AsAppError(err)
	}
	if c.Code == "" {
		c.Code = code
	}

	if c.ExpiredAt(now) {
		return backend.Coupon{}, ErrCouponExpired
	}
	return c, nil
}

func (s *service) Apply(ctx context.Context, sess session.Session, code string) (ApplyResponse, error) {
	now := s.now()
	if !sess.Valid(now) {
		return ApplyResponse{}, session.ErrUnauthorized
	}
	ctx = backend.WithToken(ctx, sess.Token)

	c, err := s.Validate(ctx, code, now)
	if err != nil {
		return ApplyResponse{}, err
	}

	carts, err := s.repo.ListUserCarts(ctx)
	if err != nil {
		return ApplyResponse{}, backend.AsAppError(err)
	}

	if err := s.store.Save(ctx, sess.ID, c.Code, s.ttl); err != nil {
		s.logger.Error("failed to store coupon", zap.String("sid", sess.ID), zap.Error(err))
		return ApplyResponse{}, ErrCouponFailed
	}

	return ApplyResponse{
		Code:    c.Code,
		Summary: pricing.ComputeTotal(carts, &c, now),
	}, nil
}

func (s *service) Remove(ctx context.Context, sess session.Session) error {
	if err := s.store.Delete(ctx, sess.ID); err != nil {
		s.logger.Error("failed to remove coupon", zap.String("sid", sess.ID), zap.Error(err))
		return ErrCouponFailed
	}
	return nil
}

// Applied re-validates the stored coupon. Nil means none is applied; an
// expired or withdrawn coupon is dropped from the checkout session.
func (s *service) Applied(ctx context.Context, sess session.Session) (*backend.Coupon, error) {
	code, err := s.store.Load(ctx, sess.ID)
	if err != nil {
		s.logger.Error("failed to load coupon", zap.String("sid", sess.ID), zap.Error(err))
		return nil, ErrCouponFailed
	}
	if code == "" {
		return nil, nil
	}

	c, err := s.Validate(backend.WithToken(ctx, sess.Token), code, s.now())
	if errors.Is(err, ErrCouponExpired) || errors.Is(err, ErrCouponInvalid) {
		s.logger.Info("dropping stale coupon", zap.String("sid", sess.ID), zap.String("code", code))
		if delErr := s.store.Delete(ctx, sess.ID); delErr != nil {
			s.logger.Warn("failed to drop stale coupon", zap.Error(delErr))
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

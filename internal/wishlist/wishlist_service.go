package wishlist

import (
	"context"
	"strings"
	"time"

	"go-pet-storefront/internal/backend"
	"go-pet-storefront/internal/session"

	"go.uber.org/zap"
)

//go:generate mockgen -source=wishlist_service.go -destination=../mock/wishlist/wishlist_service_mock.go -package=mock
type Service interface {
	Toggle(ctx context.Context, sess session.Session, productID, shopID string) (ToggleResponse, error)
	List(ctx context.Context, sess session.Session) (WishlistResponse, error)
	Contains(ctx context.Context, sess session.Session, productID string) (bool, error)
}

type CountRefresher interface {
	Refresh(ctx context.Context, sid string)
}

type Deps struct {
	Repo      Repository
	Refresher CountRefresher
	Logger    *zap.Logger
	Now       func() time.Time
}

type service struct {
	repo      Repository
	refresher CountRefresher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("wishlist repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &service{
		repo:      deps.Repo,
		refresher: deps.Refresher,
		logger:    deps.Logger,
		now:       deps.Now,
	}
}

func (s *service) authorize(ctx context.Context, sess session.Session) (context.Context, error) {
	if !sess.Valid(s.now()) {
		return ctx, session.ErrUnauthorized
	}
	return backend.WithToken(ctx, sess.Token), nil
}

func contains(items []backend.WishlistItem, productID string) bool {
	for _, item := range items {
		if item.ProductRef() == productID {
			return true
		}
	}
	return false
}

// Toggle flips membership of productID. Membership is read from the full
// list; two toggles racing each other can both see the same state.
func (s *service) Toggle(ctx context.Context, sess session.Session, productID, shopID string) (ToggleResponse, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ToggleResponse{}, ErrInvalidProductID
	}
	ctx, err := s.authorize(ctx, sess)
	if err != nil {
		return ToggleResponse{}, err
	}

	items, err := s.repo.ListWishlist(ctx)
	if err != nil {
		return ToggleResponse{}, backend.AsAppError(err)
	}

	logger := s.logger.With(zap.String("sid", sess.ID), zap.String("product_id", productID))

	res := ToggleResponse{ProductID: productID}
	if contains(items, productID) {
		if err := s.repo.RemoveWishlist(ctx, productID); err != nil {
			logger.Warn("remove from wishlist failed", zap.Error(err))
			return ToggleResponse{}, backend.AsAppError(err)
		}
		res.InWishlist = false
	} else {
		if shopID == "" {
			return ToggleResponse{}, ErrInvalidShopID
		}
		if err := s.repo.AddWishlist(ctx, productID, shopID); err != nil {
			logger.Warn("add to wishlist failed", zap.Error(err))
			return ToggleResponse{}, backend.AsAppError(err)
		}
		res.InWishlist = true
	}

	if s.refresher != nil {
		s.refresher.Refresh(ctx, sess.ID)
	}
	return res, nil
}

func (s *service) List(ctx context.Context, sess session.Session) (WishlistResponse, error) {
	ctx, err := s.authorize(ctx, sess)
	if err != nil {
		return WishlistResponse{}, err
	}

	items, err := s.repo.ListWishlist(ctx)
	if err != nil {
		return WishlistResponse{}, backend.AsAppError(err)
	}
	if items == nil {
		items = []backend.WishlistItem{}
	}
	return WishlistResponse{Items: items, ItemCount: len(items)}, nil
}

func (s *service) Contains(ctx context.Context, sess session.Session, productID string) (bool, error) {
	if productID == "" {
		return false, ErrInvalidProductID
	}
	ctx, err := s.authorize(ctx, sess)
	if err != nil {
		return false, err
	}

	items, err := s.repo.ListWishlist(ctx)
	if err != nil {
		return false, backend.AsAppError(err)
	}
	return contains(items, productID), nil
}

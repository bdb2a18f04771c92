package cart

import (
	"context"
	"errors"
	"time"

	"go-pet-storefront/internal/backend"
	"go-pet-storefront/internal/session"

	"go.uber.org/zap"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Reconcile(ctx context.Context, sess session.Session, req ReconcileRequest) (ReconcileResult, error)
	List(ctx context.Context, sess session.Session) ([]backend.Cart, error)
	ShopCart(ctx context.Context, sess session.Session, shopID string) (ShopCartResponse, error)
	Count(ctx context.Context, sess session.Session) (int, error)
}

// CountRefresher is told when the caller's cart changed.
type CountRefresher interface {
	Refresh(ctx context.Context, sid string)
}

type Deps struct {
	Repo      Repository
	Locker    Locker
	Refresher CountRefresher
	Logger    *zap.Logger
	Now       func() time.Time
}

type service struct {
	repo      Repository
	locker    Locker
	refresher CountRefresher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("cart repository cannot be nil")
	}
	if deps.Locker == nil {
		deps.Locker = noopLocker{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &service{
		repo:      deps.Repo,
		locker:    deps.Locker,
		refresher: deps.Refresher,
		logger:    deps.Logger,
		now:       deps.Now,
	}
}

// ========================
// helpers
// ========================

func (s *service) authorize(ctx context.Context, sess session.Session) (context.Context, error) {
	if !sess.Valid(s.now()) {
		return ctx, session.ErrUnauthorized
	}
	return backend.WithToken(ctx, sess.Token), nil
}

func desiredQuantity(q *int) (int, error) {
	if q == nil {
		return 1, nil
	}
	if *q <= 0 {
		return 0, ErrInvalidQuantity
	}
	return *q, nil
}

func findShopCart(carts []backend.Cart, shopID string) (backend.Cart, bool) {
	for _, c := range carts {
		if c.ShopRef() == shopID {
			return c, true
		}
	}
	return backend.Cart{}, false
}

// mergedVariations returns one entry per product variation: the existing
// quantity plus qty when the cart already holds the variation, else qty.
func mergedVariations(cart backend.Cart, variations []backend.ProductVariation, qty int) []backend.VariationQuantity {
	existing := make(map[string]int, len(cart.CartItems))
	for _, item := range cart.CartItems {
		existing[item.VariationRef()] += item.Quantity
	}

	out := make([]backend.VariationQuantity, 0, len(variations))
	for _, v := range variations {
		out = append(out, backend.VariationQuantity{
			VariationID: v.ID,
			Quantity:    existing[v.ID] + qty,
		})
	}
	return out
}

func newVariations(variations []backend.ProductVariation, qty int) []backend.VariationQuantity {
	out := make([]backend.VariationQuantity, 0, len(variations))
	for _, v := range variations {
		price := v.Price
		out = append(out, backend.VariationQuantity{
			VariationID: v.ID,
			Quantity:    qty,
			Price:       &price,
		})
	}
	return out
}

func (s *service) refresh(ctx context.Context, sid string) {
	if s.refresher == nil {
		return
	}
	s.refresher.Refresh(ctx, sid)
}

// ========================
// operations
// ========================

// Reconcile adds the product to the caller's cart for its shop with exactly
// one backend write: an update carrying merged absolute quantities when a
// cart for the shop exists, otherwise a create.
func (s *service) Reconcile(ctx context.Context, sess session.Session, req ReconcileRequest) (ReconcileResult, error) {
	ctx, err := s.authorize(ctx, sess)
	if err != nil {
		return ReconcileResult{}, err
	}

	qty, err := desiredQuantity(req.Quantity)
	if err != nil {
		return ReconcileResult{}, err
	}
	shopID := req.Product.ShopRef()
	if shopID == "" {
		return ReconcileResult{}, ErrMissingShop
	}
	if len(req.Product.Variations) == 0 {
		return ReconcileResult{}, ErrNoVariations
	}

	logger := s.logger.With(
		zap.String("sid", sess.ID),
		zap.String("shop_id", shopID),
		zap.String("product_id", req.Product.ID),
	)

	unlock, err := s.locker.Lock(ctx, sess.ID, shopID)
	if err != nil {
		if errors.Is(err, errLockHeld) {
			return ReconcileResult{}, ErrCartBusy
		}
		if ctx.Err() != nil {
			return ReconcileResult{}, ctx.Err()
		}
		logger.Error("failed to acquire cart lock", zap.Error(err))
		return ReconcileResult{}, ErrCartFailed
	}
	defer unlock()

	carts, err := s.repo.ListUserCarts(ctx)
	if err != nil {
		logger.Warn("list carts failed", zap.Error(err))
		return ReconcileResult{}, backend.AsAppError(err)
	}

	var result ReconcileResult
	if existing, ok := findShopCart(carts, shopID); ok {
		updated, err := s.repo.UpdateCart(ctx, backend.UpdateCartRequest{
			ShopID:            shopID,
			UpdatedVariations: mergedVariations(existing, req.Product.Variations, qty),
		})
		if err != nil {
			logger.Warn("update cart failed", zap.Error(err))
			return ReconcileResult{}, backend.AsAppError(err)
		}
		result = ReconcileResult{Cart: updated}
	} else {
		created, err := s.repo.CreateCart(ctx, backend.CreateCartRequest{
			ShopID:            shopID,
			ProductVariations: newVariations(req.Product.Variations, qty),
		})
		if err != nil {
			logger.Warn("create cart failed", zap.Error(err))
			return ReconcileResult{}, backend.AsAppError(err)
		}
		result = ReconcileResult{Cart: created, Created: true}
	}

	logger.Info("cart reconciled",
		zap.Bool("created", result.Created),
		zap.Int("variations", len(req.Product.Variations)),
		zap.Int("quantity", qty),
	)
	s.refresh(ctx, sess.ID)

	return result, nil
}

func (s *service) List(ctx context.Context, sess session.Session) ([]backend.Cart, error) {
	ctx, err := s.authorize(ctx, sess)
	if err != nil {
		return nil, err
	}

	carts, err := s.repo.ListUserCarts(ctx)
	if err != nil {
		return nil, backend.AsAppError(err)
	}
	if carts == nil {
		carts = []backend.Cart{}
	}
	return carts, nil
}

// ShopCart reports the caller's cart for one shop. A 404 from the backend
// is the normal "no cart yet" answer, not an error.
func (s *service) ShopCart(ctx context.Context, sess session.Session, shopID string) (ShopCartResponse, error) {
	if shopID == "" {
		return ShopCartResponse{}, ErrInvalidShopID
	}
	ctx, err := s.authorize(ctx, sess)
	if err != nil {
		return ShopCartResponse{}, err
	}

	c, err := s.repo.GetShopCart(ctx, shopID)
	if errors.Is(err, backend.ErrNotFound) {
		return ShopCartResponse{Exists: false}, nil
	}
	if err != nil {
		return ShopCartResponse{}, backend.AsAppError(err)
	}
	return ShopCartResponse{Exists: true, Cart: &c}, nil
}

func (s *service) Count(ctx context.Context, sess session.Session) (int, error) {
	carts, err := s.List(ctx, sess)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, c := range carts {
		total += c.Quantity()
	}
	return total, nil
}

package order

import (
	"context"
	"errors"
	"time"

	"go-pet-storefront/internal/backend"
	"go-pet-storefront/internal/coupon"
	"go-pet-storefront/internal/messaging/kafka/producer"
	"go-pet-storefront/internal/pricing"
	"go-pet-storefront/internal/session"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context, sess session.Session) (SummaryResponse, error)
	PlaceOrder(ctx context.Context, sess session.Session, req CheckoutRequest) (CheckoutResponse, error)
}

type service struct {
	repo      Repository
	coupons   CouponSource
	publisher EventPublisher
	refresher CountRefresher
	logger    *zap.Logger
	now       func() time.Time
	validate  *validator.Validate
}

type Deps struct {
	Repo      Repository
	Coupons   CouponSource
	Publisher EventPublisher
	Refresher CountRefresher
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("order repository cannot be nil")
	}
	if deps.Coupons == nil {
		panic("coupon source cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &service{
		repo:      deps.Repo,
		coupons:   deps.Coupons,
		publisher: deps.Publisher,
		refresher: deps.Refresher,
		logger:    deps.Logger,
		now:       deps.Now,
		validate:  validator.New(),
	}
}

// nonEmpty drops carts without lines; the backend keeps them around after
// their last item is removed.
func nonEmpty(carts []backend.Cart) []backend.Cart {
	out := make([]backend.Cart, 0, len(carts))
	for _, c := range carts {
		if len(c.CartItems) > 0 {
			out = append(out, c)
		}
	}
	return out
}

func (s *service) loadCarts(ctx context.Context, sess session.Session) (context.Context, []backend.Cart, error) {
	if !sess.Valid(s.now()) {
		return ctx, nil, session.ErrUnauthorized
	}
	ctx = backend.WithToken(ctx, sess.Token)

	carts, err := s.repo.ListUserCarts(ctx)
	if err != nil {
		return ctx, nil, backend.AsAppError(err)
	}
	return ctx, nonEmpty(carts), nil
}

func (s *service) Summary(ctx context.Context, sess session.Session) (SummaryResponse, error) {
	ctx, carts, err := s.loadCarts(ctx, sess)
	if err != nil {
		return SummaryResponse{}, err
	}

	applied, err := s.coupons.Applied(ctx, sess)
	if err != nil {
		// a coupon that went stale since it was applied just stops counting
		if !errors.Is(err, coupon.ErrCouponExpired) && !errors.Is(err, coupon.ErrCouponInvalid) {
			return SummaryResponse{}, err
		}
		applied = nil
	}

	return SummaryResponse{
		Carts:   carts,
		Summary: pricing.ComputeTotal(carts, applied, s.now()),
	}, nil
}

// PlaceOrder submits every non-empty cart in one bulk checkout. The applied
// coupon is re-validated first; if it expired the order is not placed.
func (s *service) PlaceOrder(ctx context.Context, sess session.Session, req CheckoutRequest) (CheckoutResponse, error) {
	logger := s.logger.With(zap.String("sid", sess.ID), zap.String("user_id", sess.UserID))

	// 1. Validate request & load carts
	if err := s.validate.Struct(req); err != nil {
		return CheckoutResponse{}, ErrInvalidCheckout
	}

	ctx, carts, err := s.loadCarts(ctx, sess)
	if err != nil {
		return CheckoutResponse{}, err
	}
	if len(carts) == 0 {
		return CheckoutResponse{}, ErrCartEmpty
	}

	// 2. Coupon, checked again at placement time
	applied, err := s.coupons.Applied(ctx, sess)
	if err != nil {
		logger.Info("coupon rejected at placement", zap.Error(err))
		return CheckoutResponse{}, err
	}

	// 3. Totals & per-shop payloads
	now := s.now()
	summary := pricing.ComputeTotal(carts, applied, now)
	orders := buildShopOrders(summary, carts, req)

	// 4. Submit
	result, err := s.repo.BulkCheckout(ctx, orders)
	if err != nil {
		logger.Error("bulk checkout failed", zap.Int("shops", len(orders)), zap.Error(err))
		return CheckoutResponse{}, backend.AsAppError(err)
	}

	logger = logger.With(zap.Int("orders", len(result.Orders)), zap.String("total", summary.Total.StringFixed(2)))
	logger.Info("order placed")

	// 5. Post-order housekeeping, never fails the request
	if applied != nil {
		if err := s.coupons.Remove(ctx, sess); err != nil {
			logger.Warn("failed to clear coupon after checkout", zap.Error(err))
		}
	}
	s.publishPlaced(ctx, logger, sess, summary, carts, result, now)
	if s.refresher != nil {
		s.refresher.Refresh(ctx, sess.ID)
	}

	return CheckoutResponse{Orders: result.Orders, Summary: summary}, nil
}

func buildShopOrders(summary pricing.Summary, carts []backend.Cart, req CheckoutRequest) []backend.ShopOrder {
	couponCode := ""
	if summary.Coupon != nil {
		couponCode = summary.Coupon.Code
	}

	shares := pricing.Allocate(summary, carts)
	orders := make([]backend.ShopOrder, 0, len(carts))
	for i, c := range carts {
		lines := make([]backend.OrderLine, 0, len(c.CartItems))
		for _, item := range c.CartItems {
			lines = append(lines, backend.OrderLine{
				VariationID: item.VariationRef(),
				Quantity:    item.Quantity,
				Price:       item.Price,
			})
		}

		share := shares[i]
		order := backend.ShopOrder{
			ShopID:          share.ShopID,
			CartID:          share.CartID,
			Items:           lines,
			Subtotal:        share.Subtotal,
			DeliveryFee:     share.Delivery,
			Tax:             share.Tax,
			Discount:        share.Discount,
			Total:           share.Total,
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			Note:            req.Note,
		}
		if i == 0 {
			order.CouponCode = couponCode
		}
		orders = append(orders, order)
	}
	return orders
}

func (s *service) publishPlaced(
	ctx context.Context,
	logger *zap.Logger,
	sess session.Session,
	summary pricing.Summary,
	carts []backend.Cart,
	result backend.CheckoutResult,
	now time.Time,
) {
	if s.publisher == nil {
		return
	}

	payload := OrderPlacedPayload{
		SessionID: sess.ID,
		UserID:    sess.UserID,
		Total:     summary.Total,
		PlacedAt:  now,
	}
	for _, o := range result.Orders {
		payload.OrderIDs = append(payload.OrderIDs, o.ID)
	}
	for _, c := range carts {
		payload.ShopIDs = append(payload.ShopIDs, c.ShopRef())
	}
	if summary.Coupon != nil {
		payload.CouponCode = summary.Coupon.Code
	}

	err := s.publisher.Publish(ctx, producer.Event{
		Type:          EventOrderPlaced,
		AggregateType: AggregateOrder,
		AggregateID:   sess.ID,
		Payload:       payload,
	})
	if err != nil {
		logger.Warn("failed to publish order event", zap.Error(err))
	}
}

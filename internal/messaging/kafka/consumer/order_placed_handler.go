package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-pet-storefront/internal/order"

	"go.uber.org/zap"
)

func handleOrderPlaced(ctx context.Context, payload []byte, counts CountInvalidator, logger *zap.Logger) error {
	var data order.OrderPlacedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return fmt.Errorf("decode order placed payload: %w", err)
	}
	if data.SessionID == "" {
		logger.Warn("order placed without session id", zap.Strings("order_ids", data.OrderIDs))
		return nil
	}

	if err := counts.Invalidate(ctx, data.SessionID); err != nil {
		return fmt.Errorf("invalidate counts: %w", err)
	}
	counts.Refresh(ctx, data.SessionID)

	logger.Info("counts refreshed after checkout",
		zap.String("sid", data.SessionID),
		zap.Int("orders", len(data.OrderIDs)),
	)
	return nil
}

package checkout

import (
	"context"

	"github.com/ZOMBIEx-z/ClothingStore/internal/cart"
	"github.com/ZOMBIEx-z/ClothingStore/internal/upstream"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/errors"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/logger"
)

// cartAccessor is the slice of the cart service checkout needs.
type cartAccessor interface {
	Get(ctx context.Context, deviceID string) (cart.Cart, error)
	Clear(ctx context.Context, deviceID string) error
}

// orderSubmitter places a normalized order upstream.
type orderSubmitter interface {
	SubmitOrder(ctx context.Context, lines []upstream.OrderLine) (*upstream.Order, error)
}

// Service turns a device cart into a marketplace order. The upstream
// freezes each line's price at creation; the gateway only ships
// product IDs and quantities.
type Service struct {
	carts  cartAccessor
	client orderSubmitter
	log    *logger.Logger
}

func NewService(carts cartAccessor, client orderSubmitter, log *logger.Logger) *Service {
	return &Service{carts: carts, client: client, log: log}
}

// Submit places the device's cart as an order and clears the cart only
// once the upstream accepted it. A failed submission keeps the cart
// intact so the buyer can retry.
func (s *Service) Submit(ctx context.Context, deviceID string) (*upstream.Order, error) {
	current, err := s.carts.Get(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if current.IsEmpty() {
		return nil, errors.New(errors.CodeValidation, "cart is empty")
	}

	lines := make([]upstream.OrderLine, 0, len(current.Lines))
	for _, line := range current.Lines {
		lines = append(lines, upstream.OrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	order, err := s.client.SubmitOrder(ctx, lines)
	if err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, deviceID); err != nil {
		// the order went through; losing the clear only leaves a stale cart
		s.log.Error(ctx, "clear cart after checkout", err)
	}

	ctx = s.log.WithFields(ctx, map[string]any{
		"orderId":   order.ID,
		"lineCount": len(lines),
	})
	s.log.Info(ctx, "checkout submitted")
	return order, nil
}

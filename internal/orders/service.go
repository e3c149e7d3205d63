package orders

import (
	"context"
	"sync"

	"github.com/ZOMBIEx-z/ClothingStore/internal/upstream"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/enums"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/errors"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/logger"
)

// Service serves the buyer and seller order views. Seller status edits
// are buffered per seller so one account's staged changes never show up
// in another's view.
type Service struct {
	client marketplaceGateway
	log    *logger.Logger

	mu      sync.Mutex
	buffers map[string]*StatusEditBuffer
}

func NewService(client marketplaceGateway, log *logger.Logger) *Service {
	return &Service{
		client:  client,
		log:     log,
		buffers: make(map[string]*StatusEditBuffer),
	}
}

// ListBuyerOrders proxies the buyer's own order history.
func (s *Service) ListBuyerOrders(ctx context.Context) ([]upstream.Order, error) {
	orders, err := s.client.FetchBuyerOrders(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []upstream.Order{}
	}
	return orders, nil
}

// ListSellerOrders fetches the seller's stores, aggregates the orders
// across them and decorates each with the seller's staged edit.
func (s *Service) ListSellerOrders(ctx context.Context, seller string) ([]SellerOrder, error) {
	stores, err := s.client.FetchSellerStores(ctx)
	if err != nil {
		return nil, err
	}

	storeIDs := make([]int64, 0, len(stores))
	for _, store := range stores {
		storeIDs = append(storeIDs, store.ID)
	}

	aggregated, err := FetchSellerOrders(ctx, storeIDs, s.client.FetchOrdersForStore)
	if err != nil {
		return nil, err
	}

	buffer := s.bufferFor(seller)
	view := make([]SellerOrder, 0, len(aggregated))
	for _, order := range aggregated {
		buffer.Track(order.ID, order.Status)

		decorated := SellerOrder{Order: order}
		if pending, ok := buffer.Pending(order.ID); ok {
			decorated.PendingStatus = &pending
			decorated.Dirty = true
		}
		view = append(view, decorated)
	}

	ctx = s.log.WithFields(ctx, map[string]any{
		"storeCount": len(storeIDs),
		"orderCount": len(view),
	})
	s.log.Info(ctx, "seller orders aggregated")
	return view, nil
}

// StageStatus records a status edit without touching the upstream. The
// raw status comes straight from the request body; the order must have
// appeared in the seller's listing first.
func (s *Service) StageStatus(ctx context.Context, seller string, orderID int64, rawStatus string) error {
	status, err := enums.ParseOrderStatus(rawStatus)
	if err != nil {
		return errors.Wrap(errors.CodeValidation, err, "invalid order status").
			WithDetails(map[string]any{"status": rawStatus})
	}

	return s.bufferFor(seller).SetPending(orderID, status)
}

// CommitStatus pushes a staged edit upstream. Clean orders are rejected
// before any upstream call happens.
func (s *Service) CommitStatus(ctx context.Context, seller string, orderID int64) (CommitResult, error) {
	status, err := s.bufferFor(seller).Commit(ctx, orderID)
	if err != nil {
		return CommitResult{}, err
	}

	ctx = s.log.WithFields(ctx, map[string]any{
		"orderId": orderID,
		"status":  status.String(),
	})
	s.log.Info(ctx, "order status committed")
	return CommitResult{OrderID: orderID, Status: status}, nil
}

func (s *Service) bufferFor(seller string) *StatusEditBuffer {
	s.mu.Lock()
	defer s.mu.Unlock()

	buffer, ok := s.buffers[seller]
	if !ok {
		buffer = NewStatusEditBuffer(func(ctx context.Context, orderID int64, status enums.OrderStatus) error {
			_, err := s.client.UpdateOrderStatus(ctx, orderID, upstream.StatusUpdate{Status: status})
			return err
		})
		s.buffers[seller] = buffer
	}
	return buffer
}

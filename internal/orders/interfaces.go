package orders

import (
	"context"

	"github.com/ZOMBIEx-z/ClothingStore/internal/upstream"
)

// marketplaceGateway is the slice of the upstream client this package
// needs.
type marketplaceGateway interface {
	FetchSellerStores(ctx context.Context) ([]upstream.Store, error)
	FetchOrdersForStore(ctx context.Context, storeID int64) ([]upstream.Order, error)
	FetchBuyerOrders(ctx context.Context) ([]upstream.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status upstream.StatusUpdate) (*upstream.Order, error)
}

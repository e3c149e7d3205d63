package orders

import (
	"github.com/ZOMBIEx-z/ClothingStore/internal/upstream"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/enums"
)

// SellerOrder is one aggregated order decorated with the seller's
// staged edit, if any. Dirty tells the UI whether the save control for
// this order should be enabled.
type SellerOrder struct {
	upstream.Order
	PendingStatus *enums.OrderStatus `json:"pending_status,omitempty"`
	Dirty         bool               `json:"dirty"`
}

// StageStatusRequest stages a status edit for one order.
type StageStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CommitResult reports the status that was persisted upstream.
type CommitResult struct {
	OrderID int64             `json:"order_id"`
	Status  enums.OrderStatus `json:"status"`
}

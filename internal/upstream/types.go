package upstream

import (
	"time"

	"github.com/ZOMBIEx-z/ClothingStore/pkg/enums"
	"github.com/shopspring/decimal"
)

// Product mirrors the marketplace API product payload.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	StoreID     int64           `json:"store_id"`
}

// Store mirrors the marketplace API store payload.
type Store struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	SellerID int64  `json:"seller_id"`
}

// OrderItem carries the price frozen at purchase time; it never tracks the
// catalog price afterwards.
type OrderItem struct {
	Product      Product         `json:"product"`
	Quantity     int             `json:"quantity"`
	PriceAtOrder decimal.Decimal `json:"price_at_order"`
}

// Order mirrors the marketplace API order payload.
type Order struct {
	ID        int64             `json:"id"`
	BuyerID   int64             `json:"buyer_id"`
	Status    enums.OrderStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	Items     []OrderItem       `json:"items"`
}

// StoreCreate is the body of the store creation POST.
type StoreCreate struct {
	Name string `json:"name"`
}

// ProductCreate is the body of the product creation POST. The
// marketplace rejects non-positive prices.
type ProductCreate struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// OrderLine is the normalized line-item pair submitted at checkout.
type OrderLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// StatusUpdate is the body of the order status PATCH.
type StatusUpdate struct {
	Status enums.OrderStatus `json:"status"`
}

package cart

import (
	"github.com/shopspring/decimal"
)

// Line is one product entry in a device cart. A line never rests with a
// quantity below one; merges that would drop it to zero remove it instead.
type Line struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	StoreID   int64           `json:"store_id"`
	Quantity  int             `json:"quantity"`
}

// Cart holds the ordered lines for a single device. Order is insertion
// order so the storefront renders a stable list.
type Cart struct {
	Lines []Line `json:"lines"`
}

// TotalCount sums the quantities across all lines.
func (c Cart) TotalCount() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// TotalAmount sums unit price times quantity, rounded to two decimal
// places for display.
func (c Cart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total.Round(2)
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

package cart

import "github.com/shopspring/decimal"

// Snapshot carries the product fields captured when a line is first
// created. Later merges for the same product only move the quantity;
// name and price stay as captured at creation time.
type Snapshot struct {
	Name      string
	UnitPrice decimal.Decimal
	StoreID   int64
}

// Merge applies a quantity delta for productID to the line list and
// returns the resulting list. It never mutates its input.
//
//   - line absent, delta > 0: a new line is appended from the snapshot
//   - line absent, delta <= 0: no-op
//   - line present: quantity += delta; a result of zero or less removes
//     the line, a delta of zero keeps it untouched
func Merge(lines []Line, productID int64, meta Snapshot, delta int) []Line {
	out := make([]Line, 0, len(lines)+1)
	found := false

	for _, line := range lines {
		if line.ProductID != productID {
			out = append(out, line)
			continue
		}
		found = true
		next := line.Quantity + delta
		if next <= 0 {
			continue
		}
		line.Quantity = next
		out = append(out, line)
	}

	if !found && delta > 0 {
		out = append(out, Line{
			ProductID: productID,
			Name:      meta.Name,
			UnitPrice: meta.UnitPrice,
			StoreID:   meta.StoreID,
			Quantity:  delta,
		})
	}

	return out
}

// SetQuantity replaces the quantity of an existing line. Zero or less
// removes the line; an absent product is a no-op since there is no
// snapshot to create a line from.
func SetQuantity(lines []Line, productID int64, quantity int) []Line {
	out := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.ProductID != productID {
			out = append(out, line)
			continue
		}
		if quantity <= 0 {
			continue
		}
		line.Quantity = quantity
		out = append(out, line)
	}
	return out
}

// Remove drops the line for productID. Removing an absent product is a
// no-op, so removal is idempotent.
func Remove(lines []Line, productID int64) []Line {
	out := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == productID {
			continue
		}
		out = append(out, line)
	}
	return out
}

package orders

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ZOMBIEx-z/ClothingStore/internal/upstream"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/errors"
)

// FetchFunc loads the orders for a single store.
type FetchFunc func(ctx context.Context, storeID int64) ([]upstream.Order, error)

// FetchSellerOrders fans out one fetch per store and merges the results
// in the order the store IDs were given, never in completion order, so
// the output is deterministic. The same order can show up under more
// than one store; the first occurrence wins and later ones are dropped
// as the merge walks the results. Any store failure cancels the
// remaining fetches and fails the whole aggregation.
func FetchSellerOrders(ctx context.Context, storeIDs []int64, fetch FetchFunc) ([]upstream.Order, error) {
	if len(storeIDs) == 0 {
		return []upstream.Order{}, nil
	}

	results := make([][]upstream.Order, len(storeIDs))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, storeID := range storeIDs {
		i, storeID := i, storeID
		group.Go(func() error {
			fetched, err := fetch(groupCtx, storeID)
			if err != nil {
				if typed := errors.As(err); typed != nil {
					return typed
				}
				return errors.Wrap(errors.CodeDependency, err, "fetch store orders").
					WithDetails(map[string]any{"storeId": storeID})
			}
			results[i] = fetched
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{})
	merged := make([]upstream.Order, 0)
	for _, storeOrders := range results {
		for _, order := range storeOrders {
			if _, dup := seen[order.ID]; dup {
				continue
			}
			seen[order.ID] = struct{}{}
			merged = append(merged, order)
		}
	}
	return merged, nil
}

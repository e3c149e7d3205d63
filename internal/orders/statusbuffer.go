package orders

import (
	"context"
	"sync"

	"github.com/ZOMBIEx-z/ClothingStore/pkg/enums"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/errors"
)

// CommitFunc persists a status change for one order.
type CommitFunc func(ctx context.Context, orderID int64, status enums.OrderStatus) error

// StatusEditBuffer accumulates seller status edits per order until they
// are committed. An order is dirty while its pending value differs from
// the last committed one; picking the committed value back removes the
// entry, so the pending map only ever holds real differences. A mutex
// guards both maps since requests for one seller can interleave.
type StatusEditBuffer struct {
	mu        sync.Mutex
	committed map[int64]enums.OrderStatus
	pending   map[int64]enums.OrderStatus
	commit    CommitFunc
}

func NewStatusEditBuffer(commit CommitFunc) *StatusEditBuffer {
	return &StatusEditBuffer{
		committed: make(map[int64]enums.OrderStatus),
		pending:   make(map[int64]enums.OrderStatus),
		commit:    commit,
	}
}

// Track records the status an order currently has upstream. Called on
// every aggregation so the buffer knows what "unchanged" means. A
// tracked order keeps its pending edit unless the upstream status
// caught up with it.
func (b *StatusEditBuffer) Track(orderID int64, status enums.OrderStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.committed[orderID] = status
	if pendingValue, ok := b.pending[orderID]; ok && pendingValue == status {
		delete(b.pending, orderID)
	}
}

// SetPending stages a status edit. Only tracked orders can be staged;
// without a committed baseline the buffer cannot tell an edit from a
// no-op. Staging the committed value clears the edit instead of
// recording it.
func (b *StatusEditBuffer) SetPending(orderID int64, status enums.OrderStatus) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	committedValue, tracked := b.committed[orderID]
	if !tracked {
		return errors.New(errors.CodeNotFound, "order not in the seller's listing")
	}
	if committedValue == status {
		delete(b.pending, orderID)
		return nil
	}
	b.pending[orderID] = status
	return nil
}

// Pending returns the staged status for an order, if any.
func (b *StatusEditBuffer) Pending(orderID int64) (enums.OrderStatus, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	status, ok := b.pending[orderID]
	return status, ok
}

// IsDirty reports whether an order has an uncommitted edit.
func (b *StatusEditBuffer) IsDirty(orderID int64) bool {
	_, ok := b.Pending(orderID)
	return ok
}

// Commit persists the staged edit for an order. Committing a clean
// order is a validation error. On success the staged value becomes the
// committed one and the entry is removed; on failure the edit stays
// staged so the seller can retry.
func (b *StatusEditBuffer) Commit(ctx context.Context, orderID int64) (enums.OrderStatus, error) {
	b.mu.Lock()
	status, dirty := b.pending[orderID]
	b.mu.Unlock()
	if !dirty {
		return "", errors.New(errors.CodeValidation, "order has no staged status edit")
	}

	if err := b.commit(ctx, orderID, status); err != nil {
		return "", err
	}

	b.mu.Lock()
	b.committed[orderID] = status
	if current, ok := b.pending[orderID]; ok && current == status {
		delete(b.pending, orderID)
	}
	b.mu.Unlock()
	return status, nil
}

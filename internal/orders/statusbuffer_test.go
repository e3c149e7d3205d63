package orders

import (
	"context"
	"testing"

	"github.com/ZOMBIEx-z/ClothingStore/pkg/enums"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/errors"
)

type commitRecorder struct {
	calls []enums.OrderStatus
	err   error
}

func (r *commitRecorder) commit(ctx context.Context, orderID int64, status enums.OrderStatus) error {
	r.calls = append(r.calls, status)
	return r.err
}

func TestSetPendingMarksOrderDirty(t *testing.T) {
	buffer := NewStatusEditBuffer(nil)
	buffer.Track(1, enums.OrderStatusPending)

	if err := buffer.SetPending(1, enums.OrderStatusShipped); err != nil {
		t.Fatalf("stage: %v", err)
	}

	if !buffer.IsDirty(1) {
		t.Fatal("expected order to be dirty")
	}
	pending, ok := buffer.Pending(1)
	if !ok || pending != enums.OrderStatusShipped {
		t.Fatalf("expected pending SHIPPED, got %q ok=%v", pending, ok)
	}
}

func TestSetPendingRejectsUntrackedOrder(t *testing.T) {
	buffer := NewStatusEditBuffer(nil)

	err := buffer.SetPending(99, enums.OrderStatusShipped)
	typed := errors.As(err)
	if typed == nil || typed.Code() != errors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if buffer.IsDirty(99) {
		t.Fatal("rejected stage must not leave an edit behind")
	}

	// once the order shows up in a listing, staging works
	buffer.Track(99, enums.OrderStatusPending)
	if err := buffer.SetPending(99, enums.OrderStatusShipped); err != nil {
		t.Fatalf("stage after track: %v", err)
	}
	if !buffer.IsDirty(99) {
		t.Fatal("expected order dirty after staging")
	}
}

func TestSetPendingBackToCommittedClearsEdit(t *testing.T) {
	buffer := NewStatusEditBuffer(nil)
	buffer.Track(1, enums.OrderStatusPending)

	if err := buffer.SetPending(1, enums.OrderStatusShipped); err != nil {
		t.Fatalf("stage: %v", err)
	}
	if err := buffer.SetPending(1, enums.OrderStatusPending); err != nil {
		t.Fatalf("stage: %v", err)
	}

	if buffer.IsDirty(1) {
		t.Fatal("picking the committed value back should clear the edit")
	}
}

func TestCommitCleanOrderIsRejectedWithoutUpstreamCall(t *testing.T) {
	recorder := &commitRecorder{}
	buffer := NewStatusEditBuffer(recorder.commit)
	buffer.Track(1, enums.OrderStatusPending)

	_, err := buffer.Commit(context.Background(), 1)
	typed := errors.As(err)
	if typed == nil || typed.Code() != errors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(recorder.calls) != 0 {
		t.Fatalf("clean commit must not touch the upstream, saw %v", recorder.calls)
	}
}

func TestCommitSuccessPromotesPendingToCommitted(t *testing.T) {
	recorder := &commitRecorder{}
	buffer := NewStatusEditBuffer(recorder.commit)
	buffer.Track(1, enums.OrderStatusPending)
	if err := buffer.SetPending(1, enums.OrderStatusShipped); err != nil {
		t.Fatalf("stage: %v", err)
	}

	status, err := buffer.Commit(context.Background(), 1)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if status != enums.OrderStatusShipped {
		t.Fatalf("expected SHIPPED, got %q", status)
	}
	if buffer.IsDirty(1) {
		t.Fatal("expected order clean after commit")
	}

	// staging the new committed value is now a no-op
	if err := buffer.SetPending(1, enums.OrderStatusShipped); err != nil {
		t.Fatalf("stage: %v", err)
	}
	if buffer.IsDirty(1) {
		t.Fatal("staging the committed value marked the order dirty")
	}
}

func TestCommitFailureRetainsPendingEdit(t *testing.T) {
	recorder := &commitRecorder{err: errors.New(errors.CodeDependency, "marketplace down")}
	buffer := NewStatusEditBuffer(recorder.commit)
	buffer.Track(1, enums.OrderStatusPending)
	if err := buffer.SetPending(1, enums.OrderStatusShipped); err != nil {
		t.Fatalf("stage: %v", err)
	}

	_, err := buffer.Commit(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	pending, ok := buffer.Pending(1)
	if !ok || pending != enums.OrderStatusShipped {
		t.Fatalf("failed commit must keep the edit, got %q ok=%v", pending, ok)
	}
}

func TestTrackDropsEditWhenUpstreamCatchesUp(t *testing.T) {
	buffer := NewStatusEditBuffer(nil)
	buffer.Track(1, enums.OrderStatusPending)
	if err := buffer.SetPending(1, enums.OrderStatusShipped); err != nil {
		t.Fatalf("stage: %v", err)
	}

	// another session shipped the order upstream
	buffer.Track(1, enums.OrderStatusShipped)

	if buffer.IsDirty(1) {
		t.Fatal("edit should clear once upstream matches it")
	}
}

package cart

import (
	"context"
	"encoding/json"
	stdErrors "errors"

	"github.com/ZOMBIEx-z/ClothingStore/pkg/errors"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/kv"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/logger"
)

// Service owns cart persistence. Every mutation is a load, a pure merge
// and a save against the device's key, so carts survive restarts and
// never leak across devices.
type Service struct {
	store kv.Store
	log   *logger.Logger
}

func NewService(store kv.Store, log *logger.Logger) *Service {
	return &Service{store: store, log: log}
}

func cartKey(deviceID string) string {
	return kv.Key("cart", deviceID)
}

// Get returns the cart for a device. A device with no saved cart gets an
// empty one.
func (s *Service) Get(ctx context.Context, deviceID string) (Cart, error) {
	return s.load(ctx, deviceID)
}

// Add applies a quantity delta for a product, creating the line from the
// snapshot when it does not exist yet.
func (s *Service) Add(ctx context.Context, deviceID string, productID int64, meta Snapshot, delta int) (Cart, error) {
	current, err := s.load(ctx, deviceID)
	if err != nil {
		return Cart{}, err
	}

	current.Lines = Merge(current.Lines, productID, meta, delta)
	if err := s.save(ctx, deviceID, current); err != nil {
		return Cart{}, err
	}

	ctx = s.log.WithFields(ctx, map[string]any{
		"productId": productID,
		"delta":     delta,
		"lineCount": len(current.Lines),
	})
	s.log.Info(ctx, "cart updated")
	return current, nil
}

// SetQuantity replaces the quantity of an existing line. Setting zero or
// less removes the line.
func (s *Service) SetQuantity(ctx context.Context, deviceID string, productID int64, quantity int) (Cart, error) {
	current, err := s.load(ctx, deviceID)
	if err != nil {
		return Cart{}, err
	}

	current.Lines = SetQuantity(current.Lines, productID, quantity)
	if err := s.save(ctx, deviceID, current); err != nil {
		return Cart{}, err
	}
	return current, nil
}

// Remove drops a product's line. Removing an absent product succeeds.
func (s *Service) Remove(ctx context.Context, deviceID string, productID int64) (Cart, error) {
	current, err := s.load(ctx, deviceID)
	if err != nil {
		return Cart{}, err
	}

	current.Lines = Remove(current.Lines, productID)
	if err := s.save(ctx, deviceID, current); err != nil {
		return Cart{}, err
	}
	return current, nil
}

// Clear deletes the device's cart outright.
func (s *Service) Clear(ctx context.Context, deviceID string) error {
	if err := s.store.Delete(ctx, cartKey(deviceID)); err != nil {
		return errors.Wrap(errors.CodeInternal, err, "clear cart")
	}
	return nil
}

func (s *Service) load(ctx context.Context, deviceID string) (Cart, error) {
	raw, err := s.store.Get(ctx, cartKey(deviceID))
	if err != nil {
		if stdErrors.Is(err, kv.ErrNotFound) {
			return Cart{}, nil
		}
		return Cart{}, errors.Wrap(errors.CodeInternal, err, "load cart")
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return Cart{}, errors.Wrap(errors.CodeInternal, err, "decode saved cart")
	}
	return cart, nil
}

func (s *Service) save(ctx context.Context, deviceID string, cart Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "encode cart")
	}
	if err := s.store.Set(ctx, cartKey(deviceID), string(payload)); err != nil {
		return errors.Wrap(errors.CodeInternal, err, "save cart")
	}
	return nil
}

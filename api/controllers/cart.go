package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ZOMBIEx-z/ClothingStore/api/middleware"
	"github.com/ZOMBIEx-z/ClothingStore/api/responses"
	"github.com/ZOMBIEx-z/ClothingStore/api/validators"
	cartsvc "github.com/ZOMBIEx-z/ClothingStore/internal/cart"
	pkgerrors "github.com/ZOMBIEx-z/ClothingStore/pkg/errors"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/logger"
)

type cartAddRequest struct {
	ProductID int64           `json:"product_id" validate:"required,gt=0"`
	Name      string          `json:"name" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	StoreID   int64           `json:"store_id" validate:"required,gt=0"`
	Quantity  *int            `json:"quantity"`
}

type cartSetQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type cartView struct {
	Lines       []cartsvc.Line `json:"lines"`
	TotalAmount string         `json:"total_amount"`
	TotalCount  int            `json:"total_count"`
}

func newCartView(c cartsvc.Cart) cartView {
	lines := c.Lines
	if lines == nil {
		lines = []cartsvc.Line{}
	}
	return cartView{
		Lines:       lines,
		TotalAmount: c.TotalAmount().StringFixed(2),
		TotalCount:  c.TotalCount(),
	}
}

func deviceIDFromRequest(r *http.Request) (string, error) {
	deviceID := middleware.DeviceIDFromContext(r.Context())
	if deviceID == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "missing device identity")
	}
	return deviceID, nil
}

// CartFetch returns the device's cart with derived totals.
func CartFetch(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		deviceID, err := deviceIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		current, err := svc.Get(r.Context(), deviceID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(current))
	}
}

// CartAddItem applies a quantity delta, creating the line from the
// submitted product snapshot when needed. Quantity defaults to one and
// may be negative.
func CartAddItem(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		deviceID, err := deviceIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartAddRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.UnitPrice.IsNegative() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unit price must not be negative"))
			return
		}

		delta := 1
		if payload.Quantity != nil {
			delta = *payload.Quantity
		}

		meta := cartsvc.Snapshot{
			Name:      payload.Name,
			UnitPrice: payload.UnitPrice,
			StoreID:   payload.StoreID,
		}
		current, err := svc.Add(r.Context(), deviceID, payload.ProductID, meta, delta)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(current))
	}
}

// CartSetQuantity replaces a line's quantity. Zero or less removes the
// line.
func CartSetQuantity(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		deviceID, err := deviceIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := parseIDParam(r, "productID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartSetQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		current, err := svc.SetQuantity(r.Context(), deviceID, productID, *payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(current))
	}
}

// CartRemoveItem drops a product's line. Removing an absent product
// succeeds.
func CartRemoveItem(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		deviceID, err := deviceIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := parseIDParam(r, "productID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		current, err := svc.Remove(r.Context(), deviceID, productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(current))
	}
}

// CartClear empties the device's cart.
func CartClear(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		deviceID, err := deviceIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Clear(r.Context(), deviceID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(cartsvc.Cart{}))
	}
}

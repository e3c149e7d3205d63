package controllers

import (
	"net/http"

	"github.com/ZOMBIEx-z/ClothingStore/api/middleware"
	"github.com/ZOMBIEx-z/ClothingStore/api/responses"
	"github.com/ZOMBIEx-z/ClothingStore/api/validators"
	ordersvc "github.com/ZOMBIEx-z/ClothingStore/internal/orders"
	pkgerrors "github.com/ZOMBIEx-z/ClothingStore/pkg/errors"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/logger"
)

// BuyerOrders lists the authenticated buyer's order history.
func BuyerOrders(svc *ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		orders, err := svc.ListBuyerOrders(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, orders)
	}
}

// SellerOrders aggregates the seller's orders across every store they
// own, decorated with staged status edits.
func SellerOrders(svc *ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		seller := middleware.UsernameFromContext(r.Context())
		view, err := svc.ListSellerOrders(r.Context(), seller)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// StageOrderStatus records a status edit without touching the
// marketplace.
func StageOrderStatus(svc *ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		orderID, err := parseIDParam(r, "orderID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload ordersvc.StageStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		seller := middleware.UsernameFromContext(r.Context())
		if err := svc.StageStatus(r.Context(), seller, orderID, payload.Status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"order_id": orderID, "staged": payload.Status})
	}
}

// CommitOrderStatus pushes a staged edit to the marketplace.
func CommitOrderStatus(svc *ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		orderID, err := parseIDParam(r, "orderID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		seller := middleware.UsernameFromContext(r.Context())
		result, err := svc.CommitStatus(r.Context(), seller, orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

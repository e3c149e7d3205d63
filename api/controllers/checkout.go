package controllers

import (
	"net/http"

	"github.com/ZOMBIEx-z/ClothingStore/api/responses"
	checkoutsvc "github.com/ZOMBIEx-z/ClothingStore/internal/checkout"
	pkgerrors "github.com/ZOMBIEx-z/ClothingStore/pkg/errors"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/logger"
)

// Checkout places the device's cart as a marketplace order.
func Checkout(svc *checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		deviceID, err := deviceIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Submit(r.Context(), deviceID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

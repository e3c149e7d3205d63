package controllers

import (
	"net/http"

	"github.com/ZOMBIEx-z/ClothingStore/api/responses"
	cartsvc "github.com/ZOMBIEx-z/ClothingStore/internal/cart"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/config"
	pkgerrors "github.com/ZOMBIEx-z/ClothingStore/pkg/errors"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/logger"
)

// SessionLogout ends the storefront session. Token revocation happens
// upstream; the gateway's part is dropping the device cart when
// configured to.
func SessionLogout(carts *cartsvc.Service, cfg config.CartConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if carts == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		if cfg.ClearOnLogout {
			deviceID, err := deviceIDFromRequest(r)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			if err := carts.Clear(r.Context(), deviceID); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

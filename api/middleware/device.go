package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ZOMBIEx-z/ClothingStore/pkg/logger"
)

const deviceIDHeader = "X-Device-Id"

// Device resolves the device identity that scopes the cart. A client
// that never sent the header gets a fresh id echoed back so it can
// persist it.
func Device(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			deviceID := strings.TrimSpace(r.Header.Get(deviceIDHeader))
			if deviceID == "" {
				deviceID = uuid.NewString()
			}

			w.Header().Set(deviceIDHeader, deviceID)

			ctx := WithDeviceID(r.Context(), deviceID)
			if logg != nil {
				ctx = logg.WithDeviceID(ctx, deviceID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

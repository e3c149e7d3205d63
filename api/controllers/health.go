package controllers

import (
	"net/http"

	"github.com/ZOMBIEx-z/ClothingStore/api/responses"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/config"
	pkgerrors "github.com/ZOMBIEx-z/ClothingStore/pkg/errors"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/kv"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ClothingStore-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, store kv.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ClothingStore-Env", cfg.App.Env)

		if store != nil {
			if err := store.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "kv store unavailable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}

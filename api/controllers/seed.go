package controllers

import (
	"net/http"

	"github.com/wearloom/storefront-backend/api/responses"
	"github.com/wearloom/storefront-backend/internal/seed"
	"github.com/wearloom/storefront-backend/pkg/db"
	"github.com/wearloom/storefront-backend/pkg/logger"
)

// SeedProducts loads the sample catalog. Rerunning is safe: products whose
// SKUs already exist are skipped.
func SeedProducts(client *db.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := seed.Apply(r.Context(), client)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

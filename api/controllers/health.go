package controllers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/wearloom/storefront-backend/api/responses"
	"github.com/wearloom/storefront-backend/pkg/config"
	pkgerrors "github.com/wearloom/storefront-backend/pkg/errors"
	"github.com/wearloom/storefront-backend/pkg/logger"
)

const envHeader = "X-Storefront-Env"

const readyTimeout = 3 * time.Second

// Pinger is a dependency the readiness probe checks.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every configured dependency and aggregates failures, so a
// single probe reports all broken dependencies at once. Nil pingers are
// optional dependencies that were not configured.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP, redisP Pinger) http.HandlerFunc {
	checks := []struct {
		name   string
		pinger Pinger
	}{
		{name: "database", pinger: dbP},
		{name: "redis", pinger: redisP},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		var failures error
		for _, check := range checks {
			if check.pinger == nil {
				continue
			}
			if err := check.pinger.Ping(ctx); err != nil {
				failures = multierr.Append(failures, pkgerrors.Wrap(pkgerrors.CodeDependency, err, check.name+" unavailable"))
			}
		}

		if failures != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, failures, "readiness check failed"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}

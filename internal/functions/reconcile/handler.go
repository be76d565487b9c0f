package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/utils/errors"
)

//ReconcileAggregates Handler
func ReconcileAggregates(w http.ResponseWriter, r *http.Request) {
	Handler(environment.Default(r.Context()))(w, r)
}

//Handler Builds admin handler running the reconciliation. Guarded by API key.
func Handler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpStatus, body := reconcileAuthenticated(r.Context(), r, env)

		if httpStatus != http.StatusOK {
			http.Error(w, string(body), httpStatus)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(body); err != nil {
			logging.FromContext(r.Context()).Warnf("Could not write response: %v", err)
		}
	}
}

func reconcileAuthenticated(ctx context.Context, r *http.Request, env *environment.Environment) (int, []byte) {
	logger := logging.FromContext(ctx).Named("reconcile.reconcileAuthenticated")

	// authentication

	apikey, err := env.Secrets.Get(ctx, constants.SecretAdminAPIKey)
	if err != nil {
		logger.Warnf("Could not obtain api key: %v", err)
		return http.StatusInternalServerError, []byte("Could not obtain api key")
	}

	providedAPIKeys := r.URL.Query()["apikey"]
	if len(providedAPIKeys) != 1 || providedAPIKeys[0] != string(apikey) {
		return http.StatusUnauthorized, []byte("Bad api key")
	}

	// authenticated, go ahead

	apply := r.URL.Query().Get("fix") == "true"

	report, err := Run(ctx, env.Store, env.Mutexes, apply)
	if err != nil {
		msg := fmt.Sprintf("Could not reconcile aggregates: %v", err)
		logger.Error(msg)
		if _, ok := err.(*errors.ConflictError); ok {
			return http.StatusConflict, []byte(msg)
		}
		return http.StatusInternalServerError, []byte(msg)
	}

	if stray := report.Stray(); len(stray) > 0 {
		logger.Warnf("Team members not pointing back to their team: %v", stray)
	}

	body, err := json.Marshal(report)
	if err != nil {
		return http.StatusInternalServerError, []byte(err.Error())
	}
	return http.StatusOK, body
}

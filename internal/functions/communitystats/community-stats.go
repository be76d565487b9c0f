package communitystats

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/redis"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils/errors"
	httputils "github.com/butterflysteps/backend/internal/utils/http"
	v1 "github.com/butterflysteps/backend/pkg/api/v1"
)

//Load Reads the community singleton inside a transaction. Missing document is a zero value.
func Load(tx store.Tx) (*structs.CommunityStats, error) {
	var stats structs.CommunityStats
	if err := tx.Get(constants.CollectionStats, constants.DocCommunityStats, &stats); err != nil {
		if store.IsNotFound(err) {
			return &structs.CommunityStats{}, nil
		}
		return nil, errors.Transient("Error while querying Firestore", err)
	}
	return &stats, nil
}

//Save Writes the community singleton inside a transaction.
func Save(tx store.Tx, stats *structs.CommunityStats) error {
	return tx.Set(constants.CollectionStats, constants.DocCommunityStats, stats)
}

//GetCommunityStats Handler
func GetCommunityStats(w http.ResponseWriter, r *http.Request) {
	Handler(environment.Default(r.Context()))(w, r)
}

//Handler Builds GetCommunityStats handler over given environment.
func Handler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("community-stats")

		var request v1.IDTokenRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		if _, err := env.Authenticate(ctx, request.IDToken); err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		stats, err := Get(ctx, env.Store, env.Cache, env.CacheTTL)
		if err != nil {
			logger.Warnf("Cannot handle request due to error: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.CommunityStatsResponse{
			TotalSteps:        stats.TotalSteps,
			TotalParticipants: stats.TotalParticipants,
		})
	}
}

//Get Returns community stats, served from Redis when fresh. Cache failures fall back to Firestore.
func Get(ctx context.Context, client store.Storer, cache redis.Client, ttl time.Duration) (*structs.CommunityStats, error) {
	logger := logging.FromContext(ctx).Named("community-stats.Get")

	cached, err := cache.Get(ctx, constants.CacheKeyCommunityStats)
	switch {
	case err == nil:
		var stats structs.CommunityStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
		logger.Warnf("Dropping unreadable cached community stats: %v", cached)
	case err != redis.ErrMiss:
		logger.Warnf("Could not read cached community stats: %v", err)
	}

	var stats structs.CommunityStats
	if err := client.Get(ctx, constants.CollectionStats, constants.DocCommunityStats, &stats); err != nil && !store.IsNotFound(err) {
		return nil, errors.Transient("Error while querying Firestore", err)
	}

	payload, err := json.Marshal(stats)
	if err == nil {
		err = cache.Set(ctx, constants.CacheKeyCommunityStats, payload, ttl)
	}
	if err != nil {
		logger.Warnf("Could not cache community stats: %v", err)
	}

	return &stats, nil
}

package streak

import (
	"context"
	"net/http"

	"github.com/butterflysteps/backend/internal/calendar"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/functions/profile"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/store"
	httputils "github.com/butterflysteps/backend/internal/utils/http"
	v1 "github.com/butterflysteps/backend/pkg/api/v1"
)

//Result New streak state of the user.
type Result struct {
	Streak              int
	LastStreakLoginDate string
	LastLoginTimestamp  int64
	// Advanced is true when this login extended yesterday's streak.
	Advanced bool
}

//UpdateStreakOnLogin Handler
func UpdateStreakOnLogin(w http.ResponseWriter, r *http.Request) {
	Handler(environment.Default(r.Context()))(w, r)
}

//Handler Builds UpdateStreakOnLogin handler over given environment.
func Handler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("update-streak-on-login")

		var request v1.IDTokenRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		result, err := Update(ctx, env.Store, env.Moment(), uid)
		if err != nil {
			logger.Debugf("Cannot update streak: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.UpdateStreakResponse{
			UpdatedStreakCount:         result.Streak,
			UpdatedLastStreakLoginDate: result.LastStreakLoginDate,
			UpdatedLastLoginTimestamp:  result.LastLoginTimestamp,
		})
	}
}

//Next Streak after a login on today, given the previous streak state.
func Next(current int, lastLoginDate string, today string) (streak int, advanced bool) {
	switch lastLoginDate {
	case today:
		return current, false
	case calendar.Yesterday(today):
		return current + 1, true
	default:
		return 1, false
	}
}

//Update Records a login of the user. Missing user is a NotFoundError and nothing is created.
func Update(ctx context.Context, client store.Storer, at calendar.Moment, uid string) (*Result, error) {
	logger := logging.FromContext(ctx).Named("streak.Update")

	var result Result

	err := client.RunTransaction(ctx, func(ctx context.Context, tx store.Tx) error {
		p, err := profile.Load(tx, uid)
		if err != nil {
			return err
		}

		result.Streak, result.Advanced = Next(p.CurrentStreak, p.LastStreakLoginDate, at.Today)
		result.LastStreakLoginDate = at.Today
		result.LastLoginTimestamp = at.Now.UnixNano() / 1e6

		logger.Debugf("Streak of %v: %v -> %v (last login %v)", uid, p.CurrentStreak, result.Streak, p.LastStreakLoginDate)

		p.CurrentStreak = result.Streak
		p.LastStreakLoginDate = result.LastStreakLoginDate
		p.LastLoginTimestamp = result.LastLoginTimestamp

		return profile.Save(tx, p, at)
	})

	if err != nil {
		return nil, err
	}
	return &result, nil
}

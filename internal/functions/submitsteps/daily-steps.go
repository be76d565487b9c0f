package submitsteps

import (
	"context"
	"fmt"
	"net/http"

	"github.com/butterflysteps/backend/internal/calendar"
	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils/errors"
	httputils "github.com/butterflysteps/backend/internal/utils/http"
	v1 "github.com/butterflysteps/backend/pkg/api/v1"
)

//GetUserDailySteps Handler
func GetUserDailySteps(w http.ResponseWriter, r *http.Request) {
	DailyStepsHandler(environment.Default(r.Context()))(w, r)
}

//DailyStepsHandler Builds GetUserDailySteps handler over given environment.
func DailyStepsHandler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("get-user-daily-steps")

		var request v1.GetUserDailyStepsRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		days, err := History(ctx, env.Store, env.Moment(), uid, request.Days)
		if err != nil {
			logger.Warnf("Cannot handle request due to error: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.GetUserDailyStepsResponse{Days: days})
	}
}

//History Steps of the last `days` dates ending today, oldest first. Dates without a record have 0 steps.
func History(ctx context.Context, client store.Storer, at calendar.Moment, uid string, days int) ([]structs.DailyStep, error) {
	logger := logging.FromContext(ctx).Named("submitsteps.History")

	if days < 1 || days > calendar.TotalDays {
		return nil, &errors.ValidationError{Msg: fmt.Sprintf("Days must be between 1 and %v, got %v", calendar.TotalDays, days)}
	}

	dates := calendar.LastDays(at.Today, days)
	if len(dates) == 0 {
		return nil, &errors.UnknownError{Msg: fmt.Sprintf("Cannot compute dates before %v", at.Today)}
	}

	snapshots, err := client.Query(ctx, store.Query{Collection: constants.DailyStepsCollection(uid)}.
		Where("date", ">=", dates[0]))
	if err != nil {
		return nil, errors.Transient("Error while querying Firestore", err)
	}

	byDate := map[string]int{}
	for _, s := range snapshots {
		var day structs.DailyStep
		if err := s.DataTo(&day); err != nil {
			return nil, errors.Transient("Error while reading daily steps", err)
		}
		byDate[day.Date] += day.Steps
	}

	logger.Debugf("Found %v daily records of %v since %v", len(snapshots), uid, dates[0])

	result := make([]structs.DailyStep, 0, len(dates))
	for _, d := range dates {
		result = append(result, structs.DailyStep{Date: d, Steps: byDate[d]})
	}
	return result, nil
}

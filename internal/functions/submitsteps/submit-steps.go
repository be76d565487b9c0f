package submitsteps

import (
	"context"
	"fmt"
	"net/http"

	"github.com/butterflysteps/backend/internal/badges"
	"github.com/butterflysteps/backend/internal/calendar"
	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/functions/awardbadge"
	"github.com/butterflysteps/backend/internal/functions/communitystats"
	"github.com/butterflysteps/backend/internal/functions/profile"
	"github.com/butterflysteps/backend/internal/functions/teams"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils/errors"
	httputils "github.com/butterflysteps/backend/internal/utils/http"
	v1 "github.com/butterflysteps/backend/pkg/api/v1"
)

//Result State after a successful submission.
type Result struct {
	CurrentSteps int
	StepsToday   int
	NewBadges    []badges.Badge
}

//SubmittedEvent Payload of the steps-submitted topic.
type SubmittedEvent struct {
	UID    string `json:"uid"`
	Date   string `json:"date"`
	Steps  int    `json:"steps"`
	TeamID string `json:"teamId,omitempty"`
}

//SubmitSteps Handler
func SubmitSteps(w http.ResponseWriter, r *http.Request) {
	Handler(environment.Default(r.Context()))(w, r)
}

//Handler Builds SubmitSteps handler over given environment.
func Handler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("submit-steps")

		var request v1.SubmitStepsRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		result, err := Submit(ctx, env, uid, request.Steps)
		if err != nil {
			logger.Debugf("Cannot submit steps: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.SubmitStepsResponse{
			CurrentSteps: result.CurrentSteps,
			StepsToday:   result.StepsToday,
			NewBadges:    result.NewBadges,
		})
	}
}

//Submit Records the steps and announces the submission and any new badges.
func Submit(ctx context.Context, env *environment.Environment, uid string, steps int) (*Result, error) {
	at := env.Moment()

	result, teamID, err := submit(ctx, env.Store, at, uid, steps)
	if err != nil {
		return nil, err
	}

	env.Publish(ctx, constants.TopicStepsSubmitted, SubmittedEvent{UID: uid, Date: at.Today, Steps: steps, TeamID: teamID})
	awardbadge.Publish(ctx, env, uid, result.NewBadges...)

	return result, nil
}

//Apply Adds steps of the user for today's date. User, daily record, community and team totals
//are updated in one transaction together with crossed milestone badges.
func Apply(ctx context.Context, client store.Storer, at calendar.Moment, uid string, steps int) (*Result, error) {
	result, _, err := submit(ctx, client, at, uid, steps)
	return result, err
}

func submit(ctx context.Context, client store.Storer, at calendar.Moment, uid string, steps int) (*Result, string, error) {
	logger := logging.FromContext(ctx).Named("submitsteps.Apply")

	if steps <= 0 {
		return nil, "", &errors.ValidationError{Msg: fmt.Sprintf("Steps must be a positive number, got %v", steps)}
	}

	var result Result
	var teamID string

	err := client.RunTransaction(ctx, func(ctx context.Context, tx store.Tx) error {
		p, err := profile.Load(tx, uid)
		if err != nil {
			return err
		}

		day := structs.DailyStep{Date: at.Today}
		if err := tx.Get(constants.DailyStepsCollection(uid), at.Today, &day); err != nil && !store.IsNotFound(err) {
			return errors.Transient("Error while querying Firestore", err)
		}

		stats, err := communitystats.Load(tx)
		if err != nil {
			return err
		}

		var team *structs.Team
		if p.TeamID != "" {
			team, err = teams.Load(tx, p.TeamID)
			if err != nil {
				if !errors.IsNotFound(err) {
					return err
				}
				logger.Warnf("User %v is on missing team %v, skipping team total", uid, p.TeamID)
				team = nil
			}
		}

		// all reads done, writes follow

		p.CurrentSteps += steps
		day.Steps += steps
		stats.TotalSteps += int64(steps)

		result = Result{
			CurrentSteps: p.CurrentSteps,
			StepsToday:   day.Steps,
			NewBadges:    awardbadge.AwardMilestonesTo(p),
		}
		teamID = ""

		logger.Debugf("Saving %v steps of %v: total %v, today %v", steps, uid, p.CurrentSteps, day.Steps)

		if err := profile.Save(tx, p, at); err != nil {
			return err
		}
		if err := tx.Set(constants.DailyStepsCollection(uid), at.Today, day); err != nil {
			return err
		}
		if err := communitystats.Save(tx, stats); err != nil {
			return err
		}
		if team != nil {
			team.TotalSteps += steps
			teamID = team.ID
			if err := teams.Save(tx, team); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, "", err
	}
	return &result, teamID, nil
}

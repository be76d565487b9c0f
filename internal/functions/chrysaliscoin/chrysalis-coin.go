package chrysaliscoin

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/butterflysteps/backend/internal/calendar"
	"github.com/butterflysteps/backend/internal/chrysalis"
	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/functions/profile"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils/errors"
	httputils "github.com/butterflysteps/backend/internal/utils/http"
	v1 "github.com/butterflysteps/backend/pkg/api/v1"
)

//CollectedEvent Payload of the chrysalis-coin-collected topic.
type CollectedEvent struct {
	UID       string `json:"uid"`
	Date      string `json:"date"`
	DayNumber int    `json:"dayNumber"`
	VariantID string `json:"variantId"`
}

//CollectDailyChrysalisCoin Handler
func CollectDailyChrysalisCoin(w http.ResponseWriter, r *http.Request) {
	Handler(environment.Default(r.Context()))(w, r)
}

//Handler Builds CollectDailyChrysalisCoin handler over given environment.
func Handler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("collect-daily-chrysalis-coin")

		var request v1.IDTokenRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		coin, err := CollectAndPublish(ctx, env, uid)
		if err != nil {
			logger.Debugf("Cannot collect coin: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.CollectCoinResponse{Coin: *coin})
	}
}

//CollectAndPublish Collects today's coin and announces it.
func CollectAndPublish(ctx context.Context, env *environment.Environment, uid string) (*chrysalis.Variant, error) {
	at := env.Moment()

	coin, err := Collect(ctx, env.Store, at, uid)
	if err != nil {
		return nil, err
	}

	env.Publish(ctx, constants.TopicCoinCollected, CollectedEvent{
		UID:       uid,
		Date:      at.Today,
		DayNumber: coin.DayNumber,
		VariantID: coin.ID,
	})

	return coin, nil
}

//Eligibility Checks whether the user can collect the coin of at.Today, given the steps logged today.
func Eligibility(p *structs.UserProfile, stepsToday int, at calendar.Moment) error {
	if !at.Active() {
		return &errors.FailedPreconditionError{
			Reason: errors.ReasonOutsideChallengeDates,
			Msg:    fmt.Sprintf("%v is outside of the challenge", at.Today),
		}
	}

	if slices.Contains(p.ChrysalisCoinDates, at.Today) {
		return &errors.ConflictError{
			Reason: errors.ReasonAlreadyCollected,
			Msg:    fmt.Sprintf("Coin for %v was already collected", at.Today),
		}
	}

	if p.StepGoal <= 0 {
		return &errors.FailedPreconditionError{
			Reason: errors.ReasonNoStepGoal,
			Msg:    "Step goal is not set",
		}
	}

	if target := calendar.DailyTarget(p.StepGoal); stepsToday < target {
		return &errors.FailedPreconditionError{
			Reason: errors.ReasonGoalNotMet,
			Msg:    fmt.Sprintf("Daily target of %v steps not met, %v logged", target, stepsToday),
		}
	}

	return nil
}

//StepsToday Steps the user logged on date, read inside a transaction.
func StepsToday(tx store.Tx, uid string, date string) (int, error) {
	var day structs.DailyStep
	if err := tx.Get(constants.DailyStepsCollection(uid), date, &day); err != nil {
		if store.IsNotFound(err) {
			return 0, nil
		}
		return 0, errors.Transient("Error while querying Firestore", err)
	}
	return day.Steps, nil
}

//Collect Redeems coin of the day. The date is recorded at most once; any failed check leaves
//the profile untouched.
func Collect(ctx context.Context, client store.Storer, at calendar.Moment, uid string) (*chrysalis.Variant, error) {
	logger := logging.FromContext(ctx).Named("chrysaliscoin.Collect")

	err := client.RunTransaction(ctx, func(ctx context.Context, tx store.Tx) error {
		p, err := profile.Load(tx, uid)
		if err != nil {
			return err
		}

		steps, err := StepsToday(tx, uid, at.Today)
		if err != nil {
			return err
		}

		if err := Eligibility(p, steps, at); err != nil {
			return err
		}

		logger.Infof("User %v collects coin of %v (day %v)", uid, at.Today, at.DayNumber())

		p.ChrysalisCoinDates = append(p.ChrysalisCoinDates, at.Today)
		return profile.Save(tx, p, at)
	})

	if err != nil {
		return nil, err
	}

	coin := chrysalis.ByDay(ctx, at.DayNumber())
	return &coin, nil
}

package awardbadge

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/butterflysteps/backend/internal/badges"
	"github.com/butterflysteps/backend/internal/calendar"
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

//AwardedEvent Payload of the badge-awarded topic.
type AwardedEvent struct {
	UID     string `json:"uid"`
	BadgeID string `json:"badgeId"`
}

//AwardBadgeIfUnearned Handler
func AwardBadgeIfUnearned(w http.ResponseWriter, r *http.Request) {
	Handler(environment.Default(r.Context()))(w, r)
}

//Handler Builds AwardBadgeIfUnearned handler over given environment.
func Handler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("award-badge-if-unearned")

		var request v1.AwardBadgeRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		badge, err := Award(ctx, env.Store, env.Moment(), uid, request.BadgeID)
		if err != nil {
			logger.Debugf("Cannot award badge: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		if badge != nil {
			Publish(ctx, env, uid, *badge)
		}

		httputils.SendResponse(w, r, v1.AwardBadgeResponse{Badge: badge})
	}
}

//Publish Announces newly awarded badges.
func Publish(ctx context.Context, env *environment.Environment, uid string, awarded ...badges.Badge) {
	for _, b := range awarded {
		env.Publish(ctx, constants.TopicBadgeAwarded, AwardedEvent{UID: uid, BadgeID: b.ID})
	}
}

//AwardTo Adds the badge to the profile. Returns nil when the badge is already held.
func AwardTo(p *structs.UserProfile, badgeID string) (*badges.Badge, error) {
	badge, ok := badges.ByID(badgeID)
	if !ok {
		return nil, &errors.ValidationError{Msg: fmt.Sprintf("Unknown badge '%v'", badgeID)}
	}

	if slices.Contains(p.BadgesEarned, badgeID) {
		return nil, nil
	}

	p.BadgesEarned = append(p.BadgesEarned, badgeID)
	return &badge, nil
}

//AwardMilestonesTo Adds every step milestone the profile has crossed and returns the new ones.
func AwardMilestonesTo(p *structs.UserProfile) []badges.Badge {
	earned := badges.NewlyEarned(p.CurrentSteps, p.BadgesEarned)
	for _, b := range earned {
		p.BadgesEarned = append(p.BadgesEarned, b.ID)
	}
	return earned
}

//Award Awards badge to the user unless already held.
func Award(ctx context.Context, client store.Storer, at calendar.Moment, uid string, badgeID string) (*badges.Badge, error) {
	logger := logging.FromContext(ctx).Named("awardbadge.Award")

	if _, ok := badges.ByID(badgeID); !ok {
		return nil, &errors.ValidationError{Msg: fmt.Sprintf("Unknown badge '%v'", badgeID)}
	}

	var awarded *badges.Badge

	err := client.RunTransaction(ctx, func(ctx context.Context, tx store.Tx) error {
		p, err := profile.Load(tx, uid)
		if err != nil {
			return err
		}

		awarded, err = AwardTo(p, badgeID)
		if err != nil || awarded == nil {
			return err
		}

		logger.Infof("Awarding badge %v to %v", badgeID, uid)

		return profile.Save(tx, p, at)
	})

	if err != nil {
		return nil, err
	}
	return awarded, nil
}

//AwardMilestones Awards every crossed step milestone the user does not hold yet.
func AwardMilestones(ctx context.Context, client store.Storer, at calendar.Moment, uid string) ([]badges.Badge, error) {
	logger := logging.FromContext(ctx).Named("awardbadge.AwardMilestones")

	var awarded []badges.Badge

	err := client.RunTransaction(ctx, func(ctx context.Context, tx store.Tx) error {
		p, err := profile.Load(tx, uid)
		if err != nil {
			return err
		}

		awarded = AwardMilestonesTo(p)
		if len(awarded) == 0 {
			return nil
		}

		logger.Infof("Awarding %v milestone badges to %v", len(awarded), uid)

		return profile.Save(tx, p, at)
	})

	if err != nil {
		return nil, err
	}
	return awarded, nil
}

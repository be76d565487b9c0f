package challenges

import (
	"context"
	"net/http"

	"github.com/butterflysteps/backend/internal/calendar"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/store"
	httputils "github.com/butterflysteps/backend/internal/utils/http"
	v1 "github.com/butterflysteps/backend/pkg/api/v1"
)

//IssueHandler Builds IssueDirectChallenge handler over given environment.
func IssueHandler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("issue-direct-challenge")

		var request v1.IssueChallengeRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		challenge, err := Issue(ctx, env.Store, env.Push, env.Moment(), uid, Details{
			OpponentUID:           request.OpponentUID,
			GoalValue:             request.GoalValue,
			StartDate:             request.StartDate,
			Stakes:                request.Stakes,
			StructuredDescription: request.StructuredDescription,
			CreatorMessage:        request.CreatorMessage,
		})
		if err != nil {
			logger.Debugf("Cannot issue challenge: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.ChallengeResponse{Challenge: *challenge})
	}
}

//AcceptHandler Builds AcceptChallengeInvitation handler over given environment.
func AcceptHandler(env *environment.Environment) http.HandlerFunc {
	return respondHandler(env, "accept-challenge-invitation", Accept)
}

//DeclineHandler Builds DeclineChallengeInvitation handler over given environment.
func DeclineHandler(env *environment.Environment) http.HandlerFunc {
	return respondHandler(env, "decline-challenge-invitation", Decline)
}

func respondHandler(env *environment.Environment, name string, op func(ctx context.Context, client store.Storer, at calendar.Moment, uid string, challengeID string) (*structs.Challenge, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named(name)

		var request v1.ChallengeRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		challenge, err := op(ctx, env.Store, env.Moment(), uid, request.ChallengeID)
		if err != nil {
			logger.Debugf("Cannot respond to challenge: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.ChallengeResponse{Challenge: *challenge})
	}
}

//ListPendingHandler Builds ListPendingInvitations handler over given environment.
func ListPendingHandler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("list-pending-invitations")

		var request v1.IDTokenRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		pending, err := ListPending(ctx, env.Store, uid)
		if err != nil {
			logger.Warnf("Cannot handle request due to error: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.ChallengesResponse{Challenges: pending})
	}
}

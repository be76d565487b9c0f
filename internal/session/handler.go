package session

import (
	"context"
	"net/http"

	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/functions/teams"
	"github.com/butterflysteps/backend/internal/logging"
	httputils "github.com/butterflysteps/backend/internal/utils/http"
	v1 "github.com/butterflysteps/backend/pkg/api/v1"
)

//SessionLogin Handler
func SessionLogin(w http.ResponseWriter, r *http.Request) {
	Handler(environment.Default(r.Context()))(w, r)
}

//Handler Builds SessionLogin handler over given environment.
func Handler(env *environment.Environment) http.HandlerFunc {
	controller := NewController(env)

	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("session-login")

		var request v1.IDTokenRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		s, err := controller.Login(ctx, uid)
		if err != nil {
			logger.Debugf("Cannot log in: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, s.Response())
	}
}

//SessionSubmitSteps Handler
func SessionSubmitSteps(w http.ResponseWriter, r *http.Request) {
	SubmitStepsHandler(environment.Default(r.Context()))(w, r)
}

//SessionCollectCoin Handler
func SessionCollectCoin(w http.ResponseWriter, r *http.Request) {
	CollectCoinHandler(environment.Default(r.Context()))(w, r)
}

//SessionJoinTeam Handler
func SessionJoinTeam(w http.ResponseWriter, r *http.Request) {
	JoinTeamHandler(environment.Default(r.Context()))(w, r)
}

//SessionCreateTeam Handler
func SessionCreateTeam(w http.ResponseWriter, r *http.Request) {
	CreateTeamHandler(environment.Default(r.Context()))(w, r)
}

//SessionLeaveTeam Handler
func SessionLeaveTeam(w http.ResponseWriter, r *http.Request) {
	LeaveTeamHandler(environment.Default(r.Context()))(w, r)
}

//SessionCompleteProfileSetup Handler
func SessionCompleteProfileSetup(w http.ResponseWriter, r *http.Request) {
	CompleteProfileSetupHandler(environment.Default(r.Context()))(w, r)
}

type action func(ctx context.Context, s *Session) (interface{}, error)

// Resumes the caller's session, runs the action on it and answers with the result and the refreshed snapshot.
func serveAction(w http.ResponseWriter, r *http.Request, controller *Controller, name string, idToken string, act action) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx).Named(name)

	uid, err := controller.env.Authenticate(ctx, idToken)
	if err != nil {
		httputils.SendErrorResponse(w, r, err)
		return
	}

	s, err := controller.Resume(ctx, uid)
	if err != nil {
		logger.Debugf("Cannot resume session: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	result, err := act(ctx, s)
	if err != nil {
		logger.Debugf("Session action failed: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	httputils.SendResponse(w, r, v1.SessionActionResponse{Result: result, Session: s.Response()})
}

func membershipResponse(m *teams.Membership) v1.TeamMembershipResponse {
	return v1.TeamMembershipResponse{TeamID: m.TeamID, TeamName: m.TeamName, AwardedBadge: m.AwardedBadge}
}

//SubmitStepsHandler Builds SessionSubmitSteps handler over given environment.
func SubmitStepsHandler(env *environment.Environment) http.HandlerFunc {
	controller := NewController(env)

	return func(w http.ResponseWriter, r *http.Request) {
		var request v1.SubmitStepsRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		serveAction(w, r, controller, "session-submit-steps", request.IDToken, func(ctx context.Context, s *Session) (interface{}, error) {
			result, err := s.SubmitSteps(ctx, request.Steps)
			if err != nil {
				return nil, err
			}
			return v1.SubmitStepsResponse{
				CurrentSteps: result.CurrentSteps,
				StepsToday:   result.StepsToday,
				NewBadges:    result.NewBadges,
			}, nil
		})
	}
}

//CollectCoinHandler Builds SessionCollectCoin handler over given environment.
func CollectCoinHandler(env *environment.Environment) http.HandlerFunc {
	controller := NewController(env)

	return func(w http.ResponseWriter, r *http.Request) {
		var request v1.IDTokenRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		serveAction(w, r, controller, "session-collect-coin", request.IDToken, func(ctx context.Context, s *Session) (interface{}, error) {
			coin, err := s.CollectCoin(ctx)
			if err != nil {
				return nil, err
			}
			return v1.CollectCoinResponse{Coin: *coin}, nil
		})
	}
}

//JoinTeamHandler Builds SessionJoinTeam handler over given environment.
func JoinTeamHandler(env *environment.Environment) http.HandlerFunc {
	controller := NewController(env)

	return func(w http.ResponseWriter, r *http.Request) {
		var request v1.TeamRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		serveAction(w, r, controller, "session-join-team", request.IDToken, func(ctx context.Context, s *Session) (interface{}, error) {
			m, err := s.JoinTeam(ctx, request.TeamID)
			if err != nil {
				return nil, err
			}
			return membershipResponse(m), nil
		})
	}
}

//CreateTeamHandler Builds SessionCreateTeam handler over given environment.
func CreateTeamHandler(env *environment.Environment) http.HandlerFunc {
	controller := NewController(env)

	return func(w http.ResponseWriter, r *http.Request) {
		var request v1.CreateTeamRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		serveAction(w, r, controller, "session-create-team", request.IDToken, func(ctx context.Context, s *Session) (interface{}, error) {
			m, err := s.CreateTeam(ctx, request.Name)
			if err != nil {
				return nil, err
			}
			return membershipResponse(m), nil
		})
	}
}

//LeaveTeamHandler Builds SessionLeaveTeam handler over given environment.
func LeaveTeamHandler(env *environment.Environment) http.HandlerFunc {
	controller := NewController(env)

	return func(w http.ResponseWriter, r *http.Request) {
		var request v1.IDTokenRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		serveAction(w, r, controller, "session-leave-team", request.IDToken, func(ctx context.Context, s *Session) (interface{}, error) {
			return nil, s.LeaveTeam(ctx)
		})
	}
}

//CompleteProfileSetupHandler Builds SessionCompleteProfileSetup handler over given environment.
func CompleteProfileSetupHandler(env *environment.Environment) http.HandlerFunc {
	controller := NewController(env)

	return func(w http.ResponseWriter, r *http.Request) {
		var request v1.SessionSetupRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		serveAction(w, r, controller, "session-complete-profile-setup", request.IDToken, func(ctx context.Context, s *Session) (interface{}, error) {
			return nil, s.CompleteProfileSetup(ctx, Setup{
				DisplayName:    request.DisplayName,
				ActivityStatus: request.ActivityStatus,
				StepGoal:       request.StepGoal,
			})
		})
	}
}

//Response Snapshot in the wire format.
func (s *Session) Response() v1.SessionResponse {
	return v1.SessionResponse{
		Profile:            s.Profile,
		Modal:              string(s.Modal),
		StreakAdvanced:     s.Streak != nil && s.Streak.Advanced,
		StepsToday:         s.StepsToday,
		DailyTarget:        s.DailyTarget(),
		CoinAvailable:      s.CoinAvailable(),
		CoinCollectedToday: s.CoinCollectedToday(),
		NewBadges:          s.NewBadges,
		PendingInvitations: s.PendingInvitations,
	}
}

package teams

import (
	"net/http"

	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/functions/awardbadge"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/utils"
	httputils "github.com/butterflysteps/backend/internal/utils/http"
	v1 "github.com/butterflysteps/backend/pkg/api/v1"
)

func membershipResponse(m *Membership) v1.TeamMembershipResponse {
	return v1.TeamMembershipResponse{TeamID: m.TeamID, TeamName: m.TeamName, AwardedBadge: m.AwardedBadge}
}

//CreateHandler Builds CreateTeam handler over given environment.
func CreateHandler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("create-team")

		var request v1.CreateTeamRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		membership, err := Create(ctx, env.Store, env.Moment(), utils.GenerateTeamCode, uid, request.Name)
		if err != nil {
			logger.Debugf("Cannot create team: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		if membership.AwardedBadge != nil {
			awardbadge.Publish(ctx, env, uid, *membership.AwardedBadge)
		}

		httputils.SendResponse(w, r, membershipResponse(membership))
	}
}

//JoinHandler Builds JoinTeam handler over given environment.
func JoinHandler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("join-team")

		var request v1.TeamRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		membership, err := Join(ctx, env.Store, env.Moment(), uid, request.TeamID)
		if err != nil {
			logger.Debugf("Cannot join team: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		if membership.AwardedBadge != nil {
			awardbadge.Publish(ctx, env, uid, *membership.AwardedBadge)
		}

		httputils.SendResponse(w, r, membershipResponse(membership))
	}
}

//LeaveHandler Builds LeaveTeam handler over given environment.
func LeaveHandler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("leave-team")

		var request v1.TeamRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		if err := Leave(ctx, env.Store, env.Moment(), uid, request.TeamID); err != nil {
			logger.Debugf("Cannot leave team: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendEmptyResponse(w, r)
	}
}

//GetHandler Builds GetTeam handler over given environment.
func GetHandler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()

		var request v1.TeamRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		if _, err := env.Authenticate(ctx, request.IDToken); err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		team, err := Get(ctx, env.Store, request.TeamID)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.TeamResponse{Team: *team})
	}
}

//ListHandler Builds GetAllTeams handler over given environment.
func ListHandler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("get-all-teams")

		var request v1.IDTokenRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		if _, err := env.Authenticate(ctx, request.IDToken); err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		teams, err := All(ctx, env.Store)
		if err != nil {
			logger.Warnf("Cannot handle request due to error: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.TeamsResponse{Teams: teams})
	}
}

//MembersHandler Builds GetTeamMembersProfiles handler over given environment.
func MembersHandler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("get-team-members-profiles")

		var request v1.TeamRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		if _, err := env.Authenticate(ctx, request.IDToken); err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		members, err := Members(ctx, env.Store, request.TeamID)
		if err != nil {
			logger.Warnf("Cannot handle request due to error: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.TeamMembersResponse{Members: members})
	}
}

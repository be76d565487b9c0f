package functions

import (
	"context"
	"net/http"

	"github.com/butterflysteps/backend/internal/chrysalis"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/functions/awardbadge"
	"github.com/butterflysteps/backend/internal/functions/challenges"
	"github.com/butterflysteps/backend/internal/functions/chrysaliscoin"
	"github.com/butterflysteps/backend/internal/functions/communitystats"
	"github.com/butterflysteps/backend/internal/functions/invite"
	"github.com/butterflysteps/backend/internal/functions/profile"
	"github.com/butterflysteps/backend/internal/functions/reconcile"
	"github.com/butterflysteps/backend/internal/functions/streak"
	"github.com/butterflysteps/backend/internal/functions/submitsteps"
	"github.com/butterflysteps/backend/internal/functions/teams"
	"github.com/butterflysteps/backend/internal/pubsub"
	"github.com/butterflysteps/backend/internal/session"
)

func init() {
	chrysalis.MustValidate()
}

// SessionLogin SessionLogin handler.
func SessionLogin(w http.ResponseWriter, r *http.Request) {
	session.SessionLogin(w, r)
}

// SessionSubmitSteps SessionSubmitSteps handler.
func SessionSubmitSteps(w http.ResponseWriter, r *http.Request) {
	session.SessionSubmitSteps(w, r)
}

// SessionCollectCoin SessionCollectCoin handler.
func SessionCollectCoin(w http.ResponseWriter, r *http.Request) {
	session.SessionCollectCoin(w, r)
}

// SessionJoinTeam SessionJoinTeam handler.
func SessionJoinTeam(w http.ResponseWriter, r *http.Request) {
	session.SessionJoinTeam(w, r)
}

// SessionCreateTeam SessionCreateTeam handler.
func SessionCreateTeam(w http.ResponseWriter, r *http.Request) {
	session.SessionCreateTeam(w, r)
}

// SessionLeaveTeam SessionLeaveTeam handler.
func SessionLeaveTeam(w http.ResponseWriter, r *http.Request) {
	session.SessionLeaveTeam(w, r)
}

// SessionCompleteProfileSetup SessionCompleteProfileSetup handler.
func SessionCompleteProfileSetup(w http.ResponseWriter, r *http.Request) {
	session.SessionCompleteProfileSetup(w, r)
}

// GetUserProfile GetUserProfile handler.
func GetUserProfile(w http.ResponseWriter, r *http.Request) {
	profile.GetUserProfileHandler(environment.Default(r.Context()))(w, r)
}

// CreateUserProfile CreateUserProfile handler.
func CreateUserProfile(w http.ResponseWriter, r *http.Request) {
	profile.CreateUserProfileHandler(environment.Default(r.Context()))(w, r)
}

// UpdateUserProfile UpdateUserProfile handler.
func UpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	profile.UpdateUserProfileHandler(environment.Default(r.Context()))(w, r)
}

// UpdateStreakOnLogin UpdateStreakOnLogin handler.
func UpdateStreakOnLogin(w http.ResponseWriter, r *http.Request) {
	streak.UpdateStreakOnLogin(w, r)
}

// SubmitSteps SubmitSteps handler.
func SubmitSteps(w http.ResponseWriter, r *http.Request) {
	submitsteps.SubmitSteps(w, r)
}

// GetUserDailySteps GetUserDailySteps handler.
func GetUserDailySteps(w http.ResponseWriter, r *http.Request) {
	submitsteps.GetUserDailySteps(w, r)
}

// GetCommunityStats GetCommunityStats handler.
func GetCommunityStats(w http.ResponseWriter, r *http.Request) {
	communitystats.GetCommunityStats(w, r)
}

// AwardBadgeIfUnearned AwardBadgeIfUnearned handler.
func AwardBadgeIfUnearned(w http.ResponseWriter, r *http.Request) {
	awardbadge.AwardBadgeIfUnearned(w, r)
}

// CollectDailyChrysalisCoin CollectDailyChrysalisCoin handler.
func CollectDailyChrysalisCoin(w http.ResponseWriter, r *http.Request) {
	chrysaliscoin.CollectDailyChrysalisCoin(w, r)
}

// SetActiveChrysalisTheme SetActiveChrysalisTheme handler.
func SetActiveChrysalisTheme(w http.ResponseWriter, r *http.Request) {
	chrysaliscoin.SetActiveChrysalisTheme(w, r)
}

// CreateTeam CreateTeam handler.
func CreateTeam(w http.ResponseWriter, r *http.Request) {
	teams.CreateHandler(environment.Default(r.Context()))(w, r)
}

// JoinTeam JoinTeam handler.
func JoinTeam(w http.ResponseWriter, r *http.Request) {
	teams.JoinHandler(environment.Default(r.Context()))(w, r)
}

// LeaveTeam LeaveTeam handler.
func LeaveTeam(w http.ResponseWriter, r *http.Request) {
	teams.LeaveHandler(environment.Default(r.Context()))(w, r)
}

// GetTeam GetTeam handler.
func GetTeam(w http.ResponseWriter, r *http.Request) {
	teams.GetHandler(environment.Default(r.Context()))(w, r)
}

// GetAllTeams GetAllTeams handler.
func GetAllTeams(w http.ResponseWriter, r *http.Request) {
	teams.ListHandler(environment.Default(r.Context()))(w, r)
}

// GetTeamMembersProfiles GetTeamMembersProfiles handler.
func GetTeamMembersProfiles(w http.ResponseWriter, r *http.Request) {
	teams.MembersHandler(environment.Default(r.Context()))(w, r)
}

// IssueDirectChallenge IssueDirectChallenge handler.
func IssueDirectChallenge(w http.ResponseWriter, r *http.Request) {
	challenges.IssueHandler(environment.Default(r.Context()))(w, r)
}

// AcceptChallengeInvitation AcceptChallengeInvitation handler.
func AcceptChallengeInvitation(w http.ResponseWriter, r *http.Request) {
	challenges.AcceptHandler(environment.Default(r.Context()))(w, r)
}

// DeclineChallengeInvitation DeclineChallengeInvitation handler.
func DeclineChallengeInvitation(w http.ResponseWriter, r *http.Request) {
	challenges.DeclineHandler(environment.Default(r.Context()))(w, r)
}

// ListPendingInvitations ListPendingInvitations handler.
func ListPendingInvitations(w http.ResponseWriter, r *http.Request) {
	challenges.ListPendingHandler(environment.Default(r.Context()))(w, r)
}

// GenerateInviteMessage GenerateInviteMessage handler.
func GenerateInviteMessage(w http.ResponseWriter, r *http.Request) {
	invite.GenerateInviteMessage(w, r)
}

// ReconcileAggregates ReconcileAggregates handler.
func ReconcileAggregates(w http.ResponseWriter, r *http.Request) {
	reconcile.ReconcileAggregates(w, r)
}

// StepsAftermath StepsAftermath handler.
func StepsAftermath(ctx context.Context, m pubsub.Message) error {
	return submitsteps.Aftermath(ctx, m)
}

// CoinAftermath CoinAftermath handler.
func CoinAftermath(ctx context.Context, m pubsub.Message) error {
	return chrysaliscoin.Aftermath(ctx, m)
}

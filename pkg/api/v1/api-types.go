package v1

import (
	"github.com/butterflysteps/backend/internal/badges"
	"github.com/butterflysteps/backend/internal/chrysalis"
	"github.com/butterflysteps/backend/internal/firebase/structs"
)

/*
This files contains request/response structs for all endpoints. The structs have to be changed in
backward-compatible way and when it's not possible, copied to `v2` and changed there.
*/

//IDTokenRequest Request of functions needing nothing but the caller's identity
type IDTokenRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

//CreateUserProfileRequest Request for CreateUserProfile function
type CreateUserProfileRequest struct {
	IDToken     string `json:"idToken" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	DisplayName string `json:"displayName" validate:"max=80"`
}

//UserProfileResponse Response carrying the caller's profile; Profile is null for unknown users
type UserProfileResponse struct {
	Profile *structs.UserProfile `json:"profile"`
}

//UpdateUserProfileRequest Request for UpdateUserProfile function. Omitted fields stay unchanged.
type UpdateUserProfileRequest struct {
	IDToken         string                  `json:"idToken" validate:"required"`
	DisplayName     *string                 `json:"displayName" validate:"omitempty,max=80"`
	ActivityStatus  *structs.ActivityStatus `json:"activityStatus"`
	StepGoal        *int                    `json:"stepGoal"`
	Avatar          *structs.Avatar         `json:"avatar"`
	ProfileComplete *bool                   `json:"profileComplete"`
}

//SubmitStepsRequest Request for SubmitSteps function
type SubmitStepsRequest struct {
	IDToken string `json:"idToken" validate:"required"`
	Steps   int    `json:"steps"`
}

//SubmitStepsResponse Response for SubmitSteps function
type SubmitStepsResponse struct {
	CurrentSteps int            `json:"currentSteps"`
	StepsToday   int            `json:"stepsToday"`
	NewBadges    []badges.Badge `json:"newBadges"`
}

//GetUserDailyStepsRequest Request for GetUserDailySteps function
type GetUserDailyStepsRequest struct {
	IDToken string `json:"idToken" validate:"required"`
	Days    int    `json:"days"`
}

//GetUserDailyStepsResponse Response for GetUserDailySteps function, oldest day first
type GetUserDailyStepsResponse struct {
	Days []structs.DailyStep `json:"days"`
}

//CommunityStatsResponse Response for GetCommunityStats function
type CommunityStatsResponse struct {
	TotalSteps        int64 `json:"totalSteps"`
	TotalParticipants int   `json:"totalParticipants"`
}

//UpdateStreakResponse Response for UpdateStreakOnLogin function
type UpdateStreakResponse struct {
	UpdatedStreakCount         int    `json:"updatedStreakCount"`
	UpdatedLastStreakLoginDate string `json:"updatedLastStreakLoginDate"`
	UpdatedLastLoginTimestamp  int64  `json:"updatedLastLoginTimestamp"`
}

//CollectCoinResponse Response for CollectDailyChrysalisCoin function
type CollectCoinResponse struct {
	Coin chrysalis.Variant `json:"coin"`
}

//SetActiveChrysalisThemeRequest Request for SetActiveChrysalisTheme function; empty VariantID clears the theme
type SetActiveChrysalisThemeRequest struct {
	IDToken   string `json:"idToken" validate:"required"`
	VariantID string `json:"variantId"`
}

//AwardBadgeRequest Request for AwardBadgeIfUnearned function
type AwardBadgeRequest struct {
	IDToken string `json:"idToken" validate:"required"`
	BadgeID string `json:"badgeId" validate:"required"`
}

//AwardBadgeResponse Response for AwardBadgeIfUnearned function; Badge is null when already held
type AwardBadgeResponse struct {
	Badge *badges.Badge `json:"badge"`
}

//CreateTeamRequest Request for CreateTeam function
type CreateTeamRequest struct {
	IDToken string `json:"idToken" validate:"required"`
	Name    string `json:"name" validate:"required"`
}

//TeamRequest Request of functions addressing one team
type TeamRequest struct {
	IDToken string `json:"idToken" validate:"required"`
	TeamID  string `json:"teamId" validate:"required"`
}

//TeamMembershipResponse Response for CreateTeam and JoinTeam functions
type TeamMembershipResponse struct {
	TeamID       string        `json:"teamId"`
	TeamName     string        `json:"teamName"`
	AwardedBadge *badges.Badge `json:"awardedBadge"`
}

//TeamResponse Response for GetTeam function
type TeamResponse struct {
	Team structs.Team `json:"team"`
}

//TeamsResponse Response for GetAllTeams function
type TeamsResponse struct {
	Teams []structs.Team `json:"teams"`
}

//TeamMember Public part of a member's profile
type TeamMember struct {
	UID           string         `json:"uid"`
	DisplayName   string         `json:"displayName"`
	CurrentSteps  int            `json:"currentSteps"`
	CurrentStreak int            `json:"currentStreak"`
	Avatar        structs.Avatar `json:"avatar"`
}

//TeamMembersResponse Response for GetTeamMembersProfiles function
type TeamMembersResponse struct {
	Members []TeamMember `json:"members"`
}

//IssueChallengeRequest Request for IssueDirectChallenge function
type IssueChallengeRequest struct {
	IDToken               string `json:"idToken" validate:"required"`
	OpponentUID           string `json:"opponentUid" validate:"required"`
	GoalValue             int    `json:"goalValue"`
	StartDate             string `json:"startDate" validate:"required"`
	Stakes                string `json:"stakes" validate:"max=200"`
	StructuredDescription string `json:"structuredDescription" validate:"max=500"`
	CreatorMessage        string `json:"creatorMessage" validate:"max=500"`
}

//ChallengeRequest Request for AcceptChallengeInvitation and DeclineChallengeInvitation functions
type ChallengeRequest struct {
	IDToken     string `json:"idToken" validate:"required"`
	ChallengeID string `json:"challengeId" validate:"required"`
}

//ChallengeResponse Response carrying one challenge
type ChallengeResponse struct {
	Challenge structs.Challenge `json:"challenge"`
}

//ChallengesResponse Response for ListPendingInvitations function
type ChallengesResponse struct {
	Challenges []structs.Challenge `json:"challenges"`
}

//InviteMessageResponse Response for GenerateInviteMessage function
type InviteMessageResponse struct {
	Message string `json:"message"`
}

//SessionResponse Response for SessionLogin function
type SessionResponse struct {
	Profile            *structs.UserProfile `json:"profile"`
	Modal              string               `json:"modal"`
	StreakAdvanced     bool                 `json:"streakAdvanced"`
	StepsToday         int                  `json:"stepsToday"`
	DailyTarget        int                  `json:"dailyTarget"`
	CoinAvailable      bool                 `json:"coinAvailable"`
	CoinCollectedToday bool                 `json:"coinCollectedToday"`
	NewBadges          []badges.Badge       `json:"newBadges"`
	PendingInvitations []structs.Challenge  `json:"pendingInvitations"`
}

//SessionSetupRequest Request for SessionCompleteProfileSetup function
type SessionSetupRequest struct {
	IDToken        string                 `json:"idToken" validate:"required"`
	DisplayName    string                 `json:"displayName" validate:"required,max=80"`
	ActivityStatus structs.ActivityStatus `json:"activityStatus"`
	StepGoal       int                    `json:"stepGoal"`
}

//SessionActionResponse Response for session action functions: the action result and the refreshed snapshot
type SessionActionResponse struct {
	Result  interface{}     `json:"result,omitempty"`
	Session SessionResponse `json:"session"`
}

package structs

//ActivityStatus Self-reported activity level chosen during profile setup.
type ActivityStatus string

//Activity levels.
const (
	Sedentary        ActivityStatus = "Sedentary"
	ModeratelyActive ActivityStatus = "Moderately Active"
	VeryActive       ActivityStatus = "Very Active"
)

//AvatarKind Which avatar the profile shows.
type AvatarKind string

//Avatar kinds.
const (
	AvatarDefault   AvatarKind = "default"
	AvatarChrysalis AvatarKind = "chrysalis"
	AvatarCustom    AvatarKind = "custom"
)

//Avatar Profile picture. URL is only set for AvatarCustom.
type Avatar struct {
	Kind AvatarKind `json:"kind" firestore:"kind"`
	URL  string     `json:"url,omitempty" firestore:"url,omitempty"`
}

//UserProfile DB entity for a participant.
type UserProfile struct {
	UID                    string         `json:"uid" firestore:"uid"`
	Email                  string         `json:"email" firestore:"email"`
	DisplayName            string         `json:"displayName" firestore:"displayName"`
	ActivityStatus         ActivityStatus `json:"activityStatus,omitempty" firestore:"activityStatus"`
	StepGoal               int            `json:"stepGoal" firestore:"stepGoal"`
	ProfileComplete        bool           `json:"profileComplete" firestore:"profileComplete"`
	CurrentSteps           int            `json:"currentSteps" firestore:"currentSteps"`
	BadgesEarned           []string       `json:"badgesEarned" firestore:"badgesEarned"`
	TeamID                 string         `json:"teamId,omitempty" firestore:"teamId"`
	TeamName               string         `json:"teamName,omitempty" firestore:"teamName"`
	CurrentStreak          int            `json:"currentStreak" firestore:"currentStreak"`
	LastStreakLoginDate    string         `json:"lastStreakLoginDate,omitempty" firestore:"lastStreakLoginDate"`
	LastLoginTimestamp     int64          `json:"lastLoginTimestamp" firestore:"lastLoginTimestamp"`
	ChrysalisCoinDates     []string       `json:"chrysalisCoinDates" firestore:"chrysalisCoinDates"`
	ActiveChrysalisThemeID string         `json:"activeChrysalisThemeId,omitempty" firestore:"activeChrysalisThemeId"`
	Avatar                 Avatar         `json:"avatar" firestore:"avatar"`
	CreatedAt              int64          `json:"createdAt" firestore:"createdAt"`
	UpdatedAt              int64          `json:"updatedAt" firestore:"updatedAt"`
}

//DailyStep DB entity for steps of one user on one date.
type DailyStep struct {
	Date  string `json:"date" firestore:"date"`
	Steps int    `json:"steps" firestore:"steps"`
}

//CommunityStats DB entity for the community singleton.
type CommunityStats struct {
	TotalSteps        int64 `json:"totalSteps" firestore:"totalSteps"`
	TotalParticipants int   `json:"totalParticipants" firestore:"totalParticipants"`
}

//Team DB entity for a team.
type Team struct {
	ID         string   `json:"id" firestore:"id"`
	Name       string   `json:"name" firestore:"name"`
	CreatorUID string   `json:"creatorUid" firestore:"creatorUid"`
	MemberUIDs []string `json:"memberUids" firestore:"memberUids"`
	TotalSteps int      `json:"totalSteps" firestore:"totalSteps"`
	CreatedAt  int64    `json:"createdAt" firestore:"createdAt"`
}

//ChallengeStatus State of a direct challenge.
type ChallengeStatus string

//Challenge states. Accepted and declined are terminal.
const (
	ChallengePending  ChallengeStatus = "pending"
	ChallengeAccepted ChallengeStatus = "accepted"
	ChallengeDeclined ChallengeStatus = "declined"
)

//Challenge DB entity for a direct peer challenge.
type Challenge struct {
	ID                    string          `json:"id" firestore:"id"`
	CreatorUID            string          `json:"creatorUid" firestore:"creatorUid"`
	CreatorName           string          `json:"creatorName" firestore:"creatorName"`
	OpponentUID           string          `json:"opponentUid" firestore:"opponentUid"`
	OpponentName          string          `json:"opponentName" firestore:"opponentName"`
	GoalValue             int             `json:"goalValue" firestore:"goalValue"`
	StartDate             string          `json:"startDate" firestore:"startDate"`
	Stakes                string          `json:"stakes,omitempty" firestore:"stakes"`
	StructuredDescription string          `json:"structuredDescription,omitempty" firestore:"structuredDescription"`
	CreatorMessage        string          `json:"creatorMessage,omitempty" firestore:"creatorMessage"`
	Status                ChallengeStatus `json:"status" firestore:"status"`
	CreatedAt             int64           `json:"createdAt" firestore:"createdAt"`
	RespondedAt           int64           `json:"respondedAt,omitempty" firestore:"respondedAt"`
}

//CoinCounter Realtime DB entity for collected coins.
type CoinCounter struct {
	CoinsCount int `json:"coinsCount"`
}

//StepCounter Realtime DB entity for submitted steps.
type StepCounter struct {
	Steps       int64 `json:"steps"`
	Submissions int   `json:"submissions"`
}

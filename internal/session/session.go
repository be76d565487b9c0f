package session

import (
	"context"
	"fmt"
	"slices"

	"github.com/butterflysteps/backend/internal/badges"
	"github.com/butterflysteps/backend/internal/calendar"
	"github.com/butterflysteps/backend/internal/chrysalis"
	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/functions/awardbadge"
	"github.com/butterflysteps/backend/internal/functions/challenges"
	"github.com/butterflysteps/backend/internal/functions/chrysaliscoin"
	"github.com/butterflysteps/backend/internal/functions/profile"
	"github.com/butterflysteps/backend/internal/functions/streak"
	"github.com/butterflysteps/backend/internal/functions/submitsteps"
	"github.com/butterflysteps/backend/internal/functions/teams"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils"
	"github.com/butterflysteps/backend/internal/utils/errors"
)

//Modal Engagement dialog the client should show after login.
type Modal string

//Modals ordered by priority, only one is shown.
const (
	ModalProfileSetup        Modal = "profile_setup"
	ModalChallengeInvitation Modal = "challenge_invitation"
	ModalBadgeCelebration    Modal = "badge_celebration"
	ModalDailyCoin           Modal = "daily_coin"
	ModalStreak              Modal = "streak"
	ModalNone                Modal = "none"
)

//Controller Creates sessions over injected clients.
type Controller struct {
	env *environment.Environment
}

//NewController Controller over given environment.
func NewController(env *environment.Environment) *Controller {
	return &Controller{env: env}
}

//Session Snapshot of one logged-in user together with the engagement state derived from it.
//A Session is not safe for concurrent use.
type Session struct {
	controller *Controller

	UID                string
	Profile            *structs.UserProfile
	Modal              Modal
	StepsToday         int
	Streak             *streak.Result
	NewBadges          []badges.Badge
	PendingInvitations []structs.Challenge
	// date the flags were computed for
	Today string
}

//Login Records the login and decides which modal to show. Users without profile get the
//profile setup modal and no streak.
func (c *Controller) Login(ctx context.Context, uid string) (*Session, error) {
	logger := logging.FromContext(ctx).Named("session.Login")

	s := &Session{controller: c, UID: uid}

	p, err := profile.GetUserProfile(ctx, c.env.Store, uid)
	if err != nil {
		return nil, err
	}
	if p == nil {
		logger.Debugf("User %v has no profile yet", uid)
		s.Today = c.env.Moment().Today
		s.Modal = ModalProfileSetup
		return s, nil
	}

	at := c.env.Moment()

	if s.Streak, err = streak.Update(ctx, c.env.Store, at, uid); err != nil {
		return nil, err
	}

	if s.NewBadges, err = awardbadge.AwardMilestones(ctx, c.env.Store, at, uid); err != nil {
		return nil, err
	}
	awardbadge.Publish(ctx, c.env, uid, s.NewBadges...)

	if s.PendingInvitations, err = challenges.ListPending(ctx, c.env.Store, uid); err != nil {
		return nil, err
	}

	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	s.Modal = s.decideModal()

	logger.Debugf("User %v logged in, streak %v, modal %v", uid, s.Streak.Streak, s.Modal)

	return s, nil
}

//Resume Loads the session of a user that already logged in today, without the login side effects.
func (c *Controller) Resume(ctx context.Context, uid string) (*Session, error) {
	s := &Session{controller: c, UID: uid}

	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	if s.Profile != nil {
		var err error
		if s.PendingInvitations, err = challenges.ListPending(ctx, c.env.Store, uid); err != nil {
			return nil, err
		}
	}

	s.Modal = s.decideModal()
	return s, nil
}

func (s *Session) decideModal() Modal {
	switch {
	case s.Profile == nil || !s.Profile.ProfileComplete:
		return ModalProfileSetup
	case len(s.PendingInvitations) > 0:
		return ModalChallengeInvitation
	case len(s.NewBadges) > 0:
		return ModalBadgeCelebration
	case s.CoinAvailable():
		return ModalDailyCoin
	case s.Streak != nil && s.Streak.Advanced && s.Streak.Streak > 1:
		return ModalStreak
	default:
		return ModalNone
	}
}

//Refresh Refetches profile and today's steps. On error the snapshot stays as it was.
func (s *Session) Refresh(ctx context.Context) error {
	env := s.controller.env
	at := env.Moment()

	p, err := profile.GetUserProfile(ctx, env.Store, s.UID)
	if err != nil {
		return err
	}

	var day structs.DailyStep
	if err := env.Store.Get(ctx, constants.DailyStepsCollection(s.UID), at.Today, &day); err != nil && !store.IsNotFound(err) {
		return errors.Transient("Error while querying Firestore", err)
	}

	s.Profile = p
	s.StepsToday = day.Steps
	s.Today = at.Today
	return nil
}

//DailyTarget Steps needed today for the coin; 0 when no goal is set.
func (s *Session) DailyTarget() int {
	if s.Profile == nil {
		return 0
	}
	return calendar.DailyTarget(s.Profile.StepGoal)
}

//CoinCollectedToday Whether today's coin is already in the ledger.
func (s *Session) CoinCollectedToday() bool {
	return s.Profile != nil && slices.Contains(s.Profile.ChrysalisCoinDates, s.Today)
}

//CoinAvailable Whether collecting today's coin would succeed.
func (s *Session) CoinAvailable() bool {
	if s.Profile == nil {
		return false
	}
	at := calendar.Moment{Now: s.controller.env.Clock(), Today: s.Today}
	return chrysaliscoin.Eligibility(s.Profile, s.StepsToday, at) == nil
}

//SubmitSteps Logs steps and refetches the profile.
func (s *Session) SubmitSteps(ctx context.Context, steps int) (*submitsteps.Result, error) {
	result, err := submitsteps.Submit(ctx, s.controller.env, s.UID, steps)
	if err != nil {
		return nil, err
	}
	s.NewBadges = append(s.NewBadges, result.NewBadges...)
	return result, s.Refresh(ctx)
}

//CollectCoin Collects today's coin and refetches the profile.
func (s *Session) CollectCoin(ctx context.Context) (*chrysalis.Variant, error) {
	coin, err := chrysaliscoin.CollectAndPublish(ctx, s.controller.env, s.UID)
	if err != nil {
		return nil, err
	}
	if s.Modal == ModalDailyCoin {
		s.Modal = ModalNone
	}
	return coin, s.Refresh(ctx)
}

func (s *Session) requireNoTeam() error {
	if s.Profile != nil && s.Profile.TeamID != "" {
		return &errors.ConflictError{
			Reason: errors.ReasonAlreadyOnTeam,
			Msg:    fmt.Sprintf("Already on team %v, leave it first", s.Profile.TeamID),
		}
	}
	return nil
}

func (s *Session) afterMembership(ctx context.Context, m *teams.Membership) (*teams.Membership, error) {
	if m.AwardedBadge != nil {
		s.NewBadges = append(s.NewBadges, *m.AwardedBadge)
		awardbadge.Publish(ctx, s.controller.env, s.UID, *m.AwardedBadge)
	}
	return m, s.Refresh(ctx)
}

//JoinTeam Joins team; the user must leave the current team first.
func (s *Session) JoinTeam(ctx context.Context, teamID string) (*teams.Membership, error) {
	if err := s.requireNoTeam(); err != nil {
		return nil, err
	}

	env := s.controller.env
	m, err := teams.Join(ctx, env.Store, env.Moment(), s.UID, teamID)
	if err != nil {
		return nil, err
	}
	return s.afterMembership(ctx, m)
}

//CreateTeam Creates team led by the user; the user must leave the current team first.
func (s *Session) CreateTeam(ctx context.Context, name string) (*teams.Membership, error) {
	if err := s.requireNoTeam(); err != nil {
		return nil, err
	}

	env := s.controller.env
	m, err := teams.Create(ctx, env.Store, env.Moment(), utils.GenerateTeamCode, s.UID, name)
	if err != nil {
		return nil, err
	}
	return s.afterMembership(ctx, m)
}

//LeaveTeam Leaves the current team.
func (s *Session) LeaveTeam(ctx context.Context) error {
	if s.Profile == nil || s.Profile.TeamID == "" {
		return &errors.ValidationError{Msg: "Not on a team"}
	}

	env := s.controller.env
	if err := teams.Leave(ctx, env.Store, env.Moment(), s.UID, s.Profile.TeamID); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

//Setup Answers of the profile setup form.
type Setup struct {
	DisplayName    string
	ActivityStatus structs.ActivityStatus
	StepGoal       int
}

//CompleteProfileSetup Stores the setup and marks the profile complete.
func (s *Session) CompleteProfileSetup(ctx context.Context, setup Setup) error {
	env := s.controller.env

	complete := true
	_, err := profile.UpdateUserProfile(ctx, env.Store, env.Moment(), s.UID, profile.Patch{
		DisplayName:     &setup.DisplayName,
		ActivityStatus:  &setup.ActivityStatus,
		StepGoal:        &setup.StepGoal,
		ProfileComplete: &complete,
	})
	if err != nil {
		return err
	}

	if err := s.Refresh(ctx); err != nil {
		return err
	}
	if s.Modal == ModalProfileSetup {
		s.Modal = s.decideModal()
	}
	return nil
}

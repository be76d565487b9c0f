package reconcile

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/functions/communitystats"
	"github.com/butterflysteps/backend/internal/functions/teams"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/redismutex"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils/errors"
	"golang.org/x/sync/errgroup"
)

const lockExpiry = 5 * time.Minute

//TeamDrift Difference between stored and recomputed team total.
type TeamDrift struct {
	TeamID   string `json:"teamId"`
	Stored   int    `json:"stored"`
	Computed int    `json:"computed"`
	// members whose profile points elsewhere or is missing
	StrayMembers []string `json:"strayMembers,omitempty"`
}

//CommunityDrift Difference between stored and recomputed community stats.
type CommunityDrift struct {
	StoredSteps          int64 `json:"storedSteps"`
	ComputedSteps        int64 `json:"computedSteps"`
	StoredParticipants   int   `json:"storedParticipants"`
	ComputedParticipants int   `json:"computedParticipants"`
}

//Drifted Whether anything differs.
func (d CommunityDrift) Drifted() bool {
	return d.StoredSteps != d.ComputedSteps || d.StoredParticipants != d.ComputedParticipants
}

//Report Result of a reconciliation run.
type Report struct {
	UsersScanned int            `json:"usersScanned"`
	TeamsScanned int            `json:"teamsScanned"`
	Teams        []TeamDrift    `json:"teams"`
	Community    CommunityDrift `json:"community"`
	Fixed        bool           `json:"fixed"`
}

type snapshot struct {
	users map[string]structs.UserProfile
	teams []structs.Team
	stats structs.CommunityStats
}

func scan(ctx context.Context, client store.Storer) (*snapshot, error) {
	var users []structs.UserProfile
	var allTeams []structs.Team
	var stats structs.CommunityStats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		snapshots, err := client.Query(gctx, store.Query{Collection: constants.CollectionUsers})
		if err != nil {
			return errors.Transient("Error while querying users", err)
		}
		for _, s := range snapshots {
			var p structs.UserProfile
			if err := s.DataTo(&p); err != nil {
				return errors.Transient("Error while reading user", err)
			}
			users = append(users, p)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		allTeams, err = teams.All(gctx, client)
		return err
	})

	g.Go(func() error {
		err := client.Get(gctx, constants.CollectionStats, constants.DocCommunityStats, &stats)
		if err != nil && !store.IsNotFound(err) {
			return errors.Transient("Error while querying Firestore", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	byUID := make(map[string]structs.UserProfile, len(users))
	for _, p := range users {
		byUID[p.UID] = p
	}
	return &snapshot{users: byUID, teams: allTeams, stats: stats}, nil
}

func compute(s *snapshot) *Report {
	report := &Report{
		UsersScanned: len(s.users),
		TeamsScanned: len(s.teams),
		Teams:        []TeamDrift{},
		Community: CommunityDrift{
			StoredSteps:        s.stats.TotalSteps,
			StoredParticipants: s.stats.TotalParticipants,
		},
	}

	for _, p := range s.users {
		report.Community.ComputedSteps += int64(p.CurrentSteps)
		if p.ProfileComplete {
			report.Community.ComputedParticipants++
		}
	}

	for _, team := range s.teams {
		drift := TeamDrift{TeamID: team.ID, Stored: team.TotalSteps}
		for _, uid := range team.MemberUIDs {
			p, ok := s.users[uid]
			if !ok || p.TeamID != team.ID {
				drift.StrayMembers = append(drift.StrayMembers, uid)
				continue
			}
			drift.Computed += p.CurrentSteps
		}
		if drift.Stored != drift.Computed || len(drift.StrayMembers) > 0 {
			report.Teams = append(report.Teams, drift)
		}
	}

	sort.Slice(report.Teams, func(i, j int) bool { return report.Teams[i].TeamID < report.Teams[j].TeamID })
	return report
}

// Corrections are applied as deltas on top of the values current at fix time.
func fix(ctx context.Context, client store.Storer, report *Report) error {
	logger := logging.FromContext(ctx).Named("reconcile.fix")

	for _, drift := range report.Teams {
		delta := drift.Computed - drift.Stored
		if delta == 0 && len(drift.StrayMembers) == 0 {
			continue
		}

		err := client.RunTransaction(ctx, func(ctx context.Context, tx store.Tx) error {
			team, err := teams.Load(tx, drift.TeamID)
			if err != nil {
				return err
			}
			team.MemberUIDs = slices.DeleteFunc(team.MemberUIDs, func(uid string) bool {
				return slices.Contains(drift.StrayMembers, uid)
			})
			team.TotalSteps = max(team.TotalSteps+delta, 0)
			return teams.Save(tx, team)
		})
		if err != nil {
			return fmt.Errorf("fixing team %v: %w", drift.TeamID, err)
		}

		logger.Infof("Team %v total moved by %v, removed members %v", drift.TeamID, delta, drift.StrayMembers)
	}

	if !report.Community.Drifted() {
		return nil
	}

	stepsDelta := report.Community.ComputedSteps - report.Community.StoredSteps
	participantsDelta := report.Community.ComputedParticipants - report.Community.StoredParticipants

	err := client.RunTransaction(ctx, func(ctx context.Context, tx store.Tx) error {
		stats, err := communitystats.Load(tx)
		if err != nil {
			return err
		}
		stats.TotalSteps = max(stats.TotalSteps+stepsDelta, 0)
		stats.TotalParticipants = max(stats.TotalParticipants+participantsDelta, 0)
		return communitystats.Save(tx, stats)
	})
	if err != nil {
		return fmt.Errorf("fixing community stats: %w", err)
	}

	logger.Infof("Community stats moved by %v steps, %v participants", stepsDelta, participantsDelta)
	return nil
}

//Run Compares denormalized totals with the profiles they are derived from and optionally
//corrects them. Only one run may be in progress.
func Run(ctx context.Context, client store.Storer, mutexes redismutex.MutexManager, apply bool) (*Report, error) {
	logger := logging.FromContext(ctx).Named("reconcile.Run")

	lock, err := mutexes.Lock(ctx, constants.LockReconcileAggregates, lockExpiry)
	if err != nil {
		return nil, &errors.ConflictError{Msg: fmt.Sprintf("Reconciliation is already running: %v", err)}
	}
	defer func() {
		if _, err := lock.UnlockContext(ctx); err != nil {
			logger.Warnf("Could not release reconciliation lock: %v", err)
		}
	}()

	s, err := scan(ctx, client)
	if err != nil {
		return nil, err
	}

	report := compute(s)

	logger.Infof("Scanned %v users and %v teams, %v teams drifted, community drifted: %v",
		report.UsersScanned, report.TeamsScanned, len(report.Teams), report.Community.Drifted())

	if apply && report.needsFix() {
		if err := fix(ctx, client, report); err != nil {
			return report, err
		}
		report.Fixed = true
	}

	return report, nil
}

func (r *Report) needsFix() bool {
	for _, d := range r.Teams {
		if d.Stored != d.Computed || len(d.StrayMembers) > 0 {
			return true
		}
	}
	return r.Community.Drifted()
}

//Stray Members of drifted teams whose profile does not point back to the team. A fix removes them.
func (r *Report) Stray() []string {
	var result []string
	for _, d := range r.Teams {
		result = append(result, d.StrayMembers...)
	}
	slices.Sort(result)
	return slices.Compact(result)
}

package teams

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/avast/retry-go"
	"github.com/butterflysteps/backend/internal/badges"
	"github.com/butterflysteps/backend/internal/calendar"
	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/functions/awardbadge"
	"github.com/butterflysteps/backend/internal/functions/profile"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils/errors"
	v1 "github.com/butterflysteps/backend/pkg/api/v1"
	"golang.org/x/sync/errgroup"
)

const needsRetry = "needs_retry"

//MaxNameLength Longest team name in characters.
const MaxNameLength = 50

const memberReadsLimit = 8

var teamCodeRegexp = regexp.MustCompile(`^T[A-Z0-9]{6}$`)

//Membership Team the user ended up in, with the team-player badge when it was awarded now.
type Membership struct {
	TeamID       string
	TeamName     string
	AwardedBadge *badges.Badge
}

//Load Reads team inside a transaction. Missing team is a NotFoundError.
func Load(tx store.Tx, teamID string) (*structs.Team, error) {
	var team structs.Team
	if err := tx.Get(constants.CollectionTeams, teamID, &team); err != nil {
		if store.IsNotFound(err) {
			return nil, &errors.NotFoundError{Msg: fmt.Sprintf("Team %v not found", teamID)}
		}
		return nil, errors.Transient("Error while querying Firestore", err)
	}
	return &team, nil
}

//Save Writes team inside a transaction.
func Save(tx store.Tx, team *structs.Team) error {
	return tx.Set(constants.CollectionTeams, team.ID, team)
}

//NormalizeTeamID Join codes are typed by people; surrounding space and case are ignored.
func NormalizeTeamID(teamID string) (string, error) {
	id := strings.ToUpper(strings.TrimSpace(teamID))
	if !teamCodeRegexp.MatchString(id) {
		return "", &errors.ValidationError{Msg: fmt.Sprintf("Malformed team id '%v'", teamID)}
	}
	return id, nil
}

func normalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if l := utf8.RuneCountInString(trimmed); l < 1 || l > MaxNameLength {
		return "", &errors.ValidationError{Msg: fmt.Sprintf("Team name must have 1 to %v characters", MaxNameLength)}
	}
	return trimmed, nil
}

func join(p *structs.UserProfile, team *structs.Team) (*badges.Badge, error) {
	p.TeamID = team.ID
	p.TeamName = team.Name
	return awardbadge.AwardTo(p, badges.TeamPlayerID)
}

// A user is on at most one team and must leave it before joining or creating another.
func requireNoOtherTeam(p *structs.UserProfile, teamID string) error {
	if p.TeamID == "" || p.TeamID == teamID {
		return nil
	}
	return &errors.ConflictError{
		Reason: errors.ReasonAlreadyOnTeam,
		Msg:    fmt.Sprintf("Already on team %v, leave it first", p.TeamID),
	}
}

//Create Creates a team with the user as its only member under a fresh join code.
func Create(ctx context.Context, client store.Storer, at calendar.Moment, generateCode func() string, uid string, name string) (*Membership, error) {
	logger := logging.FromContext(ctx).Named("teams.Create")

	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	var result Membership

	err = retry.Do(
		func() error {
			code := generateCode()

			logger.Debugf("Trying team code: %v", code)

			return client.RunTransaction(ctx, func(ctx context.Context, tx store.Tx) error {
				var existing structs.Team
				err := tx.Get(constants.CollectionTeams, code, &existing)

				if err == nil {
					// code taken, need retry
					return &errors.CustomError{Msg: needsRetry}
				}

				if !store.IsNotFound(err) {
					return errors.Transient("Error while querying Firestore", err)
				}

				p, err := profile.Load(tx, uid)
				if err != nil {
					return err
				}

				if err := requireNoOtherTeam(p, ""); err != nil {
					return err
				}

				team := &structs.Team{
					ID:         code,
					Name:       name,
					CreatorUID: uid,
					MemberUIDs: []string{uid},
					TotalSteps: p.CurrentSteps,
					CreatedAt:  at.Now.Unix(),
				}

				badge, err := join(p, team)
				if err != nil {
					return err
				}

				logger.Infof("Creating team %v '%v' of %v", code, name, uid)

				if err := Save(tx, team); err != nil {
					return err
				}

				result = Membership{TeamID: team.ID, TeamName: team.Name, AwardedBadge: badge}
				return profile.Save(tx, p, at)
			})
		},
		retry.RetryIf(func(err error) bool {
			return err.Error() == needsRetry
		}),
		retry.LastErrorOnly(true),
	)

	if err != nil {
		if err.Error() == needsRetry {
			return nil, &errors.UnknownError{Msg: "Could not generate unique team code"}
		}
		return nil, err
	}
	return &result, nil
}

//Join Adds the user to the team. Rejoining keeps the team total unchanged.
func Join(ctx context.Context, client store.Storer, at calendar.Moment, uid string, teamID string) (*Membership, error) {
	logger := logging.FromContext(ctx).Named("teams.Join")

	teamID, err := NormalizeTeamID(teamID)
	if err != nil {
		return nil, err
	}

	var result Membership

	err = client.RunTransaction(ctx, func(ctx context.Context, tx store.Tx) error {
		team, err := Load(tx, teamID)
		if err != nil {
			return err
		}

		p, err := profile.Load(tx, uid)
		if err != nil {
			return err
		}

		if err := requireNoOtherTeam(p, teamID); err != nil {
			return err
		}

		if !slices.Contains(team.MemberUIDs, uid) {
			team.MemberUIDs = append(team.MemberUIDs, uid)
			team.TotalSteps += p.CurrentSteps

			logger.Infof("Adding %v with %v steps to team %v", uid, p.CurrentSteps, teamID)

			if err := Save(tx, team); err != nil {
				return err
			}
		} else {
			logger.Debugf("%v is already member of team %v", uid, teamID)
		}

		badge, err := join(p, team)
		if err != nil {
			return err
		}

		result = Membership{TeamID: team.ID, TeamName: team.Name, AwardedBadge: badge}
		return profile.Save(tx, p, at)
	})

	if err != nil {
		return nil, err
	}
	return &result, nil
}

//Leave Removes the user from the team and their steps from its total.
func Leave(ctx context.Context, client store.Storer, at calendar.Moment, uid string, teamID string) error {
	logger := logging.FromContext(ctx).Named("teams.Leave")

	teamID, err := NormalizeTeamID(teamID)
	if err != nil {
		return err
	}

	return client.RunTransaction(ctx, func(ctx context.Context, tx store.Tx) error {
		team, err := Load(tx, teamID)
		if err != nil {
			return err
		}

		p, err := profile.Load(tx, uid)
		if err != nil {
			return err
		}

		if i := slices.Index(team.MemberUIDs, uid); i >= 0 {
			team.MemberUIDs = slices.Delete(team.MemberUIDs, i, i+1)
			team.TotalSteps = max(team.TotalSteps-p.CurrentSteps, 0)

			logger.Infof("Removing %v with %v steps from team %v", uid, p.CurrentSteps, teamID)

			if err := Save(tx, team); err != nil {
				return err
			}
		}

		if p.TeamID != teamID {
			logger.Debugf("%v is not on team %v, profile untouched", uid, teamID)
			return nil
		}

		p.TeamID = ""
		p.TeamName = ""
		return profile.Save(tx, p, at)
	})
}

//Get Reads one team.
func Get(ctx context.Context, client store.Storer, teamID string) (*structs.Team, error) {
	teamID, err := NormalizeTeamID(teamID)
	if err != nil {
		return nil, err
	}

	var team structs.Team
	if err := client.Get(ctx, constants.CollectionTeams, teamID, &team); err != nil {
		if store.IsNotFound(err) {
			return nil, &errors.NotFoundError{Msg: fmt.Sprintf("Team %v not found", teamID)}
		}
		return nil, errors.Transient("Error while querying Firestore", err)
	}
	return &team, nil
}

//All Every team, most steps first.
func All(ctx context.Context, client store.Storer) ([]structs.Team, error) {
	snapshots, err := client.Query(ctx, store.Query{
		Collection: constants.CollectionTeams,
		OrderBy:    "totalSteps",
		Descending: true,
	})
	if err != nil {
		return nil, errors.Transient("Error while querying Firestore", err)
	}

	result := make([]structs.Team, 0, len(snapshots))
	for _, s := range snapshots {
		var team structs.Team
		if err := s.DataTo(&team); err != nil {
			return nil, errors.Transient("Error while reading team", err)
		}
		result = append(result, team)
	}
	return result, nil
}

//Members Public profiles of the team members in membership order. Members without profile are skipped.
func Members(ctx context.Context, client store.Storer, teamID string) ([]v1.TeamMember, error) {
	logger := logging.FromContext(ctx).Named("teams.Members")

	team, err := Get(ctx, client, teamID)
	if err != nil {
		return nil, err
	}

	profiles := make([]*structs.UserProfile, len(team.MemberUIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(memberReadsLimit)

	for i, uid := range team.MemberUIDs {
		g.Go(func() error {
			p, err := profile.GetUserProfile(gctx, client, uid)
			if err != nil {
				return err
			}
			if p == nil {
				logger.Warnf("Member %v of team %v has no profile", uid, team.ID)
			}
			profiles[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]v1.TeamMember, 0, len(profiles))
	for _, p := range profiles {
		if p == nil {
			continue
		}
		result = append(result, v1.TeamMember{
			UID:           p.UID,
			DisplayName:   p.DisplayName,
			CurrentSteps:  p.CurrentSteps,
			CurrentStreak: p.CurrentStreak,
			Avatar:        p.Avatar,
		})
	}
	return result, nil
}

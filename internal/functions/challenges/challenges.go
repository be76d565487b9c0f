package challenges

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	fbmessaging "firebase.google.com/go/v4/messaging"
	"github.com/butterflysteps/backend/internal/calendar"
	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/functions/profile"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/messaging"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils/errors"
	"github.com/google/uuid"
)

const pushTTL = 72 * time.Hour

//Details What the creator proposes.
type Details struct {
	OpponentUID           string
	GoalValue             int
	StartDate             string
	Stakes                string
	StructuredDescription string
	CreatorMessage        string
}

func (d Details) validate(creatorUID string) error {
	if d.GoalValue <= 0 {
		return &errors.ValidationError{Msg: "Goal must be a positive number of steps"}
	}
	if d.OpponentUID == creatorUID {
		return &errors.ValidationError{Msg: "Cannot challenge yourself"}
	}
	if _, err := calendar.Parse(d.StartDate); err != nil {
		return &errors.ValidationError{Msg: fmt.Sprintf("Malformed start date '%v'", d.StartDate)}
	}
	return nil
}

func load(tx store.Tx, id string) (*structs.Challenge, error) {
	var c structs.Challenge
	if err := tx.Get(constants.CollectionChallenges, id, &c); err != nil {
		if store.IsNotFound(err) {
			return nil, &errors.NotFoundError{Msg: fmt.Sprintf("Challenge %v not found", id)}
		}
		return nil, errors.Transient("Error while querying Firestore", err)
	}
	return &c, nil
}

//Issue Stores a pending challenge and notifies the opponent. Failed notification does not fail the issue.
func Issue(ctx context.Context, client store.Storer, push messaging.PushSender, at calendar.Moment, creatorUID string, details Details) (*structs.Challenge, error) {
	logger := logging.FromContext(ctx).Named("challenges.Issue")

	if err := details.validate(creatorUID); err != nil {
		return nil, err
	}

	challenge := structs.Challenge{
		ID:                    uuid.New().String(),
		CreatorUID:            creatorUID,
		OpponentUID:           details.OpponentUID,
		GoalValue:             details.GoalValue,
		StartDate:             details.StartDate,
		Stakes:                details.Stakes,
		StructuredDescription: details.StructuredDescription,
		CreatorMessage:        details.CreatorMessage,
		Status:                structs.ChallengePending,
		CreatedAt:             at.Now.Unix(),
	}

	err := client.RunTransaction(ctx, func(ctx context.Context, tx store.Tx) error {
		creator, err := profile.Load(tx, creatorUID)
		if err != nil {
			return err
		}

		opponent, err := profile.Load(tx, details.OpponentUID)
		if err != nil {
			return err
		}

		challenge.CreatorName = creator.DisplayName
		challenge.OpponentName = opponent.DisplayName

		return tx.Set(constants.CollectionChallenges, challenge.ID, challenge)
	})

	if err != nil {
		return nil, err
	}

	logger.Infof("Challenge %v issued by %v to %v", challenge.ID, creatorUID, details.OpponentUID)

	if err := notify(ctx, push, challenge); err != nil {
		logger.Warnf("Could not notify %v about challenge %v: %v", challenge.OpponentUID, challenge.ID, err)
	}

	return &challenge, nil
}

func notify(ctx context.Context, push messaging.PushSender, challenge structs.Challenge) error {
	ttl := pushTTL

	message := fbmessaging.Message{
		Notification: &fbmessaging.Notification{
			Title: "New step challenge",
			Body:  fmt.Sprintf("%v challenges you to %v steps", challenge.CreatorName, challenge.GoalValue),
		},
		Data: map[string]string{
			"type":        "challenge_invitation",
			"challengeId": challenge.ID,
		},
		Topic: constants.UserTopic(challenge.OpponentUID),
		Android: &fbmessaging.AndroidConfig{
			Priority: "high",
			TTL:      &ttl,
		},
	}

	return push.Send(ctx, &message)
}

//Accept Opponent accepts a pending challenge.
func Accept(ctx context.Context, client store.Storer, at calendar.Moment, uid string, challengeID string) (*structs.Challenge, error) {
	return respond(ctx, client, at, uid, challengeID, structs.ChallengeAccepted)
}

//Decline Opponent declines a pending challenge.
func Decline(ctx context.Context, client store.Storer, at calendar.Moment, uid string, challengeID string) (*structs.Challenge, error) {
	return respond(ctx, client, at, uid, challengeID, structs.ChallengeDeclined)
}

func respond(ctx context.Context, client store.Storer, at calendar.Moment, uid string, challengeID string, status structs.ChallengeStatus) (*structs.Challenge, error) {
	logger := logging.FromContext(ctx).Named("challenges.respond")

	var result *structs.Challenge

	err := client.RunTransaction(ctx, func(ctx context.Context, tx store.Tx) error {
		c, err := load(tx, challengeID)
		if err != nil {
			return err
		}

		// only the opponent may see the invitation
		if c.OpponentUID != uid {
			return &errors.NotFoundError{Msg: fmt.Sprintf("Challenge %v not found", challengeID)}
		}

		if c.Status != structs.ChallengePending {
			return &errors.ConflictError{
				Reason: errors.ReasonNotPending,
				Msg:    fmt.Sprintf("Challenge %v is already %v", challengeID, c.Status),
			}
		}

		c.Status = status
		c.RespondedAt = at.Now.Unix()

		logger.Infof("Challenge %v %v by %v", challengeID, status, uid)

		result = c
		return tx.Set(constants.CollectionChallenges, c.ID, c)
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

//ListPending Pending invitations addressed to the user, newest first.
func ListPending(ctx context.Context, client store.Storer, uid string) ([]structs.Challenge, error) {
	snapshots, err := client.Query(ctx, store.Query{Collection: constants.CollectionChallenges}.
		Where("opponentUid", "==", uid).
		Where("status", "==", string(structs.ChallengePending)))
	if err != nil {
		return nil, errors.Transient("Error while querying Firestore", err)
	}

	result := make([]structs.Challenge, 0, len(snapshots))
	for _, s := range snapshots {
		var c structs.Challenge
		if err := s.DataTo(&c); err != nil {
			return nil, errors.Transient("Error while reading challenge", err)
		}
		result = append(result, c)
	}

	slices.SortStableFunc(result, func(a, b structs.Challenge) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})
	return result, nil
}

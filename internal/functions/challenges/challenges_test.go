package challenges

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/butterflysteps/backend/internal/calendar"
	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/messaging"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rpccode "google.golang.org/genproto/googleapis/rpc/code"
)

var at = calendar.At(time.Date(2025, 7, 2, 15, 0, 0, 0, time.UTC), time.UTC)

func seed(t *testing.T) store.Storer {
	ctx := context.Background()
	client := store.NewMemory()
	require.Nil(t, client.Set(ctx, constants.CollectionUsers, "ann", structs.UserProfile{UID: "ann", DisplayName: "Ann"}))
	require.Nil(t, client.Set(ctx, constants.CollectionUsers, "bob", structs.UserProfile{UID: "bob", DisplayName: "Bob"}))
	return client
}

var details = Details{
	OpponentUID:    "bob",
	GoalValue:      50000,
	StartDate:      "2025-07-07",
	Stakes:         "Loser buys coffee",
	CreatorMessage: "Let's go!",
}

func TestIssue(t *testing.T) {
	ctx := context.Background()
	client := seed(t)
	push := &messaging.MockClient{}

	challenge, err := Issue(ctx, client, push, at, "ann", details)
	require.Nil(t, err)

	assert.NotEmpty(t, challenge.ID)
	assert.Equal(t, "Ann", challenge.CreatorName)
	assert.Equal(t, "Bob", challenge.OpponentName)
	assert.Equal(t, structs.ChallengePending, challenge.Status)

	var stored structs.Challenge
	require.Nil(t, client.Get(ctx, constants.CollectionChallenges, challenge.ID, &stored))
	assert.Equal(t, *challenge, stored)

	sent := push.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "user-bob", sent[0].Topic)
	assert.Equal(t, challenge.ID, sent[0].Data["challengeId"])
}

func TestIssueSurvivesPushFailure(t *testing.T) {
	challenge, err := Issue(context.Background(), seed(t), &messaging.MockClient{Err: fmt.Errorf("fcm down")}, at, "ann", details)

	require.Nil(t, err)
	assert.Equal(t, structs.ChallengePending, challenge.Status)
}

func TestIssueRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(d *Details)
		code   rpccode.Code
	}{
		{name: "zero goal", mutate: func(d *Details) { d.GoalValue = 0 }, code: rpccode.Code_INVALID_ARGUMENT},
		{name: "self", mutate: func(d *Details) { d.OpponentUID = "ann" }, code: rpccode.Code_INVALID_ARGUMENT},
		{name: "bad date", mutate: func(d *Details) { d.StartDate = "07/07/2025" }, code: rpccode.Code_INVALID_ARGUMENT},
		{name: "unknown opponent", mutate: func(d *Details) { d.OpponentUID = "ghost" }, code: rpccode.Code_NOT_FOUND},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			client := seed(t)
			push := &messaging.MockClient{}

			d := details
			c.mutate(&d)

			_, err := Issue(context.Background(), client, push, at, "ann", d)
			assert.Equal(t, c.code, errors.CodeOf(err))
			assert.Empty(t, push.Sent())

			snapshots, err := client.Query(context.Background(), store.Query{Collection: constants.CollectionChallenges})
			require.Nil(t, err)
			assert.Empty(t, snapshots)
		})
	}
}

func TestRespondOnlyFromPending(t *testing.T) {
	ctx := context.Background()
	client := seed(t)

	challenge, err := Issue(ctx, client, &messaging.MockClient{}, at, "ann", details)
	require.Nil(t, err)

	later := calendar.At(at.Now.Add(time.Hour), time.UTC)

	accepted, err := Accept(ctx, client, later, "bob", challenge.ID)
	require.Nil(t, err)
	assert.Equal(t, structs.ChallengeAccepted, accepted.Status)
	assert.Equal(t, later.Now.Unix(), accepted.RespondedAt)

	_, err = Accept(ctx, client, later, "bob", challenge.ID)
	assert.Equal(t, rpccode.Code_ALREADY_EXISTS, errors.CodeOf(err))

	_, err = Decline(ctx, client, later, "bob", challenge.ID)
	require.Equal(t, rpccode.Code_ALREADY_EXISTS, errors.CodeOf(err))
	assert.Equal(t, errors.ReasonNotPending, err.(*errors.ConflictError).Reason)

	var stored structs.Challenge
	require.Nil(t, client.Get(ctx, constants.CollectionChallenges, challenge.ID, &stored))
	assert.Equal(t, structs.ChallengeAccepted, stored.Status)
}

func TestRespondMissingOrForeign(t *testing.T) {
	ctx := context.Background()
	client := seed(t)

	challenge, err := Issue(ctx, client, &messaging.MockClient{}, at, "ann", details)
	require.Nil(t, err)

	_, err = Decline(ctx, client, at, "bob", "no-such-challenge")
	assert.Equal(t, rpccode.Code_NOT_FOUND, errors.CodeOf(err))

	_, err = Accept(ctx, client, at, "ann", challenge.ID)
	assert.Equal(t, rpccode.Code_NOT_FOUND, errors.CodeOf(err))

	declined, err := Decline(ctx, client, at, "bob", challenge.ID)
	require.Nil(t, err)
	assert.Equal(t, structs.ChallengeDeclined, declined.Status)
}

func TestListPending(t *testing.T) {
	ctx := context.Background()
	client := seed(t)
	push := &messaging.MockClient{}

	var ids []string
	for i := 0; i < 3; i++ {
		c, err := Issue(ctx, client, push, calendar.At(at.Now.Add(time.Duration(i)*time.Minute), time.UTC), "ann", details)
		require.Nil(t, err)
		ids = append(ids, c.ID)
	}

	_, err := Decline(ctx, client, at, "bob", ids[1])
	require.Nil(t, err)

	pending, err := ListPending(ctx, client, "bob")
	require.Nil(t, err)

	require.Len(t, pending, 2)
	assert.Equal(t, ids[2], pending[0].ID)
	assert.Equal(t, ids[0], pending[1].ID)

	mine, err := ListPending(ctx, client, "ann")
	require.Nil(t, err)
	assert.Empty(t, mine)
}

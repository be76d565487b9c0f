package chrysaliscoin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/butterflysteps/backend/internal/calendar"
	"github.com/butterflysteps/backend/internal/chrysalis"
	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/functions/profile"
	"github.com/butterflysteps/backend/internal/pubsub"
	"github.com/butterflysteps/backend/internal/realtimedb"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rpccode "google.golang.org/genproto/googleapis/rpc/code"
)

// 2025-07-05 is day 15 of the challenge
var at = calendar.At(time.Date(2025, 7, 5, 20, 0, 0, 0, time.UTC), time.UTC)

func seed(t *testing.T, client store.Storer, p structs.UserProfile, stepsToday int) {
	ctx := context.Background()
	require.Nil(t, client.Set(ctx, constants.CollectionUsers, p.UID, p))
	if stepsToday > 0 {
		require.Nil(t, client.Set(ctx, constants.DailyStepsCollection(p.UID), at.Today, structs.DailyStep{Date: at.Today, Steps: stepsToday}))
	}
}

func coinDates(t *testing.T, client store.Storer, uid string) []string {
	p, err := profile.GetUserProfile(context.Background(), client, uid)
	require.Nil(t, err)
	return p.ChrysalisCoinDates
}

func TestEligibility(t *testing.T) {
	before := calendar.At(time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC), time.UTC)
	after := calendar.At(time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC), time.UTC)

	cases := []struct {
		name    string
		profile structs.UserProfile
		steps   int
		at      calendar.Moment
		code    rpccode.Code
		reason  string
	}{
		{name: "eligible", profile: structs.UserProfile{StepGoal: 100000}, steps: 752, at: at, code: rpccode.Code_OK},
		{name: "before challenge", profile: structs.UserProfile{StepGoal: 100000}, steps: 5000, at: before, code: rpccode.Code_FAILED_PRECONDITION, reason: errors.ReasonOutsideChallengeDates},
		{name: "after challenge", profile: structs.UserProfile{StepGoal: 100000}, steps: 5000, at: after, code: rpccode.Code_FAILED_PRECONDITION, reason: errors.ReasonOutsideChallengeDates},
		{name: "already collected", profile: structs.UserProfile{StepGoal: 100000, ChrysalisCoinDates: []string{at.Today}}, steps: 5000, at: at, code: rpccode.Code_ALREADY_EXISTS, reason: errors.ReasonAlreadyCollected},
		{name: "no goal", profile: structs.UserProfile{}, steps: 5000, at: at, code: rpccode.Code_FAILED_PRECONDITION, reason: errors.ReasonNoStepGoal},
		{name: "one step short", profile: structs.UserProfile{StepGoal: 100000}, steps: 751, at: at, code: rpccode.Code_FAILED_PRECONDITION, reason: errors.ReasonGoalNotMet},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := c.profile
			err := Eligibility(&p, c.steps, c.at)

			assert.Equal(t, c.code, errors.CodeOf(err))

			switch e := err.(type) {
			case *errors.FailedPreconditionError:
				assert.Equal(t, c.reason, e.Reason)
			case *errors.ConflictError:
				assert.Equal(t, c.reason, e.Reason)
			}
		})
	}
}

func TestCollectTwiceSameDay(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemory()
	seed(t, client, structs.UserProfile{UID: "u1", StepGoal: 100000}, 800)

	coin, err := Collect(ctx, client, at, "u1")
	require.Nil(t, err)
	assert.Equal(t, 15, coin.DayNumber)
	assert.Equal(t, chrysalis.ByDay(ctx, 15), *coin)

	_, err = Collect(ctx, client, at, "u1")
	assert.Equal(t, rpccode.Code_ALREADY_EXISTS, errors.CodeOf(err))

	assert.Equal(t, []string{at.Today}, coinDates(t, client, "u1"))
}

func TestCollectConcurrently(t *testing.T) {
	client := store.NewMemory()
	seed(t, client, structs.UserProfile{UID: "u1", StepGoal: 100000}, 800)

	var wg sync.WaitGroup
	errs := make([]error, 6)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = Collect(context.Background(), client, at, "u1")
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.Equal(t, rpccode.Code_ALREADY_EXISTS, errors.CodeOf(err))
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, []string{at.Today}, coinDates(t, client, "u1"))
}

func TestCollectFailuresDoNotMutate(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemory()
	seed(t, client, structs.UserProfile{UID: "u1", StepGoal: 100000, ChrysalisCoinDates: []string{"2025-07-04"}}, 100)

	_, err := Collect(ctx, client, at, "u1")
	assert.Equal(t, rpccode.Code_FAILED_PRECONDITION, errors.CodeOf(err))

	_, err = Collect(ctx, client, at, "ghost")
	assert.Equal(t, rpccode.Code_NOT_FOUND, errors.CodeOf(err))

	assert.Equal(t, []string{"2025-07-04"}, coinDates(t, client, "u1"))
}

func TestSetActiveTheme(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemory()
	seed(t, client, structs.UserProfile{UID: "u1", ChrysalisCoinDates: []string{"2025-06-21"}}, 0)

	first := chrysalis.ByDay(ctx, 1)

	p, err := SetActiveTheme(ctx, client, at, "u1", first.ID)
	require.Nil(t, err)
	assert.Equal(t, first.ID, p.ActiveChrysalisThemeID)
	assert.Equal(t, structs.AvatarChrysalis, p.Avatar.Kind)

	_, err = SetActiveTheme(ctx, client, at, "u1", chrysalis.ByDay(ctx, 2).ID)
	assert.Equal(t, rpccode.Code_FAILED_PRECONDITION, errors.CodeOf(err))

	_, err = SetActiveTheme(ctx, client, at, "u1", "chrysalis-999")
	assert.Equal(t, rpccode.Code_NOT_FOUND, errors.CodeOf(err))

	p, err = SetActiveTheme(ctx, client, at, "u1", "")
	require.Nil(t, err)
	assert.Equal(t, "", p.ActiveChrysalisThemeID)
	assert.Equal(t, structs.Avatar{Kind: structs.AvatarDefault}, p.Avatar)
}

func TestHandlerEndToEnd(t *testing.T) {
	env := environment.NewMock(at.Now)
	seed(t, env.Store, structs.UserProfile{UID: "u1", StepGoal: 100000}, 800)

	collect := func() map[string]json.RawMessage {
		r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"data":{"idToken":"uid:u1"}}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		Handler(env)(w, r)

		var envelope map[string]json.RawMessage
		require.Nil(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		return envelope
	}

	envelope := collect()
	var response struct {
		Coin chrysalis.Variant `json:"coin"`
	}
	require.Nil(t, json.Unmarshal(envelope["data"], &response))
	assert.Equal(t, 15, response.Coin.DayNumber)

	envelope = collect()
	assert.Contains(t, string(envelope["error"]), errors.ReasonAlreadyCollected)

	messages := env.Publisher.(*pubsub.MockClient).Messages(constants.TopicCoinCollected)
	require.Len(t, messages, 1)

	var event CollectedEvent
	require.Nil(t, json.Unmarshal(messages[0].Payload, &event))
	assert.Equal(t, CollectedEvent{UID: "u1", Date: "2025-07-05", DayNumber: 15, VariantID: response.Coin.ID}, event)

	rtdb := env.RealtimeDB.(*realtimedb.MockClient)
	require.Nil(t, HandleAftermath(context.Background(), rtdb, pubsub.Message{Data: messages[0].Payload}))

	var counter structs.CoinCounter
	require.Nil(t, rtdb.Value(constants.DbCoinCountersPrefix+"2025-07-05", &counter))
	assert.Equal(t, 1, counter.CoinsCount)
	require.Nil(t, rtdb.Value(constants.DbCoinCountersPrefix+"total", &counter))
	assert.Equal(t, 1, counter.CoinsCount)
}

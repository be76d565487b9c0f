package submitsteps

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
	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/functions/profile"
	"github.com/butterflysteps/backend/internal/pubsub"
	"github.com/butterflysteps/backend/internal/realtimedb"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rpccode "google.golang.org/genproto/googleapis/rpc/code"
)

var at = calendar.At(time.Date(2025, 7, 5, 18, 0, 0, 0, time.UTC), time.UTC)

type totals struct {
	User      int
	Today     int
	Community int64
	Team      int
}

func seed(t *testing.T, client store.Storer) {
	ctx := context.Background()
	require.Nil(t, client.Set(ctx, constants.CollectionUsers, "u1", structs.UserProfile{UID: "u1", CurrentSteps: 500, TeamID: "TABC123", TeamName: "Monarchs"}))
	require.Nil(t, client.Set(ctx, constants.CollectionTeams, "TABC123", structs.Team{ID: "TABC123", Name: "Monarchs", MemberUIDs: []string{"u1", "u2"}, TotalSteps: 800}))
	require.Nil(t, client.Set(ctx, constants.CollectionStats, constants.DocCommunityStats, structs.CommunityStats{TotalSteps: 10000, TotalParticipants: 2}))
}

func read(t *testing.T, client store.Storer) totals {
	ctx := context.Background()

	p, err := profile.GetUserProfile(ctx, client, "u1")
	require.Nil(t, err)

	var day structs.DailyStep
	if err := client.Get(ctx, constants.DailyStepsCollection("u1"), at.Today, &day); err != nil {
		require.True(t, store.IsNotFound(err))
	}

	var stats structs.CommunityStats
	require.Nil(t, client.Get(ctx, constants.CollectionStats, constants.DocCommunityStats, &stats))

	var team structs.Team
	require.Nil(t, client.Get(ctx, constants.CollectionTeams, "TABC123", &team))

	return totals{User: p.CurrentSteps, Today: day.Steps, Community: stats.TotalSteps, Team: team.TotalSteps}
}

func TestApplyUpdatesAllTotals(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemory()
	seed(t, client)

	result, err := Apply(ctx, client, at, "u1", 700)
	require.Nil(t, err)
	assert.Equal(t, 1200, result.CurrentSteps)
	assert.Equal(t, 700, result.StepsToday)
	require.Len(t, result.NewBadges, 1)
	assert.Equal(t, "first-flutter", result.NewBadges[0].ID)

	result, err = Apply(ctx, client, at, "u1", 300)
	require.Nil(t, err)
	assert.Equal(t, 1000, result.StepsToday)
	assert.Empty(t, result.NewBadges)

	if diff := cmp.Diff(totals{User: 1500, Today: 1000, Community: 11000, Team: 1800}, read(t, client)); diff != "" {
		t.Errorf("totals mismatch (-want +got):\n%s", diff)
	}

	p, err := profile.GetUserProfile(ctx, client, "u1")
	require.Nil(t, err)
	assert.Equal(t, []string{"first-flutter"}, p.BadgesEarned)
}

func TestApplyRejectsNonPositiveSteps(t *testing.T) {
	for _, steps := range []int{0, -1, -5000} {
		client := store.NewMemory()
		seed(t, client)
		before := read(t, client)

		_, err := Apply(context.Background(), client, at, "u1", steps)
		assert.Equal(t, rpccode.Code_INVALID_ARGUMENT, errors.CodeOf(err))

		assert.Equal(t, before, read(t, client))
	}
}

func TestApplyMissingUser(t *testing.T) {
	client := store.NewMemory()
	seed(t, client)

	_, err := Apply(context.Background(), client, at, "ghost", 10)
	assert.Equal(t, rpccode.Code_NOT_FOUND, errors.CodeOf(err))
	assert.Equal(t, int64(10000), read(t, client).Community)
}

func TestApplyWithoutTeamOrStats(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemory()
	require.Nil(t, client.Set(ctx, constants.CollectionUsers, "solo", structs.UserProfile{UID: "solo", TeamID: "TGONE11"}))

	_, err := Apply(ctx, client, at, "solo", 42)
	require.Nil(t, err)

	var stats structs.CommunityStats
	require.Nil(t, client.Get(ctx, constants.CollectionStats, constants.DocCommunityStats, &stats))
	assert.Equal(t, int64(42), stats.TotalSteps)
}

func TestConcurrentSubmissionsLoseNothing(t *testing.T) {
	client := store.NewMemory()
	seed(t, client)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = Apply(context.Background(), client, at, "u1", 5000)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.Nil(t, err)
	}

	if diff := cmp.Diff(totals{User: 10500, Today: 10000, Community: 20000, Team: 10800}, read(t, client)); diff != "" {
		t.Errorf("totals mismatch (-want +got):\n%s", diff)
	}
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemory()

	for date, steps := range map[string]int{"2025-07-01": 100, "2025-07-03": 300, "2025-07-05": 500, "2025-06-25": 999} {
		require.Nil(t, client.Set(ctx, constants.DailyStepsCollection("u1"), date, structs.DailyStep{Date: date, Steps: steps}))
	}

	days, err := History(ctx, client, at, "u1", 5)
	require.Nil(t, err)

	expected := []structs.DailyStep{
		{Date: "2025-07-01", Steps: 100},
		{Date: "2025-07-02"},
		{Date: "2025-07-03", Steps: 300},
		{Date: "2025-07-04"},
		{Date: "2025-07-05", Steps: 500},
	}
	if diff := cmp.Diff(expected, days); diff != "" {
		t.Errorf("History() mismatch (-want +got):\n%s", diff)
	}

	for _, invalid := range []int{0, -1, calendar.TotalDays + 1} {
		_, err := History(ctx, client, at, "u1", invalid)
		assert.Equal(t, rpccode.Code_INVALID_ARGUMENT, errors.CodeOf(err))
	}
}

func TestHandlerPublishesSubmission(t *testing.T) {
	env := environment.NewMock(at.Now)
	seed(t, env.Store)

	r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"data":{"idToken":"uid:u1","steps":600}}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	Handler(env)(w, r)

	var response struct {
		Data struct {
			CurrentSteps int `json:"currentSteps"`
			StepsToday   int `json:"stepsToday"`
		} `json:"data"`
	}
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1100, response.Data.CurrentSteps)
	assert.Equal(t, 600, response.Data.StepsToday)

	publisher := env.Publisher.(*pubsub.MockClient)

	submitted := publisher.Messages(constants.TopicStepsSubmitted)
	require.Len(t, submitted, 1)
	assert.JSONEq(t, `{"uid":"u1","date":"2025-07-05","steps":600,"teamId":"TABC123"}`, string(submitted[0].Payload))

	awarded := publisher.Messages(constants.TopicBadgeAwarded)
	require.Len(t, awarded, 1)
	assert.JSONEq(t, `{"uid":"u1","badgeId":"first-flutter"}`, string(awarded[0].Payload))
}

func TestAftermathAccumulatesCounters(t *testing.T) {
	ctx := context.Background()
	client := &realtimedb.MockClient{}

	for _, steps := range []int{100, 250} {
		data, err := json.Marshal(SubmittedEvent{UID: "u1", Date: "2025-07-05", Steps: steps})
		require.Nil(t, err)
		require.Nil(t, HandleAftermath(ctx, client, pubsub.Message{Data: data}))
	}

	var day structs.StepCounter
	require.Nil(t, client.Value(constants.DbStepCountersPrefix+"2025-07-05", &day))
	assert.Equal(t, structs.StepCounter{Steps: 350, Submissions: 2}, day)

	var total structs.StepCounter
	require.Nil(t, client.Value(constants.DbStepCountersPrefix+"total", &total))
	assert.Equal(t, int64(350), total.Steps)

	assert.NotNil(t, HandleAftermath(ctx, client, pubsub.Message{Data: []byte("{")}))
}

package reconcile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/redismutex"
	"github.com/butterflysteps/backend/internal/secrets"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rpccode "google.golang.org/genproto/googleapis/rpc/code"
)

func seed(t *testing.T, client store.Storer) {
	ctx := context.Background()

	users := []structs.UserProfile{
		{UID: "a", CurrentSteps: 100, TeamID: "TAAAAAA", ProfileComplete: true},
		{UID: "b", CurrentSteps: 200, TeamID: "TAAAAAA", ProfileComplete: true},
		{UID: "c", CurrentSteps: 300, TeamID: "TBBBBBB"},
		{UID: "d", CurrentSteps: 50},
	}
	for _, p := range users {
		require.Nil(t, client.Set(ctx, constants.CollectionUsers, p.UID, p))
	}

	require.Nil(t, client.Set(ctx, constants.CollectionTeams, "TAAAAAA", structs.Team{ID: "TAAAAAA", MemberUIDs: []string{"a", "b"}, TotalSteps: 300}))
	require.Nil(t, client.Set(ctx, constants.CollectionTeams, "TBBBBBB", structs.Team{ID: "TBBBBBB", MemberUIDs: []string{"c", "gone"}, TotalSteps: 999}))
	require.Nil(t, client.Set(ctx, constants.CollectionStats, constants.DocCommunityStats, structs.CommunityStats{TotalSteps: 600, TotalParticipants: 3}))
}

func TestRunReportsDrift(t *testing.T) {
	client := store.NewMemory()
	seed(t, client)

	report, err := Run(context.Background(), client, &redismutex.MockClient{}, false)
	require.Nil(t, err)

	expected := &Report{
		UsersScanned: 4,
		TeamsScanned: 2,
		Teams:        []TeamDrift{{TeamID: "TBBBBBB", Stored: 999, Computed: 300, StrayMembers: []string{"gone"}}},
		Community:    CommunityDrift{StoredSteps: 600, ComputedSteps: 650, StoredParticipants: 3, ComputedParticipants: 2},
	}
	if diff := cmp.Diff(expected, report); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}

	var team structs.Team
	require.Nil(t, client.Get(context.Background(), constants.CollectionTeams, "TBBBBBB", &team))
	assert.Equal(t, 999, team.TotalSteps)
}

func TestRunFixesDrift(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemory()
	seed(t, client)

	report, err := Run(ctx, client, &redismutex.MockClient{}, true)
	require.Nil(t, err)
	assert.True(t, report.Fixed)

	var team structs.Team
	require.Nil(t, client.Get(ctx, constants.CollectionTeams, "TBBBBBB", &team))
	assert.Equal(t, 300, team.TotalSteps)
	assert.Equal(t, []string{"c"}, team.MemberUIDs)

	var stats structs.CommunityStats
	require.Nil(t, client.Get(ctx, constants.CollectionStats, constants.DocCommunityStats, &stats))
	assert.Equal(t, structs.CommunityStats{TotalSteps: 650, TotalParticipants: 2}, stats)

	again, err := Run(ctx, client, &redismutex.MockClient{}, true)
	require.Nil(t, err)
	assert.False(t, again.Community.Drifted())
	assert.False(t, again.Fixed)
	assert.Empty(t, again.Teams)
	assert.Empty(t, again.Stray())
}

func TestRunRemovesMemberOfAnotherTeam(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemory()

	require.Nil(t, client.Set(ctx, constants.CollectionUsers, "u1", structs.UserProfile{UID: "u1", CurrentSteps: 1000, TeamID: "TBBBBBB"}))
	require.Nil(t, client.Set(ctx, constants.CollectionUsers, "u2", structs.UserProfile{UID: "u2", CurrentSteps: 7, TeamID: "TBBBBBB"}))
	require.Nil(t, client.Set(ctx, constants.CollectionTeams, "TAAAAAA", structs.Team{ID: "TAAAAAA", MemberUIDs: []string{"u1"}, TotalSteps: 1000}))
	require.Nil(t, client.Set(ctx, constants.CollectionTeams, "TBBBBBB", structs.Team{ID: "TBBBBBB", MemberUIDs: []string{"u2", "u1"}, TotalSteps: 1007}))

	report, err := Run(ctx, client, &redismutex.MockClient{}, false)
	require.Nil(t, err)
	expected := []TeamDrift{{TeamID: "TAAAAAA", Stored: 1000, Computed: 0, StrayMembers: []string{"u1"}}}
	if diff := cmp.Diff(expected, report.Teams); diff != "" {
		t.Errorf("Teams mismatch (-want +got):\n%s", diff)
	}

	report, err = Run(ctx, client, &redismutex.MockClient{}, true)
	require.Nil(t, err)
	assert.True(t, report.Fixed)

	var ghost structs.Team
	require.Nil(t, client.Get(ctx, constants.CollectionTeams, "TAAAAAA", &ghost))
	assert.Empty(t, ghost.MemberUIDs)
	assert.Equal(t, 0, ghost.TotalSteps)

	var kept structs.Team
	require.Nil(t, client.Get(ctx, constants.CollectionTeams, "TBBBBBB", &kept))
	assert.Equal(t, []string{"u2", "u1"}, kept.MemberUIDs)
	assert.Equal(t, 1007, kept.TotalSteps)
}

func TestRunRemovesStrayWithoutTotalDrift(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemory()

	require.Nil(t, client.Set(ctx, constants.CollectionUsers, "a", structs.UserProfile{UID: "a", CurrentSteps: 40, TeamID: "TAAAAAA"}))
	require.Nil(t, client.Set(ctx, constants.CollectionTeams, "TAAAAAA", structs.Team{ID: "TAAAAAA", MemberUIDs: []string{"a", "gone"}, TotalSteps: 40}))

	report, err := Run(ctx, client, &redismutex.MockClient{}, true)
	require.Nil(t, err)
	assert.True(t, report.Fixed)
	assert.Equal(t, []string{"gone"}, report.Stray())

	var team structs.Team
	require.Nil(t, client.Get(ctx, constants.CollectionTeams, "TAAAAAA", &team))
	assert.Equal(t, []string{"a"}, team.MemberUIDs)
	assert.Equal(t, 40, team.TotalSteps)
}

func TestRunHoldsLock(t *testing.T) {
	ctx := context.Background()
	mutexes := &redismutex.MockClient{}

	held, err := mutexes.Lock(ctx, constants.LockReconcileAggregates, time.Minute)
	require.Nil(t, err)

	_, err = Run(ctx, store.NewMemory(), mutexes, false)
	assert.Equal(t, rpccode.Code_ALREADY_EXISTS, errors.CodeOf(err))

	_, err = held.UnlockContext(ctx)
	require.Nil(t, err)

	_, err = Run(ctx, store.NewMemory(), mutexes, false)
	require.Nil(t, err)
	assert.False(t, mutexes.Held(constants.LockReconcileAggregates))
}

func TestHandler(t *testing.T) {
	env := environment.NewMock(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))
	env.Secrets = secrets.MockClient{Values: map[string]string{constants.SecretAdminAPIKey: "s3cret"}}
	seed(t, env.Store)

	w := httptest.NewRecorder()
	Handler(env)(w, httptest.NewRequest(http.MethodGet, "/?apikey=wrong", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	Handler(env)(w, httptest.NewRequest(http.MethodGet, "/?apikey=s3cret&fix=true", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var report Report
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.True(t, report.Fixed)
	assert.Equal(t, int64(650), report.Community.ComputedSteps)
}

package awardbadge

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/butterflysteps/backend/internal/badges"
	"github.com/butterflysteps/backend/internal/calendar"
	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/functions/profile"
	"github.com/butterflysteps/backend/internal/pubsub"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rpccode "google.golang.org/genproto/googleapis/rpc/code"
)

var at = calendar.At(time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC), time.UTC)

func seed(t *testing.T, client store.Storer, p structs.UserProfile) {
	require.Nil(t, client.Set(context.Background(), constants.CollectionUsers, p.UID, p))
}

func TestAwardTwiceAwardsOnce(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemory()
	seed(t, client, structs.UserProfile{UID: "u1", BadgesEarned: []string{}})

	first, err := Award(ctx, client, at, "u1", badges.TeamPlayerID)
	require.Nil(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "Team Player", first.Name)

	second, err := Award(ctx, client, at, "u1", badges.TeamPlayerID)
	require.Nil(t, err)
	assert.Nil(t, second)

	p, err := profile.GetUserProfile(ctx, client, "u1")
	require.Nil(t, err)
	assert.Equal(t, []string{badges.TeamPlayerID}, p.BadgesEarned)
}

func TestAwardRejections(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemory()
	seed(t, client, structs.UserProfile{UID: "u1"})

	_, err := Award(ctx, client, at, "u1", "golden-wings")
	assert.Equal(t, rpccode.Code_INVALID_ARGUMENT, errors.CodeOf(err))

	_, err = Award(ctx, client, at, "ghost", badges.TeamPlayerID)
	assert.Equal(t, rpccode.Code_NOT_FOUND, errors.CodeOf(err))
}

func TestAwardMilestonesTo(t *testing.T) {
	cases := []struct {
		name     string
		profile  structs.UserProfile
		awarded  []string
		expected []string
	}{
		{
			name:     "nothing crossed",
			profile:  structs.UserProfile{CurrentSteps: 999},
			expected: nil,
		},
		{
			name:     "first two",
			profile:  structs.UserProfile{CurrentSteps: 12000},
			awarded:  []string{"first-flutter", "caterpillar-crawl"},
			expected: []string{"first-flutter", "caterpillar-crawl"},
		},
		{
			name:     "keeps held and event badges",
			profile:  structs.UserProfile{CurrentSteps: 50000, BadgesEarned: []string{badges.TeamPlayerID, "first-flutter"}},
			awarded:  []string{"caterpillar-crawl", "chrysalis-keeper"},
			expected: []string{badges.TeamPlayerID, "first-flutter", "caterpillar-crawl", "chrysalis-keeper"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := c.profile

			var ids []string
			for _, b := range AwardMilestonesTo(&p) {
				ids = append(ids, b.ID)
			}

			if diff := cmp.Diff(c.awarded, ids); diff != "" {
				t.Errorf("awarded mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(c.expected, p.BadgesEarned); diff != "" {
				t.Errorf("badgesEarned mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAwardMilestonesIsIdempotent(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemory()
	seed(t, client, structs.UserProfile{UID: "u1", CurrentSteps: 120000})

	awarded, err := AwardMilestones(ctx, client, at, "u1")
	require.Nil(t, err)
	assert.Len(t, awarded, 4)

	awarded, err = AwardMilestones(ctx, client, at, "u1")
	require.Nil(t, err)
	assert.Empty(t, awarded)

	p, err := profile.GetUserProfile(ctx, client, "u1")
	require.Nil(t, err)
	assert.Equal(t, []string{"first-flutter", "caterpillar-crawl", "chrysalis-keeper", "monarch-rising"}, p.BadgesEarned)
}

func TestHandlerPublishesOnlyNewBadges(t *testing.T) {
	env := environment.NewMock(at.Now)
	seed(t, env.Store, structs.UserProfile{UID: "u1"})

	for i := 0; i < 2; i++ {
		r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"data":{"idToken":"uid:u1","badgeId":"team-player"}}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		Handler(env)(w, r)
		require.Equal(t, http.StatusOK, w.Code)

		if i == 1 {
			assert.JSONEq(t, `{"data":{"badge":null}}`, w.Body.String())
		}
	}

	messages := env.Publisher.(*pubsub.MockClient).Messages(constants.TopicBadgeAwarded)
	require.Len(t, messages, 1)
	assert.JSONEq(t, `{"uid":"u1","badgeId":"team-player"}`, string(messages[0].Payload))
}

package invite

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/secrets"
	"github.com/butterflysteps/backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text string
	err  error
	seen *Input
}

func (g *fakeGenerator) Generate(_ context.Context, in Input) (string, error) {
	g.seen = &in
	return g.text, g.err
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(Input{
		DisplayName:    "Ann",
		StepGoal:       100000,
		ActivityStatus: "Very Active",
		CampaignName:   "Butterfly Steps",
		NonprofitName:  "Monarch Conservation Fund",
		DonationLink:   "https://donate.example.org/ann",
	})

	for _, expected := range []string{
		"Participant name: Ann",
		"Personal step goal: 100000 steps",
		"Activity level: Very Active",
		"Campaign: Butterfly Steps",
		"Nonprofit: Monarch Conservation Fund",
		"Donation link: https://donate.example.org/ann",
	} {
		assert.Contains(t, prompt, expected)
	}

	anonymous := BuildPrompt(Input{CampaignName: "C", NonprofitName: "N", DonationLink: "L"})
	assert.Contains(t, anonymous, "Participant name: A participant")
	assert.NotContains(t, anonymous, "step goal")
	assert.NotContains(t, anonymous, "Activity level")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("  short \n", 100))
	assert.Equal(t, "Walk with me", Truncate("Walk with me for the monarchs", 15))
	assert.Equal(t, "abcdefghij", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "motýlí", Truncate("motýlí kroky", 8))
	assert.Equal(t, "anything", Truncate("anything", 0))
}

func TestTruncateCountsRunesForWordBoundary(t *testing.T) {
	// the only space sits at rune 3 but byte 6, below the half-way cut-off
	assert.Equal(t, "ůůů ůůůůůů", Truncate("ůůů ůůůůůůůůů", 10))
	assert.Equal(t, "🦋🦋🦋🦋🦋🦋", Truncate("🦋🦋🦋🦋🦋🦋 🦋🦋🦋🦋", 9))
	assert.Equal(t, "křídla motýla", Truncate("křídla motýla letí", 16))
}

func call(env *environment.Environment, factory GeneratorFactory, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	Handler(env, factory)(w, r)
	return w
}

func TestHandler(t *testing.T) {
	t.Setenv("DONATION_LINK", "https://donate.example.org")
	t.Setenv("INVITE_MAX_CHARS", "40")

	env := environment.NewMock(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	env.Secrets = secrets.MockClient{Values: map[string]string{constants.SecretGenAIKey: " key-123\n"}}
	require.Nil(t, env.Store.Set(context.Background(), constants.CollectionUsers, "u1", structs.UserProfile{
		UID: "u1", DisplayName: "Ann", StepGoal: 80000, ActivityStatus: structs.Sedentary,
	}))

	generator := &fakeGenerator{text: "Join me walking for the monarchs! Every step counts, donate here."}
	var config *utils.GenAIConfig

	w := call(env, func(_ context.Context, c *utils.GenAIConfig) (Generator, error) {
		config = c
		return generator, nil
	}, `{"data":{"idToken":"uid:u1"}}`)

	assert.JSONEq(t, `{"data":{"message":"Join me walking for the monarchs! Every"}}`, w.Body.String())
	require.NotNil(t, config)
	assert.Equal(t, "key-123", config.APIKey)
	require.NotNil(t, generator.seen)
	assert.Equal(t, Input{
		DisplayName:    "Ann",
		StepGoal:       80000,
		ActivityStatus: "Sedentary",
		CampaignName:   "Butterfly Steps",
		NonprofitName:  "Monarch Conservation Fund",
		DonationLink:   "https://donate.example.org",
	}, *generator.seen)
}

func TestHandlerSurfacesFailures(t *testing.T) {
	t.Setenv("DONATION_LINK", "https://donate.example.org")

	env := environment.NewMock(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	env.Secrets = secrets.MockClient{Values: map[string]string{constants.SecretGenAIKey: "key"}}
	require.Nil(t, env.Store.Set(context.Background(), constants.CollectionUsers, "u1", structs.UserProfile{UID: "u1"}))

	failing := func(_ context.Context, _ *utils.GenAIConfig) (Generator, error) {
		return &fakeGenerator{err: fmt.Errorf("quota exceeded")}, nil
	}

	w := call(env, failing, `{"data":{"idToken":"uid:u1"}}`)
	assert.True(t, strings.Contains(w.Body.String(), `"status":14`), w.Body.String())

	w = call(env, failing, `{"data":{"idToken":"uid:ghost"}}`)
	assert.True(t, strings.Contains(w.Body.String(), `"status":5`), w.Body.String())

	env.Secrets = secrets.MockClient{}
	w = call(env, failing, `{"data":{"idToken":"uid:u1"}}`)
	assert.True(t, strings.Contains(w.Body.String(), `"status":13`), w.Body.String())
}

package utils

import (
	"context"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTeamCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		var code = GenerateTeamCode()

		match, err := regexp.MatchString(`^T[A-HJ-NP-Z2-9]{6}$`, code)
		assert.Nil(t, err, "Failed: %v", code)
		assert.True(t, match, "Failed: %v", code)
	}
}

func TestFixedClock(t *testing.T) {
	now := time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC)
	clock := FixedClock(now)

	assert.Equal(t, now, clock())
	assert.Equal(t, now, clock())
}

func TestLoadAppConfigDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("CHALLENGE_TIMEZONE")

	config, err := LoadAppConfig(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, "8080", config.Port)
	assert.Equal(t, 30*time.Second, config.StatsCacheTTL)
	assert.Equal(t, time.UTC, config.Location())
}

func TestLocationFallsBackToUTC(t *testing.T) {
	config := AppConfig{ChallengeTimezone: "Not/AZone"}
	assert.Equal(t, time.UTC, config.Location())

	config = AppConfig{ChallengeTimezone: "America/Chicago"}
	assert.Equal(t, "America/Chicago", config.Location().String())
}

package utils

import (
	"context"
	"time"

	"github.com/butterflysteps/backend/internal/logging"
	"github.com/sethvargo/go-envconfig"
)

//AppConfig Configuration shared by the server and Cloud Functions.
type AppConfig struct {
	Port              string        `env:"PORT, default=8080"`
	ProjectID         string        `env:"PROJECT_ID, default=butterfly-steps"`
	FirebaseURL       string        `env:"FIREBASE_URL"`
	ChallengeTimezone string        `env:"CHALLENGE_TIMEZONE, default=UTC"`
	LogLevel          string        `env:"LOG_LEVEL, default=info"`
	RedisAddr         string        `env:"REDIS_ADDR"`
	StatsCacheTTL     time.Duration `env:"STATS_CACHE_TTL, default=30s"`
	RateLimitPerSec   float64       `env:"RATE_LIMIT_PER_SEC, default=5"`
	RateLimitBurst    int           `env:"RATE_LIMIT_BURST, default=30"`
	AllowedOrigins    []string      `env:"ALLOWED_ORIGINS, default=*"`
	MetricsUser       string        `env:"METRICS_USER"`
	MetricsPass       string        `env:"METRICS_PASS"`
}

//GenAIConfig Configuration of the invite generator.
type GenAIConfig struct {
	Model          string `env:"GENAI_MODEL, default=gemini-2.5-flash"`
	CampaignName   string `env:"CAMPAIGN_NAME, default=Butterfly Steps"`
	NonprofitName  string `env:"NONPROFIT_NAME, default=Monarch Conservation Fund"`
	DonationLink   string `env:"DONATION_LINK, required"`
	MaxOutputChars int    `env:"INVITE_MAX_CHARS, default=400"`
	APIKey         string
}

//LoadAppConfig Load application config.
func LoadAppConfig(ctx context.Context) (*AppConfig, error) {
	logger := logging.FromContext(ctx)

	var config AppConfig
	if err := envconfig.Process(ctx, &config); err != nil {
		logger.Debugf("Could not load AppConfig: %v", err)
		return nil, err
	}

	return &config, nil
}

//LoadGenAIConfig Load GenAI config. The API key is loaded separately from secrets manager.
func LoadGenAIConfig(ctx context.Context) (*GenAIConfig, error) {
	logger := logging.FromContext(ctx)

	var config GenAIConfig
	if err := envconfig.Process(ctx, &config); err != nil {
		logger.Debugf("Could not load GenAIConfig: %v", err)
		return nil, err
	}

	return &config, nil
}

//Location Time zone in which "today" is computed.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.ChallengeTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

package invite

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/functions/profile"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/utils"
	"github.com/butterflysteps/backend/internal/utils/errors"
	httputils "github.com/butterflysteps/backend/internal/utils/http"
	v1 "github.com/butterflysteps/backend/pkg/api/v1"
	"google.golang.org/genai"
)

//Input Facts the invite message is written from.
type Input struct {
	DisplayName    string
	StepGoal       int
	ActivityStatus string
	CampaignName   string
	NonprofitName  string
	DonationLink   string
}

//Generator Writes a short invite message.
type Generator interface {
	Generate(ctx context.Context, in Input) (string, error)
}

//GeneratorFactory Creates generator for given configuration.
type GeneratorFactory func(ctx context.Context, config *utils.GenAIConfig) (Generator, error)

//BuildPrompt Fixed structured prompt for the model.
func BuildPrompt(in Input) string {
	name := in.DisplayName
	if name == "" {
		name = "A participant"
	}

	var b strings.Builder
	b.WriteString("Write a short, upbeat message (max 3 sentences) that a participant can send to friends ")
	b.WriteString("to invite them to join a walking fundraiser. Do not use hashtags. Include the donation link exactly once.\n\n")
	fmt.Fprintf(&b, "Participant name: %v\n", name)
	if in.StepGoal > 0 {
		fmt.Fprintf(&b, "Personal step goal: %v steps\n", in.StepGoal)
	}
	if in.ActivityStatus != "" {
		fmt.Fprintf(&b, "Activity level: %v\n", in.ActivityStatus)
	}
	fmt.Fprintf(&b, "Campaign: %v\n", in.CampaignName)
	fmt.Fprintf(&b, "Nonprofit: %v\n", in.NonprofitName)
	fmt.Fprintf(&b, "Donation link: %v\n", in.DonationLink)
	return b.String()
}

//Truncate Cuts text to at most maxChars characters, preferring a word boundary.
func Truncate(text string, maxChars int) string {
	text = strings.TrimSpace(text)
	if maxChars <= 0 || utf8.RuneCountInString(text) <= maxChars {
		return text
	}

	cut := []rune(text)[:maxChars]
	for i := len(cut) - 1; i > maxChars/2; i-- {
		if unicode.IsSpace(cut[i]) {
			cut = cut[:i]
			break
		}
	}
	return strings.TrimSpace(string(cut))
}

//GenAIGenerator Generator backed by Gemini.
type GenAIGenerator struct {
	client   *genai.Client
	model    string
	maxChars int
}

//NewGenAIGenerator Creates Gemini client whose HTTP requests are retried on throttling.
func NewGenAIGenerator(ctx context.Context, config *utils.GenAIConfig) (Generator, error) {
	logger := logging.FromContext(ctx).Named("invite.genai")

	if config.APIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     config.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httputils.NewThrottlingAwareClient(&http.Client{}, logger.Debugf),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIGenerator{client: client, model: config.Model, maxChars: config.MaxOutputChars}, nil
}

//Generate Asks the model for the message.
func (g *GenAIGenerator) Generate(ctx context.Context, in Input) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(BuildPrompt(in)), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.8),
		MaxOutputTokens: 256,
	})
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := Truncate(resp.Text(), g.maxChars)
	if text == "" {
		return "", fmt.Errorf("GenAI returned no text")
	}
	return text, nil
}

//GenerateInviteMessage Handler
func GenerateInviteMessage(w http.ResponseWriter, r *http.Request) {
	Handler(environment.Default(r.Context()), NewGenAIGenerator)(w, r)
}

//Handler Builds GenerateInviteMessage handler over given environment.
func Handler(env *environment.Environment, newGenerator GeneratorFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("generate-invite-message")

		var request v1.IDTokenRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		message, err := generate(ctx, env, newGenerator, uid)
		if err != nil {
			logger.Warnf("Cannot generate invite message: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.InviteMessageResponse{Message: message})
	}
}

func generate(ctx context.Context, env *environment.Environment, newGenerator GeneratorFactory, uid string) (string, error) {
	p, err := profile.GetUserProfile(ctx, env.Store, uid)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", &errors.NotFoundError{Msg: fmt.Sprintf("User profile %v not found", uid)}
	}

	config, err := utils.LoadGenAIConfig(ctx)
	if err != nil {
		return "", &errors.UnknownError{Msg: fmt.Sprintf("Invite generator is not configured: %v", err)}
	}

	key, err := env.Secrets.Get(ctx, constants.SecretGenAIKey)
	if err != nil {
		return "", &errors.UnknownError{Msg: fmt.Sprintf("Could not obtain GenAI key: %v", err)}
	}
	config.APIKey = strings.TrimSpace(string(key))

	generator, err := newGenerator(ctx, config)
	if err != nil {
		return "", &errors.UnknownError{Msg: err.Error()}
	}

	message, err := generator.Generate(ctx, Input{
		DisplayName:    p.DisplayName,
		StepGoal:       p.StepGoal,
		ActivityStatus: string(p.ActivityStatus),
		CampaignName:   config.CampaignName,
		NonprofitName:  config.NonprofitName,
		DonationLink:   config.DonationLink,
	})
	if err != nil {
		return "", errors.Transient("Invite generation failed", err)
	}
	return Truncate(message, config.MaxOutputChars), nil
}

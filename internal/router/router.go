package router

import (
	"net/http"

	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/functions/awardbadge"
	"github.com/butterflysteps/backend/internal/functions/challenges"
	"github.com/butterflysteps/backend/internal/functions/chrysaliscoin"
	"github.com/butterflysteps/backend/internal/functions/communitystats"
	"github.com/butterflysteps/backend/internal/functions/invite"
	"github.com/butterflysteps/backend/internal/functions/profile"
	"github.com/butterflysteps/backend/internal/functions/reconcile"
	"github.com/butterflysteps/backend/internal/functions/streak"
	"github.com/butterflysteps/backend/internal/functions/submitsteps"
	"github.com/butterflysteps/backend/internal/functions/teams"
	"github.com/butterflysteps/backend/internal/middleware"
	"github.com/butterflysteps/backend/internal/session"
	"github.com/butterflysteps/backend/internal/utils"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//Options Router dependencies besides the environment.
type Options struct {
	Config       *utils.AppConfig
	Registry     *prometheus.Registry
	RateLimiter  *middleware.RateLimiter
	NewGenerator invite.GeneratorFactory
}

//New Router serving every function plus /health and /metrics, wrapped in CORS.
func New(env *environment.Environment, opts Options) http.Handler {
	if opts.NewGenerator == nil {
		opts.NewGenerator = invite.NewGenAIGenerator
	}

	r := mux.NewRouter()

	metrics := middleware.NewMetrics(opts.Registry)

	r.Use(opts.RateLimiter.Middleware)
	r.Use(metrics.Monitor)

	r.Handle("/metrics", middleware.BasicAuth(opts.Config.MetricsUser, opts.Config.MetricsPass)(
		promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}),
	)).Methods(http.MethodGet)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy","service":"butterflysteps"}`))
	}).Methods(http.MethodGet)

	api := r.Methods(http.MethodPost).Subrouter()

	api.HandleFunc("/session-login", session.Handler(env))
	api.HandleFunc("/session-submit-steps", session.SubmitStepsHandler(env))
	api.HandleFunc("/session-collect-coin", session.CollectCoinHandler(env))
	api.HandleFunc("/session-join-team", session.JoinTeamHandler(env))
	api.HandleFunc("/session-create-team", session.CreateTeamHandler(env))
	api.HandleFunc("/session-leave-team", session.LeaveTeamHandler(env))
	api.HandleFunc("/session-complete-profile-setup", session.CompleteProfileSetupHandler(env))

	api.HandleFunc("/get-user-profile", profile.GetUserProfileHandler(env))
	api.HandleFunc("/create-user-profile", profile.CreateUserProfileHandler(env))
	api.HandleFunc("/update-user-profile", profile.UpdateUserProfileHandler(env))
	api.HandleFunc("/update-streak-on-login", streak.Handler(env))

	api.HandleFunc("/submit-steps", submitsteps.Handler(env))
	api.HandleFunc("/get-user-daily-steps", submitsteps.DailyStepsHandler(env))
	api.HandleFunc("/get-community-stats", communitystats.Handler(env))
	api.HandleFunc("/award-badge-if-unearned", awardbadge.Handler(env))

	api.HandleFunc("/collect-daily-chrysalis-coin", chrysaliscoin.Handler(env))
	api.HandleFunc("/set-active-chrysalis-theme", chrysaliscoin.ThemeHandler(env))

	api.HandleFunc("/create-team", teams.CreateHandler(env))
	api.HandleFunc("/join-team", teams.JoinHandler(env))
	api.HandleFunc("/leave-team", teams.LeaveHandler(env))
	api.HandleFunc("/get-team", teams.GetHandler(env))
	api.HandleFunc("/get-all-teams", teams.ListHandler(env))
	api.HandleFunc("/get-team-members-profiles", teams.MembersHandler(env))

	api.HandleFunc("/issue-direct-challenge", challenges.IssueHandler(env))
	api.HandleFunc("/accept-challenge-invitation", challenges.AcceptHandler(env))
	api.HandleFunc("/decline-challenge-invitation", challenges.DeclineHandler(env))
	api.HandleFunc("/list-pending-invitations", challenges.ListPendingHandler(env))

	api.HandleFunc("/generate-invite-message", invite.Handler(env, opts.NewGenerator))

	// admin function authenticates itself by apikey query param
	r.HandleFunc("/reconcile-aggregates", reconcile.Handler(env)).Methods(http.MethodGet, http.MethodPost)

	cors := handlers.CORS(
		handlers.AllowedOrigins(opts.Config.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.ExposedHeaders([]string{"Content-Length"}),
	)

	return cors(r)
}

package main

import (
	"github.com/butterflysteps/backend/internal/chrysalis"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/middleware"
	"github.com/butterflysteps/backend/internal/router"
	"github.com/butterflysteps/backend/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sethvargo/go-signalcontext"

	server "github.com/butterflysteps/backend/pkg/httpserver"
)

func main() {
	ctx, done := signalcontext.OnInterrupt()
	defer done()

	config, err := utils.LoadAppConfig(ctx)
	if err != nil {
		logging.FromContext(ctx).Fatalf("utils.LoadAppConfig: %v", err)
	}

	logger := logging.NewLogger(config.LogLevel).Named("butterflysteps")
	ctx = logging.WithLogger(ctx, logger)

	chrysalis.MustValidate()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	limiter := middleware.NewRateLimiter(config.RateLimitPerSec, config.RateLimitBurst)
	go limiter.RunCleanup(ctx)

	handler := router.New(environment.Default(ctx), router.Options{
		Config:      config,
		Registry:    registry,
		RateLimiter: limiter,
	})

	srv, err := server.NewServer(ctx, &server.Config{Port: config.Port})
	if err != nil {
		logger.Fatalf("server.NewServer: %v", err)
	}
	logger.Infof("listening on :%s", srv.Port())

	if err := srv.ServeHTTPHandler(ctx, handler); err != nil {
		logger.Fatal(err)
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/careconnect/portal-api/internal/config"
	"github.com/careconnect/portal-api/internal/handler"
	"github.com/careconnect/portal-api/internal/handler/directory"
	"github.com/careconnect/portal-api/internal/handler/doctorportal"
	"github.com/careconnect/portal-api/internal/handler/patientportal"
	"github.com/careconnect/portal-api/internal/middleware"
	"github.com/careconnect/portal-api/internal/router"
	"github.com/careconnect/portal-api/internal/screen"
	"github.com/careconnect/portal-api/internal/service/portal"
	"github.com/careconnect/portal-api/internal/upstream"
	"github.com/careconnect/portal-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(&logger.Config{
		Level:   cfg.Log.Level,
		Console: cfg.Log.Console,
	})

	// Upstream client and the derivation service on top of it.
	backend := upstream.NewClient(upstream.Config{
		BaseURL:  cfg.Upstream.BaseURL,
		Timeout:  cfg.Upstream.Timeout,
		CacheTTL: cfg.Upstream.DirectoryTTL,
	})
	portalSvc := portal.NewService(backend)
	screens := screen.NewRegistry(portalSvc, cfg.Screen.TTL)

	// Handlers
	h := handler.NewHandler()
	directoryHandler := directory.NewHandler(portalSvc)
	patientHandler := patientportal.NewHandler(screens)
	doctorHandler := doctorportal.NewHandler(portalSvc, screens)

	r := router.NewRouter(
		directoryHandler,
		patientHandler,
		doctorHandler,
		h,
		router.RouterConfig{
			RateRPS:    cfg.Rate.RPS,
			RateBurst:  cfg.Rate.Burst,
			Timeout:    time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
			CORSConfig: middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Str("upstream", cfg.Upstream.BaseURL).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

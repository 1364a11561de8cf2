package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	server "youth_housing/internal/adapters/http_server"
	"youth_housing/internal/adapters/observability"
	"youth_housing/internal/adapters/publicdata"
	"youth_housing/internal/app"
	"youth_housing/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, os.Stdout)

	metricsReg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, metricsReg)

	// sources
	reg, err := publicdata.NewRegistry(publicdata.SourceURLsFrom(cfg), publicdata.PolicyFrom(cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build source registry")
	}
	for _, src := range reg.Sources() {
		c, _ := reg.Client(src)
		log.Info().Str("source", string(src)).Str("endpoint", c.Endpoint()).Msg("source configured")
	}
	agg := app.NewAggregator(reg, app.NewDecoder(cfg.MaxBodyBytes), cfg.Workers)

	// http; inbound deadline leaves room for one upstream call
	srv := server.New(cfg.UpstreamTimeout + cfg.UpstreamTimeout/2)
	srv.Mount("/metrics", observability.MetricsHandler(metricsReg))
	srv.MountHandlers(&server.Handlers{A: agg})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

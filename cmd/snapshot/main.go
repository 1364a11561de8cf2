package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"youth_housing/internal/adapters/observability"
	"youth_housing/internal/adapters/publicdata"
	"youth_housing/internal/app"
	"youth_housing/internal/shared"
)

// snapshot fetches every source once and writes the combined result as JSON to stdout.
// It exits 1 when any source failed; the partial result is still written.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// stdout carries the snapshot, logs go to stderr
	log.Logger = observability.NewLogger(cfg.AppEnv, os.Stderr)

	log.Info().
		Int("workers", cfg.Workers).
		Dur("timeout", cfg.UpstreamTimeout).
		Int64("max_body_bytes", cfg.MaxBodyBytes).
		Msg("snapshot starting")

	reg, err := publicdata.NewRegistry(publicdata.SourceURLsFrom(cfg), publicdata.PolicyFrom(cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build source registry")
	}
	agg := app.NewAggregator(reg, app.NewDecoder(cfg.MaxBodyBytes), cfg.Workers)

	snap := agg.Snapshot(ctx, nil)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		log.Fatal().Err(err).Msg("write snapshot failed")
	}

	log.Info().
		Int("complexes", len(snap.Complexes)).
		Int("notices", len(snap.Notices)).
		Int("policies", len(snap.Policies)).
		Int("failed", len(snap.Errors)).
		Msg("snapshot completed")
	if snap.Partial() {
		stop()
		os.Exit(1)
	}
}

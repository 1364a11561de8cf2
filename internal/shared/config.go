package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DefaultMaxBodyBytes bounds one upstream response body held in memory.
const DefaultMaxBodyBytes = 5 * 1024 * 1024

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	// public-data.lh.rental-house-list.url, public-data.lh.rental-notice.url, youth-policy.url
	RentalHouseListURL string
	RentalNoticeURL    string
	YouthPolicyURL     string

	UpstreamTimeout time.Duration
	MaxBodyBytes    int64
	UpstreamRPS     int
	Workers         int
}

// Load reads the process configuration once. A .env file (ENV_FILE, default ".env")
// is applied first when present; real environment variables win.
func Load() Config {
	envFile := env("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("file", envFile).Msg("could not load env file")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Int("default", def).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:             env("APP_ENV", "prod"),
		HTTPAddr:           env("HTTP_ADDR", ":8080"),
		MetricsAddr:        env("METRICS_ADDR", ""),
		RentalHouseListURL: env("PUBLIC_DATA_LH_RENTAL_HOUSE_LIST_URL", ""),
		RentalNoticeURL:    env("PUBLIC_DATA_LH_RENTAL_NOTICE_URL", ""),
		YouthPolicyURL:     env("YOUTH_POLICY_URL", ""),
		UpstreamTimeout:    time.Duration(atoi("UPSTREAM_TIMEOUT_SECONDS", 20)) * time.Second,
		MaxBodyBytes:       int64(atoi("UPSTREAM_MAX_BODY_BYTES", DefaultMaxBodyBytes)),
		UpstreamRPS:        atoi("UPSTREAM_RPS", 5),
		Workers:            atoi("SNAPSHOT_WORKERS", 3),
	}
	// the body cap is never switched off
	if c.MaxBodyBytes <= 0 {
		log.Warn().Int64("value", c.MaxBodyBytes).Int("default", DefaultMaxBodyBytes).Msg("UPSTREAM_MAX_BODY_BYTES must be positive, using default")
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	for k, v := range map[string]string{
		"PUBLIC_DATA_LH_RENTAL_HOUSE_LIST_URL": c.RentalHouseListURL,
		"PUBLIC_DATA_LH_RENTAL_NOTICE_URL":     c.RentalNoticeURL,
		"YOUTH_POLICY_URL":                     c.YouthPolicyURL,
	} {
		if v == "" {
			log.Warn().Str("key", k).Msg("source base URL is empty")
		}
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

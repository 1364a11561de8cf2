package publicdata

import (
	"net/http"
	"time"

	"youth_housing/internal/shared"
)

// Policy is the request policy shared by every source client.
type Policy struct {
	Accept       string
	UserAgent    string
	MaxBodyBytes int64         // <= 0 disables the bound
	Timeout      time.Duration // 0 leaves the transport default
	RPS          int           // 0 disables client-side rate limiting
	Transport    http.RoundTripper
}

func DefaultPolicy() Policy {
	return Policy{
		Accept:       "application/json",
		UserAgent:    "youth-housing/1.0",
		MaxBodyBytes: shared.DefaultMaxBodyBytes,
		Timeout:      20 * time.Second,
	}
}

// PolicyFrom builds the shared policy from process configuration.
func PolicyFrom(cfg shared.Config) Policy {
	p := DefaultPolicy()
	p.MaxBodyBytes = cfg.MaxBodyBytes
	p.Timeout = cfg.UpstreamTimeout
	p.RPS = cfg.UpstreamRPS
	return p
}

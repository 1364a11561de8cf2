package observability_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"youth_housing/internal/adapters/observability"
	"youth_housing/internal/domain"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample so counters are non-zero
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveExternal("rental-notice", "GET ", 200, 30*time.Millisecond)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, name := range []string{"youth_housing_http_requests_total", "youth_housing_external_requests_total"} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}

func TestLabelErr(t *testing.T) {
	cases := map[string]error{
		"none":           nil,
		"unknown_source": fmt.Errorf("%w: %q", domain.ErrUnknownSource, "x"),
		"too_large":      fmt.Errorf("rental-notice: %w", domain.ErrResponseTooLarge),
		"field_type":     fmt.Errorf("record 2: %w", &domain.FieldTypeMismatchError{Field: "deposit"}),
		"malformed":      domain.ErrMalformedResponse,
		"transport":      &domain.StatusError{Code: 502},
		"other":          errors.New("boom"),
	}
	for want, err := range cases {
		if got := observability.LabelErr(err); got != want {
			t.Fatalf("LabelErr(%v) = %q, want %q", err, got, want)
		}
	}
}

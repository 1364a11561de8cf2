package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	server "youth_housing/internal/adapters/http_server"
	"youth_housing/internal/app"
	"youth_housing/internal/domain"
)

type stubFetcher struct {
	bodies map[domain.Source]string
	errs   map[domain.Source]error
	block  bool
}

func (s stubFetcher) Fetch(ctx context.Context, src domain.Source, path string, q url.Values) ([]byte, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err := s.errs[src]; err != nil {
		return nil, err
	}
	return []byte(s.bodies[src]), nil
}

func newTestServer(f stubFetcher, timeout time.Duration) *httptest.Server {
	srv := server.New(timeout)
	srv.MountHandlers(&server.Handlers{A: app.NewAggregator(f, app.NewDecoder(5*1024*1024), 3)})
	return httptest.NewServer(srv.Mux())
}

func TestHandlers_ListComplexes(t *testing.T) {
	ts := newTestServer(stubFetcher{bodies: map[domain.Source]string{
		domain.SourceRentalHouseList: `[{"complexId":"C1","name":"Sample","deposit":"5000000"}]`,
	}}, time.Second)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/housing/complexes")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	etag := res.Header.Get("ETag")
	if etag == "" {
		t.Fatalf("missing ETag")
	}

	var body struct {
		Count int              `json:"count"`
		Items []map[string]any `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 1 || body.Items[0]["complexId"] != "C1" || body.Items[0]["deposit"] != float64(5000000) {
		t.Fatalf("unexpected body: %+v", body)
	}
	if v, ok := body.Items[0]["address"]; !ok || v != nil {
		t.Fatalf("absent field should be null, got %v (%v)", v, ok)
	}

	// conditional request
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/housing/complexes", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", res2.StatusCode)
	}
}

func TestHandlers_ErrorMapping(t *testing.T) {
	ts := newTestServer(stubFetcher{
		bodies: map[domain.Source]string{domain.SourceRentalNotice: `{"noticeId":"N1"}`},
		errs:   map[domain.Source]error{domain.SourceYouthPolicy: &domain.StatusError{Code: 500}},
	}, time.Second)
	defer ts.Close()

	for path, want := range map[string]int{
		"/v1/housing/notices": http.StatusBadGateway, // object where a list is expected
		"/v1/policies":        http.StatusBadGateway,
	} {
		res, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		res.Body.Close()
		if res.StatusCode != want {
			t.Fatalf("%s: expected %d, got %d", path, want, res.StatusCode)
		}
		if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
			t.Fatalf("%s: unexpected content type %q", path, ct)
		}
	}
}

func TestHandlers_Timeout(t *testing.T) {
	ts := newTestServer(stubFetcher{block: true}, 50*time.Millisecond)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/policies")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", res.StatusCode)
	}
}

func TestHandlers_SnapshotPartial(t *testing.T) {
	ts := newTestServer(stubFetcher{
		bodies: map[domain.Source]string{
			domain.SourceRentalHouseList: `[{"complexId":"C1"}]`,
			domain.SourceRentalNotice:    `[]`,
		},
		errs: map[domain.Source]error{domain.SourceYouthPolicy: &domain.StatusError{Code: 503}},
	}, time.Second)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/snapshot")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var body struct {
		Complexes []map[string]any  `json:"complexes"`
		Failures  map[string]string `json:"failures"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Complexes) != 1 {
		t.Fatalf("expected 1 complex, got %d", len(body.Complexes))
	}
	if body.Failures["youth-policy"] == "" {
		t.Fatalf("expected youth-policy failure, got %v", body.Failures)
	}
}

func TestHandlers_Healthz(t *testing.T) {
	ts := newTestServer(stubFetcher{}, time.Second)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
}

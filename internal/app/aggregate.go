package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"youth_housing/internal/adapters/observability"
	"youth_housing/internal/domain"
)

// Aggregator issues requests through a SourceFetcher and decodes the results.
// Every call results in exactly one upstream request; nothing is cached or retried.
type Aggregator struct {
	src     domain.SourceFetcher
	dec     Decoder
	workers int64
}

func NewAggregator(f domain.SourceFetcher, d Decoder, workers int) *Aggregator {
	if workers <= 0 {
		workers = len(domain.AllSources)
	}
	return &Aggregator{src: f, dec: d, workers: int64(workers)}
}

func (a *Aggregator) HousingComplexes(ctx context.Context, q url.Values) ([]domain.HousingComplex, error) {
	return fetchList(ctx, a, domain.SourceRentalHouseList, q, a.dec.HousingComplexes)
}

func (a *Aggregator) HousingNotices(ctx context.Context, q url.Values) ([]domain.HousingNotice, error) {
	return fetchList(ctx, a, domain.SourceRentalNotice, q, a.dec.HousingNotices)
}

func (a *Aggregator) YouthPolicies(ctx context.Context, q url.Values) ([]domain.YouthPolicy, error) {
	return fetchList(ctx, a, domain.SourceYouthPolicy, q, a.dec.YouthPolicies)
}

func fetchList[T any](ctx context.Context, a *Aggregator, src domain.Source, q url.Values, decode func(io.Reader) ([]T, error)) ([]T, error) {
	body, err := a.src.Fetch(ctx, src, "", q)
	if err != nil {
		return nil, a.failed(src, err)
	}
	out, err := decode(bytes.NewReader(body))
	if err != nil {
		return nil, a.failed(src, fmt.Errorf("%s: %w", src, err))
	}
	log.Debug().Str("source", string(src)).Int("records", len(out)).Msg("source fetched")
	return out, nil
}

func (a *Aggregator) failed(src domain.Source, err error) error {
	observability.ObserveFailure(string(src), err)
	log.Warn().Str("source", string(src)).Err(err).Msg("source fetch failed")
	return err
}

// Snapshot is the combined result of one fetch per source. A failed source leaves its
// slice nil and an entry in Errors.
type Snapshot struct {
	Complexes []domain.HousingComplex  `json:"complexes"`
	Notices   []domain.HousingNotice   `json:"notices"`
	Policies  []domain.YouthPolicy     `json:"policies"`
	Errors    map[domain.Source]error  `json:"-"`
	Failures  map[domain.Source]string `json:"failures,omitempty"`
}

func (s Snapshot) Partial() bool { return len(s.Errors) > 0 }

// Snapshot fetches every source concurrently, at most `workers` at a time. queries may be
// nil or carry a per-source query string.
func (a *Aggregator) Snapshot(ctx context.Context, queries map[domain.Source]url.Values) Snapshot {
	var (
		snap = Snapshot{Errors: map[domain.Source]error{}}
		mu   sync.Mutex
		wg   sync.WaitGroup
		sem  = semaphore.NewWeighted(a.workers)
	)
	record := func(src domain.Source, err error) {
		mu.Lock()
		defer mu.Unlock()
		snap.Errors[src] = err
	}

	// each job writes only its own slice
	jobs := map[domain.Source]func(context.Context) error{
		domain.SourceRentalHouseList: func(ctx context.Context) (err error) {
			snap.Complexes, err = a.HousingComplexes(ctx, queries[domain.SourceRentalHouseList])
			return err
		},
		domain.SourceRentalNotice: func(ctx context.Context) (err error) {
			snap.Notices, err = a.HousingNotices(ctx, queries[domain.SourceRentalNotice])
			return err
		},
		domain.SourceYouthPolicy: func(ctx context.Context) (err error) {
			snap.Policies, err = a.YouthPolicies(ctx, queries[domain.SourceYouthPolicy])
			return err
		},
	}

	for _, src := range domain.AllSources {
		job := jobs[src]
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			record(src, fmt.Errorf("%w: %s: %w", domain.ErrTransport, src, err))
			continue
		}
		src := src // per-iteration copy (go directive < 1.22)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			if err := job(ctx); err != nil {
				record(src, err)
			}
		}()
	}
	wg.Wait()

	if len(snap.Errors) > 0 {
		snap.Failures = make(map[domain.Source]string, len(snap.Errors))
		for src, err := range snap.Errors {
			snap.Failures[src] = err.Error()
		}
	}
	return snap
}

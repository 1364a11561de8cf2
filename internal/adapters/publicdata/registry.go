package publicdata

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"youth_housing/internal/domain"
	"youth_housing/internal/shared"
)

// SourceURLs carries the configured base URL of each source.
type SourceURLs map[domain.Source]string

func SourceURLsFrom(cfg shared.Config) SourceURLs {
	return SourceURLs{
		domain.SourceRentalHouseList: cfg.RentalHouseListURL,
		domain.SourceRentalNotice:    cfg.RentalNoticeURL,
		domain.SourceYouthPolicy:     cfg.YouthPolicyURL,
	}
}

// Registry maps source names to clients. It is built once and never mutated, so lookups
// need no locking.
type Registry struct {
	clients map[domain.Source]*Client
}

// NewRegistry builds one client per known source, all under the same policy.
func NewRegistry(urls SourceURLs, p Policy) (*Registry, error) {
	clients := make(map[domain.Source]*Client, len(domain.AllSources))
	for _, src := range domain.AllSources {
		c, err := NewClient(src, urls[src], p)
		if err != nil {
			return nil, fmt.Errorf("registry: %w", err)
		}
		clients[src] = c
	}
	return &Registry{clients: clients}, nil
}

func (r *Registry) Client(name domain.Source) (*Client, error) {
	c, ok := r.clients[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSource, name)
	}
	return c, nil
}

func (r *Registry) Sources() []domain.Source {
	out := make([]domain.Source, 0, len(r.clients))
	for s := range r.clients {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Fetch looks up src and issues exactly one GET through its client.
func (r *Registry) Fetch(ctx context.Context, src domain.Source, path string, query url.Values) ([]byte, error) {
	c, err := r.Client(src)
	if err != nil {
		return nil, err
	}
	return c.Get(ctx, path, query)
}

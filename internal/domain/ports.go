package domain

import (
	"context"
	"net/url"
)

// SourceFetcher issues one upstream request to a named source and returns the bounded raw body.
type SourceFetcher interface {
	Fetch(ctx context.Context, src Source, path string, query url.Values) ([]byte, error)
}

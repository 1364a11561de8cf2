package shared

import (
	"fmt"
	"io"

	"youth_housing/internal/domain"
)

// ReadLimited reads all of r, failing with domain.ErrResponseTooLarge once more than
// limit bytes arrive. Nothing is returned on failure. limit <= 0 disables the bound.
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", domain.ErrResponseTooLarge, limit)
	}
	return b, nil
}

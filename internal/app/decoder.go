package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"youth_housing/internal/domain"
	"youth_housing/internal/shared"
)

// Decoder maps raw source bodies onto records. List methods expect a JSON array, single
// methods a JSON object. Unknown fields are ignored.
type Decoder struct {
	MaxBytes int64 // <= 0 disables the bound
}

func NewDecoder(maxBytes int64) Decoder { return Decoder{MaxBytes: maxBytes} }

func (d Decoder) HousingComplexes(r io.Reader) ([]domain.HousingComplex, error) {
	return decodeList(d, r, mapHousingComplex)
}

func (d Decoder) HousingComplex(r io.Reader) (domain.HousingComplex, error) {
	return decodeOne(d, r, mapHousingComplex)
}

func (d Decoder) HousingNotices(r io.Reader) ([]domain.HousingNotice, error) {
	return decodeList(d, r, mapHousingNotice)
}

func (d Decoder) HousingNotice(r io.Reader) (domain.HousingNotice, error) {
	return decodeOne(d, r, mapHousingNotice)
}

func (d Decoder) YouthPolicies(r io.Reader) ([]domain.YouthPolicy, error) {
	return decodeList(d, r, mapYouthPolicy)
}

func (d Decoder) YouthPolicy(r io.Reader) (domain.YouthPolicy, error) {
	return decodeOne(d, r, mapYouthPolicy)
}

// parse reads the bounded body and decodes exactly one JSON value, keeping numbers as
// json.Number so integers never pass through float64.
func (d Decoder) parse(r io.Reader) (any, error) {
	b, err := shared.ReadLimited(r, d.MaxBytes)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", domain.ErrMalformedResponse)
	}
	return v, nil
}

func decodeList[T any](d Decoder, r io.Reader, mapFn func(map[string]any) (T, error)) ([]T, error) {
	v, err := d.parse(r)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected array, got %s", domain.ErrMalformedResponse, jsonKind(v))
	}
	out := make([]T, 0, len(arr))
	for i, it := range arr {
		obj, ok := it.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: element %d: expected object, got %s", domain.ErrMalformedResponse, i, jsonKind(it))
		}
		rec, err := mapFn(obj)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeOne[T any](d Decoder, r io.Reader, mapFn func(map[string]any) (T, error)) (T, error) {
	var zero T
	v, err := d.parse(r)
	if err != nil {
		return zero, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return zero, fmt.Errorf("%w: expected object, got %s", domain.ErrMalformedResponse, jsonKind(v))
	}
	return mapFn(obj)
}

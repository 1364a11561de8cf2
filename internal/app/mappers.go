package app

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"youth_housing/internal/domain"
)

/********** field readers **********/

// fields reads typed values out of one decoded JSON object. The first coercion failure is
// kept in err; later reads still run but the record is discarded by the caller.
type fields struct {
	m   map[string]any
	err error
}

func (f *fields) fail(key string, v any, want string) {
	if f.err == nil {
		f.err = &domain.FieldTypeMismatchError{Field: key, Value: describe(v), Want: want}
	}
}

func (f *fields) str(key string) domain.Opt[string] {
	switch v := f.m[key].(type) {
	case nil:
		return domain.None[string]()
	case string:
		return domain.Some(v)
	case json.Number:
		// ids sometimes arrive unquoted
		return domain.Some(v.String())
	default:
		f.fail(key, v, "string")
		return domain.None[string]()
	}
}

func (f *fields) int(key string) domain.Opt[int64] {
	var s string
	switch v := f.m[key].(type) {
	case nil:
		return domain.None[int64]()
	case json.Number:
		s = v.String()
	case string:
		// "5,000,000" style amounts
		s = strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
		if s == "" {
			return domain.None[int64]()
		}
	default:
		f.fail(key, v, "integer")
		return domain.None[int64]()
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return domain.Some(n)
	}
	// "12000.0" or 1e6
	// float64 holds integers exactly only below 2^53
	if x, err := strconv.ParseFloat(s, 64); err == nil && x == math.Trunc(x) && math.Abs(x) < 1<<53 {
		return domain.Some(int64(x))
	}
	f.fail(key, f.m[key], "integer")
	return domain.None[int64]()
}

func (f *fields) float(key string) domain.Opt[float64] {
	var s string
	switch v := f.m[key].(type) {
	case nil:
		return domain.None[float64]()
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimSpace(v)
		if s == "" {
			return domain.None[float64]()
		}
	default:
		f.fail(key, v, "number")
		return domain.None[float64]()
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		f.fail(key, f.m[key], "number")
		return domain.None[float64]()
	}
	return domain.Some(x)
}

func (f *fields) bool(key string) domain.Opt[bool] {
	var s string
	switch v := f.m[key].(type) {
	case nil:
		return domain.None[bool]()
	case bool:
		return domain.Some(v)
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimSpace(v)
		if s == "" {
			return domain.None[bool]()
		}
	default:
		f.fail(key, v, "boolean")
		return domain.None[bool]()
	}
	switch strings.ToUpper(s) {
	case "Y", "YES", "TRUE", "1":
		return domain.Some(true)
	case "N", "NO", "FALSE", "0":
		return domain.Some(false)
	}
	f.fail(key, f.m[key], "boolean")
	return domain.None[bool]()
}

// describe renders a raw value for error messages.
func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return "value"
	}
}

// jsonKind names the top-level shape of a decoded value.
func jsonKind(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	}
	return "value"
}

/********** record mappers **********/

func mapHousingComplex(m map[string]any) (domain.HousingComplex, error) {
	f := fields{m: m}
	h := domain.HousingComplex{
		ComplexID:        f.str("complexId"),
		Name:             f.str("name"),
		Organization:     f.str("organization"),
		Region:           f.str("region"),
		Address:          f.str("address"),
		SupplyArea:       f.float("supplyArea"),
		CompletionDate:   f.str("completionDate"),
		HousingType:      f.str("housingType"),
		HeatingType:      f.str("heatingType"),
		HasElevator:      f.bool("hasElevator"),
		ParkingSpaces:    f.int("parkingSpaces"),
		Deposit:          f.int("deposit"),
		MonthlyRent:      f.int("monthlyRent"),
		TotalUnits:       f.int("totalUnits"),
		ApplicationStart: f.str("applicationStart"),
		ApplicationEnd:   f.str("applicationEnd"),
		NoticeStatus:     f.str("noticeStatus"),
		NoticeLink:       f.str("noticeLink"),
		Latitude:         f.float("latitude"),
		Longitude:        f.float("longitude"),
	}
	if f.err != nil {
		return domain.HousingComplex{}, f.err
	}
	return h, nil
}

func mapHousingNotice(m map[string]any) (domain.HousingNotice, error) {
	f := fields{m: m}
	n := domain.HousingNotice{
		NoticeID:          f.str("noticeId"),
		Title:             f.str("title"),
		Organization:      f.str("organization"),
		Region:            f.str("region"),
		HousingType:       f.str("housingType"),
		Status:            f.str("status"),
		Deadline:          f.str("deadline"),
		RecruitmentPeriod: f.str("recruitmentPeriod"),
		Address:           f.str("address"),
		TotalUnits:        f.int("totalUnits"),
		Area:              f.str("area"),
		Deposit:           f.int("deposit"),
		MonthlyRent:       f.int("monthlyRent"),
		AnnouncementDate:  f.str("announcementDate"),
		Link:              f.str("link"),
	}
	if f.err != nil {
		return domain.HousingNotice{}, f.err
	}
	return n, nil
}

func mapYouthPolicy(m map[string]any) (domain.YouthPolicy, error) {
	f := fields{m: m}
	p := domain.YouthPolicy{
		PolicyID:         f.str("policyId"),
		Title:            f.str("title"),
		Summary:          f.str("summary"),
		Category:         f.str("category"),
		Region:           f.str("region"),
		AgeStart:         f.int("ageStart"),
		AgeEnd:           f.int("ageEnd"),
		Eligibility:      f.str("eligibility"),
		ApplicationStart: f.str("applicationStart"),
		ApplicationEnd:   f.str("applicationEnd"),
		Link1:            f.str("link1"),
		Link2:            f.str("link2"),
	}
	if f.err != nil {
		return domain.YouthPolicy{}, f.err
	}
	return p, nil
}

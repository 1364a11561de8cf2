package domain

// Source is the logical name of one external public-data API.
type Source string

const (
	SourceRentalHouseList Source = "rental-house-list"
	SourceRentalNotice    Source = "rental-notice"
	SourceYouthPolicy     Source = "youth-policy"
)

// AllSources lists every source the registry is built with.
var AllSources = []Source{SourceRentalHouseList, SourceRentalNotice, SourceYouthPolicy}

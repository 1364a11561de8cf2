package domain

// YouthPolicy is one record of the youth-policy source.
type YouthPolicy struct {
	PolicyID         Opt[string] `json:"policyId"`
	Title            Opt[string] `json:"title"`
	Summary          Opt[string] `json:"summary"`
	Category         Opt[string] `json:"category"`
	Region           Opt[string] `json:"region"`
	AgeStart         Opt[int64]  `json:"ageStart"`
	AgeEnd           Opt[int64]  `json:"ageEnd"`
	Eligibility      Opt[string] `json:"eligibility"`
	ApplicationStart Opt[string] `json:"applicationStart"` // ISO date
	ApplicationEnd   Opt[string] `json:"applicationEnd"`
	Link1            Opt[string] `json:"link1"`
	Link2            Opt[string] `json:"link2"`
}

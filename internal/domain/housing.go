package domain

// HousingComplex is one rental housing complex from the LH rental-house listing.
type HousingComplex struct {
	ComplexID        Opt[string]  `json:"complexId"`
	Name             Opt[string]  `json:"name"`
	Organization     Opt[string]  `json:"organization"`
	Region           Opt[string]  `json:"region"`
	Address          Opt[string]  `json:"address"`
	SupplyArea       Opt[float64] `json:"supplyArea"` // m²
	CompletionDate   Opt[string]  `json:"completionDate"`
	HousingType      Opt[string]  `json:"housingType"`
	HeatingType      Opt[string]  `json:"heatingType"`
	HasElevator      Opt[bool]    `json:"hasElevator"`
	ParkingSpaces    Opt[int64]   `json:"parkingSpaces"`
	Deposit          Opt[int64]   `json:"deposit"`
	MonthlyRent      Opt[int64]   `json:"monthlyRent"`
	TotalUnits       Opt[int64]   `json:"totalUnits"`
	ApplicationStart Opt[string]  `json:"applicationStart"`
	ApplicationEnd   Opt[string]  `json:"applicationEnd"`
	NoticeStatus     Opt[string]  `json:"noticeStatus"`
	NoticeLink       Opt[string]  `json:"noticeLink"`
	Latitude         Opt[float64] `json:"latitude"`
	Longitude        Opt[float64] `json:"longitude"`
}

// HousingNotice is one recruitment notice from the LH rental-notice listing.
// Area stays a string: the notice API does not send it as a number.
type HousingNotice struct {
	NoticeID          Opt[string] `json:"noticeId"`
	Title             Opt[string] `json:"title"`
	Organization      Opt[string] `json:"organization"`
	Region            Opt[string] `json:"region"`
	HousingType       Opt[string] `json:"housingType"`
	Status            Opt[string] `json:"status"`
	Deadline          Opt[string] `json:"deadline"`
	RecruitmentPeriod Opt[string] `json:"recruitmentPeriod"`
	Address           Opt[string] `json:"address"`
	TotalUnits        Opt[int64]  `json:"totalUnits"`
	Area              Opt[string] `json:"area"`
	Deposit           Opt[int64]  `json:"deposit"`
	MonthlyRent       Opt[int64]  `json:"monthlyRent"`
	AnnouncementDate  Opt[string] `json:"announcementDate"`
	Link              Opt[string] `json:"link"`
}

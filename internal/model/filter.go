package model

// FilterState carries one optional constraint per TradeRecord field plus
// two date-range bounds. Zero values mean "unset". It is a pure query
// object: filtering is a function of (records, FilterState) and holds no
// state between calls.
type FilterState struct {
	Exchange   string `json:"exchange,omitempty"`
	TradeDate  string `json:"tradeDate,omitempty"`
	TradeTime  string `json:"tradeTime,omitempty"`
	Identifier string `json:"identifier,omitempty"`
	Issuer     string `json:"issuer,omitempty"`
	Maturity   string `json:"maturity,omitempty"`
	Yield      string `json:"yield,omitempty"`
	Status     string `json:"status,omitempty"`
	DealType   string `json:"dealType,omitempty"`
	Rating     string `json:"rating,omitempty"`

	MinAmount *float64 `json:"minAmount,omitempty"`
	MaxAmount *float64 `json:"maxAmount,omitempty"`
	MinPrice  *float64 `json:"minPrice,omitempty"`
	MaxPrice  *float64 `json:"maxPrice,omitempty"`

	// StartDate and EndDate are inclusive YYYY-MM-DD bounds on TradeDate.
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// IsZero reports whether no constraint is set.
func (f FilterState) IsZero() bool {
	return f == FilterState{}
}

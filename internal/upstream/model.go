package upstream

// ServerTransaction is one pre-normalized transaction object as returned
// by the upstream fund-data API. Field names and units differ from the
// file-derived canonical form (NSE amounts arrive in raw rupees), so these
// objects must pass through MapTransaction before they can be treated as
// TradeRecords.
type ServerTransaction struct {
	Exchange         string  `json:"exchange"`
	TradeDate        string  `json:"trd_date"`
	TradeTime        string  `json:"trd_time,omitempty"`
	ISIN             string  `json:"isin"`
	IssuerName       string  `json:"issuer_name,omitempty"`
	MaturityDate     string  `json:"mat_date,omitempty"`
	TradeAmount      float64 `json:"trd_amt"`
	TradePrice       float64 `json:"trd_price,omitempty"`
	Yield            string  `json:"yield,omitempty"`
	SettlementStatus string  `json:"settle_status,omitempty"`
	DealType         string  `json:"deal_type,omitempty"`
	Rating           string  `json:"rating,omitempty"`
}

// TransactionPage is one page of the upstream paginated query endpoint.
type TransactionPage struct {
	Transactions []ServerTransaction `json:"transactions"`
	Total        int                 `json:"total"`
	Page         int                 `json:"page"`
	PageSize     int                 `json:"page_size"`
}

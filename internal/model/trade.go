package model

import "time"

// Exchange labels for the supported trade-file sources.
const (
	ExchangeNSE = "NSE"
	ExchangeBSE = "BSE"
)

// TradeRecord is the canonical normalized trade row produced by the
// ingestion pipeline. Dates are YYYY-MM-DD strings (lexicographic order
// equals chronological order), times are HH:MM:SS, and Amount is
// denominated in lacs of rupees regardless of the source file's native
// unit. Yield stays a display string because source data is inconsistent;
// aggregation coerces it numerically on the side.
type TradeRecord struct {
	ID            string   `json:"id,omitempty"`
	Exchange      string   `json:"exchange"`
	TradeDate     string   `json:"tradeDate"`
	TradeTime     string   `json:"tradeTime,omitempty"`
	Identifier    string   `json:"identifier"`
	IssuerDetails string   `json:"issuerDetails,omitempty"`
	MaturityDate  string   `json:"maturityDate,omitempty"`
	Amount        float64  `json:"amount"`
	Price         float64  `json:"price,omitempty"`
	Yield         string   `json:"yield,omitempty"`
	Status        string   `json:"status,omitempty"`
	DealType      string   `json:"dealType,omitempty"`
	Rating        string   `json:"rating,omitempty"`
	RatingParts   []string `json:"ratingParts,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// SecurityRecord is one securities-master entry, keyed by its 12-character
// ISIN-shaped identifier. The same identifier appearing in a later master
// file overwrites the earlier entry.
type SecurityRecord struct {
	Identifier string `json:"identifier"`
	Issuer     string `json:"issuer"`
	Rating     string `json:"rating"`
}

// FileError reports a single file that failed to parse during an upload.
// Sibling files in the same upload are unaffected.
type FileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// PreviewResult is the response payload for a completed upload build:
// the sorted, joined record set plus per-file failures from the same run.
// MaxRatingColumns is the widest ratingParts length across all records
// (floor 1) and exists purely for display-column sizing.
type PreviewResult struct {
	Records          []TradeRecord `json:"records"`
	MaxRatingColumns int           `json:"maxRatingColumns"`
	FileErrors       []FileError   `json:"fileErrors,omitempty"`
}

// TradeRecordPage is one page of filtered, sorted trade records.
type TradeRecordPage struct {
	Records          []TradeRecord `json:"records"`
	Total            int           `json:"total"`
	Page             int           `json:"page"`
	PageSize         int           `json:"pageSize"`
	MaxRatingColumns int           `json:"maxRatingColumns"`
}

package model

// UnratedGroup is the rating group for records whose rating string carries
// no recognizable letter grade.
const UnratedGroup = "UNRATED"

// BucketRow is one (issuer, identifier, maturity) cell within an amount
// bucket. WeightedAvgYield is the amount-weighted average of the rows'
// numeric yields, nil when no member row had a parseable yield.
type BucketRow struct {
	Identifier       string   `json:"identifier"`
	Issuer           string   `json:"issuer"`
	Maturity         string   `json:"maturity"`
	TradeCount       int      `json:"tradeCount"`
	SumAmount        float64  `json:"sumAmount"`
	WeightedAvgYield *float64 `json:"weightedAvgYield"`
	DealYieldLabels  []string `json:"dealYieldLabels,omitempty"`
}

// AmountBucket is one of the six fixed lac-denominated amount strata.
// Max < 0 marks the open-ended top bucket.
type AmountBucket struct {
	Label string      `json:"label"`
	Min   float64     `json:"min"`
	Max   float64     `json:"max"`
	Rows  []BucketRow `json:"rows"`
}

// RatingGroup is the top level of the aggregation hierarchy: one
// normalized rating grade and its populated amount buckets.
type RatingGroup struct {
	Rating  string         `json:"rating"`
	Buckets []AmountBucket `json:"buckets"`
}

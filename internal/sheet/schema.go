package sheet

import "strings"

// Schema classifies an uploaded sheet by the shape of its header row.
type Schema string

const (
	// SchemaUnknown marks a sheet whose headers match no known format.
	SchemaUnknown Schema = "UNKNOWN"
	// SchemaMaster is a securities-master list (rating + issuer + ISIN).
	SchemaMaster Schema = "MASTER"
	// SchemaNSE is an NSE corporate-bond trade export.
	SchemaNSE Schema = "NSE"
	// SchemaBSE is a BSE trade export.
	SchemaBSE Schema = "BSE"
)

// DetectSchema classifies a header row. A securities-master sheet must
// carry credit-rating, issuer-name and ISIN columns and outranks exchange
// detection. For exchange sheets the filename hint ("nse"/"bse" substring)
// takes precedence over header-based detection when present.
func DetectSchema(headers []string, filename string) Schema {
	if anyHeaderContains(headers, "rating") &&
		anyHeaderContains(headers, "issuer") &&
		anyHeaderContains(headers, "isin") {
		return SchemaMaster
	}

	if hint := filenameHint(filename); hint != SchemaUnknown {
		return hint
	}

	if anyHeaderContains(headers, "deal size") || anyHeaderContains(headers, "settlement status") {
		return SchemaNSE
	}
	if bseAmountHeader(headers) || anyHeaderContains(headers, "order type") {
		return SchemaBSE
	}
	return SchemaUnknown
}

// bseAmountHeader looks for the BSE "trade amount ... lacs" compound
// header, whose exact punctuation varies between exports.
func bseAmountHeader(headers []string) bool {
	for _, h := range headers {
		n := normalizeHeader(h)
		if strings.Contains(n, "amount") && strings.Contains(n, "lacs") {
			return true
		}
	}
	return false
}

func filenameHint(filename string) Schema {
	lower := strings.ToLower(filename)
	switch {
	case strings.Contains(lower, "nse"):
		return SchemaNSE
	case strings.Contains(lower, "bse"):
		return SchemaBSE
	}
	return SchemaUnknown
}

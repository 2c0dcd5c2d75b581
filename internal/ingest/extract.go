// Package ingest turns parsed sheets into canonical trade records: it
// resolves schema-specific columns, normalizes every cell, gates rows on
// identifier shape and joins the result against the securities master.
package ingest

import (
	"regexp"
	"strings"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/sheet"
)

var isinShape = regexp.MustCompile(`^[A-Z0-9]{12}$`)

// ValidIdentifier reports whether s is a 12-character alphanumeric
// ISIN-shaped identifier after trimming and uppercasing. Rows failing this
// gate are never materialized; header echoes and blank rows land here.
func ValidIdentifier(s string) bool {
	return isinShape.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

func canonicalIdentifier(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// nseColumns resolves the column layout of an NSE trade export.
type nseColumns struct {
	isin, description, tradeDate, tradeTime, maturity int
	dealSize, price, yield, status                    int
	buyerType, sellerType, rating                     int
}

func resolveNSEColumns(headers []string) nseColumns {
	return nseColumns{
		isin:        sheet.MatchHeader(headers, "isin"),
		description: sheet.MatchHeader(headers, "security description", "security name", "issuer name", "description"),
		tradeDate:   sheet.MatchHeader(headers, "trade date", "deal date", "date"),
		tradeTime:   sheet.MatchHeader(headers, "trade time", "deal time", "time"),
		maturity:    sheet.MatchHeader(headers, "maturity date", "redemption date", "maturity"),
		dealSize:    sheet.MatchHeader(headers, "deal size (in rs)", "deal size", "trade amount"),
		price:       sheet.MatchHeader(headers, "price (in rs)", "trade price", "price"),
		yield:       sheet.MatchHeader(headers, "yield (%)", "yield"),
		status:      sheet.MatchHeader(headers, "settlement status", "status"),
		buyerType:   sheet.MatchHeader(headers, "buyer deal type", "buyer client type", "buyer type"),
		sellerType:  sheet.MatchHeader(headers, "seller deal type", "seller client type", "seller type"),
		rating:      sheet.MatchHeader(headers, "rating"),
	}
}

// ExtractNSE builds one TradeRecord per valid NSE row. Deal sizes arrive
// rupee-denominated and are converted to lacs here, at extraction time.
func ExtractNSE(headers []string, rows [][]sheet.Cell) []model.TradeRecord {
	cols := resolveNSEColumns(headers)

	var records []model.TradeRecord
	for _, row := range rows {
		identifier := sheet.CellAt(row, cols.isin).Text
		if !ValidIdentifier(identifier) {
			continue
		}

		records = append(records, model.TradeRecord{
			Exchange:      model.ExchangeNSE,
			TradeDate:     sheet.DateString(sheet.CellAt(row, cols.tradeDate)),
			TradeTime:     sheet.TimeString(sheet.CellAt(row, cols.tradeTime)),
			Identifier:    canonicalIdentifier(identifier),
			IssuerDetails: sheet.CleanDisplay(sheet.CellAt(row, cols.description).Text),
			MaturityDate:  sheet.DateString(sheet.CellAt(row, cols.maturity)),
			Amount:        sheet.RupeesToLacs(sheet.CellAt(row, cols.dealSize)),
			Price:         numericOrZero(sheet.CellAt(row, cols.price)),
			Yield:         sheet.CleanDisplay(sheet.CellAt(row, cols.yield).Text),
			Status:        sheet.CleanDisplay(sheet.CellAt(row, cols.status).Text),
			DealType: deriveDealType(
				sheet.CleanDisplay(sheet.CellAt(row, cols.buyerType).Text),
				sheet.CleanDisplay(sheet.CellAt(row, cols.sellerType).Text),
			),
			Rating: sheet.CleanDisplay(sheet.CellAt(row, cols.rating).Text),
		})
	}
	return records
}

// deriveDealType infers the deal type from the buyer/seller categorical
// columns: both direct means a direct deal, either side brokered means a
// brokered one, otherwise whichever raw value is non-empty stands as-is.
func deriveDealType(buyer, seller string) string {
	b := strings.ToUpper(buyer)
	s := strings.ToUpper(seller)
	switch {
	case strings.Contains(b, "DIRECT") && strings.Contains(s, "DIRECT"):
		return "DIRECT"
	case strings.Contains(b, "BROKER") || strings.Contains(s, "BROKER"):
		return "BROKERED"
	case buyer != "":
		return buyer
	default:
		return seller
	}
}

// bseColumns resolves the column layout of a BSE trade export. BSE amount
// headers vary between exports, so several aliases are resolved and tried
// per row in order.
type bseColumns struct {
	isin, issuer, tradeDate, tradeTime, maturity int
	price, yield, status, orderType, rating      int
	amountAliases                                []int
}

func resolveBSEColumns(headers []string) bseColumns {
	aliases := []string{
		"trade amount (in rs lacs)",
		"trade amount (rs in lacs)",
		"trade amount (in lacs)",
		"amount (in rs lacs)",
		"trade amount",
		"amount",
	}
	var amountIdx []int
	seen := map[int]bool{}
	for _, alias := range aliases {
		if idx := sheet.MatchHeader(headers, alias); idx >= 0 && !seen[idx] {
			amountIdx = append(amountIdx, idx)
			seen[idx] = true
		}
	}

	return bseColumns{
		isin:          sheet.MatchHeader(headers, "isin", "isin no"),
		issuer:        sheet.MatchHeader(headers, "issuer name", "security name", "scrip name", "issuer"),
		tradeDate:     sheet.MatchHeader(headers, "trade date", "deal date", "date"),
		tradeTime:     sheet.MatchHeader(headers, "trade time", "time"),
		maturity:      sheet.MatchHeader(headers, "maturity date", "redemption date", "maturity"),
		price:         sheet.MatchHeader(headers, "trade price (in rs)", "trade price", "price"),
		yield:         sheet.MatchHeader(headers, "yield to maturity", "ytm", "yield"),
		status:        sheet.MatchHeader(headers, "deal status", "settlement status", "status"),
		orderType:     sheet.MatchHeader(headers, "order type"),
		rating:        sheet.MatchHeader(headers, "rating"),
		amountAliases: amountIdx,
	}
}

// ExtractBSE builds one TradeRecord per valid BSE row. BSE amounts are
// already lac-denominated, so they pass through numeric coercion without
// unit conversion.
func ExtractBSE(headers []string, rows [][]sheet.Cell) []model.TradeRecord {
	cols := resolveBSEColumns(headers)

	var records []model.TradeRecord
	for _, row := range rows {
		identifier := sheet.CellAt(row, cols.isin).Text
		if !ValidIdentifier(identifier) {
			continue
		}

		var amount float64
		for _, idx := range cols.amountAliases {
			if n, ok := sheet.CellAt(row, idx).NumericValue(); ok {
				amount = n
				break
			}
		}

		records = append(records, model.TradeRecord{
			Exchange:      model.ExchangeBSE,
			TradeDate:     sheet.DateString(sheet.CellAt(row, cols.tradeDate)),
			TradeTime:     sheet.TimeString(sheet.CellAt(row, cols.tradeTime)),
			Identifier:    canonicalIdentifier(identifier),
			IssuerDetails: sheet.CleanDisplay(sheet.CellAt(row, cols.issuer).Text),
			MaturityDate:  sheet.DateString(sheet.CellAt(row, cols.maturity)),
			Amount:        amount,
			Price:         numericOrZero(sheet.CellAt(row, cols.price)),
			Yield:         sheet.CleanDisplay(sheet.CellAt(row, cols.yield).Text),
			Status:        sheet.CleanDisplay(sheet.CellAt(row, cols.status).Text),
			DealType:      strings.ToUpper(sheet.CleanDisplay(sheet.CellAt(row, cols.orderType).Text)),
			Rating:        sheet.CleanDisplay(sheet.CellAt(row, cols.rating).Text),
		})
	}
	return records
}

// ExtractMaster folds a securities-master sheet into the lookup map.
// Repeated identifiers overwrite earlier entries, within one file and
// across files processed in upload order.
func ExtractMaster(headers []string, rows [][]sheet.Cell, into map[string]model.SecurityRecord) {
	isinIdx := sheet.MatchHeader(headers, "isin")
	issuerIdx := sheet.MatchHeader(headers, "issuer name", "name of issuer", "issuer")
	ratingIdx := sheet.MatchHeader(headers, "credit rating", "rating")

	for _, row := range rows {
		identifier := sheet.CellAt(row, isinIdx).Text
		if !ValidIdentifier(identifier) {
			continue
		}
		id := canonicalIdentifier(identifier)
		into[id] = model.SecurityRecord{
			Identifier: id,
			Issuer:     sheet.CleanDisplay(sheet.CellAt(row, issuerIdx).Text),
			Rating:     sheet.CleanDisplay(sheet.CellAt(row, ratingIdx).Text),
		}
	}
}

func numericOrZero(c sheet.Cell) float64 {
	n, ok := c.NumericValue()
	if !ok {
		return 0
	}
	return n
}

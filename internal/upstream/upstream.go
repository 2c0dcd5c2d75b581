// Package upstream talks to the external fund-data REST API and maps its
// server-shaped transaction objects into canonical trade records.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/ingest"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/sheet"
)

// Client defines the interface for fetching transactions from the
// upstream API. This interface enables dependency injection and testing
// with mock implementations.
type Client interface {
	FetchTransactions(ctx context.Context, baseURL, token string, page int) (TransactionPage, error)
}

// APIClient is the production Client backed by net/http.
type APIClient struct {
	httpClient *http.Client
}

// NewAPIClient creates an upstream client with a bounded request timeout.
func NewAPIClient() *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchTransactions retrieves one page of the upstream transaction query.
func (c *APIClient) FetchTransactions(ctx context.Context, baseURL, token string, page int) (TransactionPage, error) {
	if baseURL == "" {
		return TransactionPage{}, fmt.Errorf("upstream base URL is not set")
	}

	endpoint := fmt.Sprintf("%s/api/transactions?page=%d&page_size=500",
		strings.TrimRight(baseURL, "/"), page)
	if _, err := url.Parse(endpoint); err != nil {
		return TransactionPage{}, fmt.Errorf("invalid upstream URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return TransactionPage{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return TransactionPage{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return TransactionPage{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return TransactionPage{}, fmt.Errorf("upstream returned %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	var result TransactionPage
	if err := json.Unmarshal(data, &result); err != nil {
		return TransactionPage{}, fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return result, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// MapTransaction converts a server-shaped object into a canonical
// TradeRecord, reapplying the same normalizers used for file ingestion.
// NSE amounts arrive rupee-denominated and are converted to lacs here;
// BSE amounts are already in lacs. Returns false when the identifier
// fails the ISIN gate.
func MapTransaction(st ServerTransaction) (model.TradeRecord, bool) {
	if !ingest.ValidIdentifier(st.ISIN) {
		return model.TradeRecord{}, false
	}

	exchange := strings.ToUpper(strings.TrimSpace(st.Exchange))

	amount := st.TradeAmount
	if exchange == model.ExchangeNSE {
		amount = sheet.RupeesToLacs(sheet.Cell{Kind: sheet.CellNumber, Number: st.TradeAmount})
	}

	return model.TradeRecord{
		Exchange:      exchange,
		TradeDate:     sheet.DateString(sheet.NewCell(st.TradeDate)),
		TradeTime:     sheet.TimeString(sheet.NewCell(st.TradeTime)),
		Identifier:    strings.ToUpper(strings.TrimSpace(st.ISIN)),
		IssuerDetails: sheet.CleanDisplay(st.IssuerName),
		MaturityDate:  sheet.DateString(sheet.NewCell(st.MaturityDate)),
		Amount:        amount,
		Price:         st.TradePrice,
		Yield:         sheet.CleanDisplay(st.Yield),
		Status:        sheet.CleanDisplay(st.SettlementStatus),
		DealType:      strings.ToUpper(sheet.CleanDisplay(st.DealType)),
		Rating:        sheet.CleanDisplay(st.Rating),
	}, true
}

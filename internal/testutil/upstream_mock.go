package testutil

import (
	"context"
	"fmt"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/upstream"
)

// MockUpstreamClient is a mock implementation of upstream.Client for
// testing. It serves predefined pages instead of making actual API calls.
type MockUpstreamClient struct {
	// Pages is the sequence of pages to return, keyed by page number.
	Pages map[int]upstream.TransactionPage
	// MockError is the error to return from FetchTransactions
	MockError error
	// FetchCount tracks how many times FetchTransactions was called
	FetchCount int
}

// NewMockUpstreamClient creates a mock upstream client with default test
// data: a single page of two transactions, one per exchange.
func NewMockUpstreamClient() *MockUpstreamClient {
	transactions := []upstream.ServerTransaction{
		{
			Exchange:         "NSE",
			TradeDate:        "15/03/2024",
			TradeTime:        "10:30:00",
			ISIN:             "INE001A01001",
			IssuerName:       "Alpha Finance Ltd",
			MaturityDate:     "30/06/2027",
			TradeAmount:      2500000, // rupees; maps to 25 lacs
			TradePrice:       101.5,
			Yield:            "7.85",
			SettlementStatus: "SETTLED",
			DealType:         "brokered",
			Rating:           "AA+",
		},
		{
			Exchange:    "BSE",
			TradeDate:   "15/03/2024",
			ISIN:        "INE002B02002",
			TradeAmount: 40, // already lacs
			TradePrice:  99.2,
			Yield:       "8.10",
			DealType:    "direct",
			Rating:      "AAA",
		},
	}

	return &MockUpstreamClient{
		Pages: map[int]upstream.TransactionPage{
			1: {
				Transactions: transactions,
				Total:        len(transactions),
				Page:         1,
				PageSize:     500,
			},
		},
	}
}

// FetchTransactions returns the configured page for the requested page
// number, or an empty page when none is configured.
func (m *MockUpstreamClient) FetchTransactions(_ context.Context, _, token string, page int) (upstream.TransactionPage, error) {
	m.FetchCount++
	if m.MockError != nil {
		return upstream.TransactionPage{}, m.MockError
	}
	if token == "" {
		return upstream.TransactionPage{}, fmt.Errorf("missing bearer token")
	}

	p, ok := m.Pages[page]
	if !ok {
		return upstream.TransactionPage{Page: page, PageSize: 500}, nil
	}
	return p, nil
}

// WithError configures the mock to return the specified error.
func (m *MockUpstreamClient) WithError(err error) *MockUpstreamClient {
	m.MockError = err
	return m
}

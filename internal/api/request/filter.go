// Package request parses and shapes incoming HTTP request parameters.
package request

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/apperrors"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
)

// ParseFilter builds a FilterState from query parameters. Unset
// parameters leave their constraint unset; malformed numeric bounds are
// an error rather than a silently ignored constraint.
func ParseFilter(r *http.Request) (model.FilterState, error) {
	q := r.URL.Query()

	f := model.FilterState{
		Exchange:   q.Get("exchange"),
		TradeDate:  q.Get("tradeDate"),
		TradeTime:  q.Get("tradeTime"),
		Identifier: q.Get("identifier"),
		Issuer:     q.Get("issuer"),
		Maturity:   q.Get("maturity"),
		Yield:      q.Get("yield"),
		Status:     q.Get("status"),
		DealType:   q.Get("dealType"),
		Rating:     q.Get("rating"),
		StartDate:  q.Get("startDate"),
		EndDate:    q.Get("endDate"),
	}

	var err error
	if f.MinAmount, err = optionalFloat(q.Get("minAmount"), "minAmount"); err != nil {
		return model.FilterState{}, err
	}
	if f.MaxAmount, err = optionalFloat(q.Get("maxAmount"), "maxAmount"); err != nil {
		return model.FilterState{}, err
	}
	if f.MinPrice, err = optionalFloat(q.Get("minPrice"), "minPrice"); err != nil {
		return model.FilterState{}, err
	}
	if f.MaxPrice, err = optionalFloat(q.Get("maxPrice"), "maxPrice"); err != nil {
		return model.FilterState{}, err
	}
	return f, nil
}

func optionalFloat(value, name string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", apperrors.ErrInvalidNumericRange, name, value)
	}
	return &n, nil
}

// ParsePagination reads page and pageSize with defaults of 1 and 0 (the
// service applies its own default size when 0).
func ParsePagination(r *http.Request) (page, pageSize int, err error) {
	q := r.URL.Query()
	page = 1
	if v := q.Get("page"); v != "" {
		if page, err = strconv.Atoi(v); err != nil {
			return 0, 0, fmt.Errorf("%w: page=%q", apperrors.ErrInvalidPagination, v)
		}
	}
	if v := q.Get("pageSize"); v != "" {
		if pageSize, err = strconv.Atoi(v); err != nil {
			return 0, 0, fmt.Errorf("%w: pageSize=%q", apperrors.ErrInvalidPagination, v)
		}
	}
	return page, pageSize, nil
}

// Package validation checks query and request parameters before they
// reach the service layer.
package validation

import (
	"fmt"
	"time"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/apperrors"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
)

const dateLayout = "2006-01-02"

// ValidateFilter checks the date-range and numeric-range constraints of a
// filter. Substring constraints need no validation; any string is a valid
// query.
func ValidateFilter(f model.FilterState) error {
	var start, end time.Time
	var err error

	if f.StartDate != "" {
		if start, err = time.Parse(dateLayout, f.StartDate); err != nil {
			return fmt.Errorf("%w: startDate %q", apperrors.ErrInvalidDateRange, f.StartDate)
		}
	}
	if f.EndDate != "" {
		if end, err = time.Parse(dateLayout, f.EndDate); err != nil {
			return fmt.Errorf("%w: endDate %q", apperrors.ErrInvalidDateRange, f.EndDate)
		}
	}
	if f.StartDate != "" && f.EndDate != "" && end.Before(start) {
		return fmt.Errorf("%w: endDate before startDate", apperrors.ErrInvalidDateRange)
	}

	if err := validateBounds(f.MinAmount, f.MaxAmount, "amount"); err != nil {
		return err
	}
	return validateBounds(f.MinPrice, f.MaxPrice, "price")
}

func validateBounds(min, max *float64, field string) error {
	if min != nil && max != nil && *max < *min {
		return fmt.Errorf("%w: max %s below min", apperrors.ErrInvalidNumericRange, field)
	}
	return nil
}

// ValidatePagination checks page and pageSize bounds.
func ValidatePagination(page, pageSize int) error {
	if page < 1 {
		return fmt.Errorf("%w: page %d", apperrors.ErrInvalidPagination, page)
	}
	if pageSize < 1 || pageSize > 500 {
		return fmt.Errorf("%w: pageSize %d", apperrors.ErrInvalidPagination, pageSize)
	}
	return nil
}

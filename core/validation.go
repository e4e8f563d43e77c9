package core

import (
	"fmt"
	"strings"
)

// ValidateDescription validates free-text search input.
//
// Validation happens before any upstream call: an invalid query must be
// rejected without spending an embedding or index request.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ErrEmptyDescription)
	}
	return nil
}

// ValidateTicker validates a ticker symbol for ticker-driven search.
// Only presence is checked; whether the ticker resolves to a company is
// the financial data provider's call to make.
func ValidateTicker(ticker string) error {
	if strings.TrimSpace(ticker) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ErrEmptyTicker)
	}
	return nil
}

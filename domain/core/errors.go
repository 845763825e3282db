package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Record Store errors
	ErrSourceUnavailable = errors.New("record source unavailable")
	ErrEmptyDataset      = errors.New("dataset is empty")

	// Enrichment errors
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// Filter errors
	ErrInvalidCalendarTarget = errors.New("invalid calendar target")
)

// Error constructors with context
func NewSourceUnavailableError(source string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, source, err)
}

func NewEmptyDatasetError(source string) error {
	return fmt.Errorf("%w: %s returned zero rows", ErrEmptyDataset, source)
}

func NewMalformedTimestampError(row int, raw string, err error) error {
	return fmt.Errorf("%w: row %d value %q: %v", ErrMalformedTimestamp, row, raw, err)
}

func NewInvalidCalendarTargetError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidCalendarTarget, reason)
}

// Error checking helpers
func IsSourceUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}

func IsEmptyDataset(err error) bool {
	return errors.Is(err, ErrEmptyDataset)
}

func IsMalformedTimestamp(err error) bool {
	return errors.Is(err, ErrMalformedTimestamp)
}

func IsInvalidCalendarTarget(err error) bool {
	return errors.Is(err, ErrInvalidCalendarTarget)
}

package domain

import (
	"errors"
	"fmt"
)

// Common Errors
var (
	ErrNotFound        = errors.New("resource not found")
	ErrPackageNotFound = fmt.Errorf("package: %w", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("booking: %w", ErrNotFound)
	ErrForbidden       = errors.New("forbidden")
)

package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPlanLoad indicates the plan workbook is missing, unreadable or malformed.
	ErrPlanLoad = errors.New("failed to load workout plan")

	// ErrAuth indicates messaging credentials or recipients are missing or invalid.
	ErrAuth = errors.New("missing or invalid messaging credentials")

	// ErrNotFound indicates an alias or day name that is not in the plan.
	ErrNotFound = errors.New("not found")

	// ErrNoState indicates no workout has been sent yet.
	ErrNoState = errors.New("no workout has been sent yet")
)

// LookupError reports an unknown alias or day together with the valid options
type LookupError struct {
	Kind    string // "Alias" or "Day"
	Key     string
	Options []string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s '%s' not found. Options: %s", e.Kind, e.Key, strings.Join(e.Options, ", "))
}

func (e *LookupError) Unwrap() error {
	return ErrNotFound
}

package model

import (
	"fmt"
	"time"
)

const dateKeyLayout = "2006-01-02"

// FormatDateKey renders a time as a canonical YYYY-MM-DD date key.
func FormatDateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ValidateDateKey checks that a string is a canonical YYYY-MM-DD date.
// Date keys sort lexicographically in calendar order, so range checks are
// plain string comparisons.
func ValidateDateKey(key string) error {
	if _, err := time.Parse(dateKeyLayout, key); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", key)
	}
	return nil
}

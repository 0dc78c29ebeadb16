package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// chartIDRegex matches chart identifiers that are safe to use as store keys
// and file names.
var chartIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:-]*$`)

// ValidateChartID validates a chart identifier.
// Chart ids end up in store keys and, for the file store, in file names, so
// the rules are conservative:
//   - No empty ids
//   - Maximum length of 128 characters
//   - No control characters or path separators
//   - Letters, digits, '.', '_', ':' and '-' only
func ValidateChartID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "chart id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "chart id too long (max 128 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "chart id contains invalid control characters")
		}
	}
	if strings.Contains(id, "..") {
		return New(ErrCodeInvalidInput, "chart id cannot contain '..'")
	}
	if !chartIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid chart id: %q", id)
	}
	return nil
}

// ValidatePaneID rejects negative pane ids.
func ValidatePaneID(id int) error {
	if id < 0 {
		return New(ErrCodeInvalidInput, "pane id must be >= 0, got %d", id)
	}
	return nil
}

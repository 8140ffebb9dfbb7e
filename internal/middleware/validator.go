package middleware

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Input validation and sanitization utilities

// ErrValidation marks client input errors so the router can answer 400
var ErrValidation = errors.New("validation failed")

const maxScenarioName = 255

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ValidateEmail checks the address parses as a single RFC 5322 mailbox
// without a display name. Nothing is sent to it.
func ValidateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", invalid("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return "", invalid("invalid email address: %s", email)
	}
	return addr.Address, nil
}

// ParseScenarioID parses a path id, which must be a positive integer
func ParseScenarioID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid("invalid scenario id: %q", raw)
	}
	return id, nil
}

// ValidateScenarioName sanitizes the name and enforces the column width
func ValidateScenarioName(name string) (string, error) {
	name = SanitizeString(name)
	if name == "" {
		return "", invalid("scenario_name is required")
	}
	if utf8.RuneCountInString(name) > maxScenarioName {
		return "", invalid("scenario_name must be at most %d characters", maxScenarioName)
	}
	return name, nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// ValidatePage validates the page query parameter
func ValidatePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// ValidateLimit validates pagination limit
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default
	}
	if limit > 100 {
		return 100 // max limit
	}
	return limit
}

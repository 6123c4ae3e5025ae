package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail lowercases and validates an address. Empty input is allowed and
// stays empty because e-mail is optional on password accounts.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", nil
	}
	if len(email) > 254 || !emailRegex.MatchString(email) {
		return "", fmt.Errorf("invalid email address: %s", raw)
	}
	return email, nil
}

// LocalPart returns the text before the @.
func LocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

const MaxUsernameLength = 150

var usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)

// ValidateUsername accepts letters, digits and the characters . @ + - _.
func ValidateUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if username == "" {
		return "", fmt.Errorf("username is required")
	}
	if len(username) > MaxUsernameLength {
		return "", fmt.Errorf("username exceeds maximum length of %d characters", MaxUsernameLength)
	}
	if !usernameRegex.MatchString(username) {
		return "", fmt.Errorf("username may only contain letters, digits and @/./+/-/_")
	}
	return username, nil
}

// UsernameFromEmail derives a username candidate from the local part of an address.
func UsernameFromEmail(email string) string {
	base := strings.Map(func(r rune) rune {
		if usernameRegex.MatchString(string(r)) {
			return r
		}
		return -1
	}, LocalPart(email))
	if base == "" {
		base = "user"
	}
	if len(base) > MaxUsernameLength-12 {
		base = base[:MaxUsernameLength-12]
	}
	return base
}

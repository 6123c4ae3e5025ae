package valueobjects

import "fmt"

const (
	MinPasswordLength = 6
	// bcrypt ignores everything past 72 bytes
	MaxPasswordLength = 72
)

func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	}
	return nil
}

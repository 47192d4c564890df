package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Accepted login identifiers: an email address or an E.164-ish phone
// number. The backend performs the authoritative check; this only
// rejects obvious garbage before a network call is spent on it.
var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+[0-9]{7,15}$`)
)

// MaxIdentifierLen bounds the identifier length.
const MaxIdentifierLen = 254

// ValidateIdentifier checks that the identifier looks like an email
// address or a phone number in international format.
func ValidateIdentifier(identifier string) error {
	identifier = strings.TrimSpace(identifier)

	if identifier == "" {
		return fmt.Errorf("identifier cannot be empty")
	}

	if len(identifier) > MaxIdentifierLen {
		return fmt.Errorf("identifier must not exceed %d characters", MaxIdentifierLen)
	}

	if emailPattern.MatchString(identifier) || phonePattern.MatchString(identifier) {
		return nil
	}

	return fmt.Errorf("identifier must be an email address or a phone number in +XXXXXXXX format")
}

// Package license implements the CLI's registration key check.
//
// A key is the first three hex characters of the MD5 digest of the
// registration email. This is a usage gate, not a security control.
package license

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// KeyLength is the number of digest characters a key must carry.
const KeyLength = 3

// Error reports a license key that doesn't match the email.
type Error struct {
	Email string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid license for %s", e.Email)
}

// KeyFor returns the valid key for email.
func KeyFor(email string) string {
	sum := md5.Sum([]byte(email))
	return hex.EncodeToString(sum[:])[:KeyLength]
}

// Verify reports whether key unlocks email. Comparison ignores case.
func Verify(email, key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	if len(key) != KeyLength {
		return false
	}
	return key == KeyFor(email)
}

// Check is Verify returning an *Error on mismatch.
func Check(email, key string) error {
	if !Verify(email, key) {
		return &Error{Email: email}
	}
	return nil
}

package validators

import "strings"

// NormalizeEmail lowercases and trims an address so lookups and unique
// indexes compare the same form the account was stored with.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

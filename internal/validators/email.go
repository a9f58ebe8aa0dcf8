package validators

import "net/mail"

// IsEmail is a syntactic check only. No MX or DNS lookup: booking creation
// must not block on the network.
func IsEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

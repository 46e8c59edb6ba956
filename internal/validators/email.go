package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid checks the address shape only. No DNS lookups here:
// registration must not depend on the network.
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	return strings.Contains(email[at+1:], ".")
}

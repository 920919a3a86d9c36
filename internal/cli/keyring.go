package cli

import (
	"github.com/tartampluch/go-paradox/internal/config"
	"github.com/zalando/go-keyring"
)

// lookupPassword resolves a CardDAV password from the system keyring.
// It is a package variable so tests can stub the OS keychain away.
var lookupPassword = func(user string) (string, error) {
	return keyring.Get(config.KeyringService, user)
}

// Package auth normalizes Twitch credentials and keeps the OAuth token in the system keyring.
package auth

import (
	"errors"

	"github.com/twitchkit/twitchkit/constant"
	"github.com/zalando/go-keyring"
)

const user = "twitch-oauth-token"

// SetToken persists the OAuth token to the system keyring.
func SetToken(token string) error {
	return keyring.Set(constant.App, user, token)
}

// GetToken retrieves the OAuth token from the system keyring.
// A missing entry is not an error and yields "".
func GetToken() (string, error) {
	token, err := keyring.Get(constant.App, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return token, err
}

// DeleteToken removes the OAuth token from the system keyring.
func DeleteToken() error {
	err := keyring.Delete(constant.App, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/twitchkit/twitchkit/config"
	"github.com/twitchkit/twitchkit/key"
	"github.com/twitchkit/twitchkit/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

// ErrTokenRequired is returned when a token is required but none is configured.
var ErrTokenRequired = errors.New("oauth token required")

const (
	// DefaultRedirectURI is used when no redirect URI is configured.
	DefaultRedirectURI = "http://localhost:3000/"

	defaultClientID = "a3d1dHJpdDVrbjdoZzJibTRhcXdudnRydHRxNXJ3"

	oauthPrefix = "oauth:"
)

// stripped returns the trimmed value of k, writing it back when trimming changed it.
func stripped(settings config.Settings, k string) (string, error) {
	raw := settings.Get(k)
	value := strings.TrimSpace(raw)
	if value != raw {
		if err := settings.Set(k, value); err != nil {
			return "", err
		}
	}
	return value, nil
}

// RedirectURI returns the configured redirect URI or DefaultRedirectURI.
func RedirectURI(settings config.Settings) (string, error) {
	uri, err := stripped(settings, key.OAuthRedirectURI)
	if err != nil {
		return "", err
	}
	return lo.Ternary(uri != "", uri, DefaultRedirectURI), nil
}

// ClientID returns the configured client id or the built-in one.
func ClientID(settings config.Settings) (string, error) {
	id, err := stripped(settings, key.OAuthClientID)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(defaultClientID)
	if err != nil {
		return "", fmt.Errorf("decode built-in client id: %w", err)
	}
	return string(decoded), nil
}

// OAuthToken returns the configured OAuth token, falling back to the keyring.
//
// With tokenOnly the bare token is returned (anything up to the first colon
// is dropped); otherwise the token always carries the "oauth:" prefix. When no
// token exists, "" is returned, or ErrTokenRequired if required is set.
func OAuthToken(settings config.Settings, tokenOnly, required bool) (string, error) {
	token, err := stripped(settings, key.OAuthToken)
	if err != nil {
		return "", err
	}

	if token == "" {
		stored, err := GetToken()
		if err != nil {
			log.Warnf("keyring unavailable: %v", err)
		}
		token = strings.TrimSpace(stored)
	}

	if token == "" {
		if required {
			return "", ErrTokenRequired
		}
		return "", nil
	}

	return Normalize(token, tokenOnly), nil
}

// Normalize converts token to its bare form or its "oauth:" prefixed form.
func Normalize(token string, tokenOnly bool) string {
	if tokenOnly {
		if idx := strings.Index(token, ":"); idx >= 0 {
			return token[idx+1:]
		}
		return token
	}

	if strings.HasPrefix(strings.ToLower(token), oauthPrefix) {
		return token
	}
	if idx := strings.Index(token, ":"); idx >= 0 {
		token = token[idx+1:]
	}
	return oauthPrefix + token
}

// Scopes requested when authorizing.
var Scopes = []string{"user_read", "user_follows_edit", "user_subscriptions", "chat_login"}

// OAuthConfig returns the OAuth client configuration from settings.
func OAuthConfig(settings config.Settings) (*oauth2.Config, error) {
	clientID, err := ClientID(settings)
	if err != nil {
		return nil, err
	}
	redirect, err := RedirectURI(settings)
	if err != nil {
		return nil, err
	}

	return &oauth2.Config{
		ClientID:    clientID,
		Endpoint:    endpoints.Twitch,
		RedirectURL: redirect,
		Scopes:      Scopes,
	}, nil
}

// AuthorizeURL returns the implicit grant URL whose redirect carries a new token.
func AuthorizeURL(settings config.Settings) (string, error) {
	cfg, err := OAuthConfig(settings)
	if err != nil {
		return "", err
	}
	return cfg.AuthCodeURL("", oauth2.SetAuthURLParam("response_type", "token")), nil
}

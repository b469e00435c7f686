// Package chat reports the state of the IRC chat integration.
package chat

import (
	"github.com/twitchkit/twitchkit/config"
	"github.com/twitchkit/twitchkit/key"
)

// Host is the Twitch IRC endpoint.
const Host = "irc.chat.twitch.tv"

// Enabled reports whether the IRC chat integration is switched on.
func Enabled(settings config.Settings) bool {
	return settings.Get(key.IRCEnable) == "true"
}

// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// OAuth Credentials - these keys hold the Twitch application and user credentials.
const (
	OAuthToken       = "oauth.token"
	OAuthClientID    = "oauth.client_id"
	OAuthRedirectURI = "oauth.redirect_uri"
)

// Listing - these keys govern how listings are paged and titled.
const (
	ItemsPerPage    = "ui.items_per_page"
	TitleDisplay    = "title.display"
	TitleTruncate   = "title.truncate"
	TitleLineLength = "title.line_length"
)

// Live Previews - these keys configure the refresh of cached stream preview images.
const (
	PreviewsEnable          = "previews.enable"
	PreviewsRefresh         = "previews.refresh"
	PreviewsRefreshInterval = "previews.refresh_interval"
	PreviewsNotifyRefresh   = "previews.notify_refresh"
)

// Chat Integration
const (
	IRCEnable = "irc.enable"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite  = "logs.write"
	LogsLevel  = "logs.level"
	LogsJson   = "logs.json"
	LogsMaxAge = "logs.max_age"
)

// CLI Execution Environment - these settings govern the non-host application behavior.
const (
	CliColored   = "cli.colored"
	IconsVariant = "icons.variant"
)

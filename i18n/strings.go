// Package i18n maps symbolic string keys to localized display text.
//
// The host resolves string ids to text for the current locale; when it
// cannot, the English catalogue below is used.
package i18n

// Strings maps symbolic keys to host string ids.
var Strings = map[string]int{
	"games":                 30001,
	"following":             30002,
	"search":                30003,
	"settings":              30004,
	"featured_streams":      30005,
	"teams":                 30006,
	"channels":              30008,
	"live_channels":         30009,
	"next_page":             30011,
	"unnamed_streamer":      30060,
	"untitled_stream":       30061,
	"unknown_viewer_count":  30062,
	"unknown_game":          30064,
	"play_choose_quality":   30077,
	"past_broadcasts":       30078,
	"video_highlights":      30079,
	"clear_live_preview":    30084,
	"game":                  30088,
	"viewers":               30089,
	"language":              30090,
	"mature":                30091,
	"partner":               30092,
	"delay":                 30093,
	"source":                30102,
	"uploads":               30113,
	"confirm":               30114,
	"cache_reset_succeeded": 30115,
	"cache_reset_failed":    30116,
	"cache_reset_confirm":   30117,
	"video_id_url":          30124,
	"streams":               30125,
	"refresh":               30126,
	"login":                 30127,
	"token_required":        30128,
	"error":                 30129,
	"go_to":                 30130,
	"no_results_returned":   30131,
	"authorize_heading":     30133,
	"authorize_message":     30134,
	"communities":           30137,
	"toggle_follow":         30139,
	"now_following":         30140,
	"unfollowed":            30141,
	"follow_confirm":        30143,
	"unfollow_confirm":      30144,
}

var english = map[string]string{
	"games":                  "Games",
	"following":              "Following",
	"search":                 "Search",
	"settings":               "Settings",
	"featured_streams":       "Featured Streams",
	"teams":                  "Teams",
	"channels":               "Channels",
	"live_channels":          "Live Channels",
	"next_page":              "Next Page",
	"unnamed_streamer":       "Unnamed Streamer",
	"untitled_stream":        "Untitled Stream",
	"unknown_viewer_count":   "Unknown Viewer Count",
	"unknown_game":           "Unknown Game",
	"play_choose_quality":    "Play (Choose Quality)",
	"past_broadcasts":        "Past Broadcasts",
	"video_highlights":       "Video Highlights",
	"clear_live_preview":     "Clear Live Preview Cache",
	"game":                   "Game",
	"viewers":                "Viewers",
	"language":               "Language",
	"mature":                 "Mature",
	"partner":                "Partner",
	"delay":                  "Delay",
	"source":                 "Source",
	"uploads":                "Uploads",
	"confirm":                "Confirm",
	"cache_reset_succeeded":  "Cache reset succeeded",
	"cache_reset_failed":     "Cache reset failed",
	"cache_reset_confirm":    "Reset the cache?",
	"video_id_url":           "Video ID/URL",
	"streams":                "Streams",
	"refresh":                "Refresh",
	"login":                  "Login",
	"token_required":         "An OAuth token is required",
	"error":                  "Error",
	"go_to":                  "Go To",
	"no_results_returned":    "No results returned",
	"authorize_heading":      "Authorize",
	"authorize_message":      "Authorize this application with Twitch to obtain an OAuth token",
	"communities":            "Communities",
	"toggle_follow":          "Toggle Follow",
	"now_following":          "Now following %s",
	"unfollowed":             "Unfollowed %s",
	"follow_confirm":         "Follow %s?",
	"unfollow_confirm":       "Unfollow %s?",
	"remove_from_blacklist":  "Remove from %s blacklist",
	"remove_default_quality": "Remove %s default quality",
}

// Package video extracts Twitch video ids from URLs.
package video

import "strings"

// ExtractID turns a video URL such as https://twitch.tv/a/v/12345678?t=9m1s
// into its id, v12345678. Strings that are already ids pass through.
func ExtractID(url string) string {
	id := url
	if idx := strings.Index(id, "?"); idx >= 0 {
		id = id[:idx]
	}

	// join the last segment to its predecessor: .../a/v/123 -> .../a/v123
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		id = id[:idx] + id[idx+1:]
	}
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		id = id[idx+1:]
	}

	if strings.HasPrefix(id, "videos") {
		id = "v" + strings.TrimPrefix(id, "videos")
	}
	return id
}

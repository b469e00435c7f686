// Package language validates Twitch broadcast language codes.
package language

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// All is the sentinel meaning "no language filter".
const All = "all"

// ErrInvalid is returned for codes outside Codes.
var ErrInvalid = errors.New("invalid language code")

// Codes lists the broadcast languages accepted by the Twitch API.
var Codes = []string{
	All, "en", "da", "de", "es", "fr", "it", "hu", "nl", "no", "pl", "pt", "sv", "fi",
	"vi", "tr", "cs", "el", "bg", "ru", "ar", "th", "zh", "zh-hk", "ja", "ko", "asl", "other",
}

// Validator normalizes and validates language codes.
type Validator struct{}

// Validate returns the normalized code or an error wrapping ErrInvalid,
// suggesting the closest known code when there is one.
func (Validator) Validate(code string) (string, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(code)), "_", "-")
	if lo.Contains(Codes, normalized) {
		return normalized, nil
	}

	if suggestion, ok := Suggest(normalized); ok {
		return "", fmt.Errorf("%w %q, did you mean %q?", ErrInvalid, code, suggestion)
	}
	return "", fmt.Errorf("%w %q", ErrInvalid, code)
}

// Suggest returns the closest known code for a partial or misspelled one.
func Suggest(code string) (string, bool) {
	if code == "" {
		return "", false
	}

	ranks := fuzzy.RankFindFold(code, Codes)
	if len(ranks) == 0 {
		return "", false
	}

	sort.Sort(ranks)
	return ranks[0].Target, true
}

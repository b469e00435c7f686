// Package prefs implements the persisted preference store: blacklists,
// default qualities, sort preferences and the language filter, all kept in
// a single JSON document.
package prefs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/twitchkit/twitchkit/language"
	"golang.org/x/exp/slices"
)

// BlacklistCategory names a blacklist section.
type BlacklistCategory string

const (
	User      BlacklistCategory = "user"
	Game      BlacklistCategory = "game"
	Community BlacklistCategory = "community"
)

// ContentType names a default-quality section.
type ContentType string

const (
	Stream ContentType = "stream"
	Video  ContentType = "video"
	Clip   ContentType = "clip"
)

// Top-level document keys, as accepted by ClearList.
const (
	BlacklistKey = "blacklist"
	QualitiesKey = "qualities"
	SortingKey   = "sorting"
	LanguagesKey = "languages"
)

// Document is the persisted preferences document. A nil section is absent
// from storage and gets its default on load.
type Document struct {
	Blacklist map[BlacklistCategory][]BlacklistEntry `json:"blacklist" jsonschema:"description=Blacklisted entries keyed by category."`
	Qualities map[ContentType][]QualityEntry         `json:"qualities" jsonschema:"description=Default qualities keyed by content type."`
	Sorting   map[string]Sort                        `json:"sorting" jsonschema:"description=Remembered sorting keyed by listing context."`
	Languages []string                               `json:"languages" jsonschema:"description=Broadcast language filter. all disables filtering."`
}

// BlacklistEntry is stored as a two-element [id, name] array.
type BlacklistEntry struct {
	ID   string
	Name string
}

func (e BlacklistEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.ID, e.Name})
}

func (e *BlacklistEntry) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: blacklist entry: %v", ErrMalformedDocument, err)
	}
	if len(fields) != 2 {
		return fmt.Errorf("%w: blacklist entry has %d fields", ErrMalformedDocument, len(fields))
	}

	id, err := scalar(fields[0])
	if err != nil {
		return err
	}
	name, err := scalar(fields[1])
	if err != nil {
		return err
	}

	e.ID, e.Name = id, name
	return nil
}

// QualityEntry is stored as a single-key object {target_id: {name, quality}}.
type QualityEntry struct {
	TargetID string
	Name     string
	Quality  string
}

type qualityValue struct {
	Name    string `json:"name"`
	Quality string `json:"quality"`
}

func (e QualityEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]qualityValue{
		e.TargetID: {Name: e.Name, Quality: e.Quality},
	})
}

func (e *QualityEntry) UnmarshalJSON(data []byte) error {
	var entry map[string]qualityValue
	if err := json.Unmarshal(data, &entry); err != nil {
		return fmt.Errorf("%w: quality entry: %v", ErrMalformedDocument, err)
	}
	if len(entry) != 1 {
		return fmt.Errorf("%w: quality entry has %d keys", ErrMalformedDocument, len(entry))
	}

	for id, value := range entry {
		e.TargetID, e.Name, e.Quality = id, value.Name, value.Quality
	}
	return nil
}

// String renders the entry the way removal dialogs label it.
func (e QualityEntry) String() string {
	return fmt.Sprintf("%s [%s]", e.Name, e.Quality)
}

// scalar decodes a JSON string, number or bool into its string form.
func scalar(raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	switch value := v.(type) {
	case string:
		return value, nil
	case json.Number:
		return value.String(), nil
	case bool:
		return strconv.FormatBool(value), nil
	case nil:
		return "", fmt.Errorf("%w: null in entry", ErrMalformedDocument)
	default:
		return "", fmt.Errorf("%w: unexpected %T in entry", ErrMalformedDocument, v)
	}
}

func defaultBlacklist() map[BlacklistCategory][]BlacklistEntry {
	return map[BlacklistCategory][]BlacklistEntry{
		User:      {},
		Game:      {},
		Community: {},
	}
}

func defaultQualities() map[ContentType][]QualityEntry {
	return map[ContentType][]QualityEntry{
		Stream: {},
		Video:  {},
		Clip:   {},
	}
}

// backfill assigns defaults to absent sections and repairs a language list
// that breaks its invariant. It reports whether anything changed.
func (d *Document) backfill() (dirty bool) {
	if d.Blacklist == nil {
		d.Blacklist = defaultBlacklist()
		dirty = true
	}
	if d.Qualities == nil {
		d.Qualities = defaultQualities()
		dirty = true
	}
	if d.Sorting == nil {
		d.Sorting = DefaultSorting()
		dirty = true
	}
	if d.Languages == nil {
		d.Languages = []string{language.All}
		dirty = true
	}

	if normalized := normalizeLanguages(d.Languages); !slices.Equal(normalized, d.Languages) {
		d.Languages = normalized
		dirty = true
	}

	return dirty
}

// normalizeLanguages deduplicates codes, drops the sentinel when other codes
// are present and falls back to the sentinel when nothing is left.
func normalizeLanguages(codes []string) []string {
	codes = lo.Uniq(codes)
	if len(codes) > 1 {
		codes = lo.Without(codes, language.All)
	}
	if len(codes) == 0 {
		return []string{language.All}
	}
	return codes
}

func (d *Document) marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

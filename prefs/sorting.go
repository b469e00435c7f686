package prefs

import (
	"github.com/samber/mo"
	"github.com/twitchkit/twitchkit/log"
)

// Sorting contexts with built-in defaults.
const (
	FollowedChannels = "followed_channels"
	ChannelVideos    = "channel_videos"
	Clips            = "clips"
	TopVideos        = "top_videos"
)

// SortField names one field of a Sort.
type SortField string

const (
	SortBy        SortField = "by"
	SortDirection SortField = "direction"
	SortPeriod    SortField = "period"
)

// Sort is the remembered sort of a listing context. Nil fields are unset.
type Sort struct {
	By        *string `json:"by" jsonschema:"description=Field to sort by."`
	Direction *string `json:"direction" jsonschema:"description=Sort direction."`
	Period    *string `json:"period" jsonschema:"description=Time period of the listing."`
}

// Field returns the value of f, or nil when f is unset or unknown.
func (s Sort) Field(f SortField) *string {
	switch f {
	case SortBy:
		return s.By
	case SortDirection:
		return s.Direction
	case SortPeriod:
		return s.Period
	default:
		return nil
	}
}

// IsZero reports whether every field is unset. A stored context in this
// state counts as unset.
func (s Sort) IsZero() bool {
	return s.By == nil && s.Direction == nil && s.Period == nil
}

func ptr(s string) *string {
	return &s
}

// DefaultSorting returns a fresh copy of the built-in sort table.
func DefaultSorting() map[string]Sort {
	return map[string]Sort{
		FollowedChannels: {By: ptr("last_broadcast"), Direction: ptr("desc")},
		ChannelVideos:    {By: ptr("views")},
		Clips:            {By: ptr("true"), Period: ptr("week")},
		TopVideos:        {Period: ptr("week")},
	}
}

// IsDefaultContext reports whether context has a built-in default.
func IsDefaultContext(context string) bool {
	_, ok := DefaultSorting()[context]
	return ok
}

// Sort returns the remembered sort of context. A context stored with every
// field null is unset.
func (s *Store) Sort(context string) (mo.Option[Sort], error) {
	doc, err := s.Document()
	if err != nil {
		return mo.None[Sort](), err
	}

	if sort, ok := doc.Sorting[context]; ok && !sort.IsZero() {
		return mo.Some(sort), nil
	}
	return mo.None[Sort](), nil
}

// SortField returns a single field of the remembered sort of context.
func (s *Store) SortField(context string, field SortField) (mo.Option[string], error) {
	sort, err := s.Sort(context)
	if err != nil {
		return mo.None[string](), err
	}

	if value := sort.OrEmpty().Field(field); value != nil {
		return mo.Some(*value), nil
	}
	return mo.None[string](), nil
}

// SetSort overwrites the sort of context. Contexts that are neither stored nor
// built-in are refused: false is returned and nothing is written.
func (s *Store) SetSort(context string, sort Sort) (bool, error) {
	doc, err := s.Document()
	if err != nil {
		return false, err
	}

	if stored, ok := doc.Sorting[context]; (!ok || stored.IsZero()) && !IsDefaultContext(context) {
		log.WithFields(log.Fields{"context": context}).Warn("refusing to set sort of unknown context")
		return false, nil
	}

	doc.Sorting[context] = sort
	if err := s.save(doc); err != nil {
		return false, err
	}
	return true, nil
}

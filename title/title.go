// Package title formats the display titles of stream entries.
package title

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/twitchkit/twitchkit/config"
	"github.com/twitchkit/twitchkit/key"
)

// Template identifies one of the title layouts selectable in settings.
type Template int

const (
	StreamerTitle Template = iota
	ViewersStreamerTitle
	Title
	Streamer
	StreamerGameTitle
	GameViewersStreamerTitle
	BroadcasterLanguageStreamerTitle
)

// Ellipsis marks a truncated title.
const Ellipsis = "..."

// Placeholders accepted in values.
const (
	TitleField               = "title"
	StreamerField            = "streamer"
	ViewersField             = "viewers"
	GameField                = "game"
	BroadcasterLanguageField = "broadcaster_language"
)

var layouts = map[Template]string{
	StreamerTitle:                    `{{.streamer}} - {{.title}}`,
	ViewersStreamerTitle:             `{{.viewers}} - {{.streamer}} - {{.title}}`,
	Title:                            `{{.title}}`,
	Streamer:                         `{{.streamer}}`,
	StreamerGameTitle:                `{{.streamer}} - {{.game}} - {{.title}}`,
	GameViewersStreamerTitle:         `[{{.game}}] {{.viewers}} | {{.streamer}} - {{.title}}`,
	BroadcasterLanguageStreamerTitle: `{{.broadcaster_language}} | {{.streamer}} - {{.title}}`,
}

var templates = lo.MapValues(layouts, func(layout string, t Template) *template.Template {
	return lo.Must(template.New(strconv.Itoa(int(t))).Option("missingkey=error").Parse(layout))
})

// Builder formats titles according to the title settings.
type Builder struct {
	lineLength int
	settings   config.Settings
}

// New returns a Builder truncating to lineLength characters when truncation is enabled.
func New(lineLength int, settings config.Settings) *Builder {
	return &Builder{lineLength: lineLength, settings: settings}
}

// Template returns the layout selected by the title display setting.
// Unrecognized values select StreamerTitle.
func (b *Builder) Template() (Template, error) {
	raw := b.settings.Get(key.TitleDisplay)
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key.TitleDisplay, err)
	}

	t := Template(value)
	if _, ok := layouts[t]; !ok {
		return StreamerTitle, nil
	}
	return t, nil
}

// Format renders values with the selected layout and applies truncation.
// Every placeholder of the layout must be present in values.
func (b *Builder) Format(values map[string]any) (string, error) {
	t, err := b.Template()
	if err != nil {
		return "", err
	}

	cleaned := lo.MapValues(values, func(v any, _ string) any {
		return Clean(v)
	})

	var sb strings.Builder
	if err := templates[t].Execute(&sb, cleaned); err != nil {
		return "", fmt.Errorf("format title: %w", err)
	}

	return b.truncate(sb.String()), nil
}

// Clean trims text values and folds their line breaks into spaces.
// Other values are returned unchanged.
func Clean(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}

	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
	return strings.TrimSpace(s)
}

func (b *Builder) truncate(title string) string {
	if b.settings.Get(key.TitleTruncate) != "true" {
		return title
	}
	return Truncate(title, b.lineLength)
}

// Truncate cuts s to length characters, appending Ellipsis only when
// something was cut.
func Truncate(s string, length int) string {
	runes := []rune(s)
	if length < 0 {
		length = 0
	}
	if len(runes) <= length {
		return s
	}
	return string(runes[:length]) + Ellipsis
}

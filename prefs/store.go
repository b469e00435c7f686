package prefs

import (
	"fmt"
	"strings"

	"github.com/samber/mo"
	"github.com/twitchkit/twitchkit/i18n"
	"github.com/twitchkit/twitchkit/language"
	"github.com/twitchkit/twitchkit/log"
)

// Selector asks the user to pick one of labels. An empty option means the
// user cancelled.
type Selector interface {
	Select(prompt string, labels []string) (mo.Option[int], error)
}

// LanguageValidator normalizes a language code or rejects it.
type LanguageValidator interface {
	Validate(code string) (string, error)
}

// Translator resolves symbolic string keys to display text.
type Translator interface {
	Get(key string) string
}

// Options configures a Store. Nil fields fall back to defaults, except
// Selector: without one, removals fail with ErrNoSelector.
type Options struct {
	Selector   Selector
	Validator  LanguageValidator
	Translator Translator
}

// Store is the preference store. It holds no document state of its own:
// every call reads the document from storage, and every mutation writes it back.
type Store struct {
	storage    Storage
	selector   Selector
	validator  LanguageValidator
	translator Translator
}

// New returns a Store over storage.
func New(storage Storage, options *Options) *Store {
	if options == nil {
		options = &Options{}
	}

	s := &Store{
		storage:    storage,
		selector:   options.Selector,
		validator:  options.Validator,
		translator: options.Translator,
	}

	if s.validator == nil {
		s.validator = language.Validator{}
	}
	if s.translator == nil {
		s.translator = i18n.New(nil)
	}

	return s
}

// Document loads the document, backfilling and persisting any absent section.
func (s *Store) Document() (*Document, error) {
	doc, err := s.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	if doc.backfill() {
		log.Debug("preferences backfilled with defaults")
		if err := s.save(doc); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func (s *Store) save(doc *Document) error {
	if err := s.storage.Save(doc); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// prompt translates key and fills in arg. Text without exactly one %s
// directive gets arg appended instead of being used as a format.
func (s *Store) prompt(key string, arg any) string {
	text := s.translator.Get(key)
	if strings.Count(text, "%") == 1 && strings.Contains(text, "%s") {
		return fmt.Sprintf(text, arg)
	}
	return text + " " + fmt.Sprint(arg)
}

// choose runs the selector and validates the returned index against labels.
func (s *Store) choose(prompt string, labels []string) (mo.Option[int], error) {
	if s.selector == nil {
		return mo.None[int](), ErrNoSelector
	}

	choice, err := s.selector.Select(prompt, labels)
	if err != nil {
		return mo.None[int](), err
	}

	index, ok := choice.Get()
	if !ok || index == -1 {
		return mo.None[int](), nil
	}
	if index < 0 || index >= len(labels) {
		return mo.None[int](), fmt.Errorf("%w: %d of %d", ErrSelectionOutOfRange, index, len(labels))
	}
	return choice, nil
}

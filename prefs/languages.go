package prefs

import (
	"github.com/samber/lo"
	"github.com/twitchkit/twitchkit/language"
	"github.com/twitchkit/twitchkit/log"
)

// Languages returns the language filter.
func (s *Store) Languages() ([]string, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}
	return doc.Languages, nil
}

// AddLanguage adds code to the filter and returns the new filter. Adding
// language.All resets the filter; adding any other code drops language.All.
func (s *Store) AddLanguage(code string) ([]string, error) {
	code, err := s.validator.Validate(code)
	if err != nil {
		return nil, err
	}

	doc, err := s.Document()
	if err != nil {
		return nil, err
	}

	if code == language.All {
		doc.Languages = []string{language.All}
	} else {
		doc.Languages = normalizeLanguages(append(doc.Languages, code))
	}

	if err := s.save(doc); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"language": code}).Info("language added")
	return doc.Languages, nil
}

// RemoveLanguage removes code from the filter and returns the new filter.
// Removing the last code resets the filter to language.All.
func (s *Store) RemoveLanguage(code string) ([]string, error) {
	code, err := s.validator.Validate(code)
	if err != nil {
		return nil, err
	}

	doc, err := s.Document()
	if err != nil {
		return nil, err
	}

	doc.Languages = normalizeLanguages(lo.Without(doc.Languages, code))
	if err := s.save(doc); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"language": code}).Info("language removed")
	return doc.Languages, nil
}

package prefs

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/twitchkit/twitchkit/log"
	"golang.org/x/exp/slices"
)

func (d *Document) isBlacklisted(id string, category BlacklistCategory) bool {
	return lo.ContainsBy(d.Blacklist[category], func(e BlacklistEntry) bool {
		// games and communities may be blacklisted by name as well as by id
		return e.ID == id || (category != User && e.Name == id)
	})
}

// Blacklist returns the entries of category.
func (s *Store) Blacklist(category BlacklistCategory) ([]BlacklistEntry, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}
	return doc.Blacklist[category], nil
}

// IsBlacklisted reports whether id is blacklisted in category.
func (s *Store) IsBlacklisted(id string, category BlacklistCategory) (bool, error) {
	doc, err := s.Document()
	if err != nil {
		return false, err
	}
	return doc.isBlacklisted(id, category), nil
}

// AddBlacklist appends [id, name] to category. It returns false, without
// writing, when id is already blacklisted.
func (s *Store) AddBlacklist(id, name string, category BlacklistCategory) (bool, error) {
	doc, err := s.Document()
	if err != nil {
		return false, err
	}

	if doc.isBlacklisted(id, category) {
		return false, nil
	}

	doc.Blacklist[category] = append(doc.Blacklist[category], BlacklistEntry{ID: id, Name: name})
	if err := s.save(doc); err != nil {
		return false, err
	}

	log.WithFields(log.Fields{"category": category, "id": id}).Info("blacklisted")
	return true, nil
}

// RemoveBlacklist lets the user pick an entry of category and removes it.
// A cancelled selection removes nothing and returns an empty option.
func (s *Store) RemoveBlacklist(category BlacklistCategory) (mo.Option[BlacklistEntry], error) {
	doc, err := s.Document()
	if err != nil {
		return mo.None[BlacklistEntry](), err
	}

	entries := doc.Blacklist[category]
	labels := lo.Map(entries, func(e BlacklistEntry, _ int) string {
		return e.Name
	})

	choice, err := s.choose(s.prompt("remove_from_blacklist", category), labels)
	if err != nil {
		return mo.None[BlacklistEntry](), err
	}

	index, ok := choice.Get()
	if !ok {
		return mo.None[BlacklistEntry](), nil
	}

	removed := entries[index]
	doc.Blacklist[category] = slices.Delete(entries, index, index+1)
	if err := s.save(doc); err != nil {
		return mo.None[BlacklistEntry](), err
	}

	log.WithFields(log.Fields{"category": category, "id": removed.ID}).Info("removed from blacklist")
	return mo.Some(removed), nil
}

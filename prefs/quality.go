package prefs

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/twitchkit/twitchkit/log"
	"golang.org/x/exp/slices"
)

func (d *Document) qualityIndex(content ContentType, id string) int {
	_, index, _ := lo.FindIndexOf(d.Qualities[content], func(e QualityEntry) bool {
		return e.TargetID == id
	})
	return index
}

// DefaultQualities returns the remembered qualities of content.
func (s *Store) DefaultQualities(content ContentType) ([]QualityEntry, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}
	return doc.Qualities[content], nil
}

// DefaultQuality returns the remembered quality for id, if any.
func (s *Store) DefaultQuality(content ContentType, id string) (mo.Option[QualityEntry], error) {
	doc, err := s.Document()
	if err != nil {
		return mo.None[QualityEntry](), err
	}

	if index := doc.qualityIndex(content, id); index >= 0 {
		return mo.Some(doc.Qualities[content][index]), nil
	}
	return mo.None[QualityEntry](), nil
}

// AddDefaultQuality remembers quality for id. An existing entry with the same
// quality (case-insensitive) is left alone and false is returned; one with a
// different quality is replaced.
func (s *Store) AddDefaultQuality(content ContentType, id, name, quality string) (bool, error) {
	doc, err := s.Document()
	if err != nil {
		return false, err
	}

	entries := doc.Qualities[content]
	if index := doc.qualityIndex(content, id); index >= 0 {
		if strings.EqualFold(entries[index].Quality, quality) {
			return false, nil
		}
		entries = slices.Delete(entries, index, index+1)
	}

	doc.Qualities[content] = append(entries, QualityEntry{TargetID: id, Name: name, Quality: quality})
	if err := s.save(doc); err != nil {
		return false, err
	}

	log.WithFields(log.Fields{"content": content, "id": id, "quality": quality}).Info("default quality set")
	return true, nil
}

// RemoveDefaultQuality lets the user pick an entry of content and removes it.
// A cancelled selection removes nothing and returns an empty option.
func (s *Store) RemoveDefaultQuality(content ContentType) (mo.Option[QualityEntry], error) {
	doc, err := s.Document()
	if err != nil {
		return mo.None[QualityEntry](), err
	}

	entries := doc.Qualities[content]
	labels := lo.Map(entries, func(e QualityEntry, _ int) string {
		return e.String()
	})

	choice, err := s.choose(s.prompt("remove_default_quality", content), labels)
	if err != nil {
		return mo.None[QualityEntry](), err
	}

	index, ok := choice.Get()
	if !ok {
		return mo.None[QualityEntry](), nil
	}

	removed := entries[index]
	doc.Qualities[content] = slices.Delete(entries, index, index+1)
	if err := s.save(doc); err != nil {
		return mo.None[QualityEntry](), err
	}

	log.WithFields(log.Fields{"content": content, "id": removed.TargetID}).Info("default quality removed")
	return mo.Some(removed), nil
}

package prefs

import "github.com/twitchkit/twitchkit/log"

// ClearList empties the listType section of the listName mapping (blacklist,
// qualities or sorting). It reports false, without writing, when either name
// is unknown.
func (s *Store) ClearList(listName, listType string) (bool, error) {
	doc, err := s.Document()
	if err != nil {
		return false, err
	}

	switch listName {
	case BlacklistKey:
		category := BlacklistCategory(listType)
		if _, ok := doc.Blacklist[category]; !ok {
			return false, nil
		}
		doc.Blacklist[category] = []BlacklistEntry{}
	case QualitiesKey:
		content := ContentType(listType)
		if _, ok := doc.Qualities[content]; !ok {
			return false, nil
		}
		doc.Qualities[content] = []QualityEntry{}
	case SortingKey:
		if _, ok := doc.Sorting[listType]; !ok {
			return false, nil
		}
		delete(doc.Sorting, listType)
	default:
		return false, nil
	}

	if err := s.save(doc); err != nil {
		return false, err
	}

	log.WithFields(log.Fields{"list": listName, "type": listType}).Info("list cleared")
	return true, nil
}

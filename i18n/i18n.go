package i18n

// Lookup resolves a host string id to text; it returns "" when unknown.
type Lookup func(id int) string

// Translations resolves symbolic keys through a host Lookup.
type Translations struct {
	lookup Lookup
}

// New returns Translations backed by lookup. A nil lookup uses the English catalogue only.
func New(lookup Lookup) *Translations {
	return &Translations{lookup: lookup}
}

// Get returns the display text for key. Unknown keys render as the key itself.
func (t *Translations) Get(key string) string {
	if t != nil && t.lookup != nil {
		if id, ok := Strings[key]; ok {
			if text := t.lookup(id); text != "" {
				return text
			}
		}
	}

	if text, ok := english[key]; ok {
		return text
	}
	return key
}

package prefs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/twitchkit/twitchkit/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

var storeCounter int

// newTestStore returns a store over a fresh document path.
func newTestStore(options *Options) (*Store, *FileStorage) {
	storeCounter++
	storage := NewFileStorage(fmt.Sprintf("/addon_data/%d/storage.json", storeCounter))
	return New(storage, options), storage
}

// pickSelector answers every prompt with a fixed choice and records what it was shown.
type pickSelector struct {
	choice mo.Option[int]
	err    error
	prompt string
	labels []string
}

func (p *pickSelector) Select(prompt string, labels []string) (mo.Option[int], error) {
	p.prompt, p.labels = prompt, labels
	return p.choice, p.err
}

// countingStorage wraps a Storage and counts saves.
type countingStorage struct {
	Storage
	saves int
}

func (c *countingStorage) Save(doc *Document) error {
	c.saves++
	return c.Storage.Save(doc)
}

func readRaw(storage *FileStorage) string {
	return string(lo.Must(filesystem.API().ReadFile(storage.Path())))
}

func TestDocument(t *testing.T) {
	Convey("Given empty storage", t, func() {
		store, storage := newTestStore(nil)

		Convey("When the document is loaded", func() {
			doc, err := store.Document()
			So(err, ShouldBeNil)

			Convey("Then every section has its default", func() {
				So(doc.Blacklist, ShouldContainKey, User)
				So(doc.Blacklist, ShouldContainKey, Game)
				So(doc.Blacklist, ShouldContainKey, Community)
				So(doc.Qualities, ShouldContainKey, Stream)
				So(doc.Qualities, ShouldContainKey, Video)
				So(doc.Qualities, ShouldContainKey, Clip)
				So(doc.Sorting, ShouldResemble, DefaultSorting())
				So(doc.Languages, ShouldResemble, []string{"all"})
			})

			Convey("And loading again leaves the file byte-identical", func() {
				first := readRaw(storage)
				_, err := store.Document()
				So(err, ShouldBeNil)
				So(readRaw(storage), ShouldEqual, first)
			})

			Convey("And empty lists are written as arrays", func() {
				So(readRaw(storage), ShouldContainSubstring, `"user": []`)
			})
		})
	})

	Convey("Given storage missing several sections", t, func() {
		counting := &countingStorage{Storage: NewFileStorage("/addon_data/partial/storage.json")}
		So(filesystem.API().WriteFile("/addon_data/partial/storage.json", []byte(`{"languages": ["en"]}`), 0o644), ShouldBeNil)
		store := New(counting, nil)

		Convey("The backfill is persisted exactly once", func() {
			doc, err := store.Document()
			So(err, ShouldBeNil)
			So(counting.saves, ShouldEqual, 1)
			So(doc.Languages, ShouldResemble, []string{"en"})

			_, err = store.Document()
			So(err, ShouldBeNil)
			So(counting.saves, ShouldEqual, 1)
		})
	})

	Convey("Given a complete document with numeric ids", t, func() {
		path := "/addon_data/numeric/storage.json"
		So(filesystem.API().WriteFile(path, []byte(`{
			"blacklist": {"user": [[12345, "someone"]], "game": [], "community": []},
			"qualities": {"stream": [{"42": {"name": "X", "quality": "720p"}}], "video": [], "clip": []},
			"sorting": {},
			"languages": ["all", "en"]
		}`), 0o644), ShouldBeNil)
		store := New(NewFileStorage(path), nil)

		Convey("Ids compare as strings", func() {
			ok, err := store.IsBlacklisted("12345", User)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
		})

		Convey("Quality entries decode into their fields", func() {
			entry, err := store.DefaultQuality(Stream, "42")
			So(err, ShouldBeNil)
			So(entry.MustGet(), ShouldResemble, QualityEntry{TargetID: "42", Name: "X", Quality: "720p"})
		})

		Convey("A language list holding the sentinel and a code is repaired", func() {
			langs, err := store.Languages()
			So(err, ShouldBeNil)
			So(langs, ShouldResemble, []string{"en"})
		})
	})

	Convey("Given malformed documents", t, func() {
		cases := []struct {
			name    string
			content string
		}{
			{"syntax", `{"blacklist": `},
			{"entry arity", `{"blacklist": {"user": [["1", "a", "b"]]}}`},
			{"entry type", `{"blacklist": {"user": [[{"id": 1}, "a"]]}}`},
			{"quality keys", `{"qualities": {"stream": [{"1": {"name": "a", "quality": "x"}, "2": {"name": "b", "quality": "y"}}]}}`},
			{"quality shape", `{"qualities": {"stream": [["1", "x"]]}}`},
			{"languages shape", `{"languages": "en"}`},
			{"unknown key", `{"languages": ["en"], "favourites": {"x": [1, 2]}}`},
			{"null id", `{"blacklist": {"user": [[null, "a"]]}}`},
			{"null name", `{"blacklist": {"game": [["1", null]]}}`},
		}

		for _, c := range cases {
			path := "/addon_data/malformed/" + c.name + ".json"
			So(filesystem.API().WriteFile(path, []byte(c.content), 0o644), ShouldBeNil)

			Convey("Loading fails for "+c.name, func() {
				_, err := New(NewFileStorage(path), nil).Document()
				So(errors.Is(err, ErrMalformedDocument), ShouldBeTrue)
			})
		}
	})

	Convey("Given a blank file", t, func() {
		path := "/addon_data/blank/storage.json"
		So(filesystem.API().WriteFile(path, []byte("  \n"), 0o644), ShouldBeNil)

		Convey("It is treated as empty", func() {
			doc, err := New(NewFileStorage(path), nil).Document()
			So(err, ShouldBeNil)
			So(doc.Languages, ShouldResemble, []string{"all"})
		})
	})
}

func TestChoose(t *testing.T) {
	Convey("Given a store without a selector", t, func() {
		store, _ := newTestStore(nil)

		Convey("Removals fail with ErrNoSelector", func() {
			_, err := store.RemoveBlacklist(User)
			So(errors.Is(err, ErrNoSelector), ShouldBeTrue)
		})
	})

	Convey("Given a selector returning an index out of range", t, func() {
		store, _ := newTestStore(&Options{Selector: &pickSelector{choice: mo.Some(3)}})
		_, err := store.AddBlacklist("1", "one", User)
		So(err, ShouldBeNil)

		Convey("The removal fails and nothing changes", func() {
			_, err := store.RemoveBlacklist(User)
			So(errors.Is(err, ErrSelectionOutOfRange), ShouldBeTrue)

			entries, err := store.Blacklist(User)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
		})
	})

	Convey("Given a selector reporting -1", t, func() {
		store, _ := newTestStore(&Options{Selector: &pickSelector{choice: mo.Some(-1)}})
		_, err := store.AddBlacklist("1", "one", User)
		So(err, ShouldBeNil)

		Convey("It is treated as a cancellation", func() {
			removed, err := store.RemoveBlacklist(User)
			So(err, ShouldBeNil)
			So(removed.IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given a failing selector", t, func() {
		boom := errors.New("boom")
		store, _ := newTestStore(&Options{Selector: &pickSelector{err: boom}})

		Convey("The error propagates", func() {
			_, err := store.RemoveDefaultQuality(Stream)
			So(errors.Is(err, boom), ShouldBeTrue)
		})
	})
}

// mapTranslator serves fixed texts.
type mapTranslator map[string]string

func (m mapTranslator) Get(key string) string {
	return m[key]
}

func TestPrompt(t *testing.T) {
	Convey("Given translations without a single string directive", t, func() {
		selector := &pickSelector{choice: mo.None[int]()}
		store, _ := newTestStore(&Options{
			Selector: selector,
			Translator: mapTranslator{
				"remove_from_blacklist":  "Entfernen 100%",
				"remove_default_quality": "Remove %d default quality",
			},
		})

		Convey("The argument is appended to the blacklist prompt", func() {
			_, _ = store.AddBlacklist("1", "one", User)
			_, err := store.RemoveBlacklist(User)
			So(err, ShouldBeNil)
			So(selector.prompt, ShouldEqual, "Entfernen 100% user")
		})

		Convey("The argument is appended to the quality prompt", func() {
			_, _ = store.AddDefaultQuality(Stream, "1", "one", "720p")
			_, err := store.RemoveDefaultQuality(Stream)
			So(err, ShouldBeNil)
			So(selector.prompt, ShouldEqual, "Remove %d default quality stream")
		})
	})

	Convey("Given translations with a string directive", t, func() {
		selector := &pickSelector{choice: mo.None[int]()}
		store, _ := newTestStore(&Options{
			Selector:   selector,
			Translator: mapTranslator{"remove_from_blacklist": "Remove from %s blacklist"},
		})

		Convey("The argument is formatted in place", func() {
			_, _ = store.AddBlacklist("1", "one", Game)
			_, err := store.RemoveBlacklist(Game)
			So(err, ShouldBeNil)
			So(selector.prompt, ShouldEqual, "Remove from game blacklist")
		})
	})
}

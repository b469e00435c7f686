package prefs

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClearList(t *testing.T) {
	Convey("Given a store with entries", t, func() {
		store, storage := newTestStore(nil)
		_, _ = store.AddBlacklist("1", "one", User)
		_, _ = store.AddDefaultQuality(Video, "2", "two", "720p")

		Convey("Clearing a blacklist category empties it", func() {
			cleared, err := store.ClearList(BlacklistKey, string(User))
			So(err, ShouldBeNil)
			So(cleared, ShouldBeTrue)

			entries, _ := store.Blacklist(User)
			So(entries, ShouldBeEmpty)
			So(readRaw(storage), ShouldContainSubstring, `"user": []`)
		})

		Convey("Clearing a quality category empties it", func() {
			cleared, err := store.ClearList(QualitiesKey, string(Video))
			So(err, ShouldBeNil)
			So(cleared, ShouldBeTrue)

			entries, _ := store.DefaultQualities(Video)
			So(entries, ShouldBeEmpty)
		})

		Convey("Unknown names are refused without writing", func() {
			before := readRaw(storage)

			for _, args := range [][2]string{
				{"bogus", "user"},
				{BlacklistKey, "team"},
				{QualitiesKey, "highlight"},
				{SortingKey, "nope"},
				{LanguagesKey, "en"},
			} {
				cleared, err := store.ClearList(args[0], args[1])
				So(err, ShouldBeNil)
				So(cleared, ShouldBeFalse)
			}

			So(readRaw(storage), ShouldEqual, before)
		})
	})
}

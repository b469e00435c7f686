package prefs

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/twitchkit/twitchkit/language"
)

func TestLanguages(t *testing.T) {
	Convey("Given a fresh store", t, func() {
		store, storage := newTestStore(nil)

		Convey("The filter starts as the sentinel", func() {
			langs, err := store.Languages()
			So(err, ShouldBeNil)
			So(langs, ShouldResemble, []string{language.All})
		})

		Convey("Adding a code drops the sentinel", func() {
			langs, err := store.AddLanguage("en")
			So(err, ShouldBeNil)
			So(langs, ShouldResemble, []string{"en"})

			Convey("Adding it twice keeps one copy", func() {
				langs, err := store.AddLanguage("EN")
				So(err, ShouldBeNil)
				So(langs, ShouldResemble, []string{"en"})
			})

			Convey("Adding another code keeps both", func() {
				langs, err := store.AddLanguage("de")
				So(err, ShouldBeNil)
				So(langs, ShouldHaveLength, 2)
				So(langs, ShouldContain, "en")
				So(langs, ShouldContain, "de")
			})

			Convey("Adding the sentinel resets the filter", func() {
				langs, err := store.AddLanguage("all")
				So(err, ShouldBeNil)
				So(langs, ShouldResemble, []string{language.All})
			})

			Convey("Removing the last code falls back to the sentinel", func() {
				langs, err := store.RemoveLanguage("en")
				So(err, ShouldBeNil)
				So(langs, ShouldResemble, []string{language.All})

				stored, _ := store.Languages()
				So(stored, ShouldResemble, []string{language.All})
			})
		})

		Convey("Invalid codes fail without touching storage", func() {
			_, _ = store.Languages()
			before := readRaw(storage)

			_, err := store.AddLanguage("xx-invalid")
			So(errors.Is(err, language.ErrInvalid), ShouldBeTrue)

			_, err = store.RemoveLanguage("xx-invalid")
			So(errors.Is(err, language.ErrInvalid), ShouldBeTrue)

			So(readRaw(storage), ShouldEqual, before)
		})
	})
}

package i18n

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTranslations(t *testing.T) {
	Convey("Given translations without a host lookup", t, func() {
		tr := New(nil)

		Convey("Known keys use the English catalogue", func() {
			So(tr.Get("next_page"), ShouldEqual, "Next Page")
		})

		Convey("Unknown keys render as themselves", func() {
			So(tr.Get("no_such_key"), ShouldEqual, "no_such_key")
		})
	})

	Convey("Given a host lookup", t, func() {
		tr := New(func(id int) string {
			if id == 30011 {
				return "Seite weiter"
			}
			return ""
		})

		Convey("Resolved ids win over the catalogue", func() {
			So(tr.Get("next_page"), ShouldEqual, "Seite weiter")
		})

		Convey("Unresolved ids fall back to English", func() {
			So(tr.Get("games"), ShouldEqual, "Games")
		})

		Convey("Keys without an id still fall back", func() {
			So(tr.Get("remove_from_blacklist"), ShouldEqual, "Remove from %s blacklist")
		})
	})

	Convey("Every id-mapped key has an English fallback", t, func() {
		for k := range Strings {
			_, ok := english[k]
			So(ok, ShouldBeTrue)
		}
	})
}

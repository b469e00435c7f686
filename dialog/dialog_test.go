package dialog

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSelect(t *testing.T) {
	Convey("Given nothing to select", t, func() {
		choice, err := Survey{}.Select("pick", nil)

		Convey("No prompt is shown and the choice is empty", func() {
			So(err, ShouldBeNil)
			So(choice.IsAbsent(), ShouldBeTrue)
		})
	})
}

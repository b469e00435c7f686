package video

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExtractID(t *testing.T) {
	Convey("ExtractID", t, func() {
		So(ExtractID("http://twitch.tv/a/v/12345678?t=9m1s"), ShouldEqual, "v12345678")
		So(ExtractID("https://www.twitch.tv/videos/12345678"), ShouldEqual, "v12345678")
		So(ExtractID("https://www.twitch.tv/videos/12345678?filter=archives"), ShouldEqual, "v12345678")
		So(ExtractID("v12345678"), ShouldEqual, "v12345678")
	})
}

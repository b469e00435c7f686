package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/twitchkit/twitchkit/constant"
)

func TestCommand(t *testing.T) {
	Convey("Given an authorization URL", t, func() {
		const url = "https://id.twitch.tv/oauth2/authorize?response_type=token"

		Convey("Linux uses xdg-open", func() {
			cmd, ok := command(constant.Linux, url)
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", url})
		})

		Convey("macOS uses open", func() {
			cmd, ok := command(constant.Darwin, url)
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"open", url})
		})

		Convey("Unknown systems are unsupported", func() {
			_, ok := command("plan9", url)
			So(ok, ShouldBeFalse)
		})
	})
}

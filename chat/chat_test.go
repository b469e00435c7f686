package chat

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/twitchkit/twitchkit/key"
)

type mapSettings map[string]string

func (m mapSettings) Get(k string) string { return m[k] }

func (m mapSettings) Set(k, v string) error {
	m[k] = v
	return nil
}

func TestEnabled(t *testing.T) {
	Convey("Enabled follows the flag", t, func() {
		So(Enabled(mapSettings{key.IRCEnable: "true"}), ShouldBeTrue)
		So(Enabled(mapSettings{key.IRCEnable: "false"}), ShouldBeFalse)
		So(Enabled(mapSettings{}), ShouldBeFalse)
	})
}

package preview

import (
	"fmt"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/twitchkit/twitchkit/filesystem"
	"github.com/twitchkit/twitchkit/key"
)

type mapSettings map[string]string

func (m mapSettings) Get(k string) string { return m[k] }

func (m mapSettings) Set(k, v string) error {
	m[k] = v
	return nil
}

type recordingCleaner struct {
	calls   int
	pattern string
	notify  bool
}

func (c *recordingCleaner) RemoveLike(pattern string, notify bool) error {
	c.calls++
	c.pattern, c.notify = pattern, notify
	return nil
}

func init() {
	filesystem.SetMemMapFs()
}

var stampCounter int

func newTestRefresher(settings mapSettings) (*Refresher, *recordingCleaner, *time.Time) {
	stampCounter++
	cleaner := &recordingCleaner{}
	r := NewRefresher(settings, cleaner, fmt.Sprintf("/cache/%d/preview_stamp.json", stampCounter))

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }
	return r, cleaner, &now
}

func TestRefresh(t *testing.T) {
	Convey("Given refreshing every 5 minutes", t, func() {
		settings := mapSettings{
			key.PreviewsEnable:          "true",
			key.PreviewsRefresh:         "true",
			key.PreviewsRefreshInterval: "5",
			key.PreviewsNotifyRefresh:   "false",
		}
		r, cleaner, now := newTestRefresher(settings)

		Convey("The first call refreshes", func() {
			refreshed, err := r.Refresh()
			So(err, ShouldBeNil)
			So(refreshed, ShouldBeTrue)
			So(cleaner.calls, ShouldEqual, 1)
			So(cleaner.pattern, ShouldEqual, LivePattern)
			So(cleaner.notify, ShouldBeFalse)

			Convey("A call within the interval does nothing", func() {
				*now = now.Add(time.Minute)
				refreshed, err := r.Refresh()
				So(err, ShouldBeNil)
				So(refreshed, ShouldBeFalse)
				So(cleaner.calls, ShouldEqual, 1)
			})

			Convey("A call after the interval refreshes again", func() {
				*now = now.Add(6 * time.Minute)
				refreshed, err := r.Refresh()
				So(err, ShouldBeNil)
				So(refreshed, ShouldBeTrue)
				So(cleaner.calls, ShouldEqual, 2)
			})
		})

		Convey("A malformed interval is an error", func() {
			settings[key.PreviewsRefreshInterval] = "often"
			_, err := r.Refresh()
			So(err, ShouldNotBeNil)
			So(cleaner.calls, ShouldEqual, 0)
		})
	})

	Convey("Given periodic refresh disabled", t, func() {
		r, cleaner, _ := newTestRefresher(mapSettings{
			key.PreviewsEnable:          "true",
			key.PreviewsRefresh:         "false",
			key.PreviewsRefreshInterval: "5",
		})

		Convey("Nothing is refreshed", func() {
			refreshed, err := r.Refresh()
			So(err, ShouldBeNil)
			So(refreshed, ShouldBeFalse)
			So(cleaner.calls, ShouldEqual, 0)
		})
	})
}

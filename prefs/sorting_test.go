package prefs

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/twitchkit/twitchkit/filesystem"
)

func TestSorting(t *testing.T) {
	Convey("Given a fresh store", t, func() {
		store, storage := newTestStore(nil)

		Convey("Built-in contexts have their defaults", func() {
			sort, err := store.Sort(FollowedChannels)
			So(err, ShouldBeNil)
			So(*sort.MustGet().By, ShouldEqual, "last_broadcast")
			So(*sort.MustGet().Direction, ShouldEqual, "desc")
			So(sort.MustGet().Period, ShouldBeNil)
		})

		Convey("A single field can be read", func() {
			period, err := store.SortField(Clips, SortPeriod)
			So(err, ShouldBeNil)
			So(period.MustGet(), ShouldEqual, "week")
		})

		Convey("A null field reads as absent", func() {
			direction, err := store.SortField(TopVideos, SortDirection)
			So(err, ShouldBeNil)
			So(direction.IsAbsent(), ShouldBeTrue)
		})

		Convey("Unknown contexts are unset", func() {
			sort, err := store.Sort("nope")
			So(err, ShouldBeNil)
			So(sort.IsAbsent(), ShouldBeTrue)

			field, err := store.SortField("nope", SortBy)
			So(err, ShouldBeNil)
			So(field.IsAbsent(), ShouldBeTrue)
		})

		Convey("Setting a built-in context overwrites all fields", func() {
			ok, err := store.SetSort(ChannelVideos, Sort{By: ptr("time"), Direction: ptr("asc")})
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)

			sort, _ := store.Sort(ChannelVideos)
			So(*sort.MustGet().By, ShouldEqual, "time")
			So(*sort.MustGet().Direction, ShouldEqual, "asc")
			So(sort.MustGet().Period, ShouldBeNil)
		})

		Convey("Setting an unknown, unset context is refused without writing", func() {
			_, err := store.Document()
			So(err, ShouldBeNil)
			before := readRaw(storage)

			ok, err := store.SetSort("nope", Sort{By: ptr("views")})
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
			So(readRaw(storage), ShouldEqual, before)
		})

		Convey("A cleared built-in context can be set again", func() {
			cleared, err := store.ClearList(SortingKey, Clips)
			So(err, ShouldBeNil)
			So(cleared, ShouldBeTrue)

			sort, _ := store.Sort(Clips)
			So(sort.IsAbsent(), ShouldBeTrue)

			ok, err := store.SetSort(Clips, Sort{Period: ptr("day")})
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
		})
	})

	Convey("DefaultSorting returns independent copies", t, func() {
		a := DefaultSorting()
		*a[Clips].Period = "all"
		So(*DefaultSorting()[Clips].Period, ShouldEqual, "week")
	})
}

func TestSortingEmptyContexts(t *testing.T) {
	Convey("Given contexts stored without any field", t, func() {
		path := "/addon_data/empty-sort/storage.json"
		So(filesystem.API().WriteFile(path, []byte(`{
			"sorting": {"custom": null, "other": {}, "partial": {"by": "views"}}
		}`), 0o644), ShouldBeNil)
		storage := NewFileStorage(path)
		store := New(storage, nil)

		Convey("A null context reads as unset", func() {
			sort, err := store.Sort("custom")
			So(err, ShouldBeNil)
			So(sort.IsAbsent(), ShouldBeTrue)
		})

		Convey("An empty object reads as unset", func() {
			sort, err := store.Sort("other")
			So(err, ShouldBeNil)
			So(sort.IsAbsent(), ShouldBeTrue)
		})

		Convey("A context with a field stays set", func() {
			sort, err := store.Sort("partial")
			So(err, ShouldBeNil)
			So(*sort.MustGet().By, ShouldEqual, "views")
		})

		Convey("Setting an empty context is refused without writing", func() {
			_, err := store.Document()
			So(err, ShouldBeNil)
			before := readRaw(storage)

			ok, err := store.SetSort("custom", Sort{By: ptr("views")})
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
			So(readRaw(storage), ShouldEqual, before)
		})
	})
}

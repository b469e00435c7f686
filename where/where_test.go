package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/twitchkit/twitchkit/filesystem"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Preferences() lives in the data directory", func() {
			So(filepath.Dir(Preferences()), ShouldEqual, Data())
			So(filepath.Base(Preferences()), ShouldEqual, "storage.json")
		})

		Convey("Data() honours the override", func() {
			lo.Must0(os.Setenv(EnvDataPath, "/tmp/twitchkit-data"))
			defer os.Unsetenv(EnvDataPath)

			So(Data(), ShouldEqual, "/tmp/twitchkit-data")
		})
	})
}

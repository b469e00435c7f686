package prefs

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSchema(t *testing.T) {
	Convey("Given the document schema", t, func() {
		schema := Schema()
		So(schema, ShouldNotBeNil)

		data, err := json.Marshal(schema)
		So(err, ShouldBeNil)

		Convey("It names every section", func() {
			raw := string(data)
			for _, section := range []string{BlacklistKey, QualitiesKey, SortingKey, LanguagesKey} {
				So(raw, ShouldContainSubstring, `"`+section+`"`)
			}
		})

		Convey("Blacklist entries are described as arrays", func() {
			So(BlacklistEntry{}.JSONSchema().Type, ShouldEqual, "array")
			So(QualityEntry{}.JSONSchema().AdditionalProperties.Required, ShouldResemble, []string{"name", "quality"})
		})
	})
}

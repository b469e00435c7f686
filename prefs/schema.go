package prefs

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// JSONSchema describes the [id, name] array form.
func (BlacklistEntry) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Description: "Blacklisted entry as [id, name].",
		Items:       &jsonschema.Schema{Type: "string"},
	}
}

// JSONSchema describes the single-key {target_id: {name, quality}} form.
func (QualityEntry) JSONSchema() *jsonschema.Schema {
	properties := jsonschema.NewProperties()
	properties.Set("name", &jsonschema.Schema{Type: "string", Description: "Display name of the target."})
	properties.Set("quality", &jsonschema.Schema{Type: "string", Description: "Remembered quality."})

	return &jsonschema.Schema{
		Type:        "object",
		Description: "Default quality keyed by target id.",
		AdditionalProperties: &jsonschema.Schema{
			Type:       "object",
			Properties: properties,
			Required:   []string{"name", "quality"},
		},
	}
}

// Schema returns the JSON Schema of the preferences document.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.AllowAdditionalProperties = true
	reflector.Namer = func(t reflect.Type) string {
		return "prefs." + t.Name()
	}

	return reflector.Reflect(&Document{})
}

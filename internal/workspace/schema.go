package workspace

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}

// StateSchema returns a JSON Schema for a workspace snapshot as served by
// the HTTP API.
func StateSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&State{})
	sch.Title = "vincode workspace state"
	sch.Description = "File tree, view state and editor presets of one workspace."
	return sch
}

// SettingsSchema returns a JSON Schema for the editor presets.
func SettingsSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Settings{})
	sch.Title = "vincode editor settings"
	return sch
}

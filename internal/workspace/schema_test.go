package workspace

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStateSchema(t *testing.T) {
	b, err := MarshalSchema(StateSchema())
	if err != nil {
		t.Fatalf("MarshalSchema: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	props, ok := doc["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema has no properties: %s", b)
	}
	for _, key := range []string{"fileTree", "openFiles", "activeFileId", "mainHtmlFileId", "settings"} {
		if _, ok := props[key]; !ok {
			t.Fatalf("property %s missing", key)
		}
	}
}

func TestSettingsSchemaEnums(t *testing.T) {
	b, err := MarshalSchema(SettingsSchema())
	if err != nil {
		t.Fatalf("MarshalSchema: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"neon"`, `"practice"`, `"tablet"`, `"maximum": 200`} {
		if !strings.Contains(s, want) {
			t.Fatalf("schema missing %s:\n%s", want, s)
		}
	}
}

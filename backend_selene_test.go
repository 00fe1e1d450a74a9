// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// seleneManifest mirrors the selene standard library layout for decoding.
type seleneManifest struct {
	Globals map[string]seleneEntry            `yaml:"globals"`
	Structs map[string]map[string]seleneEntry `yaml:"structs"`
	Base    string                            `yaml:"base"`
	Name    string                            `yaml:"name"`
}

type seleneEntry struct {
	Property string          `yaml:"property"`
	Args     []seleneArgItem `yaml:"args"`
	MustUse  bool            `yaml:"must_use"`
	Method   bool            `yaml:"method"`
}

type seleneArgItem struct {
	Type     any   `yaml:"type"`
	Required *bool `yaml:"required"`
}

func decodeSelene(t *testing.T, text string) seleneManifest {
	t.Helper()

	var manifest seleneManifest
	if err := yaml.Unmarshal([]byte(text), &manifest); err != nil {
		t.Fatalf("manifest is not valid YAML: %v\n%s", err, text)
	}

	return manifest
}

func argTypes(args []seleneArgItem) []any {
	out := make([]any, 0, len(args))
	for _, arg := range args {
		out = append(out, arg.Type)
	}

	return out
}

func optionalArgs(args []seleneArgItem) []bool {
	out := make([]bool, 0, len(args))
	for _, arg := range args {
		out = append(out, arg.Required != nil && !*arg.Required)
	}

	return out
}

func TestSeleneGenerateClamp(t *testing.T) {
	t.Parallel()

	docs := NewDocs()
	mustAddEnum(t, docs, "Color", []EnumValue{{Key: "Red", Value: "0"}, {Key: "Blue", Value: "1"}})
	mustAddClass(t, docs, &Class{
		Name:        "Utils",
		StaticClass: true,
		StaticFunctions: []Function{{
			Name: "Clamp",
			Parameters: []Parameter{
				typedParam("value", "number"),
				typedParam("min", "number"),
				typedParam("max", "number"),
			},
			Returns: []Return{{Typed: Typed{Type: "number"}}},
		}},
	})

	got, err := NewSeleneBackend(SeleneOptions{}).Generate(docs)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := "---\nbase: lua52\nname: helix\nglobals:\n" +
		"  Color.Red:\n    property: read-only\n" +
		"  Color.Blue:\n    property: read-only\n" +
		"  Utils.Clamp:\n    args:\n      - type: number\n      - type: number\n      - type: number\n" +
		"structs: {}\n"
	if got != want {
		t.Fatalf("Generate mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}

	manifest := decodeSelene(t, got)
	if len(manifest.Globals["Utils.Clamp"].Args) != 3 {
		t.Fatalf("Utils.Clamp args = %+v", manifest.Globals["Utils.Clamp"].Args)
	}
}

func TestSeleneGenerateSampleIsValidYAML(t *testing.T) {
	t.Parallel()

	got, err := NewSeleneBackend(SeleneOptions{}).Generate(sampleDocs(t))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	assertNoTrailingWhitespace(t, got)
	manifest := decodeSelene(t, got)

	if manifest.Base != "lua52" || manifest.Name != "helix" {
		t.Fatalf("header = %q/%q", manifest.Base, manifest.Name)
	}

	for _, key := range []string{"Color.Red", "Color.Blue", "Mode.Fast"} {
		if manifest.Globals[key].Property != "read-only" {
			t.Fatalf("enum global %q = %+v", key, manifest.Globals[key])
		}
	}

	ctor := manifest.Globals["Vector"]
	if !ctor.MustUse {
		t.Fatalf("constructor must_use missing: %+v", ctor)
	}

	if diff := cmp.Diff([]bool{true, true, true}, optionalArgs(ctor.Args)); diff != "" {
		t.Fatalf("constructor optional args (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]any{"string", "function"}, argTypes(manifest.Globals["Events.Subscribe"].Args)); diff != "" {
		t.Fatalf("Events.Subscribe args (-want +got):\n%s", diff)
	}

	for _, static := range []string{"Utils", "Events"} {
		if _, ok := manifest.Structs[static]; ok {
			t.Fatalf("static class %q listed in structs", static)
		}
	}

	vector := manifest.Structs["Vector"]
	if vector["X"].Property != "read-only" || !vector["Size"].Method || len(vector["Size"].Args) != 0 {
		t.Fatalf("Vector struct = %+v", vector)
	}

	actor := manifest.Structs["Actor"]
	wantDisplay := []any{map[string]any{"display": "Vector"}}
	if diff := cmp.Diff(wantDisplay, argTypes(actor["SetLocation"].Args)); diff != "" {
		t.Fatalf("SetLocation args (-want +got):\n%s", diff)
	}

	character := manifest.Structs["Character"]
	if diff := cmp.Diff([]any{"any", "boolean"}, argTypes(character["SetHealth"].Args)); diff != "" {
		t.Fatalf("merged SetHealth args (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]bool{false, true}, optionalArgs(character["SetHealth"].Args)); diff != "" {
		t.Fatalf("merged SetHealth optional flags (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]any{"string", "function"}, argTypes(character["Subscribe"].Args)); diff != "" {
		t.Fatalf("Character Subscribe args (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]bool{false, true}, optionalArgs(character["Unsubscribe"].Args)); diff != "" {
		t.Fatalf("Character Unsubscribe optional flags (-want +got):\n%s", diff)
	}
}

func TestSeleneStructIndentation(t *testing.T) {
	t.Parallel()

	docs := sampleDocs(t)
	got, err := NewSeleneBackend(SeleneOptions{}).GenerateClass(docs, mustClass(t, docs, "Actor"))
	if err != nil {
		t.Fatalf("GenerateClass: %v", err)
	}

	want := "globals: {}\nstructs:\n  Actor:\n" +
		"    SetLocation:\n      method: true\n      args:\n        - type:\n            display: Vector\n" +
		"    Subscribe:\n      method: true\n      args:\n        - type: string\n        - type: function\n" +
		"    Unsubscribe:\n      method: true\n      args:\n        - type: string\n        - required: false\n          type: function\n"
	if got != want {
		t.Fatalf("GenerateClass mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}

	decodeSelene(t, got)
}

func TestSeleneStaticClassEventsInGlobals(t *testing.T) {
	t.Parallel()

	docs := NewDocs()
	mustAddClass(t, docs, &Class{Name: "Hub", Events: []Event{{Name: "Start"}}})
	mustAddClass(t, docs, &Class{
		Name:             "Server",
		StaticClass:      true,
		Inheritance:      []string{"Hub"},
		StaticProperties: []StaticProperty{{Name: "Tick", Value: "30"}},
		StaticFunctions:  []Function{{Name: "Subscribe"}, {Name: "Stop"}},
	})

	got, err := NewSeleneBackend(SeleneOptions{}).GenerateClass(docs, mustClass(t, docs, "Server"))
	if err != nil {
		t.Fatalf("GenerateClass: %v", err)
	}

	want := "globals:\n" +
		"  Server.Stop:\n    args: []\n" +
		"  Server.Tick:\n    property: read-only\n" +
		"  Server.Subscribe:\n    args:\n      - type: string\n      - type: function\n" +
		"  Server.Unsubscribe:\n    args:\n      - type: string\n      - required: false\n        type: function\n" +
		"structs: {}\n"
	if got != want {
		t.Fatalf("GenerateClass mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestSeleneTypeRendering(t *testing.T) {
	t.Parallel()

	backend := NewSeleneBackend(SeleneOptions{})
	record := TypeDescriptor{Atoms: []TypeAtom{{Record: []RecordField{{Name: "a", Type: MustParseType("number")}}}}}
	tests := []struct {
		name string
		desc TypeDescriptor
		want schemaArg
	}{
		{name: "primitive", desc: MustParseType("string"), want: schemaArg{Type: "string"}},
		{name: "mapped primitive", desc: MustParseType("float"), want: schemaArg{Type: "number"}},
		{name: "path", desc: MustParseType("AssetPath"), want: schemaArg{Type: "string"}},
		{name: "integer", desc: MustParseType("integer"), want: schemaArg{Type: "number"}},
		{name: "union", desc: MustParseType("number|string"), want: schemaArg{Type: "any"}},
		{name: "primitive array", desc: MustParseType("number[]"), want: schemaArg{Type: "table"}},
		{name: "class", desc: MustParseType("Vector"), want: schemaArg{Display: "Vector"}},
		{name: "class array", desc: MustParseType("Vector[]"), want: schemaArg{Display: "Vector[]"}},
		{name: "record", desc: record, want: schemaArg{Type: "any"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, backend.renderType(tt.desc)); diff != "" {
				t.Fatalf("renderType mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSeleneClassArrayDisplayIsValidYAML(t *testing.T) {
	t.Parallel()

	docs := NewDocs()
	mustAddClass(t, docs, &Class{
		Name:        "Net",
		StaticClass: true,
		StaticFunctions: []Function{{
			Name:       "Send",
			Parameters: []Parameter{typedParam("targets", "Player[]?")},
		}},
	})

	got, err := NewSeleneBackend(SeleneOptions{}).Generate(docs)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	assertContains(t, got, "      - required: false\n        type:\n          display: Player[]\n")
	manifest := decodeSelene(t, got)
	want := []any{map[string]any{"display": "Player[]"}}
	if diff := cmp.Diff(want, argTypes(manifest.Globals["Net.Send"].Args)); diff != "" {
		t.Fatalf("Net.Send args (-want +got):\n%s", diff)
	}
}

func TestMergeArgs(t *testing.T) {
	t.Parallel()

	left := []schemaArg{{Type: "number"}, {Display: "Vector"}}
	right := []schemaArg{{Type: "number", Optional: true}, {Display: "Rotator"}, {Type: "boolean"}}

	want := []schemaArg{
		{Type: "number", Optional: true},
		{Type: "any"},
		{Type: "boolean", Optional: true},
	}
	if diff := cmp.Diff(want, mergeArgs(left, right)); diff != "" {
		t.Fatalf("mergeArgs mismatch (-want +got):\n%s", diff)
	}
}

func TestSeleneEmptyModel(t *testing.T) {
	t.Parallel()

	got, err := NewSeleneBackend(SeleneOptions{Base: "lua51", Name: "game"}).Generate(NewDocs())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if want := "---\nbase: lua51\nname: game\nglobals: {}\nstructs: {}\n"; got != want {
		t.Fatalf("Generate = %q, want %q", got, want)
	}

	decodeSelene(t, got)
}

func TestSeleneGenerateEnum(t *testing.T) {
	t.Parallel()

	got := NewSeleneBackend(SeleneOptions{}).GenerateEnum("Color", []EnumValue{{Key: "Red", Value: "0"}, {Key: "Blue", Value: "1"}})
	want := "globals:\n  Color.Red:\n    property: read-only\n  Color.Blue:\n    property: read-only\n"
	if got != want {
		t.Fatalf("GenerateEnum = %q, want %q", got, want)
	}
}

func TestSeleneOutputName(t *testing.T) {
	t.Parallel()

	if got := NewSeleneBackend(SeleneOptions{}).OutputName(); got != "helix.yml" {
		t.Fatalf("OutputName = %q", got)
	}

	if got := NewSeleneBackend(SeleneOptions{Name: "game"}).OutputName(); got != "game.yml" {
		t.Fatalf("OutputName = %q", got)
	}
}

func TestSeleneMalformedTypeFails(t *testing.T) {
	t.Parallel()

	docs := NewDocs()
	mustAddClass(t, docs, &Class{
		Name:            "Bad",
		StaticFunctions: []Function{{Name: "Run", Parameters: []Parameter{typedParam("x", "|")}}},
	})

	got, err := NewSeleneBackend(SeleneOptions{}).Generate(docs)
	if !errors.Is(err, ErrMalformedType) || !errors.Is(err, ErrRenderClass) {
		t.Fatalf("error = %v", err)
	}

	if got != "" {
		t.Fatalf("partial output: %q", got)
	}
}

func TestSeleneSpecialNamesRoundTrip(t *testing.T) {
	t.Parallel()

	docs := NewDocs()
	mustAddEnum(t, docs, "E", []EnumValue{
		{Key: "line1\nline2", Value: "0"},
		{Key: "tab\there", Value: "1"},
		{Key: "true", Value: "2"},
	})
	mustAddClass(t, docs, &Class{
		Name:       "<<",
		Properties: []Property{{Typed: Typed{Type: "number"}, Name: "x: y"}},
	})

	got, err := NewSeleneBackend(SeleneOptions{Name: "- game"}).Generate(docs)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	manifest := decodeSelene(t, got)
	if manifest.Name != "- game" {
		t.Fatalf("name = %q", manifest.Name)
	}

	for _, key := range []string{"E.line1\nline2", "E.tab\there", "E.true"} {
		if manifest.Globals[key].Property != "read-only" {
			t.Fatalf("enum global %q = %+v\n%s", key, manifest.Globals[key], got)
		}
	}

	merged, ok := manifest.Structs["<<"]
	if !ok || merged["x: y"].Property != "read-only" {
		t.Fatalf("structs = %+v\n%s", manifest.Structs, got)
	}
}

func TestSeleneGenerateEnumSpecialKeys(t *testing.T) {
	t.Parallel()

	got := NewSeleneBackend(SeleneOptions{}).GenerateEnum("E", []EnumValue{{Key: "a\nb", Value: "0"}})
	manifest := decodeSelene(t, got)
	if manifest.Globals["E.a\nb"].Property != "read-only" {
		t.Fatalf("GenerateEnum = %q", got)
	}
}

// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"strings"
	"testing"
)

// sampleDocs builds a small model covering static and instance classes,
// inherited events, operators and enums.
func sampleDocs(t testing.TB) *Docs {
	t.Helper()

	docs := NewDocs()
	mustAddEnum(t, docs, "Color", []EnumValue{
		{Key: "Red", Value: "0"},
		{Key: "Blue", Value: "1"},
	})
	mustAddEnum(t, docs, "Mode", []EnumValue{
		{Key: "Fast", Value: `"fast"`},
	})

	mustAddClass(t, docs, &Class{
		Name:        "Utils",
		StaticClass: true,
		Descriptive: Descriptive{Description: "Utility helpers"},
		StaticFunctions: []Function{{
			Name:        "Clamp",
			Descriptive: Descriptive{Description: "Clamps a value"},
			Parameters: []Parameter{
				typedParam("value", "number"),
				typedParam("min", "number"),
				typedParam("max", "number"),
			},
			Returns: []Return{{Typed: Typed{Type: "number"}}},
		}},
	})

	mustAddClass(t, docs, &Class{
		Name:        "Vector",
		Authority:   AuthorityBoth,
		Descriptive: Descriptive{Description: "3D vector"},
		Constructors: []Constructor{{
			Parameters: []Parameter{
				typedParam("X", "float?"),
				typedParam("Y", "float?"),
				typedParam("Z", "float?"),
			},
		}},
		Properties: []Property{
			{Name: "X", Typed: Typed{Type: "float"}},
			{Name: "Y", Typed: Typed{Type: "float"}, Descriptive: Descriptive{Description: "Y axis"}},
		},
		Functions: []Function{{
			Name:    "Size",
			Returns: []Return{{Typed: Typed{Type: "float"}}},
		}},
		Operators: []Operator{
			{Operator: "__add", RHS: "Vector", Return: "Vector"},
			{Operator: "__unm", Return: "Vector"},
			{Operator: "__lt", RHS: "Vector", Return: "boolean"},
		},
	})

	mustAddClass(t, docs, &Class{
		Name:      "Actor",
		Authority: AuthorityServer,
		Functions: []Function{{
			Name:       "SetLocation",
			Authority:  AuthorityServer,
			Parameters: []Parameter{typedParam("location", "Vector")},
		}},
		Events: []Event{
			{
				Name:      "Ready",
				Arguments: []Parameter{typedParam("self", "Actor")},
			},
			{
				Name:        "Destroy",
				Descriptive: Descriptive{Description: "Triggered when destroyed"},
				Arguments:   []Parameter{typedParam("self", "Actor")},
				Returns:     []Return{{Typed: Typed{Type: "boolean"}}},
			},
		},
	})

	mustAddClass(t, docs, &Class{
		Name:        "Character",
		Authority:   AuthorityServer,
		Inheritance: []string{"Actor"},
		Functions: []Function{
			{
				Name:       "Subscribe",
				Parameters: []Parameter{typedParam("event_name", "string"), typedParam("callback", "function")},
			},
			{
				Name:       "SetHealth",
				Parameters: []Parameter{typedParam("health", "number")},
			},
			{
				Name:       "SetHealth",
				Parameters: []Parameter{typedParam("health", "string"), typedParam("silent", "boolean")},
			},
		},
		Events: []Event{{
			Name:        "Ready",
			Descriptive: Descriptive{Description: "Character is ready"},
			Arguments: []Parameter{
				typedParam("self", "Character"),
				typedParam("reason", "string?"),
			},
		}},
	})

	mustAddClass(t, docs, &Class{
		Name:        "Events",
		StaticClass: true,
		StaticFunctions: []Function{{
			Name:       "Subscribe",
			Parameters: []Parameter{typedParam("event_name", "string"), typedParam("callback", "function")},
			Returns:    []Return{{Typed: Typed{Type: "function"}}},
		}},
	})

	return docs
}

func typedParam(name, typ string) Parameter {
	return Parameter{Name: name, Typed: Typed{Type: typ}}
}

func mustAddClass(t testing.TB, docs *Docs, cls *Class) {
	t.Helper()

	if err := docs.AddClass(cls); err != nil {
		t.Fatalf("AddClass(%s): %v", cls.Name, err)
	}
}

func mustAddEnum(t testing.TB, docs *Docs, name string, values []EnumValue) {
	t.Helper()

	if err := docs.AddEnum(name, values); err != nil {
		t.Fatalf("AddEnum(%s): %v", name, err)
	}
}

func mustClass(t testing.TB, docs *Docs, name string) *Class {
	t.Helper()

	cls, ok := docs.Class(name)
	if !ok {
		t.Fatalf("class %q not found", name)
	}

	return cls
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}

func assertNoTrailingWhitespace(t *testing.T, text string) {
	t.Helper()

	for i, line := range strings.Split(text, "\n") {
		if strings.TrimRight(line, " \t") != line {
			t.Fatalf("line %d has trailing whitespace: %q", i+1, line)
		}
	}
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

/*
Package helixdoc renders helix scripting API schemas into editor and tooling
artifacts.

A schema describes classes, enums, functions, properties, events and
operators. Types are written in a small grammar: alternatives separated by
"|", a "[]" suffix for arrays, a trailing "?" for optional values and inline
record fields given as table properties. Every backend parses types the same
way with ParseType and renders them in its own dialect.

Registered formats:

  - "lua" Lua language server annotations (annotations.lua)
  - "md" markdown API reference (reference.md)
  - "yml" selene standard library manifest (helix.yml)

Load a schema directory and render every format:

	docs, err := helixdoc.LoadDir("schema", helixdoc.LoadOptions{})
	if err != nil {
		return err
	}

	artifacts, err := helixdoc.GenerateAll(ctx, docs)
	if err != nil {
		return err
	}

	for _, artifact := range artifacts {
		fmt.Println(artifact.Name, len(artifact.Content))
	}

Build a model in code and render one format:

	docs := helixdoc.NewDocs()
	_ = docs.AddEnum("Color", []helixdoc.EnumValue{
		{Key: "Red", Value: "0"},
		{Key: "Blue", Value: "1"},
	})
	_ = docs.AddClass(&helixdoc.Class{
		Name:        "Utils",
		StaticClass: true,
		StaticFunctions: []helixdoc.Function{{
			Name: "Clamp",
			Parameters: []helixdoc.Parameter{
				{Name: "value", Typed: helixdoc.Typed{Type: "number"}},
				{Name: "min", Typed: helixdoc.Typed{Type: "number"}},
				{Name: "max", Typed: helixdoc.Typed{Type: "number"}},
			},
			Returns: []helixdoc.Return{{Typed: helixdoc.Typed{Type: "number"}}},
		}},
	})

	artifact, err := helixdoc.Render(docs, helixdoc.FormatLua)
	if err != nil {
		return err
	}

	fmt.Print(artifact.Content)

Events declared by a class and its bases are flattened by ResolveEvents and
rendered as typed Subscribe/Unsubscribe overloads. Only the Events class keeps
its own Subscribe and Unsubscribe declarations.
*/
package helixdoc

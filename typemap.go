// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import "strings"

// pathSuffix marks string-like path types, e.g. "AssetPath".
const pathSuffix = "Path"

// luaPrimitives is the set of names treated as native Lua types rather than
// references to documented classes.
var luaPrimitives = []string{
	"string",
	"number",
	"integer",
	"boolean",
	"table",
	"function",
	"thread",
	"userdata",
	"nil",
	"any",
}

// BaseTypeName applies the mapping shared by every backend.
func BaseTypeName(name string) string {
	if strings.HasSuffix(name, pathSuffix) {
		return "string"
	}

	switch name {
	case "float":
		return "number"
	default:
		return name
	}
}

// TypeMapper maps schema base type names to backend-native names.
// Override is consulted first; names it does not handle fall back to BaseTypeName.
type TypeMapper struct {
	Override   func(name string) (string, bool)
	primitives map[string]struct{}
}

// NewTypeMapper builds a mapper with an optional override and primitive set.
func NewTypeMapper(override func(name string) (string, bool), primitives []string) TypeMapper {
	set := make(map[string]struct{}, len(primitives))
	for _, name := range primitives {
		set[name] = struct{}{}
	}

	return TypeMapper{Override: override, primitives: set}
}

// Map returns the backend-native name for a base type name.
func (m TypeMapper) Map(name string) string {
	if m.Override != nil {
		if mapped, ok := m.Override(name); ok {
			return mapped
		}
	}

	return BaseTypeName(name)
}

// IsPrimitive reports whether an already mapped name is native to the backend.
func (m TypeMapper) IsPrimitive(mapped string) bool {
	_, ok := m.primitives[mapped]
	return ok
}

// overrideTable adapts a static lookup table to a TypeMapper override.
func overrideTable(table map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		mapped, ok := table[name]
		return mapped, ok
	}
}

// chainOverrides consults overrides in order and returns the first hit.
func chainOverrides(overrides ...func(string) (string, bool)) func(string) (string, bool) {
	return func(name string) (string, bool) {
		for _, override := range overrides {
			if override == nil {
				continue
			}

			if mapped, ok := override(name); ok {
				return mapped, true
			}
		}

		return "", false
	}
}

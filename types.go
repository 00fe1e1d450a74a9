// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"fmt"
	"strings"
)

const (
	// unionSeparator splits alternatives of a raw type string.
	unionSeparator = "|"
	// arraySuffix marks an atom as an array of its base type.
	arraySuffix = "[]"
	// optionalSuffix marks a raw type as optional.
	optionalSuffix = "?"
)

// TypeAtom is one alternative of a union type.
//
// Inline record atoms have a non-nil Record and an empty Name; the record
// literal is synthesized by each backend with RecordLiteral.
type TypeAtom struct {
	Name    string
	IsArray bool
	Record  []RecordField
}

// IsRecord reports whether the atom is an inline record type.
func (a TypeAtom) IsRecord() bool {
	return a.Record != nil
}

// RecordField is one named field of an inline record atom.
type RecordField struct {
	Name string
	Type TypeDescriptor
}

// TypeDescriptor is the parsed, backend-independent form of a raw type string.
// Atom order is preserved and duplicates are kept.
type TypeDescriptor struct {
	Optional bool
	Atoms    []TypeAtom
}

// ParseType parses a typed element into a descriptor.
//
// A trailing "?" or a present default makes the descriptor optional. Inline
// record fields bypass union splitting and produce a single record atom.
func ParseType(el Typed) (TypeDescriptor, error) {
	raw := strings.TrimSpace(el.Type)
	if raw == "" {
		return TypeDescriptor{}, fmt.Errorf("%w: empty type", ErrMalformedType)
	}

	desc := TypeDescriptor{Optional: el.Default != nil}
	typeString := raw
	if strings.HasSuffix(typeString, optionalSuffix) {
		desc.Optional = true
		typeString = strings.TrimSuffix(typeString, optionalSuffix)
	}

	if el.TableProperties != nil {
		record, err := parseRecordFields(el.TableProperties)
		if err != nil {
			return TypeDescriptor{}, err
		}

		desc.Atoms = []TypeAtom{{
			IsArray: strings.HasSuffix(typeString, arraySuffix),
			Record:  record,
		}}
		return desc, nil
	}

	alternatives := strings.Split(typeString, unionSeparator)
	desc.Atoms = make([]TypeAtom, 0, len(alternatives))
	for _, alternative := range alternatives {
		name := strings.TrimSpace(alternative)
		atom := TypeAtom{Name: name}
		if strings.HasSuffix(name, arraySuffix) {
			atom.IsArray = true
			atom.Name = strings.TrimSpace(strings.TrimSuffix(name, arraySuffix))
		}

		if atom.Name == "" {
			return TypeDescriptor{}, fmt.Errorf("%w: empty alternative in %q", ErrMalformedType, raw)
		}

		desc.Atoms = append(desc.Atoms, atom)
	}

	return desc, nil
}

// MustParseType is like ParseType but panics on malformed input. Intended for
// literals in tests and static tables.
func MustParseType(raw string) TypeDescriptor {
	desc, err := ParseType(Typed{Type: raw})
	if err != nil {
		panic(err)
	}

	return desc
}

// parseRecordFields parses inline record fields recursively.
func parseRecordFields(props []TableProperty) ([]RecordField, error) {
	out := make([]RecordField, 0, len(props))
	for _, prop := range props {
		fieldType, err := ParseType(prop.Typed)
		if err != nil {
			return nil, fmt.Errorf("record field %q: %w", prop.Name, err)
		}

		out = append(out, RecordField{Name: prop.Name, Type: fieldType})
	}

	return out, nil
}

// RecordLiteral renders record fields as "{ name: type, ... }" using the
// caller's descriptor rendering for nested fields.
func RecordLiteral(fields []RecordField, render func(TypeDescriptor) string) string {
	if len(fields) == 0 {
		return "{}"
	}

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field.Name+": "+render(field.Type))
	}

	return "{ " + strings.Join(parts, ", ") + " }"
}

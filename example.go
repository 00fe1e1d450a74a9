// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// ExampleModeAll passes every declared parameter in usage examples.
	ExampleModeAll ExampleMode = "all"
	// ExampleModeRequired passes required parameters only.
	ExampleModeRequired ExampleMode = "required"
)

// ExampleMode configures parameter coverage of generated usage examples.
type ExampleMode string

// exampleScalarPlaceholders provides literal arguments for primitive Lua types.
var exampleScalarPlaceholders = map[string]string{
	"string":   `"<string>"`,
	"number":   "0",
	"integer":  "0",
	"boolean":  "false",
	"table":    "{}",
	"function": "function() end",
	"nil":      "nil",
	"any":      "nil",
}

// luaKeywords cannot be used as example variable names.
var luaKeywords = map[string]struct{}{
	"and": {}, "break": {}, "do": {}, "else": {}, "elseif": {}, "end": {},
	"false": {}, "for": {}, "function": {}, "goto": {}, "if": {}, "in": {},
	"local": {}, "nil": {}, "not": {}, "or": {}, "repeat": {}, "return": {},
	"then": {}, "true": {}, "until": {}, "while": {},
}

// exampleBuilder renders short Lua usage snippets for documented members.
type exampleBuilder struct {
	types TypeMapper
	mode  ExampleMode
}

// normalizeExampleMode validates mode and falls back to required parameters.
func normalizeExampleMode(mode ExampleMode) (ExampleMode, error) {
	switch ExampleMode(strings.ToLower(strings.TrimSpace(string(mode)))) {
	case "", ExampleModeRequired:
		return ExampleModeRequired, nil
	case ExampleModeAll:
		return ExampleModeAll, nil
	default:
		return "", fmt.Errorf("unknown example mode %q", mode)
	}
}

// constructor renders "local vector = Vector(...)".
func (e exampleBuilder) constructor(cls *Class, ctor Constructor) string {
	return "local " + exampleVariable(cls.Name) + " = " + cls.Name + "(" + e.arguments(ctor.Parameters) + ")"
}

// staticCall renders a call through the class table.
func (e exampleBuilder) staticCall(cls *Class, fn Function) string {
	return e.assign(fn.Returns, cls.Name+"."+fn.Name+"("+e.arguments(fn.Parameters)+")")
}

// methodCall renders a call on an instance variable.
func (e exampleBuilder) methodCall(cls *Class, fn Function) string {
	return e.assign(fn.Returns, exampleVariable(cls.Name)+":"+fn.Name+"("+e.arguments(fn.Parameters)+")")
}

// subscribe renders an event subscription with a named-argument callback.
func (e exampleBuilder) subscribe(sub Subscription, event Event) string {
	receiver := exampleVariable(sub.Class) + ":"
	if sub.Static {
		receiver = sub.Class + "."
	}

	names := make([]string, 0, len(event.Arguments))
	for _, arg := range event.Arguments {
		names = append(names, luaParameterName(arg.Name))
	}

	return receiver + subscribeFunction + "(" + luaQuote(event.Name) + ", function(" + strings.Join(names, ", ") + ")\n" +
		"    -- handle " + event.Name + "\nend)"
}

// assign prefixes a call with local bindings for its returns.
func (e exampleBuilder) assign(returns []Return, call string) string {
	if len(returns) == 0 {
		return call
	}

	names := make([]string, 0, len(returns))
	seen := make(map[string]struct{}, len(returns))
	for i, ret := range returns {
		name := exampleIdentifier(ret.Name)
		if name == "" {
			name = "result"
			if len(returns) > 1 {
				name = fmt.Sprintf("result%d", i+1)
			}
		}

		if _, ok := seen[name]; ok {
			name = fmt.Sprintf("%s%d", name, i+1)
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	return "local " + strings.Join(names, ", ") + " = " + call
}

// arguments renders the argument list honoring the example mode.
// Variadic parameters are never expanded.
func (e exampleBuilder) arguments(params []Parameter) string {
	args := make([]string, 0, len(params))
	for _, param := range params {
		if luaParameterName(param.Name) == variadicParameterName {
			break
		}

		desc, err := ParseType(param.Typed)
		if err != nil {
			args = append(args, "nil")
			continue
		}

		if desc.Optional && e.mode != ExampleModeAll {
			break
		}

		if param.Default != nil && e.mode == ExampleModeAll {
			args = append(args, luaLiteral(*param.Default))
			continue
		}

		args = append(args, e.placeholder(param.Name, desc))
	}

	return strings.Join(args, ", ")
}

// placeholder returns a literal or variable for one argument.
func (e exampleBuilder) placeholder(name string, desc TypeDescriptor) string {
	if len(desc.Atoms) == 0 {
		return "nil"
	}

	atom := desc.Atoms[0]
	switch {
	case atom.IsArray:
		return "{}"
	case atom.IsRecord():
		fields := make([]string, 0, len(atom.Record))
		for _, field := range atom.Record {
			fields = append(fields, field.Name+" = "+e.placeholder(field.Name, field.Type))
		}

		if len(fields) == 0 {
			return "{}"
		}

		return "{ " + strings.Join(fields, ", ") + " }"
	}

	mapped := e.types.Map(atom.Name)
	if value, ok := exampleScalarPlaceholders[mapped]; ok {
		return value
	}

	if variable := exampleIdentifier(name); variable != "" {
		return variable
	}

	return exampleVariable(mapped)
}

// exampleVariable derives a local variable name from a class name.
func exampleVariable(className string) string {
	name := exampleIdentifier(className)
	if name == "" {
		return "value"
	}

	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	name = string(runes)
	if _, ok := luaKeywords[name]; ok {
		return "my_" + name
	}

	return name
}

// exampleIdentifier keeps letters, digits and underscores of name.
func exampleIdentifier(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}

		return -1
	}, name)

	if name == "" || unicode.IsDigit([]rune(name)[0]) {
		return ""
	}

	if _, ok := luaKeywords[name]; ok {
		return "my_" + name
	}

	return name
}

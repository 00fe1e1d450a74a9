// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"fmt"
	"strings"
)

const (
	// defaultLuaOutputName is the artifact name of the annotation backend.
	defaultLuaOutputName = "annotations.lua"
	// luaHeader marks the file as a definition file for the language server.
	luaHeader = "---@meta"
	// missingParameterName replaces parameters declared without a name.
	missingParameterName = "missing_name"
	// variadicParameterName replaces parameter names ending with "...".
	variadicParameterName = "..."
)

// luaAuthorityBadges are rendered as the first docstring line of classes and functions.
var luaAuthorityBadges = map[Authority]string{
	AuthorityServer:    "<img src=\"https://static.helix-cdn.com/docs/server-only.png\" height=\"10\"> `Server Side`",
	AuthorityClient:    "<img src=\"https://static.helix-cdn.com/docs/client-only.png\" height=\"10\"> `Client Side`",
	AuthorityAuthority: "<img src=\"https://static.helix-cdn.com/docs/authority-only.png\" height=\"10\"> `Authority Side`",
	AuthorityBoth:      "<img src=\"https://static.helix-cdn.com/docs/both.png\" height=\"10\"> `Client/Server Side`",
}

// luaTypeOverrides holds schema names the language server spells differently.
var luaTypeOverrides = map[string]string{
	"double": "number",
	"bool":   "boolean",
}

// LuaOptions configures the annotation backend.
type LuaOptions struct {
	// OutputName overrides the artifact file name.
	OutputName string
}

// LuaBackend renders language server annotations.
type LuaBackend struct {
	outputName string
	types      TypeMapper
}

// NewLuaBackend builds an annotation backend with normalized options.
func NewLuaBackend(opt LuaOptions) *LuaBackend {
	outputName := strings.TrimSpace(opt.OutputName)
	if outputName == "" {
		outputName = defaultLuaOutputName
	}

	return &LuaBackend{
		outputName: outputName,
		types:      NewTypeMapper(overrideTable(luaTypeOverrides), luaPrimitives),
	}
}

// OutputName returns the artifact file name.
func (b *LuaBackend) OutputName() string {
	return b.outputName
}

// Generate renders the header, every class and then every enum.
func (b *LuaBackend) Generate(docs *Docs) (string, error) {
	var out strings.Builder
	out.WriteString(luaHeader)

	for _, cls := range docs.Classes() {
		block, err := b.GenerateClass(docs, cls)
		if err != nil {
			return "", fmt.Errorf("%w %q: %w", ErrRenderClass, cls.Name, err)
		}

		out.WriteString(block)
	}

	for _, enum := range docs.Enums() {
		out.WriteString(b.GenerateEnum(enum.Name, enum.Values))
	}

	out.WriteByte('\n')
	return out.String(), nil
}

// GenerateClass renders one class block with its synthesized event surface.
func (b *LuaBackend) GenerateClass(classes ClassTable, cls *Class) (string, error) {
	fields, err := b.fields(cls.Properties)
	if err != nil {
		return "", err
	}

	operators, err := b.operators(cls.Operators)
	if err != nil {
		return "", err
	}

	constructors, err := b.constructors(cls)
	if err != nil {
		return "", err
	}

	staticFunctions, err := b.functions(RenderableFunctions(cls, cls.StaticFunctions), cls.Name+".")
	if err != nil {
		return "", fmt.Errorf("static functions: %w", err)
	}

	functions, err := b.functions(RenderableFunctions(cls, cls.Functions), cls.Name+":")
	if err != nil {
		return "", fmt.Errorf("functions: %w", err)
	}

	subscription, err := SubscriptionFor(classes, cls)
	if err != nil {
		return "", err
	}

	events, err := b.subscription(subscription)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.WriteString("\n\n---")
	out.WriteString(luaAuthority(cls.Authority))
	out.WriteString("\n---\n---")
	out.WriteString(luaDocstring(cls.Descriptive))
	out.WriteString("\n---@class ")
	out.WriteString(cls.Name)
	if len(cls.Inheritance) > 0 {
		out.WriteString(" : ")
		out.WriteString(strings.Join(cls.Inheritance, ", "))
	}

	out.WriteString(fields)
	out.WriteString(operators)
	out.WriteString(constructors)
	out.WriteByte('\n')
	out.WriteString(cls.Name)
	out.WriteString(" = {}")
	out.WriteString(luaStaticFields(cls))
	out.WriteString(staticFunctions)
	out.WriteString(functions)
	out.WriteString(events)
	return out.String(), nil
}

// GenerateEnum renders one enum table in declaration order.
func (b *LuaBackend) GenerateEnum(name string, values []EnumValue) string {
	var out strings.Builder
	out.WriteString("\n\n---@enum ")
	out.WriteString(name)
	out.WriteByte('\n')
	out.WriteString(name)
	out.WriteString(" = {")
	for i, value := range values {
		out.WriteString("\n    [")
		out.WriteString(luaQuote(value.Key))
		out.WriteString("] = ")
		out.WriteString(luaLiteral(value.Value))
		if i < len(values)-1 {
			out.WriteByte(',')
		}
	}

	out.WriteString("\n}")
	return out.String()
}

// renderType renders a descriptor without the optional marker.
func (b *LuaBackend) renderType(desc TypeDescriptor) string {
	parts := make([]string, 0, len(desc.Atoms))
	for _, atom := range desc.Atoms {
		name := b.types.Map(atom.Name)
		if atom.IsRecord() {
			name = RecordLiteral(atom.Record, b.renderType)
		}

		if atom.IsArray {
			name += arraySuffix
		}

		parts = append(parts, name)
	}

	return strings.Join(parts, unionSeparator)
}

// fields renders one field annotation per property.
func (b *LuaBackend) fields(props []Property) (string, error) {
	var out strings.Builder
	for _, prop := range props {
		desc, err := ParseType(prop.Typed)
		if err != nil {
			return "", fmt.Errorf("property %q: %w", prop.Name, err)
		}

		out.WriteString(luaLine("\n---@field", prop.Name+optionalMarker(desc), b.renderType(desc), luaInlineDocstring(prop.Descriptive)))
	}

	return out.String(), nil
}

// operators renders recognized operator overloads and drops the rest.
func (b *LuaBackend) operators(ops []Operator) (string, error) {
	var out strings.Builder
	for _, op := range ops {
		token, ok := OperatorToken(op.Operator)
		if !ok {
			continue
		}

		ret, err := ParseType(Typed{Type: op.Return})
		if err != nil {
			return "", fmt.Errorf("operator %q return: %w", op.Operator, err)
		}

		out.WriteString("\n---@operator ")
		out.WriteString(token)
		if strings.TrimSpace(op.RHS) != "" {
			rhs, err := ParseType(Typed{Type: op.RHS})
			if err != nil {
				return "", fmt.Errorf("operator %q rhs: %w", op.Operator, err)
			}

			out.WriteString("(" + b.renderType(rhs) + ")")
		}

		out.WriteString(": " + b.renderType(ret))
	}

	return out.String(), nil
}

// constructors renders one overload annotation per constructor.
func (b *LuaBackend) constructors(cls *Class) (string, error) {
	var out strings.Builder
	for i, ctor := range cls.Constructors {
		params, err := b.inlineParams(ctor.Parameters)
		if err != nil {
			return "", fmt.Errorf("constructor #%d: %w", i+1, err)
		}

		out.WriteString("\n---@overload fun(" + params + "): " + cls.Name)
	}

	return out.String(), nil
}

// functions renders function declarations addressed through accessor.
func (b *LuaBackend) functions(fns []Function, accessor string) (string, error) {
	var out strings.Builder
	for _, fn := range fns {
		block, err := b.function(fn, accessor)
		if err != nil {
			return "", fmt.Errorf("function %q: %w", fn.Name, err)
		}

		out.WriteString(block)
	}

	return out.String(), nil
}

func (b *LuaBackend) function(fn Function, accessor string) (string, error) {
	var out strings.Builder
	out.WriteString("\n\n---")
	out.WriteString(luaAuthority(fn.Authority))
	out.WriteString("\n---\n---")
	out.WriteString(luaDocstring(fn.Descriptive))

	names := make([]string, 0, len(fn.Parameters))
	for _, param := range fn.Parameters {
		desc, err := ParseType(param.Typed)
		if err != nil {
			return "", fmt.Errorf("parameter %q: %w", param.Name, err)
		}

		name := luaParameterName(param.Name)
		names = append(names, name)
		out.WriteString(luaLine("\n---@param", name+optionalMarker(desc), b.renderType(desc), luaParamDocstring(param)))
	}

	for _, ret := range fn.Returns {
		desc, err := ParseType(ret.Typed)
		if err != nil {
			return "", fmt.Errorf("return %q: %w", ret.Name, err)
		}

		out.WriteString(luaLine("\n---@return", b.renderType(desc)+optionalMarker(desc), luaInlineDocstring(ret.Descriptive)))
	}

	out.WriteString("\nfunction ")
	out.WriteString(accessor)
	out.WriteString(fn.Name)
	out.WriteString("(" + strings.Join(names, ", ") + ") end")
	return out.String(), nil
}

// inlineParams renders "name?: type" pairs for overload signatures.
func (b *LuaBackend) inlineParams(params []Parameter) (string, error) {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		desc, err := ParseType(param.Typed)
		if err != nil {
			return "", fmt.Errorf("parameter %q: %w", param.Name, err)
		}

		parts = append(parts, luaParameterName(param.Name)+optionalMarker(desc)+": "+b.renderType(desc))
	}

	return strings.Join(parts, ", "), nil
}

// subscription renders the synthesized Subscribe/Unsubscribe pair.
func (b *LuaBackend) subscription(sub Subscription) (string, error) {
	if sub.Empty() {
		return "", nil
	}

	selfParam := "self: " + sub.Class + ", "
	separator := ":"
	if sub.Static {
		selfParam = ""
		separator = "."
	}

	var subOverloads, unsubOverloads strings.Builder
	for _, event := range sub.Events {
		callback, err := b.callbackSignature(sub.Class, event)
		if err != nil {
			return "", fmt.Errorf("event %q: %w", event.Name, err)
		}

		head := "\n---@overload fun(" + selfParam + "event_name: " + luaQuote(event.Name) + ", callback: " + callback + ")"
		doc := luaInlineDocstring(event.Descriptive)
		subOverloads.WriteString(luaLine(head+": "+callback, doc))
		unsubOverloads.WriteString(luaLine(head, doc))
	}

	var out strings.Builder
	out.WriteString("\n\n---Subscribe to an event")
	out.WriteString("\n---@param event_name string @Name of the event to subscribe to")
	out.WriteString("\n---@param callback function @Function to call when the event is triggered")
	out.WriteString("\n---@return function @The callback function passed")
	out.WriteString(subOverloads.String())
	out.WriteString("\nfunction " + sub.Class + separator + "Subscribe(event_name, callback) end")
	out.WriteString("\n\n---Unsubscribe from an event")
	out.WriteString("\n---@param event_name string @Name of the event to unsubscribe from")
	out.WriteString("\n---@param callback? function @Optional callback to unsubscribe (if no callback is passed then all callbacks in this Package will be unsubscribed from this event)")
	out.WriteString(unsubOverloads.String())
	out.WriteString("\nfunction " + sub.Class + separator + "Unsubscribe(event_name, callback) end")
	return out.String(), nil
}

// callbackSignature renders "fun(args): returns" for one event. A leading
// "self" argument is typed as the declaring class and returns are optional.
func (b *LuaBackend) callbackSignature(className string, event Event) (string, error) {
	args := make([]string, 0, len(event.Arguments))
	for i, arg := range event.Arguments {
		desc, err := ParseType(arg.Typed)
		if err != nil {
			return "", fmt.Errorf("argument %q: %w", arg.Name, err)
		}

		rendered := b.renderType(desc)
		if i == 0 && arg.Name == "self" {
			rendered = className
		}

		args = append(args, luaParameterName(arg.Name)+optionalMarker(desc)+": "+rendered)
	}

	signature := "fun(" + strings.Join(args, ", ") + ")"
	if len(event.Returns) == 0 {
		return signature, nil
	}

	rets := make([]string, 0, len(event.Returns))
	for _, ret := range event.Returns {
		desc, err := ParseType(ret.Typed)
		if err != nil {
			return "", fmt.Errorf("return %q: %w", ret.Name, err)
		}

		rets = append(rets, b.renderType(desc)+optionalSuffix)
	}

	return signature + ": " + strings.Join(rets, ", "), nil
}

// luaStaticFields renders class-level constant assignments.
func luaStaticFields(cls *Class) string {
	var out strings.Builder
	for _, field := range cls.StaticProperties {
		out.WriteString("\n" + cls.Name + "." + field.Name + " = " + luaLiteral(field.Value))
	}

	return out.String()
}

// luaAuthority returns the authority badge, falling back to both sides.
func luaAuthority(authority Authority) string {
	return luaAuthorityBadges[authority.Normalized()]
}

// luaDocstring returns the preferred description on one comment line.
func luaDocstring(d Descriptive) string {
	return strings.ReplaceAll(normalizeLineEndings(d.Docstring()), "\n", "<br>")
}

// luaInlineDocstring returns "@doc" or an empty string.
func luaInlineDocstring(d Descriptive) string {
	doc := luaDocstring(d)
	if doc == "" {
		return ""
	}

	return "@" + doc
}

// luaParamDocstring appends the default value hint to the inline docstring.
func luaParamDocstring(param Parameter) string {
	doc := luaInlineDocstring(param.Descriptive)
	if param.Default == nil {
		return doc
	}

	hint := "(Default: " + param.Default.Text() + ")"
	if doc == "" {
		return "@" + hint
	}

	return doc + " " + hint
}

// luaParameterName applies placeholder and variadic naming rules.
func luaParameterName(name string) string {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return missingParameterName
	case strings.HasSuffix(name, variadicParameterName):
		return variadicParameterName
	default:
		return name
	}
}

// luaLiteral renders a raw literal, treating an absent value as nil.
func luaLiteral(value Literal) string {
	text := strings.TrimSpace(value.String())
	if text == "" || text == "null" {
		return "nil"
	}

	return text
}

// luaQuoteEscaper escapes what a Lua short string cannot hold raw.
var luaQuoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\x00", `\000`,
)

// luaQuote renders a double-quoted Lua string.
func luaQuote(value string) string {
	return `"` + luaQuoteEscaper.Replace(value) + `"`
}

// luaLine joins non-empty parts with single spaces.
func luaLine(parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, " ")
}

// optionalMarker returns "?" for optional descriptors.
func optionalMarker(desc TypeDescriptor) string {
	if desc.Optional {
		return optionalSuffix
	}

	return ""
}

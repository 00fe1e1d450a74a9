// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// defaultSeleneBase is the selene standard library the manifest extends.
	defaultSeleneBase = "lua52"
	// defaultSeleneName is the manifest name and output file stem.
	defaultSeleneName = "helix"
	// seleneAny is the generic type of the manifest grammar.
	seleneAny = "any"
	// seleneTable replaces arrays of primitive types.
	seleneTable = "table"
)

// seleneTypeOverrides narrows names selene has no spelling for.
var seleneTypeOverrides = map[string]string{
	"integer": "number",
}

// SeleneOptions configures the selene standard library backend.
type SeleneOptions struct {
	// Base is the selene standard library to extend. Default "lua52".
	Base string
	// Name is the manifest name. Default "helix".
	Name string
	// OutputName overrides the artifact file name. Default "<Name>.yml".
	OutputName string
}

// SeleneBackend renders a selene standard library manifest.
type SeleneBackend struct {
	base       string
	name       string
	outputName string
	types      TypeMapper
}

// NewSeleneBackend builds a selene backend with normalized options.
func NewSeleneBackend(opt SeleneOptions) *SeleneBackend {
	base := strings.TrimSpace(opt.Base)
	if base == "" {
		base = defaultSeleneBase
	}

	name := strings.TrimSpace(opt.Name)
	if name == "" {
		name = defaultSeleneName
	}

	outputName := strings.TrimSpace(opt.OutputName)
	if outputName == "" {
		outputName = name + ".yml"
	}

	return &SeleneBackend{
		base:       base,
		name:       name,
		outputName: outputName,
		types: NewTypeMapper(
			chainOverrides(overrideTable(seleneTypeOverrides), overrideTable(luaTypeOverrides)),
			luaPrimitives,
		),
	}
}

// OutputName returns the artifact file name.
func (b *SeleneBackend) OutputName() string {
	return b.outputName
}

// Generate renders the header, the globals section and the structs section.
func (b *SeleneBackend) Generate(docs *Docs) (string, error) {
	globals := newMemberSet()
	for _, enum := range docs.Enums() {
		addEnumGlobals(globals, enum.Name, enum.Values)
	}

	structs := make([]seleneStruct, 0)
	for _, cls := range docs.Classes() {
		if err := b.addClassGlobals(globals, docs, cls); err != nil {
			return "", fmt.Errorf("%w %q: %w", ErrRenderClass, cls.Name, err)
		}

		if cls.StaticClass {
			continue
		}

		members, err := b.structMembers(docs, cls)
		if err != nil {
			return "", fmt.Errorf("%w %q: %w", ErrRenderClass, cls.Name, err)
		}

		structs = append(structs, seleneStruct{Name: cls.Name, Members: members})
	}

	root := yamlMappingNode()
	appendYAMLEntry(root, "base", yamlScalarNode("!!str", b.base))
	appendYAMLEntry(root, "name", yamlScalarNode("!!str", b.name))
	appendYAMLEntry(root, "globals", membersNode(globals))
	appendYAMLEntry(root, "structs", structsNode(structs))

	data, err := marshalManifestNode(root)
	if err != nil {
		return "", err
	}

	return "---\n" + string(data), nil
}

// GenerateClass renders the globals and struct entries contributed by one
// class as a standalone manifest fragment.
func (b *SeleneBackend) GenerateClass(classes ClassTable, cls *Class) (string, error) {
	globals := newMemberSet()
	if err := b.addClassGlobals(globals, classes, cls); err != nil {
		return "", err
	}

	var structs []seleneStruct
	if !cls.StaticClass {
		members, err := b.structMembers(classes, cls)
		if err != nil {
			return "", err
		}

		structs = append(structs, seleneStruct{Name: cls.Name, Members: members})
	}

	root := yamlMappingNode()
	appendYAMLEntry(root, "globals", membersNode(globals))
	appendYAMLEntry(root, "structs", structsNode(structs))

	data, err := marshalManifestNode(root)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// GenerateEnum renders the read-only globals of one enum as a manifest fragment.
func (b *SeleneBackend) GenerateEnum(name string, values []EnumValue) string {
	globals := newMemberSet()
	addEnumGlobals(globals, name, values)

	root := yamlMappingNode()
	appendYAMLEntry(root, "globals", membersNode(globals))

	data, err := marshalManifestNode(root)
	if err != nil {
		return ""
	}

	return string(data)
}

// addEnumGlobals adds one read-only property per enum value.
func addEnumGlobals(globals *memberSet, name string, values []EnumValue) {
	for _, value := range values {
		globals.add(schemaMember{Key: name + "." + value.Key, Property: true})
	}
}

// addClassGlobals adds constructors, static functions, static properties and
// the static event block of one class.
func (b *SeleneBackend) addClassGlobals(globals *memberSet, classes ClassTable, cls *Class) error {
	for i, ctor := range cls.Constructors {
		args, err := b.args(ctor.Parameters)
		if err != nil {
			return fmt.Errorf("constructor #%d: %w", i+1, err)
		}

		globals.add(schemaMember{Key: cls.Name, MustUse: true, Args: args})
	}

	for _, fn := range RenderableFunctions(cls, cls.StaticFunctions) {
		args, err := b.args(fn.Parameters)
		if err != nil {
			return fmt.Errorf("static function %q: %w", fn.Name, err)
		}

		globals.add(schemaMember{Key: cls.Name + "." + fn.Name, Args: args})
	}

	for _, field := range cls.StaticProperties {
		globals.add(schemaMember{Key: cls.Name + "." + field.Name, Property: true})
	}

	if !cls.StaticClass {
		return nil
	}

	subscription, err := SubscriptionFor(classes, cls)
	if err != nil {
		return err
	}

	if !subscription.Empty() {
		for _, member := range subscriptionMembers(cls.Name + ".") {
			globals.add(member)
		}
	}

	return nil
}

// structMembers collects the instance surface of one non-static class.
func (b *SeleneBackend) structMembers(classes ClassTable, cls *Class) (*memberSet, error) {
	members := newMemberSet()
	for _, prop := range cls.Properties {
		members.add(schemaMember{Key: prop.Name, Property: true})
	}

	for _, fn := range RenderableFunctions(cls, cls.Functions) {
		args, err := b.args(fn.Parameters)
		if err != nil {
			return nil, fmt.Errorf("function %q: %w", fn.Name, err)
		}

		members.add(schemaMember{Key: fn.Name, Method: true, Args: args})
	}

	subscription, err := SubscriptionFor(classes, cls)
	if err != nil {
		return nil, err
	}

	if !subscription.Empty() {
		for _, member := range subscriptionMembers("") {
			member.Method = true
			members.add(member)
		}
	}

	return members, nil
}

// subscriptionMembers returns the synthesized Subscribe/Unsubscribe entries.
func subscriptionMembers(prefix string) []schemaMember {
	return []schemaMember{
		{
			Key:  prefix + subscribeFunction,
			Args: []schemaArg{{Type: "string"}, {Type: "function"}},
		},
		{
			Key:  prefix + unsubscribeFunction,
			Args: []schemaArg{{Type: "string"}, {Type: "function", Optional: true}},
		},
	}
}

// args renders the positional argument list of one function-like member.
func (b *SeleneBackend) args(params []Parameter) ([]schemaArg, error) {
	out := make([]schemaArg, 0, len(params))
	for _, param := range params {
		desc, err := ParseType(param.Typed)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", param.Name, err)
		}

		arg := b.renderType(desc)
		arg.Optional = desc.Optional
		out = append(out, arg)
	}

	return out, nil
}

// renderType collapses a descriptor to the manifest type grammar.
func (b *SeleneBackend) renderType(desc TypeDescriptor) schemaArg {
	if len(desc.Atoms) != 1 {
		return schemaArg{Type: seleneAny}
	}

	atom := desc.Atoms[0]
	if atom.IsRecord() {
		return schemaArg{Type: seleneAny}
	}

	name := b.types.Map(atom.Name)
	if b.types.IsPrimitive(name) {
		if atom.IsArray {
			return schemaArg{Type: seleneTable}
		}

		return schemaArg{Type: name}
	}

	if atom.IsArray {
		name += arraySuffix
	}

	return schemaArg{Display: name}
}

// schemaArg is one positional argument. Display is set for class references.
type schemaArg struct {
	Type     string
	Display  string
	Optional bool
}

// sameType reports whether two arguments render the same type.
func (a schemaArg) sameType(other schemaArg) bool {
	return a.Type == other.Type && a.Display == other.Display
}

// schemaMember is one manifest entry before serialization.
type schemaMember struct {
	Key      string
	MustUse  bool
	Property bool
	Method   bool
	Args     []schemaArg
}

// memberSet keeps entries in first-insertion order and merges overloads
// declared under the same key.
type memberSet struct {
	index   map[string]int
	members []schemaMember
}

func newMemberSet() *memberSet {
	return &memberSet{index: make(map[string]int)}
}

func (s *memberSet) add(member schemaMember) {
	at, ok := s.index[member.Key]
	if !ok {
		s.index[member.Key] = len(s.members)
		s.members = append(s.members, member)
		return
	}

	existing := &s.members[at]
	if existing.Property || member.Property {
		return
	}

	existing.MustUse = existing.MustUse || member.MustUse
	existing.Method = existing.Method || member.Method
	existing.Args = mergeArgs(existing.Args, member.Args)
}

func (s *memberSet) empty() bool {
	return len(s.members) == 0
}

// mergeArgs merges two overload argument lists position by position.
// Differing types become any; positions absent from one list become optional.
func mergeArgs(left, right []schemaArg) []schemaArg {
	size := max(len(left), len(right))
	out := make([]schemaArg, size)
	for i := 0; i < size; i++ {
		switch {
		case i >= len(left):
			out[i] = right[i]
			out[i].Optional = true
		case i >= len(right):
			out[i] = left[i]
			out[i].Optional = true
		default:
			out[i] = left[i]
			if !left[i].sameType(right[i]) {
				out[i] = schemaArg{Type: seleneAny}
			}

			out[i].Optional = left[i].Optional || right[i].Optional
		}
	}

	return out
}

// seleneStruct is one entry of the structs section.
type seleneStruct struct {
	Name    string
	Members *memberSet
}

// membersNode renders a member set as an ordered mapping. An empty set
// becomes {}.
func membersNode(members *memberSet) *yaml.Node {
	node := yamlMappingNode()
	if members.empty() {
		node.Style = yaml.FlowStyle
		return node
	}

	for _, member := range members.members {
		appendYAMLEntry(node, member.Key, memberNode(member))
	}

	return node
}

// structsNode renders the structs section in class order.
func structsNode(structs []seleneStruct) *yaml.Node {
	node := yamlMappingNode()
	if len(structs) == 0 {
		node.Style = yaml.FlowStyle
		return node
	}

	for _, entry := range structs {
		appendYAMLEntry(node, entry.Name, membersNode(entry.Members))
	}

	return node
}

// memberNode renders one manifest entry.
func memberNode(member schemaMember) *yaml.Node {
	node := yamlMappingNode()
	if member.Property {
		appendYAMLEntry(node, "property", yamlScalarNode("!!str", "read-only"))
		return node
	}

	if member.MustUse {
		appendYAMLEntry(node, "must_use", yamlScalarNode("!!bool", "true"))
	}

	if member.Method {
		appendYAMLEntry(node, "method", yamlScalarNode("!!bool", "true"))
	}

	args := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if len(member.Args) == 0 {
		args.Style = yaml.FlowStyle
	}

	for _, arg := range member.Args {
		args.Content = append(args.Content, argNode(arg))
	}

	appendYAMLEntry(node, "args", args)
	return node
}

// argNode renders one positional argument. Class references use the
// display form of the type field.
func argNode(arg schemaArg) *yaml.Node {
	node := yamlMappingNode()
	if arg.Optional {
		appendYAMLEntry(node, "required", yamlScalarNode("!!bool", "false"))
	}

	if arg.Display == "" {
		appendYAMLEntry(node, "type", yamlScalarNode("!!str", arg.Type))
		return node
	}

	display := yamlMappingNode()
	appendYAMLEntry(display, "display", yamlScalarNode("!!str", arg.Display))
	appendYAMLEntry(node, "type", display)
	return node
}

func yamlMappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

// appendYAMLEntry appends one key/value pair to a mapping node.
func appendYAMLEntry(node *yaml.Node, key string, value *yaml.Node) {
	node.Content = append(node.Content, yamlScalarNode("!!str", key), value)
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}

// marshalManifestNode serializes one manifest mapping with two-space indent.
func marshalManifestNode(node *yaml.Node) ([]byte, error) {
	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

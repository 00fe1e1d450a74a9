// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"fmt"
	"strings"
)

// referenceView is the root view model passed to the reference template.
type referenceView struct {
	Title      string
	ListMarker string
	Classes    []classView
	Enums      []enumView
}

// classView is one class section.
type classView struct {
	Name             string
	Description      string
	ListMarker       string
	Attributes       []attributeView
	Constructors     []memberView
	StaticProperties []fieldView
	Properties       []fieldView
	Operators        []operatorView
	StaticFunctions  []memberView
	Functions        []memberView
	Events           []memberView
}

// memberView is one constructor, function or event section.
type memberView struct {
	Heading     string
	Description string
	ListMarker  string
	Attributes  []attributeView
	Parameters  []fieldView
	Returns     []fieldView
	Example     string
}

// fieldView is one typed list item: parameter, return or property.
type fieldView struct {
	Name        string
	Type        string
	Default     string
	Description string
	ListMarker  string
	Optional    bool
}

// operatorView is one recognized operator overload.
type operatorView struct {
	Operator  string
	Signature string
}

// enumView is one enum section.
type enumView struct {
	Name       string
	ListMarker string
	Values     []enumValueView
}

// enumValueView is one key/value item of an enum.
type enumValueView struct {
	Key         string
	Value       string
	Description string
}

// attributeView is a single rendered name/value metadata item.
type attributeView struct {
	Name  string
	Value string
}

// viewBuilder converts the documentation model into template view models.
type viewBuilder struct {
	lua        *LuaBackend
	examples   exampleBuilder
	wrapWidth  int
	listMarker string
}

// referenceView prepares the whole reference document.
func (v viewBuilder) referenceView(docs *Docs, title string) (referenceView, error) {
	view := referenceView{
		Title:      sanitizeText(title),
		ListMarker: v.listMarker,
		Classes:    make([]classView, 0, len(docs.Classes())),
	}

	for _, cls := range docs.Classes() {
		classSection, err := v.classView(docs, cls)
		if err != nil {
			return referenceView{}, fmt.Errorf("%w %q: %w", ErrRenderClass, cls.Name, err)
		}

		view.Classes = append(view.Classes, classSection)
	}

	for _, enum := range docs.Enums() {
		view.Enums = append(view.Enums, v.enumView(enum.Name, enum.Values))
	}

	return view, nil
}

// classView prepares one class section.
func (v viewBuilder) classView(classes ClassTable, cls *Class) (classView, error) {
	subscription, err := SubscriptionFor(classes, cls)
	if err != nil {
		return classView{}, err
	}

	view := classView{
		Name:        cls.Name,
		Description: v.description(cls.Descriptive),
		ListMarker:  v.listMarker,
		Attributes:  classAttributes(cls, subscription),
	}

	for i, ctor := range cls.Constructors {
		params, err := v.parameters(ctor.Parameters)
		if err != nil {
			return classView{}, fmt.Errorf("constructor #%d: %w", i+1, err)
		}

		view.Constructors = append(view.Constructors, memberView{
			Heading:     cls.Name + "(" + parameterNames(ctor.Parameters) + ")",
			Description: v.description(ctor.Descriptive),
			ListMarker:  v.listMarker,
			Attributes:  memberAttributes(ctor.Authority),
			Parameters:  params,
			Example:     v.examples.constructor(cls, ctor),
		})
	}

	for _, field := range cls.StaticProperties {
		view.StaticProperties = append(view.StaticProperties, fieldView{
			Name:        cls.Name + "." + field.Name,
			Type:        staticPropertyType(field),
			Default:     field.Value.Text(),
			Description: sanitizeText(field.Docstring()),
			ListMarker:  v.listMarker,
		})
	}

	for _, prop := range cls.Properties {
		field, err := v.field(prop.Name, prop.Typed, prop.Descriptive)
		if err != nil {
			return classView{}, fmt.Errorf("property %q: %w", prop.Name, err)
		}

		view.Properties = append(view.Properties, field)
	}

	for _, op := range cls.Operators {
		signature, ok, err := v.operatorSignature(op)
		if err != nil {
			return classView{}, fmt.Errorf("operator %q: %w", op.Operator, err)
		}

		if ok {
			view.Operators = append(view.Operators, operatorView{Operator: op.Operator, Signature: signature})
		}
	}

	if view.StaticFunctions, err = v.functions(cls, RenderableFunctions(cls, cls.StaticFunctions), true); err != nil {
		return classView{}, err
	}

	if view.Functions, err = v.functions(cls, RenderableFunctions(cls, cls.Functions), false); err != nil {
		return classView{}, err
	}

	own := make(map[string]struct{}, len(cls.Events))
	for _, event := range cls.Events {
		own[event.Name] = struct{}{}
	}

	for _, event := range subscription.Events {
		params, err := v.parameters(event.Arguments)
		if err != nil {
			return classView{}, fmt.Errorf("event %q: %w", event.Name, err)
		}

		returns, err := v.returns(event.Returns)
		if err != nil {
			return classView{}, fmt.Errorf("event %q: %w", event.Name, err)
		}

		_, declared := own[event.Name]
		view.Events = append(view.Events, memberView{
			Heading:     event.Name,
			Description: v.description(event.Descriptive),
			ListMarker:  v.listMarker,
			Attributes:  eventAttributes(event, declared),
			Parameters:  params,
			Returns:     returns,
			Example:     v.examples.subscribe(subscription, event),
		})
	}

	return view, nil
}

// functions prepares static or instance function sections.
func (v viewBuilder) functions(cls *Class, fns []Function, static bool) ([]memberView, error) {
	out := make([]memberView, 0, len(fns))
	for _, fn := range fns {
		params, err := v.parameters(fn.Parameters)
		if err != nil {
			return nil, fmt.Errorf("function %q: %w", fn.Name, err)
		}

		returns, err := v.returns(fn.Returns)
		if err != nil {
			return nil, fmt.Errorf("function %q: %w", fn.Name, err)
		}

		accessor, example := ":", v.examples.methodCall(cls, fn)
		if static {
			accessor, example = ".", v.examples.staticCall(cls, fn)
		}

		out = append(out, memberView{
			Heading:     cls.Name + accessor + fn.Name + "(" + parameterNames(fn.Parameters) + ")",
			Description: v.description(fn.Descriptive),
			ListMarker:  v.listMarker,
			Attributes:  memberAttributes(fn.Authority),
			Parameters:  params,
			Returns:     returns,
			Example:     example,
		})
	}

	return out, nil
}

// enumView prepares one enum section.
func (v viewBuilder) enumView(name string, values []EnumValue) enumView {
	view := enumView{
		Name:       name,
		ListMarker: v.listMarker,
		Values:     make([]enumValueView, 0, len(values)),
	}

	for _, value := range values {
		view.Values = append(view.Values, enumValueView{
			Key:         value.Key,
			Value:       luaLiteral(value.Value),
			Description: sanitizeText(value.Docstring()),
		})
	}

	return view
}

func (v viewBuilder) parameters(params []Parameter) ([]fieldView, error) {
	out := make([]fieldView, 0, len(params))
	for _, param := range params {
		field, err := v.field(luaParameterName(param.Name), param.Typed, param.Descriptive)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", param.Name, err)
		}

		out = append(out, field)
	}

	return out, nil
}

func (v viewBuilder) returns(rets []Return) ([]fieldView, error) {
	out := make([]fieldView, 0, len(rets))
	for _, ret := range rets {
		field, err := v.field(ret.Name, ret.Typed, ret.Descriptive)
		if err != nil {
			return nil, fmt.Errorf("return %q: %w", ret.Name, err)
		}

		out = append(out, field)
	}

	return out, nil
}

// field renders one typed item with its Lua type.
func (v viewBuilder) field(name string, typed Typed, desc Descriptive) (fieldView, error) {
	parsed, err := ParseType(typed)
	if err != nil {
		return fieldView{}, err
	}

	field := fieldView{
		Name:        name,
		Type:        v.lua.renderType(parsed),
		Description: sanitizeText(desc.Docstring()),
		ListMarker:  v.listMarker,
		Optional:    parsed.Optional,
	}

	if typed.Default != nil {
		field.Default = typed.Default.Text()
	}

	return field, nil
}

// operatorSignature renders "token(rhs): return"; unknown operators report false.
func (v viewBuilder) operatorSignature(op Operator) (string, bool, error) {
	token, ok := OperatorToken(op.Operator)
	if !ok {
		return "", false, nil
	}

	ret, err := ParseType(Typed{Type: op.Return})
	if err != nil {
		return "", false, err
	}

	signature := token
	if strings.TrimSpace(op.RHS) != "" {
		rhs, err := ParseType(Typed{Type: op.RHS})
		if err != nil {
			return "", false, err
		}

		signature += "(" + v.lua.renderType(rhs) + ")"
	}

	return signature + ": " + v.lua.renderType(ret), true, nil
}

// description formats long or short description text as markdown.
func (v viewBuilder) description(desc Descriptive) string {
	return formatDescriptionMarkdown(desc.Docstring(), v.wrapWidth, v.listMarker)
}

// parameterNames joins rendered parameter names for headings.
func parameterNames(params []Parameter) string {
	names := make([]string, 0, len(params))
	for _, param := range params {
		names = append(names, luaParameterName(param.Name))
	}

	return strings.Join(names, ", ")
}

// staticPropertyType prefers the declared type and infers one from the literal.
func staticPropertyType(field StaticProperty) string {
	if declared := strings.TrimSpace(field.Type); declared != "" {
		return BaseTypeName(declared)
	}

	switch text := strings.TrimSpace(field.Value.String()); {
	case field.Value.IsString():
		return "string"
	case text == "true" || text == "false":
		return "boolean"
	case text == "" || text == "null" || text == "nil":
		return "nil"
	case strings.HasPrefix(text, "{") || strings.HasPrefix(text, "["):
		return "table"
	default:
		return "number"
	}
}

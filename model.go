// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"fmt"
	"strings"
)

// Authority names the execution context a class or member is valid in.
type Authority string

const (
	// AuthorityServer marks server-only members.
	AuthorityServer Authority = "server"
	// AuthorityClient marks client-only members.
	AuthorityClient Authority = "client"
	// AuthorityAuthority marks members available on the authority side only.
	AuthorityAuthority Authority = "authority"
	// AuthorityBoth marks members available on both sides. Zero value renders as both.
	AuthorityBoth Authority = "both"
)

// ParseAuthority normalizes authority names used by schema sources.
func ParseAuthority(value string) (Authority, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.TrimSuffix(normalized, "-only")
	normalized = strings.TrimSuffix(normalized, "_only")

	switch normalized {
	case "server":
		return AuthorityServer, nil
	case "client":
		return AuthorityClient, nil
	case "authority":
		return AuthorityAuthority, nil
	case "", "both", "shared":
		return AuthorityBoth, nil
	default:
		return AuthorityBoth, fmt.Errorf("%w %q", ErrUnknownAuthority, value)
	}
}

// Normalized returns the canonical authority, falling back to both.
func (a Authority) Normalized() Authority {
	normalized, err := ParseAuthority(string(a))
	if err != nil {
		return AuthorityBoth
	}

	return normalized
}

// Descriptive holds short and long description text.
type Descriptive struct {
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	DescriptionLong string `json:"description_long,omitempty" yaml:"description_long,omitempty"`
}

// Docstring returns the long description when present, else the short one.
func (d Descriptive) Docstring() string {
	if d.DescriptionLong != "" {
		return d.DescriptionLong
	}

	return d.Description
}

// Typed is an element carrying a raw type string, an optional default and
// optional inline record fields.
type Typed struct {
	Type            string          `json:"type" yaml:"type"`
	Default         *Literal        `json:"default,omitempty" yaml:"default,omitempty"`
	TableProperties []TableProperty `json:"table_properties,omitempty" yaml:"table_properties,omitempty"`
}

// TableProperty is one named field of an inline record type.
type TableProperty struct {
	Name  string `json:"name" yaml:"name"`
	Typed `yaml:",inline"`
}

// Parameter is one positional parameter of a function, constructor or event.
type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	Typed       `yaml:",inline"`
	Descriptive `yaml:",inline"`
}

// Return is one returned value.
type Return struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Typed       `yaml:",inline"`
	Descriptive `yaml:",inline"`
}

// Property is one instance field of a class.
type Property struct {
	Name        string `json:"name" yaml:"name"`
	Typed       `yaml:",inline"`
	Descriptive `yaml:",inline"`
}

// StaticProperty is one class-level constant.
type StaticProperty struct {
	Name        string  `json:"name" yaml:"name"`
	Type        string  `json:"type,omitempty" yaml:"type,omitempty"`
	Value       Literal `json:"value" yaml:"value"`
	Descriptive `yaml:",inline"`
}

// Function is a static or instance function.
type Function struct {
	Name        string      `json:"name" yaml:"name"`
	Authority   Authority   `json:"authority,omitempty" yaml:"authority,omitempty"`
	Parameters  []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Returns     []Return    `json:"return,omitempty" yaml:"return,omitempty"`
	Descriptive `yaml:",inline"`
}

// Constructor is one constructor overload.
type Constructor struct {
	Authority   Authority   `json:"authority,omitempty" yaml:"authority,omitempty"`
	Parameters  []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Descriptive `yaml:",inline"`
}

// Event is one subscribable event with its callback arguments.
type Event struct {
	Name        string      `json:"name" yaml:"name"`
	Authority   Authority   `json:"authority,omitempty" yaml:"authority,omitempty"`
	Arguments   []Parameter `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Returns     []Return    `json:"return,omitempty" yaml:"return,omitempty"`
	Descriptive `yaml:",inline"`
}

// Operator is one metamethod overload. Operator holds the raw key, e.g. "__add".
type Operator struct {
	Operator    string `json:"operator" yaml:"operator"`
	LHS         string `json:"lhs,omitempty" yaml:"lhs,omitempty"`
	RHS         string `json:"rhs,omitempty" yaml:"rhs,omitempty"`
	Return      string `json:"return" yaml:"return"`
	Descriptive `yaml:",inline"`
}

// Class describes one documented class.
type Class struct {
	Name             string           `json:"name" yaml:"name"`
	Authority        Authority        `json:"authority,omitempty" yaml:"authority,omitempty"`
	Inheritance      []string         `json:"inheritance,omitempty" yaml:"inheritance,omitempty"`
	Constructors     []Constructor    `json:"constructors,omitempty" yaml:"constructors,omitempty"`
	StaticFunctions  []Function       `json:"static_functions,omitempty" yaml:"static_functions,omitempty"`
	Functions        []Function       `json:"functions,omitempty" yaml:"functions,omitempty"`
	Properties       []Property       `json:"properties,omitempty" yaml:"properties,omitempty"`
	StaticProperties []StaticProperty `json:"static_properties,omitempty" yaml:"static_properties,omitempty"`
	Events           []Event          `json:"events,omitempty" yaml:"events,omitempty"`
	Operators        []Operator       `json:"operators,omitempty" yaml:"operators,omitempty"`
	Descriptive      `yaml:",inline"`

	// StaticClass is set by ingestion from the source category, never decoded.
	StaticClass bool `json:"-" yaml:"-"`
}

// EnumValue is one key/literal pair of an enum.
type EnumValue struct {
	Key         string  `json:"key" yaml:"key"`
	Value       Literal `json:"value" yaml:"value"`
	Descriptive `yaml:",inline"`
}

// Enum is one named, ordered list of values.
type Enum struct {
	Name   string
	Values []EnumValue
}

// ClassTable resolves class names for inheritance lookups.
type ClassTable interface {
	Class(name string) (*Class, bool)
}

// Docs is the whole documentation model. Classes and enums keep insertion order.
type Docs struct {
	classes    map[string]*Class
	classOrder []string
	enums      map[string][]EnumValue
	enumOrder  []string
}

// NewDocs returns an empty documentation model.
func NewDocs() *Docs {
	return &Docs{
		classes: make(map[string]*Class),
		enums:   make(map[string][]EnumValue),
	}
}

// AddClass appends a class. Class names are unique.
func (d *Docs) AddClass(cls *Class) error {
	if cls == nil {
		return fmt.Errorf("%w: nil class", ErrDuplicateClass)
	}

	if _, ok := d.classes[cls.Name]; ok {
		return fmt.Errorf("%w %q", ErrDuplicateClass, cls.Name)
	}

	d.classes[cls.Name] = cls
	d.classOrder = append(d.classOrder, cls.Name)
	return nil
}

// AddEnum appends an enum. Enum names are unique.
func (d *Docs) AddEnum(name string, values []EnumValue) error {
	if _, ok := d.enums[name]; ok {
		return fmt.Errorf("%w %q", ErrDuplicateEnum, name)
	}

	d.enums[name] = values
	d.enumOrder = append(d.enumOrder, name)
	return nil
}

// Class looks up a class by name.
func (d *Docs) Class(name string) (*Class, bool) {
	if d == nil {
		return nil, false
	}

	cls, ok := d.classes[name]
	return cls, ok
}

// Classes returns classes in insertion order.
func (d *Docs) Classes() []*Class {
	out := make([]*Class, 0, len(d.classOrder))
	for _, name := range d.classOrder {
		out = append(out, d.classes[name])
	}

	return out
}

// Enums returns enums in insertion order.
func (d *Docs) Enums() []Enum {
	out := make([]Enum, 0, len(d.enumOrder))
	for _, name := range d.enumOrder {
		out = append(out, Enum{Name: name, Values: d.enums[name]})
	}

	return out
}

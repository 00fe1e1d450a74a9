// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"strings"
	"text/template"
)

const (
	// defaultTitle is used when caller does not provide custom title.
	defaultTitle = "Helix scripting reference"
	// defaultMarkdownOutputName is the artifact name of the reference backend.
	defaultMarkdownOutputName = "reference.md"
	// defaultWrapWidth wraps plain description paragraphs at this width.
	defaultWrapWidth = 80
	// defaultListMarker is used when caller does not provide list marker style.
	defaultListMarker = "*"
)

// MarkdownOptions configures the markdown reference backend.
type MarkdownOptions struct {
	// Title is the document heading.
	Title string
	// TemplateText overrides the built-in template. It must define
	// "reference", "class" and "enum".
	TemplateText string
	// OutputName overrides the artifact file name.
	OutputName string
	// ListMarker is "*" or "-".
	ListMarker string
	// ExampleMode selects parameters passed in usage examples.
	ExampleMode ExampleMode
	// WrapWidth wraps description paragraphs. Zero means 80.
	WrapWidth int
}

// MarkdownBackend renders a human-readable API reference.
type MarkdownBackend struct {
	template    *template.Template
	templateErr error
	title      string
	outputName string
	views      viewBuilder
}

// NewMarkdownBackend builds a reference backend with normalized options.
// Unknown example modes fall back to required parameters. The template is
// parsed here; a parse failure is reported by Err and by every render call.
func NewMarkdownBackend(opt MarkdownOptions) *MarkdownBackend {
	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = defaultTitle
	}

	outputName := strings.TrimSpace(opt.OutputName)
	if outputName == "" {
		outputName = defaultMarkdownOutputName
	}

	mode, err := normalizeExampleMode(opt.ExampleMode)
	if err != nil {
		mode = ExampleModeRequired
	}

	lua := NewLuaBackend(LuaOptions{})
	tmpl, err := parseReferenceTemplate(opt.TemplateText)
	return &MarkdownBackend{
		template:    tmpl,
		templateErr: err,
		title:      title,
		outputName: outputName,
		views: viewBuilder{
			lua:        lua,
			examples:   exampleBuilder{types: lua.types, mode: mode},
			wrapWidth:  normalizeWrapWidth(opt.WrapWidth),
			listMarker: normalizeListMarker(opt.ListMarker),
		},
	}
}

// OutputName returns the artifact file name.
func (b *MarkdownBackend) OutputName() string {
	return b.outputName
}

// Err returns the template parse error, if any.
func (b *MarkdownBackend) Err() error {
	return b.templateErr
}

// Generate renders the full reference document.
func (b *MarkdownBackend) Generate(docs *Docs) (string, error) {
	if b.templateErr != nil {
		return "", b.templateErr
	}

	view, err := b.views.referenceView(docs, b.title)
	if err != nil {
		return "", err
	}

	return executeTemplate(b.template, templateReference, view)
}

// GenerateClass renders one class section.
func (b *MarkdownBackend) GenerateClass(classes ClassTable, cls *Class) (string, error) {
	if b.templateErr != nil {
		return "", b.templateErr
	}

	view, err := b.views.classView(classes, cls)
	if err != nil {
		return "", err
	}

	return executeTemplate(b.template, templateClass, view)
}

// GenerateEnum renders one enum section. A template parse or execution
// failure yields an empty block; Err reports parse failures.
func (b *MarkdownBackend) GenerateEnum(name string, values []EnumValue) string {
	if b.templateErr != nil {
		return ""
	}

	out, err := executeTemplate(b.template, templateEnum, b.views.enumView(name, values))
	if err != nil {
		return ""
	}

	return out
}

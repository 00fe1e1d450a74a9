// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"unicode"
)

// templateFS stores the built-in markdown reference template.
//
//go:embed templates/*.md.gotmpl
var templateFS embed.FS

const (
	// referenceTemplatePath is the embedded reference template file.
	referenceTemplatePath = "templates/reference.md.gotmpl"

	templateReference = "reference"
	templateClass     = "class"
	templateEnum      = "enum"
)

// parseReferenceTemplate parses either custom template text or the built-in one.
// Custom text must define the "reference", "class" and "enum" templates.
func parseReferenceTemplate(customText string) (*template.Template, error) {
	if strings.TrimSpace(customText) != "" {
		parsed, err := template.New("custom").Funcs(templateFuncs()).Parse(customText)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseCustomTemplate, err)
		}

		return parsed, nil
	}

	data, err := templateFS.ReadFile(referenceTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseBuiltinTemplate, referenceTemplatePath, err)
	}

	parsed, err := template.New("builtin").Funcs(templateFuncs()).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseBuiltinTemplate, referenceTemplatePath, err)
	}

	return parsed, nil
}

// executeTemplate runs one named template and normalizes its markdown.
func executeTemplate(tmpl *template.Template, name string, data any) (string, error) {
	var out strings.Builder
	if err := tmpl.ExecuteTemplate(&out, name, data); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrExecuteMarkdownTemplate, name, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}

// templateFuncs provides helpers available inside markdown templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"code":          func(value string) string { return "`" + escapeInline(value) + "`" },
		"headingAnchor": markdownHeadingAnchor,
	}
}

// markdownHeadingAnchor converts heading text into a markdown anchor slug.
func markdownHeadingAnchor(value string) string {
	var out strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(value)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			out.WriteRune(r)
			lastDash = false
		case unicode.IsSpace(r), r == '-', r == '_':
			if !lastDash {
				out.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(out.String(), "-")
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Literal is a value literal kept exactly as written in the schema source.
// String literals keep their JSON quotes.
type Literal string

// String returns the raw literal text.
func (l Literal) String() string {
	return string(l)
}

// IsString reports whether the literal is a quoted string.
func (l Literal) IsString() bool {
	return strings.HasPrefix(string(l), `"`)
}

// Text returns human-readable literal text: string literals are unquoted,
// an empty string renders as "".
func (l Literal) Text() string {
	if !l.IsString() {
		return string(l)
	}

	var text string
	if err := json.Unmarshal([]byte(l), &text); err != nil {
		return string(l)
	}

	if text == "" {
		return `""`
	}

	return text
}

// UnmarshalJSON stores the raw literal bytes.
func (l *Literal) UnmarshalJSON(data []byte) error {
	*l = Literal(bytes.TrimSpace(data))
	return nil
}

// UnmarshalYAML converts a YAML value into its JSON literal form.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*l = ""
		return nil
	}

	if node.Kind == yaml.ScalarNode && node.Tag != "!!str" {
		*l = Literal(node.Value)
		return nil
	}

	var value any
	if err := node.Decode(&value); err != nil {
		return fmt.Errorf("decode literal: %w", err)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode literal: %w", err)
	}

	*l = Literal(data)
	return nil
}

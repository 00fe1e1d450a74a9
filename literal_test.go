// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"testing"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

func TestLiteralText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		literal  Literal
		isString bool
		text     string
	}{
		{literal: `"hello"`, isString: true, text: "hello"},
		{literal: `""`, isString: true, text: `""`},
		{literal: `"a\"b"`, isString: true, text: `a"b`},
		{literal: "42", text: "42"},
		{literal: "true", text: "true"},
		{literal: "", text: ""},
	}

	for _, tt := range tests {
		if got := tt.literal.IsString(); got != tt.isString {
			t.Fatalf("%s.IsString() = %v", tt.literal, got)
		}

		if got := tt.literal.Text(); got != tt.text {
			t.Fatalf("%s.Text() = %q, want %q", tt.literal, got, tt.text)
		}
	}
}

func TestLiteralUnmarshalJSONKeepsRawText(t *testing.T) {
	t.Parallel()

	var values struct {
		Number Literal `json:"number"`
		Text   Literal `json:"text"`
		Table  Literal `json:"table"`
	}

	if err := json.Unmarshal([]byte(`{"number": 1.50, "text": "x", "table": {"a":1}}`), &values); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if values.Number != "1.50" || values.Text != `"x"` || values.Table != `{"a":1}` {
		t.Fatalf("literals = %+v", values)
	}
}

func TestLiteralUnmarshalYAML(t *testing.T) {
	t.Parallel()

	var values struct {
		Number Literal `yaml:"number"`
		Quoted Literal `yaml:"quoted"`
		Plain  Literal `yaml:"plain"`
		Null   Literal `yaml:"null_value"`
		List   Literal `yaml:"list"`
	}

	input := "number: 1.50\nquoted: \"12\"\nplain: hello\nnull_value: ~\nlist: [1, 2]\n"
	if err := yaml.Unmarshal([]byte(input), &values); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := map[string]Literal{"number": "1.50", "quoted": `"12"`, "plain": `"hello"`, "null": "", "list": "[1,2]"}
	got := map[string]Literal{"number": values.Number, "quoted": values.Quoted, "plain": values.Plain, "null": values.Null, "list": values.List}
	for key, literal := range want {
		if got[key] != literal {
			t.Fatalf("%s = %q, want %q", key, got[key], literal)
		}
	}
}

func TestLiteralUnmarshalYAMLNull(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"~", "null", "Null", "!!null ''"} {
		var doc yaml.Node
		if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
			t.Fatalf("Unmarshal(%q): %v", input, err)
		}

		literal := Literal("stale")
		if err := literal.UnmarshalYAML(doc.Content[0]); err != nil {
			t.Fatalf("UnmarshalYAML(%q): %v", input, err)
		}

		if literal != "" {
			t.Fatalf("UnmarshalYAML(%q) = %q, want empty literal", input, literal)
		}

		if got := luaLiteral(literal); got != "nil" {
			t.Fatalf("luaLiteral(%q) = %q, want nil", input, got)
		}
	}
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"fmt"
	"strings"
)

// authorityLabels are human-readable authority names for the reference.
var authorityLabels = map[Authority]string{
	AuthorityServer:    "Server side",
	AuthorityClient:    "Client side",
	AuthorityAuthority: "Authority side",
	AuthorityBoth:      "Client/Server side",
}

// classAttributes renders the flat attribute list of one class section.
func classAttributes(cls *Class, sub Subscription) []attributeView {
	out := make([]attributeView, 0, 5)
	out = append(out, attributeView{Name: "Authority", Value: authorityLabels[cls.Authority.Normalized()]})

	kind := "Class"
	if cls.StaticClass {
		kind = "Static class"
	}

	out = append(out, attributeView{Name: "Kind", Value: kind})

	if len(cls.Inheritance) > 0 {
		out = append(out, attributeView{Name: "Inherits", Value: codeList(cls.Inheritance)})
	}

	if !sub.Empty() {
		inherited := 0
		own := make(map[string]struct{}, len(cls.Events))
		for _, event := range cls.Events {
			own[event.Name] = struct{}{}
		}

		for _, event := range sub.Events {
			if _, ok := own[event.Name]; !ok {
				inherited++
			}
		}

		value := fmt.Sprintf("%d", len(sub.Events))
		if inherited > 0 {
			value += fmt.Sprintf(" (%d inherited)", inherited)
		}

		out = append(out, attributeView{Name: "Events", Value: value})
	}

	if dropped := unrecognizedOperators(cls.Operators); len(dropped) > 0 {
		out = append(out, attributeView{Name: "Unlisted operators", Value: codeList(dropped)})
	}

	return out
}

// memberAttributes renders attributes of a constructor or function.
func memberAttributes(authority Authority) []attributeView {
	return []attributeView{{Name: "Authority", Value: authorityLabels[authority.Normalized()]}}
}

// eventAttributes renders attributes of one resolved event.
func eventAttributes(event Event, declared bool) []attributeView {
	out := memberAttributes(event.Authority)
	if !declared {
		out = append(out, attributeView{Name: "Inherited", Value: "yes"})
	}

	return out
}

// unrecognizedOperators lists raw operator keys outside the operator table.
func unrecognizedOperators(ops []Operator) []string {
	var out []string
	for _, op := range ops {
		if _, ok := OperatorToken(op.Operator); !ok {
			out = append(out, op.Operator)
		}
	}

	return out
}

// codeList renders values as comma-separated inline code.
func codeList(values []string) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, "`"+escapeInline(value)+"`")
	}

	return strings.Join(parts, ", ")
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// htmlBreakPattern matches <br> tags some schema descriptions use for line breaks.
var htmlBreakPattern = regexp.MustCompile(`(?i)<br\s*/?>`)

// sanitizeText trims and squashes repeated whitespace in one-line text.
func sanitizeText(text string) string {
	text = htmlBreakPattern.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}

// normalizeWrapWidth falls back to the default width for non-positive values.
func normalizeWrapWidth(value int) int {
	if value <= 0 {
		return defaultWrapWidth
	}

	return value
}

// normalizeListMarker accepts "*" or "-" and falls back to the default marker.
func normalizeListMarker(value string) string {
	switch strings.TrimSpace(value) {
	case "*":
		return "*"
	case "-":
		return "-"
	default:
		return defaultListMarker
	}
}

// formatDescriptionMarkdown wraps plain paragraphs and keeps markdown
// structures (lists, headings, fences, quotes, tables) line by line.
func formatDescriptionMarkdown(text string, wrapWidth int, listMarker string) string {
	text = htmlBreakPattern.ReplaceAllString(normalizeLineEndings(text), "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	listMarker = normalizeListMarker(listMarker)
	out := make([]string, 0, 8)
	paragraph := make([]string, 0, 4)
	inFence := false

	flush := func() {
		if len(paragraph) > 0 {
			out = append(out, wrapParagraph(strings.Join(paragraph, " "), wrapWidth)...)
			paragraph = paragraph[:0]
		}
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "```"):
			flush()
			out = append(out, line)
			inFence = !inFence
		case inFence:
			out = append(out, line)
		case trimmed == "":
			flush()
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
		case isMarkdownStructuredLine(line):
			flush()
			if isListLine(line) && len(out) > 0 && out[len(out)-1] != "" && !isMarkdownStructuredLine(out[len(out)-1]) {
				out = append(out, "")
			}

			out = append(out, normalizeListLine(line, listMarker))
		default:
			paragraph = append(paragraph, trimmed)
		}
	}

	flush()
	return strings.Join(out, "\n")
}

// isListLine reports whether line is an unordered or ordered list item.
func isListLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return hasOrderedListPrefix(trimmed)
}

// isMarkdownStructuredLine reports whether line must bypass paragraph wrapping.
func isMarkdownStructuredLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return true
	}

	for _, prefix := range []string{"#", ">", "|", "```", "---", "***", "___"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return isListLine(trimmed)
}

// normalizeListLine rewrites unordered list markers to listMarker.
// Nesting is kept as two spaces per level.
func normalizeListLine(line, listMarker string) string {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 2 || !strings.ContainsRune("-*+", rune(trimmed[0])) || trimmed[1] != ' ' {
		return line
	}

	if strings.HasPrefix(line, "\t") {
		return line
	}

	columns := len(line) - len(strings.TrimLeft(line, " "))
	return strings.Repeat("  ", columns/2) + listMarker + " " + strings.TrimSpace(trimmed[1:])
}

// hasOrderedListPrefix reports whether line starts with "1. " or "1) ".
func hasOrderedListPrefix(line string) bool {
	digits := len(line) - len(strings.TrimLeft(line, "0123456789"))
	if digits == 0 || digits+1 >= len(line) {
		return false
	}

	return (line[digits] == '.' || line[digits] == ')') && line[digits+1] == ' '
}

// wrapParagraph wraps one paragraph to width runes.
func wrapParagraph(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	out := make([]string, 0, 2)
	current := words[0]
	currentLen := utf8.RuneCountInString(current)
	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if width > 0 && currentLen+1+wordLen > width {
			out = append(out, current)
			current, currentLen = word, wordLen
			continue
		}

		current += " " + word
		currentLen += 1 + wordLen
	}

	return append(out, current)
}

// normalizeLineEndings converts CRLF and CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// normalizeMarkdownOutput trims trailing spaces and collapses blank line runs
// outside fenced blocks.
func normalizeMarkdownOutput(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	out := make([]string, 0, len(lines))
	inFence := false
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
		} else if !inFence && line == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}

		out = append(out, line)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// escapeInline escapes backticks inside inline code spans.
func escapeInline(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}

// ensureTrailingNewline guarantees exactly one trailing newline.
func ensureTrailingNewline(value string) string {
	return strings.TrimRight(value, "\n") + "\n"
}

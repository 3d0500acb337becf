// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML header of every generated document.
type frontMatter struct {
	ID                  string    `yaml:"id"`
	Title               string    `yaml:"title"`
	Slug                string    `yaml:"slug"`
	SidebarClassName    string    `yaml:"sidebar_class_name,omitempty"`
	HideTableOfContents bool      `yaml:"hide_table_of_contents"`
	PaginationNext      *yamlNull `yaml:"pagination_next,omitempty"`
	PaginationPrev      *yamlNull `yaml:"pagination_prev,omitempty"`
}

// yamlNull encodes as explicit YAML null.
type yamlNull struct{}

// MarshalYAML implements yaml.Marshaler.
func (*yamlNull) MarshalYAML() (any, error) {
	return nil, nil
}

// renderFrontMatter encodes frontmatter block delimited by "---" lines.
func renderFrontMatter(fm frontMatter) (string, error) {
	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)
	if err := encoder.Encode(fm); err != nil {
		return "", fmt.Errorf("encode frontmatter: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("encode frontmatter: %w", err)
	}

	return "---\n" + out.String() + "---\n", nil
}

// formatDescription normalizes description markdown and closes an unterminated code fence.
func formatDescription(text string) string {
	text = strings.TrimSpace(normalizeLineEndings(text))
	if text == "" {
		return ""
	}

	fences := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			fences++
		}
	}

	if fences%2 != 0 {
		text += "\n```"
	}

	return normalizeMarkdownOutput(text)
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// normalizeMarkdownOutput collapses extra blank lines outside fenced blocks.
func normalizeMarkdownOutput(text string) string {
	text = normalizeLineEndings(text)
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	blankCount := 0
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			out = append(out, line)
			blankCount = 0
			continue
		}

		if !inFence && trimmed == "" {
			if blankCount == 0 {
				out = append(out, "")
			}

			blankCount++
			continue
		}

		blankCount = 0
		out = append(out, line)
	}

	return strings.Trim(strings.Join(out, "\n"), "\n")
}

// escapeInline escapes backticks in inline code markdown segments.
func escapeInline(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}

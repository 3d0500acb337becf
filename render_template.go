// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"embed"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// templateFS stores the built-in homepage embedded into the package.
//
//go:embed templates/*.md
var templateFS embed.FS

const (
	// defaultHomepagePath is the embedded homepage template.
	defaultHomepagePath = "templates/generated.md"
	// defaultHomepageName is the output file name of the built-in homepage.
	defaultHomepageName = "generated.md"

	placeholderBaseURL  = "##baseURL##"
	placeholderDateTime = "##generated-date-time##"
)

// DefaultHomepage returns the built-in homepage template text.
func DefaultHomepage() (string, error) {
	data, err := templateFS.ReadFile(defaultHomepagePath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadHomepage, err)
	}

	return string(data), nil
}

// expandHomepage substitutes homepage placeholders.
func expandHomepage(text, baseURL string, now time.Time) string {
	replacer := strings.NewReplacer(
		placeholderBaseURL, strings.Trim(baseURL, "/"),
		placeholderDateTime, now.UTC().Format(time.RFC1123),
	)

	return replacer.Replace(text)
}

// markdownHeadingAnchor converts heading text into a markdown anchor slug.
func markdownHeadingAnchor(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(trimmed))

	lastDash := false
	for _, r := range trimmed {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			out.WriteRune(r)
			lastDash = false
		case unicode.IsSpace(r), r == '-', r == '_', r == '.':
			if lastDash || out.Len() == 0 {
				continue
			}

			out.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(out.String(), "-")
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ContentKind identifies artifact format passed to a Prettifier.
type ContentKind string

const (
	// ContentMarkdown is a markdown document.
	ContentMarkdown ContentKind = "markdown"
	// ContentYAML is a YAML descriptor.
	ContentYAML ContentKind = "yaml"
	// ContentJSON is a JSON descriptor.
	ContentJSON ContentKind = "json"
)

// Prettifier formats generated content before it is persisted.
type Prettifier interface {
	Prettify(content []byte, kind ContentKind) ([]byte, error)
}

// PrettifierFunc adapts a function to Prettifier.
type PrettifierFunc func(content []byte, kind ContentKind) ([]byte, error)

// Prettify implements Prettifier.
func (f PrettifierFunc) Prettify(content []byte, kind ContentKind) ([]byte, error) {
	return f(content, kind)
}

// BuiltinPrettifier normalizes markdown blank lines and re-encodes YAML and JSON.
type BuiltinPrettifier struct{}

// Prettify implements Prettifier.
func (BuiltinPrettifier) Prettify(content []byte, kind ContentKind) ([]byte, error) {
	switch kind {
	case ContentMarkdown:
		return []byte(ensureTrailingNewline(normalizeMarkdownOutput(string(content)))), nil
	case ContentYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(content, &node); err != nil {
			return nil, fmt.Errorf("prettify yaml: %w", err)
		}

		var out bytes.Buffer
		encoder := yaml.NewEncoder(&out)
		encoder.SetIndent(2)
		if err := encoder.Encode(&node); err != nil {
			return nil, fmt.Errorf("prettify yaml: %w", err)
		}

		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("prettify yaml: %w", err)
		}

		return out.Bytes(), nil
	case ContentJSON:
		var out bytes.Buffer
		if err := json.Indent(&out, bytes.TrimSpace(content), "", "  "); err != nil {
			return nil, fmt.Errorf("prettify json: %w", err)
		}

		out.WriteByte('\n')
		return out.Bytes(), nil
	default:
		return content, nil
	}
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"fmt"
	"strings"
	"text/template"
)

// WildcardDirective registers a descriptor for every directive without its own entry.
const WildcardDirective = "*"

// DirectiveDescriptor renders documentation text for an applied directive.
type DirectiveDescriptor interface {
	Describe(directive Directive, owner string) (string, error)
}

// DirectiveTagger optionally provides a badge label for an applied directive.
type DirectiveTagger interface {
	Tag(directive Directive) string
}

// DirectiveRegistry resolves applied directives to descriptors registered at startup.
type DirectiveRegistry struct {
	descriptors map[string]DirectiveDescriptor
}

// NewDirectiveRegistry creates an empty registry.
func NewDirectiveRegistry() *DirectiveRegistry {
	return &DirectiveRegistry{descriptors: make(map[string]DirectiveDescriptor)}
}

// Register binds descriptor to directive name or WildcardDirective.
func (r *DirectiveRegistry) Register(name string, descriptor DirectiveDescriptor) error {
	name = strings.TrimSpace(name)
	if name != WildcardDirective {
		parsed, err := ParseDirectiveName(name)
		if err != nil {
			return err
		}

		name = parsed
	}

	r.descriptors[name] = descriptor
	return nil
}

// Len returns number of registered descriptors.
func (r *DirectiveRegistry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.descriptors)
}

// lookup returns descriptor for directive name, falling back to the wildcard entry.
func (r *DirectiveRegistry) lookup(name string) (DirectiveDescriptor, bool) {
	if r == nil || name == deprecatedDirectiveName {
		return nil, false
	}

	if descriptor, ok := r.descriptors[name]; ok && descriptor != nil {
		return descriptor, true
	}

	descriptor, ok := r.descriptors[WildcardDirective]
	return descriptor, ok && descriptor != nil
}

// directiveNote is rendered output of one matched directive.
type directiveNote struct {
	Text string
	Tag  string
}

// describe renders notes for every applied directive with a registered descriptor.
func (r *DirectiveRegistry) describe(directives []Directive, owner string) ([]directiveNote, error) {
	if r.Len() == 0 {
		return nil, nil
	}

	var notes []directiveNote
	for _, directive := range directives {
		descriptor, ok := r.lookup(directive.Name)
		if !ok {
			continue
		}

		text, err := descriptor.Describe(directive, owner)
		if err != nil {
			return nil, fmt.Errorf("describe @%s on %s: %w", directive.Name, owner, err)
		}

		note := directiveNote{Text: strings.TrimSpace(text)}
		if tagger, ok := descriptor.(DirectiveTagger); ok {
			note.Tag = strings.TrimSpace(tagger.Tag(directive))
		}

		if note.Text == "" && note.Tag == "" {
			continue
		}

		notes = append(notes, note)
	}

	return notes, nil
}

// TemplateDescriptor interpolates directive argument values into a text template.
//
// Template data exposes .Directive, .Owner and .Args (argument name to literal value).
type TemplateDescriptor struct {
	tmpl *template.Template
	tag  string
}

// NewTemplateDescriptor parses description template and optional badge tag.
func NewTemplateDescriptor(name, text, tag string) (*TemplateDescriptor, error) {
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseDirectiveTemplate, name, err)
	}

	return &TemplateDescriptor{tmpl: tmpl, tag: strings.TrimSpace(tag)}, nil
}

// Describe executes template for applied directive.
func (d *TemplateDescriptor) Describe(directive Directive, owner string) (string, error) {
	args := make(map[string]string, len(directive.Args))
	for _, arg := range directive.Args {
		args[arg.Name] = arg.Value
	}

	var out strings.Builder
	err := d.tmpl.Execute(&out, map[string]any{
		"Directive": directive.Name,
		"Owner":     owner,
		"Args":      args,
	})
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrExecuteDirectiveTemplate, d.tmpl.Name(), err)
	}

	return out.String(), nil
}

// Tag returns configured badge label.
func (d *TemplateDescriptor) Tag(_ Directive) string {
	return d.tag
}

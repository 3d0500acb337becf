// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"fmt"
	"strings"
)

// DeprecatedPolicy selects how deprecated entities and members are displayed.
type DeprecatedPolicy string

const (
	// DeprecatedDefault lists deprecated members inline with badge and warning.
	DeprecatedDefault DeprecatedPolicy = "default"
	// DeprecatedSkip omits deprecated entities and members entirely.
	DeprecatedSkip DeprecatedPolicy = "skip"
	// DeprecatedGroup lists deprecated members last in a collapsible block
	// and moves deprecated entities under a dedicated category.
	DeprecatedGroup DeprecatedPolicy = "group"
)

// ParseDeprecatedPolicy validates policy name; empty value selects default.
func ParseDeprecatedPolicy(value string) (DeprecatedPolicy, error) {
	switch policy := DeprecatedPolicy(strings.ToLower(strings.TrimSpace(value))); policy {
	case "":
		return DeprecatedDefault, nil
	case DeprecatedDefault, DeprecatedSkip, DeprecatedGroup:
		return policy, nil
	default:
		return "", fmt.Errorf("%w %q (want default, skip or group)", ErrInvalidDeprecatedPolicy, value)
	}
}

// PrintOptions selects printer sections and policies.
type PrintOptions struct {
	Deprecated       DeprecatedPolicy
	HideCodeSection  bool
	HideRelatedTypes bool
	HideTypeBadges   bool
	ParentTypePrefix bool
	// SkipDirectives hides members annotated with any of these directive names.
	SkipDirectives []string
}

// LinkResolver resolves documentation links for entities.
type LinkResolver interface {
	// TypeCategory returns category of a named type referenced by a field.
	TypeCategory(name string) (Category, bool)
	// EntityURL returns documentation URL of entity.
	EntityURL(category Category, name string) (string, bool)
}

// Document is printed entity content.
type Document struct {
	// Intro holds deprecation notice, description and directive notes.
	Intro string
	// Code is the fenced SDL reconstruction.
	Code string
	// Metadata holds member sections and related types.
	Metadata string
}

// Markdown joins document parts into one markdown body.
func (d Document) Markdown() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{d.Intro, d.Code, d.Metadata} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, strings.TrimSpace(part))
		}
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(strings.Join(parts, "\n\n")))
}

// Printer renders one entity into code block and metadata sections.
type Printer struct {
	opt        PrintOptions
	links      LinkResolver
	relations  RelationSource
	directives *DirectiveRegistry
}

// NewPrinter creates printer; links, relations and directives may be nil.
func NewPrinter(opt PrintOptions, links LinkResolver, relations RelationSource, directives *DirectiveRegistry) *Printer {
	if opt.Deprecated == "" {
		opt.Deprecated = DeprecatedDefault
	}

	return &Printer{
		opt:        opt,
		links:      links,
		relations:  relations,
		directives: directives,
	}
}

// Print renders entity.
func (p *Printer) Print(entity *Entity) (Document, error) {
	if entity == nil {
		return Document{}, fmt.Errorf("%w: nil entity", ErrRenderEntity)
	}

	intro, err := p.printIntro(entity)
	if err != nil {
		return Document{}, err
	}

	doc := Document{Intro: intro}
	if !p.opt.HideCodeSection {
		doc.Code = "```graphql\n" + p.printCode(entity) + "\n```"
	}

	doc.Metadata, err = p.printMetadata(entity)
	if err != nil {
		return Document{}, err
	}

	return doc, nil
}

// printIntro renders entity level deprecation, description and directive notes.
func (p *Printer) printIntro(entity *Entity) (string, error) {
	var out strings.Builder
	if entity.Deprecated && p.opt.Deprecated != DeprecatedSkip {
		if !p.opt.HideTypeBadges {
			out.WriteString(badge("deprecated", badgeWarning))
			out.WriteString("\n\n")
		}

		out.WriteString(deprecationCallout(entity.DeprecationReason))
		out.WriteString("\n\n")
	}

	if description := formatDescription(entity.Description); description != "" {
		out.WriteString(description)
		out.WriteString("\n\n")
	}

	notes, err := p.directives.describe(entity.Directives, entity.Name)
	if err != nil {
		return "", err
	}

	writeDirectiveNotes(&out, notes, p.opt.HideTypeBadges)
	return out.String(), nil
}

// visibleMembers applies skip directives and skip policy to members.
func (p *Printer) visibleMembers(members []*Field) []*Field {
	out := make([]*Field, 0, len(members))
	for _, member := range members {
		if hasDirective(member.Directives, p.opt.SkipDirectives...) {
			continue
		}

		if member.Deprecated && p.opt.Deprecated == DeprecatedSkip {
			continue
		}

		out = append(out, member)
	}

	return out
}

// partitionDeprecated splits members into active and deprecated, keeping order.
func partitionDeprecated(members []*Field) ([]*Field, []*Field) {
	active := make([]*Field, 0, len(members))
	var deprecated []*Field
	for _, member := range members {
		if member.Deprecated {
			deprecated = append(deprecated, member)
			continue
		}

		active = append(active, member)
	}

	return active, deprecated
}

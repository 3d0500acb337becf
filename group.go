// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultGroupFallback labels entities without a matching group directive.
const DefaultGroupFallback = "Miscellaneous"

// graphQLNamePattern matches a valid GraphQL name.
var graphQLNamePattern = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// groupByPattern matches "@directive(field)" or "@directive(field|=fallback)".
var groupByPattern = regexp.MustCompile(`^@([^(\s]+)\(([^|)\s]+)(?:\|=([^)]+))?\)$`)

// GroupBy selects the directive argument used as group label.
type GroupBy struct {
	Directive string
	Field     string
	Fallback  string
}

// ParseGroupBy parses "@doc(category|=Common)" expression.
func ParseGroupBy(expr string) (*GroupBy, error) {
	expr = strings.TrimSpace(expr)
	match := groupByPattern.FindStringSubmatch(expr)
	if match == nil {
		return nil, fmt.Errorf("%w %q: expected @directive(field) or @directive(field|=fallback)", ErrInvalidGroupBy, expr)
	}

	by := &GroupBy{
		Directive: match[1],
		Field:     match[2],
		Fallback:  strings.TrimSpace(match[3]),
	}

	if err := by.Validate(); err != nil {
		return nil, err
	}

	return by, nil
}

// Validate checks directive and field names and applies fallback default.
func (by *GroupBy) Validate() error {
	if !graphQLNamePattern.MatchString(by.Directive) {
		return fmt.Errorf("%w: %w %q", ErrInvalidGroupBy, ErrInvalidDirectiveName, by.Directive)
	}

	if !graphQLNamePattern.MatchString(by.Field) {
		return fmt.Errorf("%w: invalid argument name %q", ErrInvalidGroupBy, by.Field)
	}

	if by.Fallback == "" {
		by.Fallback = DefaultGroupFallback
	}

	return nil
}

// GroupMap maps category and entity name to group label.
type GroupMap map[Category]map[string]string

// Group returns group label for entity.
func (g GroupMap) Group(category Category, name string) (string, bool) {
	if g == nil {
		return "", false
	}

	label, ok := g[category][name]
	return label, ok
}

// ResolveGroups assigns a group label to every entity of the map.
// It returns nil when grouping is disabled.
func ResolveGroups(m *SchemaMap, by *GroupBy) GroupMap {
	if by == nil {
		return nil
	}

	fallback := by.Fallback
	if fallback == "" {
		fallback = DefaultGroupFallback
	}

	out := make(GroupMap, len(categoryOrder))
	for _, category := range categoryOrder {
		labels := make(map[string]string, m.Len(category))
		for _, entity := range m.Entities(category) {
			labels[entity.Name] = entityGroup(entity, by.Directive, by.Field, fallback)
		}

		out[category] = labels
	}

	return out
}

// entityGroup reads the first matching directive instance; only that instance is consulted.
func entityGroup(entity *Entity, directive, field, fallback string) string {
	if !entity.HasSyntax {
		return fallback
	}

	for _, applied := range entity.Directives {
		if applied.Name != directive {
			continue
		}

		if value, ok := applied.Arg(field); ok && strings.TrimSpace(value) != "" {
			return value
		}

		return fallback
	}

	return fallback
}

// ParseDirectiveName parses "@name" or "name" into a validated directive name.
func ParseDirectiveName(value string) (string, error) {
	name := strings.TrimPrefix(strings.TrimSpace(value), "@")
	if !graphQLNamePattern.MatchString(name) {
		return "", fmt.Errorf("%w %q", ErrInvalidDirectiveName, value)
	}

	return name, nil
}

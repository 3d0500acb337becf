// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"fmt"
	"path"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// HierarchyMode selects how category, group and deprecation compose into output paths.
type HierarchyMode string

const (
	// HierarchyFlat places entities directly under their category directory.
	HierarchyFlat HierarchyMode = "flat"
	// HierarchyEntity nests categories under optional deprecated and group directories.
	HierarchyEntity HierarchyMode = "entity"
	// HierarchyAPI additionally splits operations from types at the top level.
	HierarchyAPI HierarchyMode = "api"
)

const (
	// deprecatedSegment is the synthetic directory for deprecated entities.
	deprecatedSegment = "deprecated"
	// deprecatedPosition keeps deprecated directory last.
	deprecatedPosition = 999
	// deprecatedClassName styles deprecated directory in the sidebar.
	deprecatedClassName = "deprecated"
	// operationsSegment is the API hierarchy directory for root operations.
	operationsSegment = "operations"
	// typesSegment is the API hierarchy directory for every other category.
	typesSegment = "types"
)

// ParseHierarchyMode validates hierarchy name; empty value selects API hierarchy.
func ParseHierarchyMode(value string) (HierarchyMode, error) {
	switch mode := HierarchyMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return HierarchyAPI, nil
	case HierarchyFlat, HierarchyEntity, HierarchyAPI:
		return mode, nil
	default:
		return "", fmt.Errorf("%w %q (want api, entity or flat)", ErrInvalidHierarchy, value)
	}
}

// pathSegment is one directory level of an entity output path.
type pathSegment struct {
	// Name is the human-readable segment name used for labels.
	Name string
	// Position overrides per-parent counter when non-zero.
	Position  int
	ClassName string
}

// hierarchyPlan composes output path segments; it is fixed at construction.
type hierarchyPlan struct {
	mode       HierarchyMode
	deprecated DeprecatedPolicy
	groups     GroupMap
}

// segments composes ordered directory segments for entity.
func (plan hierarchyPlan) segments(category Category, entity *Entity) []pathSegment {
	if plan.mode == HierarchyFlat {
		return []pathSegment{{Name: string(category)}}
	}

	out := make([]pathSegment, 0, 4)
	if plan.mode == HierarchyAPI {
		api := typesSegment
		if category.IsOperation() {
			api = operationsSegment
		}

		out = append(out, pathSegment{Name: api})
	}

	if plan.deprecated == DeprecatedGroup && entity.Deprecated {
		out = append(out, pathSegment{
			Name:      deprecatedSegment,
			Position:  deprecatedPosition,
			ClassName: deprecatedClassName,
		})
	}

	if group, ok := plan.groups.Group(category, entity.Name); ok && strings.TrimSpace(group) != "" {
		out = append(out, pathSegment{Name: group})
	}

	return append(out, pathSegment{Name: string(category)})
}

// relativeDir joins slugged segments into slash-separated relative directory.
func (plan hierarchyPlan) relativeDir(category Category, entity *Entity) string {
	segments := plan.segments(category, entity)
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		parts = append(parts, slugify(segment.Name))
	}

	return path.Join(parts...)
}

// linker resolves entity URLs using the same plan that places documents.
type linker struct {
	plan     hierarchyPlan
	entities *SchemaMap
	linkRoot string
	baseURL  string
}

// TypeCategory implements LinkResolver.
func (l *linker) TypeCategory(name string) (Category, bool) {
	return l.entities.TypeCategory(name)
}

// EntityURL implements LinkResolver.
func (l *linker) EntityURL(category Category, name string) (string, bool) {
	entity, ok := l.entities.Entity(category, name)
	if !ok {
		return "", false
	}

	slug := slugify(entity.Name)
	if slug == "" {
		return "", false
	}

	return joinURL(l.linkRoot, l.baseURL, l.plan.relativeDir(category, entity), slug), true
}

// joinURL joins URL path segments with exactly one leading slash.
func joinURL(parts ...string) string {
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Trim(strings.TrimSpace(part), "/")
		if part != "" {
			cleaned = append(cleaned, part)
		}
	}

	return "/" + strings.Join(cleaned, "/")
}

// slugFolder removes combining marks after canonical decomposition.
var slugFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slugify converts name into lowercase kebab-case identifier safe for paths and URLs.
// Case changes start new words, so "getUserByID" becomes "get-user-by-id".
func slugify(value string) string {
	folded, _, err := transform.String(slugFolder, strings.TrimSpace(value))
	if err != nil {
		folded = strings.TrimSpace(value)
	}

	source := []rune(folded)
	var out strings.Builder
	out.Grow(len(folded) + 4)

	pendingDash := false
	for i, r := range source {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingDash = out.Len() > 0
			continue
		}

		if unicode.IsUpper(r) && i > 0 && out.Len() > 0 {
			prev := source[i-1]
			nextLower := i+1 < len(source) && unicode.IsLower(source[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				pendingDash = true
			}
		}

		if pendingDash {
			out.WriteByte('-')
			pendingDash = false
		}

		out.WriteRune(unicode.ToLower(r))
	}

	return out.String()
}

// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroupBy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		expr string
		want GroupBy
	}{
		{expr: "@doc(category)", want: GroupBy{Directive: "doc", Field: "category", Fallback: DefaultGroupFallback}},
		{expr: "@doc(category|=Common)", want: GroupBy{Directive: "doc", Field: "category", Fallback: "Common"}},
		{expr: "  @group(name|=Other Stuff)  ", want: GroupBy{Directive: "group", Field: "name", Fallback: "Other Stuff"}},
	}

	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			t.Parallel()

			got, err := ParseGroupBy(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestParseGroupByInvalid(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"doc(category)",
		"@doc",
		"@doc()",
		"@doc(category",
		"@1doc(category)",
		"@doc(cat-egory)",
	}

	for _, expr := range cases {
		t.Run(expr, func(t *testing.T) {
			t.Parallel()

			_, err := ParseGroupBy(expr)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidGroupBy))
		})
	}
}

func TestParseDirectiveName(t *testing.T) {
	t.Parallel()

	name, err := ParseDirectiveName("@internal")
	require.NoError(t, err)
	assert.Equal(t, "internal", name)

	name, err = ParseDirectiveName("noDoc")
	require.NoError(t, err)
	assert.Equal(t, "noDoc", name)

	_, err = ParseDirectiveName("@no-doc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDirectiveName))
}

func TestResolveGroupsDisabled(t *testing.T) {
	t.Parallel()

	m := BuildSchemaMap(mustParseSDL(t, testSchemaSDL))
	assert.Nil(t, ResolveGroups(m, nil))

	var groups GroupMap
	_, ok := groups.Group(CategoryObjects, "Animal")
	assert.False(t, ok)
}

func TestResolveGroupsTotal(t *testing.T) {
	t.Parallel()

	m := BuildSchemaMap(mustParseSDL(t, testSchemaSDL))
	groups := ResolveGroups(m, &GroupBy{Directive: "doc", Field: "category", Fallback: "common"})
	require.NotNil(t, groups)

	for _, category := range Categories() {
		for _, name := range m.Names(category) {
			label, ok := groups.Group(category, name)
			require.True(t, ok, "%s/%s", category, name)
			assert.NotEmpty(t, label)
		}
	}

	label, _ := groups.Group(CategoryObjects, "Animal")
	assert.Equal(t, "animal", label)

	label, _ = groups.Group(CategoryObjects, "Plant")
	assert.Equal(t, "common", label)
}

func TestResolveGroupsWithoutSyntaxUsesFallback(t *testing.T) {
	t.Parallel()

	schema := NewSchema()
	schema.AddType(&Entity{
		Kind:       KindObject,
		Name:       "Remote",
		Directives: []Directive{{Name: "doc", Args: []Argument{{Name: "category", Value: "remote"}}}},
	})

	groups := ResolveGroups(BuildSchemaMap(schema), &GroupBy{Directive: "doc", Field: "category"})
	label, ok := groups.Group(CategoryObjects, "Remote")
	require.True(t, ok)
	assert.Equal(t, DefaultGroupFallback, label)
}

func TestResolveGroupsFirstDirectiveOnly(t *testing.T) {
	t.Parallel()

	entity := &Entity{
		Kind:      KindObject,
		Name:      "Twice",
		HasSyntax: true,
		Directives: []Directive{
			{Name: "doc"},
			{Name: "doc", Args: []Argument{{Name: "category", Value: "second"}}},
		},
	}

	assert.Equal(t, "fallback", entityGroup(entity, "doc", "category", "fallback"))
}

func TestGroupedEntityPath(t *testing.T) {
	t.Parallel()

	m := BuildSchemaMap(mustParseSDL(t, testSchemaSDL))
	plan := hierarchyPlan{
		mode:       HierarchyEntity,
		deprecated: DeprecatedDefault,
		groups:     ResolveGroups(m, &GroupBy{Directive: "doc", Field: "category", Fallback: "common"}),
	}

	animal, _ := m.Entity(CategoryObjects, "Animal")
	plant, _ := m.Entity(CategoryObjects, "Plant")

	assert.Equal(t, "animal/objects", plan.relativeDir(CategoryObjects, animal))
	assert.Equal(t, "common/objects", plan.relativeDir(CategoryObjects, plant))
}

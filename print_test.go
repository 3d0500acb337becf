// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// printEntity prints entity of the shared test schema with API layout links.
func printEntity(t *testing.T, opt PrintOptions, directives *DirectiveRegistry, category Category, name string) string {
	t.Helper()

	m := BuildSchemaMap(mustParseSDL(t, testSchemaSDL))
	links := &linker{
		plan:     hierarchyPlan{mode: HierarchyAPI, deprecated: opt.Deprecated},
		entities: m,
		linkRoot: "/docs",
		baseURL:  "schema",
	}

	entity, ok := m.Entity(category, name)
	require.True(t, ok, "%s/%s", category, name)

	doc, err := NewPrinter(opt, links, NewRelationIndex(m), directives).Print(entity)
	require.NoError(t, err)
	return doc.Markdown()
}

func TestPrintObjectDefault(t *testing.T) {
	t.Parallel()

	out := printEntity(t, PrintOptions{}, nil, CategoryObjects, "Animal")

	assertContains(t, out, "```graphql\ntype Animal implements Node {\n  id: ID!\n  name: String!\n")
	assertContains(t, out, "  legs: Int @deprecated(reason: \"Use limbs.\")\n")
	assertContains(t, out, "  friends(\n    first: Int = 10\n  ): [Animal!]\n}\n```")

	assertContains(t, out, "## Fields")
	assertContains(t, out, "<a id=\"legs\"></a>")
	assertContains(t, out, "### `legs` · `Int` <span class=\"badge badge--warning\">deprecated</span>")
	assertContains(t, out, ":::warning[DEPRECATED]\n\nUse limbs.\n\n:::")
	assertContains(t, out, "### `id` · `ID` <span class=\"badge badge--secondary\">non-null</span>")
	assertContains(t, out, "### `friends` · [[`Animal`](/docs/schema/types/objects/animal)] <span class=\"badge badge--secondary\">list</span> <span class=\"badge badge--secondary\">object</span>")
	assertContains(t, out, "#### `friends.first` · `Int`")
	assertContains(t, out, "Default value: `10`")

	assertContains(t, out, "## Interfaces\n\n- [`Node`](/docs/schema/types/interfaces/node) <span class=\"badge badge--secondary\">interface</span>")
	assertContains(t, out, "## Returned By\n\n- [`animal`](/docs/schema/operations/queries/animal)")
	assertContains(t, out, "## Member Of\n\n- [`Animal`](/docs/schema/types/objects/animal)")
	assertContains(t, out, "## Implemented By\n\n- [`Living`](/docs/schema/types/unions/living) <span class=\"badge badge--secondary\">union</span>")
	assertNotContains(t, out, "<details>")

	// declaration order is preserved
	assert.Less(t, strings.Index(out, "<a id=\"legs\">"), strings.Index(out, "<a id=\"limbs\">"))
}

func TestPrintDeprecatedGroupPolicy(t *testing.T) {
	t.Parallel()

	out := printEntity(t, PrintOptions{Deprecated: DeprecatedGroup}, nil, CategoryObjects, "Animal")

	details := strings.Index(out, "<details>\n<summary>Deprecated fields</summary>")
	require.GreaterOrEqual(t, details, 0, out)

	for _, active := range []string{"id", "name", "limbs", "friends"} {
		anchor := strings.Index(out, "<a id=\""+active+"\">")
		require.GreaterOrEqual(t, anchor, 0, active)
		assert.Less(t, anchor, details, active)
	}

	legs := strings.Index(out, "<a id=\"legs\">")
	assert.Greater(t, legs, details)
	assertContains(t, out, "</details>")
}

func TestPrintDeprecatedGroupPolicyArguments(t *testing.T) {
	t.Parallel()

	m := BuildSchemaMap(mustParseSDL(t, `
type Query {
  search(text: String, query: String @deprecated(reason: "Use text."), limit: Int): [String]
}
`))
	entity, ok := m.Entity(CategoryQueries, "search")
	require.True(t, ok)

	doc, err := NewPrinter(PrintOptions{Deprecated: DeprecatedGroup}, nil, nil, nil).Print(entity)
	require.NoError(t, err)
	out := doc.Markdown()

	details := strings.Index(out, "<details>\n<summary>Deprecated arguments</summary>")
	require.GreaterOrEqual(t, details, 0, out)
	assert.Less(t, strings.Index(out, "<a id=\"text\">"), details)
	assert.Less(t, strings.Index(out, "<a id=\"limit\">"), details)
	assert.Greater(t, strings.Index(out, "<a id=\"query\">"), details)

	obj := BuildSchemaMap(mustParseSDL(t, `
type Shelf {
  books(first: Int, offset: Int @deprecated, after: String): [String]
}

type Query {
  shelf: Shelf
}
`))
	shelf, ok := obj.Entity(CategoryObjects, "Shelf")
	require.True(t, ok)

	doc, err = NewPrinter(PrintOptions{Deprecated: DeprecatedGroup}, nil, nil, nil).Print(shelf)
	require.NoError(t, err)
	out = doc.Markdown()

	details = strings.Index(out, "<details>\n<summary>Deprecated arguments</summary>")
	require.GreaterOrEqual(t, details, 0, out)
	assert.Less(t, strings.Index(out, "#### `books.after`"), details)
	assert.Greater(t, strings.Index(out, "#### `books.offset`"), details)
	assertNotContains(t, out, "Deprecated fields")
}

func TestPrintDeprecatedSkipPolicy(t *testing.T) {
	t.Parallel()

	out := printEntity(t, PrintOptions{Deprecated: DeprecatedSkip}, nil, CategoryObjects, "Animal")
	assertNotContains(t, out, "legs")
	assertNotContains(t, out, "DEPRECATED")
	assertContains(t, out, "limbs")

	enum := printEntity(t, PrintOptions{Deprecated: DeprecatedSkip}, nil, CategoryEnums, "Color")
	assertNotContains(t, enum, "GREEN")
	assertContains(t, enum, "RED")
}

func TestPrintParentTypePrefix(t *testing.T) {
	t.Parallel()

	out := printEntity(t, PrintOptions{ParentTypePrefix: true}, nil, CategoryObjects, "Animal")
	assertContains(t, out, "<a id=\"animal-legs\"></a>")
	assertContains(t, out, "### `Animal.legs`")
	assertContains(t, out, "#### `Animal.friends.first`")
}

func TestPrintHiddenSections(t *testing.T) {
	t.Parallel()

	out := printEntity(t, PrintOptions{
		HideCodeSection:  true,
		HideRelatedTypes: true,
		HideTypeBadges:   true,
	}, nil, CategoryObjects, "Animal")

	assertNotContains(t, out, "```graphql")
	assertNotContains(t, out, "## Returned By")
	assertNotContains(t, out, "class=\"badge")
	assertContains(t, out, "## Fields")
}

func TestPrintSkipDirectiveMembers(t *testing.T) {
	t.Parallel()

	schema := mustParseSDL(t, `
directive @internal on FIELD_DEFINITION
type Query { visible: Int, hidden: Int @internal }
type Foo { a: Int, b: Int @internal }
`)
	m := BuildSchemaMap(schema)
	foo, _ := m.Entity(CategoryObjects, "Foo")

	doc, err := NewPrinter(PrintOptions{SkipDirectives: []string{"internal"}}, nil, nil, nil).Print(foo)
	require.NoError(t, err)

	out := doc.Markdown()
	assertContains(t, out, "`a`")
	assertNotContains(t, out, "`b`")
	assertNotContains(t, out, "  b: Int")
}

func TestPrintOperation(t *testing.T) {
	t.Parallel()

	out := printEntity(t, PrintOptions{}, nil, CategoryQueries, "oldest")
	assertContains(t, out, "<span class=\"badge badge--warning\">deprecated</span>")
	assertContains(t, out, ":::warning[DEPRECATED]\n\nUse animals.\n\n:::")
	assertContains(t, out, "oldest: Animal @deprecated(reason: \"Use animals.\")")
	assertContains(t, out, "## Type\n\n[`Animal`](/docs/schema/types/objects/animal) <span class=\"badge badge--secondary\">object</span>")
	assertNotContains(t, out, "## Returned By")

	args := printEntity(t, PrintOptions{}, nil, CategoryQueries, "animals")
	assertContains(t, args, "animals(\n  filter: AnimalFilter\n): [Animal!]!")
	assertContains(t, args, "### `filter` · [`AnimalFilter`](/docs/schema/types/inputs/animal-filter)")
}

func TestPrintEnumUnionInputScalarDirective(t *testing.T) {
	t.Parallel()

	enum := printEntity(t, PrintOptions{}, nil, CategoryEnums, "Color")
	assertContains(t, enum, "enum Color {\n  RED\n  GREEN @deprecated\n}")
	assertContains(t, enum, "## Values")
	assertContains(t, enum, "No longer supported")

	union := printEntity(t, PrintOptions{}, nil, CategoryUnions, "Living")
	assertContains(t, union, "union Living = Animal | Plant")
	assertContains(t, union, "## Possible types\n\n- [`Animal`](/docs/schema/types/objects/animal) <span class=\"badge badge--secondary\">object</span>")

	input := printEntity(t, PrintOptions{}, nil, CategoryInputs, "AnimalFilter")
	assertContains(t, input, "input AnimalFilter {\n  name: String\n  color: Color = RED\n}")
	assertContains(t, input, "Default value: `RED`")

	scalar := printEntity(t, PrintOptions{}, nil, CategoryScalars, "DateTime")
	assertContains(t, scalar, "```graphql\nscalar DateTime\n```")

	directive := printEntity(t, PrintOptions{}, nil, CategoryDirectives, "doc")
	assertContains(t, directive, "directive @doc(\n  category: String\n) on OBJECT | INTERFACE | UNION | ENUM | INPUT_OBJECT | SCALAR | FIELD_DEFINITION")
	assertContains(t, directive, "## Locations\n\n- `OBJECT`")
	assertNotContains(t, directive, "## Member Of")
}

func TestPrintDescriptionAndNodeRelations(t *testing.T) {
	t.Parallel()

	out := printEntity(t, PrintOptions{}, nil, CategoryInterfaces, "Node")
	assertContains(t, out, "Anything with an identifier.")
	assertContains(t, out, "## Implemented By\n\n- [`Animal`](/docs/schema/types/objects/animal)")
	assertContains(t, out, "## Returned By\n\n- [`node`](/docs/schema/operations/queries/node)")
}

func TestPrintCustomDirective(t *testing.T) {
	t.Parallel()

	descriptor, err := NewTemplateDescriptor("doc", "Category: {{ .Args.category }} on {{ .Owner }}", "documented")
	require.NoError(t, err)

	registry := NewDirectiveRegistry()
	require.NoError(t, registry.Register("@doc", descriptor))

	out := printEntity(t, PrintOptions{}, registry, CategoryObjects, "Animal")
	assertContains(t, out, "<span class=\"badge badge--info\">documented</span>")
	assertContains(t, out, "Category: animal on Animal")
}

func TestPrintWildcardDirectiveSkipsDeprecated(t *testing.T) {
	t.Parallel()

	descriptor, err := NewTemplateDescriptor("any", "Directive {{ .Directive }}", "")
	require.NoError(t, err)

	registry := NewDirectiveRegistry()
	require.NoError(t, registry.Register(WildcardDirective, descriptor))

	out := printEntity(t, PrintOptions{}, registry, CategoryObjects, "Animal")
	assertContains(t, out, "Directive doc")
	assertNotContains(t, out, "Directive deprecated")
}

func TestDirectiveTemplateErrors(t *testing.T) {
	t.Parallel()

	_, err := NewTemplateDescriptor("broken", "{{ .Args.category | missingFunc }}", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParseDirectiveTemplate))

	descriptor, err := NewTemplateDescriptor("bad-index", "{{ index .Args 1 }}", "")
	require.NoError(t, err)

	registry := NewDirectiveRegistry()
	require.NoError(t, registry.Register("doc", descriptor))

	m := BuildSchemaMap(mustParseSDL(t, testSchemaSDL))
	animal, _ := m.Entity(CategoryObjects, "Animal")
	_, err = NewPrinter(PrintOptions{}, nil, nil, registry).Print(animal)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExecuteDirectiveTemplate))

	err = registry.Register("bad name", descriptor)
	assert.True(t, errors.Is(err, ErrInvalidDirectiveName))
}

func TestPrintNilEntity(t *testing.T) {
	t.Parallel()

	_, err := NewPrinter(PrintOptions{}, nil, nil, nil).Print(nil)
	assert.True(t, errors.Is(err, ErrRenderEntity))
}

func TestParseDeprecatedPolicy(t *testing.T) {
	t.Parallel()

	policy, err := ParseDeprecatedPolicy("")
	require.NoError(t, err)
	assert.Equal(t, DeprecatedDefault, policy)

	policy, err = ParseDeprecatedPolicy("GROUP")
	require.NoError(t, err)
	assert.Equal(t, DeprecatedGroup, policy)

	_, err = ParseDeprecatedPolicy("hide")
	assert.True(t, errors.Is(err, ErrInvalidDeprecatedPolicy))
}

func TestFormatDescriptionClosesFence(t *testing.T) {
	t.Parallel()

	got := formatDescription("Example:\r\n```graphql\r\nquery { a }")
	assert.Equal(t, "Example:\n```graphql\nquery { a }\n```", got)
}

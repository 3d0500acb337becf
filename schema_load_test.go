// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSDLKeepsDeclarationOrder(t *testing.T) {
	t.Parallel()

	schema := mustParseSDL(t, testSchemaSDL)

	names := make([]string, 0)
	for _, entity := range schema.Types() {
		names = append(names, entity.Name)
	}

	assert.Equal(t, []string{
		"Node", "Animal", "Plant", "Secret", "Living", "Color",
		"AnimalFilter", "DateTime", "Query", "Mutation",
	}, names)

	directives := make([]string, 0)
	for _, directive := range schema.Directives() {
		directives = append(directives, directive.Name)
	}

	assert.Equal(t, []string{"doc", "internal"}, directives)
}

func TestParseSDLExcludesPrelude(t *testing.T) {
	t.Parallel()

	schema := mustParseSDL(t, testSchemaSDL)
	for _, name := range []string{"String", "Int", "Boolean", "ID", "Float", "__Schema", "__Type"} {
		assert.Nil(t, schema.Type(name), name)
	}

	for _, directive := range schema.Directives() {
		assert.False(t, isSpecifiedDirective(directive.Name), directive.Name)
	}
}

func TestParseSDLConvertsMembers(t *testing.T) {
	t.Parallel()

	schema := mustParseSDL(t, testSchemaSDL)

	animal := schema.Type("Animal")
	require.NotNil(t, animal)
	assert.Equal(t, KindObject, animal.Kind)
	assert.Equal(t, []string{"Node"}, animal.Interfaces)
	assert.True(t, animal.HasSyntax)

	value, ok := animal.Directives[0].Arg("category")
	require.True(t, ok)
	assert.Equal(t, "animal", value)

	legs := animal.Fields[2]
	assert.Equal(t, "legs", legs.Name)
	assert.True(t, legs.Deprecated)
	assert.Equal(t, "Use limbs.", legs.DeprecationReason)

	friends := animal.Fields[4]
	assert.Equal(t, "[Animal!]", friends.Type.String())
	assert.Equal(t, "Animal", friends.Type.NamedType())
	assert.True(t, friends.Type.IsList())
	require.Len(t, friends.Args, 1)
	assert.True(t, friends.Args[0].HasDefault)
	assert.Equal(t, "10", friends.Args[0].DefaultValue)

	color := schema.Type("Color")
	require.NotNil(t, color)
	assert.Equal(t, KindEnum, color.Kind)
	require.Len(t, color.Fields, 2)
	assert.True(t, color.Fields[1].Deprecated)
	assert.Equal(t, defaultDeprecationReason, color.Fields[1].DeprecationReason)

	living := schema.Type("Living")
	require.NotNil(t, living)
	assert.Equal(t, []string{"Animal", "Plant"}, living.PossibleTypes)
}

func TestParseSDLOperations(t *testing.T) {
	t.Parallel()

	schema := mustParseSDL(t, testSchemaSDL)

	queries := schema.Operations(OperationQuery)
	require.Len(t, queries, 5)
	assert.Equal(t, "animal", queries[0].Name)
	assert.Equal(t, KindOperation, queries[0].Kind)
	assert.Equal(t, OperationQuery, queries[0].Operation)
	assert.Equal(t, "Animal", queries[0].Type.NamedType())
	assert.True(t, queries[2].Deprecated)

	assert.Len(t, schema.Operations(OperationMutation), 1)
	assert.Empty(t, schema.Operations(OperationSubscription))
}

func TestParseSDLInvalid(t *testing.T) {
	t.Parallel()

	_, err := ParseSDL(`type Foo { bar: Missing }`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParseSchema))
}

func TestSDLLoaderGlob(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.graphql"), []byte("type Query { b: B }\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.graphql"), []byte("type B { id: ID }\n"), 0o600))

	source := filepath.Join(dir, "*.graphql")
	loader, err := resolveLoader(DefaultLoaders(), source)
	require.NoError(t, err)

	schema, err := loader.Load(context.Background(), source)
	require.NoError(t, err)
	require.NotNil(t, schema.Type("B"))
	assert.Equal(t, "Query", schema.QueryType)
}

func TestSDLLoaderNoMatch(t *testing.T) {
	t.Parallel()

	_, err := SDLLoader{}.Load(context.Background(), filepath.Join(t.TempDir(), "*.graphql"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReadSchemaFile))
}

func TestResolveLoaderUnknownSource(t *testing.T) {
	t.Parallel()

	_, err := resolveLoader(DefaultLoaders(), "schema.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSchemaLoader))
}

func TestParseIntrospection(t *testing.T) {
	t.Parallel()

	payload := []byte(`{
  "data": {
    "__schema": {
      "queryType": { "name": "Query" },
      "types": [
        {
          "kind": "OBJECT",
          "name": "Query",
          "fields": [
            {
              "name": "tasks",
              "args": [],
              "type": { "kind": "NON_NULL", "ofType": { "kind": "LIST", "ofType": { "kind": "UNION", "name": "Task" } } }
            }
          ]
        },
        { "kind": "UNION", "name": "Task", "possibleTypes": [ { "kind": "OBJECT", "name": "Meeting" } ] },
        { "kind": "OBJECT", "name": "Meeting", "fields": [
          { "name": "at", "args": [], "type": { "kind": "SCALAR", "name": "String" }, "isDeprecated": true, "deprecationReason": "gone" }
        ] },
        { "kind": "SCALAR", "name": "String" },
        { "kind": "OBJECT", "name": "__Type", "fields": [] }
      ],
      "directives": [
        { "name": "skip", "locations": ["FIELD"], "args": [] },
        { "name": "auth", "locations": ["FIELD_DEFINITION"], "args": [] }
      ]
    }
  }
}`)

	schema, err := ParseIntrospection(payload)
	require.NoError(t, err)

	assert.Nil(t, schema.Type("String"))
	assert.Nil(t, schema.Type("__Type"))
	require.Len(t, schema.Directives(), 1)
	assert.Equal(t, "auth", schema.Directives()[0].Name)

	queries := schema.Operations(OperationQuery)
	require.Len(t, queries, 1)
	assert.Equal(t, "[Task]!", queries[0].Type.String())
	assert.False(t, queries[0].HasSyntax)

	meeting := schema.Type("Meeting")
	require.NotNil(t, meeting)
	assert.False(t, meeting.HasSyntax)
	assert.True(t, meeting.Fields[0].Deprecated)
}

func TestParseIntrospectionMissingSchema(t *testing.T) {
	t.Parallel()

	_, err := ParseIntrospection([]byte(`{"data": {}}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParseSchema))
}

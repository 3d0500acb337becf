// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// testSchemaSDL is a small schema covering every category.
const testSchemaSDL = `
directive @doc(category: String) on OBJECT | INTERFACE | UNION | ENUM | INPUT_OBJECT | SCALAR | FIELD_DEFINITION
directive @internal on OBJECT | FIELD_DEFINITION

"Anything with an identifier."
interface Node {
  id: ID!
}

type Animal implements Node @doc(category: "animal") {
  id: ID!
  name: String!
  legs: Int @deprecated(reason: "Use limbs.")
  limbs: Int
  friends(first: Int = 10): [Animal!]
}

type Plant implements Node {
  id: ID!
  color: Color
}

type Secret @internal {
  id: ID!
}

union Living = Animal | Plant

enum Color {
  RED
  GREEN @deprecated
}

input AnimalFilter {
  name: String
  color: Color = RED
}

scalar DateTime

type Query {
  animal(id: ID!): Animal
  animals(filter: AnimalFilter): [Animal!]!
  oldest: Animal @deprecated(reason: "Use animals.")
  living: [Living]
  node(id: ID!): Node
}

type Mutation {
  plant(color: Color!): Plant
}
`

func mustParseSDL(t testing.TB, sdl string) *Schema {
	t.Helper()

	schema, err := ParseSDL(sdl)
	require.NoError(t, err)
	return schema
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}

// memFS is an in-memory FileSystem recording writes per path.
type memFS struct {
	mu     sync.Mutex
	files  map[string][]byte
	writes map[string]int
}

func newMemFS() *memFS {
	return &memFS{
		files:  make(map[string][]byte),
		writes: make(map[string]int),
	}
}

func (m *memFS) SaveFile(_ context.Context, path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := filepath.ToSlash(path)
	m.files[key] = append([]byte(nil), data...)
	m.writes[key]++
	return nil
}

func (m *memFS) FileExists(_ context.Context, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.files[filepath.ToSlash(path)]
	return ok, nil
}

func (m *memFS) EnsureDir(context.Context, string) error {
	return nil
}

func (m *memFS) ReadFile(_ context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.files[filepath.ToSlash(path)]
	if !ok {
		return nil, fs.ErrNotExist
	}

	return data, nil
}

// read returns file content or fails the test.
func (m *memFS) read(t *testing.T, path string) string {
	t.Helper()

	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.files[path]
	if !ok {
		t.Fatalf("file %q not written; have %v", path, m.pathsLocked())
	}

	return string(data)
}

// paths returns sorted written paths.
func (m *memFS) paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.pathsLocked()
}

func (m *memFS) pathsLocked() []string {
	out := make([]string, 0, len(m.files))
	for path := range m.files {
		out = append(out, path)
	}

	sort.Strings(out)
	return out
}

// withSuffix returns sorted written paths ending with suffix.
func (m *memFS) withSuffix(suffix string) []string {
	var out []string
	for _, path := range m.paths() {
		if strings.HasSuffix(path, suffix) {
			out = append(out, path)
		}
	}

	return out
}

// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSchema = `
type Foo {
  id: ID!
  legacy: String @deprecated(reason: "Gone.")
}

type Query {
  foo: Foo
}
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	return path
}

func assertFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	return string(data)
}

func TestRunGenerateWritesDocuments(t *testing.T) {
	t.Parallel()

	schemaPath := writeFixture(t, "schema.graphql", testSchema)
	out := filepath.Join(t.TempDir(), "docs")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"generate", "-q", "-r", out, "--hierarchy", "flat", "--no-pagination", schemaPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "generated 2 documents in "+out) {
		t.Fatalf("unexpected summary: %s", stdout.String())
	}

	foo := assertFile(t, filepath.Join(out, "objects", "foo.md"))
	if !strings.Contains(foo, "pagination_next: null") {
		t.Fatalf("pagination should be disabled:\n%s", foo)
	}

	assertFile(t, filepath.Join(out, "queries", "foo.md"))
	assertFile(t, filepath.Join(out, "objects", "_category_.yml"))
	assertFile(t, filepath.Join(out, "sidebar-schema.json"))
	assertFile(t, filepath.Join(out, "generated.md"))
}

func TestRunGenerateConfigAndFlags(t *testing.T) {
	t.Parallel()

	schemaPath := writeFixture(t, "schema.graphql", testSchema)
	out := filepath.Join(t.TempDir(), "docs")
	configPath := writeFixture(t, "gqlmarkdown.yaml", "schema: "+schemaPath+"\nrootPath: "+out+"\nhierarchy: entity\n")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"generate", "-q", "-c", configPath, "--deprecated", "skip", "--sidebar", "Reference"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	foo := assertFile(t, filepath.Join(out, "objects", "foo.md"))
	if strings.Contains(foo, "legacy") {
		t.Fatalf("deprecated field should be skipped:\n%s", foo)
	}

	assertFile(t, filepath.Join(out, "sidebar-reference.json"))
}

func TestRunGenerateMissingSchema(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"generate", "-r", t.TempDir()}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), "schema source is required") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunGenerateInvalidGroupBy(t *testing.T) {
	t.Parallel()

	schemaPath := writeFixture(t, "schema.graphql", testSchema)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"generate", "-r", t.TempDir(), "--group-by-directive", "doc", schemaPath}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), "invalid group-by directive expression") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunFlagErrors(t *testing.T) {
	t.Parallel()

	cases := [][]string{
		{},
		{"generate", "--unknown"},
		{"generate", "--hierarchy", "tree", "schema.graphql"},
	}

	for _, args := range cases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			t.Parallel()

			var stdout bytes.Buffer
			var stderr bytes.Buffer
			if code := run(args, &stdout, &stderr); code != 2 {
				t.Fatalf("run exit code = %d, want 2 (stderr: %s)", code, stderr.String())
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"generate", "--help"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "--group-by-directive") {
		t.Fatalf("help should list flags: %s", stdout.String())
	}
}

func TestRunHomepage(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	if code := run([]string{"homepage"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "##baseURL##") {
		t.Fatalf("homepage template should keep placeholders: %s", stdout.String())
	}

	target := filepath.Join(t.TempDir(), "homepage.md")
	if code := run([]string{"homepage", target}, &stdout, &stderr); code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(assertFile(t, target), "##generated-date-time##") {
		t.Fatal("homepage file should hold template text")
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	if code := run([]string{"version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "version:  "+Version) {
		t.Fatalf("unexpected version output: %s", stdout.String())
	}
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

/*
Package gqlmarkdown generates categorized, cross-linked markdown documentation
from a GraphQL schema.

Every documentable entity (named type, directive or root operation field) is
sorted into a category, optionally grouped by a directive argument, and
written as one markdown document with YAML frontmatter. Each directory level
gets a "_category_.yml" descriptor, and the run ends with a sidebar descriptor
and a homepage.

Generate from configuration:

	cfg, err := gqlmarkdown.LoadConfig(".gqlmarkdown.yaml")
	if err != nil {
		return err
	}

	opt, err := cfg.Options()
	if err != nil {
		return err
	}

	gen := &gqlmarkdown.Generator{Logger: gqlmarkdown.NewLogger(os.Stderr, log.InfoLevel)}
	report, err := gen.Generate(ctx, opt)
	if err != nil {
		return err
	}

	fmt.Println(len(report.Documents), "documents")

Inspect a schema without writing files:

	schema, err := gqlmarkdown.ParseSDL(`
		type StudyItem { id: ID }
		type Meeting { id: ID }
		union Task = StudyItem | Meeting
		type Query { tasks: [Task] }
	`)
	if err != nil {
		return err
	}

	m := gqlmarkdown.BuildSchemaMap(schema)
	meeting, _ := m.Entity(gqlmarkdown.CategoryObjects, "Meeting")
	fmt.Println(gqlmarkdown.RelationOfUnion(meeting, schema).Names(gqlmarkdown.CategoryUnions))

Override a document through events:

	events := gqlmarkdown.NewEmitter()
	events.On(gqlmarkdown.EventBeforeRenderEntity, func(_ context.Context, e *gqlmarkdown.Event) error {
		payload := e.Data.(*gqlmarkdown.EntityEvent)
		if payload.Entity.Name == "Internal" {
			e.PreventDefault()
		}

		return nil
	})

	gen := &gqlmarkdown.Generator{Events: events}
*/
package gqlmarkdown

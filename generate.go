// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

// Generator runs the documentation pipeline; zero value uses built-in collaborators.
type Generator struct {
	// Loaders resolve schema source; nil selects DefaultLoaders.
	Loaders []Loader
	// FS persists output; nil selects OSFileSystem.
	FS FileSystem
	// Events dispatches pipeline events; nil disables them.
	Events *Emitter
	// Prettifier formats output when Options.Pretty is set; nil selects BuiltinPrettifier.
	Prettifier Prettifier
	// Logger receives run records; nil discards them.
	Logger *log.Logger
	// Now stamps the homepage; nil selects time.Now.
	Now func() time.Time
}

// Report summarizes one generation run.
type Report struct {
	RunID     string
	Documents []RenderedDocument
	Skipped   []SkippedEntity
	// Categories lists directories that received a descriptor.
	Categories []string
	Sidebar    string
	Homepage   string
	Duration   time.Duration
}

// Generate loads schema from opt.Schema and writes the documentation set.
func (g *Generator) Generate(ctx context.Context, opt Options) (*Report, error) {
	return g.run(ctx, opt, func(ctx context.Context) (*Schema, error) {
		return g.loadSchema(ctx, opt.Schema)
	})
}

// GenerateSchema writes the documentation set of an already loaded schema.
func (g *Generator) GenerateSchema(ctx context.Context, schema *Schema, opt Options) (*Report, error) {
	return g.run(ctx, opt, func(context.Context) (*Schema, error) {
		return schema, nil
	})
}

// run scopes logger and span to one generation.
func (g *Generator) run(ctx context.Context, opt Options, load func(context.Context) (*Schema, error)) (*Report, error) {
	started := time.Now()
	span, ctx := opentracing.StartSpanFromContext(ctx, "gqlmarkdown.generate")
	defer span.Finish()

	logger := g.Logger
	if logger == nil {
		logger = LoggerFromContext(ctx)
	}

	report := &Report{RunID: uuid.NewString()}
	logger = logger.With("run", report.RunID)
	ctx = WithLogger(ctx, logger)
	span.SetTag("run", report.RunID)

	schema, err := load(ctx)
	if err == nil {
		err = g.generate(ctx, schema, opt, report)
	}

	if err != nil {
		ext.Error.Set(span, true)
		span.LogKV("error", err.Error())
		return nil, err
	}

	report.Duration = time.Since(started)
	logger.Info("documentation generated",
		"documents", len(report.Documents),
		"skipped", len(report.Skipped),
		"categories", len(report.Categories),
		"duration", report.Duration.Round(time.Millisecond),
	)

	return report, nil
}

// loadSchema resolves loader and emits load events.
func (g *Generator) loadSchema(ctx context.Context, source string) (*Schema, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "gqlmarkdown.loadSchema")
	defer span.Finish()
	span.SetTag("source", source)

	before := NewEvent(EventBeforeLoadSchema, source)
	if err := g.Events.Emit(ctx, before); err != nil {
		return nil, err
	}

	var schema *Schema
	if before.DefaultPrevented() {
		override, ok := before.Output.(*Schema)
		if !ok || override == nil {
			return nil, fmt.Errorf("%w %q: listener prevented loading without schema", ErrNoSchemaLoader, source)
		}

		schema = override
	} else {
		loaders := g.Loaders
		if len(loaders) == 0 {
			loaders = DefaultLoaders()
		}

		loader, err := resolveLoader(loaders, source)
		if err != nil {
			ext.Error.Set(span, true)
			return nil, err
		}

		schema, err = loader.Load(ctx, source)
		if err != nil {
			ext.Error.Set(span, true)
			return nil, err
		}
	}

	LoggerFromContext(ctx).Debug("schema loaded", "source", source, "types", len(schema.Types()), "directives", len(schema.Directives()))
	if err := g.Events.Emit(ctx, NewEvent(EventAfterLoadSchema, schema)); err != nil {
		return nil, err
	}

	return schema, nil
}

// generate maps, groups, indexes and renders schema.
func (g *Generator) generate(ctx context.Context, schema *Schema, opt Options, report *Report) error {
	m := BuildSchemaMap(schema).WithoutDirectives(opt.SkipDirectives)

	renderOpt := opt.Render
	renderOpt.Groups = ResolveGroups(m, opt.GroupBy)
	if len(renderOpt.Print.SkipDirectives) == 0 {
		renderOpt.Print.SkipDirectives = opt.SkipDirectives
	}

	var prettifier Prettifier
	if opt.Pretty {
		prettifier = g.Prettifier
		if prettifier == nil {
			prettifier = BuiltinPrettifier{}
		}
	}

	renderer := NewRenderer(renderOpt, g.FS, g.Events, prettifier)
	if g.Now != nil {
		renderer.now = g.Now
	}

	result, err := renderer.Render(ctx, m, NewRelationIndex(m))
	if err != nil {
		return err
	}

	report.Documents = result.Documents
	report.Skipped = result.Skipped
	report.Categories = result.Categories

	report.Sidebar, err = renderer.WriteSidebar(ctx, opt.SidebarName)
	if err != nil {
		return err
	}

	report.Homepage, err = renderer.WriteHomepage(ctx, opt.Homepage)
	if err != nil {
		return err
	}

	return nil
}

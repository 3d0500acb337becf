// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-openapi/inflect"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const (
	// categoryDescriptorName is the per-directory sidebar metafile.
	categoryDescriptorName = "_category_.yml"
	// documentExt is the extension of generated entity documents.
	documentExt = ".md"
	// generatedIndexType is the descriptor link type of generated category pages.
	generatedIndexType = "generated-index"
	// sidebarItemType is the sidebar entry type of a category directory.
	sidebarItemType = "autogenerated"
	// defaultSidebarName names the sidebar descriptor when caller does not provide one.
	defaultSidebarName = "schema"
)

// RenderOptions configures document placement and frontmatter.
type RenderOptions struct {
	// OutputDir is the root directory of generated files.
	OutputDir string
	Hierarchy HierarchyMode
	Groups    GroupMap
	// LinkRoot prefixes every cross-link URL.
	LinkRoot string
	// BaseURL is the URL segment under which generated documents live.
	BaseURL string
	// Index attaches generated-index link to every category descriptor.
	Index bool
	// Pagination keeps previous/next page links; disabled writes explicit nulls.
	Pagination bool
	HideTOC    bool
	// Workers bounds parallel document writes; zero selects GOMAXPROCS.
	Workers int
	Print   PrintOptions
	// Directives describes custom directives; nil disables descriptions.
	Directives *DirectiveRegistry
}

// CategoryDescriptor is the content of one category metafile.
type CategoryDescriptor struct {
	Label     string              `yaml:"label" json:"label"`
	Position  int                 `yaml:"position" json:"position"`
	ClassName string              `yaml:"className,omitempty" json:"className,omitempty"`
	Link      *GeneratedIndexLink `yaml:"link" json:"link"`
}

// GeneratedIndexLink turns category label into a generated overview page.
type GeneratedIndexLink struct {
	Type  string `yaml:"type" json:"type"`
	Title string `yaml:"title" json:"title"`
}

// RenderedDocument is one written entity document.
type RenderedDocument struct {
	Category Category
	Entity   string
	// Path is relative to output directory, slash separated.
	Path string
}

// SkippedEntity is one entity that produced no document.
type SkippedEntity struct {
	Category Category
	Entity   string
	Reason   string
	Err      error
}

// RenderResult summarizes one render pass.
type RenderResult struct {
	Documents []RenderedDocument
	Skipped   []SkippedEntity
	// Categories lists every directory that received a descriptor, in creation order.
	Categories []string
}

// sidebarEntry is one top-level category directory.
type sidebarEntry struct {
	dir      string
	position int
}

// renderTask is one resolved entity ready for parallel write.
type renderTask struct {
	index    int
	category Category
	entity   *Entity
	dir      string
	slug     string
}

// Renderer writes categorized documents and their descriptors.
type Renderer struct {
	opt        RenderOptions
	plan       hierarchyPlan
	fs         FileSystem
	events     *Emitter
	prettifier Prettifier
	now        func() time.Time

	mu         sync.Mutex
	positions  map[string]int
	resolved   map[string]bool
	categories []string
	sidebar    []sidebarEntry
}

// NewRenderer creates renderer; events and prettifier may be nil.
func NewRenderer(opt RenderOptions, fsys FileSystem, events *Emitter, prettifier Prettifier) *Renderer {
	if opt.Hierarchy == "" {
		opt.Hierarchy = HierarchyAPI
	}

	if opt.Print.Deprecated == "" {
		opt.Print.Deprecated = DeprecatedDefault
	}

	if fsys == nil {
		fsys = OSFileSystem{}
	}

	return &Renderer{
		opt: opt,
		plan: hierarchyPlan{
			mode:       opt.Hierarchy,
			deprecated: opt.Print.Deprecated,
			groups:     opt.Groups,
		},
		fs:         fsys,
		events:     events,
		prettifier: prettifier,
		now:        time.Now,
		positions:  make(map[string]int),
		resolved:   make(map[string]bool),
	}
}

// Links returns resolver producing URLs of documents placed by this renderer.
func (r *Renderer) Links(m *SchemaMap) LinkResolver {
	return &linker{
		plan:     r.plan,
		entities: m,
		linkRoot: r.opt.LinkRoot,
		baseURL:  r.opt.BaseURL,
	}
}

// Render writes one document per entity of m.
// Descriptors are created sequentially in canonical order before documents fan out.
func (r *Renderer) Render(ctx context.Context, m *SchemaMap, relations RelationSource) (*RenderResult, error) {
	logger := LoggerFromContext(ctx)
	result := &RenderResult{}

	if r.opt.Print.Deprecated == DeprecatedSkip {
		m = m.Filter(func(category Category, entity *Entity) bool {
			if !entity.Deprecated {
				return true
			}

			result.Skipped = append(result.Skipped, SkippedEntity{
				Category: category,
				Entity:   entity.Name,
				Reason:   "deprecated",
			})
			return false
		})

		if relations != nil {
			relations = visibleRelations{source: relations, entities: m}
		}
	}

	printer := NewPrinter(r.opt.Print, r.Links(m), relations, r.opt.Directives)

	var tasks []renderTask
	for _, category := range categoryOrder {
		for _, entity := range m.Entities(category) {
			slug, dir, err := r.entityLocation(category, entity)
			if err != nil {
				logger.Warn("skip entity", "category", category, "entity", entity.Name, "err", err)
				result.Skipped = append(result.Skipped, SkippedEntity{
					Category: category,
					Entity:   entity.Name,
					Reason:   "unsafe output path",
					Err:      err,
				})
				continue
			}

			if err := r.resolveDirectory(ctx, category, entity); err != nil {
				return nil, err
			}

			tasks = append(tasks, renderTask{
				index:    len(tasks),
				category: category,
				entity:   entity,
				dir:      dir,
				slug:     slug,
			})
		}
	}

	written := make([]*RenderedDocument, len(tasks))
	var skippedMu sync.Mutex
	var skipped []SkippedEntity

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers())
	for _, task := range tasks {
		eg.Go(func() error {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			default:
			}

			doc, reason, err := r.renderEntity(egCtx, printer, task)
			if err != nil || doc == nil {
				if err != nil {
					logger.Warn("skip entity", "category", task.category, "entity", task.entity.Name, "err", err)
				}

				skippedMu.Lock()
				skipped = append(skipped, SkippedEntity{
					Category: task.category,
					Entity:   task.entity.Name,
					Reason:   reason,
					Err:      err,
				})
				skippedMu.Unlock()
				return nil
			}

			logger.Debug("entity written", "category", task.category, "entity", task.entity.Name, "path", doc.Path)
			written[task.index] = doc
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, doc := range written {
		if doc != nil {
			result.Documents = append(result.Documents, *doc)
		}
	}

	sort.SliceStable(skipped, func(i, j int) bool {
		if skipped[i].Category != skipped[j].Category {
			return categoryIndex(skipped[i].Category) < categoryIndex(skipped[j].Category)
		}

		return skipped[i].Entity < skipped[j].Entity
	})

	result.Skipped = append(result.Skipped, skipped...)
	result.Categories = r.Categories()
	return result, nil
}

// Categories returns directories that received a descriptor, in creation order.
func (r *Renderer) Categories() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out
}

// workers resolves worker pool size.
func (r *Renderer) workers() int {
	if r.opt.Workers > 0 {
		return r.opt.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// entityLocation resolves slug and relative directory, rejecting unsafe output paths.
func (r *Renderer) entityLocation(category Category, entity *Entity) (string, string, error) {
	slug := slugify(entity.Name)
	if slug == "" {
		return "", "", fmt.Errorf("%w: entity %q has empty slug", ErrUnsafeOutputPath, entity.Name)
	}

	dir := r.plan.relativeDir(category, entity)
	rel := path.Join(dir, slug+documentExt)
	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		return "", "", fmt.Errorf("%w: %q", ErrUnsafeOutputPath, rel)
	}

	return slug, dir, nil
}

// resolveDirectory ensures a descriptor exists for every prefix of entity path.
func (r *Renderer) resolveDirectory(ctx context.Context, category Category, entity *Entity) error {
	segments := r.plan.segments(category, entity)

	parent := ""
	for level, segment := range segments {
		slug := slugify(segment.Name)
		if slug == "" {
			LoggerFromContext(ctx).Warn("drop path segment with empty slug",
				"category", category, "entity", entity.Name, "segment", segment.Name)
			continue
		}

		dir := path.Join(parent, slug)

		if err := r.ensureCategory(ctx, parent, dir, level, segment); err != nil {
			return err
		}

		parent = dir
	}

	return nil
}

// ensureCategory writes descriptor of dir once; existing files on disk are preserved.
func (r *Renderer) ensureCategory(ctx context.Context, parent, dir string, level int, segment pathSegment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.resolved[dir] {
		return nil
	}

	r.resolved[dir] = true

	position := segment.Position
	if position == 0 {
		r.positions[parent]++
		position = r.positions[parent]
	}

	descriptor := CategoryDescriptor{
		Label:     inflect.Titleize(segment.Name),
		Position:  position,
		ClassName: segment.ClassName,
	}

	if r.opt.Index {
		descriptor.Link = &GeneratedIndexLink{
			Type:  generatedIndexType,
			Title: descriptor.Label + " overview",
		}
	}

	if level == 0 {
		r.sidebar = append(r.sidebar, sidebarEntry{dir: dir, position: position})
	}

	r.categories = append(r.categories, dir)
	return r.writeCategory(ctx, dir, descriptor)
}

// writeCategory persists descriptor unless file already exists.
func (r *Renderer) writeCategory(ctx context.Context, dir string, descriptor CategoryDescriptor) error {
	fullDir := filepath.Join(r.opt.OutputDir, filepath.FromSlash(dir))
	target := filepath.Join(fullDir, categoryDescriptorName)

	if err := r.fs.EnsureDir(ctx, fullDir); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteCategory, dir, err)
	}

	exists, err := r.fs.FileExists(ctx, target)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteCategory, dir, err)
	}

	if exists {
		return nil
	}

	payload := &CategoryEvent{Dir: dir, Path: target, Descriptor: descriptor}
	before := NewEvent(EventBeforeGenerateIndexMetafile, payload)
	if err := r.events.Emit(ctx, before); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteCategory, dir, err)
	}

	if before.DefaultPrevented() {
		switch override := before.Output.(type) {
		case *CategoryDescriptor:
			payload.Descriptor = *override
		case CategoryDescriptor:
			payload.Descriptor = override
		default:
			return nil
		}
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)
	if err := encoder.Encode(payload.Descriptor); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteCategory, dir, err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteCategory, dir, err)
	}

	data := r.prettify(ctx, out.Bytes(), ContentYAML, target)
	if err := r.fs.SaveFile(ctx, target, data); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteCategory, dir, err)
	}

	return r.events.Emit(ctx, NewEvent(EventAfterGenerateIndexMetafile, payload))
}

// renderEntity prints and writes one document; a nil document without error means a listener suppressed it.
func (r *Renderer) renderEntity(ctx context.Context, printer *Printer, task renderTask) (doc *RenderedDocument, reason string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "gqlmarkdown.renderEntity")
	span.SetTag("category", string(task.category))
	span.SetTag("entity", task.entity.Name)
	defer func() {
		if v := recover(); v != nil {
			doc = nil
			reason = "panic"
			err = fmt.Errorf("%w %s: panic: %v", ErrRenderEntity, task.entity.Name, v)
		}

		if err != nil {
			ext.Error.Set(span, true)
			span.LogKV("error", err.Error())
		}

		span.Finish()
	}()

	rel := path.Join(task.dir, task.slug+documentExt)
	target := filepath.Join(r.opt.OutputDir, filepath.FromSlash(rel))
	payload := &EntityEvent{Category: task.category, Entity: task.entity, Path: target}

	before := NewEvent(EventBeforeRenderEntity, payload)
	if err := r.events.Emit(ctx, before); err != nil {
		return nil, "listener failed", fmt.Errorf("%w %s: %w", ErrRenderEntity, task.entity.Name, err)
	}

	var content string
	if before.DefaultPrevented() {
		switch override := before.Output.(type) {
		case string:
			content = override
		case []byte:
			content = string(override)
		default:
			return nil, "prevented by listener", nil
		}
	} else {
		printed, err := printer.Print(task.entity)
		if err != nil {
			return nil, "print failed", fmt.Errorf("%w %s: %w", ErrRenderEntity, task.entity.Name, err)
		}

		header, err := renderFrontMatter(r.frontMatter(task))
		if err != nil {
			return nil, "frontmatter failed", fmt.Errorf("%w %s: %w", ErrRenderEntity, task.entity.Name, err)
		}

		content = header + "\n" + printed.Markdown()
	}

	data := r.prettify(ctx, []byte(content), ContentMarkdown, target)
	if err := r.fs.SaveFile(ctx, target, data); err != nil {
		return nil, "write failed", fmt.Errorf("%w %s: %w", ErrRenderEntity, task.entity.Name, err)
	}

	payload.Content = string(data)
	if err := r.events.Emit(ctx, NewEvent(EventAfterRenderEntity, payload)); err != nil {
		return nil, "listener failed", fmt.Errorf("%w %s: %w", ErrRenderEntity, task.entity.Name, err)
	}

	return &RenderedDocument{Category: task.category, Entity: task.entity.Name, Path: rel}, "", nil
}

// frontMatter builds document header of task.
func (r *Renderer) frontMatter(task renderTask) frontMatter {
	fm := frontMatter{
		ID:                  task.slug,
		Title:               task.entity.Name,
		Slug:                joinURL(r.opt.BaseURL, task.dir, task.slug),
		HideTableOfContents: r.opt.HideTOC,
	}

	if task.entity.Deprecated {
		fm.SidebarClassName = deprecatedClassName
	}

	if !r.opt.Pagination {
		fm.PaginationNext = &yamlNull{}
		fm.PaginationPrev = &yamlNull{}
	}

	return fm
}

// prettify formats content, degrading to raw content with a warning on failure.
func (r *Renderer) prettify(ctx context.Context, content []byte, kind ContentKind, target string) []byte {
	if r.prettifier == nil {
		return content
	}

	out, err := r.prettifier.Prettify(content, kind)
	if err != nil {
		LoggerFromContext(ctx).Warn("prettify failed, keeping raw content", "path", target, "err", err)
		return content
	}

	return out
}

// WriteSidebar writes sidebar-<name>.json listing top-level categories in position order.
func (r *Renderer) WriteSidebar(ctx context.Context, name string) (string, error) {
	name = slugify(name)
	if name == "" {
		name = defaultSidebarName
	}

	r.mu.Lock()
	entries := append([]sidebarEntry(nil), r.sidebar...)
	r.mu.Unlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].position < entries[j].position
	})

	type sidebarItem struct {
		Type    string `json:"type"`
		DirName string `json:"dirName"`
	}

	items := make([]sidebarItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, sidebarItem{Type: sidebarItemType, DirName: entry.dir})
	}

	data, err := json.Marshal(map[string][]sidebarItem{name: items})
	if err != nil {
		return "", fmt.Errorf("encode sidebar: %w", err)
	}

	target := filepath.Join(r.opt.OutputDir, "sidebar-"+name+".json")
	if err := r.fs.SaveFile(ctx, target, r.prettify(ctx, data, ContentJSON, target)); err != nil {
		return "", fmt.Errorf("write sidebar: %w", err)
	}

	return target, nil
}

// WriteHomepage copies homepage template to output root; empty source selects the embedded default.
func (r *Renderer) WriteHomepage(ctx context.Context, source string) (string, error) {
	name := defaultHomepageName
	var text string

	if strings.TrimSpace(source) == "" {
		def, err := DefaultHomepage()
		if err != nil {
			return "", err
		}

		text = def
	} else {
		data, err := r.fs.ReadFile(ctx, source)
		if err != nil {
			return "", fmt.Errorf("%w %s: %w", ErrReadHomepage, source, err)
		}

		text = string(data)
		name = filepath.Base(source)
	}

	target := filepath.Join(r.opt.OutputDir, name)
	before := NewEvent(EventBeforeRenderHomepage, target)
	if err := r.events.Emit(ctx, before); err != nil {
		return "", err
	}

	if before.DefaultPrevented() {
		switch override := before.Output.(type) {
		case string:
			text = override
		case []byte:
			text = string(override)
		default:
			return "", nil
		}
	}

	content := expandHomepage(text, r.opt.BaseURL, r.now())
	if err := r.fs.SaveFile(ctx, target, r.prettify(ctx, []byte(content), ContentMarkdown, target)); err != nil {
		return "", fmt.Errorf("write homepage: %w", err)
	}

	if err := r.events.Emit(ctx, NewEvent(EventAfterRenderHomepage, target)); err != nil {
		return "", err
	}

	return target, nil
}

// categoryIndex returns canonical position of category.
func categoryIndex(category Category) int {
	for i, c := range categoryOrder {
		if c == category {
			return i
		}
	}

	return len(categoryOrder)
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GQLMD_"

const (
	// defaultOutputDir is used when configuration does not set output directory.
	defaultOutputDir = "docs/schema"
	// defaultLinkRoot prefixes cross-links when configuration does not set one.
	defaultLinkRoot = "/"
	// defaultBaseURL is the URL segment of generated documents.
	defaultBaseURL = "schema"
)

// Config is the user facing configuration decoded from file and environment.
type Config struct {
	Schema      string `yaml:"schema" toml:"schema" env:"SCHEMA"`
	OutputDir   string `yaml:"rootPath" toml:"rootPath" env:"ROOT_PATH"`
	LinkRoot    string `yaml:"linkRoot" toml:"linkRoot" env:"LINK_ROOT"`
	BaseURL     string `yaml:"baseURL" toml:"baseURL" env:"BASE_URL"`
	Homepage    string `yaml:"homepage" toml:"homepage" env:"HOMEPAGE"`
	Hierarchy   string `yaml:"hierarchy" toml:"hierarchy" env:"HIERARCHY"`
	GroupBy     string `yaml:"groupByDirective" toml:"groupByDirective" env:"GROUP_BY_DIRECTIVE"`
	SidebarName string `yaml:"sidebarName" toml:"sidebarName" env:"SIDEBAR_NAME"`
	// SkipDocDirectives hides entities and members annotated with these directives.
	SkipDocDirectives []string `yaml:"skipDocDirective" toml:"skipDocDirective" env:"SKIP_DOC_DIRECTIVE" envSeparator:","`
	Index             bool     `yaml:"index" toml:"index" env:"INDEX"`
	Pretty            bool     `yaml:"pretty" toml:"pretty" env:"PRETTY"`
	Pagination        bool     `yaml:"pagination" toml:"pagination" env:"PAGINATION"`
	TOC               bool     `yaml:"toc" toml:"toc" env:"TOC"`
	Workers           int      `yaml:"workers" toml:"workers" env:"WORKERS"`

	PrintTypeOptions PrintTypeConfig `yaml:"printTypeOptions" toml:"printTypeOptions" envPrefix:"PRINT_"`
	// CustomDirectives maps directive name or "*" to description template.
	CustomDirectives map[string]DirectiveConfig `yaml:"customDirective" toml:"customDirective"`
}

// PrintTypeConfig toggles printed document sections.
type PrintTypeConfig struct {
	CodeSection      bool   `yaml:"codeSection" toml:"codeSection" env:"CODE_SECTION"`
	RelatedTypes     bool   `yaml:"relatedTypeSection" toml:"relatedTypeSection" env:"RELATED_TYPE_SECTION"`
	TypeBadges       bool   `yaml:"typeBadges" toml:"typeBadges" env:"TYPE_BADGES"`
	ParentTypePrefix bool   `yaml:"parentTypePrefix" toml:"parentTypePrefix" env:"PARENT_TYPE_PREFIX"`
	Deprecated       string `yaml:"deprecated" toml:"deprecated" env:"DEPRECATED"`
}

// DirectiveConfig describes one custom directive.
type DirectiveConfig struct {
	// Descriptor is a text/template with .Directive, .Owner and .Args.
	Descriptor string `yaml:"descriptor" toml:"descriptor"`
	Tag        string `yaml:"tag" toml:"tag"`
}

// DefaultConfig returns configuration with every default applied.
func DefaultConfig() Config {
	return Config{
		OutputDir:   defaultOutputDir,
		LinkRoot:    defaultLinkRoot,
		BaseURL:     defaultBaseURL,
		Hierarchy:   string(HierarchyAPI),
		SidebarName: defaultSidebarName,
		Index:       false,
		Pretty:      false,
		Pagination:  true,
		TOC:         true,
		PrintTypeOptions: PrintTypeConfig{
			CodeSection:      true,
			RelatedTypes:     true,
			TypeBadges:       true,
			ParentTypePrefix: false,
			Deprecated:       string(DeprecatedDefault),
		},
	}
}

// LoadConfig reads optional YAML or TOML file over defaults, then applies GQLMD_ environment overrides.
func LoadConfig(path string) (Config, error) {
	return loadConfig(path, nil)
}

// loadConfig loads configuration; nil environ reads the process environment.
func loadConfig(path string, environ map[string]string) (Config, error) {
	cfg := DefaultConfig()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrReadConfigFile, err)
		}

		if err := decodeConfig(path, data, &cfg); err != nil {
			return Config{}, err
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("%w: environment: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// decodeConfig selects decoder by file extension.
func decodeConfig(path string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	default:
		return fmt.Errorf("%w: unsupported config extension %q (want .yaml, .yml or .toml)", ErrInvalidConfig, ext)
	}

	return nil
}

// Options is validated runtime configuration of one generation run.
type Options struct {
	// Schema is the schema source passed to loaders.
	Schema string
	Render RenderOptions
	// GroupBy is nil when grouping is disabled.
	GroupBy *GroupBy
	// SkipDirectives drops annotated entities and hides annotated members.
	SkipDirectives []string
	// Homepage is a user homepage template path; empty selects the embedded default.
	Homepage    string
	Pretty      bool
	SidebarName string
}

// Options validates configuration and resolves runtime options.
func (c Config) Options() (Options, error) {
	hierarchy, err := ParseHierarchyMode(c.Hierarchy)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	deprecated, err := ParseDeprecatedPolicy(c.PrintTypeOptions.Deprecated)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var groupBy *GroupBy
	if strings.TrimSpace(c.GroupBy) != "" {
		groupBy, err = ParseGroupBy(c.GroupBy)
		if err != nil {
			return Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	skip := make([]string, 0, len(c.SkipDocDirectives))
	for _, raw := range c.SkipDocDirectives {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		name, err := ParseDirectiveName(raw)
		if err != nil {
			return Options{}, fmt.Errorf("%w: skipDocDirective: %w", ErrInvalidConfig, err)
		}

		skip = append(skip, name)
	}

	registry, err := c.directiveRegistry()
	if err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Workers < 0 {
		return Options{}, fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}

	outputDir := strings.TrimSpace(c.OutputDir)
	if outputDir == "" {
		outputDir = defaultOutputDir
	}

	linkRoot := strings.TrimSpace(c.LinkRoot)
	if linkRoot == "" {
		linkRoot = defaultLinkRoot
	}

	return Options{
		Schema: strings.TrimSpace(c.Schema),
		Render: RenderOptions{
			OutputDir:  outputDir,
			Hierarchy:  hierarchy,
			LinkRoot:   linkRoot,
			BaseURL:    strings.Trim(strings.TrimSpace(c.BaseURL), "/"),
			Index:      c.Index,
			Pagination: c.Pagination,
			HideTOC:    !c.TOC,
			Workers:    c.Workers,
			Print: PrintOptions{
				Deprecated:       deprecated,
				HideCodeSection:  !c.PrintTypeOptions.CodeSection,
				HideRelatedTypes: !c.PrintTypeOptions.RelatedTypes,
				HideTypeBadges:   !c.PrintTypeOptions.TypeBadges,
				ParentTypePrefix: c.PrintTypeOptions.ParentTypePrefix,
				SkipDirectives:   skip,
			},
			Directives: registry,
		},
		GroupBy:        groupBy,
		SkipDirectives: skip,
		Homepage:       strings.TrimSpace(c.Homepage),
		Pretty:         c.Pretty,
		SidebarName:    c.SidebarName,
	}, nil
}

// directiveRegistry builds template descriptors in name order.
func (c Config) directiveRegistry() (*DirectiveRegistry, error) {
	if len(c.CustomDirectives) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(c.CustomDirectives))
	for name := range c.CustomDirectives {
		names = append(names, name)
	}

	sort.Strings(names)

	registry := NewDirectiveRegistry()
	for _, name := range names {
		spec := c.CustomDirectives[name]
		descriptor, err := NewTemplateDescriptor(name, spec.Descriptor, spec.Tag)
		if err != nil {
			return nil, err
		}

		if err := registry.Register(name, descriptor); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

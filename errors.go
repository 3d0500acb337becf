// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import "errors"

var (
	// ErrReadSchemaFile is returned when schema source loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrParseSchema is returned when SDL or introspection decoding fails.
	ErrParseSchema = errors.New("parse schema")
	// ErrNoSchemaLoader is returned when no registered loader accepts the schema source.
	ErrNoSchemaLoader = errors.New("no schema loader for source")
	// ErrInvalidConfig wraps every configuration resolution failure.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrReadConfigFile is returned when configuration file loading fails.
	ErrReadConfigFile = errors.New("read config file")
	// ErrInvalidGroupBy is returned when group-by directive expression is malformed.
	ErrInvalidGroupBy = errors.New("invalid group-by directive expression")
	// ErrInvalidDirectiveName is returned when directive name is not a valid GraphQL name.
	ErrInvalidDirectiveName = errors.New("invalid directive name")
	// ErrInvalidHierarchy is returned when hierarchy mode is not supported.
	ErrInvalidHierarchy = errors.New("invalid hierarchy mode")
	// ErrInvalidDeprecatedPolicy is returned when deprecation display policy is not supported.
	ErrInvalidDeprecatedPolicy = errors.New("invalid deprecated policy")
	// ErrParseDirectiveTemplate is returned when custom directive description template parsing fails.
	ErrParseDirectiveTemplate = errors.New("parse directive template")
	// ErrExecuteDirectiveTemplate is returned when custom directive description rendering fails.
	ErrExecuteDirectiveTemplate = errors.New("execute directive template")
	// ErrRenderEntity is returned when one entity document cannot be rendered.
	ErrRenderEntity = errors.New("render entity")
	// ErrUnsafeOutputPath is returned when entity name does not produce a usable file name.
	ErrUnsafeOutputPath = errors.New("unsafe output path")
	// ErrWriteCategory is returned when category descriptor cannot be persisted.
	ErrWriteCategory = errors.New("write category descriptor")
	// ErrReadHomepage is returned when homepage template cannot be loaded.
	ErrReadHomepage = errors.New("read homepage template")
)

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// Loader builds a schema arena from one source location.
type Loader interface {
	// Supports reports whether loader understands source.
	Supports(source string) bool
	// Load reads and converts source into schema arena.
	Load(ctx context.Context, source string) (*Schema, error)
}

// DefaultLoaders returns built-in loaders in resolution order.
func DefaultLoaders() []Loader {
	return []Loader{SDLLoader{}, IntrospectionLoader{}}
}

// resolveLoader picks the first loader supporting source.
func resolveLoader(loaders []Loader, source string) (Loader, error) {
	for _, loader := range loaders {
		if loader != nil && loader.Supports(source) {
			return loader, nil
		}
	}

	return nil, fmt.Errorf("%w %q", ErrNoSchemaLoader, source)
}

// sdlExtensions lists file extensions handled by SDLLoader.
var sdlExtensions = map[string]struct{}{
	".graphql":  {},
	".graphqls": {},
	".gql":      {},
}

// SDLLoader loads schema definition language files or glob patterns.
type SDLLoader struct{}

// Supports reports whether source points to SDL files.
func (SDLLoader) Supports(source string) bool {
	_, ok := sdlExtensions[strings.ToLower(filepath.Ext(strings.TrimSpace(source)))]
	return ok
}

// Load reads every file matched by source and builds the schema.
func (SDLLoader) Load(ctx context.Context, source string) (*Schema, error) {
	paths, err := filepath.Glob(strings.TrimSpace(source))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadSchemaFile, source, err)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w %q: no files matched", ErrReadSchemaFile, source)
	}

	sort.Strings(paths)
	sources := make([]*ast.Source, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrReadSchemaFile, path, err)
		}

		sources = append(sources, &ast.Source{Name: path, Input: string(data)})
	}

	return loadSDLSources(sources...)
}

// ParseSDL builds schema arena from SDL text.
func ParseSDL(sdl string) (*Schema, error) {
	return loadSDLSources(&ast.Source{Name: "schema.graphql", Input: sdl})
}

// loadSDLSources validates sources with gqlparser and converts the result.
func loadSDLSources(sources ...*ast.Source) (*Schema, error) {
	schema, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseSchema, err)
	}

	return FromAST(schema, sources...), nil
}

// FromAST converts gqlparser schema into arena, ordering types by declaration
// position across sources. Built-in prelude definitions are excluded.
func FromAST(schema *ast.Schema, sources ...*ast.Source) *Schema {
	out := NewSchema()
	if schema == nil {
		return out
	}

	out.Description = schema.Description
	if schema.Query != nil {
		out.QueryType = schema.Query.Name
	}

	if schema.Mutation != nil {
		out.MutationType = schema.Mutation.Name
	}

	if schema.Subscription != nil {
		out.SubscriptionType = schema.Subscription.Name
	}

	rank := make(map[string]int, len(sources))
	for i, src := range sources {
		rank[src.Name] = i
	}

	definitions := make([]*ast.Definition, 0, len(schema.Types))
	for _, def := range schema.Types {
		if def.BuiltIn || isIntrospectionName(def.Name) {
			continue
		}

		definitions = append(definitions, def)
	}

	sort.SliceStable(definitions, func(i, j int) bool {
		return positionLess(definitions[i].Position, definitions[i].Name, definitions[j].Position, definitions[j].Name, rank)
	})

	for _, def := range definitions {
		out.AddType(entityFromDefinition(def))
	}

	directives := make([]*ast.DirectiveDefinition, 0, len(schema.Directives))
	for _, def := range schema.Directives {
		if isBuiltinPosition(def.Position) || (def.Position == nil && isSpecifiedDirective(def.Name)) {
			continue
		}

		directives = append(directives, def)
	}

	sort.SliceStable(directives, func(i, j int) bool {
		return positionLess(directives[i].Position, directives[i].Name, directives[j].Position, directives[j].Name, rank)
	})

	for _, def := range directives {
		out.AddDirective(entityFromDirectiveDefinition(def))
	}

	return out
}

// positionLess orders by source rank and offset; definitions without position sort last by name.
func positionLess(left *ast.Position, leftName string, right *ast.Position, rightName string, rank map[string]int) bool {
	switch {
	case left == nil && right == nil:
		return leftName < rightName
	case left == nil:
		return false
	case right == nil:
		return true
	}

	leftRank, rightRank := sourceRank(left, rank), sourceRank(right, rank)
	if leftRank != rightRank {
		return leftRank < rightRank
	}

	if left.Src != nil && right.Src != nil && left.Src.Name != right.Src.Name {
		return left.Src.Name < right.Src.Name
	}

	if left.Start != right.Start {
		return left.Start < right.Start
	}

	return leftName < rightName
}

// sourceRank returns index of position source in loader order; unknown sources sort after known ones.
func sourceRank(pos *ast.Position, rank map[string]int) int {
	if pos.Src == nil {
		return len(rank)
	}

	if index, ok := rank[pos.Src.Name]; ok {
		return index
	}

	return len(rank)
}

// isBuiltinPosition reports whether position belongs to gqlparser prelude.
func isBuiltinPosition(pos *ast.Position) bool {
	return pos != nil && pos.Src != nil && pos.Src.BuiltIn
}

// entityFromDefinition converts one named type definition.
func entityFromDefinition(def *ast.Definition) *Entity {
	entity := &Entity{
		Name:          def.Name,
		Description:   def.Description,
		Interfaces:    append([]string(nil), def.Interfaces...),
		PossibleTypes: append([]string(nil), def.Types...),
		Directives:    directivesFromAST(def.Directives),
		HasSyntax:     def.Position != nil,
	}
	entity.Deprecated, entity.DeprecationReason = deprecationFromAST(def.Directives)

	switch def.Kind {
	case ast.Object:
		entity.Kind = KindObject
	case ast.Interface:
		entity.Kind = KindInterface
	case ast.Union:
		entity.Kind = KindUnion
	case ast.Enum:
		entity.Kind = KindEnum
	case ast.InputObject:
		entity.Kind = KindInput
	default:
		entity.Kind = KindScalar
	}

	if def.Kind == ast.Enum {
		for _, value := range def.EnumValues {
			field := &Field{
				Name:        value.Name,
				Description: value.Description,
				Directives:  directivesFromAST(value.Directives),
			}
			field.Deprecated, field.DeprecationReason = deprecationFromAST(value.Directives)
			entity.Fields = append(entity.Fields, field)
		}

		return entity
	}

	for _, fieldDef := range def.Fields {
		if isIntrospectionName(fieldDef.Name) {
			continue
		}

		entity.Fields = append(entity.Fields, fieldFromAST(fieldDef))
	}

	return entity
}

// entityFromDirectiveDefinition converts one directive definition.
func entityFromDirectiveDefinition(def *ast.DirectiveDefinition) *Entity {
	entity := &Entity{
		Kind:        KindDirective,
		Name:        def.Name,
		Description: def.Description,
		Repeatable:  def.IsRepeatable,
		HasSyntax:   def.Position != nil,
	}

	for _, location := range def.Locations {
		entity.Locations = append(entity.Locations, string(location))
	}

	for _, arg := range def.Arguments {
		entity.Args = append(entity.Args, argumentFromAST(arg))
	}

	return entity
}

// fieldFromAST converts field or input field definition.
func fieldFromAST(def *ast.FieldDefinition) *Field {
	field := &Field{
		Name:        def.Name,
		Description: def.Description,
		Type:        typeRefFromAST(def.Type),
		Directives:  directivesFromAST(def.Directives),
	}
	field.Deprecated, field.DeprecationReason = deprecationFromAST(def.Directives)

	if def.DefaultValue != nil {
		field.DefaultValue = def.DefaultValue.String()
		field.HasDefault = true
	}

	for _, arg := range def.Arguments {
		field.Args = append(field.Args, argumentFromAST(arg))
	}

	return field
}

// argumentFromAST converts argument definition.
func argumentFromAST(def *ast.ArgumentDefinition) *Field {
	field := &Field{
		Name:        def.Name,
		Description: def.Description,
		Type:        typeRefFromAST(def.Type),
		Directives:  directivesFromAST(def.Directives),
	}
	field.Deprecated, field.DeprecationReason = deprecationFromAST(def.Directives)

	if def.DefaultValue != nil {
		field.DefaultValue = def.DefaultValue.String()
		field.HasDefault = true
	}

	return field
}

// typeRefFromAST converts wrapped type reference.
func typeRefFromAST(t *ast.Type) *TypeRef {
	if t == nil {
		return nil
	}

	if t.Elem != nil {
		return &TypeRef{Elem: typeRefFromAST(t.Elem), NonNull: t.NonNull}
	}

	return &TypeRef{Name: t.NamedType, NonNull: t.NonNull}
}

// directivesFromAST converts applied directives keeping declaration order.
func directivesFromAST(list ast.DirectiveList) []Directive {
	if len(list) == 0 {
		return nil
	}

	out := make([]Directive, 0, len(list))
	for _, directive := range list {
		converted := Directive{Name: directive.Name}
		for _, arg := range directive.Arguments {
			if arg.Value == nil {
				continue
			}

			value := arg.Value.Raw
			if arg.Value.Kind == ast.ListValue || arg.Value.Kind == ast.ObjectValue {
				value = arg.Value.String()
			}

			converted.Args = append(converted.Args, Argument{
				Name:    arg.Name,
				Value:   value,
				Literal: arg.Value.String(),
			})
		}

		out = append(out, converted)
	}

	return out
}

// deprecationFromAST reads @deprecated marker and reason.
func deprecationFromAST(list ast.DirectiveList) (bool, string) {
	directive := list.ForName(deprecatedDirectiveName)
	if directive == nil {
		return false, ""
	}

	reason := defaultDeprecationReason
	if arg := directive.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		reason = arg.Value.Raw
	}

	return true, reason
}

// specifiedScalars are scalars every GraphQL schema provides implicitly.
var specifiedScalars = map[string]struct{}{
	"String":  {},
	"Int":     {},
	"Float":   {},
	"Boolean": {},
	"ID":      {},
}

// specifiedDirectives are directives every GraphQL schema provides implicitly.
var specifiedDirectives = map[string]struct{}{
	"skip":        {},
	"include":     {},
	"deprecated":  {},
	"specifiedBy": {},
	"oneOf":       {},
	"defer":       {},
}

// isSpecifiedDirective reports whether name is a built-in directive.
func isSpecifiedDirective(name string) bool {
	_, ok := specifiedDirectives[name]
	return ok
}

// IntrospectionLoader loads introspection query results stored as JSON.
// Entities built this way carry no syntax metadata.
type IntrospectionLoader struct{}

// Supports reports whether source is a JSON file.
func (IntrospectionLoader) Supports(source string) bool {
	return strings.EqualFold(filepath.Ext(strings.TrimSpace(source)), ".json")
}

// Load reads introspection JSON and converts it into schema arena.
func (IntrospectionLoader) Load(_ context.Context, source string) (*Schema, error) {
	data, err := os.ReadFile(strings.TrimSpace(source))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadSchemaFile, source, err)
	}

	return ParseIntrospection(data)
}

// introspectionResult accepts both raw and data-wrapped introspection payloads.
type introspectionResult struct {
	Data *struct {
		Schema *introspectionSchema `json:"__schema"`
	} `json:"data"`
	Schema *introspectionSchema `json:"__schema"`
}

type introspectionSchema struct {
	Description      string                   `json:"description"`
	QueryType        *introspectionNamed      `json:"queryType"`
	MutationType     *introspectionNamed      `json:"mutationType"`
	SubscriptionType *introspectionNamed      `json:"subscriptionType"`
	Types            []introspectionType      `json:"types"`
	Directives       []introspectionDirective `json:"directives"`
}

type introspectionNamed struct {
	Name string `json:"name"`
}

type introspectionType struct {
	Kind          string                    `json:"kind"`
	Name          string                    `json:"name"`
	Description   string                    `json:"description"`
	Fields        []introspectionField      `json:"fields"`
	InputFields   []introspectionInputValue `json:"inputFields"`
	Interfaces    []introspectionTypeRef    `json:"interfaces"`
	EnumValues    []introspectionEnumValue  `json:"enumValues"`
	PossibleTypes []introspectionTypeRef    `json:"possibleTypes"`
}

type introspectionField struct {
	Name              string                    `json:"name"`
	Description       string                    `json:"description"`
	Args              []introspectionInputValue `json:"args"`
	Type              introspectionTypeRef      `json:"type"`
	IsDeprecated      bool                      `json:"isDeprecated"`
	DeprecationReason string                    `json:"deprecationReason"`
}

type introspectionInputValue struct {
	Name              string               `json:"name"`
	Description       string               `json:"description"`
	Type              introspectionTypeRef `json:"type"`
	DefaultValue      *string              `json:"defaultValue"`
	IsDeprecated      bool                 `json:"isDeprecated"`
	DeprecationReason string               `json:"deprecationReason"`
}

type introspectionEnumValue struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	IsDeprecated      bool   `json:"isDeprecated"`
	DeprecationReason string `json:"deprecationReason"`
}

type introspectionTypeRef struct {
	Kind   string                `json:"kind"`
	Name   string                `json:"name"`
	OfType *introspectionTypeRef `json:"ofType"`
}

type introspectionDirective struct {
	Name         string                    `json:"name"`
	Description  string                    `json:"description"`
	Locations    []string                  `json:"locations"`
	Args         []introspectionInputValue `json:"args"`
	IsRepeatable bool                      `json:"isRepeatable"`
}

// ParseIntrospection converts introspection JSON into schema arena.
func ParseIntrospection(data []byte) (*Schema, error) {
	var result introspectionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseSchema, err)
	}

	raw := result.Schema
	if raw == nil && result.Data != nil {
		raw = result.Data.Schema
	}

	if raw == nil {
		return nil, fmt.Errorf("%w: missing __schema object", ErrParseSchema)
	}

	out := NewSchema()
	out.Description = raw.Description
	if raw.QueryType != nil {
		out.QueryType = raw.QueryType.Name
	}

	if raw.MutationType != nil {
		out.MutationType = raw.MutationType.Name
	}

	if raw.SubscriptionType != nil {
		out.SubscriptionType = raw.SubscriptionType.Name
	}

	for _, typ := range raw.Types {
		if isIntrospectionName(typ.Name) {
			continue
		}

		if _, ok := specifiedScalars[typ.Name]; ok && typ.Kind == "SCALAR" {
			continue
		}

		out.AddType(entityFromIntrospection(typ))
	}

	for _, directive := range raw.Directives {
		if isSpecifiedDirective(directive.Name) {
			continue
		}

		entity := &Entity{
			Kind:        KindDirective,
			Name:        directive.Name,
			Description: directive.Description,
			Locations:   append([]string(nil), directive.Locations...),
			Repeatable:  directive.IsRepeatable,
		}

		for _, arg := range directive.Args {
			entity.Args = append(entity.Args, inputValueFromIntrospection(arg))
		}

		out.AddDirective(entity)
	}

	return out, nil
}

// entityFromIntrospection converts one introspection type.
func entityFromIntrospection(typ introspectionType) *Entity {
	entity := &Entity{
		Name:        typ.Name,
		Description: typ.Description,
	}

	switch typ.Kind {
	case "OBJECT":
		entity.Kind = KindObject
	case "INTERFACE":
		entity.Kind = KindInterface
	case "UNION":
		entity.Kind = KindUnion
	case "ENUM":
		entity.Kind = KindEnum
	case "INPUT_OBJECT":
		entity.Kind = KindInput
	default:
		entity.Kind = KindScalar
	}

	for _, ref := range typ.Interfaces {
		entity.Interfaces = append(entity.Interfaces, typeRefFromIntrospection(ref).NamedType())
	}

	for _, ref := range typ.PossibleTypes {
		entity.PossibleTypes = append(entity.PossibleTypes, typeRefFromIntrospection(ref).NamedType())
	}

	for _, field := range typ.Fields {
		if isIntrospectionName(field.Name) {
			continue
		}

		converted := &Field{
			Name:              field.Name,
			Description:       field.Description,
			Type:              typeRefFromIntrospection(field.Type),
			Deprecated:        field.IsDeprecated,
			DeprecationReason: field.DeprecationReason,
		}

		for _, arg := range field.Args {
			converted.Args = append(converted.Args, inputValueFromIntrospection(arg))
		}

		entity.Fields = append(entity.Fields, converted)
	}

	for _, input := range typ.InputFields {
		entity.Fields = append(entity.Fields, inputValueFromIntrospection(input))
	}

	for _, value := range typ.EnumValues {
		entity.Fields = append(entity.Fields, &Field{
			Name:              value.Name,
			Description:       value.Description,
			Deprecated:        value.IsDeprecated,
			DeprecationReason: value.DeprecationReason,
		})
	}

	return entity
}

// inputValueFromIntrospection converts argument or input field.
func inputValueFromIntrospection(value introspectionInputValue) *Field {
	field := &Field{
		Name:              value.Name,
		Description:       value.Description,
		Type:              typeRefFromIntrospection(value.Type),
		Deprecated:        value.IsDeprecated,
		DeprecationReason: value.DeprecationReason,
	}

	if value.DefaultValue != nil {
		field.DefaultValue = *value.DefaultValue
		field.HasDefault = true
	}

	return field
}

// typeRefFromIntrospection converts nested introspection type reference.
func typeRefFromIntrospection(ref introspectionTypeRef) *TypeRef {
	switch ref.Kind {
	case "NON_NULL":
		if ref.OfType == nil {
			return &TypeRef{Name: ref.Name, NonNull: true}
		}

		inner := typeRefFromIntrospection(*ref.OfType)
		inner.NonNull = true
		return inner
	case "LIST":
		if ref.OfType == nil {
			return &TypeRef{Elem: &TypeRef{}}
		}

		return &TypeRef{Elem: typeRefFromIntrospection(*ref.OfType)}
	default:
		return &TypeRef{Name: ref.Name}
	}
}

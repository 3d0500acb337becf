// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

// Category is one classification bucket of entities.
type Category string

const (
	// CategoryQueries holds query root fields.
	CategoryQueries Category = "queries"
	// CategoryMutations holds mutation root fields.
	CategoryMutations Category = "mutations"
	// CategorySubscriptions holds subscription root fields.
	CategorySubscriptions Category = "subscriptions"
	// CategoryObjects holds object types.
	CategoryObjects Category = "objects"
	// CategoryUnions holds union types.
	CategoryUnions Category = "unions"
	// CategoryInterfaces holds interface types.
	CategoryInterfaces Category = "interfaces"
	// CategoryEnums holds enum types.
	CategoryEnums Category = "enums"
	// CategoryInputs holds input object types.
	CategoryInputs Category = "inputs"
	// CategoryScalars holds scalar types.
	CategoryScalars Category = "scalars"
	// CategoryDirectives holds directive definitions.
	CategoryDirectives Category = "directives"
)

// categoryOrder is the canonical category order used for iteration and output.
var categoryOrder = []Category{
	CategoryQueries,
	CategoryMutations,
	CategorySubscriptions,
	CategoryObjects,
	CategoryUnions,
	CategoryInterfaces,
	CategoryEnums,
	CategoryInputs,
	CategoryScalars,
	CategoryDirectives,
}

// typeCategories are categories holding named types addressable by a type reference.
var typeCategories = []Category{
	CategoryObjects,
	CategoryUnions,
	CategoryInterfaces,
	CategoryEnums,
	CategoryInputs,
	CategoryScalars,
}

// categorySingular maps category to its singular badge label.
var categorySingular = map[Category]string{
	CategoryQueries:       "query",
	CategoryMutations:     "mutation",
	CategorySubscriptions: "subscription",
	CategoryObjects:       "object",
	CategoryUnions:        "union",
	CategoryInterfaces:    "interface",
	CategoryEnums:         "enum",
	CategoryInputs:        "input",
	CategoryScalars:       "scalar",
	CategoryDirectives:    "directive",
}

// Categories returns all categories in canonical order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// IsOperation reports whether category holds root-operation fields.
func (c Category) IsOperation() bool {
	return c == CategoryQueries || c == CategoryMutations || c == CategorySubscriptions
}

// Singular returns singular category label.
func (c Category) Singular() string {
	if label, ok := categorySingular[c]; ok {
		return label
	}

	return string(c)
}

// operationCategory maps root operation type to its category.
func operationCategory(op OperationType) Category {
	switch op {
	case OperationMutation:
		return CategoryMutations
	case OperationSubscription:
		return CategorySubscriptions
	default:
		return CategoryQueries
	}
}

// kindCategory maps named type kind to its category.
func kindCategory(kind Kind) (Category, bool) {
	switch kind {
	case KindObject:
		return CategoryObjects, true
	case KindUnion:
		return CategoryUnions, true
	case KindInterface:
		return CategoryInterfaces, true
	case KindEnum:
		return CategoryEnums, true
	case KindInput:
		return CategoryInputs, true
	case KindScalar:
		return CategoryScalars, true
	case KindDirective:
		return CategoryDirectives, true
	default:
		return "", false
	}
}

// bucket is one ordered category of entities.
type bucket struct {
	names    []string
	entities map[string]*Entity
}

// add appends entity keeping first registration order.
func (b *bucket) add(entity *Entity) {
	if _, ok := b.entities[entity.Name]; !ok {
		b.names = append(b.names, entity.Name)
	}

	b.entities[entity.Name] = entity
}

// SchemaMap is an immutable snapshot of entities partitioned by category.
type SchemaMap struct {
	buckets map[Category]*bucket
}

// newSchemaMap creates map with empty buckets for every category.
func newSchemaMap() *SchemaMap {
	m := &SchemaMap{buckets: make(map[Category]*bucket, len(categoryOrder))}
	for _, category := range categoryOrder {
		m.buckets[category] = &bucket{entities: make(map[string]*Entity)}
	}

	return m
}

// BuildSchemaMap partitions schema entities into category buckets.
// Root operation types are represented by their fields, not as objects.
func BuildSchemaMap(schema *Schema) *SchemaMap {
	m := newSchemaMap()
	if schema == nil {
		return m
	}

	for _, op := range []OperationType{OperationQuery, OperationMutation, OperationSubscription} {
		target := m.buckets[operationCategory(op)]
		for _, entity := range schema.Operations(op) {
			target.add(entity)
		}
	}

	for _, entity := range schema.Types() {
		if isIntrospectionName(entity.Name) || schema.isRootTypeName(entity.Name) {
			continue
		}

		category, ok := kindCategory(entity.Kind)
		if !ok || category == CategoryDirectives {
			continue
		}

		m.buckets[category].add(entity)
	}

	for _, directive := range schema.Directives() {
		m.buckets[CategoryDirectives].add(directive)
	}

	return m
}

// Entities returns category entities in declaration order.
func (m *SchemaMap) Entities(category Category) []*Entity {
	if m == nil {
		return nil
	}

	b, ok := m.buckets[category]
	if !ok {
		return nil
	}

	out := make([]*Entity, 0, len(b.names))
	for _, name := range b.names {
		out = append(out, b.entities[name])
	}

	return out
}

// Names returns category entity names in declaration order.
func (m *SchemaMap) Names(category Category) []string {
	if m == nil {
		return nil
	}

	b, ok := m.buckets[category]
	if !ok {
		return nil
	}

	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// Entity returns entity by category and name.
func (m *SchemaMap) Entity(category Category, name string) (*Entity, bool) {
	if m == nil {
		return nil, false
	}

	b, ok := m.buckets[category]
	if !ok {
		return nil, false
	}

	entity, ok := b.entities[name]
	return entity, ok
}

// Len returns number of entities in category.
func (m *SchemaMap) Len(category Category) int {
	if m == nil {
		return 0
	}

	if b, ok := m.buckets[category]; ok {
		return len(b.names)
	}

	return 0
}

// TypeCategory resolves the category of a named type referenced by a field.
func (m *SchemaMap) TypeCategory(name string) (Category, bool) {
	for _, category := range typeCategories {
		if _, ok := m.Entity(category, name); ok {
			return category, true
		}
	}

	return "", false
}

// Filter returns a new map holding only entities accepted by keep.
func (m *SchemaMap) Filter(keep func(Category, *Entity) bool) *SchemaMap {
	out := newSchemaMap()
	for _, category := range categoryOrder {
		for _, entity := range m.Entities(category) {
			if keep(category, entity) {
				out.buckets[category].add(entity)
			}
		}
	}

	return out
}

// WithoutDirectives drops entities annotated with any of directive names.
func (m *SchemaMap) WithoutDirectives(names []string) *SchemaMap {
	if len(names) == 0 {
		return m
	}

	return m.Filter(func(_ Category, entity *Entity) bool {
		return !hasDirective(entity.Directives, names...)
	})
}

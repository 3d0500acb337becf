// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

// RelationKind names one kind of cross reference between entities.
type RelationKind string

const (
	// RelationReturn lists operations returning the target.
	RelationReturn RelationKind = "return"
	// RelationField lists entities declaring a field or argument of the target type.
	RelationField RelationKind = "field"
	// RelationUnion lists unions having the target as member.
	RelationUnion RelationKind = "union"
	// RelationInterface lists objects and interfaces implementing the target.
	RelationInterface RelationKind = "interface"
	// RelationImplementation is the union of interface and union relations.
	RelationImplementation RelationKind = "implementation"
)

// relationScanCategories lists categories inspected per relation kind.
var relationScanCategories = map[RelationKind][]Category{
	RelationReturn: {CategoryQueries, CategoryMutations, CategorySubscriptions},
	RelationField: {
		CategoryQueries,
		CategoryMutations,
		CategorySubscriptions,
		CategoryObjects,
		CategoryInterfaces,
		CategoryInputs,
		CategoryDirectives,
	},
	RelationUnion:     {CategoryUnions},
	RelationInterface: {CategoryObjects, CategoryInterfaces},
}

// Relations maps category to ordered, deduplicated referencing entities.
type Relations map[Category][]*Entity

// add appends entity to category unless the name is already present.
func (r Relations) add(category Category, entity *Entity) {
	for _, existing := range r[category] {
		if existing.Name == entity.Name {
			return
		}
	}

	r[category] = append(r[category], entity)
}

// Names returns referencing entity names for category.
func (r Relations) Names(category Category) []string {
	out := make([]string, 0, len(r[category]))
	for _, entity := range r[category] {
		out = append(out, entity.Name)
	}

	return out
}

// Categories returns non-empty categories in canonical order.
func (r Relations) Categories() []Category {
	out := make([]Category, 0, len(r))
	for _, category := range categoryOrder {
		if len(r[category]) > 0 {
			out = append(out, category)
		}
	}

	return out
}

// Len returns total number of referencing entities.
func (r Relations) Len() int {
	total := 0
	for _, entities := range r {
		total += len(entities)
	}

	return total
}

// RelationsOf resolves relations of kind for target by scanning a freshly built schema map.
func RelationsOf(kind RelationKind, target *Entity, schema *Schema) Relations {
	if target == nil {
		return Relations{}
	}

	return scanRelations(kind, target.Name, BuildSchemaMap(schema))
}

// RelationOfReturn lists operations whose unwrapped return type is target.
func RelationOfReturn(target *Entity, schema *Schema) Relations {
	return RelationsOf(RelationReturn, target, schema)
}

// RelationOfField lists entities declaring a field or argument of target type.
func RelationOfField(target *Entity, schema *Schema) Relations {
	return RelationsOf(RelationField, target, schema)
}

// RelationOfUnion lists unions having target as member.
func RelationOfUnion(target *Entity, schema *Schema) Relations {
	return RelationsOf(RelationUnion, target, schema)
}

// RelationOfInterface lists objects and interfaces implementing target.
func RelationOfInterface(target *Entity, schema *Schema) Relations {
	return RelationsOf(RelationInterface, target, schema)
}

// RelationOfImplementation merges interface and union relations of target.
func RelationOfImplementation(target *Entity, schema *Schema) Relations {
	return RelationsOf(RelationImplementation, target, schema)
}

// scanRelations linearly scans relevant categories for references to name.
func scanRelations(kind RelationKind, name string, m *SchemaMap) Relations {
	out := Relations{}
	if kind == RelationImplementation {
		for _, part := range []RelationKind{RelationInterface, RelationUnion} {
			for category, entities := range scanRelations(part, name, m) {
				for _, entity := range entities {
					out.add(category, entity)
				}
			}
		}

		return out
	}

	for _, category := range relationScanCategories[kind] {
		for _, candidate := range m.Entities(category) {
			for _, ref := range referencedNames(kind, candidate) {
				if ref == name {
					out.add(category, candidate)
					break
				}
			}
		}
	}

	return out
}

// referencedNames returns type names candidate references for relation kind, in declaration order.
func referencedNames(kind RelationKind, candidate *Entity) []string {
	switch kind {
	case RelationReturn:
		if candidate.Kind != KindOperation || candidate.Type == nil {
			return nil
		}

		return []string{candidate.Type.NamedType()}
	case RelationField:
		var out []string
		for _, field := range candidate.Fields {
			if field.Type != nil {
				out = append(out, field.Type.NamedType())
			}

			for _, arg := range field.Args {
				out = append(out, arg.Type.NamedType())
			}
		}

		for _, arg := range candidate.Args {
			out = append(out, arg.Type.NamedType())
		}

		return out
	case RelationUnion:
		if candidate.Kind != KindUnion {
			return nil
		}

		return candidate.PossibleTypes
	case RelationInterface:
		if candidate.Kind != KindObject && candidate.Kind != KindInterface {
			return nil
		}

		return candidate.Interfaces
	default:
		return nil
	}
}

// RelationSource answers relation queries by target name.
type RelationSource interface {
	Relations(kind RelationKind, name string) Relations
}

// RelationIndex is a reverse index of every relation kind built in one pass.
// Lookups return the same content and order as RelationsOf.
type RelationIndex struct {
	byKind map[RelationKind]map[string]Relations
}

// NewRelationIndex builds reverse index over schema map.
func NewRelationIndex(m *SchemaMap) *RelationIndex {
	index := &RelationIndex{byKind: make(map[RelationKind]map[string]Relations, len(relationScanCategories))}
	for _, kind := range []RelationKind{RelationReturn, RelationField, RelationUnion, RelationInterface} {
		targets := make(map[string]Relations)
		for _, category := range relationScanCategories[kind] {
			for _, candidate := range m.Entities(category) {
				for _, ref := range referencedNames(kind, candidate) {
					if ref == "" {
						continue
					}

					relations, ok := targets[ref]
					if !ok {
						relations = Relations{}
						targets[ref] = relations
					}

					relations.add(category, candidate)
				}
			}
		}

		index.byKind[kind] = targets
	}

	return index
}

// Relations returns a copy of indexed relations for name.
func (x *RelationIndex) Relations(kind RelationKind, name string) Relations {
	out := Relations{}
	if x == nil {
		return out
	}

	if kind == RelationImplementation {
		for _, part := range []RelationKind{RelationInterface, RelationUnion} {
			for category, entities := range x.byKind[part][name] {
				for _, entity := range entities {
					out.add(category, entity)
				}
			}
		}

		return out
	}

	for category, entities := range x.byKind[kind][name] {
		out[category] = append([]*Entity(nil), entities...)
	}

	return out
}

// visibleRelations drops relations pointing at entities absent from entities.
type visibleRelations struct {
	source   RelationSource
	entities *SchemaMap
}

// Relations implements RelationSource.
func (v visibleRelations) Relations(kind RelationKind, name string) Relations {
	out := Relations{}
	for category, related := range v.source.Relations(kind, name) {
		for _, entity := range related {
			if _, ok := v.entities.Entity(category, entity.Name); ok {
				out.add(category, entity)
			}
		}
	}

	return out
}

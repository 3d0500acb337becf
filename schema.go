// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import "strings"

// Kind is the closed set of documentable entity variants.
type Kind uint8

const (
	// KindObject is an object type.
	KindObject Kind = iota + 1
	// KindInterface is an interface type.
	KindInterface
	// KindUnion is a union type.
	KindUnion
	// KindEnum is an enum type.
	KindEnum
	// KindInput is an input object type.
	KindInput
	// KindScalar is a scalar type.
	KindScalar
	// KindDirective is a directive definition.
	KindDirective
	// KindOperation is a field of a root operation type.
	KindOperation
)

// String returns lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindInterface:
		return "interface"
	case KindUnion:
		return "union"
	case KindEnum:
		return "enum"
	case KindInput:
		return "input"
	case KindScalar:
		return "scalar"
	case KindDirective:
		return "directive"
	case KindOperation:
		return "operation"
	default:
		return "unknown"
	}
}

// OperationType names one of the three root operation types.
type OperationType string

const (
	// OperationQuery is the query root.
	OperationQuery OperationType = "query"
	// OperationMutation is the mutation root.
	OperationMutation OperationType = "mutation"
	// OperationSubscription is the subscription root.
	OperationSubscription OperationType = "subscription"
)

// introspectionPrefix marks compiler-internal names.
const introspectionPrefix = "__"

// deprecatedDirectiveName is the built-in deprecation directive.
const deprecatedDirectiveName = "deprecated"

// defaultDeprecationReason is the reason implied by a bare @deprecated.
const defaultDeprecationReason = "No longer supported"

// TypeRef is a possibly wrapped reference to a named type.
// Exactly one of Name and Elem is set.
type TypeRef struct {
	Name    string
	Elem    *TypeRef
	NonNull bool
}

// NamedType returns the innermost type name with list and non-null wrappers removed.
func (t *TypeRef) NamedType() string {
	for ref := t; ref != nil; ref = ref.Elem {
		if ref.Elem == nil {
			return ref.Name
		}
	}

	return ""
}

// IsList reports whether any wrapper level is a list.
func (t *TypeRef) IsList() bool {
	for ref := t; ref != nil; ref = ref.Elem {
		if ref.Elem != nil {
			return true
		}
	}

	return false
}

// String renders the reference in SDL notation, for example "[Foo!]!".
func (t *TypeRef) String() string {
	if t == nil {
		return ""
	}

	var out string
	if t.Elem != nil {
		out = "[" + t.Elem.String() + "]"
	} else {
		out = t.Name
	}

	if t.NonNull {
		out += "!"
	}

	return out
}

// Argument is one literal argument of an applied directive.
type Argument struct {
	Name string
	// Value is the literal value; strings are unquoted.
	Value string
	// Literal is the SDL form of the value.
	Literal string
}

// Directive is one directive applied to an entity or member.
type Directive struct {
	Name string
	Args []Argument
}

// Arg returns literal value of the named argument.
func (d Directive) Arg(name string) (string, bool) {
	for _, arg := range d.Args {
		if arg.Name == name {
			return arg.Value, true
		}
	}

	return "", false
}

// Field is a field, argument, input field or enum value.
// Type is nil for enum values.
type Field struct {
	Name              string
	Description       string
	Type              *TypeRef
	Args              []*Field
	DefaultValue      string
	HasDefault        bool
	Deprecated        bool
	DeprecationReason string
	Directives        []Directive
}

// Entity is any individually documentable schema member.
type Entity struct {
	Kind              Kind
	Name              string
	Description       string
	Deprecated        bool
	DeprecationReason string

	// Fields holds object, interface and input fields, or enum values.
	Fields []*Field
	// Args holds operation and directive arguments.
	Args []*Field
	// Type is the operation return type.
	Type *TypeRef

	Interfaces    []string
	PossibleTypes []string
	Directives    []Directive

	Locations  []string
	Repeatable bool

	Operation OperationType

	// HasSyntax is false when the entity was built without source syntax,
	// for example from an introspection result.
	HasSyntax bool
}

// Schema is an arena of entities addressed by name in declaration order.
type Schema struct {
	Description string

	QueryType        string
	MutationType     string
	SubscriptionType string

	types      map[string]*Entity
	typeOrder  []string
	directives []*Entity
}

// NewSchema creates an empty schema arena.
func NewSchema() *Schema {
	return &Schema{types: make(map[string]*Entity)}
}

// AddType registers a named type, replacing an earlier one with the same name in place.
func (s *Schema) AddType(entity *Entity) {
	if entity == nil || entity.Name == "" {
		return
	}

	if _, ok := s.types[entity.Name]; !ok {
		s.typeOrder = append(s.typeOrder, entity.Name)
	}

	s.types[entity.Name] = entity
}

// AddDirective registers a directive definition, replacing an earlier one with the same name.
func (s *Schema) AddDirective(entity *Entity) {
	if entity == nil || entity.Name == "" {
		return
	}

	for i, existing := range s.directives {
		if existing.Name == entity.Name {
			s.directives[i] = entity
			return
		}
	}

	s.directives = append(s.directives, entity)
}

// Type returns named type or nil.
func (s *Schema) Type(name string) *Entity {
	if s == nil {
		return nil
	}

	return s.types[name]
}

// Types returns all named types in declaration order.
func (s *Schema) Types() []*Entity {
	if s == nil {
		return nil
	}

	out := make([]*Entity, 0, len(s.typeOrder))
	for _, name := range s.typeOrder {
		out = append(out, s.types[name])
	}

	return out
}

// Directives returns directive definitions in declaration order.
func (s *Schema) Directives() []*Entity {
	if s == nil {
		return nil
	}

	out := make([]*Entity, len(s.directives))
	copy(out, s.directives)
	return out
}

// RootType returns the root type for operation type or nil when undeclared.
func (s *Schema) RootType(op OperationType) *Entity {
	if s == nil {
		return nil
	}

	var name string
	switch op {
	case OperationQuery:
		name = s.QueryType
	case OperationMutation:
		name = s.MutationType
	case OperationSubscription:
		name = s.SubscriptionType
	}

	if name == "" {
		return nil
	}

	root := s.types[name]
	if root == nil || root.Kind != KindObject {
		return nil
	}

	return root
}

// Operations exposes root-operation fields as operation entities.
// Undeclared roots yield an empty result.
func (s *Schema) Operations(op OperationType) []*Entity {
	root := s.RootType(op)
	if root == nil {
		return nil
	}

	out := make([]*Entity, 0, len(root.Fields))
	for _, field := range root.Fields {
		if isIntrospectionName(field.Name) {
			continue
		}

		out = append(out, &Entity{
			Kind:              KindOperation,
			Name:              field.Name,
			Description:       field.Description,
			Deprecated:        field.Deprecated,
			DeprecationReason: field.DeprecationReason,
			Args:              field.Args,
			Type:              field.Type,
			Directives:        field.Directives,
			Operation:         op,
			HasSyntax:         root.HasSyntax,
		})
	}

	return out
}

// isRootTypeName reports whether name is one of declared root type names.
func (s *Schema) isRootTypeName(name string) bool {
	return name != "" && (name == s.QueryType || name == s.MutationType || name == s.SubscriptionType)
}

// isIntrospectionName reports whether name is reserved for introspection.
func isIntrospectionName(name string) bool {
	return strings.HasPrefix(name, introspectionPrefix)
}

// hasDirective reports whether directive list contains one of names.
func hasDirective(directives []Directive, names ...string) bool {
	for _, directive := range directives {
		for _, name := range names {
			if directive.Name == name {
				return true
			}
		}
	}

	return false
}

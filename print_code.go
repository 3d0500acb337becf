// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"strconv"
	"strings"
)

// codeIndent is one indentation level inside SDL code blocks.
const codeIndent = "  "

// printCode reconstructs SDL-like definition of entity.
// Deprecated members stay inline with @deprecated unless the skip policy removes them.
func (p *Printer) printCode(entity *Entity) string {
	switch entity.Kind {
	case KindObject:
		return p.codeFieldBlock("type "+entity.Name+implementsClause(entity.Interfaces), entity)
	case KindInterface:
		return p.codeFieldBlock("interface "+entity.Name+implementsClause(entity.Interfaces), entity)
	case KindInput:
		return p.codeFieldBlock("input "+entity.Name, entity)
	case KindEnum:
		return p.codeEnum(entity)
	case KindUnion:
		return p.codeUnion(entity)
	case KindScalar:
		return "scalar " + entity.Name + deprecatedAnnotation(entity.Deprecated, entity.DeprecationReason)
	case KindDirective:
		return p.codeDirective(entity)
	case KindOperation:
		return p.codeOperation(entity)
	default:
		return entity.Name
	}
}

// implementsClause renders "implements A & B" suffix.
func implementsClause(interfaces []string) string {
	if len(interfaces) == 0 {
		return ""
	}

	return " implements " + strings.Join(interfaces, " & ")
}

// codeFieldBlock renders type, interface or input with fields.
func (p *Printer) codeFieldBlock(header string, entity *Entity) string {
	header += deprecatedAnnotation(entity.Deprecated, entity.DeprecationReason)
	fields := p.visibleMembers(entity.Fields)
	if len(fields) == 0 {
		return header
	}

	lines := []string{header + " {"}
	for _, field := range fields {
		lines = append(lines, codeIndent+p.codeField(field, codeIndent))
	}

	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// codeField renders one field with arguments, default value and deprecation marker.
func (p *Printer) codeField(field *Field, indent string) string {
	var out strings.Builder
	out.WriteString(field.Name)
	out.WriteString(p.codeArgs(field.Args, indent))
	out.WriteString(": ")
	out.WriteString(field.Type.String())
	if field.HasDefault {
		out.WriteString(" = ")
		out.WriteString(field.DefaultValue)
	}

	out.WriteString(deprecatedAnnotation(field.Deprecated, field.DeprecationReason))
	return out.String()
}

// codeArgs renders argument list, one argument per line.
func (p *Printer) codeArgs(args []*Field, indent string) string {
	args = p.visibleMembers(args)
	if len(args) == 0 {
		return ""
	}

	lines := make([]string, 0, len(args)+2)
	lines = append(lines, "(")
	for _, arg := range args {
		lines = append(lines, indent+codeIndent+p.codeField(arg, indent+codeIndent))
	}

	lines = append(lines, indent+")")
	return strings.Join(lines, "\n")
}

// codeEnum renders enum with values.
func (p *Printer) codeEnum(entity *Entity) string {
	header := "enum " + entity.Name + deprecatedAnnotation(entity.Deprecated, entity.DeprecationReason)
	values := p.visibleMembers(entity.Fields)
	if len(values) == 0 {
		return header
	}

	lines := []string{header + " {"}
	for _, value := range values {
		lines = append(lines, codeIndent+value.Name+deprecatedAnnotation(value.Deprecated, value.DeprecationReason))
	}

	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// codeUnion renders union with members.
func (p *Printer) codeUnion(entity *Entity) string {
	header := "union " + entity.Name + deprecatedAnnotation(entity.Deprecated, entity.DeprecationReason)
	if len(entity.PossibleTypes) == 0 {
		return header
	}

	return header + " = " + strings.Join(entity.PossibleTypes, " | ")
}

// codeDirective renders directive definition.
func (p *Printer) codeDirective(entity *Entity) string {
	var out strings.Builder
	out.WriteString("directive @")
	out.WriteString(entity.Name)
	out.WriteString(p.codeArgs(entity.Args, ""))
	if entity.Repeatable {
		out.WriteString(" repeatable")
	}

	if len(entity.Locations) > 0 {
		out.WriteString(" on ")
		out.WriteString(strings.Join(entity.Locations, " | "))
	}

	return out.String()
}

// codeOperation renders root operation field.
func (p *Printer) codeOperation(entity *Entity) string {
	var out strings.Builder
	out.WriteString(entity.Name)
	out.WriteString(p.codeArgs(entity.Args, ""))
	out.WriteString(": ")
	out.WriteString(entity.Type.String())
	out.WriteString(deprecatedAnnotation(entity.Deprecated, entity.DeprecationReason))
	return out.String()
}

// deprecatedAnnotation renders @deprecated marker; the default reason is implied.
func deprecatedAnnotation(deprecated bool, reason string) string {
	if !deprecated {
		return ""
	}

	reason = strings.TrimSpace(reason)
	if reason == "" || reason == defaultDeprecationReason {
		return " @deprecated"
	}

	return " @deprecated(reason: " + strconv.Quote(reason) + ")"
}

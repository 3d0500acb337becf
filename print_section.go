// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"strings"
)

const (
	badgeSecondary = "secondary"
	badgeWarning   = "warning"
	badgeInfo      = "info"
)

// relationSection binds relation kind to its section title.
type relationSection struct {
	kind  RelationKind
	title string
}

// relationSections lists printed related-type sections in output order.
var relationSections = []relationSection{
	{kind: RelationReturn, title: "Returned By"},
	{kind: RelationField, title: "Member Of"},
	{kind: RelationImplementation, title: "Implemented By"},
}

// memberSection describes one list of members printed under a heading.
type memberSection struct {
	title   string
	members []*Field
}

// printMetadata renders per-member sections and related types.
func (p *Printer) printMetadata(entity *Entity) (string, error) {
	var out strings.Builder

	switch entity.Kind {
	case KindObject, KindInterface:
		if err := p.writeMembers(&out, entity, memberSection{title: "Fields", members: entity.Fields}); err != nil {
			return "", err
		}

		p.writeNameList(&out, "Interfaces", CategoryInterfaces, entity.Interfaces)
	case KindInput:
		if err := p.writeMembers(&out, entity, memberSection{title: "Fields", members: entity.Fields}); err != nil {
			return "", err
		}
	case KindEnum:
		if err := p.writeMembers(&out, entity, memberSection{title: "Values", members: entity.Fields}); err != nil {
			return "", err
		}
	case KindUnion:
		p.writeNameList(&out, "Possible types", CategoryObjects, entity.PossibleTypes)
	case KindDirective:
		if err := p.writeMembers(&out, entity, memberSection{title: "Arguments", members: entity.Args}); err != nil {
			return "", err
		}

		if len(entity.Locations) > 0 {
			out.WriteString("## Locations\n\n")
			for _, location := range entity.Locations {
				out.WriteString("- `" + location + "`\n")
			}

			out.WriteString("\n")
		}
	case KindOperation:
		if err := p.writeMembers(&out, entity, memberSection{title: "Arguments", members: entity.Args}); err != nil {
			return "", err
		}

		if entity.Type != nil {
			out.WriteString("## Type\n\n")
			out.WriteString(p.typeLink(entity.Type))
			if badges := p.typeBadges(entity.Type, false); badges != "" {
				out.WriteString(" " + badges)
			}

			out.WriteString("\n\n")
		}
	}

	if entity.Kind != KindOperation && entity.Kind != KindDirective && !p.opt.HideRelatedTypes {
		p.writeRelations(&out, entity)
	}

	return out.String(), nil
}

// writeMembers renders member section applying deprecation policy.
func (p *Printer) writeMembers(out *strings.Builder, entity *Entity, section memberSection) error {
	members := p.visibleMembers(section.members)
	if len(members) == 0 {
		return nil
	}

	out.WriteString("## " + section.title + "\n\n")
	if p.opt.Deprecated != DeprecatedGroup {
		return p.writeMemberList(out, entity, members)
	}

	active, deprecated := partitionDeprecated(members)
	if err := p.writeMemberList(out, entity, active); err != nil {
		return err
	}

	if len(deprecated) == 0 {
		return nil
	}

	out.WriteString("<details>\n<summary>Deprecated " + strings.ToLower(section.title) + "</summary>\n\n")
	if err := p.writeMemberList(out, entity, deprecated); err != nil {
		return err
	}

	out.WriteString("</details>\n\n")
	return nil
}

// writeMemberList renders each member with nested arguments.
func (p *Printer) writeMemberList(out *strings.Builder, entity *Entity, members []*Field) error {
	for _, member := range members {
		if err := p.writeMember(out, "###", []string{entity.Name, member.Name}, member); err != nil {
			return err
		}

		if err := p.writeArgs(out, entity, member); err != nil {
			return err
		}
	}

	return nil
}

// writeArgs renders member arguments, folding deprecated ones under group policy.
func (p *Printer) writeArgs(out *strings.Builder, entity *Entity, member *Field) error {
	args := p.visibleMembers(member.Args)
	var deprecated []*Field
	if p.opt.Deprecated == DeprecatedGroup {
		args, deprecated = partitionDeprecated(args)
	}

	for _, arg := range args {
		if err := p.writeMember(out, "####", []string{entity.Name, member.Name, arg.Name}, arg); err != nil {
			return err
		}
	}

	if len(deprecated) == 0 {
		return nil
	}

	out.WriteString("<details>\n<summary>Deprecated arguments</summary>\n\n")
	for _, arg := range deprecated {
		if err := p.writeMember(out, "####", []string{entity.Name, member.Name, arg.Name}, arg); err != nil {
			return err
		}
	}

	out.WriteString("</details>\n\n")
	return nil
}

// writeMember renders one member heading, link, badges and body.
func (p *Printer) writeMember(out *strings.Builder, level string, path []string, member *Field) error {
	display := path[1:]
	if p.opt.ParentTypePrefix {
		display = path
	}

	out.WriteString(`<a id="` + markdownHeadingAnchor(strings.Join(display, " ")) + `"></a>` + "\n\n")
	out.WriteString(level + " `" + strings.Join(display, ".") + "`")
	if member.Type != nil {
		out.WriteString(" · " + p.typeLink(member.Type))
	}

	if badges := p.typeBadges(member.Type, member.Deprecated); badges != "" {
		out.WriteString(" " + badges)
	}

	out.WriteString("\n\n")

	if description := formatDescription(member.Description); description != "" {
		out.WriteString(description + "\n\n")
	}

	notes, err := p.directives.describe(member.Directives, strings.Join(path, "."))
	if err != nil {
		return err
	}

	writeDirectiveNotes(out, notes, p.opt.HideTypeBadges)

	if member.HasDefault {
		out.WriteString("Default value: `" + escapeInline(member.DefaultValue) + "`\n\n")
	}

	if member.Deprecated {
		out.WriteString(deprecationCallout(member.DeprecationReason) + "\n\n")
	}

	return nil
}

// writeNameList renders list of linked named types.
func (p *Printer) writeNameList(out *strings.Builder, title string, fallback Category, names []string) {
	if len(names) == 0 {
		return
	}

	out.WriteString("## " + title + "\n\n")
	for _, name := range names {
		category, ok := p.typeCategory(name)
		if !ok {
			category = fallback
		}

		out.WriteString("- " + p.entityLink(category, name))
		if !p.opt.HideTypeBadges && ok {
			out.WriteString(" " + badge(category.Singular(), badgeSecondary))
		}

		out.WriteString("\n")
	}

	out.WriteString("\n")
}

// writeRelations renders related-type sections.
func (p *Printer) writeRelations(out *strings.Builder, entity *Entity) {
	if p.relations == nil {
		return
	}

	for _, section := range relationSections {
		relations := p.relations.Relations(section.kind, entity.Name)
		if relations.Len() == 0 {
			continue
		}

		out.WriteString("## " + section.title + "\n\n")
		for _, category := range relations.Categories() {
			for _, related := range relations[category] {
				out.WriteString("- " + p.entityLink(category, related.Name))
				if !p.opt.HideTypeBadges {
					out.WriteString(" " + badge(category.Singular(), badgeSecondary))
				}

				out.WriteString("\n")
			}
		}

		out.WriteString("\n")
	}
}

// typeLink renders type reference; list wrappers render as [inner] and non-null is stripped.
func (p *Printer) typeLink(ref *TypeRef) string {
	if ref == nil {
		return ""
	}

	if ref.Elem != nil {
		return "[" + p.typeLink(ref.Elem) + "]"
	}

	category, ok := p.typeCategory(ref.Name)
	if !ok {
		return "`" + ref.Name + "`"
	}

	return p.entityLink(category, ref.Name)
}

// entityLink renders markdown link or plain code when target is not documented.
func (p *Printer) entityLink(category Category, name string) string {
	if p.links != nil {
		if url, ok := p.links.EntityURL(category, name); ok {
			return "[`" + name + "`](" + url + ")"
		}
	}

	return "`" + name + "`"
}

// typeCategory resolves referenced type category through link resolver.
func (p *Printer) typeCategory(name string) (Category, bool) {
	if p.links == nil {
		return "", false
	}

	return p.links.TypeCategory(name)
}

// typeBadges renders non-null, list, category and deprecated badges.
func (p *Printer) typeBadges(ref *TypeRef, deprecated bool) string {
	if p.opt.HideTypeBadges {
		return ""
	}

	var badges []string
	if deprecated && p.opt.Deprecated != DeprecatedSkip {
		badges = append(badges, badge("deprecated", badgeWarning))
	}

	if ref != nil {
		if ref.NonNull {
			badges = append(badges, badge("non-null", badgeSecondary))
		}

		if ref.IsList() {
			badges = append(badges, badge("list", badgeSecondary))
		}

		if category, ok := p.typeCategory(ref.NamedType()); ok {
			badges = append(badges, badge(category.Singular(), badgeSecondary))
		}
	}

	return strings.Join(badges, " ")
}

// badge renders inline badge markup.
func badge(text, class string) string {
	return `<span class="badge badge--` + class + `">` + text + `</span>`
}

// deprecationCallout renders warning admonition with deprecation reason.
func deprecationCallout(reason string) string {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultDeprecationReason
	}

	return ":::warning[DEPRECATED]\n\n" + formatDescription(reason) + "\n\n:::"
}

// writeDirectiveNotes renders custom directive descriptions and tags.
func writeDirectiveNotes(out *strings.Builder, notes []directiveNote, hideBadges bool) {
	for _, note := range notes {
		if note.Tag != "" && !hideBadges {
			out.WriteString(badge(note.Tag, badgeInfo) + "\n\n")
		}

		if note.Text != "" {
			out.WriteString(formatDescription(note.Text) + "\n\n")
		}
	}
}

package main

import (
	"fmt"
	"io"

	"github.com/KilimcininKorOglu/asntypes/internal/schema"
)

// typeInfo is the printable metadata of a built type.
type typeInfo struct {
	Name        string        `json:"name"`
	Kind        string        `json:"kind"`
	Tag         string        `json:"tag"`
	TagTree     string        `json:"tagTree"`
	Identifier  string        `json:"identifier,omitempty"`
	Constraints string        `json:"constraints,omitempty"`
	Extensible  bool          `json:"extensible,omitempty"`
	Element     string        `json:"element,omitempty"`
	Members     []memberInfo  `json:"members,omitempty"`
	Extensions  []memberInfo  `json:"extensions,omitempty"`
	Items       []schema.Item `json:"items,omitempty"`
	ExtItems    []schema.Item `json:"extensionItems,omitempty"`
}

// memberInfo is one field or alternative.
type memberInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	TagTree  string `json:"tagTree"`
	Presence string `json:"presence,omitempty"`
}

func (a *app) describeType(t *schema.Type) (typeInfo, error) {
	d := t.Descriptor()
	info := typeInfo{
		Name:        t.Name,
		Kind:        t.Kind.Notation(),
		Tag:         d.Tag.String(),
		TagTree:     d.TagTree.String(),
		Constraints: d.Constraints.String(),
		Extensible:  t.IsExtensible(),
		Members:     members(t.Components()),
		Extensions:  members(t.ExtensionComponents()),
		Items:       t.Items(),
		ExtItems:    t.ExtensionItems(),
	}
	if el := t.Element(); el != nil {
		info.Element = el.String()
	}
	if !d.IsChoice() {
		id, err := a.identifier(d.Tag, t.Kind.IsConstructed() || t.Kind.IsCollection())
		if err != nil {
			return typeInfo{}, err
		}
		info.Identifier = id
	}
	return info, nil
}

func members(cs []schema.Component) []memberInfo {
	if len(cs) == 0 {
		return nil
	}
	out := make([]memberInfo, len(cs))
	for i, c := range cs {
		out[i] = memberInfo{
			Name:     c.Field.Name,
			Type:     c.Type.String(),
			TagTree:  c.Field.TagTree.String(),
			Presence: c.Field.Presence.String(),
		}
	}
	return out
}

func (info typeInfo) writeText(w io.Writer) {
	fmt.Fprintf(w, "%s ::= %s\n", info.Name, info.Kind)
	fmt.Fprintf(w, "  tag:         %s\n", info.TagTree)
	if info.Identifier != "" {
		fmt.Fprintf(w, "  identifier:  %s\n", info.Identifier)
	}
	if info.Constraints != "" {
		fmt.Fprintf(w, "  constraints: %s\n", info.Constraints)
	}
	if info.Element != "" {
		fmt.Fprintf(w, "  element:     %s\n", info.Element)
	}
	if info.Extensible {
		fmt.Fprintln(w, "  extensible:  true")
	}
	writeMembers(w, "members", info.Members)
	writeMembers(w, "extensions", info.Extensions)
	writeItems(w, "items", info.Items)
	writeItems(w, "extension items", info.ExtItems)
}

func writeMembers(w io.Writer, title string, list []memberInfo) {
	if len(list) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s:\n", title)
	for _, m := range list {
		line := fmt.Sprintf("    %s %s %s", m.Name, m.TagTree, m.Type)
		if m.Presence != "" {
			line += " " + m.Presence
		}
		fmt.Fprintln(w, line)
	}
}

func writeItems(w io.Writer, title string, list []schema.Item) {
	if len(list) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s:\n", title)
	for _, it := range list {
		fmt.Fprintf(w, "    %s(%d)\n", it.Name, it.Value)
	}
}

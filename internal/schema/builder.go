package schema

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/KilimcininKorOglu/asntypes/internal/types"
)

// Builder errors
var (
	ErrDuplicateType = errors.New("schema: duplicate type")
	ErrUnknownType   = errors.New("schema: unknown type")
	ErrChoiceCycle   = errors.New("schema: untagged choice contains itself")
	ErrInvalidMember = errors.New("schema: invalid member")
)

type buildState int

const (
	unresolved buildState = iota
	resolving
	resolved
)

type builder struct {
	module *Module
	schema *Schema
	defs   map[string]*Definition
	state  map[string]buildState
	err    error
}

// Build resolves the definitions of m into a Schema. Errors of every
// definition are collected; the Schema is nil when any occurred.
func Build(m *Module) (*Schema, error) {
	b := &builder{
		module: m,
		schema: NewSchema(m.Name, m.Tagging),
		defs:   make(map[string]*Definition, len(m.Types)),
		state:  make(map[string]buildState, len(m.Types)),
	}

	for i := range m.Types {
		def := &m.Types[i]
		t, err := b.declare(def)
		if err != nil {
			b.fail(err)
			continue
		}
		if !b.schema.AddType(t) {
			b.fail(fmt.Errorf("%w: %s", ErrDuplicateType, def.Name))
			continue
		}
		b.defs[def.Name] = def
	}
	for _, t := range b.schema.Types() {
		b.resolve(t)
	}

	if b.err != nil {
		return nil, b.err
	}
	return b.schema, nil
}

func (b *builder) fail(err error) {
	b.err = multierr.Append(b.err, err)
}

// declare creates the type of def with everything that does not depend on
// other definitions.
func (b *builder) declare(def *Definition) (*Type, error) {
	if def.Name == "" {
		return nil, errors.New("schema: definition without a name")
	}
	kind, err := ParseKind(def.Kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", def.Name, err)
	}
	cs, err := def.Constraints.constraints()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", def.Name, err)
	}

	t := &Type{
		Name:        def.Name,
		Kind:        kind,
		tag:         kind.UniversalTag(),
		constraints: cs,
		extensible:  def.Extensible,
		items:       append([]Item(nil), def.Items...),
		extItems:    append([]Item(nil), def.ExtensionItems...),
	}
	if def.Tag != "" {
		tag, err := ParseTag(def.Tag)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", def.Name, err)
		}
		t.tag = tag
		t.tagged = true
	}
	if len(def.ExtensionFields)+len(def.ExtensionVariants)+len(def.ExtensionItems) > 0 {
		t.extensible = true
	}

	switch {
	case t.tagged:
		t.tree = types.Leaf(t.tag)
	case kind == KindAny:
		t.tree = types.AnyTree
	case kind != KindChoice:
		t.tree = types.Leaf(t.tag)
	}
	return t, nil
}

// resolve binds the members and element of t. An untagged CHOICE needs
// the trees of its alternatives, so CHOICE alternatives are resolved first.
func (b *builder) resolve(t *Type) {
	switch b.state[t.Name] {
	case resolved:
		return
	case resolving:
		b.fail(fmt.Errorf("%w: %s", ErrChoiceCycle, t.Name))
		return
	}
	b.state[t.Name] = resolving
	defer func() { b.state[t.Name] = resolved }()

	def := b.defs[t.Name]
	switch {
	case t.Kind.IsConstructed():
		t.members, t.extensions = b.components(t, def.Fields, def.ExtensionFields)
	case t.Kind == KindChoice:
		t.members, t.extensions = b.components(t, def.Variants, def.ExtensionVariants)
		if !t.tagged {
			var ext []types.TagTree
			if t.extensible {
				ext = treesOf(t.extensions)
			}
			t.tree = types.ChoiceTagTree(treesOf(t.members), ext)
		}
	case t.Kind.IsCollection():
		if def.Element == "" {
			b.fail(fmt.Errorf("%w: %s has no element type", ErrInvalidMember, t.Name))
			return
		}
		el, err := b.lookup(def.Element)
		if err != nil {
			b.fail(fmt.Errorf("%s: %w", t.Name, err))
			return
		}
		t.element = el
	}
}

// components resolves the root and extension member lists of t. Under
// AUTOMATIC tagging members are numbered [0], [1], ... across both lists
// unless some member carries its own tag.
func (b *builder) components(t *Type, root, ext []Member) ([]Component, []Component) {
	automatic := b.module.Tagging == TaggingAutomatic
	for _, list := range [][]Member{root, ext} {
		for _, m := range list {
			if m.Tag != "" {
				automatic = false
			}
		}
	}

	var n int
	build := func(list []Member) []Component {
		out := make([]Component, 0, len(list))
		for _, m := range list {
			c, err := b.component(t, m, automatic, n)
			n++
			if err != nil {
				b.fail(err)
				continue
			}
			out = append(out, c)
		}
		return out
	}
	members := build(root)
	return members, build(ext)
}

func (b *builder) component(t *Type, m Member, automatic bool, index int) (Component, error) {
	if m.Name == "" {
		return Component{}, fmt.Errorf("%w: %s has a member without a name", ErrInvalidMember, t.Name)
	}
	presence, err := parsePresence(m.Presence)
	if err != nil {
		return Component{}, fmt.Errorf("%s.%s: %w", t.Name, m.Name, err)
	}
	if t.Kind == KindChoice && presence != types.Required {
		return Component{}, fmt.Errorf("%w: alternative %s.%s cannot be %s", ErrInvalidMember, t.Name, m.Name, m.Presence)
	}
	ref, err := b.lookup(m.Type)
	if err != nil {
		return Component{}, fmt.Errorf("%s.%s: %w", t.Name, m.Name, err)
	}

	switch {
	case m.Tag != "":
		tag, err := ParseTag(m.Tag)
		if err != nil {
			return Component{}, fmt.Errorf("%s.%s: %w", t.Name, m.Name, err)
		}
		return Component{Field: types.NewField(m.Name, tag, presence), Type: ref, tagged: true}, nil
	case automatic:
		return Component{Field: types.NewField(m.Name, types.ContextTag(uint32(index)), presence), Type: ref}, nil
	case ref.Kind == KindChoice && !ref.tagged:
		b.resolve(ref)
		return Component{Field: types.ChoiceField(m.Name, ref.tree, presence), Type: ref}, nil
	case ref.Kind == KindAny && !ref.tagged:
		return Component{Field: types.ChoiceField(m.Name, types.AnyTree, presence), Type: ref}, nil
	default:
		return Component{Field: types.NewField(m.Name, ref.tag, presence), Type: ref}, nil
	}
}

// lookup returns the definition named name, or an anonymous type for a
// primitive kind keyword.
func (b *builder) lookup(name string) (*Type, error) {
	if t := b.schema.GetType(name); t != nil {
		return t, nil
	}
	kind, ok := kindsByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	switch {
	case kind.IsConstructed(), kind.IsCollection(), kind == KindChoice, kind == KindEnumerated:
		return nil, fmt.Errorf("%w: %q needs a named definition", ErrUnknownType, name)
	case kind == KindAny:
		return &Type{Kind: kind, tag: types.TagEOC, tree: types.AnyTree, constraints: types.NoConstraints}, nil
	}
	tag := kind.UniversalTag()
	return &Type{Kind: kind, tag: tag, tree: types.Leaf(tag), constraints: types.NoConstraints}, nil
}

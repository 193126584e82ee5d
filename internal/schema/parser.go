package schema

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KilimcininKorOglu/asntypes/internal/types"
)

// Parser errors
var (
	ErrInvalidTag        = errors.New("schema: invalid tag")
	ErrInvalidConstraint = errors.New("schema: invalid constraint")
	ErrInvalidTagging    = errors.New("schema: invalid tagging mode")
)

// Tagging is the tagging environment of a module.
type Tagging string

const (
	TaggingExplicit  Tagging = "explicit"
	TaggingImplicit  Tagging = "implicit"
	TaggingAutomatic Tagging = "automatic"
)

// Module is the YAML representation of an ASN.1 module.
//
//	module: Example
//	tagging: automatic
//	types:
//	  - name: Record
//	    kind: sequence
//	    extensible: true
//	    fields:
//	      - {name: id, type: integer}
//	      - {name: note, type: utf8String, presence: optional}
type Module struct {
	Name    string       `yaml:"module"`
	Tagging Tagging      `yaml:"tagging"`
	Types   []Definition `yaml:"types"`
}

// Definition is one type assignment.
type Definition struct {
	Name        string          `yaml:"name"`
	Kind        string          `yaml:"kind"`
	Tag         string          `yaml:"tag,omitempty"`
	Constraints *ConstraintSpec `yaml:"constraints,omitempty"`
	Extensible  bool            `yaml:"extensible,omitempty"`

	// SEQUENCE and SET
	Fields          []Member `yaml:"fields,omitempty"`
	ExtensionFields []Member `yaml:"extensionFields,omitempty"`

	// CHOICE
	Variants          []Member `yaml:"variants,omitempty"`
	ExtensionVariants []Member `yaml:"extensionVariants,omitempty"`

	// ENUMERATED
	Items          []Item `yaml:"items,omitempty"`
	ExtensionItems []Item `yaml:"extensionItems,omitempty"`

	// SEQUENCE OF and SET OF
	Element string `yaml:"element,omitempty"`
}

// Member is a SEQUENCE or SET field, or a CHOICE alternative. Type names a
// definition of the module or a kind keyword.
type Member struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Tag      string `yaml:"tag,omitempty"`
	Presence string `yaml:"presence,omitempty"`
}

// Item is a named ENUMERATED value.
type Item struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

// ConstraintSpec holds the constraints of a definition.
type ConstraintSpec struct {
	Value    *RangeSpec    `yaml:"value,omitempty"`
	Size     *RangeSpec    `yaml:"size,omitempty"`
	Alphabet *AlphabetSpec `yaml:"alphabet,omitempty"`
}

// RangeSpec is a range constraint. Min and Max are decimal integers, or
// "MIN" and "MAX" for open ends; omitted ends are open.
type RangeSpec struct {
	Min        string `yaml:"min,omitempty"`
	Max        string `yaml:"max,omitempty"`
	Extensible bool   `yaml:"extensible,omitempty"`
}

// AlphabetSpec is a permitted alphabet constraint.
type AlphabetSpec struct {
	Chars      string `yaml:"chars"`
	Extensible bool   `yaml:"extensible,omitempty"`
}

// Parse decodes a YAML module. Unknown keys are rejected.
func Parse(data []byte) (*Module, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Module
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("schema: parse module: %w", err)
	}
	if m.Tagging == "" {
		m.Tagging = DefaultTagging
	}
	switch m.Tagging {
	case TaggingExplicit, TaggingImplicit, TaggingAutomatic:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidTagging, m.Tagging)
	}
	return &m, nil
}

// ParseTag parses a tag in ASN.1 notation: "[3]", "[APPLICATION 3]",
// "[PRIVATE 3]" or "[UNIVERSAL 3]".
func ParseTag(s string) (types.Tag, error) {
	inner, ok := strings.CutPrefix(strings.TrimSpace(s), "[")
	if ok {
		inner, ok = strings.CutSuffix(inner, "]")
	}
	if !ok {
		return types.Tag{}, fmt.Errorf("%w: %q", ErrInvalidTag, s)
	}

	class := types.ClassContext
	fields := strings.Fields(inner)
	switch len(fields) {
	case 1:
	case 2:
		switch fields[0] {
		case "UNIVERSAL":
			class = types.ClassUniversal
		case "APPLICATION":
			class = types.ClassApplication
		case "PRIVATE":
			class = types.ClassPrivate
		default:
			return types.Tag{}, fmt.Errorf("%w: unknown class in %q", ErrInvalidTag, s)
		}
		fields = fields[1:]
	default:
		return types.Tag{}, fmt.Errorf("%w: %q", ErrInvalidTag, s)
	}

	n, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return types.Tag{}, fmt.Errorf("%w: number in %q", ErrInvalidTag, s)
	}
	return types.NewTag(class, uint32(n)), nil
}

// parsePresence maps "", "optional" and "default" to a Presence.
func parsePresence(s string) (types.Presence, error) {
	switch s {
	case "", "required":
		return types.Required, nil
	case "optional":
		return types.Optional, nil
	case "default":
		return types.Default, nil
	default:
		return types.Required, fmt.Errorf("schema: unknown presence %q", s)
	}
}

// constraints converts c into a constraint list, in the order value,
// size, alphabet.
func (c *ConstraintSpec) constraints() (types.Constraints, error) {
	if c == nil {
		return types.NoConstraints, nil
	}

	var list []types.Constraint
	if c.Value != nil {
		lo, err := parseBigBound(c.Value.Min, "MIN")
		if err != nil {
			return types.NoConstraints, err
		}
		hi, err := parseBigBound(c.Value.Max, "MAX")
		if err != nil {
			return types.NoConstraints, err
		}
		list = append(list, types.Value(extensible(types.BigValueRange(lo, hi), c.Value.Extensible)))
	}
	if c.Size != nil {
		b, err := sizeBounds(c.Size)
		if err != nil {
			return types.NoConstraints, err
		}
		list = append(list, types.Size(extensible(b, c.Size.Extensible)))
	}
	if c.Alphabet != nil {
		list = append(list, types.PermittedAlphabet(extensible(types.AlphabetOf(c.Alphabet.Chars), c.Alphabet.Extensible)))
	}
	return types.NewConstraints(list...), nil
}

func extensible[T any](c T, ext bool) types.Extensible[T] {
	if ext {
		return types.Extended(c)
	}
	return types.NewExtensible(c)
}

// parseBigBound parses one end of a value range; open is the keyword for
// an open end. A nil result means open.
func parseBigBound(s, open string) (*big.Int, error) {
	if s == "" || s == open {
		return nil, nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidConstraint, s)
	}
	return n, nil
}

func sizeBounds(r *RangeSpec) (types.Bounded[types.Length], error) {
	lo, err := parseSizeBound(r.Min, "MIN")
	if err != nil {
		return types.Bounded[types.Length]{}, err
	}
	hi, err := parseSizeBound(r.Max, "MAX")
	if err != nil {
		return types.Bounded[types.Length]{}, err
	}
	switch {
	case lo == nil && hi == nil:
		return types.Unbounded[types.Length](), nil
	case lo == nil:
		return types.UpTo(*hi), nil
	case hi == nil:
		return types.StartFrom(*lo), nil
	default:
		return types.Range(*lo, *hi), nil
	}
}

func parseSizeBound(s, open string) (*types.Length, error) {
	if s == "" || s == open {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: size %q is not a non-negative integer", ErrInvalidConstraint, s)
	}
	l := types.Length(n)
	return &l, nil
}

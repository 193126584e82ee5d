package types

import (
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"
)

// ConstraintKind identifies the variant of a Constraint.
type ConstraintKind int

const (
	// KindValue bounds the value of an INTEGER (or ENUMERATED index).
	KindValue ConstraintKind = iota
	// KindSize bounds the length of a string or the count of SEQUENCE OF components.
	KindSize
	// KindPermittedAlphabet restricts the characters of a string.
	KindPermittedAlphabet
)

// String returns the name of the kind.
func (k ConstraintKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindSize:
		return "size"
	case KindPermittedAlphabet:
		return "permitted alphabet"
	default:
		return fmt.Sprintf("ConstraintKind(%d)", int(k))
	}
}

// Extensible wraps a constraint with the presence of the ASN.1 extension
// marker. Values outside an extensible constraint are still valid; encoding
// rules such as PER encode them as extensions.
type Extensible[T any] struct {
	Constraint T
	Extensible bool
}

// NewExtensible wraps c without an extension marker.
func NewExtensible[T any](c T) Extensible[T] {
	return Extensible[T]{Constraint: c}
}

// Extended wraps c with an extension marker, as in (0..7, ...).
func Extended[T any](c T) Extensible[T] {
	return Extensible[T]{Constraint: c, Extensible: true}
}

// Constraint is one subtype constraint. The variants are Value, Size and
// PermittedAlphabet; the set is closed.
type Constraint interface {
	Kind() ConstraintKind
	IsExtensible() bool
	String() string
	constraint()
}

// Value constrains an integer value: Value(NewExtensible(ValueRange(0, 255))).
type Value Extensible[Bounded[*big.Int]]

// Size constrains a length: Size(NewExtensible(FixedSize(4))).
type Size Extensible[Bounded[Length]]

// PermittedAlphabet constrains the characters of a string.
type PermittedAlphabet Extensible[Alphabet]

// Alphabet is a set of permitted characters in declaration order.
type Alphabet []rune

// AlphabetOf returns the alphabet holding the characters of s.
func AlphabetOf(s string) Alphabet {
	seen := make(map[rune]struct{}, len(s))
	out := make(Alphabet, 0, len(s))
	for _, r := range s {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Contains reports whether r is in the alphabet.
func (a Alphabet) Contains(r rune) bool {
	for _, c := range a {
		if c == r {
			return true
		}
	}
	return false
}

func (Value) constraint()             {}
func (Size) constraint()              {}
func (PermittedAlphabet) constraint() {}

// Kind returns KindValue.
func (Value) Kind() ConstraintKind { return KindValue }

// Kind returns KindSize.
func (Size) Kind() ConstraintKind { return KindSize }

// Kind returns KindPermittedAlphabet.
func (PermittedAlphabet) Kind() ConstraintKind { return KindPermittedAlphabet }

// IsExtensible reports whether the constraint carries an extension marker.
func (v Value) IsExtensible() bool { return v.Extensible }

// IsExtensible reports whether the constraint carries an extension marker.
func (s Size) IsExtensible() bool { return s.Extensible }

// IsExtensible reports whether the constraint carries an extension marker.
func (p PermittedAlphabet) IsExtensible() bool { return p.Extensible }

// Bounds returns the root range.
func (v Value) Bounds() Bounded[*big.Int] { return v.Constraint }

// Contains reports whether n is in the root range.
func (v Value) Contains(n *big.Int) bool {
	return v.Constraint.Contains(n)
}

// ContainsInt64 reports whether n is in the root range.
func (v Value) ContainsInt64(n int64) bool {
	return v.Constraint.Contains(big.NewInt(n))
}

// Permits reports whether n is a valid value: in the root range, or anything
// when the constraint is extensible.
func (v Value) Permits(n *big.Int) bool {
	return v.Extensible || v.Contains(n)
}

// Check returns a *BoundError if n is not permitted.
func (v Value) Check(n *big.Int) error {
	if v.Permits(n) {
		return nil
	}
	return &BoundError{Kind: KindValue, Value: n.String(), Bounds: v.Constraint.String()}
}

// String formats the constraint, e.g. "(0..255)" or "(0..7, ...)".
func (v Value) String() string {
	return formatConstraint(v.Constraint.String(), v.Extensible)
}

// Bounds returns the root range.
func (s Size) Bounds() Bounded[Length] { return s.Constraint }

// Contains reports whether n is in the root range.
func (s Size) Contains(n int) bool {
	return s.Constraint.Contains(Length(n))
}

// Permits reports whether a length of n is valid.
func (s Size) Permits(n int) bool {
	return s.Extensible || s.Contains(n)
}

// Check returns a *BoundError if a length of n is not permitted.
func (s Size) Check(n int) error {
	if s.Permits(n) {
		return nil
	}
	return &BoundError{Kind: KindSize, Value: fmt.Sprint(n), Bounds: s.Constraint.String()}
}

// String formats the constraint, e.g. "SIZE(4)".
func (s Size) String() string {
	return "SIZE" + formatConstraint(s.Constraint.String(), s.Extensible)
}

// Alphabet returns a copy of the permitted characters.
func (p PermittedAlphabet) Alphabet() Alphabet {
	out := make(Alphabet, len(p.Constraint))
	copy(out, p.Constraint)
	return out
}

// Permits reports whether every character of s is permitted. Extensible
// alphabets permit any character.
func (p PermittedAlphabet) Permits(s string) bool {
	if p.Extensible {
		return true
	}
	for _, r := range s {
		if !p.Constraint.Contains(r) {
			return false
		}
	}
	return true
}

// Check returns a *BoundError naming the first character of s that is not permitted.
func (p PermittedAlphabet) Check(s string) error {
	if p.Extensible {
		return nil
	}
	for _, r := range s {
		if !p.Constraint.Contains(r) {
			return &BoundError{Kind: KindPermittedAlphabet, Value: fmt.Sprintf("%q", r), Bounds: p.String()}
		}
	}
	return nil
}

// String formats the constraint, e.g. `FROM("0123")`.
func (p PermittedAlphabet) String() string {
	return "FROM" + formatConstraint(fmt.Sprintf("%q", string(p.Constraint)), p.Extensible)
}

func formatConstraint(root string, extensible bool) string {
	if extensible {
		return "(" + root + ", ...)"
	}
	return "(" + root + ")"
}

// Constraints is an ordered, immutable list of constraints. The zero value
// and NoConstraints are the unconstrained list.
type Constraints struct {
	list []Constraint
}

// NoConstraints is the constraint list of an unconstrained type.
var NoConstraints = Constraints{}

// NewConstraints returns a list holding cs in order.
func NewConstraints(cs ...Constraint) Constraints {
	if len(cs) == 0 {
		return NoConstraints
	}
	list := make([]Constraint, len(cs))
	copy(list, cs)
	return Constraints{list: list}
}

// Len returns the number of constraints.
func (c Constraints) Len() int {
	return len(c.list)
}

// IsEmpty reports whether the list holds no constraints.
func (c Constraints) IsEmpty() bool {
	return len(c.list) == 0
}

// All returns a copy of the constraints in order.
func (c Constraints) All() []Constraint {
	out := make([]Constraint, len(c.list))
	copy(out, c.list)
	return out
}

// Extensible reports whether any constraint carries an extension marker.
func (c Constraints) Extensible() bool {
	for _, con := range c.list {
		if con.IsExtensible() {
			return true
		}
	}
	return false
}

// Value returns the effective value constraint. Serially applied value
// constraints are intersected; the result is extensible when the last one
// applied is extensible.
func (c Constraints) Value() (Value, bool) {
	var (
		out   Value
		found bool
	)
	for _, con := range c.list {
		v, ok := con.(Value)
		if !ok {
			continue
		}
		if !found {
			out, found = v, true
			continue
		}
		out = Value{Constraint: out.Constraint.Intersect(v.Constraint), Extensible: v.Extensible}
	}
	return out, found
}

// Size returns the effective size constraint, composed like Value.
func (c Constraints) Size() (Size, bool) {
	var (
		out   Size
		found bool
	)
	for _, con := range c.list {
		s, ok := con.(Size)
		if !ok {
			continue
		}
		if !found {
			out, found = s, true
			continue
		}
		out = Size{Constraint: out.Constraint.Intersect(s.Constraint), Extensible: s.Extensible}
	}
	return out, found
}

// PermittedAlphabet returns the effective alphabet: the characters permitted
// by every alphabet constraint in the list.
func (c Constraints) PermittedAlphabet() (PermittedAlphabet, bool) {
	var (
		out   PermittedAlphabet
		found bool
	)
	for _, con := range c.list {
		p, ok := con.(PermittedAlphabet)
		if !ok {
			continue
		}
		if !found {
			out, found = p, true
			continue
		}
		var both Alphabet
		for _, r := range out.Constraint {
			if p.Constraint.Contains(r) {
				both = append(both, r)
			}
		}
		out = PermittedAlphabet{Constraint: both, Extensible: p.Extensible}
	}
	return out, found
}

// Append returns c followed by other: other is applied serially after c.
func (c Constraints) Append(other Constraints) Constraints {
	if other.IsEmpty() {
		return c
	}
	if c.IsEmpty() {
		return other
	}
	list := make([]Constraint, 0, len(c.list)+len(other.list))
	list = append(list, c.list...)
	list = append(list, other.list...)
	return Constraints{list: list}
}

// Override returns other plus every constraint of c whose kind other does
// not constrain. A type that restates the size of its base type therefore
// replaces the base size instead of narrowing it.
func (c Constraints) Override(other Constraints) Constraints {
	kinds := make(map[ConstraintKind]bool, len(other.list))
	list := make([]Constraint, 0, len(c.list)+len(other.list))
	for _, con := range other.list {
		kinds[con.Kind()] = true
		list = append(list, con)
	}
	for _, con := range c.list {
		if !kinds[con.Kind()] {
			list = append(list, con)
		}
	}
	if len(list) == 0 {
		return NoConstraints
	}
	return Constraints{list: list}
}

// CheckValue checks n against the effective value constraint.
func (c Constraints) CheckValue(n *big.Int) error {
	if v, ok := c.Value(); ok {
		return v.Check(n)
	}
	return nil
}

// CheckSize checks a length of n against the effective size constraint.
func (c Constraints) CheckSize(n int) error {
	if s, ok := c.Size(); ok {
		return s.Check(n)
	}
	return nil
}

// CheckString checks the character count of s against the size constraint
// and its characters against the permitted alphabet.
func (c Constraints) CheckString(s string) error {
	if err := c.CheckSize(utf8.RuneCountInString(s)); err != nil {
		return err
	}
	if p, ok := c.PermittedAlphabet(); ok {
		return p.Check(s)
	}
	return nil
}

// String formats the list, e.g. "(0..255) SIZE(4)".
func (c Constraints) String() string {
	parts := make([]string, len(c.list))
	for i, con := range c.list {
		parts[i] = con.String()
	}
	return strings.Join(parts, " ")
}

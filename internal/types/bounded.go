package types

import (
	"fmt"
	"math/big"
)

// Ordinal is implemented by bound value types. Cmp returns -1, 0 or +1.
// *big.Int satisfies it directly.
type Ordinal[T any] interface {
	Cmp(T) int
}

// Length is a size bound: a count of octets, bits, characters or components.
type Length int

// Cmp compares two lengths.
func (l Length) Cmp(other Length) int {
	switch {
	case l < other:
		return -1
	case l > other:
		return 1
	default:
		return 0
	}
}

// Bounded is an inclusive range whose ends may each be absent
// (MIN and MAX in ASN.1 notation). The zero value is unbounded.
type Bounded[T Ordinal[T]] struct {
	start    T
	end      T
	hasStart bool
	hasEnd   bool
}

// Unbounded returns the range MIN..MAX.
func Unbounded[T Ordinal[T]]() Bounded[T] {
	return Bounded[T]{}
}

// SingleValue returns the range holding exactly v.
func SingleValue[T Ordinal[T]](v T) Bounded[T] {
	return Bounded[T]{start: v, end: v, hasStart: true, hasEnd: true}
}

// Range returns the range start..end.
func Range[T Ordinal[T]](start, end T) Bounded[T] {
	return Bounded[T]{start: start, end: end, hasStart: true, hasEnd: true}
}

// StartFrom returns the range start..MAX.
func StartFrom[T Ordinal[T]](start T) Bounded[T] {
	return Bounded[T]{start: start, hasStart: true}
}

// UpTo returns the range MIN..end.
func UpTo[T Ordinal[T]](end T) Bounded[T] {
	return Bounded[T]{end: end, hasEnd: true}
}

// ValueRange returns the integer range start..end.
func ValueRange(start, end int64) Bounded[*big.Int] {
	return Range(big.NewInt(start), big.NewInt(end))
}

// BigValueRange returns the integer range start..end. The arguments are
// copied; a nil argument leaves that end open.
func BigValueRange(start, end *big.Int) Bounded[*big.Int] {
	var b Bounded[*big.Int]
	if start != nil {
		b.start, b.hasStart = new(big.Int).Set(start), true
	}
	if end != nil {
		b.end, b.hasEnd = new(big.Int).Set(end), true
	}
	return b
}

// SizeRange returns the size range lo..hi.
func SizeRange(lo, hi int) Bounded[Length] {
	return Range(Length(lo), Length(hi))
}

// FixedSize returns the size range holding exactly n.
func FixedSize(n int) Bounded[Length] {
	return SingleValue(Length(n))
}

// Start returns the lower bound, if any.
func (b Bounded[T]) Start() (T, bool) {
	return b.start, b.hasStart
}

// End returns the upper bound, if any.
func (b Bounded[T]) End() (T, bool) {
	return b.end, b.hasEnd
}

// IsUnbounded reports whether neither end is set.
func (b Bounded[T]) IsUnbounded() bool {
	return !b.hasStart && !b.hasEnd
}

// IsSingle reports whether the range holds exactly one value.
func (b Bounded[T]) IsSingle() bool {
	return b.hasStart && b.hasEnd && b.start.Cmp(b.end) == 0
}

// IsEmpty reports whether the lower bound exceeds the upper bound.
func (b Bounded[T]) IsEmpty() bool {
	return b.hasStart && b.hasEnd && b.start.Cmp(b.end) > 0
}

// Contains reports whether v lies within the range.
func (b Bounded[T]) Contains(v T) bool {
	if b.hasStart && v.Cmp(b.start) < 0 {
		return false
	}
	if b.hasEnd && v.Cmp(b.end) > 0 {
		return false
	}
	return true
}

// Intersect returns the values in both b and other. The result may be empty.
func (b Bounded[T]) Intersect(other Bounded[T]) Bounded[T] {
	out := b
	if other.hasStart && (!out.hasStart || other.start.Cmp(out.start) > 0) {
		out.start, out.hasStart = other.start, true
	}
	if other.hasEnd && (!out.hasEnd || other.end.Cmp(out.end) < 0) {
		out.end, out.hasEnd = other.end, true
	}
	return out
}

// Equal reports whether both ranges have the same ends.
func (b Bounded[T]) Equal(other Bounded[T]) bool {
	if b.hasStart != other.hasStart || b.hasEnd != other.hasEnd {
		return false
	}
	if b.hasStart && b.start.Cmp(other.start) != 0 {
		return false
	}
	return !b.hasEnd || b.end.Cmp(other.end) == 0
}

// String formats the range in ASN.1 notation, e.g. "0..255", "MIN..10" or "4".
func (b Bounded[T]) String() string {
	if b.IsSingle() {
		return fmt.Sprint(b.start)
	}
	lo, hi := "MIN", "MAX"
	if b.hasStart {
		lo = fmt.Sprint(b.start)
	}
	if b.hasEnd {
		hi = fmt.Sprint(b.end)
	}
	return lo + ".." + hi
}

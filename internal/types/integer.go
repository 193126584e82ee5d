package types

import "math/big"

// IntRange is implemented by zero-size marker types that fix the bounds of
// a ConstrainedInteger at compile time:
//
//	type octet struct{}
//
//	func (octet) Bounds() (int64, int64) { return 0, 255 }
//
//	var n = types.NewConstrainedInteger[octet](42)
type IntRange interface {
	Bounds() (start, end int64)
}

// BigIntRange is implemented by range types whose bounds do not fit in an
// int64. When R implements it, BigBounds takes precedence over Bounds and a
// nil bound leaves that end open:
//
//	type uint64Range struct{}
//
//	func (uint64Range) Bounds() (int64, int64) { return 0, math.MaxInt64 }
//	func (uint64Range) BigBounds() (*big.Int, *big.Int) {
//		return big.NewInt(0), new(big.Int).SetUint64(math.MaxUint64)
//	}
type BigIntRange interface {
	BigBounds() (start, end *big.Int)
}

// ConstrainedInteger is an INTEGER whose value constraint start..end is
// carried by the type parameter R.
//
// Construction never rejects a value outside the range; Check, or a codec
// consulting AsnConstraints, does.
//
// Values are immutable: copies share the underlying integer and SetBig
// replaces it rather than writing through it.
type ConstrainedInteger[R IntRange] struct {
	v *big.Int
}

var bigZero = new(big.Int)

func (c ConstrainedInteger[R]) value() *big.Int {
	if c.v == nil {
		return bigZero
	}
	return c.v
}

// NewConstrainedInteger returns the integer n.
func NewConstrainedInteger[R IntRange](n int64) ConstrainedInteger[R] {
	return ConstrainedInteger[R]{v: big.NewInt(n)}
}

// ConstrainedIntegerFromBig returns a copy of n. A nil n yields 0.
func ConstrainedIntegerFromBig[R IntRange](n *big.Int) ConstrainedInteger[R] {
	if n == nil {
		return ConstrainedInteger[R]{}
	}
	return ConstrainedInteger[R]{v: new(big.Int).Set(n)}
}

// AsnTag returns TagInteger.
func (ConstrainedInteger[R]) AsnTag() Tag { return TagInteger }

// AsnConstraints returns the non-extensible value constraint start..end.
func (ConstrainedInteger[R]) AsnConstraints() Constraints {
	var r R
	if br, ok := any(r).(BigIntRange); ok {
		start, end := br.BigBounds()
		return NewConstraints(Value(NewExtensible(BigValueRange(start, end))))
	}
	start, end := r.Bounds()
	return NewConstraints(Value(NewExtensible(ValueRange(start, end))))
}

// Int returns a copy of the underlying integer.
func (c ConstrainedInteger[R]) Int() *big.Int {
	return new(big.Int).Set(c.value())
}

// Int64 returns the value as an int64 and whether it fits.
func (c ConstrainedInteger[R]) Int64() (int64, bool) {
	v := c.value()
	return v.Int64(), v.IsInt64()
}

// Cmp compares the values of c and other.
func (c ConstrainedInteger[R]) Cmp(other ConstrainedInteger[R]) int {
	return c.value().Cmp(other.value())
}

// Check reports whether the value lies within start..end.
func (c ConstrainedInteger[R]) Check() error {
	return c.AsnConstraints().CheckValue(c.value())
}

// SetBig replaces the value with a copy of n, without checking it. A nil n
// sets 0.
func (c *ConstrainedInteger[R]) SetBig(n *big.Int) {
	if n == nil {
		c.v = nil
		return
	}
	c.v = new(big.Int).Set(n)
}

// String returns the decimal value.
func (c ConstrainedInteger[R]) String() string {
	return c.value().String()
}

// Package types describes ASN.1 types to encoding rules without encoding them.
//
// Every Go type that maps to ASN.1 carries static metadata: its tag, its tag
// tree (used to pick CHOICE alternatives), its constraints, its member layout
// for SEQUENCE and SET, its variant layout for CHOICE and its discriminant
// table for ENUMERATED. Codecs (BER, DER, PER, JER ...) read the same metadata,
// so a new encoding rule never touches per-type code and a new type never
// touches codec code.
//
// # Tags
//
// A Tag is a (class, number) pair:
//
//	types.TagInteger                // [UNIVERSAL 2]
//	types.ContextTag(0)             // [0]
//	types.NewTag(types.ClassApplication, 10)
//
// Types that are not CHOICEs use Leaf(tag) as their tag tree. CHOICE types
// report TagEOC and a ChoiceOf(...) tree listing the trees of their variants.
// The open type (Any) uses the empty ChoiceOf().
//
// # Capabilities
//
// A type opts in by implementing the interfaces below on its value receiver:
//
//   - AsnType: AsnTag() Tag
//   - TagTreer: AsnTagTree() TagTree (optional, defaults to Leaf(AsnTag()))
//   - Constrained: AsnConstraints() Constraints (optional, defaults to none)
//   - Constructed: Fields() and ExtendedFields() for SEQUENCE and SET
//   - Choice, DecodeChoice: variant trees, identifiers and FromTag
//   - Enumerated[E]: variant and discriminant tables
//
// Builtin Go types (bool, integers, *big.Int, []byte, string, slices, arrays,
// pointers, asn1.ObjectIdentifier, time.Time) are bound by DescriptorOf
// without any method set.
//
// # Errors
//
// Lookups that translate author-controlled values into numbers
// (EnumerationIndex, DiscriminantOf) panic when the tables of a type are
// inconsistent with its values. Lookups driven by wire data (FromDiscriminant,
// FromEnumerationIndex, ResolveChoice) return a second false result instead,
// and the codec reports a decode error.
//
// All descriptors are built at package initialisation and never mutated, so
// they may be shared by any number of goroutines.
package types

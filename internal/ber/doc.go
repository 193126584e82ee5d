// Package ber implements ASN.1 BER (Basic Encoding Rules) encoding and decoding
// as specified in ITU-T X.690.
//
// The package is the reference codec for the metadata in package types: it
// writes and reads identifiers as types.Tag values and drives its reflective
// Encode and Decode from types.DescriptorOf.
//
// # Tag Classes
//
// BER uses four tag classes to identify data types:
//
//   - Universal (0x00): Standard ASN.1 types like INTEGER, BOOLEAN, SEQUENCE
//   - Application (0x40): Types defined once per module
//   - Context-specific (0x80): Context-dependent types within a structure
//   - Private (0xC0): Organization-specific types
//
// Tag numbers above 30 use the long form, with the number in base-128.
//
// # Primitives
//
// Use BEREncoder and BERDecoder for hand-written encodings:
//
//	enc := ber.NewBEREncoder(256)
//	enc.WriteInteger(42)
//	enc.WriteConstructed(types.TagSequence, func(inner *ber.BEREncoder) error {
//	    return inner.WriteUTF8String("hello")
//	})
//	data := enc.Bytes()
//
//	dec := ber.NewBERDecoder(data)
//	n, err := dec.ReadInteger()
//	if err != nil {
//	    // handle error
//	}
//	seq, err := dec.ReadSequenceContents()
//
// # Descriptor-driven encoding
//
// Marshal and Unmarshal map Go values through their descriptors. Types that
// implement types.AsnType choose their tag, types.Constrained types have
// their constraints enforced, and structs implementing types.Constructed
// map their exported fields to the members in order:
//
//	data, err := ber.Marshal(msg)
//	err = ber.Unmarshal(data, &msg)
//
// Member tags are implicit, except on CHOICE members where they are
// explicit. CHOICE types implement Marshaler to write the selected
// alternative, and types.DecodeChoice to read it; the decoder passes itself
// as the types.Decoder.
//
// Non-extensible SEQUENCE and SET types reject elements after their last
// member with ErrTrailingData; extensible ones skip them.
//
// # References
//
//   - ITU-T X.680: ASN.1 notation
//   - ITU-T X.690: ASN.1 encoding rules
package ber

// Package ber implements ASN.1 BER (Basic Encoding Rules) encoding
// as specified in ITU-T X.690.
package ber

import (
	"encoding/asn1"
	"math/big"
	"time"
	"unicode/utf8"

	"github.com/KilimcininKorOglu/asntypes/internal/types"
)

// BEREncoder encodes ASN.1 values using BER (Basic Encoding Rules).
type BEREncoder struct {
	buf   []byte
	depth int
	opts  Options
}

// NewBEREncoder creates a new BER encoder with an optional initial capacity.
func NewBEREncoder(capacity int) *BEREncoder {
	return NewBEREncoderWithOptions(capacity, DefaultOptions())
}

// NewBEREncoderWithOptions creates a new BER encoder with the given options.
func NewBEREncoderWithOptions(capacity int, opts Options) *BEREncoder {
	if capacity <= 0 {
		capacity = 64
	}
	return &BEREncoder{
		buf:  make([]byte, 0, capacity),
		opts: opts.withDefaults(),
	}
}

// Bytes returns the encoded bytes.
func (e *BEREncoder) Bytes() []byte {
	return e.buf
}

// Reset clears the encoder buffer for reuse.
func (e *BEREncoder) Reset() {
	e.buf = e.buf[:0]
}

// Len returns the current length of encoded data.
func (e *BEREncoder) Len() int {
	return len(e.buf)
}

// WriteTag writes the identifier octet(s) of tag.
// Tag numbers 0-30 use the short form, larger numbers the long form.
func (e *BEREncoder) WriteTag(tag types.Tag, constructed bool) error {
	class, err := classBits(tag.Class)
	if err != nil {
		return err
	}
	form := byte(TypePrimitive)
	if constructed {
		form = TypeConstructed
	}

	// Short form: tag number fits in 5 bits (0-30)
	if tag.Number < LongFormTagNumber {
		e.buf = append(e.buf, class|form|byte(tag.Number))
		return nil
	}

	// Long form: first byte has all 5 number bits set, the number follows in base-128
	e.buf = append(e.buf, class|form|LongFormTagNumber)
	e.writeBase128(tag.Number)
	return nil
}

// writeBase128 encodes an integer in base-128 format (high bit indicates continuation)
func (e *BEREncoder) writeBase128(value uint32) {
	if value == 0 {
		e.buf = append(e.buf, 0)
		return
	}

	var bytes []byte
	for value > 0 {
		bytes = append(bytes, byte(value&0x7F))
		value >>= 7
	}

	// Write bytes in reverse order with continuation bits
	for i := len(bytes) - 1; i >= 0; i-- {
		b := bytes[i]
		if i > 0 {
			b |= 0x80 // Set continuation bit for all but last byte
		}
		e.buf = append(e.buf, b)
	}
}

// WriteLength writes a BER length value to the buffer.
// Uses short form for lengths 0-127, long form for larger values.
func (e *BEREncoder) WriteLength(length int) error {
	if length < 0 {
		return ErrNegativeLength
	}

	// Short form: length fits in 7 bits (0-127)
	if length <= MaxShortFormLength {
		e.buf = append(e.buf, byte(length))
		return nil
	}

	// Long form: first byte indicates number of length bytes
	numBytes := 0
	for temp := length; temp > 0; temp >>= 8 {
		numBytes++
	}

	// Check for overflow (length byte can only indicate up to 126 subsequent bytes)
	if numBytes > 126 {
		return ErrLengthOverflow
	}

	e.buf = append(e.buf, byte(LengthLongFormBit|numBytes))

	// Write length bytes in big-endian order
	for i := numBytes - 1; i >= 0; i-- {
		e.buf = append(e.buf, byte(length>>(i*8)))
	}

	return nil
}

// WriteTLV writes a complete element: tag, length and contents.
func (e *BEREncoder) WriteTLV(tag types.Tag, constructed bool, contents []byte) error {
	if err := e.WriteTag(tag, constructed); err != nil {
		return err
	}
	if err := e.WriteLength(len(contents)); err != nil {
		return err
	}
	e.buf = append(e.buf, contents...)
	return nil
}

// WriteConstructed writes a constructed element with tag whose contents
// are produced by fn.
func (e *BEREncoder) WriteConstructed(tag types.Tag, fn func(*BEREncoder) error) error {
	if e.depth >= e.opts.MaxDepth {
		return ErrMaxDepth
	}
	inner := &BEREncoder{buf: make([]byte, 0, 64), depth: e.depth + 1, opts: e.opts}
	if err := fn(inner); err != nil {
		return err
	}
	return e.WriteTLV(tag, true, inner.Bytes())
}

// WriteBoolean writes a BER-encoded boolean value.
// Per X.690, FALSE is encoded as 0x00, TRUE as any non-zero value (we use 0xFF).
func (e *BEREncoder) WriteBoolean(v bool) error {
	return e.WriteBooleanWithTag(types.TagBoolean, v)
}

// WriteBooleanWithTag writes a boolean under an implicit tag.
func (e *BEREncoder) WriteBooleanWithTag(tag types.Tag, v bool) error {
	if v {
		return e.WriteTLV(tag, false, []byte{0xFF})
	}
	return e.WriteTLV(tag, false, []byte{0x00})
}

// WriteInteger writes a BER-encoded integer value.
// Uses the minimum number of octets with two's complement representation.
func (e *BEREncoder) WriteInteger(v int64) error {
	return e.WriteTLV(types.TagInteger, false, encodeInteger(v))
}

// WriteIntegerWithTag writes an integer under an implicit tag.
func (e *BEREncoder) WriteIntegerWithTag(tag types.Tag, v int64) error {
	return e.WriteTLV(tag, false, encodeInteger(v))
}

// WriteBigInteger writes an arbitrary precision integer.
func (e *BEREncoder) WriteBigInteger(v *big.Int) error {
	return e.WriteTLV(types.TagInteger, false, encodeBigInteger(v))
}

// encodeInteger encodes an int64 as a minimal two's complement byte slice.
func encodeInteger(v int64) []byte {
	var full [8]byte
	for i := range full {
		full[7-i] = byte(v >> (8 * i))
	}

	// Drop leading octets that only repeat the sign of the next one
	start := 0
	for start < 7 {
		next := full[start+1] & 0x80
		if (full[start] == 0x00 && next == 0) || (full[start] == 0xFF && next != 0) {
			start++
			continue
		}
		break
	}

	return append([]byte(nil), full[start:]...)
}

// encodeBigInteger encodes v as a minimal two's complement byte slice.
func encodeBigInteger(v *big.Int) []byte {
	switch v.Sign() {
	case 0:
		return []byte{0x00}
	case 1:
		bytes := v.Bytes()
		if bytes[0]&0x80 != 0 {
			bytes = append([]byte{0x00}, bytes...)
		}
		return bytes
	}

	// Two's complement of a negative n is the bitwise NOT of |n|-1
	n := new(big.Int).Neg(v)
	n.Sub(n, big.NewInt(1))
	bytes := n.Bytes()
	for i := range bytes {
		bytes[i] ^= 0xFF
	}
	if len(bytes) == 0 || bytes[0]&0x80 == 0 {
		bytes = append([]byte{0xFF}, bytes...)
	}
	return bytes
}

// WriteOctetString writes a BER-encoded octet string.
func (e *BEREncoder) WriteOctetString(v []byte) error {
	return e.WriteTLV(types.TagOctetString, false, v)
}

// WriteUTF8String writes a UTF8String.
func (e *BEREncoder) WriteUTF8String(v string) error {
	if !utf8.ValidString(v) {
		return ErrInvalidString
	}
	return e.WriteTLV(types.TagUTF8String, false, []byte(v))
}

// WriteEnumerated writes a BER-encoded enumerated value.
// Enumerated values are encoded identically to integers.
func (e *BEREncoder) WriteEnumerated(v int64) error {
	return e.WriteTLV(types.TagEnumerated, false, encodeInteger(v))
}

// WriteNull writes a BER-encoded null value.
func (e *BEREncoder) WriteNull() error {
	return e.WriteTLV(types.TagNull, false, nil)
}

// WriteObjectIdentifier writes an OBJECT IDENTIFIER.
func (e *BEREncoder) WriteObjectIdentifier(oid asn1.ObjectIdentifier) error {
	return e.writeStdlib(types.TagObjectIdentifier, oid, "")
}

// WriteBitString writes a BIT STRING.
func (e *BEREncoder) WriteBitString(bs asn1.BitString) error {
	return e.writeStdlib(types.TagBitString, bs, "")
}

// WriteUTCTime writes t as UTCTime.
func (e *BEREncoder) WriteUTCTime(t time.Time) error {
	return e.writeStdlib(types.TagUTCTime, t.UTC(), "utc")
}

// WriteGeneralizedTime writes t as GeneralizedTime.
func (e *BEREncoder) WriteGeneralizedTime(t time.Time) error {
	return e.writeStdlib(types.TagGeneralizedTime, t.UTC(), "generalized")
}

// writeStdlib encodes v with encoding/asn1, whose DER output for these
// universal types is valid BER, and writes its contents under tag.
func (e *BEREncoder) writeStdlib(tag types.Tag, v any, params string) error {
	der, err := asn1.MarshalWithParams(v, params)
	if err != nil {
		return err
	}
	var raw asn1.RawValue
	if _, err := asn1.Unmarshal(der, &raw); err != nil {
		return err
	}
	return e.WriteTLV(tag, false, raw.Bytes)
}

// WriteRaw writes raw bytes directly to the buffer.
// Useful for pre-encoded data or custom encoding.
func (e *BEREncoder) WriteRaw(data []byte) {
	e.buf = append(e.buf, data...)
}

// WriteTaggedValue writes a context-specific tagged value.
func (e *BEREncoder) WriteTaggedValue(tagNumber uint32, constructed bool, value []byte) error {
	return e.WriteTLV(types.ContextTag(tagNumber), constructed, value)
}

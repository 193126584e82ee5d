package ber

import (
	"testing"

	"github.com/KilimcininKorOglu/asntypes/internal/types"
)

// BenchmarkBEREncodeInteger benchmarks integer encoding.
func BenchmarkBEREncodeInteger(b *testing.B) {
	enc := NewBEREncoder(64)
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		enc.Reset()
		_ = enc.WriteInteger(int64(i))
	}
}

// BenchmarkBERDecodeInteger benchmarks integer decoding.
func BenchmarkBERDecodeInteger(b *testing.B) {
	data := []byte{0x02, 0x04, 0x7f, 0xff, 0xff, 0xff}
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		dec := NewBERDecoder(data)
		_, _ = dec.ReadInteger()
	}
}

// BenchmarkMarshalSequence benchmarks descriptor-driven SEQUENCE encoding.
func BenchmarkMarshalSequence(b *testing.B) {
	name := "bench"
	msg := message{
		ID:    types.NewConstrainedInteger[octet](42),
		Name:  &name,
		Value: number{variant: 1, text: "value"},
		Tags:  []string{"a", "b"},
	}
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = Marshal(msg)
	}
}

// BenchmarkUnmarshalSequence benchmarks descriptor-driven SEQUENCE decoding.
func BenchmarkUnmarshalSequence(b *testing.B) {
	data, err := Marshal(message{
		ID:    types.NewConstrainedInteger[octet](42),
		Value: number{variant: 0, n: 7},
		Tags:  []string{"a", "b"},
	})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		var msg message
		_ = Unmarshal(data, &msg)
	}
}

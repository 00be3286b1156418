package codec_test

import (
	"bytes"
	"testing"

	"github.com/dmitrymomot/sigtoken/pkg/codec"
)

func BenchmarkEncodeSegment(b *testing.B) {
	data := bytes.Repeat([]byte(`{"id":"42","name":"bench"}`), 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = codec.EncodeSegment(data)
	}
}

func BenchmarkDecodeSegment(b *testing.B) {
	seg := codec.EncodeSegment(bytes.Repeat([]byte(`{"id":"42","name":"bench"}`), 8))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.DecodeSegment(seg); err != nil {
			b.Fatal(err)
		}
	}
}

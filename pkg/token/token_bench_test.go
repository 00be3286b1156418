package token_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/sigtoken/pkg/token"
)

func BenchmarkIssue(b *testing.B) {
	svc := newService[profile](b, "benchmark-secret")
	p := profile{ID: 42, Name: "bench", Tags: []string{"a", "b"}}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Issue(ctx, p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	svc := newService[profile](b, "benchmark-secret")
	ctx := context.Background()
	tok, err := svc.Issue(ctx, profile{ID: 42, Name: "bench"})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Verify(ctx, tok); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify_Parallel(b *testing.B) {
	svc := newService[profile](b, "benchmark-secret")
	ctx := context.Background()
	tok, err := svc.Issue(ctx, profile{ID: 42, Name: "bench"})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.Verify(ctx, tok); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

func BenchmarkSign(b *testing.B) {
	secret := []byte("benchmark-secret")
	payload := "eyJpZCI6IjQyIn0"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = token.Sign(secret, token.HeaderSegment(), payload)
	}
}

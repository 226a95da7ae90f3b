package vector3

import (
	"testing"
)

func BenchmarkNormalize(b *testing.B) {
	v := New(1, 2, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Normalize()
	}
}

func BenchmarkCross(b *testing.B) {
	v1 := New(1, 2, 3)
	v2 := New(4, 5, 6)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Cross(v2)
	}
}

func BenchmarkDot(b *testing.B) {
	v1 := New(1, 2, 3)
	v2 := New(4, 5, 6)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Dot(v2)
	}
}

func BenchmarkRotate(b *testing.B) {
	v := New(1, 2, 3)
	axis := New(1, 1, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Rotate(0.5, axis)
	}
}

func BenchmarkTrim(b *testing.B) {
	v := New(10, 20, 30)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Trim(5)
	}
}

package cache

import (
	"testing"
)

func BenchmarkCacheGet(b *testing.B) {
	c := New[int, int](1000)
	for i := 0; i < 100; i++ {
		c.Set(i, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(50)
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[int, int](1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCreate(i%100, func() int {
			return i
		})
	}
}

func BenchmarkRowsLRUHit(b *testing.B) {
	r := NewRows(8, 256)
	for y := 0; y < 8; y++ {
		r.Slot(y)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Slot(i & 7)
	}
}

func BenchmarkRowsLRUMiss(b *testing.B) {
	r := NewRows(8, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Slot(i & 255)
	}
}

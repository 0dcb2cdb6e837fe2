package ordmap

import (
	"math/rand"
	"strconv"
	"testing"
)

func benchDict(n int) *Dict[int, int] {
	d := New[int, int](Signed[int]())
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < n; i++ {
		d.Insert(rng.Int(), i)
	}
	return d
}

func BenchmarkInsertAscending(b *testing.B) {
	d := New[int, int](Signed[int]())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Insert(i, i)
	}
}

func BenchmarkInsertRandom(b *testing.B) {
	d := New[int, int](Signed[int]())
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Insert(rng.Int(), i)
	}
}

func BenchmarkFindRandom(b *testing.B) {
	d := benchDict(1 << 14)
	rng := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Find(rng.Int())
	}
}

func BenchmarkFindRepeated(b *testing.B) {
	// Repeated queries for the same key exercise the search cache.
	d := benchDict(1 << 14)
	key := d.KeyAt(d.Len() / 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Find(key)
	}
}

func BenchmarkFindRepeatedNoCache(b *testing.B) {
	bisectSkipCacheHook = func() bool { return true }
	defer func() { bisectSkipCacheHook = nil }()

	d := benchDict(1 << 14)
	key := d.KeyAt(d.Len() / 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Find(key)
	}
}

func BenchmarkCaseFoldFind(b *testing.B) {
	d := New[string, int](CaseFold())
	for i := 0; i < 1<<12; i++ {
		d.Insert("key"+strconv.Itoa(i), i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Find("KEY" + strconv.Itoa(i&(1<<12-1)))
	}
}

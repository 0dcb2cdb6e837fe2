package ordmap

import (
	"math/rand"
	"testing"
)

func TestBisectContract(t *testing.T) {
	d := New[int, int](Signed[int]())
	for _, key := range []int{5, 1, 3, 3, 9, 3, 7} {
		d.Insert(key, key)
	}

	for key := 0; key <= 10; key++ {
		left := d.BisectLeft(key)
		right := d.BisectRight(key)
		if left > right {
			t.Fatalf("BisectLeft(%d)=%d > BisectRight(%d)=%d", key, left, key, right)
		}

		var below int
		for i := 0; i < d.Len(); i++ {
			if d.KeyAt(i) < key {
				below++
			}
		}
		if left != below {
			t.Fatalf("BisectLeft(%d)=%d, want %d entries strictly below", key, left, below)
		}

		var atOrBelow int
		for i := 0; i < d.Len(); i++ {
			if d.KeyAt(i) <= key {
				atOrBelow++
			}
		}
		if right != atOrBelow {
			t.Fatalf("BisectRight(%d)=%d, want %d", key, right, atOrBelow)
		}
	}
}

func TestBisectOnEmptyDictionary(t *testing.T) {
	d := New[string, int](CaseFold())
	if got := d.BisectLeft("anything"); got != 0 {
		t.Fatalf("expected BisectLeft on empty dictionary to be 0, got %d", got)
	}
	if got := d.BisectRight("anything"); got != 0 {
		t.Fatalf("expected BisectRight on empty dictionary to be 0, got %d", got)
	}
}

func TestSearchCacheIsTransparent(t *testing.T) {
	// Replay the same operation sequence against two dictionaries, one with
	// the cache bypassed, and require identical observable results.
	bypass := false
	bisectSkipCacheHook = func() bool { return bypass }
	defer func() { bisectSkipCacheHook = nil }()

	cached := New[int, int](Signed[int]())
	plain := New[int, int](Signed[int]())

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 3000; i++ {
		key := rng.Intn(40)
		op := rng.Intn(5)

		run := func(d *Dict[int, int]) (int, int, bool) {
			switch op {
			case 0:
				return d.Insert(key, i), 0, true
			case 1:
				index, ok := d.Remove(key)
				return index, 0, ok
			case 2:
				index, ok := d.Find(key)
				return index, 0, ok
			case 3:
				return d.BisectLeft(key), 0, true
			default:
				return d.BisectRight(key), 0, true
			}
		}

		bypass = false
		a1, a2, aok := run(cached)
		bypass = true
		b1, b2, bok := run(plain)

		if a1 != b1 || a2 != b2 || aok != bok {
			t.Fatalf("op %d key %d diverged: cached (%d,%d,%t) plain (%d,%d,%t)",
				op, key, a1, a2, aok, b1, b2, bok)
		}
	}

	if cached.Len() != plain.Len() {
		t.Fatalf("dictionaries diverged in size: %d vs %d", cached.Len(), plain.Len())
	}
	for i := 0; i < cached.Len(); i++ {
		if cached.KeyAt(i) != plain.KeyAt(i) {
			t.Fatalf("keys diverged at index %d", i)
		}
	}
	if cached.Metrics().CacheHits() == 0 {
		t.Fatalf("expected the cached dictionary to take the cache path at least once")
	}
	if plain.Metrics().CacheHits() != 0 {
		t.Fatalf("expected the bypassed dictionary to never hit the cache")
	}
}

func TestRepeatedSearchHitsCache(t *testing.T) {
	d := New[string, int](CaseFold())
	for i, key := range []string{"alpha", "beta", "gamma", "delta"} {
		d.Insert(key, i)
	}

	before := d.Metrics().CacheHits()
	d.BisectLeft("beta")
	d.BisectLeft("beta")
	d.BisectLeft("BETA") // equal under case folding, still a hit
	if got := d.Metrics().CacheHits() - before; got != 2 {
		t.Fatalf("expected 2 cache hits, got %d", got)
	}
}

func TestMutationInvalidatesCache(t *testing.T) {
	d := New[int, int](Signed[int]())
	for _, key := range []int{1, 3, 5, 7} {
		d.Insert(key, key)
	}

	d.BisectLeft(5)
	before := d.Metrics().CacheHits()

	d.Insert(4, 4)
	if got := d.BisectLeft(5); got != 3 {
		t.Fatalf("expected BisectLeft(5) == 3 after insert, got %d", got)
	}
	if d.Metrics().CacheHits() != before {
		t.Fatalf("expected no cache hit after a structural mutation")
	}

	d.BisectLeft(5)
	if d.Metrics().CacheHits() != before+1 {
		t.Fatalf("expected a cache hit on the repeated query")
	}

	d.RemoveAt(0)
	if got := d.BisectLeft(5); got != 2 {
		t.Fatalf("expected BisectLeft(5) == 2 after removal, got %d", got)
	}
	if d.Metrics().CacheHits() != before+1 {
		t.Fatalf("expected removal to invalidate the cache")
	}
}

func TestCandidateIsAdjacentToBoundary(t *testing.T) {
	var candidates []int
	bisectCandidateHook = func(index int) { candidates = append(candidates, index) }
	defer func() { bisectCandidateHook = nil }()

	d := New[int, int](Signed[int]())
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		d.Insert(rng.Intn(100), i)
	}

	candidates = nil
	for key := -5; key <= 105; key++ {
		boundary := d.BisectLeft(key)
		candidate := candidates[len(candidates)-1]
		if candidate < 0 || candidate > d.Len() {
			t.Fatalf("candidate %d out of range", candidate)
		}
		// The last probe of a fresh binary search lands on the boundary or
		// one slot below it; a cached candidate is the boundary itself. The
		// linear correction must therefore never need more than one step
		// past entries comparing equal to the sought key.
		if diff := boundary - candidate; diff < 0 || diff > 1 {
			t.Fatalf("candidate %d not adjacent to boundary %d for key %d",
				candidate, boundary, key)
		}
	}
}

func TestBisectRightScansDuplicateRun(t *testing.T) {
	d := New[string, int](CaseFold())
	for i := 0; i < 5; i++ {
		d.Insert("same", i)
	}
	d.Insert("aaa", -1)
	d.Insert("zzz", -2)

	if got := d.BisectLeft("SAME"); got != 1 {
		t.Fatalf("expected duplicate run to start at 1, got %d", got)
	}
	if got := d.BisectRight("SAME"); got != 6 {
		t.Fatalf("expected duplicate run to end at 6, got %d", got)
	}
}

package ordmap

// Test hooks (kept separate so instrumentation doesn't clutter logic).
var (
	// bisectSkipCacheHook forces BisectLeft to ignore the search cache.
	bisectSkipCacheHook func() bool

	// bisectCandidateHook observes the raw candidate slot before the
	// linear correction resolves the boundary.
	bisectCandidateHook func(index int)
)

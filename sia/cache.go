package sia

import "fmt"

// ValueCache memoizes one lazily-computed value per key for the lifetime of
// its owning generator. The key set is fixed at construction; looking up a
// key outside it is an error. A generator error propagates to the caller and
// the key stays unmemoized, so the next lookup retries.
//
// Not safe for concurrent population of the same key from multiple
// goroutines (single-writer-per-key assumed).
type ValueCache[K comparable, V any] struct {
	keys   map[K]struct{}
	gen    func(K) (V, error)
	values map[K]V
}

// NewValueCache creates a cache over the given key set with gen as the
// compute-on-miss function.
func NewValueCache[K comparable, V any](keys []K, gen func(K) (V, error)) *ValueCache[K, V] {
	keySet := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		keySet[k] = struct{}{}
	}
	return &ValueCache[K, V]{
		keys:   keySet,
		gen:    gen,
		values: make(map[K]V, len(keys)),
	}
}

// Lookup returns the cached value for key, computing it on first access.
// Repeated lookups for the same key invoke the generator exactly once.
func (c *ValueCache[K, V]) Lookup(key K) (V, error) {
	if v, ok := c.values[key]; ok {
		return v, nil
	}
	var zero V
	if _, ok := c.keys[key]; !ok {
		return zero, fmt.Errorf("key %v not declared in cache key set", key)
	}
	v, err := c.gen(key)
	if err != nil {
		return zero, err
	}
	c.values[key] = v
	return v, nil
}

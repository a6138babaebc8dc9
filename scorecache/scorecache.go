// Package scorecache memoizes scoring functions behind a capacity-bounded
// LRU. The selection pass itself never caches scores; this wrapper is for
// callers who run repeated passes with an expensive scorer.
package scorecache

import (
	"github.com/golang/groupcache/lru"
)

// Cached wraps scoreOf so that at most maxEntries distinct keys are scored
// once; older keys are evicted LRU-style and re-scored on the next hit.
// Errors are returned unchanged and never cached. The returned function is
// not safe for concurrent use, matching the single-owner model of a pass.
func Cached[T, S any](scoreOf func(T) (S, error), keyOf func(T) string, maxEntries int) func(T) (S, error) {
	cache := lru.New(maxEntries)
	return func(item T) (S, error) {
		key := keyOf(item)
		if v, ok := cache.Get(key); ok {
			return v.(S), nil
		}
		score, err := scoreOf(item)
		if err != nil {
			var zero S
			return zero, err
		}
		cache.Add(key, score)
		return score, nil
	}
}

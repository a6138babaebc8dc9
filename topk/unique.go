package topk

import (
	"github.com/twmb/murmur3"
)

// Unique is a Store that admits at most one entry per key. Keys are
// collapsed to 64-bit murmur3 fingerprints so the seen-set costs 8 bytes
// per key; a fingerprint collision makes a distinct new item look already
// seen. A key once offered stays seen even if its entry is later evicted.
type Unique[S, T any] struct {
	*Store[S, T]
	keyOf func(T) string
	seen  map[uint64]struct{}
}

// NewUnique creates a deduplicating store of capacity k, keyed by keyOf.
func NewUnique[S, T any](k int, less func(a, b S) bool, policy Policy, keyOf func(T) string) (*Unique[S, T], error) {
	store, err := New[S, T](k, less, policy)
	if err != nil {
		return nil, err
	}
	return &Unique[S, T]{
		Store: store,
		keyOf: keyOf,
		seen:  make(map[uint64]struct{}),
	}, nil
}

// Offer admits the pair unless its key has been offered before. Repeat
// offers are no-ops regardless of score.
func (u *Unique[S, T]) Offer(score S, item T) (evicted Entry[S, T], ok bool) {
	fp := murmur3.StringSum64(u.keyOf(item))
	if _, dup := u.seen[fp]; dup {
		return evicted, false
	}
	u.seen[fp] = struct{}{}
	return u.Store.Offer(score, item)
}

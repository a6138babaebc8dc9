// Package topk provides a fixed-capacity container that keeps the k
// highest-scoring entries offered to it, in O(log k) per admission and
// O(k) memory.
package topk

import (
	"container/heap"
	"errors"
	"fmt"
	"iter"
	"sort"
)

var (
	// ErrNegativeK is returned when a store is created with a negative capacity.
	ErrNegativeK = errors.New("topk: capacity must be non-negative")
	// ErrUnknownPolicy is returned for a tie-break policy that is neither
	// FirstSeenWins nor LastSeenWins.
	ErrUnknownPolicy = errors.New("topk: unknown tie-break policy")
)

// Policy resolves equal scores at the capacity boundary.
type Policy int

const (
	// FirstSeenWins keeps the earlier-admitted entry when an offered score
	// ties the held minimum. Admission requires a strictly greater score,
	// and equal-score entries drain in admission order.
	FirstSeenWins Policy = iota
	// LastSeenWins replaces the held minimum on a score tie. Equal-score
	// entries drain most-recent first.
	LastSeenWins
)

func (p Policy) String() string {
	switch p {
	case FirstSeenWins:
		return "first-seen-wins"
	case LastSeenWins:
		return "last-seen-wins"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy maps a policy name to its Policy value.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "first-seen-wins":
		return FirstSeenWins, nil
	case "last-seen-wins":
		return LastSeenWins, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Entry is one held (score, item) pair.
type Entry[S, T any] struct {
	Score S
	Item  T

	seq uint64
}

// Store keeps the k highest-scoring entries seen so far. A Store is owned
// by a single pass and is not safe for concurrent use.
type Store[S, T any] struct {
	k    int
	heap entryHeap[S, T]
	seq  uint64
}

// New creates a store with capacity k. less must be a strict ordering on
// scores. A store with k == 0 never admits anything.
func New[S, T any](k int, less func(a, b S) bool, policy Policy) (*Store[S, T], error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeK, k)
	}
	if policy != FirstSeenWins && policy != LastSeenWins {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, policy)
	}
	s := &Store[S, T]{k: k}
	s.heap.less = less
	s.heap.policy = policy
	if k > 0 {
		s.heap.entries = make([]Entry[S, T], 0, k)
	}
	return s, nil
}

// Offer admits the pair if it belongs in the current top k, evicting the
// weakest held entry when the store is full. The evicted entry is returned
// with ok == true. Rejecting a pair that cannot beat the held minimum costs
// one or two score comparisons and no heap work.
func (s *Store[S, T]) Offer(score S, item T) (evicted Entry[S, T], ok bool) {
	if s.k == 0 {
		return evicted, false
	}
	s.seq++
	e := Entry[S, T]{Score: score, Item: item, seq: s.seq}
	if len(s.heap.entries) < s.k {
		heap.Push(&s.heap, e)
		return evicted, false
	}
	if !s.admits(score) {
		return evicted, false
	}
	evicted = s.heap.entries[0]
	s.heap.entries[0] = e
	heap.Fix(&s.heap, 0)
	return evicted, true
}

// admits reports whether an offered score beats the held minimum under the
// store's policy: strictly greater for FirstSeenWins, not strictly less for
// LastSeenWins.
func (s *Store[S, T]) admits(score S) bool {
	min := s.heap.entries[0].Score
	if s.heap.policy == LastSeenWins {
		return !s.heap.less(score, min)
	}
	return s.heap.less(min, score)
}

// Len is the number of held entries.
func (s *Store[S, T]) Len() int { return len(s.heap.entries) }

// Cap is the store's capacity.
func (s *Store[S, T]) Cap() int { return s.k }

// Min returns the weakest held entry, the next eviction candidate.
func (s *Store[S, T]) Min() (Entry[S, T], bool) {
	if len(s.heap.entries) == 0 {
		var zero Entry[S, T]
		return zero, false
	}
	return s.heap.entries[0], true
}

// Sorted copies the held entries in descending score order. Equal scores
// keep an order consistent with the tie-break policy.
func (s *Store[S, T]) Sorted() []Entry[S, T] {
	out := entryHeap[S, T]{
		entries: append([]Entry[S, T](nil), s.heap.entries...),
		less:    s.heap.less,
		policy:  s.heap.policy,
	}
	sort.Sort(sort.Reverse(&out))
	return out.entries
}

// Drain walks the held entries, strongest first. Draining does not consume
// the store: a later Drain yields the same entries.
func (s *Store[S, T]) Drain() iter.Seq[Entry[S, T]] {
	sorted := s.Sorted()
	return func(yield func(Entry[S, T]) bool) {
		for _, e := range sorted {
			if !yield(e) {
				return
			}
		}
	}
}

// entryHeap is a min-heap whose root is the weakest entry: the lowest
// score, with the policy deciding which of two equal scores goes first.
type entryHeap[S, T any] struct {
	entries []Entry[S, T]
	less    func(a, b S) bool
	policy  Policy
}

func (h *entryHeap[S, T]) Len() int { return len(h.entries) }

func (h *entryHeap[S, T]) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if h.less(a.Score, b.Score) {
		return true
	}
	if h.less(b.Score, a.Score) {
		return false
	}
	if h.policy == LastSeenWins {
		return a.seq < b.seq
	}
	return a.seq > b.seq
}

func (h *entryHeap[S, T]) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

func (h *entryHeap[S, T]) Push(val any) {
	h.entries = append(h.entries, val.(Entry[S, T]))
}

func (h *entryHeap[S, T]) Pop() any {
	var val Entry[S, T]
	val, h.entries = h.entries[len(h.entries)-1], h.entries[:len(h.entries)-1]
	return val
}

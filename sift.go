// Package sift selects the k highest-scoring elements of a sequence in a
// single pass, with O(k) memory and no full sort. The input is consumed
// exactly once, each element is scored exactly once, and the result comes
// back in a deterministic order governed by a tie-break policy.
package sift

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/go-sift/sift/topk"
)

// Scored is one (score, item) pair of the result. Immutable once built.
type Scored[S, T any] struct {
	Score S
	Item  T
}

// Output names the preset shapes a result can be rendered in.
type Output int

const (
	// ScoreItems is the default: (score, item) pairs in ascending score
	// order, the weakest of the top k first.
	ScoreItems Output = iota
	// TopTuples is (score, item) pairs in descending score order.
	TopTuples
	// ItemsOnly is the items alone, descending by score.
	ItemsOnly
	// ScoresOnly is the scores alone, descending.
	ScoresOnly
)

func (o Output) String() string {
	switch o {
	case ScoreItems:
		return "top_score_items"
	case TopTuples:
		return "top_tuples"
	case ItemsOnly:
		return "items"
	case ScoresOnly:
		return "scores"
	}
	return fmt.Sprintf("output(%d)", int(o))
}

// ParseOutput maps a preset name to its Output value.
func ParseOutput(name string) (Output, error) {
	switch name {
	case "top_score_items":
		return ScoreItems, nil
	case "top_tuples":
		return TopTuples, nil
	case "items":
		return ItemsOnly, nil
	case "scores":
		return ScoresOnly, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOption, name)
}

// Options configures one selection pass. The zero value keeps nothing
// (K == 0), breaks ties first-seen-wins and renders as ScoreItems.
type Options struct {
	// K is the number of highest-scoring elements to keep. Must be
	// non-negative; zero yields an empty result.
	K int
	// TieBreak resolves equal scores at the k-boundary.
	TieBreak topk.Policy
	// Output is the preset shape the result was requested in.
	Output Output
}

// Select runs one pass over seq: each element is scored once, in order,
// and offered to a bounded store of capacity opt.K. Configuration is
// validated before the first element is consumed. A scoring error aborts
// the pass immediately and is returned unchanged, with no partial result.
//
// seq may be unbounded in principle and is consumed exactly once; it is
// never re-iterated.
func Select[T, S any](seq iter.Seq[T], scoreOf func(T) (S, error), less func(a, b S) bool, opt Options) (*Result[S, T], error) {
	store, err := newStore[S, T](less, opt)
	if err != nil {
		return nil, err
	}
	for item := range seq {
		score, err := scoreOf(item)
		if err != nil {
			return nil, err
		}
		store.Offer(score, item)
	}
	return newResult(store, opt.Output), nil
}

// SelectSeq2 is Select for fallible sources. The first non-nil error
// yielded by seq aborts the pass and is returned unchanged.
func SelectSeq2[T, S any](seq iter.Seq2[T, error], scoreOf func(T) (S, error), less func(a, b S) bool, opt Options) (*Result[S, T], error) {
	store, err := newStore[S, T](less, opt)
	if err != nil {
		return nil, err
	}
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		score, err := scoreOf(item)
		if err != nil {
			return nil, err
		}
		store.Offer(score, item)
	}
	return newResult(store, opt.Output), nil
}

// MaxFunc keeps the k elements of seq with the highest scoreOf values
// under the natural ordering of S, with default options.
func MaxFunc[T any, S cmp.Ordered](seq iter.Seq[T], scoreOf func(T) S, k int) (*Result[S, T], error) {
	return Select(seq, func(item T) (S, error) {
		return scoreOf(item), nil
	}, cmp.Less[S], Options{K: k})
}

// Max keeps the k largest elements of seq under their natural ordering.
// The item doubles as its own score, so every emitted pair is
// (item, item); this is the documented identity-scoring fallback, not a
// bug.
func Max[T cmp.Ordered](seq iter.Seq[T], k int) (*Result[T, T], error) {
	return MaxFunc(seq, func(item T) T { return item }, k)
}

// MinFunc keeps the k elements of seq with the lowest scoreOf values. Rank
// order inverts with the comparator: TopTuples yields the lowest score
// first, ScoreItems the highest of the bottom k first.
func MinFunc[T any, S cmp.Ordered](seq iter.Seq[T], scoreOf func(T) S, k int) (*Result[S, T], error) {
	return Select(seq, func(item T) (S, error) {
		return scoreOf(item), nil
	}, func(a, b S) bool { return cmp.Less(b, a) }, Options{K: k})
}

// Min keeps the k smallest elements of seq under their natural ordering,
// with the same (item, item) identity-scoring fallback as Max.
func Min[T cmp.Ordered](seq iter.Seq[T], k int) (*Result[T, T], error) {
	return MinFunc(seq, func(item T) T { return item }, k)
}

func newStore[S, T any](less func(a, b S) bool, opt Options) (*topk.Store[S, T], error) {
	if opt.Output < ScoreItems || opt.Output > ScoresOnly {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOption, opt.Output)
	}
	store, err := topk.New[S, T](opt.K, less, opt.TieBreak)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return store, nil
}

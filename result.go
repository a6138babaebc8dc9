package sift

import (
	"iter"

	"github.com/go-sift/sift/topk"
)

// Result holds the outcome of one pass: at most k scored pairs, kept
// internally in descending score order. Accessors copy; a Result can be
// read any number of times.
type Result[S, T any] struct {
	entries []Scored[S, T]
	output  Output
}

func newResult[S, T any](store *topk.Store[S, T], output Output) *Result[S, T] {
	sorted := store.Sorted()
	entries := make([]Scored[S, T], 0, len(sorted))
	for _, e := range sorted {
		entries = append(entries, Scored[S, T]{Score: e.Score, Item: e.Item})
	}
	return &Result[S, T]{entries: entries, output: output}
}

// Len is the number of selected pairs, min(k, elements seen).
func (r *Result[S, T]) Len() int { return len(r.entries) }

// Output reports the preset the pass was configured with.
func (r *Result[S, T]) Output() Output { return r.output }

// TopTuples returns the (score, item) pairs, descending by score.
func (r *Result[S, T]) TopTuples() []Scored[S, T] {
	return append([]Scored[S, T](nil), r.entries...)
}

// ScoreItems returns the (score, item) pairs in ascending score order,
// the weakest of the top k first. This is the library's default shape.
func (r *Result[S, T]) ScoreItems() []Scored[S, T] {
	out := make([]Scored[S, T], len(r.entries))
	for i, e := range r.entries {
		out[len(out)-1-i] = e
	}
	return out
}

// Items returns the items alone, descending by score.
func (r *Result[S, T]) Items() []T {
	out := make([]T, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Item
	}
	return out
}

// Scores returns the scores alone, descending.
func (r *Result[S, T]) Scores() []S {
	out := make([]S, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Score
	}
	return out
}

// All walks the pairs lazily, descending by score.
func (r *Result[S, T]) All() iter.Seq[Scored[S, T]] {
	return func(yield func(Scored[S, T]) bool) {
		for _, e := range r.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Map applies a caller-defined transform to the descending pair sequence.
// The transform must not re-score or re-sort by a different key; it only
// reshapes what the pass already selected.
func Map[S, T, R any](r *Result[S, T], fn func(iter.Seq[Scored[S, T]]) R) R {
	return fn(r.All())
}

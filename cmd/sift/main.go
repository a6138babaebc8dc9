// Package main provides sift, a line-oriented top-k filter: it reads items
// from stdin or files and prints the k highest-scoring ones.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"iter"
	"os"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/go-sift/sift"
	"github.com/go-sift/sift/topk"
)

func main() {
	var (
		k        = flag.IntP("top", "k", 1, "number of items to keep")
		scoreBy  = flag.String("score", "lexical", "scoring rule: lexical, numeric or length")
		field    = flag.Int("field", 0, "score the Nth whitespace-separated field (1-based; 0 scores the whole line)")
		output   = flag.String("output", "top_score_items", "output preset: top_score_items, top_tuples, items or scores")
		tieBreak = flag.String("tie-break", "first-seen-wins", "tie-break policy: first-seen-wins or last-seen-wins")
	)
	flag.Parse()

	if err := run(*k, *scoreBy, *field, *output, *tieBreak, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "sift:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps configuration mistakes to the usage exit code; read and
// scoring failures exit 1.
func exitCode(err error) int {
	if errors.Is(err, sift.ErrInvalidConfig) {
		return 2
	}
	return 1
}

func run(k int, scoreBy string, field int, output, tieBreak string, paths []string) error {
	// Validate everything before any input is read.
	out, err := sift.ParseOutput(output)
	if err != nil {
		return err
	}
	policy, err := topk.ParsePolicy(tieBreak)
	if err != nil {
		return fmt.Errorf("%w: %w", sift.ErrInvalidConfig, err)
	}
	opt := sift.Options{K: k, TieBreak: policy, Output: out}
	input := lines(paths)

	switch scoreBy {
	case "lexical":
		res, err := sift.SelectSeq2(input, func(line string) (string, error) {
			return fieldOf(line, field), nil
		}, func(a, b string) bool { return a < b }, opt)
		if err != nil {
			return err
		}
		return render(res)
	case "numeric":
		res, err := sift.SelectSeq2(input, func(line string) (float64, error) {
			return strconv.ParseFloat(fieldOf(line, field), 64)
		}, func(a, b float64) bool { return a < b }, opt)
		if err != nil {
			return err
		}
		return render(res)
	case "length":
		res, err := sift.SelectSeq2(input, func(line string) (int, error) {
			return len(fieldOf(line, field)), nil
		}, func(a, b int) bool { return a < b }, opt)
		if err != nil {
			return err
		}
		return render(res)
	}
	return fmt.Errorf("%w: unknown scoring rule %q", sift.ErrInvalidConfig, scoreBy)
}

// fieldOf extracts the 1-based nth whitespace field, or the whole line for
// n == 0 or a missing field.
func fieldOf(line string, n int) string {
	if n <= 0 {
		return line
	}
	fields := strings.Fields(line)
	if n > len(fields) {
		return line
	}
	return fields[n-1]
}

// lines yields every line of the given files in order, or of stdin when no
// paths are given. Read errors abort the walk.
func lines(paths []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if len(paths) == 0 {
			scanLines(os.Stdin, yield)
			return
		}
		for _, path := range paths {
			f, err := os.Open(path)
			if err != nil {
				yield("", err)
				return
			}
			done := scanLines(f, yield)
			f.Close()
			if done {
				return
			}
		}
	}
}

func scanLines(f *os.File, yield func(string, error) bool) (done bool) {
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if !yield(sc.Text(), nil) {
			return true
		}
	}
	if err := sc.Err(); err != nil {
		yield("", err)
		return true
	}
	return false
}

func render[S, T any](res *sift.Result[S, T]) error {
	w := bufio.NewWriter(os.Stdout)

	switch res.Output() {
	case sift.TopTuples:
		for _, p := range res.TopTuples() {
			fmt.Fprintf(w, "%v\t%v\n", p.Score, p.Item)
		}
	case sift.ItemsOnly:
		for _, item := range res.Items() {
			fmt.Fprintf(w, "%v\n", item)
		}
	case sift.ScoresOnly:
		for _, score := range res.Scores() {
			fmt.Fprintf(w, "%v\n", score)
		}
	default:
		for _, p := range res.ScoreItems() {
			fmt.Fprintf(w, "%v\t%v\n", p.Score, p.Item)
		}
	}
	return w.Flush()
}

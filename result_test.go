package sift

import (
	"iter"
	"slices"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var names = []string{"Christian", "Seb", "Thor", "Sylvain"}

func byLength(s string) int { return len(s) }

func TestPresetShapes(t *testing.T) {
	res, err := MaxFunc(slices.Values(names), byLength, 2)
	assert.NoError(t, err)

	assert.Equal(t, []Scored[int, string]{{9, "Christian"}, {7, "Sylvain"}}, res.TopTuples())
	assert.Equal(t, []Scored[int, string]{{7, "Sylvain"}, {9, "Christian"}}, res.ScoreItems())
	assert.Equal(t, []string{"Christian", "Sylvain"}, res.Items())
	assert.Equal(t, []int{9, 7}, res.Scores())
}

func TestOrderProperties(t *testing.T) {
	res, err := MaxFunc(slices.Values(names), byLength, 4)
	assert.NoError(t, err)

	tuples := res.TopTuples()
	for i := 1; i < len(tuples); i++ {
		assert.GreaterOrEqual(t, tuples[i-1].Score, tuples[i].Score)
	}
	asc := res.ScoreItems()
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Score, asc[i].Score)
	}
	scores := res.Scores()
	for i, p := range tuples {
		assert.Equal(t, p.Score, scores[i])
	}
}

func TestAllIsLazyDescending(t *testing.T) {
	res, err := Max(slices.Values([]int{3, 1, 4, 1, 5}), 3)
	assert.NoError(t, err)

	var got []int
	for p := range res.All() {
		got = append(got, p.Item)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{5, 4}, got)
}

func TestMapExtractsIndices(t *testing.T) {
	type indexed struct {
		Pos  int
		Word string
	}
	data := []indexed{{0, "pear"}, {1, "fig"}, {2, "pineapple"}, {3, "plum"}}

	res, err := MaxFunc(slices.Values(data), func(x indexed) int { return len(x.Word) }, 2)
	assert.NoError(t, err)

	positions := Map(res, func(seq iter.Seq[Scored[int, indexed]]) []int {
		var out []int
		for p := range seq {
			out = append(out, p.Item.Pos)
		}
		return out
	})
	assert.Equal(t, []int{2, 0}, positions)
}

func TestParseOutput(t *testing.T) {
	for name, want := range map[string]Output{
		"top_score_items": ScoreItems,
		"top_tuples":      TopTuples,
		"items":           ItemsOnly,
		"scores":          ScoresOnly,
	} {
		got, err := ParseOutput(name)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := ParseOutput("bottom_tuples")
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestOutputRecorded(t *testing.T) {
	res, err := Select(slices.Values([]int{1}), func(x int) (int, error) {
		return x, nil
	}, func(a, b int) bool { return a < b }, Options{K: 1, Output: TopTuples})
	assert.NoError(t, err)
	assert.Equal(t, TopTuples, res.Output())
}

func TestAgainstSortThenSlice(t *testing.T) {
	ids := make([]string, 200)
	for i := range ids {
		ids[i] = uuid.New().String()
	}

	for _, k := range []int{0, 1, 7, 50, 200, 500} {
		res, err := Max(slices.Values(ids), k)
		assert.NoError(t, err)

		want := append([]string(nil), ids...)
		sort.Sort(sort.Reverse(sort.StringSlice(want)))
		if k < len(want) {
			want = want[:k]
		}
		if diff := cmp.Diff(want, res.Items()); diff != "" {
			t.Errorf("k=%d mismatch (-want +got):\n%s", k, diff)
		}
	}
}

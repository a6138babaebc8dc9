package topk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func identity(s string) string { return s }

func TestUniqueDedup(t *testing.T) {
	u, err := NewUnique[int, string](3, intLess, FirstSeenWins, identity)
	assert.NoError(t, err)

	u.Offer(1, "a")
	_, ok := u.Offer(2, "a") // repeat key, higher score: still a no-op
	assert.False(t, ok)
	u.Offer(3, "b")

	assert.Equal(t, 2, u.Len())
	sorted := u.Sorted()
	assert.Equal(t, "b", sorted[0].Item)
	assert.Equal(t, 1, sorted[1].Score)
}

func TestUniqueEvictedKeyStaysSeen(t *testing.T) {
	u, _ := NewUnique[int, string](1, intLess, FirstSeenWins, identity)
	u.Offer(1, "a")

	e, ok := u.Offer(5, "b")
	assert.True(t, ok)
	assert.Equal(t, "a", e.Item)

	// "a" was evicted but its key is still remembered.
	_, ok = u.Offer(9, "a")
	assert.False(t, ok)
	min, _ := u.Min()
	assert.Equal(t, "b", min.Item)
}

func TestUniqueCustomKey(t *testing.T) {
	type doc struct {
		id   string
		text string
	}
	u, _ := NewUnique[int, doc](5, intLess, FirstSeenWins, func(d doc) string { return d.id })

	u.Offer(10, doc{id: "x", text: "first"})
	u.Offer(20, doc{id: "x", text: "second"})
	u.Offer(30, doc{id: "y", text: "third"})

	assert.Equal(t, 2, u.Len())
	sorted := u.Sorted()
	assert.Equal(t, "first", sorted[1].Item.text)
}

func TestUniqueInvalidCapacity(t *testing.T) {
	_, err := NewUnique[int, string](-2, intLess, FirstSeenWins, identity)
	assert.ErrorIs(t, err, ErrNegativeK)
}

package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceCache_GetPut(t *testing.T) {
	c := newDistanceCache(10)

	_, ok := c.get("1|2")
	assert.False(t, ok)

	c.put("1|2", 3983.5)
	d, ok := c.get("1|2")
	assert.True(t, ok)
	assert.Equal(t, 3983.5, d)
}

func TestDistanceCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newDistanceCache(3)
	c.put("a", 1)
	c.put("b", 2)
	c.put("c", 3)

	// Touch "a" so "b" becomes the oldest.
	_, ok := c.get("a")
	assert.True(t, ok)

	c.put("d", 4)
	assert.Equal(t, 3, c.len())

	_, ok = c.get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("d")
	assert.True(t, ok)
}

func TestDistanceCache_UpdateExisting(t *testing.T) {
	c := newDistanceCache(2)
	c.put("a", 1)
	c.put("a", 9)

	d, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, 9.0, d)
	assert.Equal(t, 1, c.len())
}

func TestDistanceCache_DisabledWhenSizeBelowOne(t *testing.T) {
	c := newDistanceCache(0)
	c.put("a", 1)

	_, ok := c.get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.len())
}

func TestPairKey_Canonical(t *testing.T) {
	assert.Equal(t, pairKey("3797", "3484"), pairKey("3484", "3797"))
	assert.Equal(t, "3484|3797", pairKey("3797", "3484"))

	for i := 0; i < 5; i++ {
		a, b := fmt.Sprint(i), fmt.Sprint(i+1)
		assert.Equal(t, pairKey(a, b), pairKey(b, a))
	}
}

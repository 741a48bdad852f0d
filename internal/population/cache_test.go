package population

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Memoizes(t *testing.T) {
	t.Parallel()

	c := NewCache(4)
	first := c.Get(100, DefaultSeed)
	second := c.Get(100, DefaultSeed)

	assert.Equal(t, first, second)
	assert.Equal(t, Generate(100, DefaultSeed), first)
	assert.Equal(t, 1, c.Len())
}

func TestCache_ReturnsCopies(t *testing.T) {
	t.Parallel()

	c := NewCache(4)
	first := c.Get(10, 5)
	require.NotEmpty(t, first)
	first[0].Name = "tampered"

	again := c.Get(10, 5)
	assert.NotEqual(t, "tampered", again[0].Name)
}

func TestCache_Evicts(t *testing.T) {
	t.Parallel()

	c := NewCache(2)
	c.Get(10, 1)
	c.Get(10, 2)
	c.Get(10, 3)
	assert.Equal(t, 2, c.Len())
}

func TestCache_InvalidSize(t *testing.T) {
	t.Parallel()

	c := NewCache(0)
	assert.Len(t, c.Get(5, 1), 5)
	assert.Equal(t, 1, c.Len())
}

func TestCache_Options(t *testing.T) {
	t.Parallel()

	c := NewCache(1, WithCurrency("en-US", "$"))
	assert.Equal(t, Generate(30, 9, WithCurrency("en-US", "$")), c.Get(30, 9))
}

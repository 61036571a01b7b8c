package geocoding

import (
	"fmt"
	"testing"

	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey_RoundsToFourDecimals(t *testing.T) {
	assert.Equal(t, "55.7558,37.6173", cacheKey(55.755831, 37.617299))
	assert.Equal(t, cacheKey(55.75581, 37.61731), cacheKey(55.75584, 37.61729))
	assert.NotEqual(t, cacheKey(55.7558, 37.6173), cacheKey(55.7559, 37.6173))
}

func TestCache_GetSet(t *testing.T) {
	c := NewCache(10, 2)

	_, ok := c.Get("1.0000,1.0000")
	assert.False(t, ok)

	c.Set("1.0000,1.0000", models.Address{City: "Delhi"})
	got, ok := c.Get("1.0000,1.0000")
	require.True(t, ok)
	assert.Equal(t, "Delhi", got.City)

	// изменение возвращенной копии не портит кэш
	got.City = "Jaipur"
	again, _ := c.Get("1.0000,1.0000")
	assert.Equal(t, "Delhi", again.City)
}

func TestCache_FIFOEviction(t *testing.T) {
	c := NewCache(1000, 100)
	keys := make([]string, 0, 1001)

	for i := 0; i < 1001; i++ {
		key := fmt.Sprintf("%d.0000,0.0000", i)
		keys = append(keys, key)
		c.Set(key, models.Address{City: key})
	}

	assert.Equal(t, 901, c.Len())
	for _, key := range keys[:100] {
		_, ok := c.Get(key)
		assert.False(t, ok, "key %s should have been evicted", key)
	}
	for _, key := range keys[100:] {
		_, ok := c.Get(key)
		assert.True(t, ok, "key %s should be present", key)
	}
}

func TestCache_EvictionIgnoresAccessOrder(t *testing.T) {
	c := NewCache(3, 1)
	c.Set("a", models.Address{})
	c.Set("b", models.Address{})
	c.Set("c", models.Address{})

	// чтение не продлевает жизнь записи
	_, _ = c.Get("a")
	c.Set("d", models.Address{})

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 3, c.Len())
}

func TestCache_UpdateExistingKeepsSize(t *testing.T) {
	c := NewCache(2, 1)
	c.Set("a", models.Address{City: "one"})
	c.Set("a", models.Address{City: "two"})
	c.Set("b", models.Address{})

	assert.Equal(t, 2, c.Len())
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "two", got.City)
}

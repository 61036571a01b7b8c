package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	assert.Equal(t, 0.0, HaversineKm(28.6, 77.2, 28.6, 77.2))
	assert.InDelta(t, 111.19, HaversineKm(0, 0, 1, 0), 0.01)
	// Дели - Джайпур, около 236 км
	assert.InDelta(t, 236, HaversineKm(28.6139, 77.2090, 26.9124, 75.7873), 2)
	assert.InDelta(t, HaversineKm(10, 20, 30, 40), HaversineKm(30, 40, 10, 20), 1e-9)
}

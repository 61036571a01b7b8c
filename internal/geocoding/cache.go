package geocoding

import (
	"fmt"
	"sync"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shenikar/travel_tracking_system/internal/models"
)

// Cache хранит адреса по округленным координатам. При переполнении
// удаляются самые старые по времени вставки записи (FIFO, не LRU).
type Cache struct {
	mu      sync.Mutex
	items   *gocache.Cache
	order   []string
	maxSize int
	evict   int
}

func NewCache(maxSize, evict int) *Cache {
	if maxSize <= 0 {
		maxSize = 1000
	}
	if evict <= 0 {
		evict = 100
	}
	return &Cache{
		items:   gocache.New(gocache.NoExpiration, 0),
		order:   make([]string, 0, maxSize+1),
		maxSize: maxSize,
		evict:   evict,
	}
}

// cacheKey округляет координаты до 4 знаков (~11 м)
func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}

func (c *Cache) Get(key string) (*models.Address, bool) {
	v, found := c.items.Get(key)
	if !found {
		return nil, false
	}
	addr := v.(models.Address)
	return &addr, true
}

func (c *Cache) Set(key string, addr models.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items.Get(key); exists {
		c.items.Set(key, addr, gocache.NoExpiration)
		return
	}

	c.items.Set(key, addr, gocache.NoExpiration)
	c.order = append(c.order, key)

	if len(c.order) > c.maxSize {
		n := min(c.evict, len(c.order))
		for _, old := range c.order[:n] {
			c.items.Delete(old)
		}
		c.order = append(make([]string, 0, c.maxSize+1), c.order[n:]...)
	}
	cacheSize.Set(float64(len(c.order)))
}

func (c *Cache) Len() int {
	return c.items.ItemCount()
}

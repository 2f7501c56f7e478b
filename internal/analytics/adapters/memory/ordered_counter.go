package memory

import "gallery-analytics-service/internal/analytics/core/domain"

// orderedCounter is a string counter that remembers first-seen order.
// Not safe for concurrent use; owners guard it with their own lock.
type orderedCounter struct {
	index   map[string]int
	entries []domain.Count
}

func newOrderedCounter() orderedCounter {
	return orderedCounter{index: make(map[string]int)}
}

func (c *orderedCounter) inc(key string) {
	if i, ok := c.index[key]; ok {
		c.entries[i].Count++
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, domain.Count{Key: key, Count: 1})
}

func (c *orderedCounter) get(key string) int64 {
	if i, ok := c.index[key]; ok {
		return c.entries[i].Count
	}
	return 0
}

func (c *orderedCounter) sum() int64 {
	var total int64
	for _, e := range c.entries {
		total += e.Count
	}
	return total
}

func (c *orderedCounter) list() []domain.Count {
	out := make([]domain.Count, len(c.entries))
	copy(out, c.entries)
	return out
}

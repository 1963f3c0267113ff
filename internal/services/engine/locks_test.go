package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_ReleasesEntries(t *testing.T) {
	locks := newKeyedMutex()

	var wg sync.WaitGroup
	// the map is only read concurrently; each count is guarded by its key's lock
	counter := map[string]*int{"a": new(int), "b": new(int)}
	for i := range 50 {
		key := []string{"a", "b"}[i%2]
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock(key)
			defer unlock()
			*counter[key]++
		}()
	}
	wg.Wait()

	assert.Equal(t, 25, *counter["a"])
	assert.Equal(t, 25, *counter["b"])
	assert.Equal(t, 0, locks.size())
}

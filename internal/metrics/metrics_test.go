package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	var c Counter
	c.Inc()
	c.Add(4)
	assert.Equal(t, uint64(5), c.Load())
}

func TestCounterConcurrent(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Inc()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(5000), c.Load())
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(10 * time.Millisecond)
	d := timer.Duration()
	assert.GreaterOrEqual(t, d, 10*time.Millisecond)
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.OrdersCreated.Inc()
	r.OffersAccepted.Add(2)
	r.Purchases.Inc()

	snap := r.Snapshot()
	assert.Equal(t, uint64(1), snap["orders_created"])
	assert.Equal(t, uint64(2), snap["offers_accepted"])
	assert.Equal(t, uint64(1), snap["purchases"])
	assert.Equal(t, uint64(0), snap["reconciliations"])
}

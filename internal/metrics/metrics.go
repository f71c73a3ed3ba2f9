package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Registry holds one counter per ledger operation. Handlers increment on
// successful commits only, so the numbers track ledger mutations, not traffic.
type Registry struct {
	OrdersCreated   Counter
	OrdersCancelled Counter
	OffersCreated   Counter
	OffersCancelled Counter
	OffersAccepted  Counter
	ProductsCreated Counter
	ProductsRemoved Counter
	Purchases       Counter
	Reconciliations Counter
	ReadingsWritten Counter
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Snapshot returns the current counter values keyed by operation name.
func (r *Registry) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"orders_created":   r.OrdersCreated.Load(),
		"orders_cancelled": r.OrdersCancelled.Load(),
		"offers_created":   r.OffersCreated.Load(),
		"offers_cancelled": r.OffersCancelled.Load(),
		"offers_accepted":  r.OffersAccepted.Load(),
		"products_created": r.ProductsCreated.Load(),
		"products_removed": r.ProductsRemoved.Load(),
		"purchases":        r.Purchases.Load(),
		"reconciliations":  r.Reconciliations.Load(),
		"readings_written": r.ReadingsWritten.Load(),
	}
}

package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	CatalogCacheHits       uint64
	CatalogCacheMisses     uint64
	CatalogLoadCount       uint64
	CatalogLoadTotalNs     int64
	ProductsCreated        uint64
	ProductsUpdated        uint64
	ProductsDeleted        uint64
	ClicksRecorded         uint64
	ClicksDropped          uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	catalogCacheHits   uint64
	catalogCacheMisses uint64
	catalogLoadCount   uint64
	catalogLoadTotalNs int64
	productsCreated    uint64
	productsUpdated    uint64
	productsDeleted    uint64
	clicksRecorded     uint64
	clicksDropped      uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		CatalogCacheHits:   atomic.LoadUint64(&m.catalogCacheHits),
		CatalogCacheMisses: atomic.LoadUint64(&m.catalogCacheMisses),
		CatalogLoadCount:   atomic.LoadUint64(&m.catalogLoadCount),
		CatalogLoadTotalNs: atomic.LoadInt64(&m.catalogLoadTotalNs),
		ProductsCreated:    atomic.LoadUint64(&m.productsCreated),
		ProductsUpdated:    atomic.LoadUint64(&m.productsUpdated),
		ProductsDeleted:    atomic.LoadUint64(&m.productsDeleted),
		ClicksRecorded:     atomic.LoadUint64(&m.clicksRecorded),
		ClicksDropped:      atomic.LoadUint64(&m.clicksDropped),
	}
}

// IncCatalogCacheHit increments the cache hit counter.
func (m *InMemoryRecorder) IncCatalogCacheHit() {
	atomic.AddUint64(&m.catalogCacheHits, 1)
}

// IncCatalogCacheMiss increments the cache miss counter.
func (m *InMemoryRecorder) IncCatalogCacheMiss() {
	atomic.AddUint64(&m.catalogCacheMisses, 1)
}

// ObserveCatalogLoadDuration records one catalog load.
func (m *InMemoryRecorder) ObserveCatalogLoadDuration(duration time.Duration) {
	atomic.AddUint64(&m.catalogLoadCount, 1)
	atomic.AddInt64(&m.catalogLoadTotalNs, duration.Nanoseconds())
}

// IncProductCreated increments the created counter.
func (m *InMemoryRecorder) IncProductCreated() {
	atomic.AddUint64(&m.productsCreated, 1)
}

// IncProductUpdated increments the updated counter.
func (m *InMemoryRecorder) IncProductUpdated() {
	atomic.AddUint64(&m.productsUpdated, 1)
}

// IncProductDeleted increments the deleted counter.
func (m *InMemoryRecorder) IncProductDeleted() {
	atomic.AddUint64(&m.productsDeleted, 1)
}

// IncClickRecorded increments the recorded or dropped click counter.
func (m *InMemoryRecorder) IncClickRecorded(status string) {
	if status == "success" {
		atomic.AddUint64(&m.clicksRecorded, 1)
		return
	}
	atomic.AddUint64(&m.clicksDropped, 1)
}

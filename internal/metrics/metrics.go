// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Catalog metrics
	IncCatalogCacheHit()
	IncCatalogCacheMiss()
	ObserveCatalogLoadDuration(duration time.Duration)

	// Product management metrics
	IncProductCreated()
	IncProductUpdated()
	IncProductDeleted()

	// Click pipeline metrics
	IncClickRecorded(status string) // status: "success" or "dropped"
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}

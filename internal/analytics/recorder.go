package analytics

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/bornBrian/ViralCart/internal/metrics"
)

// RecordTimeout bounds how long a fire-and-forget click write may hold
// a connection. The surrounding redirect never waits on it.
const RecordTimeout = 2 * time.Second

// Appender provides append access to the click store.
type Appender interface {
	AppendClick(ctx context.Context, productID, country string) error
}

// Recorder writes click events on a best-effort basis. Failures are
// logged and discarded, never retried and never surfaced to the caller:
// click tracking must not degrade the purchase path.
type Recorder struct {
	store   Appender
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewRecorder creates a click Recorder.
func NewRecorder(store Appender, logger *slog.Logger, recorder metrics.Recorder) *Recorder {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Recorder{
		store:   store,
		logger:  logger.With("component", "analytics.recorder"),
		metrics: recorder,
	}
}

// Record appends one click event without blocking the caller. It
// returns immediately; the write happens on its own goroutine with its
// own deadline so page navigation can proceed concurrently.
func (r *Recorder) Record(productID, country string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), RecordTimeout)
		defer cancel()

		if err := r.store.AppendClick(ctx, productID, country); err != nil {
			r.logger.Warn("failed to record click",
				"product_id", productID,
				"error", err,
			)
			r.metrics.IncClickRecorded("dropped")
			return
		}

		r.metrics.IncClickRecorded("success")
	}()
}

// ExtractCountryCode normalizes a proxy-supplied geolocation header
// value. Returns empty string unless it is a two-letter country code.
func ExtractCountryCode(header string) string {
	if len(header) == 2 {
		return strings.ToUpper(header)
	}
	return ""
}

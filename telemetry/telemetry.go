// Package telemetry provides hierarchical timing collection for the
// report pipeline. Collectors travel through the context, so the
// pipeline stages stay uninstrumented unless the --telemetry flag
// installed a collector for the run.
//
// Example usage:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.StartTimer(ctx, "assemble")
//	// ... work ...
//	timer.End()
//
//	collector.Report(os.Stderr)
package telemetry

import (
	"context"
	"io"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{}

var collectorKey = contextKey{}

// Collector gathers operation timings for one run.
type Collector interface {
	// Start begins timing an operation. End the returned Timer when
	// the operation completes.
	Start(name string) Timer

	// Report writes the collected timings to w.
	Report(w io.Writer)
}

// Timer tracks a single operation. Timers nest: starting a new timer
// while another is open records it as a child.
type Timer interface {
	End()
}

// WithCollector attaches a collector to the context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext returns the collector attached to the context, or a
// no-op collector when none is present.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

// StartTimer starts a timer on the context's collector. When no
// collector is installed the returned timer costs nothing.
func StartTimer(ctx context.Context, name string) Timer {
	return FromContext(ctx).Start(name)
}

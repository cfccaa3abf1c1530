package svcadapters

import (
	"context"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/hyp3rd/svcadapters/internal/constants"
)

// ContextExtractor pulls log fields out of a context.
type ContextExtractor func(ctx context.Context) []Field

// extractorSet is replaced wholesale on every change, so readers never lock.
type extractorSet struct {
	mu      sync.Mutex
	current atomic.Pointer[[]ContextExtractor]
}

//nolint:gochecknoglobals // the middleware packages share one set of extractors.
var globalExtractors extractorSet

// RegisterContextExtractor adds an extractor run by the middleware for every
// request. Nil extractors are ignored.
func RegisterContextExtractor(extractor ContextExtractor) {
	if extractor == nil {
		return
	}

	globalExtractors.mu.Lock()
	defer globalExtractors.mu.Unlock()

	next := append(GlobalContextExtractors(), extractor)
	globalExtractors.current.Store(&next)
}

// ClearContextExtractors removes all registered extractors.
func ClearContextExtractors() {
	globalExtractors.mu.Lock()
	defer globalExtractors.mu.Unlock()

	globalExtractors.current.Store(nil)
}

// GlobalContextExtractors returns a copy of the registered extractors.
func GlobalContextExtractors() []ContextExtractor {
	if current := globalExtractors.current.Load(); current != nil {
		return slices.Clone(*current)
	}

	return nil
}

// ApplyContextExtractors runs the extractors against ctx and concatenates
// their fields. A nil context yields no fields.
func ApplyContextExtractors(ctx context.Context, extractors ...ContextExtractor) []Field {
	if ctx == nil {
		return nil
	}

	var fields []Field

	for _, extractor := range extractors {
		if extractor != nil {
			fields = append(fields, extractor(ctx)...)
		}
	}

	return fields
}

// IDExtractor returns the trace and request identifiers stored in ctx by the
// middleware, sorted by field name.
func IDExtractor(ctx context.Context) []Field {
	keys := constants.ContextKeyMap()

	var fields []Field

	for _, name := range slices.Sorted(maps.Keys(keys)) {
		if value, ok := ctx.Value(keys[name]).(string); ok && value != "" {
			fields = append(fields, Str(name, value))
		}
	}

	return fields
}

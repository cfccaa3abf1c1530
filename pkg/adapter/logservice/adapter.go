// Package logservice provides a LogService adapter that can be used before
// the real log service is available.
//
// Records logged while no delegate is set are saved in call order. When a
// delegate is set with SetLogService, the saved records are replayed to it
// first, and every later call is passed straight through without buffering.
//
//	logs := logservice.New()
//	logs.Log(svcadapters.DebugLevel, "a")                 // saved
//	logs.LogError(svcadapters.InfoLevel, "b", err)        // saved
//	logs.SetLogService(real)                              // real receives "a" then "b"
//	logs.Log(svcadapters.InfoLevel, "c")                  // goes directly to real
//
// Whether a call is buffered is decided on every call by looking at the
// current delegate: setting the delegate back to nil starts buffering again.
package logservice

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/hyp3rd/svcadapters"
	"github.com/hyp3rd/svcadapters/internal/utils"
)

// Stats is a snapshot of the adapter's activity.
type Stats struct {
	// Pending is the number of records waiting for a delegate.
	Pending int
	// Forwarded counts records passed straight to a delegate.
	Forwarded uint64
	// Replayed counts buffered records sent to a delegate on attach.
	Replayed uint64
	// Attached reports whether a delegate is currently set.
	Attached bool
}

// Adapter implements svcadapters.LogService by buffering or forwarding.
//
// Forwarding happens under a read lock, buffering and replay under the write
// lock. A delegate must not log back into the adapter that is replaying to it.
type Adapter struct {
	mu       sync.RWMutex
	delegate svcadapters.LogService
	pending  []svcadapters.Record

	forwarded atomic.Uint64
	replayed  atomic.Uint64
}

// Ensure Adapter implements the LogService interface.
var _ svcadapters.LogService = (*Adapter)(nil)

// New creates an adapter with no delegate.
func New() *Adapter {
	return &Adapter{}
}

// Log passes the message to the delegate, or saves it if none is set.
func (a *Adapter) Log(level svcadapters.Level, msg string) {
	a.record(svcadapters.NewRecord(level, msg))
}

// LogError passes the message and failure to the delegate, or saves them if none is set.
func (a *Adapter) LogError(level svcadapters.Level, msg string, err error) {
	a.record(svcadapters.NewErrorRecord(level, msg, err))
}

// LogRef passes the service-related message to the delegate, or saves it if none is set.
func (a *Adapter) LogRef(ref svcadapters.ServiceReference, level svcadapters.Level, msg string) {
	a.record(svcadapters.NewRefRecord(ref, level, msg))
}

// LogRefError passes the service-related message and failure to the delegate,
// or saves them if none is set.
func (a *Adapter) LogRefError(ref svcadapters.ServiceReference, level svcadapters.Level, msg string, err error) {
	a.record(svcadapters.NewRefErrorRecord(ref, level, msg, err))
}

// SetLogService sets the delegate that receives all records logged on the adapter.
//
// A non-nil delegate first receives every saved record in call order, after
// which the buffer is empty. A nil delegate, including a typed nil pointer,
// leaves saved records untouched.
func (a *Adapter) SetLogService(svc svcadapters.LogService) {
	if utils.IsNil(svc) {
		svc = nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.delegate = svc
	if svc == nil {
		return
	}

	for _, rec := range a.pending {
		rec.SendTo(svc)
	}

	a.replayed.Add(uint64(len(a.pending)))

	clear(a.pending)
	a.pending = a.pending[:0]
}

// Pending returns a copy of the records waiting for a delegate.
func (a *Adapter) Pending() []svcadapters.Record {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return slices.Clone(a.pending)
}

// Stats returns a snapshot of the adapter's activity.
func (a *Adapter) Stats() Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return Stats{
		Pending:   len(a.pending),
		Forwarded: a.forwarded.Load(),
		Replayed:  a.replayed.Load(),
		Attached:  a.delegate != nil,
	}
}

func (a *Adapter) record(rec svcadapters.Record) {
	a.mu.RLock()

	if delegate := a.delegate; delegate != nil {
		a.forward(delegate, rec)
		a.mu.RUnlock()

		return
	}

	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// The delegate may have been set between the two locks.
	if a.delegate != nil {
		a.forward(a.delegate, rec)

		return
	}

	a.pending = append(a.pending, rec)
}

func (a *Adapter) forward(delegate svcadapters.LogService, rec svcadapters.Record) {
	rec.SendTo(delegate)
	a.forwarded.Add(1)
}

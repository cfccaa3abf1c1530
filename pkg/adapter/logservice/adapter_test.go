package logservice

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyp3rd/svcadapters"
	"github.com/hyp3rd/svcadapters/pkg/mocks"
)

// recorder captures every call as a Record so tests can compare variants.
type recorder struct {
	mu      sync.Mutex
	records []svcadapters.Record
}

func (r *recorder) add(rec svcadapters.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)
}

func (r *recorder) Log(level svcadapters.Level, msg string) {
	r.add(svcadapters.NewRecord(level, msg))
}

func (r *recorder) LogError(level svcadapters.Level, msg string, err error) {
	r.add(svcadapters.NewErrorRecord(level, msg, err))
}

func (r *recorder) LogRef(ref svcadapters.ServiceReference, level svcadapters.Level, msg string) {
	r.add(svcadapters.NewRefRecord(ref, level, msg))
}

func (r *recorder) LogRefError(ref svcadapters.ServiceReference, level svcadapters.Level, msg string, err error) {
	r.add(svcadapters.NewRefErrorRecord(ref, level, msg, err))
}

func (r *recorder) snapshot() []svcadapters.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]svcadapters.Record(nil), r.records...)
}

func quietMock() *mocks.MockLogService {
	svc := mocks.NewMockLogService()
	svc.SetOutput(nil)

	return svc
}

func TestAdapter_BuffersUntilAttached(t *testing.T) {
	adapter := New()
	boom := errors.New("boom")

	adapter.Log(svcadapters.DebugLevel, "a")
	adapter.LogError(svcadapters.InfoLevel, "b", boom)

	require.Len(t, adapter.Pending(), 2)

	delegate := &recorder{}
	adapter.SetLogService(delegate)

	assert.Equal(t, []svcadapters.Record{
		svcadapters.NewRecord(svcadapters.DebugLevel, "a"),
		svcadapters.NewErrorRecord(svcadapters.InfoLevel, "b", boom),
	}, delegate.snapshot())
	assert.Empty(t, adapter.Pending())

	adapter.Log(svcadapters.InfoLevel, "c")

	records := delegate.snapshot()
	require.Len(t, records, 3)
	assert.Equal(t, "c", records[2].Message())
	assert.Empty(t, adapter.Pending())
}

func TestAdapter_ReplaysEveryVariantInOrder(t *testing.T) {
	adapter := New()
	ref := svcadapters.NamedReference("component")
	boom := errors.New("boom")

	adapter.Log(svcadapters.InfoLevel, "info message")
	adapter.LogError(svcadapters.ErrorLevel, "error message", boom)
	adapter.LogRef(ref, svcadapters.WarningLevel, "warning message")
	adapter.LogRefError(ref, svcadapters.DebugLevel, "debug message", boom)

	logs := quietMock()
	adapter.SetLogService(logs)

	assert.Equal(t, []string{
		"[INFO] info message",
		"[ERROR] error message boom",
		"[WARNING] component warning message",
		"[DEBUG] component debug message boom",
	}, logs.Messages())
}

func TestAdapter_ReplayKeepsCallVariant(t *testing.T) {
	adapter := New()
	adapter.LogError(svcadapters.ErrorLevel, "nil failure", nil)

	delegate := &recorder{}
	adapter.SetLogService(delegate)

	records := delegate.snapshot()
	require.Len(t, records, 1)
	assert.Equal(t, svcadapters.ErrorRecord, records[0].Kind())
	assert.NoError(t, records[0].Err())
}

func TestAdapter_NilAttachKeepsBuffer(t *testing.T) {
	adapter := New()
	adapter.Log(svcadapters.InfoLevel, "saved")

	adapter.SetLogService(nil)

	require.Len(t, adapter.Pending(), 1)
	assert.False(t, adapter.Stats().Attached)

	delegate := &recorder{}
	adapter.SetLogService(delegate)

	require.Len(t, delegate.snapshot(), 1)
	assert.Equal(t, "saved", delegate.snapshot()[0].Message())
}

func TestAdapter_TypedNilAttachKeepsBuffer(t *testing.T) {
	adapter := New()
	adapter.Log(svcadapters.InfoLevel, "saved")

	var missing *mocks.MockLogService
	require.NotPanics(t, func() { adapter.SetLogService(missing) })

	require.Len(t, adapter.Pending(), 1)
	assert.False(t, adapter.Stats().Attached)

	adapter.Log(svcadapters.InfoLevel, "also saved")
	assert.Len(t, adapter.Pending(), 2)
}

func TestAdapter_NoReplayAfterDrain(t *testing.T) {
	adapter := New()
	adapter.Log(svcadapters.InfoLevel, "once")

	first := &recorder{}
	adapter.SetLogService(first)

	second := &recorder{}
	adapter.SetLogService(second)

	assert.Len(t, first.snapshot(), 1)
	assert.Empty(t, second.snapshot())
	assert.Empty(t, adapter.Pending())

	adapter.Log(svcadapters.InfoLevel, "after swap")
	assert.Len(t, first.snapshot(), 1)
	require.Len(t, second.snapshot(), 1)
	assert.Equal(t, "after swap", second.snapshot()[0].Message())
}

func TestAdapter_ResumesBufferingAfterNilDelegate(t *testing.T) {
	adapter := New()

	first := &recorder{}
	adapter.SetLogService(first)
	adapter.Log(svcadapters.InfoLevel, "direct")

	adapter.SetLogService(nil)
	adapter.Log(svcadapters.InfoLevel, "buffered again")

	assert.Len(t, first.snapshot(), 1)
	require.Len(t, adapter.Pending(), 1)

	second := &recorder{}
	adapter.SetLogService(second)

	require.Len(t, second.snapshot(), 1)
	assert.Equal(t, "buffered again", second.snapshot()[0].Message())
}

func TestAdapter_ExactlyOnceInOrder(t *testing.T) {
	for _, count := range []int{0, 1, 7, 100} {
		t.Run(fmt.Sprintf("%d records", count), func(t *testing.T) {
			adapter := New()

			want := make([]svcadapters.Record, 0, count)
			for i := range count {
				msg := fmt.Sprintf("message %d", i)
				adapter.Log(svcadapters.InfoLevel, msg)
				want = append(want, svcadapters.NewRecord(svcadapters.InfoLevel, msg))
			}

			delegate := &recorder{}
			adapter.SetLogService(delegate)
			adapter.SetLogService(delegate)

			assert.Equal(t, want, append([]svcadapters.Record{}, delegate.snapshot()...))
		})
	}
}

func TestAdapter_Stats(t *testing.T) {
	adapter := New()

	adapter.Log(svcadapters.InfoLevel, "a")
	adapter.Log(svcadapters.InfoLevel, "b")

	stats := adapter.Stats()
	assert.Equal(t, Stats{Pending: 2}, stats)

	adapter.SetLogService(&recorder{})
	adapter.Log(svcadapters.InfoLevel, "c")

	assert.Equal(t, Stats{Pending: 0, Forwarded: 1, Replayed: 2, Attached: true}, adapter.Stats())
}

func TestAdapter_ConcurrentLoggingAcrossAttach(t *testing.T) {
	adapter := New()
	delegate := &recorder{}

	const (
		workers = 8
		perWork = 200
	)

	var wg sync.WaitGroup

	for w := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range perWork {
				adapter.Log(svcadapters.InfoLevel, fmt.Sprintf("%d-%d", w, i))
			}
		}()
	}

	adapter.SetLogService(delegate)
	wg.Wait()

	records := delegate.snapshot()
	require.Len(t, records, workers*perWork)
	assert.Empty(t, adapter.Pending())

	// Each worker's own messages keep their call order.
	next := make(map[int]int, workers)

	for _, rec := range records {
		var w, i int

		_, err := fmt.Sscanf(rec.Message(), "%d-%d", &w, &i)
		require.NoError(t, err)
		assert.Equal(t, next[w], i)

		next[w] = i + 1
	}
}

package svcadapters

import (
	"slices"
	"sync"
	"time"

	"github.com/hyp3rd/ewrap"
)

// Entry is a single log record as seen by encoders and hooks.
type Entry struct {
	// Time is when the record was accepted.
	Time time.Time
	// Level is the record level.
	Level Level
	// Logger is the name of the logger that produced the record, if any.
	Logger string
	// Reference identifies the service the record is about, if any.
	Reference ServiceReference
	// Message is the log message.
	Message string
	// Err is the error attached to the record, if any.
	Err error
	// Fields contains structured data attached by configuration or hooks.
	Fields []Field
}

// Hook observes entries before they are encoded.
// Hooks may append fields to the entry.
type Hook interface {
	// OnLog is called for every entry whose level is listed by Levels.
	OnLog(entry *Entry) error
	// Levels returns the levels this hook fires for.
	Levels() []Level
}

// HookRegistry holds named hooks. It is safe for concurrent use.
type HookRegistry struct {
	mu    sync.RWMutex
	hooks map[string]Hook
	order []string
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{
		hooks: make(map[string]Hook),
	}
}

// AddHook registers hook under name. Names must be unique.
func (r *HookRegistry) AddHook(name string, hook Hook) error {
	if hook == nil {
		return ewrap.New("hook cannot be nil").WithMetadata("name", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hooks[name]; exists {
		return ewrap.New("hook already exists").WithMetadata("name", name)
	}

	r.hooks[name] = hook
	r.order = append(r.order, name)

	return nil
}

// RemoveHook removes a hook by name and reports whether it existed.
func (r *HookRegistry) RemoveHook(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hooks[name]; !exists {
		return false
	}

	delete(r.hooks, name)
	r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == name })

	return true
}

// GetHook retrieves a hook by name.
func (r *HookRegistry) GetHook(name string) (Hook, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hook, exists := r.hooks[name]

	return hook, exists
}

// HooksForLevel returns the hooks that fire for level, in registration order.
func (r *HookRegistry) HooksForLevel(level Level) []Hook {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Hook

	for _, name := range r.order {
		hook := r.hooks[name]
		if slices.Contains(hook.Levels(), level) {
			result = append(result, hook)
		}
	}

	return result
}

// FireHooks runs every hook registered for the entry's level.
// All hooks run even when some fail; the failures are returned.
func (r *HookRegistry) FireHooks(entry *Entry) []error {
	if r == nil || entry == nil {
		return nil
	}

	var errs []error

	for _, hook := range r.HooksForLevel(entry.Level) {
		err := hook.OnLog(entry)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

// StandardHook adapts a function to the Hook interface.
type StandardHook struct {
	// LevelList contains the levels this hook fires for.
	LevelList []Level
	// LogHandler is called for each matching entry.
	LogHandler func(entry *Entry) error
}

// NewStandardHook creates a StandardHook. No levels means every level.
func NewStandardHook(levels []Level, handler func(entry *Entry) error) *StandardHook {
	if len(levels) == 0 {
		levels = AllLevels()
	}

	return &StandardHook{
		LevelList:  levels,
		LogHandler: handler,
	}
}

// OnLog implements Hook.
func (h *StandardHook) OnLog(entry *Entry) error {
	if h.LogHandler != nil {
		return h.LogHandler(entry)
	}

	return nil
}

// Levels implements Hook.
func (h *StandardHook) Levels() []Level {
	return h.LevelList
}

// AllLevels returns every valid level, most severe first.
func AllLevels() []Level {
	return []Level{AuditLevel, ErrorLevel, WarningLevel, InfoLevel, DebugLevel, TraceLevel}
}

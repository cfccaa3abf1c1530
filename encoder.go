package svcadapters

import (
	"bytes"
	"maps"
	"slices"
	"sync"

	"github.com/hyp3rd/ewrap"
)

// Encoder names registered by default.
const (
	ConsoleEncoderName = "console"
	JSONEncoderName    = "json"
)

// Encoder renders an entry as one output record. Implementations write into
// buf, which is reset and pooled by the caller, and return its bytes.
type Encoder interface {
	Encode(entry *Entry, cfg *Config, buf *bytes.Buffer) ([]byte, error)
}

// EncoderRegistry maps the names used in Config.Encoder to encoders.
// It is safe for concurrent use.
type EncoderRegistry struct {
	mu       sync.RWMutex
	encoders map[string]Encoder
}

// NewEncoderRegistry creates an empty encoder registry.
func NewEncoderRegistry() *EncoderRegistry {
	return &EncoderRegistry{
		encoders: make(map[string]Encoder),
	}
}

// Register adds an encoder to the registry under the provided name.
func (r *EncoderRegistry) Register(name string, encoder Encoder) error {
	if name == "" {
		return ewrap.New("encoder name cannot be empty")
	}

	if encoder == nil {
		return ewrap.New("encoder cannot be nil").WithMetadata("name", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.encoders[name]; exists {
		return ewrap.New("encoder already registered").WithMetadata("name", name)
	}

	r.encoders[name] = encoder

	return nil
}

// Get retrieves an encoder by name.
func (r *EncoderRegistry) Get(name string) (Encoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	enc, ok := r.encoders[name]

	return enc, ok
}

// Resolve returns the encoder registered under name, or an error wrapping
// ErrEncoderNotFound that lists the available names.
func (r *EncoderRegistry) Resolve(name string) (Encoder, error) {
	enc, ok := r.Get(name)
	if !ok {
		return nil, ewrap.Wrap(ErrEncoderNotFound, "cannot resolve encoder").
			WithMetadata("encoder", name).
			WithMetadata("available", r.Names())
	}

	return enc, nil
}

// Names returns the registered names in sorted order.
func (r *EncoderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.encoders))
}

// MustRegister registers an encoder and panics if registration fails.
func (r *EncoderRegistry) MustRegister(name string, encoder Encoder) {
	err := r.Register(name, encoder)
	if err != nil {
		panic(err)
	}
}

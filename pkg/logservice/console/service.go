// Package console provides a LogService that writes text or JSON records to an io.Writer.
//
// It is the concrete service the adapters in pkg/adapter are normally attached
// to. Records are filtered by a threshold level, optionally sampled, passed
// through registered hooks, encoded, and written in a single call so that
// concurrent records never interleave.
package console

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/svcadapters"
	"github.com/hyp3rd/svcadapters/internal/output"
)

const (
	defaultBufferSize = 512
	// Buffers that grew past this are not returned to the pool.
	maxPooledBufferSize = 32 * 1024
)

// Service writes log records to the configured output.
type Service struct {
	config  *svcadapters.Config
	level   atomic.Uint32
	writer  output.Writer
	encoder svcadapters.Encoder
	hooks   *svcadapters.HookRegistry
	sampler *sampler
	now     func() time.Time

	bufferPool sync.Pool
}

// Ensure Service implements the LoggerService interface.
var _ svcadapters.LoggerService = (*Service)(nil)

// New creates a console service from config.
func New(config svcadapters.Config) (*Service, error) {
	err := config.Validate()
	if err != nil {
		return nil, ewrap.Wrap(err, "invalid log configuration")
	}

	enforceColorPolicy(&config)

	enc, err := resolveEncoder(&config)
	if err != nil {
		return nil, err
	}

	writer, err := output.NewSyncWriter(config.Output)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to wrap output")
	}

	config.AdditionalFields = slices.Clone(config.AdditionalFields)

	svc := &Service{
		config:  &config,
		writer:  writer,
		encoder: enc,
		hooks:   svcadapters.NewHookRegistry(),
		sampler: newSampler(config.Sampling),
		now:     time.Now,
	}

	svc.bufferPool = sync.Pool{
		New: func() any {
			return bytes.NewBuffer(make([]byte, 0, defaultBufferSize))
		},
	}

	svc.level.Store(uint32(config.Level))

	return svc, nil
}

// Log writes a record at level.
func (s *Service) Log(level svcadapters.Level, msg string) {
	s.log(&svcadapters.Entry{Level: level, Message: msg})
}

// LogError writes a record at level with an attached error.
func (s *Service) LogError(level svcadapters.Level, msg string, err error) {
	s.log(&svcadapters.Entry{Level: level, Message: msg, Err: err})
}

// LogRef writes a record at level about the referenced service.
func (s *Service) LogRef(ref svcadapters.ServiceReference, level svcadapters.Level, msg string) {
	s.log(&svcadapters.Entry{Level: level, Message: msg, Reference: ref})
}

// LogRefError writes a record at level about the referenced service with an attached error.
func (s *Service) LogRefError(ref svcadapters.ServiceReference, level svcadapters.Level, msg string, err error) {
	s.log(&svcadapters.Entry{Level: level, Message: msg, Reference: ref, Err: err})
}

// Logger returns a named logger writing through this service.
func (s *Service) Logger(name string) svcadapters.Logger {
	return &Logger{name: name, svc: s}
}

// Level returns the current threshold.
func (s *Service) Level() svcadapters.Level {
	//nolint:gosec // the stored value always comes from a Level.
	return svcadapters.Level(s.level.Load())
}

// SetLevel changes the threshold. Invalid levels are ignored.
func (s *Service) SetLevel(level svcadapters.Level) {
	if !level.IsValid() {
		return
	}

	s.level.Store(uint32(level))
}

// Enabled reports whether records at level are written.
func (s *Service) Enabled(level svcadapters.Level) bool {
	return s.Level().Enables(level)
}

// AddHook registers a hook that sees every entry before it is encoded.
func (s *Service) AddHook(name string, hook svcadapters.Hook) error {
	return s.hooks.AddHook(name, hook)
}

// RemoveHook removes a hook by name.
func (s *Service) RemoveHook(name string) bool {
	return s.hooks.RemoveHook(name)
}

// Config returns a copy of the active configuration.
func (s *Service) Config() svcadapters.Config {
	cfg := *s.config
	cfg.Level = s.Level()
	cfg.AdditionalFields = slices.Clone(s.config.AdditionalFields)

	return cfg
}

// Sync flushes the output when it supports it.
func (s *Service) Sync() error {
	return s.writer.Sync()
}

// Close flushes and closes the output. Standard streams are left open.
func (s *Service) Close() error {
	err := s.Sync()
	if err != nil {
		return err
	}

	return s.writer.Close()
}

func (s *Service) log(entry *svcadapters.Entry) {
	if !s.Enabled(entry.Level) {
		return
	}

	if !s.sampler.Allow(entry.Level) {
		return
	}

	entry.Time = s.now()
	entry.Fields = slices.Clone(s.config.AdditionalFields)

	for _, err := range s.hooks.FireHooks(entry) {
		s.reportError("hook execution error", err)
	}

	buf := s.getBuffer()
	defer s.returnBuffer(buf)

	encoded, err := s.encoder.Encode(entry, s.config, buf)
	if err != nil {
		s.reportError("failed to encode log entry", err)

		return
	}

	_, err = s.writer.Write(encoded)
	if err != nil {
		s.reportError("failed to write log", err)
	}
}

func (*Service) reportError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
}

func (s *Service) getBuffer() *bytes.Buffer {
	if buf, ok := s.bufferPool.Get().(*bytes.Buffer); ok {
		buf.Reset()

		return buf
	}

	return bytes.NewBuffer(make([]byte, 0, defaultBufferSize))
}

func (s *Service) returnBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}

	s.bufferPool.Put(buf)
}

func enforceColorPolicy(config *svcadapters.Config) {
	if !config.Color.Enable || config.Color.ForceTTY {
		return
	}

	if output.IsTerminal(config.Output) {
		return
	}

	config.Color.Enable = false
}

func resolveEncoder(config *svcadapters.Config) (svcadapters.Encoder, error) {
	registry := config.EncoderRegistry
	if registry == nil {
		registry = NewEncoderRegistry()
	} else {
		err := registerDefaultEncoders(registry)
		if err != nil {
			return nil, err
		}
	}

	return registry.Resolve(config.EncoderName())
}

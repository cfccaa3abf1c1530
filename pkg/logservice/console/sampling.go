package console

import (
	"sync/atomic"

	"github.com/hyp3rd/svcadapters"
)

type sampler struct {
	perLevel      bool
	initial       uint64
	thereafter    uint64
	globalCounter atomic.Uint64
	levelCounters [svcadapters.TraceLevel + 1]atomic.Uint64
}

func newSampler(cfg svcadapters.SamplingConfig) *sampler {
	if !cfg.Enabled {
		return nil
	}

	if cfg.Initial <= 0 {
		cfg.Initial = svcadapters.DefaultSamplingInitial
	}

	if cfg.Thereafter <= 0 {
		cfg.Thereafter = svcadapters.DefaultSamplingThereafter
	}

	//nolint:gosec // both values are positive.
	return &sampler{
		perLevel:   cfg.PerLevelThreshold,
		initial:    uint64(cfg.Initial),
		thereafter: uint64(cfg.Thereafter),
	}
}

// Allow reports whether a record at level passes. A nil sampler allows everything.
func (s *sampler) Allow(level svcadapters.Level) bool {
	if s == nil {
		return true
	}

	// Warnings and more severe records are always kept.
	if level <= svcadapters.WarningLevel {
		return true
	}

	count := s.counter(level).Add(1)

	if count <= s.initial || s.thereafter <= 1 {
		return true
	}

	return (count-s.initial)%s.thereafter == 0
}

func (s *sampler) counter(level svcadapters.Level) *atomic.Uint64 {
	if s.perLevel && level.IsValid() {
		return &s.levelCounters[level]
	}

	return &s.globalCounter
}

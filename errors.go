package svcadapters

import "github.com/hyp3rd/ewrap"

// Errors returned by the null sentinels, level parsing and encoder lookup.
var (
	// ErrNoDataSource is returned when connecting through the null data source.
	ErrNoDataSource = ewrap.New("no data source available")

	// ErrNoFactory is returned by an unset data source factory adapter.
	ErrNoFactory = ewrap.New("no data source factory available")

	// ErrFeatureNotSupported is returned for optional operations a data source does not implement.
	ErrFeatureNotSupported = ewrap.New("feature not supported")

	// ErrInvalidLevel is returned when a level name cannot be parsed.
	ErrInvalidLevel = ewrap.New("invalid log level")

	// ErrEncoderNotFound is returned when an encoder name is not registered.
	ErrEncoderNotFound = ewrap.New("encoder not found")
)

package svcadapters

import "fmt"

// ServiceReference identifies the service a log record relates to.
type ServiceReference interface {
	fmt.Stringer
}

// NamedReference is a ServiceReference identified by name only.
type NamedReference string

// String returns the reference name.
func (r NamedReference) String() string { return string(r) }

// LogService is a level-tagged log sink.
//
// Implementations raise no errors of their own through this interface: the
// err argument is the failure being reported, not a result.
type LogService interface {
	// Log logs a message.
	Log(level Level, msg string)
	// LogError logs a message together with the failure that caused it.
	LogError(level Level, msg string, err error)
	// LogRef logs a message related to the referenced service.
	LogRef(ref ServiceReference, level Level, msg string)
	// LogRefError logs a message and failure related to the referenced service.
	LogRefError(ref ServiceReference, level Level, msg string, err error)
}

// LoggerFactory hands out named loggers.
type LoggerFactory interface {
	Logger(name string) Logger
}

// LoggerService is a LogService that can also hand out named loggers.
type LoggerService interface {
	LogService
	LoggerFactory
}

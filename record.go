package svcadapters

// RecordKind tags which LogService call a Record captures.
type RecordKind uint8

const (
	// MessageRecord captures Log(level, msg).
	MessageRecord RecordKind = iota
	// ErrorRecord captures LogError(level, msg, err).
	ErrorRecord
	// RefRecord captures LogRef(ref, level, msg).
	RefRecord
	// RefErrorRecord captures LogRefError(ref, level, msg, err).
	RefErrorRecord
)

// String returns the kind name.
func (k RecordKind) String() string {
	switch k {
	case MessageRecord:
		return "message"
	case ErrorRecord:
		return "error"
	case RefRecord:
		return "ref"
	case RefErrorRecord:
		return "ref_error"
	default:
		return "unknown"
	}
}

// Record is a saved LogService call. It is immutable once created and is
// replayed with the same call variant it was captured from, so a nil error
// passed to LogError is still replayed through LogError.
type Record struct {
	kind  RecordKind
	ref   ServiceReference
	level Level
	msg   string
	err   error
}

// NewRecord captures a Log call.
func NewRecord(level Level, msg string) Record {
	return Record{kind: MessageRecord, level: level, msg: msg}
}

// NewErrorRecord captures a LogError call.
func NewErrorRecord(level Level, msg string, err error) Record {
	return Record{kind: ErrorRecord, level: level, msg: msg, err: err}
}

// NewRefRecord captures a LogRef call.
func NewRefRecord(ref ServiceReference, level Level, msg string) Record {
	return Record{kind: RefRecord, ref: ref, level: level, msg: msg}
}

// NewRefErrorRecord captures a LogRefError call.
func NewRefErrorRecord(ref ServiceReference, level Level, msg string, err error) Record {
	return Record{kind: RefErrorRecord, ref: ref, level: level, msg: msg, err: err}
}

// Kind returns the captured call variant.
func (r Record) Kind() RecordKind { return r.kind }

// Reference returns the service reference, nil for message and error records.
func (r Record) Reference() ServiceReference { return r.ref }

// Level returns the record level.
func (r Record) Level() Level { return r.level }

// Message returns the record message.
func (r Record) Message() string { return r.msg }

// Err returns the reported failure, nil for message and ref records.
func (r Record) Err() error { return r.err }

// SendTo replays the record on svc using the original call variant.
func (r Record) SendTo(svc LogService) {
	switch r.kind {
	case ErrorRecord:
		svc.LogError(r.level, r.msg, r.err)
	case RefRecord:
		svc.LogRef(r.ref, r.level, r.msg)
	case RefErrorRecord:
		svc.LogRefError(r.ref, r.level, r.msg, r.err)
	default:
		svc.Log(r.level, r.msg)
	}
}

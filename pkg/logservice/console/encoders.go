package console

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/svcadapters"
)

const (
	// Width of the longest level name, WARNING.
	levelPadding = 7

	// First printable ASCII character.
	asciiControlStart = 32
	asciiDelete       = 127
)

// Reserved keys used for entry metadata.
const (
	LoggerKey  = "logger"
	ServiceKey = "service"
	ErrorKey   = "error"
)

type consoleEncoder struct{}

// Encode renders "time [LEVEL] message {key=value, ...}".
func (*consoleEncoder) Encode(entry *svcadapters.Entry, cfg *svcadapters.Config, buf *bytes.Buffer) ([]byte, error) {
	if entry == nil {
		return nil, ewrap.New("entry cannot be nil")
	}

	if buf == nil {
		buf = bytes.NewBuffer(nil)
	} else {
		buf.Reset()
	}

	if cfg == nil {
		cfg = &svcadapters.Config{}
	}

	appendTimestamp(buf, entry.Time, cfg.TimeFormat, cfg.DisableTimestamp)
	appendLogLevel(buf, entry.Level, cfg.Color)
	buf.WriteString(entry.Message)

	if fields := metadataFields(entry); len(fields) > 0 {
		appendFields(buf, fields)
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

type jsonEncoder struct{}

// Encode renders one JSON object per line.
func (*jsonEncoder) Encode(entry *svcadapters.Entry, cfg *svcadapters.Config, buf *bytes.Buffer) ([]byte, error) {
	if entry == nil {
		return nil, ewrap.New("entry cannot be nil")
	}

	if buf == nil {
		buf = bytes.NewBuffer(nil)
	} else {
		buf.Reset()
	}

	if cfg == nil {
		cfg = &svcadapters.Config{}
	}

	buf.WriteByte('{')

	if !cfg.DisableTimestamp {
		buf.WriteString(`"time":`)
		jsonEscapeString(buf, entry.Time.Format(timeFormat(cfg.TimeFormat)))
		buf.WriteByte(',')
	}

	buf.WriteString(`"severity":"`)
	buf.WriteString(entry.Level.String())
	buf.WriteString(`","message":`)
	jsonEscapeString(buf, entry.Message)

	for _, field := range metadataFields(entry) {
		buf.WriteByte(',')
		jsonEscapeString(buf, field.Key)
		buf.WriteByte(':')
		formatJSONValue(buf, field.Value)
	}

	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

// NewEncoderRegistry returns a registry holding the console and json encoders.
func NewEncoderRegistry() *svcadapters.EncoderRegistry {
	registry := svcadapters.NewEncoderRegistry()
	registry.MustRegister(svcadapters.ConsoleEncoderName, &consoleEncoder{})
	registry.MustRegister(svcadapters.JSONEncoderName, &jsonEncoder{})

	return registry
}

func registerDefaultEncoders(registry *svcadapters.EncoderRegistry) error {
	if _, exists := registry.Get(svcadapters.ConsoleEncoderName); !exists {
		err := registry.Register(svcadapters.ConsoleEncoderName, &consoleEncoder{})
		if err != nil {
			return err
		}
	}

	if _, exists := registry.Get(svcadapters.JSONEncoderName); !exists {
		err := registry.Register(svcadapters.JSONEncoderName, &jsonEncoder{})
		if err != nil {
			return err
		}
	}

	return nil
}

// metadataFields returns the logger, service and error of the entry followed by its fields.
func metadataFields(entry *svcadapters.Entry) []svcadapters.Field {
	fields := make([]svcadapters.Field, 0, len(entry.Fields)+3)

	if entry.Logger != "" {
		fields = append(fields, svcadapters.Str(LoggerKey, entry.Logger))
	}

	if entry.Reference != nil {
		fields = append(fields, svcadapters.Str(ServiceKey, entry.Reference.String()))
	}

	if entry.Err != nil {
		fields = append(fields, svcadapters.Str(ErrorKey, entry.Err.Error()))
	}

	return append(fields, entry.Fields...)
}

func timeFormat(format string) string {
	if format == "" {
		return svcadapters.DefaultTimeFormat
	}

	return format
}

func appendTimestamp(buf *bytes.Buffer, ts time.Time, format string, disable bool) {
	if disable {
		return
	}

	buf.WriteString(ts.Format(timeFormat(format)))
	buf.WriteByte(' ')
}

func appendLogLevel(buf *bytes.Buffer, level svcadapters.Level, colorCfg svcadapters.ColorConfig) {
	if seq, ok := colorCfg.ColorFor(level); ok {
		buf.WriteString(seq)
		appendPaddedLevel(buf, level.String())
		buf.WriteString(svcadapters.Reset)
		buf.WriteByte(' ')

		return
	}

	appendPaddedLevel(buf, level.String())
	buf.WriteByte(' ')
}

// appendPaddedLevel writes the level right-aligned in brackets.
func appendPaddedLevel(buf *bytes.Buffer, levelStr string) {
	buf.WriteByte('[')

	for range levelPadding - len(levelStr) {
		buf.WriteByte(' ')
	}

	buf.WriteString(levelStr)
	buf.WriteByte(']')
}

func appendFields(buf *bytes.Buffer, fields []svcadapters.Field) {
	buf.WriteString(" {")

	for i, field := range fields {
		if i > 0 {
			buf.WriteString(", ")
		}

		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(formatValue(field.Value))
	}

	buf.WriteByte('}')
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%+v", val)
	}
}

// jsonEscapeString writes target as a quoted JSON string.
func jsonEscapeString(buf *bytes.Buffer, target string) {
	buf.WriteByte('"')

	start := 0

	for i := range len(target) {
		character := target[i]
		if !needsEscaping(character) {
			continue
		}

		buf.WriteString(target[start:i])
		writeEscapedChar(buf, character)

		start = i + 1
	}

	buf.WriteString(target[start:])
	buf.WriteByte('"')
}

// needsEscaping reports whether c must be escaped. Bytes above ASCII are
// passed through so multi-byte UTF-8 sequences stay intact.
func needsEscaping(c byte) bool {
	switch c {
	case '"', '\\':
		return true
	default:
		return c < asciiControlStart || c == asciiDelete
	}
}

func writeEscapedChar(buf *bytes.Buffer, character byte) {
	switch character {
	case '"':
		buf.WriteString(`\"`)
	case '\\':
		buf.WriteString(`\\`)
	case '\b':
		buf.WriteString(`\b`)
	case '\f':
		buf.WriteString(`\f`)
	case '\n':
		buf.WriteString(`\n`)
	case '\r':
		buf.WriteString(`\r`)
	case '\t':
		buf.WriteString(`\t`)
	default:
		fmt.Fprintf(buf, `\u%04x`, character)
	}
}

//nolint:cyclop // It's a long switch still readable.
func formatJSONValue(buf *bytes.Buffer, data any) {
	switch val := data.(type) {
	case nil:
		buf.WriteString("null")
	case string:
		jsonEscapeString(buf, val)
	case int:
		buf.WriteString(strconv.Itoa(val))
	case int32:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
	case int64:
		buf.WriteString(strconv.FormatInt(val, 10))
	case uint:
		buf.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint32:
		buf.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint64:
		buf.WriteString(strconv.FormatUint(val, 10))
	case float32:
		buf.WriteString(strconv.FormatFloat(float64(val), 'f', -1, 32))
	case float64:
		buf.WriteString(strconv.FormatFloat(val, 'f', -1, 64))
	case bool:
		buf.WriteString(strconv.FormatBool(val))
	case time.Duration:
		jsonEscapeString(buf, val.String())
	case time.Time:
		jsonEscapeString(buf, val.Format(time.RFC3339))
	case error:
		jsonEscapeString(buf, val.Error())
	case []byte:
		jsonEscapeString(buf, string(val))
	default:
		jsonEscapeString(buf, formatValue(val))
	}
}

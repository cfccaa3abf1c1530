package svcadapters

import (
	"fmt"
	"strings"
	"time"
)

// Str creates a Field with a string value.
func Str(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a Field with a boolean value.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Int creates a Field with an int value.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a Field with a time.Duration value.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err creates a Field from an error. Nil errors yield a nil value.
func Err(key string, err error) Field {
	var val any
	if err != nil {
		val = err
	}

	return Field{Key: key, Value: val}
}

// Any creates a Field with an arbitrary value.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// AppendFields renders fields after msg as " {key=value, ...}" for log services
// that only accept a message. No fields leaves msg unchanged.
func AppendFields(msg string, fields []Field) string {
	if len(fields) == 0 {
		return msg
	}

	var builder strings.Builder

	builder.WriteString(msg)
	builder.WriteString(" {")

	for i, field := range fields {
		if i > 0 {
			builder.WriteString(", ")
		}

		fmt.Fprintf(&builder, "%s=%v", field.Key, field.Value)
	}

	builder.WriteByte('}')

	return builder.String()
}

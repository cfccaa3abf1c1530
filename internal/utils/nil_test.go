package utils

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type closer struct{}

func (*closer) Close() error { return nil }

func TestIsNil(t *testing.T) {
	var (
		nilPointer *closer
		nilCloser  io.Closer = nilPointer
		nilMap     map[string]int
		nilFunc    func()
	)

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "untyped nil", value: nil, want: true},
		{name: "nil pointer", value: nilPointer, want: true},
		{name: "interface holding nil pointer", value: nilCloser, want: true},
		{name: "nil map", value: nilMap, want: true},
		{name: "nil func", value: nilFunc, want: true},
		{name: "pointer", value: &closer{}, want: false},
		{name: "zero int", value: 0, want: false},
		{name: "empty string", value: "", want: false},
		{name: "struct value", value: struct{}{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNil(tt.value))
		})
	}
}

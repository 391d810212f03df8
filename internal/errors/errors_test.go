package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(ErrQuery, "docker ps failed")
	assert.Equal(t, "QUERY: docker ps failed", plain.Error())

	wrapped := Wrap(stderrors.New("exit status 1"), ErrQuery, "docker stats failed")
	assert.Equal(t, "QUERY: docker stats failed: exit status 1", wrapped.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrParse, "unknown unit %q", "XB")
	assert.Equal(t, `PARSE: unknown unit "XB"`, err.Error())
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("timeout")
	err := Wrap(cause, ErrQuery, "query failed")
	assert.ErrorIs(t, err, cause)
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		want bool
	}{
		{name: "matching code", err: New(ErrParse, "bad value"), code: ErrParse, want: true},
		{name: "different code", err: New(ErrParse, "bad value"), code: ErrQuery, want: false},
		{name: "wrapped coded error", err: Wrap(New(ErrRender, "boom"), ErrQuery, "outer"), code: ErrQuery, want: true},
		{name: "plain error", err: stderrors.New("plain"), code: ErrQuery, want: false},
		{name: "nil error", err: nil, code: ErrQuery, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCode(tt.err, tt.code))
		})
	}
}

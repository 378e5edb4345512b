package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidDraw, "draw %q has no matches", "d1"),
			want: `INVALID_DRAW: draw "d1" has no matches`,
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeStore, stderrors.New("connection refused"), "failed to load draw"),
			want: "STORE_ERROR: failed to load draw: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeDrawNotFound, "draw d1 not found")

	if !Is(err, ErrCodeDrawNotFound) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match a non-Error")
	}
}

func TestIsWrapped(t *testing.T) {
	inner := New(ErrCodeInvalidFormat, "unknown format pdf")
	outer := fmt.Errorf("render: %w", inner)

	if !Is(outer, ErrCodeInvalidFormat) {
		t.Error("Is should unwrap standard wrapping")
	}
	if GetCode(outer) != ErrCodeInvalidFormat {
		t.Errorf("GetCode = %q, want %q", GetCode(outer), ErrCodeInvalidFormat)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "layout failed")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidEngine, "unknown engine: spiral")
	if got := UserMessage(err); got != "unknown engine: spiral" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage for plain error = %q", got)
	}
}

package oerror

import (
	"errors"
	"testing"
)

func TestNewFormatsMessage(t *testing.T) {
	err := New("bad value for %s: %v", "MoveSpeed", -1)
	if err.Error() != "bad value for MoveSpeed: -1" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	var target *Error
	if !errors.As(error(err), &target) {
		t.Fatalf("expected errors.As to match *Error")
	}
}

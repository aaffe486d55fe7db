package service

import (
	"errors"
	"testing"
)

func TestBackendErrMatchesSentinel(t *testing.T) {
	cause := errors.New("database is locked")
	err := backendErr("list cards", cause)

	if !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("expected err to match ErrBackendUnavailable, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected err to preserve the cause, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("backend error must not match ErrNotFound")
	}
}

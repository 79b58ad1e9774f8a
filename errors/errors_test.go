package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"connection timeout", ErrConnectionTimeout, true},
		{"no connection", ErrNoConnection, true},
		{"invalid config", ErrInvalidConfig, false},
		{"classified transient", WrapTransient(fmt.Errorf("boom"), "c", "m", "a"), true},
		{"classified fatal", WrapFatal(fmt.Errorf("boom"), "c", "m", "a"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsTransient(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"invalid config", ErrInvalidConfig, true},
		{"missing config", ErrMissingConfig, true},
		{"connection timeout", ErrConnectionTimeout, false},
		{"classified fatal", WrapFatal(fmt.Errorf("boom"), "c", "m", "a"), true},
		{"classified invalid", WrapInvalid(fmt.Errorf("boom"), "c", "m", "a"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsFatal(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"malformed address", ErrMalformedAddress, true},
		{"malformed message", ErrMalformedMessage, true},
		{"unknown topic", ErrUnknownTopic, true},
		{"unknown endpoint", ErrUnknownEndpoint, true},
		{"result index out of range", ErrResultIndexOutOfRange, true},
		{"connection timeout", ErrConnectionTimeout, false},
		{"classified invalid", WrapInvalid(fmt.Errorf("boom"), "c", "m", "a"), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	if got := Classify(ErrMissingConfig); got != ErrorFatal {
		t.Errorf("expected fatal, got %s", got)
	}
	if got := Classify(ErrUnknownTopic); got != ErrorInvalid {
		t.Errorf("expected invalid, got %s", got)
	}
	if got := Classify(fmt.Errorf("anything else")); got != ErrorTransient {
		t.Errorf("expected transient, got %s", got)
	}
}

func TestWrap_Format(t *testing.T) {
	base := fmt.Errorf("connection refused")
	err := Wrap(base, "subscriber", "Run", "subscribe call")

	expected := "subscriber.Run: subscribe call failed: connection refused"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
	if !Is(err, base) {
		t.Error("wrapped error should match the base error")
	}
}

func TestWrap_NilPassthrough(t *testing.T) {
	if Wrap(nil, "c", "m", "a") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if WrapTransient(nil, "c", "m", "a") != nil {
		t.Error("WrapTransient(nil) should return nil")
	}
	if WrapFatal(nil, "c", "m", "a") != nil {
		t.Error("WrapFatal(nil) should return nil")
	}
	if WrapInvalid(nil, "c", "m", "a") != nil {
		t.Error("WrapInvalid(nil) should return nil")
	}
}

func TestClassifiedError_PreservesChain(t *testing.T) {
	err := WrapFatal(fmt.Errorf("%w: INPUTS", ErrMissingConfig), "config", "Load", "environment check")

	if !Is(err, ErrMissingConfig) {
		t.Error("classification wrapping should preserve the sentinel in the chain")
	}

	var ce *ClassifiedError
	if !As(err, &ce) {
		t.Fatal("expected a ClassifiedError in the chain")
	}
	if ce.Class != ErrorFatal {
		t.Errorf("expected fatal class, got %s", ce.Class)
	}
	if ce.Component != "config" || ce.Operation != "Load" {
		t.Errorf("unexpected component/operation: %s/%s", ce.Component, ce.Operation)
	}
	if !strings.Contains(err.Error(), "config.Load") {
		t.Errorf("expected component.method prefix in %q", err.Error())
	}
}

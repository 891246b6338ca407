package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("E201")
	if err.Code != "E201" {
		t.Errorf("Code = %q, want %q", err.Code, "E201")
	}
	if err.Category != CategoryDiscovery {
		t.Errorf("Category = %q, want %q", err.Category, CategoryDiscovery)
	}
	if err.Message == "" {
		t.Error("Message should be set from the registry")
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q, want %q", err.Message, "Unknown error")
	}
}

func TestErrorString(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := New("E205").WithDetail("artifacts/").Wrap(cause)

	got := err.Error()
	for _, want := range []string{"E205", "artifacts/", "disk on fire"} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, missing %q", got, want)
		}
	}
}

func TestUnwrapAndIs(t *testing.T) {
	cause := stderrors.New("boom")
	err := fmt.Errorf("outer: %w", New("E204").Wrap(cause))

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if !stderrors.Is(err, New("E204")) {
		t.Error("errors.Is should match on code")
	}
	if stderrors.Is(err, New("E203")) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestHasCode(t *testing.T) {
	inner := New("E203")
	outer := New("E205").Wrap(inner)

	if !HasCode(outer, "E205") {
		t.Error("HasCode(outer, E205) = false")
	}
	if !HasCode(outer, "E203") {
		t.Error("HasCode(outer, E203) = false")
	}
	if HasCode(outer, "E120") {
		t.Error("HasCode(outer, E120) = true")
	}
	if HasCode(stderrors.New("plain"), "E120") {
		t.Error("HasCode(plain) = true")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E205") != nil {
		t.Error("FromError(nil) should be nil")
	}

	existing := New("E201")
	if got := FromError(existing, "E205"); got != existing {
		t.Error("FromError should return an existing *Error unchanged")
	}

	wrapped := FromError(stderrors.New("x"), "E205")
	if wrapped.Code != "E205" || wrapped.Wrapped == nil {
		t.Errorf("FromError = %+v", wrapped)
	}
}

func TestFormat(t *testing.T) {
	err := New("E122").WithSuggestion("use 8080")
	out := err.Format()
	for _, want := range []string{"E122", "Invalid port", "use 8080"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}

	if got := FormatAny(stderrors.New("plain")); got != "plain" {
		t.Errorf("FormatAny(plain) = %q", got)
	}
}

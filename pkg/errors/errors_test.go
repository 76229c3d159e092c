package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewCarriesCodeAndMessage(t *testing.T) {
	err := New(ErrCodeInvalidKind, "unknown element kind: %q", "blob")

	if got := GetCode(err); got != ErrCodeInvalidKind {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvalidKind)
	}
	if !strings.Contains(err.Error(), "blob") {
		t.Errorf("Error() = %q, want formatted message", err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "writing session")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
	if got := GetCode(err); got != ErrCodeInternal {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInternal)
	}
}

func TestGetCodeUnknownError(t *testing.T) {
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode(plain error) = %v, want empty code", got)
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeSessionNotFound, "session %q not found", "demo")
	if !Is(err, ErrCodeSessionNotFound) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeInvalidKind) {
		t.Error("Is() should not match a different code")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidIndex, "element index out of range: 9")
	if got := UserMessage(err); got != "element index out of range: 9" {
		t.Errorf("UserMessage() = %q, want message without code prefix", got)
	}
	if got := UserMessage(fmt.Errorf("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q, want \"plain\"", got)
	}
}

func TestValidateSessionID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple", "team-standup", false},
		{"alphanumeric", "Board42", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 129), true},
		{"traversal", "../etc/passwd", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"control char", "a\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSessionID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	if err := ValidateOutputPath("out/diagram.svg"); err != nil {
		t.Errorf("ValidateOutputPath(valid) error = %v", err)
	}
	if err := ValidateOutputPath(""); err == nil {
		t.Error("ValidateOutputPath(empty) should fail")
	}
	if err := ValidateOutputPath("bad\x00path"); err == nil {
		t.Error("ValidateOutputPath(null byte) should fail")
	}
	if err := ValidateOutputPath(strings.Repeat("p", 501)); err == nil {
		t.Error("ValidateOutputPath(too long) should fail")
	}
}

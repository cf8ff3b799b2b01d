package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidKind, "unknown kind %q", "loop")

	if err.Code != ErrCodeInvalidKind {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidKind)
	}

	if err.Message != `unknown kind "loop"` {
		t.Errorf("Message = %v, want %v", err.Message, `unknown kind "loop"`)
	}

	expected := `INVALID_KIND: unknown kind "loop"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeFileNotFound, cause, "read model")

	if err.Code != ErrCodeFileNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeFileNotFound)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeDanglingRelation, "test"),
			code:     ErrCodeDanglingRelation,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeDanglingRelation, "test"),
			code:     ErrCodeMarkerNotFound,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInternal, New(ErrCodeInvalidEntity, "inner"), "outer"),
			code:     ErrCodeInternal,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidEntity,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidEntity,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"structured error", New(ErrCodeMarkerOrder, "test"), ErrCodeMarkerOrder},
		{"wrapped structured error", Wrap(ErrCodeInvalidConfig, errors.New("x"), "test"), ErrCodeInvalidConfig},
		{"plain error", errors.New("plain"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidEntity, "entity #3 has no pos")); got != "entity #3 has no pos" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestValidateEntityID(t *testing.T) {
	long := make([]byte, 129)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple id", "users", false},
		{"id with separators", "user_sessions-v2.archive", false},
		{"unicode id", "注文", false},
		{"empty", "", true},
		{"too long", string(long), true},
		{"control character", "us\x00ers", true},
		{"newline", "us\ners", true},
		{"quote", `us"ers`, true},
		{"angle bracket", "users<", true},
		{"ampersand", "a&b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntityID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEntityID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidEntity) {
				t.Errorf("ValidateEntityID(%q) code = %q, want INVALID_ENTITY", tt.id, GetCode(err))
			}
		})
	}
}

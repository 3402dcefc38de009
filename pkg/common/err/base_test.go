package err

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		e    *Error
		want string
	}{
		{"full", New("store", CodeIO, "write", "disk full", errors.New("ENOSPC")), "[store][IO]: write: disk full: ENOSPC"},
		{"no message", New("refs", CodeRefCorruption, "read_head", "", nil), "[refs][REF_CORRUPTION]: read_head"},
		{"cause only", &Error{Err: errors.New("boom")}, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsCodeThroughChain(t *testing.T) {
	base := New("objects", CodeEncoding, "encode", "path contains NUL", nil)
	wrapped := fmt.Errorf("commit: %w", base)

	if !IsCode(wrapped, CodeEncoding) {
		t.Error("IsCode(ENCODING) = false, want true")
	}
	if IsCode(wrapped, CodeIO) {
		t.Error("IsCode(IO) = true, want false")
	}
	if !errors.Is(wrapped, Kind(CodeEncoding)) {
		t.Error("errors.Is(Kind(ENCODING)) = false, want true")
	}
	if errors.Is(&Error{}, Kind("")) {
		t.Error("empty codes must not match")
	}
}

func TestGetters(t *testing.T) {
	e := fmt.Errorf("outer: %w", New("store", CodeNotFound, "read", "object not found", nil))

	if got := GetCode(e); got != CodeNotFound {
		t.Errorf("GetCode() = %q, want %q", got, CodeNotFound)
	}
	if got := GetPackage(e); got != "store" {
		t.Errorf("GetPackage() = %q, want store", got)
	}
	if got := GetOp(e); got != "read" {
		t.Errorf("GetOp() = %q, want read", got)
	}

	plain := errors.New("plain")
	if GetCode(plain) != "" || GetPackage(plain) != "" || GetOp(plain) != "" {
		t.Error("getters on a foreign error should return empty strings")
	}
}

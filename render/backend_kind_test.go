package render

import (
	"errors"
	"testing"
)

func TestParseBackendKind(t *testing.T) {
	tests := []struct {
		in      string
		want    BackendKind
		wantErr bool
	}{
		{"", BackendAuto, false},
		{"Shader", BackendShader, false},
		{" software ", BackendSoftware, false},
		{"terminal", BackendTerminal, false},
		{"opengl", "", true},
	}
	for _, tt := range tests {
		got, err := ParseBackendKind(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseBackendKind(%q) = %q, %v", tt.in, got, err)
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownBackend) {
			t.Errorf("ParseBackendKind(%q) error = %v, want ErrUnknownBackend", tt.in, err)
		}
	}
}

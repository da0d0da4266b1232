package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBackend is returned for a backend name outside BackendKinds
var ErrUnknownBackend = errors.New("unknown render backend")

// BackendKind selects a render backend
type BackendKind string

const (
	BackendAuto     BackendKind = "auto"
	BackendShader   BackendKind = "shader"
	BackendSoftware BackendKind = "software"
	BackendTerminal BackendKind = "terminal"
)

// BackendKinds lists the accepted backend names
var BackendKinds = []BackendKind{BackendAuto, BackendShader, BackendSoftware, BackendTerminal}

// ParseBackendKind validates a backend name, case-insensitive; empty means auto
func ParseBackendKind(s string) (BackendKind, error) {
	k := BackendKind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return BackendAuto, nil
	}
	for _, known := range BackendKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

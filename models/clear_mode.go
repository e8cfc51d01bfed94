package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognizedControlValue is returned for an unknown session reset token.
var ErrUnrecognizedControlValue = errors.New("unrecognized control value")

// ClearMode selects how much coordinator state a reset discards.
type ClearMode int

const (
	// ClearInert prunes per-client history down to the retained tail.
	ClearInert ClearMode = iota + 1
	// ClearAll drops every piece of coordinator state.
	ClearAll
)

// ParseClearMode accepts "inert" or "all" in any case.
func ParseClearMode(token string) (ClearMode, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "inert":
		return ClearInert, nil
	case "all":
		return ClearAll, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedControlValue, token)
	}
}

func (m ClearMode) String() string {
	switch m {
	case ClearInert:
		return "inert"
	case ClearAll:
		return "all"
	default:
		return "unknown"
	}
}

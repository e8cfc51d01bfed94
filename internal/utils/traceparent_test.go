package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var traceparentPattern = regexp.MustCompile(`^00-[0-9a-f]{32}-[0-9a-f]{16}-00$`)

func TestNewTraceparent(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		tp := NewTraceparent()
		assert.Regexp(t, traceparentPattern, tp)

		_, dup := seen[tp]
		assert.False(t, dup, "traceparent repeated: %s", tp)
		seen[tp] = struct{}{}
	}
}

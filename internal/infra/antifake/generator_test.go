package antifake

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_Format(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	gen := &codeGenerator{now: func() time.Time { return fixed }}

	code := gen.Generate()

	wantTimestamp := strings.ToUpper(strconv.FormatInt(fixed.UnixMilli(), 36))
	require.True(t, strings.HasPrefix(code, "AF"+wantTimestamp), "code %q should carry the timestamp segment", code)

	// 2 prefix chars + timestamp + 8 random chars
	assert.Len(t, code, 2+len(wantTimestamp)+randomLength)
	assert.Equal(t, strings.ToUpper(code), code)
}

func TestCodeGenerator_Uniqueness(t *testing.T) {
	gen := NewCodeGenerator()

	seen := make(map[string]struct{})
	for range 100 {
		code := gen.Generate()
		_, dup := seen[code]
		require.False(t, dup, "generated duplicate code %q", code)
		seen[code] = struct{}{}
	}
}

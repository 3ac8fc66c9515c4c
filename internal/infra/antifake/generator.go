// Package antifake generates the opaque anti-counterfeit codes printed on
// product units.
package antifake

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"

	"trace/internal/domain/service"
)

const (
	codePrefix    = "AF"
	randomLength  = 8
	base36Charset = "0123456789abcdefghijklmnopqrstuvwxyz"
)

type codeGenerator struct {
	now func() time.Time
}

// NewCodeGenerator is the constructor for the anti-fake code generator.
func NewCodeGenerator() service.AntiFakeCodeGenerator {
	return &codeGenerator{now: time.Now}
}

// Generate returns a new code: "AF" + base-36 millisecond timestamp +
// 8 random base-36 characters, uppercased.
func (g *codeGenerator) Generate() string {
	timestamp := strconv.FormatInt(g.now().UnixMilli(), 36)

	buf := make([]byte, randomLength)
	// rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = base36Charset[int(b)%len(base36Charset)]
	}

	return strings.ToUpper(codePrefix + timestamp + string(buf))
}

package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateProductQR("AFMBCDEF12345678")
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output should be a PNG image")
}

func TestQRCodeService_EmptyCode(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateProductQR("")
	assert.Error(t, err)
	assert.Nil(t, png)
}

func TestQRCodeService_UnknownCorrectionLevelFallsBack(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GenerateProductQR("AFMBCDEF12345678")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

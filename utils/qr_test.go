package utils_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"theatre_manager/utils"

	"github.com/stretchr/testify/assert"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestGenerateQRCode(t *testing.T) {
	raw, err := utils.GenerateQRCode("https://example.com/tickets/verify/abc?token=def", 256)

	assert.NoError(t, err)
	assert.Greater(t, len(raw), len(pngMagic))
	assert.Equal(t, pngMagic, raw[:len(pngMagic)])
}

func TestGenerateQRCodeDataURI(t *testing.T) {
	uri, err := utils.GenerateQRCodeDataURI("https://example.com/tickets/verify/abc?token=def", 256)

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	assert.NoError(t, err)
	assert.Equal(t, pngMagic, raw[:len(pngMagic)])
}

func TestGenerateQRCode_EmptyContent(t *testing.T) {
	_, err := utils.GenerateQRCode("", 256)
	assert.Error(t, err)
}

package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUploadUTF8WithBOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("metric,value")...)

	text, err := decodeUpload(raw)

	require.NoError(t, err)
	assert.Equal(t, "metric,value", text)
}

func TestDecodeUploadLatin1(t *testing.T) {
	// "José" in Latin-1: the 0xE9 byte is invalid UTF-8.
	raw := []byte{'J', 'o', 's', 0xE9}

	text, err := decodeUpload(raw)

	require.NoError(t, err)
	assert.Equal(t, "José", text)
}

func TestSniffDelimiter(t *testing.T) {
	assert.Equal(t, ',', sniffDelimiter("a,b,c\n1,2,3"))
	assert.Equal(t, ';', sniffDelimiter("a;b;c\n1;2;3"))
	// Comma wins ties and empty input.
	assert.Equal(t, ',', sniffDelimiter("a;b\n1,2"))
	assert.Equal(t, ',', sniffDelimiter(""))
}

func TestSniffDelimiterOnlyInspectsPrefix(t *testing.T) {
	text := "a,b\n" + strings.Repeat("x", sniffLimit) + strings.Repeat(";", 100)
	assert.Equal(t, ',', sniffDelimiter(text))
}

package ingest

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// sniffLimit bounds how much of the file the delimiter sniffer inspects.
const sniffLimit = 4096

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeUpload turns raw upload bytes into text, trying UTF-8 with BOM,
// plain UTF-8, then Latin-1, in that order. GPS vendor exports are routinely
// Latin-1 with accented athlete names.
func decodeUpload(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode file (try UTF-8): %w", err)
	}
	return string(decoded), nil
}

// sniffDelimiter picks between comma and semicolon by counting occurrences
// in the first few KB. Comma wins ties and is the fallback.
func sniffDelimiter(text string) rune {
	sample := text
	if len(sample) > sniffLimit {
		sample = sample[:sniffLimit]
	}
	if strings.Count(sample, ";") > strings.Count(sample, ",") {
		return ';'
	}
	return ','
}

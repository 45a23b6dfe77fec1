package resume

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Extractor turns an uploaded file into plain text. Implementations return
// empty text on failure; analysis proceeds on whatever survives and yields
// a minimal profile rather than an error.
type Extractor interface {
	Extract(data []byte) (string, error)
}

// PlainTextExtractor treats the payload as UTF-8 text, replacing invalid
// sequences and stripping control characters. It is the fallback for
// anything that is not handed to a dedicated parser.
type PlainTextExtractor struct{}

func (PlainTextExtractor) Extract(data []byte) (string, error) {
	s := string(data)
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, " ")
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' || !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String()), nil
}

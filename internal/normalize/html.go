package normalize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"careermatch-engine/internal/textutil"
)

// cleanDescription strips HTML markup from a job description and repairs
// encoding artifacts. Providers mix plain text and HTML freely; anything
// that fails to parse passes through sanitized as-is.
func cleanDescription(s string) string {
	s = textutil.Sanitize(s)
	if !strings.ContainsRune(s, '<') {
		return textutil.CleanText(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return textutil.CleanText(s)
	}
	return textutil.CleanText(doc.Text())
}

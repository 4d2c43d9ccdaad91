package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strip reduces user-supplied text to plain text: any HTML markup is parsed
// and only its text content kept, whitespace collapsed at the edges. Input
// without markup comes back trimmed but otherwise unchanged.
func Strip(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}

package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelector lists the elements that start a new line in the rendered text.
const blockSelector = "p, div, li, h1, h2, h3, h4, h5, h6, blockquote"

// PlainText renders the HTML fragments TVmaze uses for summaries as plain text.
// Block elements and <br> become line breaks and runs of whitespace collapse to one space.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapseWhitespace(html)
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelector).AfterHtml("\n")

	lines := strings.Split(doc.Find("body").Text(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if collapsed := collapseWhitespace(line); collapsed != "" {
			out = append(out, collapsed)
		}
	}
	return strings.Join(out, "\n")
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

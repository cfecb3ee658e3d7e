package table

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// RawRow is an unprocessed table row: one verbatim text cell per child
// element, in document order. A childless row is an empty RawRow.
type RawRow []string

// Extract returns a RawRow for every tr element in the document. The whole
// tree is scanned, not a single table, so a page that repeats the data
// table yields every row of every copy. Extraction is purely structural
// and never fails: malformed markup simply produces empty or short rows
// for later stages to reject.
func Extract(doc *goquery.Document) []RawRow {
	var rows []RawRow
	doc.Find("tr").Each(func(_ int, sel *goquery.Selection) {
		for _, node := range sel.Nodes {
			rows = append(rows, cellsOf(node))
		}
	})
	return rows
}

// cellsOf collects the text content of each child element of a row node.
// th and td both count as cells.
func cellsOf(row *html.Node) RawRow {
	cells := RawRow{}
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		var b strings.Builder
		collectText(&b, c)
		cells = append(cells, b.String())
	}
	return cells
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dgallion1/htmlextract/internal/doctree"
	"golang.org/x/net/html"
)

const contentSelector = "p, ul, ol, table"

var headingSelector = strings.Join(doctree.HeadingTags, ", ")

// ParseSections walks every h1-h4 heading in document order and collects the
// p/ul/ol/table siblings that follow it, up to the next heading of any rank.
// Headings with empty text or no collected content are dropped.
func ParseSections(src []byte) ([]doctree.Section, error) {
	doc, err := parseDocument(src)
	if err != nil {
		return nil, err
	}

	var sections []doctree.Section
	var renderErr error

	doc.Find(headingSelector).EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		title := strings.TrimSpace(heading.Text())
		if title == "" {
			return true
		}

		sec := doctree.Section{
			Type:  goquery.NodeName(heading),
			Title: title,
		}

		// NextUntil only visits element siblings, never descendants.
		heading.NextUntil(headingSelector).Filter(contentSelector).EachWithBreak(func(_ int, el *goquery.Selection) bool {
			// The HTML5 tree builder closes an open <p> before a block
			// element and turns the stray </p> into an empty <p></p>.
			if goquery.NodeName(el) == "p" && el.Nodes[0].FirstChild == nil {
				return true
			}
			frag, err := goquery.OuterHtml(el)
			if err != nil {
				renderErr = fmt.Errorf("render <%s> under %q: %w", goquery.NodeName(el), title, err)
				return false
			}
			if frag = strings.TrimSpace(frag); frag != "" {
				sec.Content = append(sec.Content, frag)
			}
			return true
		})
		if renderErr != nil {
			return false
		}

		if len(sec.Content) > 0 {
			sections = append(sections, sec)
		}
		return true
	})

	if renderErr != nil {
		return nil, renderErr
	}
	return sections, nil
}

func parseDocument(src []byte) (*goquery.Document, error) {
	root, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}

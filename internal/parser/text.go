package parser

import (
	"regexp"
)

// Style and script blocks are cut from the raw source before parsing so
// their rule text never reaches the text nodes.
var (
	styleBlock  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)
	scriptBlock = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
)

// StripBlocks removes <style> and <script> elements, including their content.
func StripBlocks(src []byte) []byte {
	out := styleBlock.ReplaceAll(src, nil)
	return scriptBlock.ReplaceAll(out, nil)
}

// ExtractText returns the concatenated text nodes of src in document order.
// Whitespace is left exactly as the parser produced it.
func ExtractText(src []byte) (string, error) {
	doc, err := parseDocument(StripBlocks(src))
	if err != nil {
		return "", err
	}
	return doc.Text(), nil
}

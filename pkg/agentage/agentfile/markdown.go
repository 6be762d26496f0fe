package agentfile

import (
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// The parser configuration never changes and a goldmark parser is safe to
// share; per-call state lives in the reader.
var (
	markdownOnce   sync.Once
	markdownParser goldmark.Markdown
)

func getMarkdownParser() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownParser = goldmark.New()
	})
	return markdownParser
}

// DeriveDescription extracts the first paragraph of a markdown body as
// plain text, with soft line breaks collapsed to spaces. Returns "" when
// the body has no paragraph.
func DeriveDescription(body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	source := []byte(body)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))
	for node := document.FirstChild(); node != nil; node = node.NextSibling() {
		paragraph, ok := node.(*ast.Paragraph)
		if !ok {
			continue
		}
		if extracted := strings.TrimSpace(paragraphText(paragraph, source)); extracted != "" {
			return extracted
		}
	}
	return ""
}

func paragraphText(paragraph ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(paragraph, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if textNode, ok := node.(*ast.Text); ok {
			b.Write(textNode.Segment.Value(source))
			if textNode.SoftLineBreak() || textNode.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

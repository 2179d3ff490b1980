package pipeline

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// underscoreParser consumes runs of '_' as literal text so that neither
// _x_ nor __x__ turns into emphasis. Asterisks keep their meaning.
type underscoreParser struct{}

// newUnderscoreParser returns the inline parser behind the code-friendly mode.
func newUnderscoreParser() parser.InlineParser {
	return &underscoreParser{}
}

func (p *underscoreParser) Trigger() []byte {
	return []byte{'_'}
}

func (p *underscoreParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, segment := block.PeekLine()
	n := 0
	for n < len(line) && line[n] == '_' {
		n++
	}
	if n == 0 {
		return nil
	}
	block.Advance(n)
	return ast.NewTextSegment(segment.WithStop(segment.Start + n))
}

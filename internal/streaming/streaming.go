// Package streaming processes large inputs via buffered I/O instead of
// requiring the whole file in memory up front.
package streaming

import (
	"bufio"
	"io"
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
	"github.com/connerohnesorge/docscribe/internal/markdown"
)

// BufferSize is the read buffer used by Parser and ParseDocument.
const BufferSize = 64 * 1024

// Parser reads raw input line by line, yielding each blank-line-delimited
// block of text as it completes.
type Parser struct {
	reader       *bufio.Reader
	currentBlock []string
	lineNum      int
	finished     bool
}

// NewParser wraps r in a buffered Parser.
func NewParser(r io.Reader) *Parser {
	return &Parser{reader: bufio.NewReaderSize(r, BufferSize)}
}

// NextBlock returns the next blank-line-delimited block, or ("", false)
// once input is exhausted.
func (p *Parser) NextBlock() (string, bool) {
	if p.finished {
		return "", false
	}

	for {
		line, err := p.reader.ReadString('\n')
		if line == "" && err != nil {
			p.finished = true
			if len(p.currentBlock) > 0 {
				block := strings.Join(p.currentBlock, "\n")
				p.currentBlock = nil
				return block, true
			}
			return "", false
		}

		p.lineNum++
		trimmed := strings.TrimRight(line, "\r\n")

		if strings.TrimSpace(trimmed) == "" {
			if len(p.currentBlock) > 0 {
				block := strings.Join(p.currentBlock, "\n")
				p.currentBlock = nil
				return block, true
			}
		} else {
			p.currentBlock = append(p.currentBlock, trimmed)
		}

		if err != nil {
			p.finished = true
			if len(p.currentBlock) > 0 {
				block := strings.Join(p.currentBlock, "\n")
				p.currentBlock = nil
				return block, true
			}
			return "", false
		}
	}
}

// LineNum returns the most recently read 1-based line number.
func (p *Parser) LineNum() int {
	return p.lineNum
}

// ParseDocument reads r to completion via buffered I/O and parses it
// as markdown. It exists alongside the block-at-a-time Parser for
// callers who want the resulting AST rather than raw block text.
func ParseDocument(r io.Reader) (ast.Document, error) {
	var content strings.Builder
	buffered := bufio.NewReaderSize(r, BufferSize)
	if _, err := io.Copy(&content, buffered); err != nil {
		return ast.Document{}, err
	}
	return markdown.New(content.String()).Parse(), nil
}

// BlockIterator walks the blocks yielded by a Parser via a callback,
// stopping when the callback returns false or input is exhausted.
type BlockIterator struct {
	parser *Parser
}

// NewBlockIterator wraps r in a BlockIterator.
func NewBlockIterator(r io.Reader) *BlockIterator {
	return &BlockIterator{parser: NewParser(r)}
}

// Next returns the next block, or ("", false) at end of input.
func (b *BlockIterator) Next() (string, bool) {
	return b.parser.NextBlock()
}

// Blocks collects every block from r into a slice.
func Blocks(r io.Reader) []string {
	it := NewBlockIterator(r)
	var out []string
	for {
		block, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, block)
	}
	return out
}

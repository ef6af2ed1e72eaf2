package streaming

import (
	"strings"
	"testing"
)

func TestBufferSize(t *testing.T) {
	if BufferSize != 64*1024 {
		t.Fatalf("got %d", BufferSize)
	}
}

func TestParserLineNum(t *testing.T) {
	p := NewParser(strings.NewReader("Line one.\n\nLine two."))
	if p.LineNum() != 0 {
		t.Fatalf("expected initial line num 0, got %d", p.LineNum())
	}
	p.NextBlock()
	if p.LineNum() == 0 {
		t.Fatalf("expected line num to advance")
	}
}

func TestStreamingBlocks(t *testing.T) {
	input := "First paragraph.\n\nSecond paragraph.\n\nThird paragraph."
	blocks := Blocks(strings.NewReader(input))
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d: %v", len(blocks), blocks)
	}
	if blocks[0] != "First paragraph." || blocks[1] != "Second paragraph." || blocks[2] != "Third paragraph." {
		t.Fatalf("unexpected blocks: %v", blocks)
	}
}

func TestStreamingEmptyInput(t *testing.T) {
	blocks := Blocks(strings.NewReader(""))
	if len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %v", blocks)
	}
}

func TestStreamingSingleBlock(t *testing.T) {
	input := "Single paragraph\nwith multiple lines."
	blocks := Blocks(strings.NewReader(input))
	if len(blocks) != 1 || blocks[0] != input {
		t.Fatalf("got %v", blocks)
	}
}

func TestBlockIterator(t *testing.T) {
	it := NewBlockIterator(strings.NewReader("Block 1.\n\nBlock 2."))
	var collected []string
	for {
		b, ok := it.Next()
		if !ok {
			break
		}
		collected = append(collected, b)
	}
	if len(collected) != 2 {
		t.Fatalf("got %v", collected)
	}
}

func TestParseDocument(t *testing.T) {
	input := "# Hello\n\nThis is a paragraph."
	doc, err := ParseDocument(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Metadata.TotalNodes == 0 {
		t.Fatalf("expected some nodes to have been parsed")
	}
}

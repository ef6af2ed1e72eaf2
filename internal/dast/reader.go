package dast

import (
	"fmt"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

// Decode parses the binary DAST format produced by Encode back into an
// ast.Document. Unlike the lenient format this was learned from,
// Decode is strict throughout: a bad magic, unsupported version,
// out-of-range string index, invalid enum byte, or unknown node tag is
// a hard error rather than a silently-defaulted value.
func Decode(data []byte) (*ast.Document, error) {
	if len(data) < 6 {
		return nil, fmt.Errorf("dast: input too short for header")
	}
	if string(data[:4]) != Magic {
		return nil, fmt.Errorf("dast: bad magic bytes %q", data[:4])
	}
	if data[4] != Version {
		return nil, fmt.Errorf("dast: unsupported version %d", data[4])
	}

	r := &byteReader{data: data, pos: 6}

	count, err := r.readU32()
	if err != nil {
		return nil, fmt.Errorf("dast: reading string table count: %w", err)
	}
	table := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		length, err := r.readU32()
		if err != nil {
			return nil, fmt.Errorf("dast: reading string %d length: %w", i, err)
		}
		raw, err := r.readBytes(int(length))
		if err != nil {
			return nil, fmt.Errorf("dast: reading string %d bytes: %w", i, err)
		}
		table = append(table, string(raw))
	}

	sourcePath, err := r.readStr(table)
	if err != nil {
		return nil, fmt.Errorf("dast: reading source path: %w", err)
	}
	docTypeByte, err := r.readU8()
	if err != nil {
		return nil, fmt.Errorf("dast: reading doc type: %w", err)
	}
	docType, err := u8ToDocType(docTypeByte)
	if err != nil {
		return nil, err
	}
	title, err := r.readOptStr(table)
	if err != nil {
		return nil, fmt.Errorf("dast: reading title: %w", err)
	}
	description, err := r.readOptStr(table)
	if err != nil {
		return nil, fmt.Errorf("dast: reading description: %w", err)
	}
	totalLines, err := r.readU32()
	if err != nil {
		return nil, fmt.Errorf("dast: reading total lines: %w", err)
	}
	totalNodes, err := r.readU32()
	if err != nil {
		return nil, fmt.Errorf("dast: reading total nodes: %w", err)
	}

	topCount, err := r.readU32()
	if err != nil {
		return nil, fmt.Errorf("dast: reading top-level node count: %w", err)
	}
	nodes := make([]ast.Node, 0, topCount)
	for i := uint32(0); i < topCount; i++ {
		n, err := readNode(r, table)
		if err != nil {
			return nil, fmt.Errorf("dast: reading top-level node %d: %w", i, err)
		}
		nodes = append(nodes, *n)
	}

	return &ast.Document{
		SourcePath: sourcePath,
		DocType:    docType,
		Nodes:      nodes,
		Metadata: ast.DocumentMetadata{
			Title:       title,
			Description: description,
			TotalLines:  int(totalLines),
			TotalNodes:  int(totalNodes),
		},
	}, nil
}

func readNode(r *byteReader, table []string) (*ast.Node, error) {
	kindByte, err := r.readU8()
	if err != nil {
		return nil, err
	}
	kind := ast.NodeKind(kindByte)
	if !kind.Valid() {
		return nil, fmt.Errorf("dast: unknown node tag %d", kindByte)
	}

	span, err := r.readSpan()
	if err != nil {
		return nil, fmt.Errorf("dast: reading span: %w", err)
	}

	n := ast.NewNode(kind, span)
	if err := readKindData(r, table, &n); err != nil {
		return nil, fmt.Errorf("dast: reading %s payload: %w", kind, err)
	}

	childCount, err := r.readU32()
	if err != nil {
		return nil, fmt.Errorf("dast: reading child count: %w", err)
	}
	if childCount > 0 {
		n.Children = make([]ast.Node, 0, childCount)
		for i := uint32(0); i < childCount; i++ {
			child, err := readNode(r, table)
			if err != nil {
				return nil, fmt.Errorf("dast: reading child %d: %w", i, err)
			}
			n.Children = append(n.Children, *child)
		}
	}

	return &n, nil
}

//nolint:revive // long dispatch, one case per kind with a payload
func readKindData(r *byteReader, table []string, n *ast.Node) error {
	var err error
	switch n.Kind {
	case ast.KindHeading:
		if n.Level, err = r.readU8(); err != nil {
			return err
		}
		n.ID, err = r.readOptStr(table)
	case ast.KindCodeBlock, ast.KindFencedCodeBlock:
		if n.Language, err = r.readOptStr(table); err != nil {
			return err
		}
		n.Info, err = r.readOptStr(table)
	case ast.KindHTMLBlock:
		if n.BlockType, err = r.readU8(); err != nil {
			return err
		}
		n.Info, err = r.readOptStr(table)
	case ast.KindList:
		if n.Ordered, err = r.readBool(); err != nil {
			return err
		}
		if n.Start, err = r.readOptU32(); err != nil {
			return err
		}
		n.Tight, err = r.readBool()
	case ast.KindListItem:
		if n.Marker, err = r.readMarker(); err != nil {
			return err
		}
		n.Checked, err = r.readOptBool()
	case ast.KindTableCell:
		var alignByte byte
		if alignByte, err = r.readU8(); err != nil {
			return err
		}
		if n.Alignment, err = u8ToAlignment(alignByte); err != nil {
			return err
		}
		n.IsHeader, err = r.readBool()
	case ast.KindText, ast.KindCode, ast.KindCodeSpan, ast.KindHTMLInline,
		ast.KindDocExample, ast.KindDocDescription:
		n.Content, err = r.readStr(table)
	case ast.KindLink:
		if n.URL, err = r.readStr(table); err != nil {
			return err
		}
		if n.Title, err = r.readOptStr(table); err != nil {
			return err
		}
		var refByte byte
		if refByte, err = r.readU8(); err != nil {
			return err
		}
		n.RefType, err = u8ToRefType(refByte)
	case ast.KindImage:
		if n.URL, err = r.readStr(table); err != nil {
			return err
		}
		if n.Alt, err = r.readStr(table); err != nil {
			return err
		}
		n.Title, err = r.readOptStr(table)
	case ast.KindAutoLink, ast.KindAutoURL:
		n.URL, err = r.readStr(table)
	case ast.KindLinkReference:
		if n.Label, err = r.readStr(table); err != nil {
			return err
		}
		var refByte byte
		if refByte, err = r.readU8(); err != nil {
			return err
		}
		n.RefType, err = u8ToRefType(refByte)
	case ast.KindLinkDefinition:
		if n.Label, err = r.readStr(table); err != nil {
			return err
		}
		if n.URL, err = r.readStr(table); err != nil {
			return err
		}
		n.Title, err = r.readOptStr(table)
	case ast.KindFootnoteReference, ast.KindFootnoteDefinition, ast.KindFootnote:
		n.Label, err = r.readStr(table)
	case ast.KindTaskListMarker:
		n.Checked, err = r.readOptBool()
	case ast.KindEmoji:
		n.Shortcode, err = r.readStr(table)
	case ast.KindMention:
		n.Username, err = r.readStr(table)
	case ast.KindIssueReference:
		n.Number, err = r.readU32()
	case ast.KindDocComment:
		var styleByte byte
		if styleByte, err = r.readU8(); err != nil {
			return err
		}
		n.Style, err = u8ToDocStyle(styleByte)
	case ast.KindDocTag:
		if n.Name, err = r.readStr(table); err != nil {
			return err
		}
		n.TagContent, err = r.readOptStr(table)
	case ast.KindDocParam, ast.KindDocProperty:
		if n.Name, err = r.readStr(table); err != nil {
			return err
		}
		if n.ParamType, err = r.readOptStr(table); err != nil {
			return err
		}
		n.Description, err = r.readOptStr(table)
	case ast.KindDocReturn:
		if n.ReturnType, err = r.readOptStr(table); err != nil {
			return err
		}
		n.Description, err = r.readOptStr(table)
	case ast.KindDocThrows:
		if n.ExceptionType, err = r.readStr(table); err != nil {
			return err
		}
		n.Description, err = r.readOptStr(table)
	case ast.KindDocSee:
		n.Reference, err = r.readStr(table)
	case ast.KindDocDeprecated:
		n.Message, err = r.readOptStr(table)
	case ast.KindDocSince, ast.KindDocVersion:
		n.Version, err = r.readStr(table)
	case ast.KindDocAuthor, ast.KindDocCallback:
		n.Name, err = r.readStr(table)
	case ast.KindDocType:
		n.TypeExpr, err = r.readOptStr(table)
	case ast.KindDocTypedef:
		if n.Name, err = r.readStr(table); err != nil {
			return err
		}
		n.TypeExpr, err = r.readOptStr(table)
	case ast.KindFrontmatter:
		var formatByte byte
		if formatByte, err = r.readU8(); err != nil {
			return err
		}
		if n.Format, err = u8ToFrontmatterFormat(formatByte); err != nil {
			return err
		}
		n.Content, err = r.readStr(table)
	case ast.KindMathInline, ast.KindMathBlock:
		n.Content, err = r.readStr(table)
	case ast.KindAlert:
		n.Name, err = r.readStr(table)
	case ast.KindTabs:
		var nameCount uint32
		if nameCount, err = r.readU32(); err != nil {
			return err
		}
		names := make([]string, 0, nameCount)
		for i := uint32(0); i < nameCount; i++ {
			s, serr := r.readStr(table)
			if serr != nil {
				return serr
			}
			names = append(names, s)
		}
		n.Names = names
	case ast.KindCodeBlockExt:
		if n.Language, err = r.readOptStr(table); err != nil {
			return err
		}
		if n.Highlight, err = r.readOptStr(table); err != nil {
			return err
		}
		if n.Plusdiff, err = r.readOptStr(table); err != nil {
			return err
		}
		if n.Minusdiff, err = r.readOptStr(table); err != nil {
			return err
		}
		n.LineNumbers, err = r.readBool()
	}
	return err
}

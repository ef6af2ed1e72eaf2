package dast

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

// Magic and version identify the binary document AST format. Version
// is bumped whenever the wire layout changes incompatibly.
const (
	Magic   = "DAST"
	Version = 1
)

func writeU8(buf *bytes.Buffer, v byte) {
	buf.WriteByte(v)
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}

func writeBool(buf *bytes.Buffer, v bool) {
	if v {
		writeU8(buf, 1)
	} else {
		writeU8(buf, 0)
	}
}

func writeSpan(buf *bytes.Buffer, s ast.Span) {
	writeU32(buf, uint32(s.Start))
	writeU32(buf, uint32(s.End))
	writeU32(buf, uint32(s.Line))
	writeU32(buf, uint32(s.Column))
}

func writeStr(buf *bytes.Buffer, t *stringTable, s string) {
	writeU32(buf, t.idx(s))
}

func writeOptStr(buf *bytes.Buffer, t *stringTable, s *string) {
	if s == nil {
		writeBool(buf, false)
		return
	}
	writeBool(buf, true)
	writeStr(buf, t, *s)
}

func writeOptU32(buf *bytes.Buffer, v *uint32) {
	if v == nil {
		writeBool(buf, false)
		return
	}
	writeBool(buf, true)
	writeU32(buf, *v)
}

func writeOptBool(buf *bytes.Buffer, v *bool) {
	if v == nil {
		writeBool(buf, false)
		return
	}
	writeBool(buf, true)
	writeBool(buf, *v)
}

// writeMarker encodes a ListMarker: a type tag (0=Bullet, 1=Ordered)
// followed by the marker's value byte.
func writeMarker(buf *bytes.Buffer, m ast.ListMarker) {
	writeU8(buf, byte(m.Kind))
	writeU8(buf, m.Value)
}

type byteReader struct {
	data []byte
	pos  int
}

func (r *byteReader) readU8() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, fmt.Errorf("dast: unexpected end of input reading u8")
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

func (r *byteReader) readU32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, fmt.Errorf("dast: unexpected end of input reading u32")
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

func (r *byteReader) readBool() (bool, error) {
	v, err := r.readU8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("dast: invalid bool byte %d", v)
	}
}

func (r *byteReader) readBytes(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, fmt.Errorf("dast: unexpected end of input reading %d bytes", n)
	}
	v := r.data[r.pos : r.pos+n]
	r.pos += n
	return v, nil
}

func (r *byteReader) readSpan() (ast.Span, error) {
	start, err := r.readU32()
	if err != nil {
		return ast.Span{}, err
	}
	end, err := r.readU32()
	if err != nil {
		return ast.Span{}, err
	}
	line, err := r.readU32()
	if err != nil {
		return ast.Span{}, err
	}
	col, err := r.readU32()
	if err != nil {
		return ast.Span{}, err
	}
	return ast.NewSpan(int(start), int(end), int(line), int(col)), nil
}

// readStr resolves a string-table index strictly: an out-of-range
// index is a decode error, unlike the lenient original which returns
// an empty string.
func (r *byteReader) readStr(table []string) (string, error) {
	idx, err := r.readU32()
	if err != nil {
		return "", err
	}
	if int(idx) >= len(table) {
		return "", fmt.Errorf("dast: string index %d out of range (table size %d)", idx, len(table))
	}
	return table[idx], nil
}

func (r *byteReader) readOptStr(table []string) (*string, error) {
	present, err := r.readBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	s, err := r.readStr(table)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *byteReader) readOptU32() (*uint32, error) {
	present, err := r.readBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	v, err := r.readU32()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *byteReader) readOptBool() (*bool, error) {
	present, err := r.readBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	v, err := r.readBool()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *byteReader) readMarker() (ast.ListMarker, error) {
	kind, err := r.readU8()
	if err != nil {
		return ast.ListMarker{}, err
	}
	value, err := r.readU8()
	if err != nil {
		return ast.ListMarker{}, err
	}
	switch kind {
	case byte(ast.MarkerBullet):
		return ast.BulletMarker(value), nil
	case byte(ast.MarkerOrdered):
		return ast.OrderedMarker(value), nil
	default:
		return ast.ListMarker{}, fmt.Errorf("dast: unknown list marker kind byte %d", kind)
	}
}

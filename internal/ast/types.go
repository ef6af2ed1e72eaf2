package ast

import "strings"

// ListMarkerKind distinguishes bullet from ordered list markers.
type ListMarkerKind uint8

const (
	// MarkerBullet is a bullet marker: -, *, or +.
	MarkerBullet ListMarkerKind = iota
	// MarkerOrdered is an ordered marker delimiter: '.' or ')'.
	MarkerOrdered
)

// ListMarker describes the marker used to introduce a list item.
type ListMarker struct {
	Kind  ListMarkerKind
	Value byte // the bullet rune (as byte) or the ordered delimiter byte
}

// BulletMarker constructs a bullet ListMarker.
func BulletMarker(c byte) ListMarker {
	return ListMarker{Kind: MarkerBullet, Value: c}
}

// OrderedMarker constructs an ordered ListMarker (delimiter '.' or ')').
func OrderedMarker(delim byte) ListMarker {
	return ListMarker{Kind: MarkerOrdered, Value: delim}
}

// Alignment is GFM table cell alignment, set from colons in the
// separator row.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// ReferenceType distinguishes the three reference-link styles.
type ReferenceType uint8

const (
	// RefFull is [text][label].
	RefFull ReferenceType = iota
	// RefCollapsed is [label][].
	RefCollapsed
	// RefShortcut is [label].
	RefShortcut
)

// DocStyle identifies which doc-comment dialect produced a DocComment node.
type DocStyle uint8

const (
	DocStyleJSDoc DocStyle = iota
	DocStyleJavaDoc
	DocStylePyDoc
	DocStylePyDocGoogle
	DocStylePyDocNumpy
)

// String renders a human-readable dialect name.
func (d DocStyle) String() string {
	switch d {
	case DocStyleJSDoc:
		return "JSDoc"
	case DocStyleJavaDoc:
		return "JavaDoc"
	case DocStylePyDoc:
		return "PyDoc"
	case DocStylePyDocGoogle:
		return "PyDoc (Google)"
	case DocStylePyDocNumpy:
		return "PyDoc (NumPy)"
	default:
		return "Unknown"
	}
}

// AlertType is the callout kind for a GitHub-style `> [!NOTE]` blockquote.
type AlertType uint8

const (
	AlertNote AlertType = iota
	AlertTip
	AlertImportant
	AlertWarning
	AlertCaution
)

// String renders the canonical alert keyword.
func (a AlertType) String() string {
	switch a {
	case AlertNote:
		return "NOTE"
	case AlertTip:
		return "TIP"
	case AlertImportant:
		return "IMPORTANT"
	case AlertWarning:
		return "WARNING"
	case AlertCaution:
		return "CAUTION"
	default:
		return "NOTE"
	}
}

// AlertTypeFromString maps a callout keyword (matched case-insensitively,
// as it appears inside `[!...]`) to its AlertType, reporting ok=false for
// an unrecognized keyword.
func AlertTypeFromString(s string) (AlertType, bool) {
	switch strings.ToUpper(s) {
	case "NOTE":
		return AlertNote, true
	case "TIP":
		return AlertTip, true
	case "IMPORTANT":
		return AlertImportant, true
	case "WARNING":
		return AlertWarning, true
	case "CAUTION":
		return AlertCaution, true
	default:
		return AlertNote, false
	}
}

// FrontmatterFormat identifies the serialization used by a frontmatter block.
type FrontmatterFormat uint8

const (
	FrontmatterYAML FrontmatterFormat = iota
	FrontmatterTOML
	FrontmatterJSON
)

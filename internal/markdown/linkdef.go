package markdown

import "github.com/connerohnesorge/docscribe/internal/scanner"

// LinkDef is a reference-style link definition: [label]: url "title".
type LinkDef struct {
	Label string
	URL   string
	Title *string
}

// collectLinkDefs makes a full pass over the document collecting every
// link reference definition, skipping any line that doesn't match.
func collectLinkDefs(s *scanner.Scanner) []LinkDef {
	var defs []LinkDef
	for !s.IsEOF() {
		start := s.Pos()
		s.SkipWhitespaceInline()

		if s.Check('[') {
			if def, ok := tryParseLinkDef(s); ok {
				defs = append(defs, def)
				continue
			}
		}

		s.SetPos(start)
		s.SkipLine()
	}
	return defs
}

func tryParseLinkDef(s *scanner.Scanner) (LinkDef, bool) {
	if !s.Consume('[') {
		return LinkDef{}, false
	}

	label, ok := s.ScanUntil(']')
	if !ok {
		return LinkDef{}, false
	}
	s.Advance() // ]

	if !s.Consume(':') {
		return LinkDef{}, false
	}

	s.SkipWhitespaceInline()
	s.Consume('\n')
	s.SkipWhitespaceInline()

	url, ok := parseLinkDefURL(s)
	if !ok {
		return LinkDef{}, false
	}
	s.SkipWhitespaceInline()
	title := parseLinkDefTitle(s)

	return LinkDef{Label: label, URL: url, Title: title}, true
}

func parseLinkDefURL(s *scanner.Scanner) (string, bool) {
	if s.Consume('<') {
		url, ok := s.ScanUntil('>')
		if !ok {
			return "", false
		}
		s.Advance()
		return url, true
	}
	return s.ScanNonWhitespace(), true
}

func parseLinkDefTitle(s *scanner.Scanner) *string {
	delim, ok := s.Peek()
	if !ok || (delim != '"' && delim != '\'' && delim != '(') {
		return nil
	}

	end := delim
	if delim == '(' {
		end = ')'
	}
	s.Advance()
	title, ok := s.ScanUntil(end)
	if !ok {
		return nil
	}
	s.Advance()
	return &title
}

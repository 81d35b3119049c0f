// Package render turns authored problem text into display markup. A single
// string can mix plain prose, $...$ / $$...$$ typeset-math spans, and
// {...} arithmetic spans that are evaluated in place. The scanner makes one
// left-to-right pass and never fails: a span that does not close falls back
// to literal text.
package render

import "strings"

// Kind tags a scanned segment.
type Kind int

const (
	// KindText is literal prose, copied through.
	KindText Kind = iota
	// KindTypesetBlock is the content between $$ pairs.
	KindTypesetBlock
	// KindTypesetInline is the content between single $ pairs.
	KindTypesetInline
	// KindMath is the content between braces, to be evaluated.
	KindMath
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTypesetBlock:
		return "typeset-block"
	case KindTypesetInline:
		return "typeset-inline"
	case KindMath:
		return "math"
	}
	return "unknown"
}

// Segment is one scanned span. Raw holds the content between delimiters
// (for text, the literal characters). Source reconstructs the original
// substring including delimiters.
type Segment struct {
	Kind Kind
	Raw  string
}

// Source returns the exact substring of the input this segment was scanned
// from, delimiters included.
func (s Segment) Source() string {
	switch s.Kind {
	case KindTypesetBlock:
		return "$$" + s.Raw + "$$"
	case KindTypesetInline:
		return "$" + s.Raw + "$"
	case KindMath:
		return "{" + s.Raw + "}"
	default:
		return s.Raw
	}
}

// maxCapture bounds how far a single span capture may look for its closing
// delimiter. Without it a string of thousands of unmatched openers makes
// the fallback rescans quadratic.
const maxCapture = 1 << 16

// Scan partitions the input into an ordered, non-overlapping sequence of
// segments whose Source values concatenate back to the input exactly.
//
// Typeset delimiters win over braces: once a $ capture starts, its content
// is opaque, so a subscript like x_{i} survives intact. An unterminated
// capture re-emits its consumed opening character as text and resumes
// scanning at the following character.
func Scan(s string) []Segment {
	var segs []Segment
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			segs = append(segs, Segment{Kind: KindText, Raw: text.String()})
			text.Reset()
		}
	}

	i := 0
	for i < len(s) {
		switch s[i] {
		case '$':
			if i+1 < len(s) && s[i+1] == '$' {
				if end := indexWithin(s, "$$", i+2); end >= 0 {
					flush()
					segs = append(segs, Segment{Kind: KindTypesetBlock, Raw: s[i+2 : end]})
					i = end + 2
					continue
				}
			} else if end := indexWithin(s, "$", i+1); end >= 0 {
				flush()
				segs = append(segs, Segment{Kind: KindTypesetInline, Raw: s[i+1 : end]})
				i = end + 1
				continue
			}
			// Unterminated: the $ becomes text and the scan resumes after it.
			text.WriteByte('$')
			i++
		case '{':
			depth := 1
			j := i + 1
			for j < len(s) && depth > 0 && j-i <= maxCapture {
				switch s[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
				j++
			}
			if depth == 0 {
				flush()
				segs = append(segs, Segment{Kind: KindMath, Raw: s[i+1 : j-1]})
				i = j
				continue
			}
			text.WriteByte('{')
			i++
		default:
			text.WriteByte(s[i])
			i++
		}
	}
	flush()
	return segs
}

// indexWithin finds sep in s at or after from, within the capture window.
// Returns -1 when the capture should fall back.
func indexWithin(s, sep string, from int) int {
	if from > len(s) {
		return -1
	}
	window := s[from:]
	if len(window) > maxCapture {
		window = window[:maxCapture]
	}
	k := strings.Index(window, sep)
	if k < 0 {
		return -1
	}
	return from + k
}

package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScan_Kinds(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []Segment
	}{
		{
			name:  "plain text",
			input: "just prose, nothing else",
			want:  []Segment{{KindText, "just prose, nothing else"}},
		},
		{
			name:  "inline typeset",
			input: "force $F = ma$ applies",
			want: []Segment{
				{KindText, "force "},
				{KindTypesetInline, "F = ma"},
				{KindText, " applies"},
			},
		},
		{
			name:  "block typeset",
			input: "$$a+b=c$$",
			want:  []Segment{{KindTypesetBlock, "a+b=c"}},
		},
		{
			name:  "expression",
			input: "value is {2*3} N",
			want: []Segment{
				{KindText, "value is "},
				{KindMath, "2*3"},
				{KindText, " N"},
			},
		},
		{
			name:  "typeset shields inner braces",
			input: "$x_{i}$ and {2*3}",
			want: []Segment{
				{KindTypesetInline, "x_{i}"},
				{KindText, " and "},
				{KindMath, "2*3"},
			},
		},
		{
			name:  "adjacent spans",
			input: "$$a+b=c$$ then {1+1}",
			want: []Segment{
				{KindTypesetBlock, "a+b=c"},
				{KindText, " then "},
				{KindMath, "1+1"},
			},
		},
		{
			name:  "nested braces",
			input: "{max(1, {2})}",
			want:  []Segment{{KindMath, "max(1, {2})"}},
		},
		{
			name:  "unterminated expression",
			input: "value is {2+2",
			want:  []Segment{{KindText, "value is {2+2"}},
		},
		{
			name:  "unterminated inline",
			input: "price is $5",
			want:  []Segment{{KindText, "price is $5"}},
		},
		{
			name:  "unterminated block falls back a character at a time",
			input: "$$x",
			want:  []Segment{{KindText, "$$x"}},
		},
		{
			name:  "stray close brace is text",
			input: "a } b",
			want:  []Segment{{KindText, "a } b"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "block then unterminated dollar",
			input: "$$a$$ and $b",
			want: []Segment{
				{KindTypesetBlock, "a"},
				{KindText, " and $b"},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Scan(c.input)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("Scan(%q) mismatch (-want +got):\n%s", c.input, diff)
			}
		})
	}
}

// Segmentation must be a complete, non-overlapping, order-preserving
// partition: rejoining each segment's source reproduces the input.
func TestScan_Reconstruction(t *testing.T) {
	inputs := []string{
		"plain",
		"$a$ {1+1} $$b$$",
		"$x_{i}$ and {2*3}",
		"broken {2+2 and $lonely",
		"$$$",
		"$$$$",
		"{{{}",
		"{}{}{}",
		"mixed $a$$b$$c$ tail",
		"newline\nkept $x$\n{1+2}",
	}
	for _, in := range inputs {
		var b strings.Builder
		for _, seg := range Scan(in) {
			b.WriteString(seg.Source())
		}
		if b.String() != in {
			t.Errorf("reconstruction of %q = %q", in, b.String())
		}
	}
}

func TestScan_PathologicalOpeners(t *testing.T) {
	// Thousands of unmatched openers must terminate and come back as text.
	in := strings.Repeat("{", 5000)
	segs := Scan(in)
	var b strings.Builder
	for _, seg := range segs {
		if seg.Kind != KindText {
			t.Fatalf("expected only text segments, got %v", seg.Kind)
		}
		b.WriteString(seg.Source())
	}
	if b.String() != in {
		t.Errorf("pathological input not preserved")
	}
}

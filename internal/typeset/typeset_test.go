package typeset

import (
	"strings"
	"testing"
)

func renderOK(t *testing.T, src string, display bool) string {
	t.Helper()
	out, err := MathML{}.RenderToString(src, display)
	if err != nil {
		t.Fatalf("RenderToString(%q): unexpected error: %v", src, err)
	}
	return out
}

func TestRenderToString_Basic(t *testing.T) {
	out := renderOK(t, "x", false)
	if !strings.Contains(out, "<mi>x</mi>") {
		t.Errorf("missing identifier in %q", out)
	}
	if !strings.Contains(out, `display="inline"`) {
		t.Errorf("missing inline display attribute in %q", out)
	}
}

func TestRenderToString_DisplayMode(t *testing.T) {
	out := renderOK(t, "x", true)
	if !strings.Contains(out, `display="block"`) {
		t.Errorf("missing block display attribute in %q", out)
	}
}

func TestRenderToString_Scripts(t *testing.T) {
	cases := []struct {
		src  string
		want []string
	}{
		{"x^2", []string{"<msup>", "<mi>x</mi>", "<mn>2</mn>"}},
		{"x_i", []string{"<msub>", "<mi>x</mi>", "<mi>i</mi>"}},
		{"x_{i}", []string{"<msub>", "<mi>i</mi>"}},
		{"x_i^2", []string{"<msubsup>", "<mi>i</mi>", "<mn>2</mn>"}},
		{"x^{n+1}", []string{"<msup>", "<mrow>", "<mn>1</mn>"}},
	}
	for _, c := range cases {
		out := renderOK(t, c.src, false)
		for _, w := range c.want {
			if !strings.Contains(out, w) {
				t.Errorf("RenderToString(%q) = %q, missing %q", c.src, out, w)
			}
		}
	}
}

func TestRenderToString_Numbers(t *testing.T) {
	out := renderOK(t, "12.5", false)
	if !strings.Contains(out, "<mn>12.5</mn>") {
		t.Errorf("number not grouped: %q", out)
	}
}

func TestRenderToString_FracSqrt(t *testing.T) {
	out := renderOK(t, `\frac{a}{b}`, false)
	if !strings.Contains(out, "<mfrac><mi>a</mi><mi>b</mi></mfrac>") {
		t.Errorf("bad fraction: %q", out)
	}
	out = renderOK(t, `\sqrt{2}`, false)
	if !strings.Contains(out, "<msqrt><mn>2</mn></msqrt>") {
		t.Errorf("bad root: %q", out)
	}
}

func TestRenderToString_Symbols(t *testing.T) {
	out := renderOK(t, `\alpha + \Omega \cdot \infty`, false)
	for _, w := range []string{"<mi>α</mi>", "<mi>Ω</mi>", "<mo>⋅</mo>", "<mn>∞</mn>", "<mo>+</mo>"} {
		if !strings.Contains(out, w) {
			t.Errorf("missing %q in %q", w, out)
		}
	}
}

func TestRenderToString_Text(t *testing.T) {
	out := renderOK(t, `\text{per unit}`, false)
	if !strings.Contains(out, "<mtext>per unit</mtext>") {
		t.Errorf("bad text: %q", out)
	}
}

func TestRenderToString_Errors(t *testing.T) {
	cases := []string{
		`\nosuchcommand`,
		`{unclosed`,
		`unopened}`,
		`x^`,
		`^2`,
		`x^2^3`,
		`\frac{a}`,
		`\text missing`,
	}
	for _, src := range cases {
		if _, err := (MathML{}).RenderToString(src, false); err == nil {
			t.Errorf("RenderToString(%q): expected error", src)
		}
	}
}

func TestRenderToString_EscapesContent(t *testing.T) {
	out := renderOK(t, `a<b`, false)
	if !strings.Contains(out, "&lt;") {
		t.Errorf("angle bracket not escaped: %q", out)
	}
}

func TestSanitize(t *testing.T) {
	in := `<math xmlns="http://www.w3.org/1998/Math/MathML" display="inline"><mrow><mi>x</mi></mrow></math><script>alert(1)</script>`
	out := Sanitize(in)
	if strings.Contains(out, "script") || strings.Contains(out, "alert") {
		t.Errorf("script survived sanitization: %q", out)
	}
	if !strings.Contains(out, "<mi>x</mi>") {
		t.Errorf("mathml stripped: %q", out)
	}
}

func TestSanitize_KeepsEvalSpan(t *testing.T) {
	in := `<span class="eval" title="2*3 = 6">6</span>`
	out := Sanitize(in)
	if !strings.Contains(out, `title="2*3 = 6"`) {
		t.Errorf("tooltip stripped: %q", out)
	}
}

package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// stubTypesetter wraps content in a marker element, or fails on demand.
type stubTypesetter struct {
	fail bool
}

func (s stubTypesetter) RenderToString(src string, displayMode bool) (string, error) {
	if s.fail {
		return "", errors.New("typeset failure")
	}
	mode := "inline"
	if displayMode {
		mode = "block"
	}
	return fmt.Sprintf("<tex %s>%s</tex>", mode, src), nil
}

func TestRender_PlainTextPassThrough(t *testing.T) {
	r := New(stubTypesetter{})
	in := "plain text, no markup"
	if got := r.Render(in); got != in {
		t.Errorf("Render(%q) = %q, want unchanged", in, got)
	}
}

func TestRender_LineBreaks(t *testing.T) {
	r := New(stubTypesetter{})
	got := r.Render("line one\nline two")
	want := "line one<br>line two"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_Expression(t *testing.T) {
	r := New(stubTypesetter{})
	got := r.Render("result: {2*3}")
	want := `result: <span class="eval" title="2*3 = 6">6</span>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_ExpressionTrimmed(t *testing.T) {
	r := New(stubTypesetter{})
	got := r.Render("{ 1 + 1 }")
	want := `<span class="eval" title="1 + 1 = 2">2</span>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_InvalidExpressionFallsBack(t *testing.T) {
	r := New(stubTypesetter{})
	for _, in := range []string{
		"{not math}",
		"{process.exit()}",
		"{1/0}",
		"{}",
	} {
		if got := r.Render(in); got != in {
			t.Errorf("Render(%q) = %q, want original text", in, got)
		}
	}
}

func TestRender_UnterminatedExpression(t *testing.T) {
	r := New(stubTypesetter{})
	in := "value is {2+2"
	if got := r.Render(in); got != in {
		t.Errorf("Render(%q) = %q, want original text", in, got)
	}
}

func TestRender_TypesetModes(t *testing.T) {
	r := New(stubTypesetter{})
	got := r.Render("$$a+b=c$$ then $x$")
	want := "<tex block>a+b=c</tex> then <tex inline>x</tex>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_TypesetFailureFallsBack(t *testing.T) {
	r := New(stubTypesetter{fail: true})
	got := r.Render("see $$a+b$$ and $x$")
	want := "see $$a+b$$ and $x$"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_NilTypesetterFallsBack(t *testing.T) {
	r := New(nil)
	in := "$x^2$"
	if got := r.Render(in); got != in {
		t.Errorf("Render(%q) = %q, want original text", in, got)
	}
}

func TestRender_TypesetShieldsBraces(t *testing.T) {
	// The subscript braces inside a typeset span are opaque to the
	// expression scanner; the separate {2*3} still evaluates.
	r := New(stubTypesetter{})
	got := r.Render("$x_{i}$ and {2*3}")
	want := `<tex inline>x_{i}</tex> and <span class="eval" title="2*3 = 6">6</span>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_AdjacentSpansNoExtraChars(t *testing.T) {
	r := New(stubTypesetter{})
	got := r.Render("$$a$${1+1}")
	want := `<tex block>a</tex><span class="eval" title="1+1 = 2">2</span>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_TitleEscaped(t *testing.T) {
	// The expression lands in an attribute, so markup-significant
	// characters must be entity-escaped there.
	r := New(stubTypesetter{})
	got := r.Render("{min(1,2) < 3}")
	if got != "{min(1,2) < 3}" {
		// min(1,2) < 3 is not a valid expression ("<" is disallowed), so
		// this must have fallen back; anything else is a bug.
		t.Fatalf("expected fallback, got %q", got)
	}
	got = r.Render("{pow(2,3)}")
	if !strings.Contains(got, `title="pow(2,3) = 8"`) {
		t.Errorf("missing tooltip metadata in %q", got)
	}
}

func TestRender_Precision(t *testing.T) {
	r := New(stubTypesetter{}, WithPrecision(2))
	got := r.Render("{PI}")
	if !strings.Contains(got, ">3.1</span>") {
		t.Errorf("expected 2 significant digits, got %q", got)
	}
}

func TestRender_Sanitizer(t *testing.T) {
	stripped := false
	r := New(stubTypesetter{}, WithSanitizer(func(s string) string {
		stripped = true
		return strings.ReplaceAll(s, "<script>", "")
	}))
	got := r.Render("hello <script>")
	if !stripped {
		t.Fatal("sanitizer was not invoked")
	}
	if got != "hello " {
		t.Errorf("got %q", got)
	}
}

func TestRender_NeverPanics(t *testing.T) {
	r := New(stubTypesetter{fail: true})
	inputs := []string{
		"", "$", "$$", "$$$", "{", "}", "{$", "$}{",
		strings.Repeat("{$", 200),
		"{1+1} $a$ $$b$$ {bad",
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if p := recover(); p != nil {
					t.Errorf("Render(%q) panicked: %v", in, p)
				}
			}()
			r.Render(in)
		}()
	}
}

package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/dmaslov/probank/internal/eval"
)

// Typesetter converts math-typesetting source into display markup.
// displayMode selects block layout over inline. Implementations are
// fallible; the renderer always has a literal-text fallback.
type Typesetter interface {
	RenderToString(src string, displayMode bool) (string, error)
}

// Renderer assembles scanned segments into a markup string. The zero
// options render with the default precision and no sanitizer.
type Renderer struct {
	ts        Typesetter
	precision int
	sanitize  func(string) string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPrecision sets the significant-digit precision for evaluated values.
func WithPrecision(prec int) Option {
	return func(r *Renderer) { r.precision = prec }
}

// WithSanitizer runs the final markup through a sanitizing pass. Intended
// for security-sensitive deployments; the renderer's own output stays
// unchanged by a policy that admits its vocabulary.
func WithSanitizer(fn func(string) string) Option {
	return func(r *Renderer) { r.sanitize = fn }
}

// New creates a Renderer delegating typeset spans to ts.
func New(ts Typesetter, opts ...Option) *Renderer {
	r := &Renderer{ts: ts, precision: eval.DefaultPrecision}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render converts mixed-notation text into markup. It is total: malformed
// spans, evaluation failures, and typesetting failures all fall back to
// the original source characters. It never returns an error and never
// panics on any input.
func (r *Renderer) Render(text string) string {
	var b strings.Builder
	for _, seg := range Scan(text) {
		switch seg.Kind {
		case KindText:
			b.WriteString(seg.Raw)
		case KindTypesetBlock, KindTypesetInline:
			b.WriteString(r.typeset(seg))
		case KindMath:
			b.WriteString(r.math(seg))
		}
	}
	out := strings.ReplaceAll(b.String(), "\n", "<br>")
	if r.sanitize != nil {
		out = r.sanitize(out)
	}
	return out
}

func (r *Renderer) typeset(seg Segment) string {
	if r.ts != nil {
		out, err := r.ts.RenderToString(seg.Raw, seg.Kind == KindTypesetBlock)
		if err == nil {
			return out
		}
	}
	// Typesetting failed: hand back the original delimited text so no
	// content is dropped.
	return seg.Source()
}

func (r *Renderer) math(seg Segment) string {
	expr := strings.TrimSpace(seg.Raw)
	v, err := eval.Evaluate(expr)
	if err != nil {
		return seg.Source()
	}
	exact := strconv.FormatFloat(v, 'g', -1, 64)
	return fmt.Sprintf(`<span class="eval" title="%s = %s">%s</span>`,
		html.EscapeString(expr), exact, eval.Format(v, r.precision))
}

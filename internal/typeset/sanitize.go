package typeset

import "github.com/microcosm-cc/bluemonday"

// Policy returns a sanitizer admitting exactly the markup the rendering
// pipeline produces: the MathML vocabulary, the evaluated-expression span,
// and line breaks. Everything else — in particular anything executable
// smuggled in through problem content — is stripped.
func Policy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"math", "mrow", "mi", "mn", "mo", "mtext", "mspace",
		"msup", "msub", "msubsup", "mfrac", "msqrt",
		"span", "br",
	)
	p.AllowAttrs("xmlns", "display").OnElements("math")
	p.AllowAttrs("width", "linebreak").OnElements("mspace")
	p.AllowAttrs("class", "title").OnElements("span")
	return p
}

// Sanitize applies Policy to markup. Suitable as a render.WithSanitizer
// argument.
func Sanitize(markup string) string {
	return policy.Sanitize(markup)
}

var policy = Policy()

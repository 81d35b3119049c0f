package typeset

// symbol maps a TeX command to its MathML element and character.
type symbol struct {
	tag  string
	text string
}

var symbols = map[string]symbol{
	// Lowercase greek.
	"alpha":   {"mi", "α"},
	"beta":    {"mi", "β"},
	"gamma":   {"mi", "γ"},
	"delta":   {"mi", "δ"},
	"epsilon": {"mi", "ε"},
	"zeta":    {"mi", "ζ"},
	"eta":     {"mi", "η"},
	"theta":   {"mi", "θ"},
	"iota":    {"mi", "ι"},
	"kappa":   {"mi", "κ"},
	"lambda":  {"mi", "λ"},
	"mu":      {"mi", "μ"},
	"nu":      {"mi", "ν"},
	"xi":      {"mi", "ξ"},
	"pi":      {"mi", "π"},
	"rho":     {"mi", "ρ"},
	"sigma":   {"mi", "σ"},
	"tau":     {"mi", "τ"},
	"upsilon": {"mi", "υ"},
	"phi":     {"mi", "φ"},
	"varphi":  {"mi", "φ"},
	"chi":     {"mi", "χ"},
	"psi":     {"mi", "ψ"},
	"omega":   {"mi", "ω"},

	// Uppercase greek.
	"Gamma":  {"mi", "Γ"},
	"Delta":  {"mi", "Δ"},
	"Theta":  {"mi", "Θ"},
	"Lambda": {"mi", "Λ"},
	"Xi":     {"mi", "Ξ"},
	"Pi":     {"mi", "Π"},
	"Sigma":  {"mi", "Σ"},
	"Phi":    {"mi", "Φ"},
	"Psi":    {"mi", "Ψ"},
	"Omega":  {"mi", "Ω"},

	// Binary operators and relations.
	"cdot":       {"mo", "⋅"},
	"times":      {"mo", "×"},
	"div":        {"mo", "÷"},
	"pm":         {"mo", "±"},
	"mp":         {"mo", "∓"},
	"le":         {"mo", "≤"},
	"leq":        {"mo", "≤"},
	"ge":         {"mo", "≥"},
	"geq":        {"mo", "≥"},
	"ne":         {"mo", "≠"},
	"neq":        {"mo", "≠"},
	"approx":     {"mo", "≈"},
	"equiv":      {"mo", "≡"},
	"propto":     {"mo", "∝"},
	"to":         {"mo", "→"},
	"rightarrow": {"mo", "→"},
	"leftarrow":  {"mo", "←"},
	"Rightarrow": {"mo", "⇒"},

	// Big operators and calculus.
	"sum":     {"mo", "∑"},
	"prod":    {"mo", "∏"},
	"int":     {"mo", "∫"},
	"oint":    {"mo", "∮"},
	"partial": {"mi", "∂"},
	"nabla":   {"mi", "∇"},
	"infty":   {"mn", "∞"},

	// Function names set upright.
	"sin": {"mi", "sin"},
	"cos": {"mi", "cos"},
	"tan": {"mi", "tan"},
	"log": {"mi", "log"},
	"ln":  {"mi", "ln"},
	"exp": {"mi", "exp"},
	"lim": {"mi", "lim"},
	"min": {"mi", "min"},
	"max": {"mi", "max"},

	// Misc.
	"degree": {"mo", "°"},
	"circ":   {"mo", "∘"},
	"prime":  {"mo", "′"},
	"ldots":  {"mo", "…"},
	"cdots":  {"mo", "⋯"},
	"%":      {"mo", "%"},
	"{":      {"mo", "{"},
	"}":      {"mo", "}"},
	"langle": {"mo", "⟨"},
	"rangle": {"mo", "⟩"},
	"lvert":  {"mo", "|"},
	"rvert":  {"mo", "|"},
	"Vert":   {"mo", "‖"},
}

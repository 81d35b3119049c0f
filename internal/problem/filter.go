package problem

import "strings"

// ProgressView is the read side of solved/bookmark state, supplied by the
// progress store.
type ProgressView interface {
	Solved(id string) bool
	Bookmarked(id string) bool
}

// Filter selects problems. Zero-valued fields match everything.
type Filter struct {
	Category    string
	Subcategory string
	Difficulty  Difficulty
	// Query is a case-insensitive substring match over the raw text fields.
	Query string
	// Solved / Bookmarked, when non-nil, require the corresponding state.
	Solved     *bool
	Bookmarked *bool
}

// Match reports whether p passes the filter. prog may be nil when no
// solved/bookmarked condition is set.
func (f Filter) Match(p *Problem, prog ProgressView) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Subcategory != "" && !strings.EqualFold(p.Subcategory, f.Subcategory) {
		return false
	}
	if f.Difficulty != "" && p.Difficulty != f.Difficulty {
		return false
	}
	if f.Solved != nil && prog.Solved(p.ID) != *f.Solved {
		return false
	}
	if f.Bookmarked != nil && prog.Bookmarked(p.ID) != *f.Bookmarked {
		return false
	}
	if f.Query != "" && !matchQuery(p, f.Query) {
		return false
	}
	return true
}

func matchQuery(p *Problem, q string) bool {
	q = strings.ToLower(q)
	if containsFold(p.Statement, q) || containsFold(p.Required, q) || containsFold(p.Answer, q) || containsFold(p.ID, q) {
		return true
	}
	for _, g := range p.Given {
		if containsFold(g, q) {
			return true
		}
	}
	for _, s := range p.Steps {
		if containsFold(s.Title, q) || containsFold(s.Content, q) {
			return true
		}
	}
	return false
}

// containsFold assumes needle is already lowercased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// Apply returns the problems passing the filter, preserving bank order.
func Apply(list []Problem, f Filter, prog ProgressView) []Problem {
	var out []Problem
	for i := range list {
		if f.Match(&list[i], prog) {
			out = append(out, list[i])
		}
	}
	return out
}

// Paginate slices one page out of list. Pages are 1-based; perPage
// defaults to 20 and is capped at 100. The second result is the total
// item count before slicing.
func Paginate(list []Problem, page, perPage int) ([]Problem, int) {
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	if page <= 0 {
		page = 1
	}
	total := len(list)
	start := (page - 1) * perPage
	if start >= total {
		return nil, total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return list[start:end], total
}

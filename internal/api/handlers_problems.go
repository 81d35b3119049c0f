package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dmaslov/probank/internal/problem"
	"github.com/go-chi/chi/v5"
)

// ProblemSummary is a list entry: identifying fields plus the rendered
// statement, with the learner's state folded in.
type ProblemSummary struct {
	ID          string             `json:"id"`
	Difficulty  problem.Difficulty `json:"difficulty"`
	Category    string             `json:"category"`
	Subcategory string             `json:"subcategory"`
	Statement   string             `json:"statement"`
	Solved      bool               `json:"solved"`
	Bookmarked  bool               `json:"bookmarked"`
}

// RenderedStep is a solution step with both fields rendered.
type RenderedStep struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

// RenderedProblem is the full problem with every free-text field run
// through the renderer.
type RenderedProblem struct {
	ID          string             `json:"id"`
	Difficulty  problem.Difficulty `json:"difficulty"`
	Category    string             `json:"category"`
	Subcategory string             `json:"subcategory"`

	Statement      string         `json:"statement"`
	StatementImage string         `json:"statementImage,omitempty"`
	Given          []string       `json:"given,omitempty"`
	GivenImage     string         `json:"givenImage,omitempty"`
	Required       string         `json:"required"`
	Steps          []RenderedStep `json:"steps,omitempty"`
	Answer         string         `json:"answer"`
	AnswerImage    string         `json:"answerImage,omitempty"`

	Solved     bool `json:"solved"`
	Bookmarked bool `json:"bookmarked"`
}

func (s *Server) handleListProblems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := problem.Filter{
		Category:    q.Get("category"),
		Subcategory: q.Get("subcategory"),
		Query:       q.Get("q"),
	}
	if d := q.Get("difficulty"); d != "" {
		diff, err := problem.ParseDifficulty(d)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.Difficulty = diff
	}
	if v, ok := parseBoolParam(q.Get("solved")); ok {
		f.Solved = &v
	}
	if v, ok := parseBoolParam(q.Get("bookmarked")); ok {
		f.Bookmarked = &v
	}

	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	filtered := problem.Apply(s.bank, f, s.progress)
	items, total := problem.Paginate(filtered, page, perPage)

	summaries := make([]ProblemSummary, 0, len(items))
	for i := range items {
		p := &items[i]
		summaries = append(summaries, ProblemSummary{
			ID:          p.ID,
			Difficulty:  p.Difficulty,
			Category:    p.Category,
			Subcategory: p.Subcategory,
			Statement:   s.renderer.Render(p.Statement),
			Solved:      s.progress.Solved(p.ID),
			Bookmarked:  s.progress.Bookmarked(p.ID),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"problems": summaries,
		"total":    total,
	})
}

func (s *Server) handleGetProblem(w http.ResponseWriter, r *http.Request) {
	p, ok := s.byID[chi.URLParam(r, "problemID")]
	if !ok {
		jsonError(w, "problem not found", http.StatusNotFound)
		return
	}

	out := RenderedProblem{
		ID:          p.ID,
		Difficulty:  p.Difficulty,
		Category:    p.Category,
		Subcategory: p.Subcategory,

		Statement:      s.renderer.Render(p.Statement),
		StatementImage: p.StatementImage,
		GivenImage:     p.GivenImage,
		Required:       s.renderer.Render(p.Required),
		Answer:         s.renderer.Render(p.Answer),
		AnswerImage:    p.AnswerImage,

		Solved:     s.progress.Solved(p.ID),
		Bookmarked: s.progress.Bookmarked(p.ID),
	}
	for _, g := range p.Given {
		out.Given = append(out.Given, s.renderer.Render(g))
	}
	for _, st := range p.Steps {
		out.Steps = append(out.Steps, RenderedStep{
			Title:   s.renderer.Render(st.Title),
			Content: s.renderer.Render(st.Content),
			Image:   st.Image,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// parseBoolParam distinguishes absent from explicit true/false.
func parseBoolParam(s string) (value, ok bool) {
	if s == "" {
		return false, false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return v, true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

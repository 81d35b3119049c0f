// Package problem defines the worked-problem model and the filtering,
// search, and pagination applied to the merged problem bank.
package problem

import "fmt"

// Difficulty is a display-only rank. The ordering Moderate < Difficult <
// VeryDifficult is for presentation; no numeric scale is implied.
type Difficulty string

const (
	Moderate      Difficulty = "Moderate"
	Difficult     Difficulty = "Difficult"
	VeryDifficult Difficulty = "Very Difficult"
)

// Rank returns the display ordering of a difficulty. Unknown values sort
// last.
func (d Difficulty) Rank() int {
	switch d {
	case Moderate:
		return 0
	case Difficult:
		return 1
	case VeryDifficult:
		return 2
	}
	return 3
}

// ParseDifficulty validates a difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Moderate, Difficult, VeryDifficult:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Step is one ordered solution step.
type Step struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

// Problem is one worked problem. Every free-text field may contain mixed
// notation ($...$, $$...$$, {...}) and is rendered independently.
type Problem struct {
	ID          string     `json:"id"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category"`
	Subcategory string     `json:"subcategory"`

	Statement      string   `json:"statement"`
	StatementImage string   `json:"statementImage,omitempty"`
	Given          []string `json:"given,omitempty"`
	GivenImage     string   `json:"givenImage,omitempty"`
	Required       string   `json:"required"`
	Steps          []Step   `json:"steps,omitempty"`
	Answer         string   `json:"answer"`
	AnswerImage    string   `json:"answerImage,omitempty"`
}

// Validate checks the fields the rest of the system depends on.
func (p *Problem) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("problem has no id")
	}
	if _, err := ParseDifficulty(string(p.Difficulty)); err != nil {
		return fmt.Errorf("problem %s: %w", p.ID, err)
	}
	if p.Statement == "" {
		return fmt.Errorf("problem %s: empty statement", p.ID)
	}
	return nil
}

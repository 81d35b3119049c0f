// Package importer turns source documents (markdown, docx, pdf) into
// problem drafts. Imported drafts carry generated IDs and usually need
// manual curation before they join a collection.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmaslov/probank/internal/problem"
)

// Outline is the structural skeleton of a parsed source document.
type Outline struct {
	Title    string     // Document title (from metadata or filename)
	Sections []*Section // Top-level sections
}

// Section is a recursive document section.
type Section struct {
	Title    string     // Heading text (empty for unheaded text)
	Text     string     // Body text of this section
	Page     int        // Source page (0 if not applicable)
	Children []*Section // Subsections
}

// Source converts raw document bytes into an Outline.
type Source interface {
	Parse(r io.Reader, filename string) (*Outline, error)
}

// SupportedExtensions lists file extensions the importer can handle.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".docx":     true,
	".pdf":      true,
}

// ForFile returns the appropriate source parser for a filename.
func ForFile(filename string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	case ".docx":
		return &DOCXSource{}, nil
	case ".pdf":
		return &PDFSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Options controls how an outline maps to problem drafts.
type Options struct {
	Category    string
	Subcategory string
	Difficulty  problem.Difficulty
}

// Extract maps each top-level section of the outline to one problem
// draft. Child sections titled Given, Required, Solution and Answer
// (case-insensitive) fill the corresponding fields; subsections of
// Solution become worked steps. Text before any named child becomes
// the statement.
func Extract(o *Outline, opts Options) []problem.Problem {
	if opts.Difficulty == "" {
		opts.Difficulty = problem.Moderate
	}

	var drafts []problem.Problem
	for _, sec := range o.Sections {
		p := problem.Problem{
			ID:          NewDraftID(),
			Difficulty:  opts.Difficulty,
			Category:    opts.Category,
			Subcategory: opts.Subcategory,
			Statement:   sec.Text,
		}
		if p.Statement == "" {
			p.Statement = sec.Title
		}

		for _, child := range sec.Children {
			switch strings.ToLower(strings.TrimSpace(child.Title)) {
			case "given":
				p.Given = splitItems(child.Text)
			case "required", "find":
				p.Required = child.Text
			case "solution":
				p.Steps = extractSteps(child)
			case "answer":
				p.Answer = child.Text
			default:
				// Unrecognized subsections fold into the statement so
				// no source text is silently lost.
				p.Statement = joinBlocks(p.Statement, child.Title, child.Text)
			}
		}
		drafts = append(drafts, p)
	}
	return drafts
}

func extractSteps(sec *Section) []problem.Step {
	var steps []problem.Step
	if strings.TrimSpace(sec.Text) != "" {
		steps = append(steps, problem.Step{Content: sec.Text})
	}
	for _, child := range sec.Children {
		steps = append(steps, problem.Step{
			Title:   child.Title,
			Content: joinBlocks(child.Text, collectText(child.Children)...),
		})
	}
	return steps
}

func collectText(secs []*Section) []string {
	var parts []string
	for _, s := range secs {
		parts = append(parts, s.Title, s.Text)
		parts = append(parts, collectText(s.Children)...)
	}
	return parts
}

// splitItems turns a Given block into one entry per line, dropping
// list markers.
func splitItems(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

func joinBlocks(first string, rest ...string) string {
	parts := []string{first}
	parts = append(parts, rest...)
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, "\n\n")
}

// WriteCollection writes drafts as a collection file the loader can
// read back.
func WriteCollection(path string, drafts []problem.Problem) error {
	data, err := json.MarshalIndent(drafts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	return nil
}

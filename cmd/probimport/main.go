// probimport converts source documents (markdown, docx, pdf) into
// problem collection files the server can load.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmaslov/probank/internal/importer"
	"github.com/dmaslov/probank/internal/problem"
)

var (
	outPath     string
	category    string
	subcategory string
	difficulty  string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "probimport",
	Short: "Import worked problems from documents into collection files",
	Long: `probimport parses a source document and extracts one problem draft
per top-level heading. Subsections named Given, Required, Solution and
Answer fill the corresponding problem fields; subsections of Solution
become worked steps.

Imported drafts carry generated IDs and usually need manual curation
before the server loads them.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Extract problem drafts from a document",
	Long: `Import parses a markdown, docx or pdf file and writes the extracted
drafts as a JSON collection.

Example:
  probimport import beams.md --out data/beams.json --category Statics
  probimport import chapter3.docx --difficulty Difficult`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	importCmd.Flags().StringVar(&outPath, "out", "problems.json", "output collection path")
	importCmd.Flags().StringVar(&category, "category", "", "category for all drafts")
	importCmd.Flags().StringVar(&subcategory, "subcategory", "", "subcategory for all drafts")
	importCmd.Flags().StringVar(&difficulty, "difficulty", string(problem.Moderate), "difficulty for all drafts")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	diff, err := problem.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}

	src, err := importer.ForFile(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	outline, err := src.Parse(f, path)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Parsed %s: %d top-level sections\n", path, len(outline.Sections))
	}

	drafts := importer.Extract(outline, importer.Options{
		Category:    category,
		Subcategory: subcategory,
		Difficulty:  diff,
	})
	if len(drafts) == 0 {
		return fmt.Errorf("no problems found in %s", path)
	}
	for _, d := range drafts {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("draft %s: %w", d.ID, err)
		}
	}

	if err := importer.WriteCollection(outPath, drafts); err != nil {
		return err
	}
	fmt.Printf("Wrote %d problem drafts to %s\n", len(drafts), outPath)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

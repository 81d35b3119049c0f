package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const staticsJSON = `[
  {"id": "st-1", "difficulty": "Moderate", "statement": "Find the reaction.", "required": "R_A", "answer": "{5*2} kN"},
  {"id": "st-2", "difficulty": "Difficult", "statement": "Find the moment.", "required": "M_B", "answer": "4 kNm"}
]`

const dynamicsJSON = `[
  {"id": "dy-1", "difficulty": "Very Difficult", "category": "Dynamics", "subcategory": "Kinetics",
   "statement": "Find the velocity.", "required": "v", "answer": "{3+4} m/s"}
]`

func TestLoad_MergesAndFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "statics.json", staticsJSON)
	writeFile(t, dir, "dynamics.json", dynamicsJSON)
	manifest := writeFile(t, dir, "manifest.yaml", `
collections:
  - path: statics.json
    category: Statics
    subcategory: Trusses
  - path: dynamics.json
    category: IgnoredDefault
`)

	bank, err := Load(manifest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bank) != 3 {
		t.Fatalf("expected 3 problems, got %d", len(bank))
	}
	if bank[0].Category != "Statics" || bank[0].Subcategory != "Trusses" {
		t.Errorf("defaults not applied: %+v", bank[0])
	}
	// A problem's own category wins over the collection default.
	if bank[2].Category != "Dynamics" {
		t.Errorf("explicit category overridden: %+v", bank[2])
	}
}

func TestLoad_DuplicateID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `[{"id": "x", "difficulty": "Moderate", "statement": "s", "required": "r", "answer": "a"}]`)
	writeFile(t, dir, "b.json", `[{"id": "x", "difficulty": "Moderate", "statement": "s", "required": "r", "answer": "a"}]`)
	manifest := writeFile(t, dir, "manifest.yaml", `
collections:
  - path: a.json
    category: C
  - path: b.json
    category: C
`)
	if _, err := Load(manifest); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestLoad_InvalidProblem(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", `[{"id": "", "difficulty": "Moderate", "statement": "s"}]`)
	manifest := writeFile(t, dir, "manifest.yaml", "collections:\n  - path: bad.json\n    category: C\n")
	if _, err := Load(manifest); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoad_MissingManifest(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", dynamicsJSON)
	writeFile(t, dir, "a.json", `[{"id": "st-9", "difficulty": "Moderate", "category": "Statics",
		"statement": "s", "required": "r", "answer": "a"}]`)
	writeFile(t, dir, "notes.txt", "not a collection")

	bank, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bank) != 2 {
		t.Fatalf("expected 2 problems, got %d", len(bank))
	}
	// Name order: a.json before b.json.
	if bank[0].ID != "st-9" || bank[1].ID != "dy-1" {
		t.Errorf("unexpected order: %s, %s", bank[0].ID, bank[1].ID)
	}
}

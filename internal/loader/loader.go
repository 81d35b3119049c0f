// Package loader reads problem collections from disk and merges them into
// the flat bank the rest of the service works against.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dmaslov/probank/internal/problem"
	"gopkg.in/yaml.v3"
)

// Manifest lists the collection files that make up the bank. Collection
// paths are relative to the manifest file.
type Manifest struct {
	Collections []CollectionRef `yaml:"collections"`
}

// CollectionRef points at one collection JSON file. Category and
// Subcategory, when set, fill in problems that omit them.
type CollectionRef struct {
	Path        string `yaml:"path"`
	Category    string `yaml:"category,omitempty"`
	Subcategory string `yaml:"subcategory,omitempty"`
}

// Load reads the manifest and every collection it references, returning
// the merged bank. Duplicate or missing IDs are errors: one bad entry
// must not silently shadow another.
func Load(manifestPath string) ([]problem.Problem, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Collections) == 0 {
		return nil, fmt.Errorf("manifest %s lists no collections", manifestPath)
	}

	base := filepath.Dir(manifestPath)
	var bank []problem.Problem
	seen := make(map[string]string) // id -> collection path
	for _, ref := range m.Collections {
		path := ref.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(base, path)
		}
		probs, err := loadCollection(path)
		if err != nil {
			return nil, err
		}
		for i := range probs {
			p := &probs[i]
			if p.Category == "" {
				p.Category = ref.Category
			}
			if p.Subcategory == "" {
				p.Subcategory = ref.Subcategory
			}
			if err := p.Validate(); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			if prev, dup := seen[p.ID]; dup {
				return nil, fmt.Errorf("%s: duplicate problem id %q (also in %s)", path, p.ID, prev)
			}
			seen[p.ID] = path
		}
		bank = append(bank, probs...)
	}
	return bank, nil
}

// LoadDir loads every .json file in dir as a collection, without a
// manifest. Files are visited in name order so the merge is stable.
func LoadDir(dir string) ([]problem.Problem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read collections dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("no collection files in %s", dir)
	}

	var bank []problem.Problem
	seen := make(map[string]string)
	for _, path := range paths {
		probs, err := loadCollection(path)
		if err != nil {
			return nil, err
		}
		for i := range probs {
			if err := probs[i].Validate(); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			if prev, dup := seen[probs[i].ID]; dup {
				return nil, fmt.Errorf("%s: duplicate problem id %q (also in %s)", path, probs[i].ID, prev)
			}
			seen[probs[i].ID] = path
		}
		bank = append(bank, probs...)
	}
	return bank, nil
}

func loadCollection(path string) ([]problem.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}
	var probs []problem.Problem
	if err := json.Unmarshal(data, &probs); err != nil {
		return nil, fmt.Errorf("parse collection %s: %w", path, err)
	}
	return probs, nil
}

package progress

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestStore_SetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if s.Solved("p1") {
		t.Error("fresh store should have nothing solved")
	}
	if err := s.SetSolved("p1", true); err != nil {
		t.Fatal(err)
	}
	if err := s.SetBookmarked("p2", true); err != nil {
		t.Fatal(err)
	}
	if !s.Solved("p1") || s.Solved("p2") {
		t.Error("solved state wrong")
	}
	if !s.Bookmarked("p2") || s.Bookmarked("p1") {
		t.Error("bookmark state wrong")
	}

	if err := s.SetSolved("p1", false); err != nil {
		t.Fatal(err)
	}
	if s.Solved("p1") {
		t.Error("unsolve did not stick")
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"a", "b", "c"} {
		if err := s.SetSolved(id, true); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.SetBookmarked("b", true); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	sum := s2.Snapshot()
	if sum.SolvedCount != 3 || sum.BookmarkedCount != 1 {
		t.Errorf("snapshot after reopen: %+v", sum)
	}
	if len(sum.Solved) != 3 || sum.Solved[0] != "a" {
		t.Errorf("solved list not sorted: %v", sum.Solved)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progress.json")
	if err := writeTestFile(path, "{not json"); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected error opening corrupt file")
	}
}

func TestStore_ConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_ = s.SetSolved(id, true)
			_ = s.SetBookmarked(id, true)
		}(string(rune('a' + i)))
	}
	wg.Wait()
	sum := s.Snapshot()
	if sum.SolvedCount != 8 || sum.BookmarkedCount != 8 {
		t.Errorf("lost updates: %+v", sum)
	}
}

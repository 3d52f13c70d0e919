package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EmptyPath(t *testing.T) {
	set, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 0 {
		t.Errorf("expected empty set, got %d entries", len(set))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if len(set) != 0 {
		t.Errorf("expected empty set, got %d entries", len(set))
	}
}

func TestLoad_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ignore.txt")
	content := "repo-a\n\nrepo-b\n   \nrepo-c\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(set))
	}
	for _, name := range []string{"repo-a", "repo-b", "repo-c"} {
		if !set.Contains(name) {
			t.Errorf("expected set to contain %q", name)
		}
	}
	if set.Contains("repo-d") {
		t.Error("set should not contain repo-d")
	}
}

func TestLoad_TrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ignore.txt")
	if err := os.WriteFile(path, []byte("  repo-a  \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !set.Contains("repo-a") {
		t.Error("expected trimmed name repo-a in the set")
	}
}

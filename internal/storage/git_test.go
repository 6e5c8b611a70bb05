package storage

import (
	"bufio"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestStageFiles(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	root := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(root))

	s := New(root, "")
	if s.IsGitRepo() {
		t.Fatal("fresh directory reported as a git repo")
	}
	if out, err := exec.Command("git", "init", root).CombinedOutput(); err != nil {
		t.Fatalf("git init: %v\n%s", err, out)
	}
	if !s.IsGitRepo() {
		t.Fatal("initialized directory not reported as a git repo")
	}

	if err := s.EnsurePalettesDir(); err != nil {
		t.Fatal(err)
	}
	path := s.GPLPath("2024")
	if err := WriteFile(path, func(w *bufio.Writer) error {
		_, err := w.WriteString("GIMP Palette\n")
		return err
	}); err != nil {
		t.Fatal(err)
	}

	// Missing files are dropped instead of failing the whole add.
	s.StageFiles(path, s.TeXPath("2024"))

	want := "A  " + filepath.ToSlash(filepath.Join(DefaultPalettesDir, FileName("2024", "gpl")))
	if got := s.GitStatus(); !strings.Contains(got, want) {
		t.Errorf("git status %q does not contain %q", got, want)
	}
}

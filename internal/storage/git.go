package storage

import (
	"os"
	"os/exec"
	"strings"
)

// StageFiles stages exported palette files for git commit.
// Silently does nothing outside a git repo.
func (s *Storage) StageFiles(paths ...string) {
	s.gitAdd(paths...)
}

// gitAdd stages files to git. Silently fails if not a git repo.
func (s *Storage) gitAdd(paths ...string) {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}

	if len(existing) == 0 {
		return
	}

	args := append([]string{"add"}, existing...)
	cmd := exec.Command("git", args...)
	cmd.Dir = s.ProjectRoot
	_ = cmd.Run() // Ignore errors
}

// IsGitRepo checks if the project root is a git repository
func (s *Storage) IsGitRepo() bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = s.ProjectRoot
	return cmd.Run() == nil
}

// GitStatus returns the short git status of the palettes directory
func (s *Storage) GitStatus() string {
	cmd := exec.Command("git", "status", "--short", "--", s.PalettesDir)
	cmd.Dir = s.ProjectRoot
	output, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}

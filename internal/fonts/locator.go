package fonts

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
)

const (
	// DefaultPattern matches the FAU Sans Office font files
	DefaultPattern = "FAUSansOffice-*.ttf"
	// DefaultFamily is the family name stored in those files
	DefaultFamily = "FAUSans Office"
)

// ErrFontNotFound is returned when no usable font file was found
var ErrFontNotFound = errors.New("font not found")

// DefaultDirs lists the usual font directories of macOS, Linux and Windows
func DefaultDirs(home string) []string {
	return []string{
		"/Library/Fonts",
		filepath.Join(home, "Library/Fonts"),
		"/usr/local/share/fonts",
		"/usr/share/fonts",
		filepath.Join(home, ".fonts"),
		"C:/Windows/Fonts/",
		filepath.Join(home, "AppData/Local/Microsoft/Windows/Fonts"),
	}
}

// Locator scans font directories for one typeface
type Locator struct {
	Dirs     []string
	Pattern  string
	Family   string
	Manager  Manager
	Settings *Settings
	Logger   *slog.Logger
}

// NewLocator creates a Locator for FAU Sans Office with the default directories
func NewLocator(m Manager, s *Settings, logger *slog.Logger) *Locator {
	home, _ := os.UserHomeDir()
	return &Locator{
		Dirs:     DefaultDirs(home),
		Pattern:  DefaultPattern,
		Family:   DefaultFamily,
		Manager:  m,
		Settings: s,
		Logger:   logger,
	}
}

// Register adds every matching font file to the manager and, if the family
// became known, makes it the active sans-serif font.
func (l *Locator) Register() error {
	logger := l.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	found := false
	for _, dir := range l.Dirs {
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			continue
		}
		matches, err := l.find(dir)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", dir, err)
		}
		for _, path := range matches {
			if err := l.Manager.AddFont(path); err != nil {
				logger.Warn("font", "action", "skip", "path", path, "err", err)
				continue
			}
			if !found {
				logger.Info("font", "action", "register", "family", l.Family, "path", path,
					"hint", fmt.Sprintf("set the sans-serif family to %q to use it", l.Family))
			}
			found = true
		}
	}

	if !found || !slices.Contains(l.Manager.FontNames(), l.Family) {
		return fmt.Errorf("%w: could not find %q (%s) on your system; please install it manually and try again",
			ErrFontNotFound, l.Family, l.Pattern)
	}
	if l.Settings != nil {
		l.Settings.Family = "sans-serif"
		l.Settings.SansSerif = []string{l.Family}
	}
	return nil
}

// find returns the regular files below dir whose base name matches Pattern, sorted
func (l *Locator) find(dir string) ([]string, error) {
	if _, err := filepath.Match(l.Pattern, ""); err != nil {
		return nil, err
	}
	var matches []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subdirectories are skipped, not fatal.
			if d != nil && d.IsDir() && path != dir {
				return fs.SkipDir
			}
			return nil
		}
		if ok, _ := filepath.Match(l.Pattern, d.Name()); !ok {
			return nil
		}
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			matches = append(matches, path)
		}
		return nil
	})
	sort.Strings(matches)
	return matches, err
}

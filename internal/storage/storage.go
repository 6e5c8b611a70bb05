package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPalettesDir is where exported palette files go, relative to the root
const DefaultPalettesDir = "color_palettes"

// Storage handles the layout of exported palette files
type Storage struct {
	ProjectRoot string
	PalettesDir string
}

// New creates a new Storage instance. An empty root means the current
// directory; an empty dir means DefaultPalettesDir below the root.
func New(projectRoot, palettesDir string) *Storage {
	if projectRoot == "" {
		projectRoot, _ = os.Getwd()
	}
	if palettesDir == "" {
		palettesDir = filepath.Join(projectRoot, DefaultPalettesDir)
	} else if !filepath.IsAbs(palettesDir) {
		palettesDir = filepath.Join(projectRoot, palettesDir)
	}
	return &Storage{
		ProjectRoot: projectRoot,
		PalettesDir: palettesDir,
	}
}

// EnsurePalettesDir creates the palettes directory if it doesn't exist
func (s *Storage) EnsurePalettesDir() error {
	return os.MkdirAll(s.PalettesDir, 0755)
}

// FileName is the export file name for a generation, e.g. fau_colors_2024.gpl
func FileName(generation, ext string) string {
	return fmt.Sprintf("fau_colors_%s.%s", generation, ext)
}

// Path helpers
func (s *Storage) GPLPath(generation string) string {
	return filepath.Join(s.PalettesDir, FileName(generation, "gpl"))
}

func (s *Storage) TeXPath(generation string) string {
	return filepath.Join(s.PalettesDir, FileName(generation, "tex"))
}

func (s *Storage) YAMLPath(generation string) string {
	return filepath.Join(s.PalettesDir, FileName(generation, "yaml"))
}

func (s *Storage) OverviewPath(generation, ext string) string {
	return filepath.Join(s.PalettesDir, fmt.Sprintf("cms_%s.%s", generation, ext))
}

// WriteFile truncates or creates path and hands a buffered writer to fn.
// The file is closed on every path; the first error wins.
func WriteFile(path string, fn func(w *bufio.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

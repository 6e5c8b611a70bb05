// Package fonts finds the FAU Sans typeface on disk and makes it the active
// font of the plotting environment.
package fonts

import (
	"fmt"
	"os"
	"sort"

	"seehuhn.de/go/sfnt"
)

// Manager keeps track of the font files the plotting environment can use
type Manager interface {
	AddFont(path string) error
	FontNames() []string
}

// Settings is the font configuration of the plotting environment
type Settings struct {
	Family    string
	SansSerif []string
}

// Catalog is a Manager that reads family names from TrueType and OpenType files
type Catalog struct {
	families map[string][]string
}

// NewCatalog creates an empty Catalog
func NewCatalog() *Catalog {
	return &Catalog{families: make(map[string][]string)}
}

// AddFont parses the font at path and records its family
func (c *Catalog) AddFont(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening font: %w", err)
	}
	defer f.Close()

	info, err := sfnt.Read(f)
	if err != nil {
		return fmt.Errorf("reading font %s: %w", path, err)
	}
	if info.FamilyName == "" {
		return fmt.Errorf("font %s has no family name", path)
	}
	c.families[info.FamilyName] = append(c.families[info.FamilyName], path)
	return nil
}

// FontNames returns the known family names, sorted
func (c *Catalog) FontNames() []string {
	names := make([]string, 0, len(c.families))
	for name := range c.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Files returns the files registered for family
func (c *Catalog) Files(family string) []string {
	return append([]string(nil), c.families[family]...)
}

package export

import (
	"bufio"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lunit-heesungyang/fau-colors/internal/model"
	"github.com/lunit-heesungyang/fau-colors/internal/storage"
)

// Document is the YAML layout of an exported generation
type Document struct {
	Generation string     `yaml:"generation"`
	Colormaps  []Colormap `yaml:"colormaps"`
}

// Colormap is a named colormap with hex colours
type Colormap struct {
	Name   string  `yaml:"name"`
	Colors []Color `yaml:"colors"`
}

// Color is one colour entry; Label is empty for unlabelled colours
type Color struct {
	Label string `yaml:"label,omitempty"`
	Hex   string `yaml:"hex"`
}

// NewDocument converts cmaps to their YAML layout
func NewDocument(generation string, cmaps []model.Colormap) Document {
	doc := Document{Generation: generation}
	for _, cm := range cmaps {
		out := Colormap{Name: cm.Name}
		for i, c := range cm.Colors {
			entry := Color{Hex: c.Hex()}
			if i < len(cm.Labels) {
				entry.Label = cm.Labels[i]
			}
			out.Colors = append(out.Colors, entry)
		}
		doc.Colormaps = append(doc.Colormaps, out)
	}
	return doc
}

// YAML writes cmaps of a generation to folder/fileName, which must end with
// ".yaml" or ".yml"
func YAML(generation string, cmaps []model.Colormap, fileName, folder string) error {
	if err := checkExt(fileName, ".yaml", ".yml"); err != nil {
		return err
	}
	data, err := yaml.Marshal(NewDocument(generation, cmaps))
	if err != nil {
		return fmt.Errorf("marshaling colormaps: %w", err)
	}
	return storage.WriteFile(target(folder, fileName), func(w *bufio.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// ParseDocument reads a YAML export back
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing colormaps: %w", err)
	}
	return &doc, nil
}

// ToColormaps converts the document back to colormaps
func (d *Document) ToColormaps() ([]model.Colormap, error) {
	var out []model.Colormap
	for _, c := range d.Colormaps {
		cm := model.Colormap{Name: c.Name}
		for _, e := range c.Colors {
			rgb, err := model.ParseColor(e.Hex)
			if err != nil {
				return nil, fmt.Errorf("colormap %q: %w", c.Name, err)
			}
			cm.Colors = append(cm.Colors, rgb)
			if e.Label != "" {
				cm.Labels = append(cm.Labels, e.Label)
			}
		}
		out = append(out, cm)
	}
	return out, nil
}

package model

import (
	"errors"
	"fmt"
)

// ErrDuplicateName is returned when a palette already holds a colour name
var ErrDuplicateName = errors.New("duplicate color name")

// NamedColor is a single (name, colour) pair
type NamedColor struct {
	Name  string
	Color RGB
}

// Palette is an ordered collection of uniquely named colours
type Palette struct {
	Name   string
	Colors []NamedColor
}

// NewPalette creates a palette from the given pairs, in order
func NewPalette(name string, colors ...NamedColor) (*Palette, error) {
	p := &Palette{Name: name}
	for _, c := range colors {
		if err := p.Add(c.Name, c.Color); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Add appends a colour, rejecting names already in the palette
func (p *Palette) Add(name string, c RGB) error {
	if p.Get(name) != nil {
		return fmt.Errorf("palette %q: %w: %s", p.Name, ErrDuplicateName, name)
	}
	p.Colors = append(p.Colors, NamedColor{Name: name, Color: c})
	return nil
}

// Get finds a colour by name
func (p *Palette) Get(name string) *NamedColor {
	for i := range p.Colors {
		if p.Colors[i].Name == name {
			return &p.Colors[i]
		}
	}
	return nil
}

// Names returns the colour names in palette order
func (p *Palette) Names() []string {
	names := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		names[i] = c.Name
	}
	return names
}

// RGBs returns the colours in palette order
func (p *Palette) RGBs() []RGB {
	out := make([]RGB, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = c.Color
	}
	return out
}

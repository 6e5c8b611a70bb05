package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lunit-heesungyang/fau-colors/internal/model"
	"github.com/lunit-heesungyang/fau-colors/internal/palettes"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestGPL(t *testing.T) {
	dir := t.TempDir()
	cmaps := []model.Colormap{{Colors: []model.RGB{{R: 1}, {G: 1}}}}
	if err := GPL(cmaps, "test.gpl", dir); err != nil {
		t.Fatal(err)
	}

	want := "GIMP Palette\nName: test\n#\n255   0   0\n  0 255   0"
	if d := cmp.Diff(want, readFile(t, filepath.Join(dir, "test.gpl"))); d != "" {
		t.Errorf("unexpected file (-want +got):\n%s", d)
	}
}

func TestGPLChainsColormapsAndTruncates(t *testing.T) {
	cmaps := []model.Colormap{
		{Colors: []model.RGB{{R: 0.999, G: 0.5, B: 0.0019}}},
		{Colors: []model.RGB{{R: 1, G: 1, B: 1}}},
	}
	got := FormatGPL(cmaps, "x")
	want := "GIMP Palette\nName: x\n#\n254 127   0\n255 255 255"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestGPLOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.gpl")
	if err := os.WriteFile(path, []byte(strings.Repeat("junk\n", 100)), 0644); err != nil {
		t.Fatal(err)
	}
	if err := GPL([]model.Colormap{{Colors: []model.RGB{{}}}}, "p.gpl", dir); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, path); got != "GIMP Palette\nName: p\n#\n  0   0   0" {
		t.Errorf("file not overwritten: %q", got)
	}
}

func TestInvalidFileNames(t *testing.T) {
	dir := t.TempDir()
	cmaps := palettes.V2019.Colormaps()
	testCases := []struct {
		name string
		fn   func() error
	}{
		{"gpl", func() error { return GPL(cmaps, "palette.txt", dir) }},
		{"gpl-bare", func() error { return GPL(cmaps, "palettegpl", dir) }},
		{"tex", func() error { return TeX(cmaps, "colors.gpl", dir) }},
		{"yaml", func() error { return YAML("2019", cmaps, "colors.json", dir) }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.fn(); !errors.Is(err, ErrInvalidFileName) {
				t.Errorf("got %v, want ErrInvalidFileName", err)
			}
		})
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("invalid names created %d files", len(entries))
	}
}

func TestTeXDedupAndSort(t *testing.T) {
	red := model.RGB{R: 1}
	cmaps := []model.Colormap{
		{Name: "one", Colors: []model.RGB{{G: 1}, red}, Labels: []string{"b", "a"}},
		{Name: "two", Colors: []model.RGB{red, {B: 0.5}}, Labels: []string{"a", "c"}},
	}
	dir := t.TempDir()
	if err := TeX(cmaps, "colors.tex", dir); err != nil {
		t.Fatal(err)
	}

	want := "% Tex color file defining the FAU colors.\n" +
		"% To use, you need to include the `xcolor` package (\\usepackage{xcolor} in your preamble).\n" +
		"% Then copy this file into your project and include it with `\\input{colors.tex}`.\n\n\n" +
		"\\definecolor{a}{rgb}{1.0, 0.0, 0.0}\n" +
		"\\definecolor{b}{rgb}{0.0, 1.0, 0.0}\n" +
		"\\definecolor{c}{rgb}{0.0, 0.0, 0.5}"
	if d := cmp.Diff(want, readFile(t, filepath.Join(dir, "colors.tex"))); d != "" {
		t.Errorf("unexpected file (-want +got):\n%s", d)
	}
}

func TestTeXSortsByFullLine(t *testing.T) {
	// Same name with two colours: both lines are kept, ordered by the channels.
	cmaps := []model.Colormap{
		{Name: "one", Colors: []model.RGB{{R: 1}}, Labels: []string{"x"}},
		{Name: "two", Colors: []model.RGB{{R: 0.5}}, Labels: []string{"x"}},
	}
	got, err := FormatTeX(cmaps, "c.tex")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(got, "\n")
	body := lines[len(lines)-2:]
	want := []string{
		"\\definecolor{x}{rgb}{0.5, 0.0, 0.0}",
		"\\definecolor{x}{rgb}{1.0, 0.0, 0.0}",
	}
	if d := cmp.Diff(want, body); d != "" {
		t.Errorf("unexpected lines (-want +got):\n%s", d)
	}
}

func TestFormatChannel(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{0.5, "0.5"},
		{4.0 / 255, "0.01568627450980392"},
	}
	for _, tc := range testCases {
		if got := formatChannel(tc.in); got != tc.want {
			t.Errorf("formatChannel(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cmaps := palettes.V2024.Colormaps()
	if err := YAML("2024", cmaps, "fau.yaml", dir); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "fau.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Generation != "2024" {
		t.Errorf("generation = %q", doc.Generation)
	}
	got, err := doc.ToColormaps()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(cmaps, got); d != "" {
		t.Errorf("round trip changed colormaps (-want +got):\n%s", d)
	}
}

func TestRampsExportTheirBaseColor(t *testing.T) {
	cmaps := palettes.V2019.Colormaps()
	departments := cmaps[0]
	for i, c := range palettes.Categories {
		ramp := cmaps[i+1]
		if ramp.Name != string(c) {
			t.Fatalf("colormap %d is %s, want %s", i+1, ramp.Name, c)
		}
		got := FormatGPL([]model.Colormap{{Colors: ramp.Colors[:1]}}, "x")
		want := FormatGPL([]model.Colormap{{Colors: departments.Colors[i : i+1]}}, "x")
		if got != want {
			t.Errorf("ramp %s starts with %q, want %q", ramp.Name, got, want)
		}
	}
}

func TestTeXDefinesEachLabelOnce(t *testing.T) {
	for _, g := range []palettes.Generation{palettes.V2019, palettes.V2021} {
		out, err := FormatTeX(g.Colormaps(), "c.tex")
		if err != nil {
			t.Fatal(err)
		}
		seen := make(map[string]string)
		for _, line := range strings.Split(out, "\n") {
			rest, ok := strings.CutPrefix(line, "\\definecolor{")
			if !ok {
				continue
			}
			name, _, _ := strings.Cut(rest, "}")
			if prev, dup := seen[name]; dup {
				t.Errorf("%s: %s defined twice:\n%s\n%s", g.Name(), name, prev, line)
			}
			seen[name] = line
		}
	}
}

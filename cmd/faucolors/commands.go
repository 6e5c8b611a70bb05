package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lunit-heesungyang/fau-colors/internal/colormap"
	"github.com/lunit-heesungyang/fau-colors/internal/export"
	"github.com/lunit-heesungyang/fau-colors/internal/fonts"
	"github.com/lunit-heesungyang/fau-colors/internal/palettes"
	"github.com/lunit-heesungyang/fau-colors/internal/render"
	"github.com/lunit-heesungyang/fau-colors/internal/storage"
	"github.com/lunit-heesungyang/fau-colors/internal/tui"
	"github.com/lunit-heesungyang/fau-colors/internal/ui"
)

// generation resolves the --generation flag, falling back to the config file
func generation(cmd *cobra.Command) (palettes.Generation, error) {
	name, _ := cmd.Flags().GetString("generation")
	if name == "" {
		name = state.cfg.Generation
	}
	return palettes.Lookup(name)
}

func newStorage(cmd *cobra.Command) *storage.Storage {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = state.cfg.OutputDir
	}
	return storage.New(state.root, out)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the colormaps of a generation",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := generation(cmd)
		if err != nil {
			return err
		}
		width := 0
		cmaps := g.Colormaps()
		for _, cm := range cmaps {
			width = max(width, len(cm.Name))
		}
		for _, cm := range cmaps {
			fmt.Printf("%-*s %s\n", width, cm.Name, ui.Strip(cm.Colors, 3))
		}
		return nil
	},
}

var blendCmd = &cobra.Command{
	Use:   "blend <color> [fraction...]",
	Short: "Blend white toward a color at the given fractions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fractions := colormap.LightnessLevels
		if len(args) > 1 {
			fractions = nil
			for _, a := range args[1:] {
				f, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("parsing fraction %q: %w", a, err)
				}
				fractions = append(fractions, f)
			}
		}
		ramp, err := colormap.Blend(args[0], fractions)
		if err != nil {
			return err
		}
		for i, c := range ramp {
			fmt.Printf("%5.3f %s %s\n", fractions[i], ui.Swatch(c, 4), c.Hex())
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write palette files for design tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := generation(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		stage, _ := cmd.Flags().GetBool("stage")

		s := newStorage(cmd)
		if err := s.EnsurePalettesDir(); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}

		cmaps := g.Colormaps()
		var written []string
		want := func(f string) bool { return format == "all" || format == f }
		if want("gpl") {
			name := storage.FileName(g.Name(), "gpl")
			if err := export.GPL(cmaps, name, s.PalettesDir); err != nil {
				return err
			}
			written = append(written, s.GPLPath(g.Name()))
		}
		if want("tex") {
			name := storage.FileName(g.Name(), "tex")
			if err := export.TeX(cmaps, name, s.PalettesDir); err != nil {
				return err
			}
			written = append(written, s.TeXPath(g.Name()))
		}
		if want("yaml") {
			name := storage.FileName(g.Name(), "yaml")
			if err := export.YAML(g.Name(), cmaps, name, s.PalettesDir); err != nil {
				return err
			}
			written = append(written, s.YAMLPath(g.Name()))
		}
		if len(written) == 0 {
			return fmt.Errorf("unknown format %q (want gpl, tex, yaml or all)", format)
		}

		for _, p := range written {
			state.logger.Info("export", "generation", g.Name(), "path", p)
		}
		if stage && s.IsGitRepo() {
			s.StageFiles(written...)
			if st := s.GitStatus(); st != "" {
				fmt.Println(st)
			}
		}
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register [generation...]",
	Short: "Register generations into one colormap table and report conflicts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{palettes.Latest.Name()}
		}
		store := colormap.NewStore()
		adapter := colormap.NewAdapter(store, state.logger)
		for _, name := range args {
			g, err := palettes.Lookup(name)
			if err != nil {
				return err
			}
			if err := adapter.RegisterAll(g.Colormaps()); err != nil {
				return fmt.Errorf("generation %s: %w", g.Name(), err)
			}
			fmt.Printf("%s %s: %d colormaps\n", ui.IconSuccess, g.Name(), len(palettes.Names(g)))
		}
		fmt.Println(strings.Join(store.Names(), " "))
		return nil
	},
}

var fontCmd = &cobra.Command{
	Use:   "font",
	Short: "Find and activate the FAU Sans Office font",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := fonts.NewCatalog()
		var settings fonts.Settings
		l := fonts.NewLocator(catalog, &settings, state.logger)
		state.cfg.Apply(l)
		if err := l.Register(); err != nil {
			return err
		}
		fmt.Printf("%s font.family = %s\n", ui.IconFont, settings.Family)
		fmt.Printf("%s font.sans-serif = %s\n", ui.IconFont, strings.Join(settings.SansSerif, ", "))
		for _, f := range catalog.Files(l.Family) {
			fmt.Println("  " + f)
		}
		return nil
	},
}

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Render an overview image of every colormap of a generation",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := generation(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		scale, _ := cmd.Flags().GetInt("scale")

		store := colormap.NewStore()
		if err := colormap.NewAdapter(store, state.logger).RegisterAll(g.Colormaps()); err != nil {
			return err
		}
		var maps []render.Named
		for _, name := range palettes.Names(g) {
			c, _ := store.Continuous(name)
			maps = append(maps, render.Named{Name: name, Map: c})
		}

		var buf bytes.Buffer
		switch format {
		case "svg":
			err = render.SVG(&buf, maps)
		case "png":
			err = render.PNG(&buf, maps, scale)
		default:
			return fmt.Errorf("unknown format %q (want svg or png)", format)
		}
		if err != nil {
			return err
		}

		s := newStorage(cmd)
		if err := s.EnsurePalettesDir(); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		path := s.OverviewPath(g.Name(), format)
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing overview: %w", err)
		}
		state.logger.Info("overview", "generation", g.Name(), "path", path)
		return nil
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse palettes interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		model := tui.New(palettes.Generations, colormap.NewStore(), state.logger)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{listCmd, exportCmd, overviewCmd} {
		c.Flags().StringP("generation", "g", "", "Release generation (default: latest)")
	}
	for _, c := range []*cobra.Command{exportCmd, overviewCmd} {
		c.Flags().StringP("out", "o", "", "Output directory (default: color_palettes)")
	}
	exportCmd.Flags().StringP("format", "f", "all", "gpl, tex, yaml or all")
	exportCmd.Flags().Bool("stage", false, "git add the written files")
	overviewCmd.Flags().StringP("format", "f", "svg", "svg or png")
	overviewCmd.Flags().Int("scale", 4, "PNG upscaling factor")
}

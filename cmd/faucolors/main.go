package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lunit-heesungyang/fau-colors/internal/config"
)

// app carries what every sub-command needs
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	root   string
}

var state app

var rootCmd = &cobra.Command{
	Use:   "faucolors",
	Short: "FAU brand colors, colormaps and palette exports",
	Long: `faucolors gives access to the FAU brand colors of every release
generation (2019, 2021, 2024).

Features:
  - List colormaps and their colors in the terminal
  - Derive lightness ramps from a base color
  - Export GIMP palettes, LaTeX color definitions and YAML
  - Register colormaps and detect name conflicts between generations
  - Locate and activate the FAU Sans Office font
  - Render overview images and browse palettes interactively`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		verbose, _ := cmd.Flags().GetBool("verbose")
		root, _ := cmd.Flags().GetString("path")

		cfg, err := config.Load(configPath(path, root))
		if err != nil {
			return err
		}

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		state = app{
			cfg:    cfg,
			logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
			root:   root,
		}
		return nil
	},
}

// configPath resolves a relative config file against the project root
func configPath(path, root string) string {
	if root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().StringP("path", "p", "", "Project root path (default: current directory)")

	rootCmd.AddCommand(listCmd, blendCmd, exportCmd, registerCmd, fontCmd, overviewCmd, browseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

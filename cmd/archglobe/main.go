package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"archglobe/internal/catalog"
	"archglobe/internal/config"
	"archglobe/internal/logging"
	"archglobe/internal/theme"
	"archglobe/internal/tui"
)

// app is what PersistentPreRunE resolves for the subcommands.
type app struct {
	cfg    config.Config
	log    zerolog.Logger
	closer io.Closer
}

// close releases the log file. Commands defer it themselves because cobra
// skips the post-run hooks when RunE fails.
func (a app) close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		light      bool
		a          app
	)

	root := &cobra.Command{
		Use:   "archglobe",
		Short: "Interactive 3D globe of historic buildings",
		Long: `archglobe renders a rotatable globe in the terminal with a marker for
every building in the catalog. Hover a marker to see its name, click it
to open the details card.

Run without arguments to start the interactive interface.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if light {
				cfg.Theme.Dark = false
			}
			log, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
			if err != nil {
				return err
			}
			a = app{cfg: cfg, log: log, closer: closer}
			log.Info().
				Str("command", cmd.Name()).
				Bool("dark", cfg.Theme.Dark).
				Str("texture", cfg.Globe.Texture).
				Strs("catalogs", cfg.Catalog.Paths).
				Msg("starting")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(a)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (yaml, json or toml)")
	flags.StringSlice("catalog", nil, "extra catalog file (csv, geojson or kml); repeatable")
	flags.String("texture", "", "globe texture (geojson, png or jpeg); empty uses the built-in land mask")
	flags.BoolVar(&light, "light", false, "start in light mode")
	flags.String("log-file", "", "log file; empty keeps the configured one")

	_ = viper.BindPFlag("catalog.paths", flags.Lookup("catalog"))
	_ = viper.BindPFlag("globe.texture", flags.Lookup("texture"))
	_ = viper.BindPFlag("log.file", flags.Lookup("log-file"))

	root.AddCommand(newListCmd(&a))
	return root
}

func loadCatalog(cfg config.Config, log zerolog.Logger) (*catalog.Catalog, error) {
	var base []catalog.Building
	if cfg.Catalog.Builtin {
		base = catalog.Builtin()
	}
	extra := make([][]catalog.Building, 0, len(cfg.Catalog.Paths))
	for _, p := range cfg.Catalog.Paths {
		recs, err := catalog.Load(p)
		if err != nil {
			log.Error().Err(err).Str("path", p).Msg("catalog import failed")
			return nil, err
		}
		log.Info().Str("path", p).Int("records", len(recs)).Msg("catalog imported")
		extra = append(extra, recs)
	}
	c, err := catalog.Merge(base, extra...)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	log.Info().Int("buildings", c.Len()).Msg("catalog ready")
	return c, nil
}

func runInteractive(a app) error {
	defer a.close()
	cat, err := loadCatalog(a.cfg, a.log)
	if err != nil {
		return err
	}
	m := tui.New(tui.Options{
		Catalog: cat,
		Theme:   theme.New(a.cfg.Theme.Dark),
		Config:  a.cfg,
		Logger:  a.log,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		a.log.Error().Err(err).Msg("ui exited with error")
		return err
	}
	a.log.Info().Msg("bye")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

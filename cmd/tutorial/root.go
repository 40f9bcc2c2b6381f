package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gltutorials/app"
	"gltutorials/logging"
	"gltutorials/tutorials"
)

type runFunc func(cfg app.Config, t tutorials.Tutorial, opts tutorials.Options) error

type rootFlags struct {
	config   string
	title    string
	width    int
	height   int
	watch    bool
	logLevel string
}

func newRootCmd(run runFunc) *cobra.Command {
	var flags rootFlags
	defaults := app.DefaultConfig()

	root := &cobra.Command{
		Use:          "tutorial",
		Short:        "Run an OpenGL tutorial scene",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "YAML config file")
	pf.StringVar(&flags.title, "title", "", "window title (defaults to the tutorial's title)")
	pf.IntVar(&flags.width, "width", defaults.Width, "window width in pixels")
	pf.IntVar(&flags.height, "height", defaults.Height, "window height in pixels")
	pf.BoolVar(&flags.watch, "watch", false, "reload shaders when their files change")
	pf.StringVar(&flags.logLevel, "log-level", defaults.LogLevel, "debug, info, warn or error")

	for _, t := range tutorials.All() {
		root.AddCommand(newTutorialCmd(t, &flags, run))
	}
	return root
}

func newTutorialCmd(t tutorials.Tutorial, flags *rootFlags, run runFunc) *cobra.Command {
	var opts tutorials.Options
	cmd := &cobra.Command{
		Use:   t.Name,
		Short: t.Short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, t, flags)
			if err != nil {
				return err
			}
			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logging.SetLogger(logging.NewTextLogger(os.Stderr, level))
			return run(cfg, t, opts)
		},
	}
	if t.Name == "lighting" {
		cmd.Flags().StringVar(&opts.Model, "model", "", "OBJ, glTF or GLB model drawn instead of the cube")
	}
	return cmd
}

// resolveConfig layers defaults, the config file and explicitly set flags,
// in that order.
func resolveConfig(cmd *cobra.Command, t tutorials.Tutorial, flags *rootFlags) (app.Config, error) {
	cfg := app.DefaultConfig()
	if flags.config != "" {
		loaded, err := app.LoadConfig(flags.config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if cfg.Title == app.DefaultConfig().Title {
		cfg.Title = t.Title
	}

	changed := cmd.Flags().Changed
	if changed("title") {
		cfg.Title = flags.title
	}
	if changed("width") {
		cfg.Width = flags.width
	}
	if changed("height") {
		cfg.Height = flags.height
	}
	if changed("watch") {
		cfg.WatchShaders = flags.watch
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

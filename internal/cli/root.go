package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/spritefold/spritefold/internal/catalog"
	"github.com/spritefold/spritefold/internal/compose"
	"github.com/spritefold/spritefold/internal/pack"
)

var (
	version string // semantic version
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information shown by --version. Called by
// the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// options holds the command-line flags for the pack run.
type options struct {
	width        int    // atlas width in pixels (required)
	height       int    // atlas height in pixels (required)
	spriteWidth  int    // fixed cell width; grid mode when set with spriteHeight
	spriteHeight int    // fixed cell height
	background   string // canvas fill color, "#RRGGBB[AA]"; empty = transparent
	mapping      string // mapping sidecar path; empty = derive from atlas path
	configPath   string // optional TOML file supplying defaults
}

// Execute runs the spritefold CLI and returns an error if the run fails.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

// newRootCmd builds the root command with all flags bound.
func newRootCmd() *cobra.Command {
	var verbose bool
	var opts options

	root := &cobra.Command{
		Use:   "spritefold <input_dir> <output_dir> <output_filename>",
		Short: "Pack a directory of images into a sprite-sheet atlas",
		Long: `Spritefold packs every supported image (PNG, JPEG, WebP) from a directory
onto a single fixed-size canvas and records where each sprite landed in a
JSON mapping file, so game engines and UI toolkits can slice the atlas back
into individual sprites.`,
		Version:      version,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1], args[2], &opts)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("spritefold %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().IntVar(&opts.width, "width", 0, "atlas width in pixels (required)")
	root.Flags().IntVar(&opts.height, "height", 0, "atlas height in pixels (required)")
	root.Flags().IntVar(&opts.spriteWidth, "sprite-width", 0, "fixed sprite cell width (grid mode)")
	root.Flags().IntVar(&opts.spriteHeight, "sprite-height", 0, "fixed sprite cell height (grid mode)")
	root.Flags().StringVar(&opts.background, "background", "", "canvas background color, #RRGGBB or #RRGGBBAA (default transparent)")
	root.Flags().StringVar(&opts.mapping, "mapping", "", "mapping file path (default: atlas path with .json extension)")
	root.Flags().StringVar(&opts.configPath, "config", "", "TOML file supplying flag defaults")

	return root
}

// applyConfig fills in options the user did not set on the command line.
func applyConfig(cmd *cobra.Command, opts *options, cfg Config) {
	set := cmd.Flags().Changed
	if !set("width") && cfg.Width > 0 {
		opts.width = cfg.Width
	}
	if !set("height") && cfg.Height > 0 {
		opts.height = cfg.Height
	}
	if !set("sprite-width") && cfg.SpriteWidth > 0 {
		opts.spriteWidth = cfg.SpriteWidth
	}
	if !set("sprite-height") && cfg.SpriteHeight > 0 {
		opts.spriteHeight = cfg.SpriteHeight
	}
	if !set("background") && cfg.Background != "" {
		opts.background = cfg.Background
	}
	if !set("mapping") && cfg.Mapping != "" {
		opts.mapping = cfg.Mapping
	}
}

func run(cmd *cobra.Command, inputDir, outputDir, outputName string, opts *options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	start := time.Now()

	if opts.configPath != "" {
		cfg, err := loadConfig(opts.configPath)
		if err != nil {
			return err
		}
		applyConfig(cmd, opts, cfg)
	}
	if opts.width <= 0 || opts.height <= 0 {
		return errors.New("--width and --height are required and must be positive")
	}

	spec := pack.CanvasSpec{
		MaxWidth:   opts.width,
		MaxHeight:  opts.height,
		CellWidth:  opts.spriteWidth,
		CellHeight: opts.spriteHeight,
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	background := compose.Transparent
	if opts.background != "" {
		c, err := parseBackground(opts.background)
		if err != nil {
			return err
		}
		background = c
	}

	images, err := catalog.Load(ctx, inputDir)
	if err != nil {
		return err
	}
	logger.Info("loaded catalog", "images", len(images), "dir", inputDir)

	items := make([]pack.Item, len(images))
	for i, img := range images {
		items[i] = pack.Item{ID: img.ID, Width: img.Width, Height: img.Height}
	}

	placements, err := pack.Pack(items, spec)
	if err != nil {
		return err
	}
	if spec.GridMode() {
		logger.Debug("grid layout",
			"columns", spec.MaxWidth/spec.CellWidth,
			"rows", spec.MaxHeight/spec.CellHeight)
	}
	for _, p := range placements {
		logger.Debug("placed sprite", "id", p.ID, "x", p.X, "y", p.Y)
	}

	canvas, err := compose.Render(images, placements, spec, background)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	atlasPath := filepath.Join(outputDir, defaultExt(outputName))
	if err := compose.WriteAtlas(canvas, atlasPath); err != nil {
		return err
	}

	mappingPath := opts.mapping
	if mappingPath == "" {
		mappingPath = stripExt(atlasPath) + ".json"
	}
	mapping, err := compose.BuildMapping(images, placements, spec)
	if err != nil {
		return err
	}
	if err := compose.WriteMapping(mapping, mappingPath); err != nil {
		return err
	}

	logger.Info("atlas written",
		"atlas", atlasPath,
		"mapping", mappingPath,
		"sprites", len(placements),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// defaultExt appends .png when the output filename has no extension.
func defaultExt(name string) string {
	if filepath.Ext(name) == "" {
		return name + ".png"
	}
	return name
}

func stripExt(path string) string {
	return path[:len(path)-len(filepath.Ext(path))]
}

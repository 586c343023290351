// Package cli implements the art-exposure command-line interface.
//
// The root command runs one pass of the exposure pipeline: search the
// collection, pick a random artwork with an image, frame it and set it as
// the desktop wallpaper. Settings come from a TOML file and are overridden
// by flags.
//
// # Commands
//
//   - art-exposure: run the pipeline
//   - config init: write the default config file
//   - config path: print the config file location
//   - version: print build information
//
// # Logging
//
// Pipeline progress goes through charmbracelet/log on stderr. --verbose
// (-v) enables debug output, which includes every missed attempt.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/handiism/art-exposure/internal/config"
	"github.com/handiism/art-exposure/internal/exposure"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  = ""    // git commit SHA
	date    = ""    // build timestamp
)

// SetVersion sets the build information printed by the version command.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	date = d
}

// CLI holds the shared state of all commands.
type CLI struct {
	out    io.Writer
	errOut io.Writer
	logger *log.Logger
	flags  flags

	// managerOpts are passed to every exposure.Manager the root command
	// creates.
	managerOpts []exposure.Option
}

// New creates a CLI printing results to out and logs to errOut.
func New(out, errOut io.Writer, opts ...exposure.Option) *CLI {
	return &CLI{
		out:         out,
		errOut:      errOut,
		logger:      newLogger(errOut, log.InfoLevel),
		managerOpts: opts,
	}
}

// SetLogLevel changes the log level of all commands.
func (c *CLI) SetLogLevel(level log.Level) {
	c.logger.SetLevel(level)
}

// flags are the root command options. Only flags set on the command line
// override the config file.
type flags struct {
	configPath  string
	verbose     bool
	query       string
	caption     bool
	font        string
	maxTries    int
	border      int
	height      int
	output      string
	hasImages   bool
	noWallpaper bool
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	f := &c.flags
	defaults := config.DefaultSettings()

	root := &cobra.Command{
		Use:   "art-exposure",
		Short: "Set a random Met Museum artwork as your wallpaper",
		Long: `art-exposure searches the Metropolitan Museum of Art open access collection,
picks a random artwork that has an image, frames it with a transparent border
and sets it as the desktop wallpaper.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if f.verbose {
				c.SetLogLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := c.loadSettings(cmd, f)
			if err != nil {
				return err
			}
			return c.run(cmd.Context(), settings)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "TOML config file (default <UserConfigDir>/art-exposure/config.toml)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")

	fl := root.Flags()
	fl.StringVarP(&f.query, "query", "q", defaults.Query, "search term")
	fl.BoolVar(&f.caption, "caption", defaults.Caption, "render title and artist under the image")
	fl.StringVar(&f.font, "font", defaults.Font, "font file path or system font name (implies --caption)")
	fl.IntVar(&f.maxTries, "max-tries", defaults.MaxTries, "number of random objects to try")
	fl.IntVar(&f.border, "border", defaults.BorderWidth, "border width in pixels")
	fl.IntVar(&f.height, "height", defaults.DisplayHeight, "target image height; 0 probes the main display")
	fl.StringVarP(&f.output, "output", "o", "", "output directory (default ~/.art-exposure)")
	fl.BoolVar(&f.hasImages, "has-images", defaults.HasImages, "only search objects that have images")
	fl.BoolVar(&f.noWallpaper, "no-wallpaper", false, "save the image without setting the wallpaper")

	root.AddCommand(c.configCommand(f))
	root.AddCommand(c.versionCommand())

	return root
}

// loadSettings reads the config file and applies the flags that were set.
func (c *CLI) loadSettings(cmd *cobra.Command, f *flags) (*config.Settings, error) {
	path, err := configPath(f)
	if err != nil {
		return nil, err
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Loaded config", "path", path)

	changed := cmd.Flags().Changed
	if changed("query") {
		settings.Query = f.query
	}
	if changed("caption") {
		settings.Caption = f.caption
	}
	if changed("font") {
		settings.Font = f.font
		settings.Caption = true
	}
	if changed("max-tries") {
		settings.MaxTries = f.maxTries
	}
	if changed("border") {
		settings.BorderWidth = f.border
	}
	if changed("height") {
		settings.DisplayHeight = f.height
	}
	if changed("output") {
		settings.OutputDir = f.output
	}
	if changed("has-images") {
		settings.HasImages = f.hasImages
	}
	if changed("no-wallpaper") {
		settings.SetWallpaper = !f.noWallpaper
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	c.logger.Debug("Settings", "value", settings)
	return settings, nil
}

func configPath(f *flags) (string, error) {
	if f.configPath != "" {
		return f.configPath, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return path, nil
}

// versionCommand creates the "version" subcommand.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(c.out, "art-exposure %s\n", version)
			if commit != "" {
				fmt.Fprintf(c.out, "commit: %s\n", commit)
			}
			if date != "" {
				fmt.Fprintf(c.out, "built: %s\n", date)
			}
		},
	}
}

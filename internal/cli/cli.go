package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/riverspiral/pkg/buildinfo"
	"github.com/matzehuels/riverspiral/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "riverspiral"

	// configFile is the name of the optional per-user config file.
	configFile = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Riverspiral draws the world's rivers as spirals",
		Long: `Riverspiral renders a river dataset as a poster: rivers are grouped by
continent and each one is drawn as a spiral whose length, colour and stroke
encode the river's length, average temperature and discharge.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/riverspiral/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// defaultConfigPath returns the per-user config file if it exists.
func defaultConfigPath() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, configFile)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// =============================================================================
// Options Helpers
// =============================================================================

// optionFlags are the pipeline options shared by every command. A flag only
// overrides the config file when it was set explicitly.
type optionFlags struct {
	config   string
	title    string
	width    float64
	columns  int
	tieBreak string
}

func (f *optionFlags) register(cmd *cobra.Command) {
	defaults := pipeline.DefaultOptions()
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "TOML config file (default: ~/.config/riverspiral/config.toml if present)")
	cmd.Flags().StringVar(&f.title, "title", defaults.Title, "poster title")
	cmd.Flags().Float64VarP(&f.width, "width", "w", defaults.Width, "canvas width in pixels")
	cmd.Flags().IntVar(&f.columns, "columns", defaults.Layout.Columns, "rivers per row")
	cmd.Flags().StringVar(&f.tieBreak, "tie-break", defaults.TieBreak, "order of equally sized continents: alphabetical, first-seen")
}

// options loads the config file, if any, and applies explicitly set flags.
func (f *optionFlags) options(cmd *cobra.Command, input string) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()

	path := f.config
	if path == "" {
		path = defaultConfigPath()
	}
	if path != "" {
		loaded, err := pipeline.LoadConfig(path)
		if err != nil {
			return pipeline.Options{}, err
		}
		loggerFromContext(cmd.Context()).Debug("loaded config", "path", path)
		opts = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		opts.Title = f.title
	}
	if flags.Changed("width") {
		opts.Width = f.width
	}
	if flags.Changed("columns") {
		opts.Layout.Columns = f.columns
	}
	if flags.Changed("tie-break") {
		opts.TieBreak = f.tieBreak
	}
	if input != "" {
		opts.Input = input
	}
	return opts, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	formats := strings.Split(s, ",")
	for i, f := range formats {
		formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	return formats
}

package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bleperm/bleperm/internal/branding"
	"github.com/bleperm/bleperm/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevel string
	verbose  bool
	noColor  bool

	// logger is configured by the root command before any subcommand runs.
	logger = logrus.New()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging (same as --log-level=debug)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` adds the permission and capability declarations a Bluetooth LE
peripheral needs to an app's AndroidManifest.xml and Info.plist. Existing entries
are never removed or reordered, and running it twice changes nothing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		l, err := configureLogger(cmd, "verbose")
		if err != nil {
			return err
		}
		l.SetOutput(cmd.ErrOrStderr())
		logger = l

		color.NoColor = !colorEnabled()
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// colorEnabled reports whether output should carry ANSI colors.
func colorEnabled() bool {
	if noColor || !config.Color() {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

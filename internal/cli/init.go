package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bleperm/bleperm/internal/branding"
	"github.com/bleperm/bleperm/internal/project"
	"github.com/bleperm/bleperm/internal/version"
)

var (
	initAndroid string
	initIOS     string
)

func init() {
	initCmd.Flags().StringVar(&initAndroid, "android", "", "Path to AndroidManifest.xml (default: discovered)")
	initCmd.Flags().StringVar(&initIOS, "ios", "", "Path to Info.plist (default: discovered)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [DIR]",
	Short: "Create .bleperm/project.yaml",
	Long: `Create a project file recording where the app's manifests live.

Without --android/--ios, conventional locations (React Native, Capacitor,
Flutter, Cordova, plain Gradle/Xcode) are searched. When several candidates
are found and stdin is a terminal, you are asked to pick one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		var in io.Reader
		if isatty.IsTerminal(os.Stdin.Fd()) {
			in = os.Stdin
		}
		return runProjectInit(cmd.OutOrStdout(), in, root)
	},
}

// runProjectInit writes the project file for root. A nil in disables
// prompting.
func runProjectInit(w io.Writer, in io.Reader, dir string) error {
	root, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}
	found := project.Discover(root)

	android, err := pickPath(w, in, root, "AndroidManifest.xml", initAndroid, found.AndroidManifests)
	if err != nil {
		return err
	}
	ios, err := pickPath(w, in, root, "Info.plist", initIOS, found.InfoPlists)
	if err != nil {
		return err
	}
	if android == "" && ios == "" {
		return fmt.Errorf("no AndroidManifest.xml or Info.plist found under %s; pass --android or --ios", dir)
	}

	cfg := &project.Config{}
	if !version.IsDev(buildVersion) {
		cfg.Requires = ">= " + strings.TrimPrefix(buildVersion, "v")
	}
	if android != "" {
		cfg.Android = &project.AndroidConfig{Manifest: android}
	}
	if ios != "" {
		cfg.IOS = &project.IOSConfig{Plist: ios}
	}

	if err := project.Init(root, cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "Created %s\n", project.ConfigPath(root))
	if android != "" {
		fmt.Fprintf(w, "  android: %s\n", android)
	}
	if ios != "" {
		fmt.Fprintf(w, "  ios:     %s\n", ios)
	}
	fmt.Fprintf(w, "\nRun '%s apply' to add the Bluetooth LE declarations.\n", branding.CLIName())
	return nil
}

// pickPath returns the flag value if set, otherwise the single candidate, or
// asks when there are several.
func pickPath(w io.Writer, in io.Reader, root, what, flag string, candidates []string) (string, error) {
	if flag != "" {
		abs, err := filepath.Abs(flag)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", flag, err)
		}
		return project.Relative(root, abs), nil
	}
	switch {
	case len(candidates) == 0:
		return "", nil
	case len(candidates) == 1:
		return candidates[0], nil
	case in == nil:
		return "", fmt.Errorf("found %d %s files (%s); pass one explicitly", len(candidates), what, strings.Join(candidates, ", "))
	}
	return project.Choose(in, w, "Select "+what+":", candidates)
}

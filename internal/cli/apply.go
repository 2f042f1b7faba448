package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bleperm/bleperm/internal/compose"
	"github.com/bleperm/bleperm/internal/workspace"
)

var (
	applyTargets targetFlags
	applyDryRun  bool
)

func init() {
	applyTargets.register(applyCmd)
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Print a unified diff instead of writing files")
	rootCmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Add Bluetooth LE declarations to the app manifests",
	Long: `Add the Bluetooth LE permission and capability declarations to
AndroidManifest.xml and Info.plist.

Documents come from --android/--ios or from .bleperm/project.yaml. Files that
already carry every declaration are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := applyTargets.resolve()
		if err != nil {
			return err
		}

		ws := &workspace.Workspace{
			AndroidManifest: t.android,
			InfoPlist:       t.ios,
			DryRun:          applyDryRun,
			Color:           !color.NoColor,
			Log:             logger.WithField("command", "apply"),
		}
		c := compose.New(ws.Log)
		c.Descriptions = t.descriptions

		runErr := c.Run(ws)
		printResults(cmd.OutOrStdout(), ws.Results, applyDryRun)
		return runErr
	},
}

func printResults(w io.Writer, results []workspace.Result, dryRun bool) {
	for _, r := range results {
		switch {
		case !r.Changed:
			fmt.Fprintf(w, "%s %s\n", color.GreenString("[ OK ]"), r.Path)
		case dryRun:
			fmt.Fprint(w, r.Diff)
		default:
			fmt.Fprintf(w, "%s %s\n", color.YellowString("[EDIT]"), r.Path)
		}
	}
}

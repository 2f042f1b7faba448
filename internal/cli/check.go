package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/bleperm/bleperm/internal/androidmanifest"
	"github.com/bleperm/bleperm/internal/branding"
	"github.com/bleperm/bleperm/internal/infoplist"
)

// ErrMissingDeclarations is returned by check when a document lacks any of
// the Bluetooth LE declarations.
var ErrMissingDeclarations = errors.New("missing Bluetooth LE declarations")

var checkTargets targetFlags

func init() {
	checkTargets.register(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report missing Bluetooth LE declarations",
	Long: `Report which Bluetooth LE declarations are missing without changing
any file. Exits non-zero when anything is missing, for use in CI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := checkTargets.resolve()
		if err != nil {
			return err
		}
		return runCheck(cmd.OutOrStdout(), t)
	},
}

func runCheck(w io.Writer, t *targets) error {
	var result *multierror.Error
	missing := 0

	if t.android != "" {
		n, err := checkDocument(w, t.android, func() ([]string, error) {
			doc, err := androidmanifest.Load(t.android)
			if err != nil {
				return nil, err
			}
			return androidmanifest.Missing(doc.Tree()), nil
		})
		missing += n
		result = multierror.Append(result, err)
	}

	if t.ios != "" {
		n, err := checkDocument(w, t.ios, func() ([]string, error) {
			doc, err := infoplist.Load(t.ios)
			if err != nil {
				return nil, err
			}
			tree := doc.Tree()
			if err := infoplist.Validate(tree); err != nil {
				return nil, fmt.Errorf("checking %s: %w", t.ios, err)
			}
			return infoplist.Missing(tree), nil
		})
		missing += n
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	if missing > 0 {
		fmt.Fprintf(w, "\nRun '%s apply' to add them.\n", branding.CLIName())
		return fmt.Errorf("%w: %d", ErrMissingDeclarations, missing)
	}
	return nil
}

func checkDocument(w io.Writer, path string, missingFn func() ([]string, error)) (int, error) {
	missing, err := missingFn()
	if err != nil {
		fmt.Fprintf(w, "%s %s\n", color.RedString("[FAIL]"), path)
		return 0, err
	}
	if len(missing) == 0 {
		fmt.Fprintf(w, "%s %s\n", color.GreenString("[ OK ]"), path)
		return 0, nil
	}
	fmt.Fprintf(w, "%s %s\n", color.YellowString("[MISS]"), path)
	for _, m := range missing {
		fmt.Fprintf(w, "       %s\n", m)
	}
	return len(missing), nil
}

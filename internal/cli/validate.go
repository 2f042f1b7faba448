package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/bleperm/bleperm/internal/project"
	"github.com/bleperm/bleperm/internal/version"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [PATH...]",
	Short: "Validate project files against the schema",
	Long: `Validate one or more project files against the embedded JSON schema.
Without arguments, the nearest .bleperm/project.yaml is validated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := args
		if len(paths) == 0 {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}
			root, err := project.FindRoot(cwd)
			if err != nil {
				return err
			}
			paths = []string{project.ConfigPath(root)}
		}
		return runValidate(cmd.OutOrStdout(), paths)
	},
}

func runValidate(w io.Writer, paths []string) error {
	var result *multierror.Error
	for _, p := range paths {
		if err := validateOne(w, p); err != nil {
			fmt.Fprintf(w, "%s %s\n", color.RedString("[FAIL]"), p)
			result = multierror.Append(result, fmt.Errorf("%s: %w", p, err))
			continue
		}
		fmt.Fprintf(w, "%s %s\n", color.GreenString("[ OK ]"), p)
	}
	return result.ErrorOrNil()
}

func validateOne(w io.Writer, path string) error {
	res, err := project.ValidateFile(path)
	if err != nil {
		return err
	}
	if !res.Valid {
		for _, issue := range res.Issues {
			loc := issue.Path
			if loc == "" {
				loc = "/"
			}
			fmt.Fprintf(w, "       %s: %s\n", loc, issue.Message)
		}
		return fmt.Errorf("%d schema issue(s)", len(res.Issues))
	}

	// The schema only knows requires is a string; check it parses as a range.
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", path, err)
	}
	var cfg project.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing project config: %w", err)
	}
	if _, err := version.Satisfies(cfg.Requires, "0.0.0"); err != nil {
		return err
	}
	return nil
}

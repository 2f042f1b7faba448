package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bleperm/bleperm/internal/branding"
	"github.com/bleperm/bleperm/internal/config"
	"github.com/bleperm/bleperm/internal/infoplist"
	"github.com/bleperm/bleperm/internal/project"
	"github.com/bleperm/bleperm/internal/version"
)

// targetFlags selects the documents a command works on.
type targetFlags struct {
	android    string
	ios        string
	projectDir string
}

func (f *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.android, "android", "", "Path to AndroidManifest.xml (overrides the project file)")
	cmd.Flags().StringVar(&f.ios, "ios", "", "Path to Info.plist (overrides the project file)")
	cmd.Flags().StringVar(&f.projectDir, "project", "", "Project directory (default: nearest directory with .bleperm/project.yaml)")
}

// targets are the resolved documents and description text for one run.
type targets struct {
	android      string
	ios          string
	descriptions infoplist.Descriptions
}

var errNoTargets = errors.New("no documents to patch")

// resolve merges flags, the project file, and user settings. Explicit flags
// win over the project file; project descriptions win over user settings.
func (f *targetFlags) resolve() (*targets, error) {
	t := &targets{
		android:      f.android,
		ios:          f.ios,
		descriptions: config.Descriptions(),
	}

	cfg, root, err := f.loadProject()
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		if err := version.Require(cfg.Requires, buildVersion); err != nil {
			return nil, err
		}
		if t.android == "" {
			t.android = cfg.AndroidManifestPath(root)
		}
		if t.ios == "" {
			t.ios = cfg.InfoPlistPath(root)
		}
		t.descriptions = mergeDescriptions(cfg.DescriptionOverrides(), t.descriptions)
	}

	if t.android == "" && t.ios == "" {
		return nil, fmt.Errorf("%w: pass --android/--ios or run '%s init'", errNoTargets, branding.CLIName())
	}
	return t, nil
}

// loadProject finds and loads the project file. Without --project, a missing
// project file is not an error when a document flag was given.
func (f *targetFlags) loadProject() (*project.Config, string, error) {
	if f.projectDir != "" {
		cfg, err := project.Load(f.projectDir)
		if err != nil {
			return nil, "", err
		}
		return cfg, f.projectDir, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("getting current directory: %w", err)
	}
	root, err := project.FindRoot(cwd)
	if err != nil {
		if f.android != "" || f.ios != "" {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("%w: %v", errNoTargets, err)
	}
	cfg, err := project.Load(root)
	if err != nil {
		return nil, "", err
	}
	return cfg, root, nil
}

func mergeDescriptions(p project.Descriptions, user infoplist.Descriptions) infoplist.Descriptions {
	d := user
	if p.Always != "" {
		d.Always = p.Always
	}
	if p.Peripheral != "" {
		d.Peripheral = p.Peripheral
	}
	return d
}

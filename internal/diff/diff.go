// Package diff renders unified diffs of patched manifests for dry runs.
package diff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/mcuadros/go-defaults"
)

// Options controls diff rendering.
type Options struct {
	Color bool `default:"false"`
}

// Option configures Options.
type Option func(*Options)

// WithColor enables ANSI colors in the output.
func WithColor(enabled bool) Option {
	return func(o *Options) { o.Color = enabled }
}

// Unified returns a unified diff from before to after, labelled with path.
// Identical inputs produce "".
func Unified(path string, before, after []byte, opts ...Option) string {
	o := Options{}
	defaults.SetDefaults(&o)
	for _, opt := range opts {
		opt(&o)
	}

	a, b := string(before), string(after)
	if a == b {
		return ""
	}

	edits := myers.ComputeEdits("", a, b)
	unified := fmt.Sprint(gotextdiff.ToUnified("a/"+path, "b/"+path, a, edits))
	if !o.Color {
		return unified
	}
	return colorize(unified)
}

func colorize(diff string) string {
	red := color.New(color.FgRed)
	red.EnableColor()
	green := color.New(color.FgGreen)
	green.EnableColor()
	cyan := color.New(color.FgCyan)
	cyan.EnableColor()
	bold := color.New(color.Bold)
	bold.EnableColor()

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++"):
			lines[i] = bold.Sprint(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = cyan.Sprint(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = red.Sprint(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = green.Sprint(line)
		}
	}
	return strings.Join(lines, "\n")
}

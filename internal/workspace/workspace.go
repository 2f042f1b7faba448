package workspace

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/bleperm/bleperm/internal/androidmanifest"
	"github.com/bleperm/bleperm/internal/diff"
	"github.com/bleperm/bleperm/internal/infoplist"
	"github.com/bleperm/bleperm/internal/platform"
)

// Platform identifies which document a Result refers to.
type Platform string

const (
	Android Platform = "android"
	IOS     Platform = "ios"
)

// Result describes one document the workspace handled.
type Result struct {
	Platform Platform
	Path     string
	Changed  bool
	// Diff is set in dry-run mode when the document changed.
	Diff string
}

// Workspace implements compose.Config over files on disk. An empty path
// means the app has no such platform and its hook never runs.
type Workspace struct {
	AndroidManifest string
	InfoPlist       string

	// DryRun renders diffs instead of writing files.
	DryRun bool
	// Color enables ANSI colors in rendered diffs.
	Color bool

	Log *logrus.Entry

	// Results collects one entry per document, in hook order.
	Results []Result
}

// WithAndroidManifest loads the manifest, passes its tree to fn, and
// commits the result.
func (w *Workspace) WithAndroidManifest(fn func(*androidmanifest.Tree) error) error {
	if w.AndroidManifest == "" {
		return nil
	}
	return modify(w, Android, w.AndroidManifest, androidmanifest.Parse, fn)
}

// WithInfoPlist loads the plist, passes its tree to fn, and commits the
// result.
func (w *Workspace) WithInfoPlist(fn func(*infoplist.Tree) error) error {
	if w.InfoPlist == "" {
		return nil
	}
	return modify(w, IOS, w.InfoPlist, infoplist.Parse, fn)
}

// Changed reports whether any document was (or in dry-run, would be) changed.
func (w *Workspace) Changed() bool {
	for _, r := range w.Results {
		if r.Changed {
			return true
		}
	}
	return false
}

type tree[T any] interface {
	Clone() T
	Equal(T) bool
}

type document[T any] interface {
	Tree() T
	Commit(T) error
	Bytes() ([]byte, error)
}

func modify[T tree[T], D document[T]](w *Workspace, p Platform, path string, parse func([]byte) (D, error), fn func(T) error) error {
	log := w.logger().WithFields(logrus.Fields{"platform": p, "path": path})

	before, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := parse(before)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	t := doc.Tree()
	original := t.Clone()
	if err := fn(t); err != nil {
		return err
	}

	result := Result{Platform: p, Path: path, Changed: !t.Equal(original)}
	if !result.Changed {
		log.Debug("no changes")
		w.Results = append(w.Results, result)
		return nil
	}

	if err := doc.Commit(t); err != nil {
		return fmt.Errorf("committing %s: %w", path, err)
	}
	after, err := doc.Bytes()
	if err != nil {
		return err
	}

	if w.DryRun {
		result.Diff = diff.Unified(path, before, after, diff.WithColor(w.Color))
		log.Debug("dry run, not writing")
		w.Results = append(w.Results, result)
		return nil
	}

	if err := platform.WriteFile(path, after, 0644); err != nil {
		return err
	}
	log.Info("updated")
	w.Results = append(w.Results, result)
	return nil
}

func (w *Workspace) logger() *logrus.Entry {
	if w.Log != nil {
		return w.Log
	}
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}

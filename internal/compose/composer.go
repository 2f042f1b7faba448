// Package compose runs the platform injectors against a host build
// configuration. The host decides which platform documents exist and how a
// mutated view is committed; compose only decides what runs and in which
// order.
package compose

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/bleperm/bleperm/internal/androidmanifest"
	"github.com/bleperm/bleperm/internal/infoplist"
)

// Config is a host build configuration that exposes each platform document
// for scoped mutation. A hook calls fn with an exclusively owned view and
// commits the view afterwards. When the configuration has no document for a
// platform, the hook returns nil without calling fn.
type Config interface {
	WithAndroidManifest(fn func(*androidmanifest.Tree) error) error
	WithInfoPlist(fn func(*infoplist.Tree) error) error
}

// Composer applies the Android and iOS injectors in that order.
type Composer struct {
	// Descriptions overrides the default iOS usage-description text.
	Descriptions infoplist.Descriptions

	// Log receives one entry per platform. Nil disables logging.
	Log *logrus.Entry
}

// New returns a Composer with built-in descriptions and the given logger.
func New(log *logrus.Entry) *Composer {
	return &Composer{Log: log}
}

// Apply enriches cfg with a zero-value Composer and returns cfg.
func Apply[C Config](cfg C) (C, error) {
	err := (&Composer{}).Run(cfg)
	return cfg, err
}

// Run invokes the Android hook, then the iOS hook. It stops at the first
// failing hook.
func (c *Composer) Run(cfg Config) error {
	err := cfg.WithAndroidManifest(func(t *androidmanifest.Tree) error {
		missing := androidmanifest.Missing(t)
		androidmanifest.Inject(t)
		c.logf("android", missing)
		return nil
	})
	if err != nil {
		return fmt.Errorf("patching Android manifest: %w", err)
	}

	err = cfg.WithInfoPlist(func(t *infoplist.Tree) error {
		if err := infoplist.Validate(t); err != nil {
			return err
		}
		missing := infoplist.Missing(t)
		infoplist.InjectWith(t, c.Descriptions)
		c.logf("ios", missing)
		return nil
	})
	if err != nil {
		return fmt.Errorf("patching Info.plist: %w", err)
	}

	return nil
}

func (c *Composer) logf(platform string, added []string) {
	if c.Log == nil {
		return
	}
	entry := c.Log.WithField("platform", platform)
	if len(added) == 0 {
		entry.Debug("declarations already present")
		return
	}
	for _, a := range added {
		entry.WithField("declaration", a).Debug("adding declaration")
	}
	entry.Infof("added %d declaration(s)", len(added))
}

package project

import "path/filepath"

// Config represents the .bleperm/project.yaml structure.
type Config struct {
	Requires string         `yaml:"requires,omitempty" json:"requires,omitempty"`
	Android  *AndroidConfig `yaml:"android,omitempty" json:"android,omitempty"`
	IOS      *IOSConfig     `yaml:"ios,omitempty" json:"ios,omitempty"`
}

// AndroidConfig locates the Android manifest.
type AndroidConfig struct {
	Manifest string `yaml:"manifest" json:"manifest"`
}

// IOSConfig locates the Info.plist and optionally overrides description text.
type IOSConfig struct {
	Plist        string        `yaml:"plist" json:"plist"`
	Descriptions *Descriptions `yaml:"descriptions,omitempty" json:"descriptions,omitempty"`
}

// Descriptions holds usage-description text overrides.
type Descriptions struct {
	Always     string `yaml:"always,omitempty" json:"always,omitempty"`
	Peripheral string `yaml:"peripheral,omitempty" json:"peripheral,omitempty"`
}

// AndroidManifestPath returns the manifest path resolved against root, or ""
// when the project has no Android app.
func (c *Config) AndroidManifestPath(root string) string {
	if c.Android == nil || c.Android.Manifest == "" {
		return ""
	}
	return resolvePath(root, c.Android.Manifest)
}

// InfoPlistPath returns the plist path resolved against root, or "" when the
// project has no iOS app.
func (c *Config) InfoPlistPath(root string) string {
	if c.IOS == nil || c.IOS.Plist == "" {
		return ""
	}
	return resolvePath(root, c.IOS.Plist)
}

// DescriptionOverrides returns the configured description text, if any.
func (c *Config) DescriptionOverrides() Descriptions {
	if c.IOS == nil || c.IOS.Descriptions == nil {
		return Descriptions{}
	}
	return *c.IOS.Descriptions
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, filepath.FromSlash(p))
}

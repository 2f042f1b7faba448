// Package capability holds the fixed declarations bleperm injects into
// platform manifests: Android permission and feature names, iOS Info.plist
// keys, background mode tokens, and the default usage-description text.
// The tables are process-wide and read-only.
package capability

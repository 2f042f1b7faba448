// Package workspace is the file-backed host for compose: it exposes an app's
// AndroidManifest.xml and Info.plist as scoped trees, commits the mutated
// trees back into the original markup, and writes the result atomically or,
// in dry-run mode, renders it as a diff.
package workspace

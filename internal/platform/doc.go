// Package platform provides the filesystem operations bleperm needs to
// rewrite manifests safely: atomic replacement that keeps the file mode and
// writes through symlinks. Permission bits are skipped on Windows, which does
// not support Unix-style modes.
package platform

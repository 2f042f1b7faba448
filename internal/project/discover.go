package project

import (
	"path/filepath"
	"sort"
	"strings"
)

// Conventional manifest locations, relative to the project root.
var (
	androidManifestPatterns = []string{
		"android/app/src/main/AndroidManifest.xml",           // React Native, Capacitor, Flutter
		"platforms/android/app/src/main/AndroidManifest.xml", // Cordova
		"app/src/main/AndroidManifest.xml",                   // plain Gradle
	}
	infoPlistPatterns = []string{
		"ios/*/Info.plist",             // React Native, Capacitor, Flutter
		"platforms/ios/*/*-Info.plist", // Cordova
		"*/Info.plist",                 // plain Xcode
	}
)

// Candidates are manifest paths found under a project root, relative to it.
type Candidates struct {
	AndroidManifests []string
	InfoPlists       []string
}

// Discover looks for platform manifests at conventional locations under root.
// Results are slash-separated, sorted, and free of duplicates.
func Discover(root string) Candidates {
	return Candidates{
		AndroidManifests: glob(root, androidManifestPatterns),
		InfoPlists:       glob(root, infoPlistPatterns),
	}
}

func glob(root string, patterns []string) []string {
	seen := make(map[string]bool)
	var found []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(pattern)))
		if err != nil {
			continue
		}
		for _, m := range matches {
			rel := Relative(root, m)
			if seen[rel] || skipped(rel) {
				continue
			}
			seen[rel] = true
			found = append(found, rel)
		}
	}
	sort.Strings(found)
	return found
}

// skipped filters out test bundles and dependency checkouts.
func skipped(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if part == "Pods" || part == "node_modules" || part == "build" || strings.HasSuffix(part, "Tests") {
			return true
		}
	}
	return false
}

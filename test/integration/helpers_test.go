//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // BLEPERM_HOME, user settings
	ProjectDir string // A mock React Native app
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so all bleperm operations are sandboxed. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("BLEPERM_HOME", env.HomeDir)

	return env
}

// setupApp copies the package fixtures into a React Native style layout and
// returns the manifest and plist paths.
func setupApp(t *testing.T, projectDir string) (manifest, plist string) {
	t.Helper()

	manifest = filepath.Join(projectDir, "android", "app", "src", "main", "AndroidManifest.xml")
	plist = filepath.Join(projectDir, "ios", "Beacon", "Info.plist")

	copyFile(t, filepath.Join("..", "..", "internal", "androidmanifest", "testdata", "AndroidManifest.xml"), manifest)
	copyFile(t, filepath.Join("..", "..", "internal", "infoplist", "testdata", "Info.plist"), plist)

	// A test bundle plist that discovery must ignore.
	copyFile(t, filepath.Join("..", "..", "internal", "infoplist", "testdata", "minimal.plist"),
		filepath.Join(projectDir, "ios", "BeaconTests", "Info.plist"))

	return manifest, plist
}

// copyFile copies src to dst, creating parent directories.
func copyFile(t *testing.T, src, dst string) {
	t.Helper()
	data, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("reading %s: %v", src, err)
	}
	writeFile(t, dst, string(data))
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the file contents or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertCount fails unless substr occurs exactly n times in the file.
func assertCount(t *testing.T, path, substr string, n int) {
	t.Helper()
	if got := strings.Count(readFile(t, path), substr); got != n {
		t.Errorf("file %s contains %q %d times, want %d", path, substr, got, n)
	}
}

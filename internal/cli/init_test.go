package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bleperm/bleperm/internal/project"
)

func resetInitFlags(t *testing.T) {
	t.Helper()
	initAndroid, initIOS = "", ""
	t.Cleanup(func() { initAndroid, initIOS = "", "" })
}

func TestInit_Discovers(t *testing.T) {
	resetInitFlags(t)
	setBuildVersion(t, "v1.4.0")
	dir, _, _ := fixture(t)

	var out bytes.Buffer
	require.NoError(t, runProjectInit(&out, nil, dir))
	assert.Contains(t, out.String(), "android: android/app/src/main/AndroidManifest.xml")

	cfg, err := project.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ">= 1.4.0", cfg.Requires)
	assert.Equal(t, "android/app/src/main/AndroidManifest.xml", cfg.Android.Manifest)
	assert.Equal(t, "ios/Beacon/Info.plist", cfg.IOS.Plist)
}

func TestInit_DevBuildOmitsRequires(t *testing.T) {
	resetInitFlags(t)
	setBuildVersion(t, "dev")
	dir, _, _ := fixture(t)

	require.NoError(t, runProjectInit(&bytes.Buffer{}, nil, dir))

	cfg, err := project.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, cfg.Requires)
}

func TestInit_AmbiguousPlist(t *testing.T) {
	resetInitFlags(t)
	dir, _, _ := fixture(t)
	widget := filepath.Join(dir, "ios", "Widget", "Info.plist")
	require.NoError(t, os.MkdirAll(filepath.Dir(widget), 0755))
	require.NoError(t, os.WriteFile(widget, []byte(testPlist), 0644))

	err := runProjectInit(&bytes.Buffer{}, nil, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found 2 Info.plist files")
	assert.False(t, project.Exists(dir))

	var out bytes.Buffer
	require.NoError(t, runProjectInit(&out, strings.NewReader("2\n"), dir))
	assert.Contains(t, out.String(), "Select Info.plist:")

	cfg, err := project.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "ios/Widget/Info.plist", cfg.IOS.Plist)
}

func TestInit_ExplicitPath(t *testing.T) {
	resetInitFlags(t)
	dir := t.TempDir()
	initIOS = filepath.Join(dir, "App", "Support", "Info.plist")

	require.NoError(t, runProjectInit(&bytes.Buffer{}, nil, dir))

	cfg, err := project.Load(dir)
	require.NoError(t, err)
	assert.Nil(t, cfg.Android)
	assert.Equal(t, "App/Support/Info.plist", cfg.IOS.Plist)
}

func TestInit_NothingFound(t *testing.T) {
	resetInitFlags(t)
	err := runProjectInit(&bytes.Buffer{}, nil, t.TempDir())
	require.Error(t, err)
}

func TestInit_AlreadyInitialized(t *testing.T) {
	resetInitFlags(t)
	dir, _, _ := fixture(t)
	require.NoError(t, runProjectInit(&bytes.Buffer{}, nil, dir))
	require.Error(t, runProjectInit(&bytes.Buffer{}, nil, dir))
}

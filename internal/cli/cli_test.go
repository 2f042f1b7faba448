package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const testManifest = `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android" package="com.example.beacon">
    <uses-permission android:name="android.permission.INTERNET" />
    <application android:label="Beacon" />
</manifest>
`

const testPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleName</key>
	<string>Beacon</string>
</dict>
</plist>
`

// fixture writes the two test documents into a fresh app directory and
// returns their paths.
func fixture(t *testing.T) (dir, manifest, plist string) {
	t.Helper()
	dir = t.TempDir()
	manifest = filepath.Join(dir, "android", "app", "src", "main", "AndroidManifest.xml")
	plist = filepath.Join(dir, "ios", "Beacon", "Info.plist")
	for path, content := range map[string]string{manifest: testManifest, plist: testPlist} {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir, manifest, plist
}

// execute runs the root command with args and returns stdout. Unless the
// test chose a settings directory, an empty one is used.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if os.Getenv("BLEPERM_HOME") == "" {
		t.Setenv("BLEPERM_HOME", t.TempDir())
	}
	viper.Reset()
	t.Cleanup(viper.Reset)
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default, since cobra keeps parsed
// values on the package-level commands between runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func setBuildVersion(t *testing.T, v string) {
	t.Helper()
	prev := buildVersion
	buildVersion = v
	t.Cleanup(func() { buildVersion = prev })
}

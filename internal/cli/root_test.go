package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bleperm/bleperm/internal/config"
)

func TestConfigureLogger(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		setting  string
		expected logrus.Level
		wantErr  bool
	}{
		{name: "user setting", setting: "info", expected: logrus.InfoLevel},
		{name: "default setting", expected: logrus.WarnLevel},
		{name: "verbose", args: []string{"--verbose"}, expected: logrus.DebugLevel},
		{name: "log-level wins over verbose", args: []string{"--verbose", "--log-level", "error"}, expected: logrus.ErrorLevel},
		{name: "invalid", args: []string{"--log-level", "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BLEPERM_HOME", t.TempDir())
			if tt.setting != "" {
				t.Setenv("BLEPERM_LOG_LEVEL", tt.setting)
			}
			viper.Reset()
			t.Cleanup(viper.Reset)
			config.Load()

			cmd := &cobra.Command{Use: "test"}
			cmd.Flags().String("log-level", "", "")
			cmd.Flags().Bool("verbose", false, "")
			require.NoError(t, cmd.Flags().Parse(tt.args))

			l, err := configureLogger(cmd, "verbose")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l.GetLevel())
		})
	}
}

func TestVersionCommand(t *testing.T) {
	setBuildVersion(t, "1.4.0")

	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.4.0\n", out)

	out, err = execute(t, "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "1.4.0", info["version"])

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bleperm version 1.4.0")
}

func TestConfigCommands(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BLEPERM_HOME", home)

	out, err := execute(t, "config", "set", "descriptions.always", "Finds your tags.")
	require.NoError(t, err)
	assert.Equal(t, "Set descriptions.always = Finds your tags.\n", out)

	assert.FileExists(t, filepath.Join(home, "config.yaml"))

	out, err = execute(t, "config", "get", "descriptions.always")
	require.NoError(t, err)
	assert.Equal(t, "Finds your tags.\n", out)

	_, err = execute(t, "config", "set", "mirror", "x")
	require.Error(t, err)
}

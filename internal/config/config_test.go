package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielolaszy/flowcmd/pkg/models"
)

// isolate points HOME and the working directory at an empty temp dir and
// clears FLOWCMD_* variables so no real config leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range []string{
		"FLOWCMD_DEFAULTS_SSH_ACCOUNT",
		"FLOWCMD_DEFAULTS_USE_SSH",
		"FLOWCMD_DEFAULTS_COMMIT_TYPE",
		"FLOWCMD_DEFAULTS_BASE_BRANCH",
		"FLOWCMD_DEFAULTS_PULL_BRANCH",
		"FLOWCMD_LOG_LEVEL",
		"LOG_LEVEL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "feat", config.Defaults.CommitType)
	assert.Equal(t, "main", config.Defaults.BaseBranch)
	assert.Equal(t, "main", config.Defaults.PullBranch)
	assert.False(t, config.Defaults.UseSSH)
	assert.Empty(t, config.Defaults.SSHAccount)
	assert.Equal(t, "info", config.Log.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "custom.yaml", `
defaults:
  ssh_account: work
  use_ssh: true
  commit_type: fix
  base_branch: develop
  pull_branch: develop
log:
  level: debug
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultsConfig{
		SSHAccount: "work",
		UseSSH:     true,
		CommitType: "fix",
		BaseBranch: "develop",
		PullBranch: "develop",
	}, config.Defaults)
	assert.Equal(t, "debug", config.Log.Level)
}

func TestLoadConfigFromHomeDirectory(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, ".flowcmd.yaml", "defaults:\n  base_branch: trunk\n")

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "trunk", config.Defaults.BaseBranch)
}

func TestLoadConfigEnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "custom.yaml", "defaults:\n  base_branch: develop\n  use_ssh: false\n")

	t.Setenv("FLOWCMD_DEFAULTS_BASE_BRANCH", "release")
	t.Setenv("FLOWCMD_DEFAULTS_USE_SSH", "true")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "release", config.Defaults.BaseBranch)
	assert.True(t, config.Defaults.UseSSH)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	config, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
	assert.Nil(t, config)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name       string
		commitType string
		level      string
		wantErr    bool
	}{
		{name: "Valid values", commitType: "chore", level: "warn"},
		{name: "Empty commit type is allowed", commitType: "", level: "info"},
		{name: "Unknown commit type", commitType: "feature", level: "info", wantErr: true},
		{name: "Unknown log level", commitType: "feat", level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{
				Defaults: DefaultsConfig{CommitType: tt.commitType},
				Log:      LogConfig{Level: tt.level},
			}

			err := ValidateConfig(config)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormDefaults(t *testing.T) {
	config := &Config{
		Defaults: DefaultsConfig{
			SSHAccount: "work",
			UseSSH:     true,
			CommitType: "docs",
			BaseBranch: "develop",
			PullBranch: "main",
		},
	}

	assert.Equal(t, models.FormState{
		SSHAccountAlias:  "work",
		UseSSHTransport:  true,
		CommitCategory:   models.CategoryDocs,
		BaseBranch:       "develop",
		PullSourceBranch: "main",
	}, config.FormDefaults())
}

// Package config provides centralized configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/danielolaszy/flowcmd/internal/logging"
	"github.com/danielolaszy/flowcmd/pkg/models"
)

// EnvPrefix is prepended to every environment variable, e.g. FLOWCMD_DEFAULTS_BASE_BRANCH.
const EnvPrefix = "FLOWCMD"

// ConfigName is the file name (without extension) looked up in the working
// directory and the home directory.
const ConfigName = ".flowcmd"

// Config holds all configuration parameters for the application.
type Config struct {
	Defaults DefaultsConfig
	Log      LogConfig
}

// DefaultsConfig holds the values pre-filled into the form.
type DefaultsConfig struct {
	SSHAccount string
	UseSSH     bool
	CommitType string
	BaseBranch string
	PullBranch string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("defaults.ssh_account", "")
	v.SetDefault("defaults.use_ssh", false)
	v.SetDefault("defaults.commit_type", string(models.CategoryFeat))
	v.SetDefault("defaults.base_branch", "main")
	v.SetDefault("defaults.pull_branch", "main")
	v.SetDefault("log.level", string(logging.LevelFromEnv()))
}

// LoadConfig loads configuration from the file at path, or from .flowcmd.yaml
// in the working or home directory when path is empty, with FLOWCMD_*
// environment variables taking precedence. A missing default file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		logging.Debug("no config file found, using defaults")
	} else {
		logging.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	config := &Config{
		Defaults: DefaultsConfig{
			SSHAccount: v.GetString("defaults.ssh_account"),
			UseSSH:     v.GetBool("defaults.use_ssh"),
			CommitType: v.GetString("defaults.commit_type"),
			BaseBranch: v.GetString("defaults.base_branch"),
			PullBranch: v.GetString("defaults.pull_branch"),
		},
		Log: LogConfig{
			Level: strings.ToLower(v.GetString("log.level")),
		},
	}

	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// ValidateConfig ensures that configured values are usable.
func ValidateConfig(config *Config) error {
	var invalid []string

	if _, err := models.ParseCommitCategory(config.Defaults.CommitType); err != nil {
		invalid = append(invalid, "defaults.commit_type="+config.Defaults.CommitType)
	}
	if !logging.LogLevel(config.Log.Level).Valid() {
		invalid = append(invalid, "log.level="+config.Log.Level)
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid configuration values: %v", invalid)
	}

	return nil
}

// FormDefaults returns a form pre-filled with the configured defaults.
func (c *Config) FormDefaults() models.FormState {
	category, _ := models.ParseCommitCategory(c.Defaults.CommitType)
	return models.FormState{
		SSHAccountAlias:  c.Defaults.SSHAccount,
		UseSSHTransport:  c.Defaults.UseSSH,
		CommitCategory:   category,
		BaseBranch:       c.Defaults.BaseBranch,
		PullSourceBranch: c.Defaults.PullBranch,
	}
}

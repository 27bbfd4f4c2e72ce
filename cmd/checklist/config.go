package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the checklist configuration
type Config struct {
	History HistoryConfig `yaml:"history" mapstructure:"history"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Session SessionConfig `yaml:"session" mapstructure:"session"`
}

// HistoryConfig configures undo/redo
type HistoryConfig struct {
	// Maximum undoable changes (0 = unlimited)
	MaxEntries int `yaml:"max_entries" mapstructure:"max_entries"`
}

// LogConfig configures structured logging
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	// Log file path; empty discards logs so the menu stays readable
	File string `yaml:"file" mapstructure:"file"`
}

// SessionConfig configures the interactive menu
type SessionConfig struct {
	PromptTags bool `yaml:"prompt_tags" mapstructure:"prompt_tags"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			MaxEntries: 1000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads configuration from path, or when path is empty merges
// the global and project config files, then applies CHECKLIST_* env vars
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("checklist")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("history.max_entries", def.History.MaxEntries)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("session.prompt_tags", def.Session.PromptTags)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		// Project config overrides global
		for _, p := range []string{GlobalConfigPath(), ProjectConfigPath()} {
			if p == "" {
				continue
			}
			if _, err := os.Stat(p); err != nil {
				continue
			}
			v.SetConfigFile(p)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", p, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated and numeric settings
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (must be text or json)", c.Log.Format)
	}

	if c.History.MaxEntries < 0 {
		return fmt.Errorf("history.max_entries must not be negative, got %d", c.History.MaxEntries)
	}
	return nil
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".checklist", "config.yaml")
}

// ProjectConfigPath returns the path to the project config file
func ProjectConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, ".checklist", "config.yaml")
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect checklist configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "# Effective configuration")
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file paths",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Global:  %s\n", GlobalConfigPath())
			fmt.Fprintf(cmd.OutOrStdout(), "Project: %s\n", ProjectConfigPath())
		},
	})

	return configCmd
}

// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultTransitionDelay is the pause between a navigation request and the
// step change.
const DefaultTransitionDelay = 300 * time.Millisecond

// DefaultSubjectPrefix is the NATS subject prefix for submitted applications.
const DefaultSubjectPrefix = "join.applications"

// Config holds all configuration values for join.
type Config struct {
	LogLevel        string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile         string        `mapstructure:"log_file" yaml:"log_file"`
	DataDir         string        `mapstructure:"data_dir" yaml:"data_dir"`
	TransitionDelay time.Duration `mapstructure:"transition_delay" yaml:"transition_delay"`
	NatsURL         string        `mapstructure:"nats_url" yaml:"nats_url"`
	SubjectPrefix   string        `mapstructure:"subject_prefix" yaml:"subject_prefix"`
}

// Default returns the configuration used when no file or env overrides exist.
func Default() *Config {
	return &Config{
		LogLevel:        "info",
		DataDir:         ".join",
		TransitionDelay: DefaultTransitionDelay,
		SubjectPrefix:   DefaultSubjectPrefix,
	}
}

var envKeys = []string{
	"log_level",
	"log_file",
	"data_dir",
	"transition_delay",
	"nats_url",
	"subject_prefix",
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("join")

	def := Default()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("transition_delay", def.TransitionDelay)
	v.SetDefault("nats_url", def.NatsURL)
	v.SetDefault("subject_prefix", def.SubjectPrefix)

	// Setup ENV binding with JOIN_ prefix
	v.SetEnvPrefix("JOIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range envKeys {
		if err := v.BindEnv(key, "JOIN_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.TransitionDelay < 0 {
		return nil, fmt.Errorf("transition_delay must not be negative, got %s", cfg.TransitionDelay)
	}

	return &cfg, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/join/join.yml or $XDG_CONFIG_HOME/join/join.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "join", "join.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "join", "join.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "join.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

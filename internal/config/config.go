// Package config provides thread-safe settings management for the scaffolder.
// Settings live in an optional key=value file and can be overridden through
// SCAFFOLDER_-prefixed environment variables. Values resolve in the order
// environment, file, Defaults table.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config manages scaffolder settings with thread-safe operations
type Config struct {
	filePath string
	data     map[string]string // values read from or destined for the file
	v        *viper.Viper
	loaded   bool // Track if configuration has been loaded from disk
	mu       sync.RWMutex
}

// New creates a new Config instance. An empty path selects
// DefaultFileName in the working directory.
func New(filePath string) *Config {
	if filePath == "" {
		filePath = DefaultFileName
	}

	return &Config{
		filePath: filePath,
		data:     make(map[string]string),
	}
}

// ensureLoaded loads configuration data from disk once before read operations.
// This method must only be called while holding c.mu.Lock.
func (c *Config) ensureLoaded() error {
	if c.loaded {
		return nil
	}
	return c.Load()
}

// Load reads configuration from file
func (c *Config) Load() error {
	data := make(map[string]string)

	// A missing file is fine - defaults and environment still apply
	if _, err := os.Stat(c.filePath); err == nil {
		fileV := viper.New()
		fileV.SetConfigFile(c.filePath)
		fileV.SetConfigType("dotenv")
		if err := fileV.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		for _, key := range fileV.AllKeys() {
			data[strings.ToUpper(key)] = fileV.GetString(key)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	c.data = data
	c.rebuild()
	c.loaded = true
	return nil
}

// rebuild layers defaults, file values and environment into a fresh viper instance
func (c *Config) rebuild() {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	fileValues := make(map[string]interface{}, len(c.data))
	for key, value := range c.data {
		fileValues[key] = value
	}
	// MergeConfigMap only fails on nil maps
	_ = v.MergeConfigMap(fileValues)

	c.v = v
}

// Save writes configuration to file using atomic write pattern
// This prevents data loss if the write operation fails midway
func (c *Config) Save() error {
	// Ensure directory exists
	dir := filepath.Dir(c.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create temporary file in the same directory for atomic rename
	tmpFile, err := os.CreateTemp(dir, ".scaffolder.conf.tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // Cleanup on error

	if err := tmpFile.Chmod(0644); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}

	// Write header
	fmt.Fprintln(tmpFile, "# Project scaffolder settings")
	fmt.Fprintf(tmpFile, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintln(tmpFile, "")

	keys := make([]string, 0, len(c.data))
	for key := range c.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(tmpFile, "%s=%s\n", key, c.data[key])
	}

	// Sync to ensure data is written to disk
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, c.filePath); err != nil {
		return fmt.Errorf("failed to rename temp file to config: %w", err)
	}

	return nil
}

// Get retrieves a configuration value (thread-safe).
// Keys that are neither set nor in the Defaults table are an error.
func (c *Config) Get(key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if !c.v.IsSet(key) {
		return "", fmt.Errorf("config key not found: %s", key)
	}
	return c.v.GetString(key), nil
}

// GetOrDefault retrieves a value or returns defaultValue if it is unset or empty (thread-safe)
func (c *Config) GetOrDefault(key, defaultValue string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return defaultValue
	}
	if value := c.v.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

// Set sets a configuration value and persists it (thread-safe)
// Automatically loads existing configuration if not already loaded to prevent data loss
func (c *Config) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		if err := c.Load(); err != nil {
			return fmt.Errorf("failed to load existing config before set: %w", err)
		}
	}

	c.data[strings.ToUpper(key)] = value
	c.rebuild()
	return c.Save()
}

// Exists checks if a key was set in the file or environment (thread-safe)
func (c *Config) Exists(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return false
	}
	if _, ok := c.data[strings.ToUpper(key)]; ok {
		return true
	}
	_, ok := os.LookupEnv(EnvPrefix + "_" + strings.ToUpper(key))
	return ok
}

// FilePath returns the configuration file path
func (c *Config) FilePath() string {
	return c.filePath
}

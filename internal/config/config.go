package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/chatsync/chatsync/internal/errors"
	"github.com/chatsync/chatsync/internal/phone"
)

// Config holds launch preferences. Conversation, profile and settings panel
// state is never written here.
type Config struct {
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "ocean", "nord")
	Phone                string `json:"phone,omitempty"`                 // Registered phone number; skips the registration screen
	ContactsFile         string `json:"contacts_file,omitempty"`         // YAML file replacing the built-in contacts
	DesktopNotifications bool   `json:"desktop_notifications,omitempty"` // Mirror toasts as desktop notifications

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chatsync"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from ~/.chatsync/config.json, or returns an empty
// config if the file doesn't exist yet.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.chatsync", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Phone != "" && !phone.IsComplete(phone.Format(c.Phone)) {
		return errors.ConfigInvalid("phone must contain ten digits")
	}
	return nil
}

// Path returns the file the config is saved to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filePath == "" {
		path, err := configPath()
		if err != nil {
			return errors.ConfigSaveFailed("~/.chatsync", err)
		}
		c.filePath = path
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetPhone returns the registered phone number, formatted.
func (c *Config) GetPhone() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Phone == "" {
		return ""
	}
	return phone.Format(c.Phone)
}

// SetPhone sets the registered phone number
func (c *Config) SetPhone(p string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Phone = p
}

// GetContactsFile returns the configured contacts file, if any
func (c *Config) GetContactsFile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ContactsFile
}

// SetContactsFile sets the contacts file path
func (c *Config) SetContactsFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ContactsFile = path
}

// GetDesktopNotifications returns whether toasts are mirrored to the desktop
func (c *Config) GetDesktopNotifications() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DesktopNotifications
}

// SetDesktopNotifications sets whether toasts are mirrored to the desktop
func (c *Config) SetDesktopNotifications(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DesktopNotifications = enabled
}

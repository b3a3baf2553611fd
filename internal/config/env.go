package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/chatsync/chatsync/internal/errors"
	"github.com/chatsync/chatsync/internal/logger"
)

// Environment variables that override config values for a single run.
const (
	EnvTheme         = "CHATSYNC_THEME"
	EnvPhone         = "CHATSYNC_PHONE"
	EnvContactsFile  = "CHATSYNC_CONTACTS_FILE"
	EnvNotifications = "CHATSYNC_DESKTOP_NOTIFICATIONS"
)

// LoadEnv loads KEY=VALUE pairs from the given .env files (".env" when none
// are named) into the process environment. Missing files are skipped;
// variables already set in the environment win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	log := logger.WithComponent("config")
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.E(errors.Op("config.LoadEnv"), errors.KindConfig, "failed to read "+f, err)
		}
		log.Debug("loaded env file", "path", f)
	}
	return nil
}

// ApplyEnv copies CHATSYNC_* overrides from the environment onto c.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvTheme); v != "" {
		c.SetTheme(v)
	}
	if v := os.Getenv(EnvPhone); v != "" {
		c.SetPhone(v)
	}
	if v := os.Getenv(EnvContactsFile); v != "" {
		c.SetContactsFile(v)
	}
	if v := os.Getenv(EnvNotifications); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return errors.ConfigInvalid(EnvNotifications + " must be a boolean")
		}
		c.SetDesktopNotifications(enabled)
	}
	return c.Validate()
}

package cmd

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/chatsync/chatsync/internal/app"
	"github.com/chatsync/chatsync/internal/config"
	"github.com/chatsync/chatsync/internal/directory"
	"github.com/chatsync/chatsync/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	phoneFlag             string
	contactsFlag          string
	themeFlag             string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "chatsync",
	Short: "Terminal messaging client mock-up",
	Long: `ChatSync is a terminal mock-up of a phone messaging app.
Register a number, browse contacts, and watch sent messages tick
from sending to sent to delivered. Nothing leaves your machine.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&phoneFlag, "phone", "", "Register with this phone number for this run")
	rootCmd.Flags().StringVar(&contactsFlag, "contacts", "", "Load contacts from a YAML file")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "UI theme for this run")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("chatsync %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("chatsync %s\n", version)
}

// loadConfig reads the saved config, then layers .env, CHATSYNC_* variables
// and command-line flags on top, in that order.
func loadConfig() (*config.Config, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("error applying environment: %w", err)
	}

	if phoneFlag != "" {
		cfg.SetPhone(phoneFlag)
	}
	if contactsFlag != "" {
		cfg.SetContactsFile(contactsFlag)
	}
	if themeFlag != "" {
		cfg.SetTheme(themeFlag)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDirectory returns the configured contacts file, or the built-in
// contacts when none is set.
func loadDirectory(cfg *config.Config, now time.Time) (*directory.Directory, error) {
	path := cfg.GetContactsFile()
	if path == "" {
		return directory.Default(now), nil
	}
	dir, err := directory.LoadFile(path, now)
	if err != nil {
		return nil, fmt.Errorf("error loading contacts: %w", err)
	}
	return dir, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir, err := loadDirectory(cfg, time.Now())
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	logger.WithComponent("main").Info("starting", "version", version, "contacts", dir.Len())

	m := app.New(cfg, dir, app.WithVersion(version))
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chatsync/chatsync/internal/config"
	"github.com/chatsync/chatsync/internal/ui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "List or choose the UI theme",
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		listThemes(cmd.OutOrStdout(), cfg.GetTheme())
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:   "set <theme>",
	Short: "Save the theme used on launch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if err := setTheme(cfg, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s.\n", args[0])
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeSetCmd)
	rootCmd.AddCommand(themeCmd)
}

// listThemes prints every built-in theme, marking the active one.
func listThemes(w io.Writer, current string) {
	if current == "" {
		current = string(ui.DefaultTheme)
	}
	for _, name := range ui.ThemeNames() {
		marker := " "
		if string(name) == current {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-14s %s\n", marker, name, ui.GetTheme(name).Name)
	}
}

func setTheme(cfg *config.Config, name string) error {
	if !ui.IsValidTheme(name) {
		return fmt.Errorf("unknown theme %q\nRun 'chatsync theme list' to see available themes", name)
	}
	cfg.SetTheme(name)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}
	return nil
}

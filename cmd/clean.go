package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chatsync/chatsync/internal/config"
	"github.com/chatsync/chatsync/internal/logger"
)

var skipConfirm bool

// clearLog is swapped out in tests.
var clearLog = logger.ClearLog

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Forget the registered number and remove the log file",
	Long: `Clears the saved phone number so the next launch starts at the
registration screen, and removes the debug log.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	return runCleanWithReader(cfg, os.Stdin, cmd.OutOrStdout())
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(cfg *config.Config, input io.Reader, out io.Writer) error {
	registered := cfg.GetPhone()
	_, logErr := os.Stat(logger.DefaultLogPath)
	hasLog := logErr == nil

	if registered == "" && !hasLog {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will clean:")
	if registered != "" {
		fmt.Fprintf(out, "  - Registered number %s\n", registered)
	}
	if hasLog {
		fmt.Fprintf(out, "  - Log file %s\n", logger.DefaultLogPath)
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if registered != "" {
		cfg.SetPhone("")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("error saving config: %w", err)
		}
	}

	logCleared, err := clearLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing log: %v\n", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaned:")
	if registered != "" {
		fmt.Fprintln(out, "  - Registration cleared")
	}
	if logCleared {
		fmt.Fprintln(out, "  - Log file removed")
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/chatsync/chatsync/internal/directory"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "List the contacts the app will show",
	Long: `Prints the contact directory, either the built-in contacts or the file
set with --contacts, CHATSYNC_CONTACTS_FILE or contacts_file in the config.`,
	Args: cobra.NoArgs,
	RunE: runContacts,
}

func init() {
	contactsCmd.Flags().StringVar(&contactsFlag, "contacts", "", "Load contacts from a YAML file")
	rootCmd.AddCommand(contactsCmd)
}

func runContacts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	now := time.Now()
	dir, err := loadDirectory(cfg, now)
	if err != nil {
		return err
	}
	return printContacts(cmd.OutOrStdout(), dir, now)
}

func printContacts(w io.Writer, dir *directory.Directory, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPHONE\tLAST\tUNREAD\tPREVIEW")
	for _, c := range dir.All() {
		unread := ""
		if c.UnreadCount > 0 {
			unread = fmt.Sprintf("%d", c.UnreadCount)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.DisplayName, c.PhoneNumber,
			directory.RelativeTime(c.LastMessageAt, now), unread, c.LastMessagePreview)
	}
	return tw.Flush()
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thesavant42/peoplesome-ng/internal/db"
	"github.com/thesavant42/peoplesome-ng/internal/models"
	"github.com/thesavant42/peoplesome-ng/internal/query"
	"github.com/thesavant42/peoplesome-ng/internal/ui"
)

// NewBookmarksCommand creates the bookmarks command and its subcommands.
func NewBookmarksCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmarks",
		Short: "Manage saved locations",
	}

	cmd.AddCommand(newBookmarksListCommand(rootOpts))
	cmd.AddCommand(newBookmarksAddCommand(rootOpts))
	cmd.AddCommand(newBookmarksOpenCommand(rootOpts))
	cmd.AddCommand(newBookmarksDeleteCommand(rootOpts))

	return cmd
}

func newBookmarksListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Aliases:       []string{"ls"},
		Short:         "List bookmarks, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			bookmarks, err := s.db.GetBookmarks()
			if err != nil {
				return err
			}
			ui.PrintBookmarks(cmd.OutOrStdout(), bookmarks)
			return nil
		},
	}
}

func newBookmarksAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> [location]",
		Short: "Save a location under a name",
		Long: `Save a location under a name.

Without a location the last location shown by the browser is saved.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			loc, err := startLocation(s.db, true, args[1:])
			if err != nil {
				return err
			}

			b, err := s.db.AddBookmark(args[0], loc.String())
			if err != nil {
				return err
			}
			s.logger.Info("Bookmark added", "name", b.Name, "location", b.Location)
			fmt.Fprintf(cmd.OutOrStdout(), "Bookmarked %q at %s\n", b.Name, b.Location)
			return nil
		},
	}
}

func newBookmarksOpenCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "open [name]",
		Short:         "Open a bookmark in the browser",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			b, err := pickBookmark(s.db, args, "Open bookmark")
			if err != nil {
				return err
			}
			loc, err := query.ParseLocation(b.Location)
			if err != nil {
				return err
			}
			return s.browse(cmd, loc)
		},
	}
}

// BookmarksDeleteOptions holds flags for bookmarks delete.
type BookmarksDeleteOptions struct {
	Yes bool
}

func newBookmarksDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BookmarksDeleteOptions{}

	cmd := &cobra.Command{
		Use:           "delete [name]",
		Aliases:       []string{"rm"},
		Short:         "Delete a bookmark",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			b, err := pickBookmark(s.db, args, "Delete bookmark")
			if err != nil {
				return err
			}

			if !opts.Yes {
				confirm, err := ui.ConfirmDeleteBookmark(b)
				if err != nil {
					return err
				}
				if !confirm {
					return nil
				}
			}

			if err := s.db.DeleteBookmark(b.ID); err != nil {
				return err
			}
			s.logger.Info("Bookmark deleted", "name", b.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted bookmark %q\n", b.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

// pickBookmark finds a bookmark by name, or asks the user to choose one
func pickBookmark(database *db.DB, args []string, title string) (models.Bookmark, error) {
	if len(args) > 0 {
		return database.GetBookmarkByName(args[0])
	}

	bookmarks, err := database.GetBookmarks()
	if err != nil {
		return models.Bookmark{}, err
	}
	id, err := ui.PromptForBookmark(title, bookmarks)
	if err != nil {
		return models.Bookmark{}, err
	}
	return database.GetBookmark(id)
}

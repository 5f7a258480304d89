package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thesavant42/peoplesome-ng/internal/query"
	"github.com/thesavant42/peoplesome-ng/internal/ui"
)

// RootOptions holds global flags for all commands.
// Flags override config files and the environment only when set explicitly.
type RootOptions struct {
	APIURL     string
	File       string
	DBPath     string
	ConfigPath string
	LogFile    string
	Resume     bool
	Debug      bool
}

// NewRootCommand creates the root command for the peoplesome CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "peoplesome [location]",
		Short: "Browse a genealogy people table in the terminal",
		Long: `Browse a genealogy people table in the terminal.

Every filter, sort and selection is kept in a location such as
/people/emma-de-milliano-1876?sex=f&centuries=19&sort=born&order=desc
so views can be shared, bookmarked and reopened.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts, args)
		},
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.APIURL, "api-url", "", "people API endpoint")
	flags.StringVar(&opts.File, "file", "", "load people from a local JSON file instead of the API")
	flags.StringVar(&opts.DBPath, "db", "", "SQLite database for bookmarks and the last location")
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (JSON with comments)")
	flags.StringVar(&opts.LogFile, "log-file", "", "log file")
	flags.BoolVar(&opts.Debug, "debug", false, "debug logging")
	cmd.Flags().BoolVar(&opts.Resume, "resume", false, "start at the location shown when the browser last exited")

	// Add subcommands
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewBookmarksCommand(opts))

	return cmd
}

func runBrowse(cmd *cobra.Command, opts *RootOptions, args []string) error {
	s, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	start, err := startLocation(s.db, opts.Resume, args)
	if err != nil {
		return err
	}
	return s.browse(cmd, start)
}

type lastLocationGetter interface {
	GetLastLocation() (string, error)
}

// startLocation picks the first location: the argument, then the saved one
// with --resume, then the home page
func startLocation(store lastLocationGetter, resume bool, args []string) (query.Location, error) {
	if len(args) > 0 {
		return query.ParseLocation(args[0])
	}
	if !resume {
		return query.ParseLocation(query.HomePath)
	}

	last, err := store.GetLastLocation()
	if err != nil {
		return query.Location{}, fmt.Errorf("failed to read last location: %w", err)
	}
	loc, err := query.ParseLocation(last)
	if err != nil {
		// A damaged setting should not keep the browser from starting
		return query.ParseLocation(query.HomePath)
	}
	return loc, nil
}

// browse runs the TUI at start and prints where it ended
func (s *session) browse(cmd *cobra.Command, start query.Location) error {
	s.logger.Info("Starting browser", "location", start.String())

	final, err := ui.RunPeople(ui.PeopleOptions{
		Fetcher: s.fetcher,
		Store:   s.db,
		Logger:  s.logger,
		Start:   start,
	})
	if err != nil {
		return fmt.Errorf("interactive mode failed: %w", err)
	}

	if final.Path != "" {
		fmt.Fprintln(cmd.OutOrStdout(), final.String())
	}
	return nil
}

package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/thesavant42/peoplesome-ng/internal/models"
	"github.com/thesavant42/peoplesome-ng/internal/people"
	"github.com/thesavant42/peoplesome-ng/internal/query"
	"github.com/thesavant42/peoplesome-ng/internal/ui"
)

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [location]",
		Short: "Print the people table for a location",
		Long: `Print the people table for a location without starting the browser.

The location defaults to /people. Filters, sort and the selected row
come from the location exactly as in the browser.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootOpts, args)
		},
	}

	return cmd
}

func runRender(cmd *cobra.Command, opts *RootOptions, args []string) error {
	loc, err := peopleLocation(args)
	if err != nil {
		return err
	}

	s, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	w := cmd.OutOrStdout()

	list, err := s.fetch(cmd.Context())
	if err != nil {
		ui.PrintMessage(w, ui.MsgLoadError)
		return fmt.Errorf("failed to load people: %w", err)
	}

	rows := deriveRows(loc, list)
	ui.PrintHeader(w, loc.String(), len(rows), len(list))
	if len(rows) == 0 {
		ui.PrintMessage(w, ui.EmptyMessage(len(list)))
		return nil
	}
	ui.PrintPeopleTable(w, rows, loc.Slug())
	return nil
}

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	Output      string
	Interactive bool
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export [location]",
		Short: "Write the people table for a location as markdown",
		Long: `Write the people table for a location as a markdown document.

Without --output the file is named people-YYYYMMDD-HHMMSS.md in the
current directory.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, rootOpts, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file")
	cmd.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "prompt for the file name")

	return cmd
}

func runExport(cmd *cobra.Command, rootOpts *RootOptions, opts *ExportOptions, args []string) error {
	loc, err := peopleLocation(args)
	if err != nil {
		return err
	}

	now := time.Now()
	filename := opts.Output
	if filename == "" {
		filename = ui.ExportFilename(now)
		if opts.Interactive {
			if filename, err = ui.PromptForFilename(filename); err != nil {
				return err
			}
		}
	}

	s, err := openSession(cmd, rootOpts)
	if err != nil {
		return err
	}
	defer s.Close()

	list, err := s.fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load people: %w", err)
	}

	rows := deriveRows(loc, list)
	if err := ui.ExportPeopleMarkdown(filename, ui.GeneratePeopleMarkdown(loc, rows, len(list), now)); err != nil {
		return err
	}

	abs, _ := filepath.Abs(filename)
	s.logger.Info("Exported people", "file", abs, "rows", len(rows))
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d of %d people to %s\n", len(rows), len(list), filename)
	return nil
}

// peopleLocation parses the optional location argument; it must be a people page
func peopleLocation(args []string) (query.Location, error) {
	if len(args) == 0 {
		return query.ResetLocation(), nil
	}

	loc, err := query.ParseLocation(args[0])
	if err != nil {
		return query.Location{}, err
	}
	if loc.Page() != query.PagePeople {
		return query.Location{}, fmt.Errorf("%w: %s is not a people page", query.ErrInvalidLocation, loc.String())
	}
	return loc, nil
}

// deriveRows applies the location's filters and sort and resolves parent links
func deriveRows(loc query.Location, list []models.Person) []ui.PersonRow {
	return ui.BuildRows(people.Apply(list, loc.State()), people.NewIndex(list))
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/thesavant42/peoplesome-ng/internal/api"
	"github.com/thesavant42/peoplesome-ng/internal/config"
	"github.com/thesavant42/peoplesome-ng/internal/db"
	"github.com/thesavant42/peoplesome-ng/internal/models"
	"github.com/thesavant42/peoplesome-ng/internal/ui"
)

// spinnerEnabled reports whether fetches should show a spinner.
// Replaced in tests.
var spinnerEnabled = func() bool {
	return isatty.IsTerminal(os.Stderr.Fd())
}

// session is everything a command needs once flags and config are resolved
type session struct {
	cfg     config.Config
	logger  *log.Logger
	db      *db.DB
	fetcher ui.Fetcher

	logFile io.Closer
}

func openSession(cmd *cobra.Command, opts *RootOptions) (*session, error) {
	cfg, sources, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	logger, logFile, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("Config loaded",
		"global", sources.Global,
		"project", sources.Project,
		"dotenv", sources.DotEnv,
		"db", cfg.DBPath)

	database, err := db.New(cfg.DBPath)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &session{
		cfg:     cfg,
		logger:  logger,
		db:      database,
		fetcher: newFetcher(cfg, logger),
		logFile: logFile,
	}, nil
}

// Close releases the database and the log file
func (s *session) Close() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close database", "error", err)
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// resolveConfig loads config files and the environment, then applies flags the user set
func resolveConfig(cmd *cobra.Command, opts *RootOptions) (config.Config, config.Sources, error) {
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, config.Sources{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, sources, err := config.Load(config.Options{
		WorkDir:    wd,
		ConfigPath: opts.ConfigPath,
		Env:        os.Environ(),
	})
	if err != nil {
		return config.Config{}, config.Sources{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.APIURL = opts.APIURL
	}
	if flags.Changed("file") {
		cfg.File = opts.File
	}
	if flags.Changed("db") {
		cfg.DBPath = opts.DBPath
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.LogFile
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.Debug
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, config.Sources{}, err
	}
	return cfg, sources, nil
}

// newLogger writes to the configured log file since the TUI owns the terminal.
// An empty log file discards everything.
func newLogger(cfg config.Config) (*log.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return log.New(io.Discard), nil, nil
	}

	if dir := filepath.Dir(cfg.LogFile); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "peoplesome",
	})
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

// newFetcher prefers a local file over the API
func newFetcher(cfg config.Config, logger *log.Logger) ui.Fetcher {
	if cfg.File != "" {
		return api.FileSource{Path: cfg.File}
	}
	return api.NewPeopleClient(cfg.APIURL, cfg.Timeout, logger.WithPrefix("api"))
}

// fetch loads the people list, with a spinner on interactive terminals
func (s *session) fetch(ctx context.Context) ([]models.Person, error) {
	var list []models.Person
	action := func() error {
		var err error
		list, err = s.fetcher.FetchPeople(ctx)
		return err
	}

	var err error
	if spinnerEnabled() {
		err = ui.RunWithSpinner("Fetching people...", action)
	} else {
		err = action()
	}
	if err != nil {
		s.logger.Error("Failed to load people", "error", err)
		return nil, err
	}

	s.logger.Info("Loaded people", "count", len(list))
	return list, nil
}

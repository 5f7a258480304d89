// Package config resolves runtime settings for the people browser.
//
// Precedence, lowest to highest:
//  1. Defaults
//  2. Global config ($XDG_CONFIG_HOME/peoplesome/config.json or ~/.config/peoplesome/config.json)
//  3. Project config (.peoplesome.json in the working directory) or an explicit --config file
//  4. .env file in the working directory
//  5. Process environment (PEOPLE_API_URL, PEOPLE_FILE, PEOPLE_DB, PEOPLE_LOG_FILE, PEOPLE_TIMEOUT, PEOPLE_DEBUG)
//  6. CLI flags (applied by the caller)
//
// Config files are JSON with comments and trailing commas allowed (JWCC).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/tailscale/hujson"

	"github.com/thesavant42/peoplesome-ng/internal/api"
)

// FileName is the project config file name
const FileName = ".peoplesome.json"

// Environment variable names
const (
	EnvAPIURL  = "PEOPLE_API_URL"
	EnvFile    = "PEOPLE_FILE"
	EnvDB      = "PEOPLE_DB"
	EnvLogFile = "PEOPLE_LOG_FILE"
	EnvTimeout = "PEOPLE_TIMEOUT"
	EnvDebug   = "PEOPLE_DEBUG"
)

var errConfigInvalid = errors.New("invalid config")

// Config holds all resolved settings
type Config struct {
	APIURL  string        // people endpoint
	File    string        // local JSON file used instead of the API when set
	DBPath  string        // sqlite file for bookmarks and last location
	LogFile string        // log destination while the TUI owns the terminal
	Timeout time.Duration // HTTP timeout, 0 = none
	Debug   bool
}

// Sources records which files contributed to the config
type Sources struct {
	Global  string
	Project string
	DotEnv  string
}

// fileConfig is the on-disk shape. Pointers distinguish "unset" from "empty".
type fileConfig struct {
	APIURL  *string `json:"api_url"`
	File    *string `json:"file"`
	DBPath  *string `json:"db_path"`
	LogFile *string `json:"log_file"`
	Timeout *string `json:"timeout"`
	Debug   *bool   `json:"debug"`
}

// Options controls where Load looks
type Options struct {
	WorkDir    string   // directory holding .peoplesome.json and .env; "" = current directory
	ConfigPath string   // explicit config file, must exist when set
	Env        []string // KEY=VALUE pairs, usually os.Environ()
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		APIURL:  api.DefaultPeopleURL,
		DBPath:  "peoplesome.db",
		LogFile: "peoplesome.log",
	}
}

// Load resolves the configuration
func Load(opts Options) (Config, Sources, error) {
	cfg := Default()
	var sources Sources

	env := envMap(opts.Env)

	if path := globalConfigPath(env); path != "" {
		fc, loaded, err := readFile(path, false)
		if err != nil {
			return Config{}, Sources{}, err
		}
		if loaded {
			if cfg, err = merge(cfg, fc); err != nil {
				return Config{}, Sources{}, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
			}
			sources.Global = path
		}
	}

	projectPath := filepath.Join(opts.WorkDir, FileName)
	mustExist := false
	if opts.ConfigPath != "" {
		projectPath = opts.ConfigPath
		if !filepath.IsAbs(projectPath) {
			projectPath = filepath.Join(opts.WorkDir, projectPath)
		}
		mustExist = true
	}
	fc, loaded, err := readFile(projectPath, mustExist)
	if err != nil {
		return Config{}, Sources{}, err
	}
	if loaded {
		if cfg, err = merge(cfg, fc); err != nil {
			return Config{}, Sources{}, fmt.Errorf("%w %s: %w", errConfigInvalid, projectPath, err)
		}
		sources.Project = projectPath
	}

	// .env fills in variables the process environment does not set
	dotEnvPath := filepath.Join(opts.WorkDir, ".env")
	if dotEnv, err := godotenv.Read(dotEnvPath); err == nil {
		for k, v := range dotEnv {
			if _, ok := env[k]; !ok {
				env[k] = v
			}
		}
		sources.DotEnv = dotEnvPath
	}

	if cfg, err = applyEnv(cfg, env); err != nil {
		return Config{}, Sources{}, err
	}

	return cfg, sources, nil
}

// Validate checks a fully resolved config (after flags)
func (c Config) Validate() error {
	if c.APIURL == "" && c.File == "" {
		return fmt.Errorf("%w: api_url or file must be set", errConfigInvalid)
	}
	if c.DBPath == "" {
		return fmt.Errorf("%w: db_path cannot be empty", errConfigInvalid)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout cannot be negative", errConfigInvalid)
	}
	return nil
}

func readFile(path string, mustExist bool) (fileConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return fileConfig{}, false, nil
		}
		return fileConfig{}, false, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	standard, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(standard, &fc); err != nil {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}
	return fc, true, nil
}

func merge(cfg Config, fc fileConfig) (Config, error) {
	if fc.APIURL != nil {
		cfg.APIURL = *fc.APIURL
	}
	if fc.File != nil {
		cfg.File = *fc.File
	}
	if fc.DBPath != nil {
		cfg.DBPath = *fc.DBPath
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.Timeout != nil {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	return cfg, nil
}

func applyEnv(cfg Config, env map[string]string) (Config, error) {
	if v, ok := env[EnvAPIURL]; ok && v != "" {
		cfg.APIURL = v
	}
	if v, ok := env[EnvFile]; ok && v != "" {
		cfg.File = v
	}
	if v, ok := env[EnvDB]; ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := env[EnvLogFile]; ok && v != "" {
		cfg.LogFile = v
	}
	if v, ok := env[EnvTimeout]; ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", errConfigInvalid, EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	if v, ok := env[EnvDebug]; ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", errConfigInvalid, EnvDebug, err)
		}
		cfg.Debug = debug
	}
	return cfg, nil
}

// globalConfigPath returns the global config file path, or "" if no home is known
func globalConfigPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "peoplesome", "config.json")
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "peoplesome", "config.json")
	}
	return ""
}

func envMap(env []string) map[string]string {
	m := make(map[string]string, len(env))
	for _, e := range env {
		k, v, ok := strings.Cut(e, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}

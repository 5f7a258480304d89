package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/thesavant42/peoplesome-ng/internal/models"
)

const (
	// DefaultPeopleURL serves the full list of people as a JSON array
	DefaultPeopleURL = "https://mate-academy.github.io/react_people-table/api/people.json"
	userAgent        = "peoplesome-ng/1.0"
	maxBodySize      = 10 << 20 // people lists are small; anything larger is not a people list
)

// PeopleClient fetches the people list from the remote API
type PeopleClient struct {
	httpClient *http.Client
	url        string
	logger     *log.Logger
}

// NewPeopleClient creates a client for the given URL.
// An empty URL uses DefaultPeopleURL. A zero timeout means no client-side timeout.
func NewPeopleClient(url string, timeout time.Duration, logger *log.Logger) *PeopleClient {
	if url == "" {
		url = DefaultPeopleURL
	}
	return &PeopleClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url:    url,
		logger: logger,
	}
}

// NewPeopleClientWithLogging creates a client that logs to api.log next to dbPath
func NewPeopleClientWithLogging(url string, timeout time.Duration, dbPath string) *PeopleClient {
	logFile := filepath.Join(filepath.Dir(dbPath), "api.log")

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Fall back to a client without file logging
		return NewPeopleClient(url, timeout, nil)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "API",
	})

	return NewPeopleClient(url, timeout, logger)
}

// URL returns the endpoint the client fetches
func (c *PeopleClient) URL() string {
	return c.url
}

// FetchPeople retrieves the full people list. There is no retry: any failure
// (network, non-200 status, malformed payload) is returned to the caller.
func (c *PeopleClient) FetchPeople(ctx context.Context) ([]models.Person, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("Failed to create request", "url", c.url, "error", err)
		}
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	if c.logger != nil {
		c.logger.Info("GET", "endpoint", c.url)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("Request failed", "url", c.url, "error", err)
		}
		return nil, fmt.Errorf("failed to fetch people: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if c.logger != nil {
			c.logger.Error("API error", "status", resp.StatusCode, "response", string(body))
		}
		return nil, fmt.Errorf("people API error (status %d): %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	people, err := ParsePeopleFromJSON(body)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("Malformed payload", "url", c.url, "error", err)
		}
		return nil, err
	}

	if c.logger != nil {
		c.logger.Debug("Fetched people", "count", len(people), "elapsed", time.Since(start))
	}

	return people, nil
}

// ParsePeopleFromJSON parses a people list from JSON bytes (for loading from files)
func ParsePeopleFromJSON(data []byte) ([]models.Person, error) {
	var people []models.Person
	if err := json.Unmarshal(data, &people); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if people == nil {
		// "null" is not a list
		return nil, fmt.Errorf("failed to parse JSON: expected an array of people")
	}
	return people, nil
}

// LoadPeopleFromFile reads a people list from a local JSON file
func LoadPeopleFromFile(path string) ([]models.Person, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParsePeopleFromJSON(data)
}

// FileSource serves a people list from a local JSON file.
// It has the same FetchPeople method as PeopleClient so either can back the browser.
type FileSource struct {
	Path string
}

// FetchPeople reads and parses the file
func (f FileSource) FetchPeople(ctx context.Context) ([]models.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadPeopleFromFile(f.Path)
}

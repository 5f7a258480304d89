package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesavant42/peoplesome-ng/internal/models"
)

const peopleJSON = `[
  {"name":"Anna","sex":"f","born":1850,"died":1910,"fatherName":null,"motherName":null,"slug":"anna-1850"},
  {"name":"Bob","sex":"m","born":1920,"died":1990,"fatherName":"Carl","motherName":"Anna","slug":"bob-1920"}
]`

func TestFetchPeople(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(peopleJSON))
	}))
	defer srv.Close()

	client := NewPeopleClient(srv.URL, 5*time.Second, nil)
	people, err := client.FetchPeople(context.Background())
	require.NoError(t, err)
	require.Len(t, people, 2)

	assert.Equal(t, models.Person{
		Slug: "anna-1850", Name: "Anna", Sex: models.SexFemale, Born: 1850, Died: 1910,
	}, people[0])
	assert.Equal(t, "Anna", people[1].MotherName)
	assert.Equal(t, "Carl", people[1].FatherName)
}

func TestFetchPeopleErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"server error", http.StatusInternalServerError, "boom", "status 500"},
		{"not found", http.StatusNotFound, "", "status 404"},
		{"malformed json", http.StatusOK, "[{", "failed to parse JSON"},
		{"not a list", http.StatusOK, `{"name":"Anna"}`, "failed to parse JSON"},
		{"null body", http.StatusOK, "null", "expected an array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewPeopleClient(srv.URL, time.Second, nil).FetchPeople(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFetchPeopleCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPeopleClient(srv.URL, 0, nil).FetchPeople(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewPeopleClientDefaultURL(t *testing.T) {
	assert.Equal(t, DefaultPeopleURL, NewPeopleClient("", 0, nil).URL())
}

func TestLoadPeopleFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.json")
	require.NoError(t, os.WriteFile(path, []byte(peopleJSON), 0644))

	people, err := LoadPeopleFromFile(path)
	require.NoError(t, err)
	assert.Len(t, people, 2)

	_, err = LoadPeopleFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.json")
	require.NoError(t, os.WriteFile(path, []byte(peopleJSON), 0644))

	source := FileSource{Path: path}
	people, err := source.FetchPeople(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bob-1920", people[1].Slug)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = source.FetchPeople(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

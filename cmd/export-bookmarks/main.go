package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/thesavant42/peoplesome-ng/internal/api"
	"github.com/thesavant42/peoplesome-ng/internal/config"
	"github.com/thesavant42/peoplesome-ng/internal/db"
	"github.com/thesavant42/peoplesome-ng/internal/people"
	"github.com/thesavant42/peoplesome-ng/internal/query"
	"github.com/thesavant42/peoplesome-ng/internal/ui"
)

func main() {
	cfg, _, err := config.Load(config.Options{Env: os.Environ()})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Open database
	database, err := db.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	bookmarks, err := database.GetBookmarks()
	if err != nil {
		log.Fatalf("Failed to get bookmarks: %v", err)
	}
	if len(bookmarks) == 0 {
		fmt.Println("No bookmarks to export")
		return
	}

	// Fetch once, derive every bookmark from the same list
	var fetcher ui.Fetcher = api.NewPeopleClientWithLogging(cfg.APIURL, cfg.Timeout, cfg.DBPath)
	if cfg.File != "" {
		fetcher = api.FileSource{Path: cfg.File}
	}
	list, err := fetcher.FetchPeople(context.Background())
	if err != nil {
		log.Fatalf("Failed to fetch people: %v", err)
	}
	idx := people.NewIndex(list)

	views := make([]ui.BookmarkView, 0, len(bookmarks))
	for _, b := range bookmarks {
		loc, err := query.ParseLocation(b.Location)
		if err != nil {
			log.Printf("Skipping bookmark %s: %v", b.Name, err)
			continue
		}
		views = append(views, ui.BookmarkView{
			Bookmark: b,
			Location: loc,
			Rows:     ui.BuildRows(people.Apply(list, loc.State()), idx),
		})
	}

	now := time.Now()
	filename := fmt.Sprintf("bookmarks-export-%s.md", now.Format("20060102-150405"))
	if err := ui.ExportPeopleMarkdown(filename, ui.GenerateBookmarksMarkdown(views, len(list), now)); err != nil {
		log.Fatalf("Failed to write export: %v", err)
	}

	abs, _ := filepath.Abs(filename)
	ui.PrintSuccess(fmt.Sprintf("Exported %d bookmarks to %s", len(views), abs))
}

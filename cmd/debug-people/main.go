// Debug tool to test the people fetch and view derivation directly
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/thesavant42/peoplesome-ng/internal/api"
	"github.com/thesavant42/peoplesome-ng/internal/people"
	"github.com/thesavant42/peoplesome-ng/internal/query"
)

func main() {
	raw := "/people"
	if len(os.Args) > 1 {
		raw = os.Args[1]
	}

	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
	})

	loc, err := query.ParseLocation(raw)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}

	client := api.NewPeopleClient(os.Getenv("PEOPLE_API_URL"), 0, logger)
	fmt.Printf("Testing people fetch from: %s\n", client.URL())
	fmt.Printf("Location: %s\n", loc.String())

	list, err := client.FetchPeople(context.Background())
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}

	idx := people.NewIndex(list)
	state := loc.State()
	derived := people.Apply(list, state)

	fmt.Printf("Records: %d\n", idx.Len())
	fmt.Printf("Unique slugs: %d\n", idx.SlugCount())
	fmt.Printf("State: sex=%q query=%q centuries=%v sort=%q order=%q\n",
		state.Sex, state.Query, state.Centuries, state.Sort, state.Order)
	fmt.Printf("Derived rows: %d\n", len(derived))

	// Show first 5 rows
	fmt.Println("\nFirst rows:")
	for i, p := range derived {
		if i >= 5 {
			fmt.Printf("  ... and %d more\n", len(derived)-5)
			break
		}
		mother := "-"
		if m, ok := idx.Mother(p); ok {
			mother = "-> " + m.Name
		} else if p.HasMother() {
			mother = p.MotherName
		}
		fmt.Printf("  %d. %s (%s, century %d) mother: %s\n", i+1, p.Name, p.Lifespan(), p.Century(), mother)
	}

	if p, ok := idx.BySlug(loc.Slug()); ok {
		fmt.Printf("\nSelected: %s, %d children in the list\n", p.Name, len(idx.Children(p)))
	}
}

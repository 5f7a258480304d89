package models

import (
	"fmt"
	"time"
)

// Sex is the one-letter sex code used by the people API
type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

// Person represents a single record from the people API
type Person struct {
	Slug       string `json:"slug"` // Unique, URL-safe identifier
	Name       string `json:"name"`
	Sex        Sex    `json:"sex"`
	Born       int    `json:"born"`
	Died       int    `json:"died"`
	FatherName string `json:"fatherName"` // Empty when unknown (API sends null)
	MotherName string `json:"motherName"` // Empty when unknown (API sends null)
}

// Century returns the century the person was born in: ceiling(born / 100).
// 1899 and 1900 are both century 19, 1901 is century 20.
func (p Person) Century() int {
	if p.Born > 0 {
		return (p.Born + 99) / 100
	}
	// Integer division truncates toward zero, which is already the ceiling for negatives
	return p.Born / 100
}

// HasMother returns true if a mother name is recorded
func (p Person) HasMother() bool {
	return p.MotherName != ""
}

// HasFather returns true if a father name is recorded
func (p Person) HasFather() bool {
	return p.FatherName != ""
}

// Lifespan returns the "born-died" label used in detail views
func (p Person) Lifespan() string {
	return fmt.Sprintf("%d-%d", p.Born, p.Died)
}

// Bookmark is a saved location (path + query string)
type Bookmark struct {
	ID        string
	Name      string
	Location  string
	CreatedAt time.Time
}

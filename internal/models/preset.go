package models

import "time"

// FilterPreset is a named filter snapshot saved by a user.
type FilterPreset struct {
	ID        string        `firestore:"id" json:"id"`
	Name      string        `firestore:"name" json:"name"`
	Filters   PresetFilters `firestore:"filters" json:"filters"`
	BuiltIn   bool          `firestore:"builtIn" json:"builtIn"`
	CreatedAt time.Time     `firestore:"createdAt" json:"createdAt"`
}

// PresetFilters mirrors dto.FilterState in a Firestore-friendly shape.
type PresetFilters struct {
	StartDate time.Time `firestore:"startDate" json:"startDate"`
	EndDate   time.Time `firestore:"endDate" json:"endDate"`
	Label     string    `firestore:"label" json:"label"`
	Region    string    `firestore:"region" json:"region"`
	City      string    `firestore:"city" json:"city"`
	Group     string    `firestore:"group" json:"group"`
	Channel   string    `firestore:"channel" json:"channel"`
}

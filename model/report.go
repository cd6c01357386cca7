package model

import (
	"time"
)

type Geolocation struct {
	Latitude  float64 `firestore:"latitude" json:"latitude"`
	Longitude float64 `firestore:"longitude" json:"longitude"`
}

// ReportEntry is one photo + description + optional location unit of a
// saved report. Exactly one image per entry.
type ReportEntry struct {
	ImageURL    string       `firestore:"imageUrl" json:"imageUrl"`
	Description string       `firestore:"description" json:"description"`
	Geolocation *Geolocation `firestore:"geolocation,omitempty" json:"geolocation,omitempty"`
}

// Report is the server-confirmed representation. ID and CreatedAt are
// assigned by the store on first creation and never change on edits.
type Report struct {
	ID           string        `firestore:"-" json:"id"`
	Title        string        `firestore:"title" json:"title"`
	ReporterName string        `firestore:"reporterName" json:"reporterName"`
	Entries      []ReportEntry `firestore:"entries" json:"entries"`
	CreatedAt    time.Time     `firestore:"createdAt" json:"createdAt"`
}

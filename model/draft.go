package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImageSource is either a pending in-memory payload waiting for upload or a
// URL that already resolves. Construct only through PendingImage or
// ResolvedImage so an entry can never carry both.
type ImageSource struct {
	data        []byte
	contentType string
	url         string
}

func PendingImage(data []byte, contentType string) ImageSource {
	return ImageSource{data: data, contentType: contentType}
}

func ResolvedImage(url string) ImageSource {
	return ImageSource{url: url}
}

func (s ImageSource) IsPending() bool {
	return len(s.data) > 0
}

// Pending returns the payload and content type of a not-yet-uploaded image.
func (s ImageSource) Pending() ([]byte, string) {
	return s.data, s.contentType
}

func (s ImageSource) URL() string {
	return s.url
}

// IsZero reports an invalid source with neither payload nor URL. Such an
// entry must never be submitted.
func (s ImageSource) IsZero() bool {
	return len(s.data) == 0 && s.url == ""
}

// DraftEntry is one unit of evidence inside a draft. LocalID addresses the
// entry in the in-memory list only and is never written to storage.
type DraftEntry struct {
	LocalID     string
	Image       ImageSource
	Description string
	Geolocation *Geolocation
}

// DraftReport is the mutable staging area for a report under construction
// or edit. Entry order is insertion order and equals report order.
type DraftReport struct {
	Title        string
	ReporterName string
	Entries      []DraftEntry

	// EditingTargetID is empty for a brand-new report. When set, submit
	// updates that document and SourceCreatedAt keeps its creation time.
	EditingTargetID string
	SourceCreatedAt time.Time
}

func NewDraft() *DraftReport {
	return &DraftReport{}
}

// DraftFromReport re-hydrates a saved report for editing. Every stored entry
// becomes a resolved image source under a fresh local ID.
func DraftFromReport(r *Report) *DraftReport {
	d := &DraftReport{
		Title:           r.Title,
		ReporterName:    r.ReporterName,
		EditingTargetID: r.ID,
		SourceCreatedAt: r.CreatedAt,
	}
	for _, e := range r.Entries {
		d.Entries = append(d.Entries, DraftEntry{
			LocalID:     uuid.New().String(),
			Image:       ResolvedImage(e.ImageURL),
			Description: e.Description,
			Geolocation: e.Geolocation,
		})
	}
	return d
}

// AttachEntry appends a new entry with a pending image. Existing entries are
// never touched. The location is fixed at attachment time.
func (d *DraftReport) AttachEntry(image []byte, contentType string, loc *Geolocation) *DraftEntry {
	entry := DraftEntry{
		LocalID:     uuid.New().String(),
		Image:       PendingImage(image, contentType),
		Geolocation: loc,
	}
	d.Entries = append(d.Entries, entry)
	return &d.Entries[len(d.Entries)-1]
}

// UpdateEntryDescription reports whether an entry with the given local ID was
// found and updated.
func (d *DraftReport) UpdateEntryDescription(localID, text string) bool {
	for i := range d.Entries {
		if d.Entries[i].LocalID == localID {
			d.Entries[i].Description = text
			return true
		}
	}
	return false
}

// RemoveEntry deletes the matching entry. Removing an unknown ID is a no-op
// so racing removals stay idempotent.
func (d *DraftReport) RemoveEntry(localID string) {
	for i := range d.Entries {
		if d.Entries[i].LocalID == localID {
			d.Entries = append(d.Entries[:i], d.Entries[i+1:]...)
			return
		}
	}
}

// Snapshot returns a copy whose entry list is safe to read while the
// original keeps being mutated.
func (d *DraftReport) Snapshot() *DraftReport {
	c := *d
	c.Entries = append([]DraftEntry(nil), d.Entries...)
	return &c
}

// IsSubmittable holds iff title and reporter name are non-empty and at least
// one entry is attached. Empty descriptions do not block submission.
func (d *DraftReport) IsSubmittable() bool {
	return strings.TrimSpace(d.Title) != "" &&
		strings.TrimSpace(d.ReporterName) != "" &&
		len(d.Entries) > 0
}

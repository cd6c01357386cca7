package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldreport/model"
)

func TestAttachEntryPreservesOrder(t *testing.T) {
	d := model.NewDraft()
	first := d.AttachEntry([]byte("one"), "image/jpeg", nil)
	second := d.AttachEntry([]byte("two"), "image/png", &model.Geolocation{Latitude: -9.19, Longitude: -78.52})
	third := d.AttachEntry([]byte("three"), "image/jpeg", nil)

	require.Len(t, d.Entries, 3)
	assert.Equal(t, first.LocalID, d.Entries[0].LocalID)
	assert.Equal(t, second.LocalID, d.Entries[1].LocalID)
	assert.Equal(t, third.LocalID, d.Entries[2].LocalID)

	assert.NotEqual(t, first.LocalID, second.LocalID)
	assert.NotEqual(t, second.LocalID, third.LocalID)

	assert.True(t, d.Entries[0].Image.IsPending())
	assert.Nil(t, d.Entries[0].Geolocation)
	require.NotNil(t, d.Entries[1].Geolocation)
	assert.Equal(t, -9.19, d.Entries[1].Geolocation.Latitude)
}

func TestRemoveEntry(t *testing.T) {
	d := model.NewDraft()
	a := d.AttachEntry([]byte("a"), "image/jpeg", nil)
	b := d.AttachEntry([]byte("b"), "image/jpeg", nil)
	c := d.AttachEntry([]byte("c"), "image/jpeg", nil)

	d.RemoveEntry(b.LocalID)
	require.Len(t, d.Entries, 2)
	assert.Equal(t, a.LocalID, d.Entries[0].LocalID)
	assert.Equal(t, c.LocalID, d.Entries[1].LocalID)

	// Unknown ID is a no-op, racing removals must be idempotent.
	d.RemoveEntry("no-such-entry")
	d.RemoveEntry(b.LocalID)
	require.Len(t, d.Entries, 2)
	assert.Equal(t, a.LocalID, d.Entries[0].LocalID)
	assert.Equal(t, c.LocalID, d.Entries[1].LocalID)
}

func TestUpdateEntryDescription(t *testing.T) {
	d := model.NewDraft()
	entry := d.AttachEntry([]byte("a"), "image/jpeg", nil)

	require.True(t, d.UpdateEntryDescription(entry.LocalID, "trench excavated"))
	assert.Equal(t, "trench excavated", d.Entries[0].Description)

	assert.False(t, d.UpdateEntryDescription("missing", "nope"))
	assert.Equal(t, "trench excavated", d.Entries[0].Description)
}

func TestIsSubmittable(t *testing.T) {
	tests := []struct {
		name      string
		configure func(d *model.DraftReport)
		want      bool
	}{
		{
			name:      "empty draft",
			configure: func(d *model.DraftReport) {},
			want:      false,
		},
		{
			name: "missing title",
			configure: func(d *model.DraftReport) {
				d.ReporterName = "Juan"
				d.AttachEntry([]byte("a"), "image/jpeg", nil)
			},
			want: false,
		},
		{
			name: "missing reporter",
			configure: func(d *model.DraftReport) {
				d.Title = "Alpha Site"
				d.AttachEntry([]byte("a"), "image/jpeg", nil)
			},
			want: false,
		},
		{
			name: "no entries",
			configure: func(d *model.DraftReport) {
				d.Title = "Alpha Site"
				d.ReporterName = "Juan"
			},
			want: false,
		},
		{
			name: "whitespace title",
			configure: func(d *model.DraftReport) {
				d.Title = "   "
				d.ReporterName = "Juan"
				d.AttachEntry([]byte("a"), "image/jpeg", nil)
			},
			want: false,
		},
		{
			name: "complete draft with empty description",
			configure: func(d *model.DraftReport) {
				d.Title = "Alpha Site"
				d.ReporterName = "Juan"
				d.AttachEntry([]byte("a"), "image/jpeg", nil)
			},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := model.NewDraft()
			tt.configure(d)
			assert.Equal(t, tt.want, d.IsSubmittable())
		})
	}
}

func TestDraftFromReport(t *testing.T) {
	createdAt := time.Date(2025, 6, 12, 9, 30, 0, 0, time.UTC)
	report := &model.Report{
		ID:           "rep-1",
		Title:        "Beta Site",
		ReporterName: "Maria",
		CreatedAt:    createdAt,
		Entries: []model.ReportEntry{
			{ImageURL: "https://img.test/a.jpg", Description: "footing poured"},
			{ImageURL: "https://img.test/b.jpg", Geolocation: &model.Geolocation{Latitude: 1, Longitude: 2}},
		},
	}

	d := model.DraftFromReport(report)

	assert.Equal(t, "Beta Site", d.Title)
	assert.Equal(t, "Maria", d.ReporterName)
	assert.Equal(t, "rep-1", d.EditingTargetID)
	assert.True(t, d.SourceCreatedAt.Equal(createdAt))
	require.Len(t, d.Entries, 2)

	for i, entry := range d.Entries {
		assert.NotEmpty(t, entry.LocalID)
		assert.False(t, entry.Image.IsPending(), "entry %d should be resolved", i)
		assert.Equal(t, report.Entries[i].ImageURL, entry.Image.URL())
		assert.Equal(t, report.Entries[i].Description, entry.Description)
	}
	assert.NotEqual(t, d.Entries[0].LocalID, d.Entries[1].LocalID)
	assert.True(t, d.IsSubmittable())
}

func TestImageSourceVariant(t *testing.T) {
	pending := model.PendingImage([]byte("payload"), "image/png")
	assert.True(t, pending.IsPending())
	data, contentType := pending.Pending()
	assert.Equal(t, []byte("payload"), data)
	assert.Equal(t, "image/png", contentType)

	resolved := model.ResolvedImage("https://img.test/x.jpg")
	assert.False(t, resolved.IsPending())
	assert.Equal(t, "https://img.test/x.jpg", resolved.URL())

	var zero model.ImageSource
	assert.True(t, zero.IsZero())
	assert.False(t, pending.IsZero())
	assert.False(t, resolved.IsZero())
}

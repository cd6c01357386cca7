package services_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldreport/model"
	"fieldreport/services"
)

func shareReport() *model.Report {
	return &model.Report{
		ID:           "rep-1",
		Title:        "Alpha Site",
		ReporterName: "Juan",
		CreatedAt:    time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
		Entries: []model.ReportEntry{
			{
				ImageURL:    "https://img.test/a.jpg",
				Description: "trench excavated",
				Geolocation: &model.Geolocation{Latitude: -9.19, Longitude: -78.52},
			},
			{ImageURL: "https://img.test/b.jpg"},
		},
	}
}

func TestPlainTextSummary(t *testing.T) {
	summary := services.PlainTextSummary(shareReport())

	assert.Contains(t, summary, "*Field Pre-Report: Alpha Site*")
	assert.Contains(t, summary, "*Reported by:* Juan")
	assert.Contains(t, summary, "Description: trench excavated")
	assert.Contains(t, summary, "https://www.google.com/maps?q=-9.19,-78.52")
	assert.Contains(t, summary, "Photo: https://img.test/a.jpg")
	assert.Contains(t, summary, "Photo: https://img.test/b.jpg")

	// Entries appear in report order.
	first := strings.Index(summary, "*Entry 1:*")
	second := strings.Index(summary, "*Entry 2:*")
	require.Greater(t, first, -1)
	require.Greater(t, second, first)

	// The unlocated entry carries no maps link.
	entryTwo := summary[second:]
	assert.NotContains(t, entryTwo, "google.com/maps")
}

func TestShareLinks(t *testing.T) {
	report := shareReport()

	whatsapp := services.WhatsAppLink(report)
	assert.True(t, strings.HasPrefix(whatsapp, "https://api.whatsapp.com/send?text="))
	assert.NotContains(t, whatsapp, " ")
	// Spaces encode as %20, never '+'.
	assert.Contains(t, whatsapp, "Alpha%20Site")
	assert.NotContains(t, whatsapp, "Alpha+Site")

	mailto := services.MailtoLink(report)
	assert.True(t, strings.HasPrefix(mailto, "mailto:?subject=Pre-Report%3A%20Alpha%20Site"))
	assert.Contains(t, mailto, "&body=")
}

func TestRenderPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, services.RenderPrintDocument(&buf, shareReport()))
	html := buf.String()

	assert.Contains(t, html, "<title>Pre-Report: Alpha Site</title>")
	assert.Contains(t, html, "Reported by: <strong>Juan</strong>")
	assert.Contains(t, html, `src="https://img.test/a.jpg"`)
	assert.Contains(t, html, "Progress Entry #1")
	assert.Contains(t, html, "Progress Entry #2")
	assert.Contains(t, html, "trench excavated")
	// Entry without a description falls back.
	assert.Contains(t, html, "No description.")
	assert.Contains(t, html, "View on Google Maps")
}

func TestRenderPrintDocumentEscapesContent(t *testing.T) {
	report := shareReport()
	report.Title = `<script>alert("x")</script>`

	var buf bytes.Buffer
	require.NoError(t, services.RenderPrintDocument(&buf, report))
	assert.NotContains(t, buf.String(), "<script>alert")
}

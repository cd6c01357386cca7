package services

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"
	"strings"

	"fieldreport/model"
)

// PlainTextSummary renders a report as the chat/mail text payload: header,
// then one block per entry in report order with description, a maps link for
// located entries, and the photo URL.
func PlainTextSummary(r *model.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Field Pre-Report: %s*\n", r.Title)
	fmt.Fprintf(&b, "*Reported by:* %s\n", r.ReporterName)
	fmt.Fprintf(&b, "*Date:* %s\n\n", r.CreatedAt.Format("Jan 2, 2006 15:04"))
	b.WriteString("*Progress Entries:*\n")
	for i, entry := range r.Entries {
		fmt.Fprintf(&b, "\n*Entry %d:*\n", i+1)
		fmt.Fprintf(&b, "Description: %s\n", entry.Description)
		if entry.Geolocation != nil {
			fmt.Fprintf(&b, "Location: %s\n", MapsLink(entry.Geolocation))
		}
		fmt.Fprintf(&b, "Photo: %s\n", entry.ImageURL)
	}
	return b.String()
}

// MapsLink points at the entry coordinates on Google Maps.
func MapsLink(loc *model.Geolocation) string {
	return "https://www.google.com/maps?q=" +
		strconv.FormatFloat(loc.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(loc.Longitude, 'f', -1, 64)
}

// WhatsAppLink is a chat deep link pre-filled with the text summary.
func WhatsAppLink(r *model.Report) string {
	return "https://api.whatsapp.com/send?text=" + encodeComponent(PlainTextSummary(r))
}

// MailtoLink is a mail deep link with the title as subject and the summary
// as body.
func MailtoLink(r *model.Report) string {
	return "mailto:?subject=" + encodeComponent("Pre-Report: "+r.Title) +
		"&body=" + encodeComponent(PlainTextSummary(r))
}

// encodeComponent percent-encodes for a URI component. Spaces become %20,
// not '+', so mail clients render the body verbatim.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

var printTemplate = template.Must(template.New("print").Funcs(template.FuncMap{
	"mapsLink": MapsLink,
	"inc":      func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Pre-Report: {{.Title}}</title>
<style>
  body { font-family: sans-serif; margin: 2rem; color: #1f2937; }
  header { border-bottom: 2px solid #e5e7eb; padding-bottom: 1rem; }
  .entry { border: 1px solid #e5e7eb; border-radius: 8px; padding: 1.5rem; margin-top: 2rem; page-break-inside: avoid; }
  .entry img { max-width: 100%; border-radius: 8px; }
  .meta { color: #6b7280; }
  @media print { body { -webkit-print-color-adjust: exact; } }
</style>
</head>
<body>
<header>
  <h1>Field Pre-Report</h1>
</header>
<main>
  <h2>{{.Title}}</h2>
  <p class="meta">Generated: {{.CreatedAt.Format "Monday, January 2, 2006 15:04"}}</p>
  <p class="meta">Reported by: <strong>{{.ReporterName}}</strong></p>
  {{range $i, $entry := .Entries}}
  <div class="entry">
    <h3>Progress Entry #{{inc $i}}</h3>
    {{if $entry.Geolocation}}<p><a href="{{mapsLink $entry.Geolocation}}">View on Google Maps</a></p>{{end}}
    <p><strong>Photo:</strong></p>
    <img src="{{$entry.ImageURL}}" alt="Entry {{inc $i}}">
    <p><strong>Description:</strong></p>
    <p>{{if $entry.Description}}{{$entry.Description}}{{else}}No description.{{end}}</p>
  </div>
  {{end}}
</main>
</body>
</html>
`))

// RenderPrintDocument writes the printable HTML view of a report.
func RenderPrintDocument(w io.Writer, r *model.Report) error {
	return printTemplate.Execute(w, r)
}

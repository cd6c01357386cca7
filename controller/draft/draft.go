package draft

import (
	"github.com/gin-gonic/gin"

	"fieldreport/model"
	"fieldreport/services"
)

func DraftController(router *gin.Engine, sessions *services.DraftSessions, store services.ReportStore, submitter *services.Submitter, probe services.LocationProbe) {
	routes := router.Group("/drafts")
	{
		routes.POST("", func(c *gin.Context) {
			StartDraft(c, sessions, store)
		})
		routes.PUT("/:did", func(c *gin.Context) {
			SetDraftDetails(c, sessions)
		})
		routes.DELETE("/:did", func(c *gin.Context) {
			CancelDraft(c, sessions)
		})
		routes.POST("/:did/entries", func(c *gin.Context) {
			AttachEntry(c, sessions, probe)
		})
		routes.PUT("/:did/entries/:eid", func(c *gin.Context) {
			UpdateEntry(c, sessions)
		})
		routes.DELETE("/:did/entries/:eid", func(c *gin.Context) {
			RemoveEntry(c, sessions)
		})
		routes.POST("/:did/submit", func(c *gin.Context) {
			SubmitDraft(c, sessions, submitter)
		})
	}
}

// draftView is the JSON shape of a draft session. Pending images are flagged
// rather than echoed; resolved entries expose their URL.
func draftView(d *model.DraftReport) gin.H {
	entries := make([]gin.H, 0, len(d.Entries))
	for _, entry := range d.Entries {
		view := gin.H{
			"local_id":    entry.LocalID,
			"description": entry.Description,
			"pending":     entry.Image.IsPending(),
		}
		if !entry.Image.IsPending() {
			view["image_url"] = entry.Image.URL()
		}
		if entry.Geolocation != nil {
			view["geolocation"] = entry.Geolocation
		}
		entries = append(entries, view)
	}
	view := gin.H{
		"title":         d.Title,
		"reporter_name": d.ReporterName,
		"entries":       entries,
		"submittable":   d.IsSubmittable(),
	}
	if d.EditingTargetID != "" {
		view["editing_report_id"] = d.EditingTargetID
	}
	return view
}

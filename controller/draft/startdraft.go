package draft

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldreport/dto"
	"fieldreport/model"
	"fieldreport/services"
)

// StartDraft opens an authoring session. With a report_id in the body the
// draft is re-hydrated from that report for editing; otherwise it starts
// empty.
func StartDraft(c *gin.Context, sessions *services.DraftSessions, store services.ReportStore) {
	var req dto.StartDraftRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
	}

	var source *model.Report
	if req.ReportID != "" {
		report, err := store.Get(c.Request.Context(), req.ReportID)
		if errors.Is(err, services.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		if err != nil {
			fetchErr := &services.FetchError{Err: err}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load report", "details": fetchErr.Error()})
			return
		}
		source = report
	}

	id, draft := sessions.Start(source)
	c.JSON(http.StatusCreated, gin.H{"draft_id": id, "draft": draftView(draft)})
}

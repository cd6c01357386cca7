package draft

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldreport/services"
)

// SubmitDraft runs the authoring workflow for the session. A second submit
// while one is in flight answers 409. On failure the draft stays intact for
// retry; on success the session is gone and the saved report is returned.
func SubmitDraft(c *gin.Context, sessions *services.DraftSessions, submitter *services.Submitter) {
	draftID := c.Param("did")
	draft, err := sessions.BeginSubmit(draftID)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	report, err := submitter.Submit(c.Request.Context(), draft)
	if err != nil {
		sessions.FinishSubmit(draftID, false)
		c.JSON(services.ErrorStatus(err), gin.H{
			"error":   "Failed to save report",
			"kind":    services.ErrorKind(err),
			"details": err.Error(),
		})
		return
	}

	sessions.FinishSubmit(draftID, true)
	c.JSON(http.StatusOK, gin.H{"message": "Report saved successfully", "report": report})
}

package draft

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldreport/dto"
	"fieldreport/services"
)

func SetDraftDetails(c *gin.Context, sessions *services.DraftSessions) {
	var req dto.DraftDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	draft, err := sessions.SetDetails(c.Param("did"), req.Title, req.ReporterName)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draftView(draft)})
}

// respondSessionError maps draft session errors onto HTTP statuses shared by
// all draft endpoints.
func respondSessionError(c *gin.Context, err error) {
	switch err {
	case services.ErrDraftNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
	case services.ErrEntryNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
	case services.ErrSubmitInFlight:
		c.JSON(http.StatusConflict, gin.H{"error": "A submit is already in flight for this draft"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error", "details": err.Error()})
	}
}

package draft

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldreport/services"
)

// CancelDraft discards the session. Refused with 409 while a submit is in
// flight; the running submit completes first.
func CancelDraft(c *gin.Context, sessions *services.DraftSessions) {
	if err := sessions.Cancel(c.Param("did")); err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft discarded"})
}

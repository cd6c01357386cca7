package draft

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldreport/services"
)

// RemoveEntry deletes an entry from the draft. An unknown entry ID still
// answers 200 so a double-click delete stays idempotent.
func RemoveEntry(c *gin.Context, sessions *services.DraftSessions) {
	if err := sessions.RemoveEntry(c.Param("did"), c.Param("eid")); err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry removed"})
}

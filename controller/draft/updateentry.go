package draft

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldreport/dto"
	"fieldreport/services"
)

func UpdateEntry(c *gin.Context, sessions *services.DraftSessions) {
	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := sessions.UpdateDescription(c.Param("did"), c.Param("eid"), req.Description); err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry updated"})
}

package report

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldreport/services"
)

// DeleteReport is the execute step of the confirm-then-delete protocol; the
// confirmation affordance lives in the client. A 200 is only sent after the
// store confirmed the deletion, so a successful response means the item can
// be dropped from the local list without a re-fetch.
func DeleteReport(c *gin.Context, store services.ReportStore) {
	err := store.Delete(c.Request.Context(), c.Param("rid"))
	if errors.Is(err, services.ErrReportNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err != nil {
		persistErr := &services.PersistenceError{Op: "delete", Err: err}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete report", "details": persistErr.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}

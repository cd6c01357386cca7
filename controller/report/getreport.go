package report

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldreport/services"
)

func GetReport(c *gin.Context, store services.ReportStore) {
	report, err := store.Get(c.Request.Context(), c.Param("rid"))
	if errors.Is(err, services.ErrReportNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err != nil {
		fetchErr := &services.FetchError{Err: err}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load report", "details": fetchErr.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

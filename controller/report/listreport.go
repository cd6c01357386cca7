package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldreport/model"
	"fieldreport/services"
)

// ListReports returns all reports newest first. An optional q parameter
// filters by title or reporter name, case-insensitive.
func ListReports(c *gin.Context, store services.ReportStore) {
	reports, err := store.List(c.Request.Context())
	if err != nil {
		fetchErr := &services.FetchError{Err: err}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load reports", "details": fetchErr.Error()})
		return
	}
	if query := c.Query("q"); query != "" {
		reports = services.FilterReports(reports, query)
	}
	if reports == nil {
		reports = []model.Report{}
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

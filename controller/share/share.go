package share

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldreport/model"
	"fieldreport/services"
)

func ShareController(router *gin.Engine, store services.ReportStore) {
	routes := router.Group("/reports")
	{
		routes.GET("/:rid/share", func(c *gin.Context) {
			SharePayload(c, store)
		})
		routes.GET("/:rid/print", func(c *gin.Context) {
			PrintDocument(c, store)
		})
	}
}

// SharePayload returns the plain-text summary plus pre-filled chat and mail
// deep links for a saved report.
func SharePayload(c *gin.Context, store services.ReportStore) {
	report, ok := loadReport(c, store)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary":      services.PlainTextSummary(report),
		"whatsapp_url": services.WhatsAppLink(report),
		"mailto_url":   services.MailtoLink(report),
	})
}

// PrintDocument answers the printable HTML rendition of a report.
func PrintDocument(c *gin.Context, store services.ReportStore) {
	report, ok := loadReport(c, store)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := services.RenderPrintDocument(&buf, report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render document", "details": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func loadReport(c *gin.Context, store services.ReportStore) (*model.Report, bool) {
	report, err := store.Get(c.Request.Context(), c.Param("rid"))
	if errors.Is(err, services.ErrReportNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return nil, false
	}
	if err != nil {
		fetchErr := &services.FetchError{Err: err}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load report", "details": fetchErr.Error()})
		return nil, false
	}
	return report, true
}

package report

import (
	"fieldreport/services"

	"github.com/gin-gonic/gin"
)

func ReportController(router *gin.Engine, store services.ReportStore) {
	routes := router.Group("/reports")
	{
		routes.GET("", func(c *gin.Context) {
			ListReports(c, store)
		})
		routes.GET("/:rid", func(c *gin.Context) {
			GetReport(c, store)
		})
		routes.DELETE("/:rid", func(c *gin.Context) {
			DeleteReport(c, store)
		})
	}
}

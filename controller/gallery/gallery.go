package gallery

import (
	"errors"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fieldreport/model"
	"fieldreport/services"
)

var downloadClient = &http.Client{Timeout: 30 * time.Second}

func GalleryController(router *gin.Engine, store services.ReportStore) {
	routes := router.Group("/reports")
	{
		routes.GET("/:rid/gallery", func(c *gin.Context) {
			ListImages(c, store)
		})
		routes.GET("/:rid/gallery/:index/download", func(c *gin.Context) {
			DownloadImage(c, store)
		})
	}
}

// ListImages returns the gallery payload: every image URL with its
// description and location, in report order. Copy-link needs nothing more
// than the URL from here.
func ListImages(c *gin.Context, store services.ReportStore) {
	report, ok := loadReport(c, store)
	if !ok {
		return
	}
	images := make([]gin.H, 0, len(report.Entries))
	for i, entry := range report.Entries {
		image := gin.H{
			"index":       i,
			"image_url":   entry.ImageURL,
			"description": entry.Description,
		}
		if entry.Geolocation != nil {
			image["geolocation"] = entry.Geolocation
		}
		images = append(images, image)
	}
	c.JSON(http.StatusOK, gin.H{"title": report.Title, "images": images})
}

// DownloadImage proxies the image bytes with an attachment disposition so a
// browser saves the file instead of navigating to the image host.
func DownloadImage(c *gin.Context, store services.ReportStore) {
	report, ok := loadReport(c, store)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= len(report.Entries) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	imageURL := report.Entries[index].ImageURL

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, imageURL, nil)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch image"})
		return
	}
	resp, err := downloadClient.Do(req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch image", "details": err.Error()})
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Image host answered " + resp.Status})
		return
	}

	c.DataFromReader(http.StatusOK, resp.ContentLength, resp.Header.Get("Content-Type"), resp.Body, map[string]string{
		"Content-Disposition": `attachment; filename="` + downloadFilename(imageURL) + `"`,
	})
}

// downloadFilename suggests a save-as name from the URL path alone, so a
// presigned-style query string never leaks into the filename.
func downloadFilename(imageURL string) string {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return "download.jpg"
	}
	base := path.Base(parsed.Path)
	if base == "." || base == "/" || base == "" {
		return "download.jpg"
	}
	return base
}

func loadReport(c *gin.Context, store services.ReportStore) (*model.Report, bool) {
	report, err := store.Get(c.Request.Context(), c.Param("rid"))
	if errors.Is(err, services.ErrReportNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load report", "details": err.Error()})
		return nil, false
	}
	return report, true
}

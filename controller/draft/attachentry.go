package draft

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fieldreport/model"
	"fieldreport/services"
)

// maxImageBytes caps a single attached photo.
const maxImageBytes = 15 << 20

// AttachEntry adds a photo entry to the draft. The multipart form carries
// the image file and optional latitude/longitude form fields; when the
// client sends no coordinates the probe is asked, best-effort, and the
// attach succeeds with or without a location.
func AttachEntry(c *gin.Context, sessions *services.DraftSessions, probe services.LocationProbe) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	if file.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is too large"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not open image file"})
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read image file"})
		return
	}

	loc, ok := locationFromForm(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid latitude/longitude"})
		return
	}
	if loc == nil {
		// The location is fixed at attachment time, so the attach waits
		// here for at most the probe's 10 s budget before proceeding.
		// A miss degrades to no location, never to a failed attach.
		if probed, found := probe.Locate(c.Request.Context()); found {
			loc = probed
		}
	}

	entry, err := sessions.Attach(c.Param("did"), data, file.Header.Get("Content-Type"), loc)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	response := gin.H{"entry_id": entry.LocalID}
	if entry.Geolocation != nil {
		response["geolocation"] = entry.Geolocation
	}
	c.JSON(http.StatusCreated, response)
}

func locationFromForm(c *gin.Context) (*model.Geolocation, bool) {
	latStr := c.PostForm("latitude")
	lngStr := c.PostForm("longitude")
	if latStr == "" && lngStr == "" {
		return nil, true
	}
	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latErr != nil || lngErr != nil {
		return nil, false
	}
	return &model.Geolocation{Latitude: lat, Longitude: lng}, true
}

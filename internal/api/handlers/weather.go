package handlers

import (
	"net/http"
	"strconv"

	"github.com/evandev76/event-organizer-app/internal/service"

	"github.com/gin-gonic/gin"
)

// WeatherHandler handles HTTP requests for the weather proxy
type WeatherHandler struct {
	service service.WeatherServiceInterface
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(service service.WeatherServiceInterface) *WeatherHandler {
	return &WeatherHandler{service: service}
}

func coordinates(c *gin.Context) (lat, lon float64, ok bool) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
		return 0, 0, false
	}
	return lat, lon, true
}

// Geocode resolves a place query to coordinates
// @Summary Geocode a place
// @Description Resolve a free-text place name to candidate coordinates
// @Tags weather
// @Produce json
// @Param q query string true "Place query"
// @Success 200 {array} service.GeocodeResult "Matches"
// @Failure 404 {object} map[string]interface{} "Place not found"
// @Failure 502 {object} map[string]interface{} "Upstream unavailable"
// @Router /weather/geocode [get]
func (h *WeatherHandler) Geocode(c *gin.Context) {
	results, err := h.service.Geocode(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// DayIcon returns the sun/rain icon for one day
// @Summary Day weather icon
// @Description Sun or rain icon for one day at the given coordinates
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} service.DayIconResponse "Icon"
// @Failure 502 {object} map[string]interface{} "Upstream unavailable"
// @Router /weather/day [get]
func (h *WeatherHandler) DayIcon(c *gin.Context) {
	lat, lon, ok := coordinates(c)
	if !ok {
		return
	}
	icon, err := h.service.DayIcon(c.Request.Context(), lat, lon, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weather": icon})
}

// RangeIcons returns icons for each day in a range
// @Summary Range weather icons
// @Description Sun or rain icons for each day in [start, end], one upstream call
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} service.RangeIconsResponse "Icons keyed by day"
// @Failure 502 {object} map[string]interface{} "Upstream unavailable"
// @Router /weather/range [get]
func (h *WeatherHandler) RangeIcons(c *gin.Context) {
	lat, lon, ok := coordinates(c)
	if !ok {
		return
	}
	icons, err := h.service.RangeIcons(c.Request.Context(), lat, lon, c.Query("start"), c.Query("end"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, icons)
}

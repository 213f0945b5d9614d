// Command mock-openmeteo serves canned Open-Meteo geocoding and forecast
// responses for local development. Point GEOCODING_BASE_URL and
// FORECAST_BASE_URL at it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
}

type conditions struct {
	WeatherCode   int
	Temperature   float64
	Humidity      float64
	Precipitation float64
}

var places = map[string]place{
	"paris":  {Name: "Paris", Latitude: 48.85341, Longitude: 2.3488, Country: "France"},
	"london": {Name: "London", Latitude: 51.50853, Longitude: -0.12574, Country: "United Kingdom"},
	"berlin": {Name: "Berlin", Latitude: 52.52437, Longitude: 13.41053, Country: "Germany"},
	"bergen": {Name: "Bergen", Latitude: 60.39299, Longitude: 5.32415, Country: "Norway"},

	// resolves, but the forecast endpoint fails for its coordinates
	"servererror": {Name: "Server Error", Latitude: -1, Longitude: -1, Country: "Nowhere"},
}

var forecasts = map[string]conditions{
	coordKey(48.85341, 2.3488):   {WeatherCode: 0, Temperature: 22, Humidity: 40, Precipitation: 0},
	coordKey(51.50853, -0.12574): {WeatherCode: 3, Temperature: 15, Humidity: 76, Precipitation: 0},
	coordKey(52.52437, 13.41053): {WeatherCode: 2, Temperature: 9.5, Humidity: 82, Precipitation: 0},
	coordKey(60.39299, 5.32415):  {WeatherCode: 63, Temperature: 7, Humidity: 93, Precipitation: 2.5},
}

func coordKey(latitude, longitude float64) string {
	return strconv.FormatFloat(latitude, 'f', 4, 64) + "," + strconv.FormatFloat(longitude, 'f', 4, 64)
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/v1/search", func(c *gin.Context) {
		name := strings.ToLower(strings.TrimSpace(c.Query("name")))
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": true, "reason": "Parameter 'name' is required"})
			return
		}

		p, exists := places[name]
		if !exists {
			// the real service omits results when nothing matches
			c.JSON(http.StatusOK, gin.H{"generationtime_ms": 0.5})
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": []place{p}})
	})

	r.GET("/v1/forecast", func(c *gin.Context) {
		latitude, latErr := strconv.ParseFloat(c.Query("latitude"), 64)
		longitude, lonErr := strconv.ParseFloat(c.Query("longitude"), 64)
		if latErr != nil || lonErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": true, "reason": "Invalid coordinates"})
			return
		}

		now, exists := forecasts[coordKey(latitude, longitude)]
		if !exists {
			c.JSON(http.StatusInternalServerError, gin.H{"error": true, "reason": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"current_weather": gin.H{
				"time":        "2024-05-01T14:00",
				"temperature": now.Temperature,
				"weathercode": now.WeatherCode,
			},
			"hourly": gin.H{
				"time":                []string{"2024-05-01T14:00", "2024-05-01T15:00"},
				"relativehumidity_2m": []float64{now.Humidity, now.Humidity},
				"precipitation":       []float64{now.Precipitation, now.Precipitation},
			},
		})
	})

	return r
}

func main() {
	port := flag.Int("port", 8081, "listen port")
	flag.Parse()

	gin.SetMode(gin.ReleaseMode)
	addr := fmt.Sprintf(":%d", *port)

	slog.Info("Mock Open-Meteo server starting", "addr", addr)
	if err := newRouter().Run(addr); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

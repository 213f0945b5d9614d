package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weathernow.app/internal/core/weather"
	"weathernow.app/internal/ports"
)

// getWeather handles GET /api/weather requests with one stateless lookup
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	city := c.Query("city")

	model, err := s.weatherUseCase.Lookup(c.Request.Context(), weather.LookupRequest{City: city})
	if err != nil {
		s.handleError(c, err)
		return
	}

	s.logger.Debug("Weather result", ports.F("city", model.CityLabel))
	c.JSON(http.StatusOK, model)
}

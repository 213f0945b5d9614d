package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weathernow.app/internal/core/weather"
	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
	"weathernow.app/pkg/validation"
)

const sessionCookieName = "weather_session"

// LookupPayload is the JSON body of POST /api/session/lookup
type LookupPayload struct {
	City string `json:"city" binding:"required,notblank"`
}

// pageView is the data rendered by the index template
type pageView struct {
	weather.StateView
	City string
}

// existingSession returns the session named by the caller's cookie, if it is still live
func (s *HTTPServerAdapter) existingSession(c *gin.Context) (*weather.Session, bool) {
	id, err := c.Cookie(sessionCookieName)
	if err != nil {
		return nil, false
	}
	return s.sessions.Get(id)
}

// sessionFor returns the caller's session, starting a new one when the cookie is missing or stale.
// Only submissions create sessions.
func (s *HTTPServerAdapter) sessionFor(c *gin.Context) *weather.Session {
	if session, ok := s.existingSession(c); ok {
		return session
	}

	id, session := s.sessions.Create()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, id, int(s.sessions.idleTimeout.Seconds()), "/", "", false, true)
	return session
}

// getSession handles GET /api/session
func (s *HTTPServerAdapter) getSession(c *gin.Context) {
	state := weather.Idle()
	if session, ok := s.existingSession(c); ok {
		state = session.State()
	}
	c.JSON(http.StatusOK, state.View())
}

// postSessionLookup handles POST /api/session/lookup
func (s *HTTPServerAdapter) postSessionLookup(c *gin.Context) {
	var payload LookupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		s.handleError(c, errors.NewValidationError("city is required"))
		return
	}

	state, err := s.sessionFor(c).Submit(c.Request.Context(), payload.City)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, state.View())
}

// postLookup handles the page form submission and redirects back to the page
func (s *HTTPServerAdapter) postLookup(c *gin.Context) {
	city := c.PostForm("city")
	if !validation.IsNotBlank(city) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if _, err := s.sessionFor(c).Submit(c.Request.Context(), city); err != nil {
		s.logger.Debug("Form submission ignored", ports.F("error", err))
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// getIndex renders the page for the caller's session
func (s *HTTPServerAdapter) getIndex(c *gin.Context) {
	view := pageView{StateView: weather.Idle().View()}
	if session, ok := s.existingSession(c); ok {
		view = pageView{StateView: session.State().View(), City: session.LastInput()}
	}
	c.HTML(http.StatusOK, "index.html", view)
}

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSessionHandler_NewSessionIsIdle(t *testing.T) {
	ts := setupTestServer(t, healthy())

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/session", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"idle","loading":false}`, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, 0, ts.server.Sessions().Len())
}

func TestSessionHandler_ReadsDoNotCreateSessions(t *testing.T) {
	ts := setupTestServer(t, healthy())

	for i := 0; i < 5; i++ {
		for _, path := range []string{"/", "/api/session"} {
			rec := ts.do(httptest.NewRequest(http.MethodGet, path, nil))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Result().Cookies())
		}
	}

	assert.Equal(t, 0, ts.server.Sessions().Len())
}

func TestSessionHandler_LookupKeepsStateForSession(t *testing.T) {
	ts := setupTestServer(t, healthy())
	ts.expectParis()

	rec := ts.do(jsonRequest(http.MethodPost, "/api/session/lookup", `{"city":"Paris"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)

	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "success", view["status"])
	assert.Equal(t, false, view["loading"])
	assert.NotContains(t, view, "error")

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.AddCookie(cookie)
	rec = ts.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cityName":"Paris, France"`)
	assert.Equal(t, 1, ts.server.Sessions().Len())
}

func TestSessionHandler_LookupFailure(t *testing.T) {
	ts := setupTestServer(t, healthy())
	ts.geocoder.EXPECT().Geocode(mock.Anything, "Xyzzyville").
		Return((*ports.Location)(nil), errors.NewNotFoundError("City not found"))

	rec := ts.do(jsonRequest(http.MethodPost, "/api/session/lookup", `{"city":"Xyzzyville"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"failure","loading":false,"error":"Error: City not found"}`, rec.Body.String())
}

func TestSessionHandler_LookupRejectsBlankCity(t *testing.T) {
	bodies := []string{`{}`, `{"city":""}`, `{"city":"   "}`, `not json`}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			ts := setupTestServer(t, healthy())

			rec := ts.do(jsonRequest(http.MethodPost, "/api/session/lookup", body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Error: city is required"}`, rec.Body.String())
			assert.Equal(t, 0, ts.server.Sessions().Len())
		})
	}
}

func TestPage_FormSubmissionRendersResult(t *testing.T) {
	ts := setupTestServer(t, healthy())
	ts.expectParis()

	rec := ts.do(formRequest("/lookup", url.Values{"city": {"Paris"}}))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	cookie := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = ts.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	page := rec.Body.String()
	assert.Contains(t, page, "weather-sunny")
	assert.Contains(t, page, "Paris, France")
	assert.Contains(t, page, "22°C")
	assert.Contains(t, page, "Clear sky")
	assert.Contains(t, page, "No Rain")
	assert.Contains(t, page, "Enjoy the weather, Sunscreen might be a good idea")
	assert.Contains(t, page, `class="particles"`)
	assert.Contains(t, page, `value="Paris"`)
	assert.NotContains(t, page, `class="rain"`)
	assert.NotContains(t, page, "error-message")
	assert.NotContains(t, page, "disabled")
}

func TestPage_FormSubmissionRendersError(t *testing.T) {
	ts := setupTestServer(t, healthy())
	ts.geocoder.EXPECT().Geocode(mock.Anything, "Xyzzyville").
		Return((*ports.Location)(nil), errors.NewNotFoundError("City not found"))

	rec := ts.do(formRequest("/lookup", url.Values{"city": {"Xyzzyville"}}))
	cookie := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = ts.do(req)

	page := rec.Body.String()
	assert.Contains(t, page, `id="error-message"`)
	assert.Contains(t, page, "Error: City not found")
	assert.Contains(t, page, `value="Xyzzyville"`)
	assert.NotContains(t, page, "weather-result")
	assert.NotContains(t, page, "weather-sunny")
}

func TestPage_BlankFormSubmissionIsIgnored(t *testing.T) {
	ts := setupTestServer(t, healthy())

	rec := ts.do(formRequest("/lookup", url.Values{"city": {"  "}}))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, 0, ts.server.Sessions().Len())

	ts.expectParis()
	rec = ts.do(formRequest("/lookup", url.Values{"city": {"Paris"}}))
	cookie := sessionCookie(t, rec)

	rec = ts.do(withCookie(formRequest("/lookup", url.Values{"city": {"  "}}), cookie))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = ts.do(withCookie(httptest.NewRequest(http.MethodGet, "/api/session", nil), cookie))
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
}

func withCookie(req *http.Request, cookie *http.Cookie) *http.Request {
	req.AddCookie(cookie)
	return req
}

func TestPage_UnknownCookieRendersIdlePage(t *testing.T) {
	ts := setupTestServer(t, healthy())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "stale"})
	rec := ts.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
	assert.Contains(t, rec.Body.String(), "Get Weather")
	assert.Contains(t, rec.Body.String(), `value=""`)
	assert.Equal(t, 0, ts.server.Sessions().Len())
}

func TestPage_StaleCookieGetsNewSessionOnSubmit(t *testing.T) {
	ts := setupTestServer(t, healthy())
	ts.expectParis()

	req := formRequest("/lookup", url.Values{"city": {"Paris"}})
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "stale"})
	rec := ts.do(req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.NotEqual(t, "stale", sessionCookie(t, rec).Value)
	assert.Equal(t, 1, ts.server.Sessions().Len())
}

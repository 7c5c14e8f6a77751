//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"lessonbook/internal/handler/middleware"
	"lessonbook/internal/pkg/cookie"
	"lessonbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionRouter(t *testing.T) (*gin.Engine, *uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen uuid.UUID
	router := gin.New()
	router.GET("/probe", middleware.BookingSession(), func(c *gin.Context) {
		id, ok := middleware.GetBookingSessionID(c)
		require.True(t, ok)
		seen = id
		c.Status(http.StatusNoContent)
	})
	return router, &seen
}

func TestBookingSessionMintsCookieOnFirstVisit(t *testing.T) {
	router, seen := sessionRouter(t)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/probe", nil, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	minted := httptest.ExtractCookie(rec, cookie.BookingSessionCookieName)
	require.NotNil(t, minted, "first visit must set the session cookie")
	assert.Equal(t, seen.String(), minted.Value)
	assert.True(t, minted.HttpOnly)
}

func TestBookingSessionReusesExistingCookie(t *testing.T) {
	router, seen := sessionRouter(t)
	existing := uuid.New()

	cookies := []*http.Cookie{{Name: cookie.BookingSessionCookieName, Value: existing.String()}}
	rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/probe", nil, cookies, "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, existing, *seen)
	assert.Nil(t, httptest.ExtractCookie(rec, cookie.BookingSessionCookieName),
		"a valid cookie must not be reissued")
}

func TestBookingSessionReplacesGarbageCookie(t *testing.T) {
	router, seen := sessionRouter(t)

	cookies := []*http.Cookie{{Name: cookie.BookingSessionCookieName, Value: "not-a-uuid"}}
	rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/probe", nil, cookies, "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	minted := httptest.ExtractCookie(rec, cookie.BookingSessionCookieName)
	require.NotNil(t, minted)
	assert.Equal(t, seen.String(), minted.Value)
	assert.NotEqual(t, "not-a-uuid", minted.Value)
}

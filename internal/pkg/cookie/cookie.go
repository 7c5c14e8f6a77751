package cookie

import (
	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName    = "access_token"
	BookingSessionCookieName = "booking_session"
)

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetBookingSession(c *gin.Context) string {
	session, _ := c.Cookie(BookingSessionCookieName)
	return session
}

// SetBookingSession pins the anonymous draft session to the device. The draft
// survives reloads but is never shared across devices.
func SetBookingSession(c *gin.Context, sessionID string, maxAgeSeconds int) {
	c.SetCookie(
		BookingSessionCookieName,
		sessionID,
		maxAgeSeconds,
		"/",
		"",
		false,
		true, // HttpOnly
	)
}

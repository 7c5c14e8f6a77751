package middleware

import (
	"lessonbook/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxBookingSessionKey = "booking_session_id"

// sessionCookieMaxAge matches the draft TTL order of magnitude: thirty days.
const sessionCookieMaxAge = 30 * 24 * 60 * 60

// BookingSession pins an anonymous session ID to the device via cookie. Every
// booking route runs behind it, so a draft exists per browser, not per user.
// An unparseable cookie is treated as absent and replaced.
func BookingSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := uuid.Parse(cookie.GetBookingSession(c))
		if err != nil {
			sessionID = uuid.New()
			cookie.SetBookingSession(c, sessionID.String(), sessionCookieMaxAge)
		}

		c.Set(ctxBookingSessionKey, sessionID)
		c.Next()
	}
}

func GetBookingSessionID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxBookingSessionKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

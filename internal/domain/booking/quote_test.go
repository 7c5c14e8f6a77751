//go:build unit

package booking_test

import (
	"testing"
	"time"

	"lessonbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeQuote(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	t.Run("required credits are rate times slot count", func(t *testing.T) {
		d, err := booking.NewDraft(snapshot(t, 10), []booking.Slot{
			booking.ReconstructSlot("2026-09-10", "10:00", "11:00"),
			booking.ReconstructSlot("2026-09-11", "14:00", "15:00"),
			booking.ReconstructSlot("2026-09-12", "09:00", "10:00"),
		}, now)
		require.NoError(t, err)

		q := booking.ComputeQuote(d, booking.AvailabilityAvailable)

		assert.Equal(t, 30, q.RequiredCredits())
		assert.Equal(t, booking.AvailabilityAvailable, q.Availability())
		assert.Equal(t, d.Signature(), q.Signature())

		perSlot := q.PerSlot()
		require.Len(t, perSlot, 3)
		for _, sp := range perSlot {
			assert.Equal(t, 10, sp.Credits)
		}
	})

	t.Run("single slot", func(t *testing.T) {
		d, err := booking.NewDraft(snapshot(t, 25), []booking.Slot{
			booking.ReconstructSlot("2026-09-10", "10:00", "11:00"),
		}, now)
		require.NoError(t, err)

		q := booking.ComputeQuote(d, booking.AvailabilityUnavailable)

		assert.Equal(t, 25, q.RequiredCredits())
		assert.Equal(t, booking.AvailabilityUnavailable, q.Availability())
	})
}

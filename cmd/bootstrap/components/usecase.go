package components

import (
	"time"

	"lessonbook/internal/pkg/clock"
	"lessonbook/internal/pkg/config"
	"lessonbook/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewBookingLocation,
		usecase.NewDraftUseCase,
		NewQuoteUseCase,
		usecase.NewConfirmUseCase,
		usecase.NewLessonUseCase,
	),
)

// NewBookingLocation resolves the wall-clock zone slot times are published in.
func NewBookingLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Booking.TimeZone)
}

func NewQuoteUseCase(store usecase.DraftStore, availability usecase.AvailabilityChecker, cfg config.Config) (usecase.QuoteUseCase, error) {
	return usecase.NewQuoteUseCase(store, availability, cfg.Booking.QuoteCacheSize)
}

package components

import (
	"lessonbook/internal/handler"
	"lessonbook/internal/handler/api"
	"lessonbook/internal/handler/middleware"
	"lessonbook/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDraftHandler,
		api.NewQuoteHandler,
		api.NewConfirmHandler,
		api.NewLessonHandler,
		func(svc *jwt.Service) middleware.TokenValidator { return svc },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lessonbook/internal/handler/api"
	"lessonbook/internal/handler/middleware"
	"lessonbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	draftHandler *api.DraftHandler,
	quoteHandler *api.QuoteHandler,
	confirmHandler *api.ConfirmHandler,
	lessonHandler *api.LessonHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, draftHandler, quoteHandler, confirmHandler, lessonHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	draftHandler *api.DraftHandler,
	quoteHandler *api.QuoteHandler,
	confirmHandler *api.ConfirmHandler,
	lessonHandler *api.LessonHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		booking := apiGroup.Group("/booking")
		booking.Use(middleware.BookingSession())
		{
			addRoutes(booking, []route{
				{Method: http.MethodGet, Path: "/draft", Handler: draftHandler.GetDraft},
				{Method: http.MethodPut, Path: "/draft", Handler: draftHandler.SetSlots},
				{Method: http.MethodDelete, Path: "/draft", Handler: draftHandler.ClearDraft},
				{Method: http.MethodDelete, Path: "/draft/slots", Handler: draftHandler.RemoveSlot},
				{Method: http.MethodPost, Path: "/draft/summary", Handler: draftHandler.SetSummary},
				{Method: http.MethodGet, Path: "/quote", Handler: quoteHandler.GetQuote},
			})

			// Confirmation must see the draft session either way; auth is
			// resolved inside the usecase so an anonymous caller gets the
			// typed AUTH_REQUIRED rejection.
			confirm := booking.Group("")
			confirm.Use(authMiddleware.OptionalAuth())
			addRoutes(confirm, []route{
				{Method: http.MethodPost, Path: "/confirm", Handler: confirmHandler.Confirm},
			})
		}

		lessons := apiGroup.Group("/lessons")
		lessons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(lessons, []route{
				{Method: http.MethodGet, Path: "", Handler: lessonHandler.GetUserLessons},
				{Method: http.MethodGet, Path: "/:id", Handler: lessonHandler.GetLesson},
				{Method: http.MethodGet, Path: "/:id/cancellation", Handler: lessonHandler.PreviewCancellation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: lessonHandler.CancelLesson},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

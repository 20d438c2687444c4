package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"htmx-tictactoe/web"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
)

func createMyRender() multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	// Every page is the base layout plus its content block
	for _, page := range []string{"game.html", "404.html"} {
		tmpl := template.Must(template.New("base.html").ParseFS(web.Templates,
			"templates/layouts/base.html", "templates/pages/"+page))
		r.Add(page, tmpl)
	}

	return r
}

// RequestLogger logs one line per request.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	log := logger.With("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// NewRouter wires the pages, the game API and static assets.
func NewRouter(logger *slog.Logger, h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	r.HTMLRender = createMyRender()
	r.StaticFS("/static", http.FS(web.Static()))

	// Main page
	r.GET("/", h.HomeHandler)

	// Game API endpoints
	r.POST("/api/game/move/:cell", h.GameMoveHandler)
	r.POST("/api/game/jump/:move", h.GameJumpHandler)
	r.POST("/api/game/sort", h.GameSortHandler)
	r.POST("/api/game/reset", h.GameResetHandler)
	r.GET("/api/game/state", h.GameStateHandler)
	r.GET("/api/game/events", h.GameSSEHandler)

	r.NoRoute(h.NotFoundHandler)

	return r
}

package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"htmx-tictactoe/events"
	"htmx-tictactoe/game"
	"htmx-tictactoe/models"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store        *game.Store
	hub          *events.Hub
	log          *slog.Logger
	cookieName   string
	cookieMaxAge int // seconds
}

func NewHandler(logger *slog.Logger, store *game.Store, hub *events.Hub, cookieName string, cookieMaxAge int) *Handler {
	return &Handler{
		store:        store,
		hub:          hub,
		log:          logger.With("component", "handlers"),
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
	}
}

// sessionFromContext returns the caller's session, starting a new one when
// the cookie is missing or points at a session that no longer exists.
func (h *Handler) sessionFromContext(c *gin.Context) *models.Session {
	if id, err := c.Cookie(h.cookieName); err == nil && id != "" {
		if session := h.store.GetSession(id); session != nil {
			return session
		}
	}

	session := h.store.CreateSession()
	h.setSessionCookie(c, session)
	h.log.Debug("session started", "session", session.ID)
	return session
}

// setSessionCookie (re)issues the session cookie. It is refreshed on every
// state change so it expires together with the idle session.
func (h *Handler) setSessionCookie(c *gin.Context, session *models.Session) {
	c.SetCookie(h.cookieName, session.ID, h.cookieMaxAge, "/", "", false, true)
}

func requireHTMX(c *gin.Context) bool {
	if c.GetHeader("HX-Request") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "HTMX request required"})
		return false
	}
	return true
}

func (h *Handler) HomeHandler(c *gin.Context) {
	session := h.sessionFromContext(c)
	session.Lock()
	fragment := renderGameHTML(session.State)
	session.Unlock()

	c.HTML(http.StatusOK, "game.html", gin.H{
		"Title": "Tic-Tac-Toe",
		"Game":  template.HTML(fragment),
	})
}

func (h *Handler) NotFoundHandler(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"Title": "Page Not Found",
	})
}

func (h *Handler) GameMoveHandler(c *gin.Context) {
	if !requireHTMX(c) {
		return
	}

	cell, err := game.ParseCell(c.Param("cell"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := h.sessionFromContext(c)
	session.Lock()
	defer session.Unlock()

	if game.Play(session.State, cell) {
		h.log.Debug("move played", "session", session.ID, "cell", cell, "cursor", session.State.Cursor)
		h.publish(c, session)
	} else {
		h.log.Debug("move ignored", "session", session.ID, "cell", cell)
	}

	renderGame(c, session.State)
}

func (h *Handler) GameJumpHandler(c *gin.Context) {
	if !requireHTMX(c) {
		return
	}

	session := h.sessionFromContext(c)
	session.Lock()
	defer session.Unlock()

	move, err := game.ParseMove(session.State, c.Param("move"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game.JumpTo(session.State, move)
	h.log.Debug("jumped", "session", session.ID, "move", move)
	h.publish(c, session)

	renderGame(c, session.State)
}

func (h *Handler) GameSortHandler(c *gin.Context) {
	if !requireHTMX(c) {
		return
	}

	session := h.sessionFromContext(c)
	session.Lock()
	defer session.Unlock()

	game.ToggleSort(session.State)
	h.log.Debug("sort toggled", "session", session.ID, "order", session.State.Sort)
	h.publish(c, session)

	renderGame(c, session.State)
}

func (h *Handler) GameResetHandler(c *gin.Context) {
	if !requireHTMX(c) {
		return
	}

	session := h.sessionFromContext(c)
	session.Lock()
	defer session.Unlock()

	game.Reset(session.State)
	h.log.Debug("game reset", "session", session.ID)
	h.publish(c, session)

	renderGame(c, session.State)
}

func (h *Handler) GameStateHandler(c *gin.Context) {
	session := h.sessionFromContext(c)
	session.Lock()
	defer session.Unlock()

	state := session.State
	c.JSON(http.StatusOK, gin.H{
		"session":  session.ID,
		"history":  state.History,
		"cursor":   state.Cursor,
		"sort":     state.Sort,
		"board":    game.CurrentBoard(state),
		"xIsNext":  game.IsXNext(state),
		"winner":   game.Winner(state),
		"moveList": game.MoveList(state),
	})
}

// publish records the change, extends the cookie and pushes the re-rendered
// game to every open view of the session. The caller holds the session lock.
func (h *Handler) publish(c *gin.Context, session *models.Session) {
	h.store.Touch(session)
	h.setSessionCookie(c, session)
	h.hub.Broadcast(session.ID, models.GameEvent{
		Type:      "update",
		SessionID: session.ID,
		Data:      renderGameHTML(session.State),
	})
}

// EvictIdle removes sessions idle for longer than maxAge and ends the event
// streams still bound to them, so a browser reconnects under a fresh session.
func (h *Handler) EvictIdle(maxAge time.Duration) []string {
	evicted := h.store.EvictIdle(maxAge)
	for _, id := range evicted {
		h.hub.CloseSession(id)
	}
	return evicted
}

func renderGame(c *gin.Context, state *models.GameState) {
	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, renderGameHTML(state))
}

func (h *Handler) GameSSEHandler(c *gin.Context) {
	session := h.sessionFromContext(c)

	// Set SSE headers
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	subscriber := h.hub.Subscribe(c.Request.Context(), session.ID)
	defer h.hub.Unsubscribe(subscriber)

	// Send initial game state
	session.Lock()
	initial := renderGameHTML(session.State)
	session.Unlock()
	sendSSEEvent(c, models.GameEvent{Type: "update", SessionID: session.ID, Data: initial})

	for {
		select {
		case event, ok := <-subscriber.Channel:
			if !ok {
				return
			}
			sendSSEEvent(c, event)
		case <-subscriber.Context.Done():
			return
		}
	}
}

func sendSSEEvent(c *gin.Context, event models.GameEvent) {
	fragment, ok := event.Data.(string)
	if !ok {
		return
	}
	c.SSEvent(event.Type, fragment)
	c.Writer.Flush()
}

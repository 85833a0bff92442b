package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"metagrow/internal/domain"
	"metagrow/internal/pkg/jwt"
	"metagrow/internal/pkg/response"
)

// ContactLister is the read path the dashboard reports over.
type ContactLister interface {
	List(ctx context.Context) ([]domain.Contact, error)
}

type Handler struct {
	contacts     ContactLister
	creds        CredentialChecker
	sessions     *jwt.Service
	hub          *Hub
	sessionTTL   time.Duration
	cookieSecure bool
	log          *zap.Logger
	upgrader     websocket.Upgrader
}

func NewHandler(
	contacts ContactLister,
	creds CredentialChecker,
	sessions *jwt.Service,
	hub *Hub,
	sessionTTL time.Duration,
	cookieSecure bool,
	log *zap.Logger,
) *Handler {
	return &Handler{
		contacts:     contacts,
		creds:        creds,
		sessions:     sessions,
		hub:          hub,
		sessionTTL:   sessionTTL,
		cookieSecure: cookieSecure,
		log:          log,
		upgrader: websocket.Upgrader{
			// The dashboard page and the websocket share an origin; the
			// session cookie is the actual gate.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/admin", h.Dashboard)
	r.POST("/admin/login", h.Login)
	r.POST("/admin/logout", h.Logout)
	r.GET("/admin/ws", h.LiveFeed)
}

// Dashboard serves the login form to anonymous visitors and the read-only
// submissions report to an authenticated session.
func (h *Handler) Dashboard(c *gin.Context) {
	if !h.authenticated(c) {
		h.renderLogin(c)
		return
	}

	contacts, err := h.contacts.List(c.Request.Context())
	if err != nil {
		h.log.Error("admin dashboard list failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Error loading admin dashboard")
		return
	}

	data := buildDashboardData(contacts, time.Now())
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(c.Writer, data); err != nil {
		h.log.Error("render dashboard failed", zap.Error(err))
	}
}

// Login checks the submitted credentials and, on match, issues the session
// cookie. A mismatch is always the same generic 401: which field was wrong is
// never revealed.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Message(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !h.creds.Check(req.Username, req.Password) {
		h.log.Warn("admin login rejected", zap.String("client_ip", c.ClientIP()))
		response.Message(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.sessions.GenerateToken(req.Username)
	if err != nil {
		h.log.Error("session token generation failed", zap.Error(err))
		response.Message(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(h.sessionTTL.Seconds()), "/", "", h.cookieSecure, true)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// Logout clears the session unconditionally.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", h.cookieSecure, true)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// LiveFeed upgrades an authenticated dashboard to a websocket that receives
// each new submission as it is stored.
func (h *Handler) LiveFeed(c *gin.Context) {
	if !h.authenticated(c) {
		response.Message(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := h.hub.register(conn)
	h.log.Info("admin live feed connected", zap.Int64("conn_id", id))

	// The feed is one-way; the read loop only detects the client going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.unregister(id)
				return
			}
		}
	}()
}

func (h *Handler) authenticated(c *gin.Context) bool {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie == "" {
		return false
	}
	_, err = h.sessions.ValidateToken(cookie)
	return err == nil
}

func (h *Handler) renderLogin(c *gin.Context) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := loginTmpl.Execute(c.Writer, nil); err != nil {
		h.log.Error("render login failed", zap.Error(err))
	}
}

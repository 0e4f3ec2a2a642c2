// Package local serves credential-based login endpoints.
package local

import (
	"net/http"
	"net/url"
	"strings"

	authdomain "github.com/acmeboard/acmeboard/internal/auth/domain"
	"github.com/acmeboard/acmeboard/internal/auth/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HomePath is where successful logins land unless the caller asked for an
// external destination.
const HomePath = "/home"

// Handler manages local auth endpoints.
type Handler struct {
	authsvc  authdomain.Service
	sessions *session.Manager
	log      *zap.Logger
}

func NewHandler(authsvc authdomain.Service, sessions *session.Manager, log *zap.Logger) *Handler {
	return &Handler{
		authsvc:  authsvc,
		sessions: sessions,
		log:      log.Named("auth.local.handler"),
	}
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	group := r.Group("/auth")
	group.POST("/login", h.Login)
	group.POST("/logout", h.Logout)
}

type loginRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CallbackURL string `json:"callback_url"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeLocalError(c, http.StatusBadRequest, "invalid_request")
		return
	}

	result, err := h.authsvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		// One generic failure for bad password and unknown email alike.
		writeLocalError(c, http.StatusUnauthorized, "invalid_credentials")
		return
	}

	h.sessions.Set(c, result.RawToken, result.ExpiresAt)

	h.log.Info("login created session",
		zap.String("user_id", result.User.ID),
	)

	c.JSON(http.StatusOK, gin.H{
		"user":     result.User,
		"redirect": ResolveRedirect(req.CallbackURL),
	})
}

func (h *Handler) Logout(c *gin.Context) {
	token, ok := h.sessions.ReadToken(c)
	if !ok {
		writeLocalError(c, http.StatusUnauthorized, "invalid_session")
		return
	}
	if err := h.authsvc.Logout(c.Request.Context(), token); err != nil {
		writeLocalError(c, http.StatusUnauthorized, "invalid_session")
		return
	}

	h.sessions.Clear(c)
	c.Status(http.StatusNoContent)
}

// ResolveRedirect decides the post-login destination: absolute external URLs
// pass through unchanged, everything else lands on HomePath.
func ResolveRedirect(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return HomePath
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return HomePath
	}
	if parsed.IsAbs() && parsed.Host != "" {
		return trimmed
	}
	return HomePath
}

func writeLocalError(c *gin.Context, status int, code string) {
	c.JSON(status, gin.H{"error": code})
}

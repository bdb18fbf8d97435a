package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/domain/models"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/repository/memory"
)

// SessionHandler manages the login gate and the session profile.
type SessionHandler struct {
	sessions *memory.Store
	logger   *zap.Logger
}

// NewSessionHandler constructs the HTTP handler adapter.
func NewSessionHandler(sessions *memory.Store, logger *zap.Logger) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{sessions: sessions, logger: logger}
}

// Login opens a fresh session seeded with the demo data and returns its token.
func (h *SessionHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	state := h.sessions.Create(models.Profile{
		UserName: strings.TrimSpace(req.Name),
		UnitName: strings.TrimSpace(req.Unit),
		City:     strings.TrimSpace(req.City),
	})

	h.logger.Info("session opened", zap.String("unit", req.Unit))

	c.JSON(http.StatusCreated, gin.H{
		"token":   state.Token,
		"profile": state.Profile(),
	})
}

// Logout discards the current session.
func (h *SessionHandler) Logout(c *gin.Context) {
	state := currentSession(c)
	h.sessions.Delete(state.Token)
	c.Status(http.StatusNoContent)
}

// GetProfile returns the session's user/unit/location context.
func (h *SessionHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c).Profile())
}

// UpdateProfile edits the session context. The user name set here is what
// gets stamped on subsequent IN movements.
func (h *SessionHandler) UpdateProfile(c *gin.Context) {
	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid profile payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	state := currentSession(c)
	state.SetProfile(models.Profile{
		UserName: strings.TrimSpace(req.UserName),
		UnitName: strings.TrimSpace(req.UnitName),
		City:     strings.TrimSpace(req.City),
	})

	c.JSON(http.StatusOK, state.Profile())
}

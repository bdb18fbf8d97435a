package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/domain/models"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/service/assistant"
)

// AssistantHandler fronts the chat screen.
type AssistantHandler struct {
	svc    *assistant.Service
	logger *zap.Logger
}

// NewAssistantHandler constructs the HTTP handler adapter.
func NewAssistantHandler(svc *assistant.Service, logger *zap.Logger) *AssistantHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssistantHandler{svc: svc, logger: logger}
}

// Chat relays one user message to the assistant. Service failures come back
// as 200 with a fallback reply string; only a concurrent in-flight message
// is rejected, with 409.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	state := currentSession(c)

	reply, err := h.svc.Reply(c.Request.Context(), state.Token, req.Message)
	if err != nil {
		if errors.Is(err, assistant.ErrBusy) {
			c.JSON(http.StatusConflict, gin.H{"error": "aguarde a resposta anterior antes de enviar outra mensagem"})
			return
		}
		h.logger.Error("assistant reply failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
		return
	}

	c.JSON(http.StatusOK, models.ChatReply{Reply: reply})
}

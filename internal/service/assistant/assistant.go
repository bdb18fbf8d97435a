package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/pkg/clients/gemini"
)

// systemInstruction is the fixed warehouse-expert persona sent with every
// message. Each call is stateless: only the latest user message goes out.
const systemInstruction = `Você é um especialista em logística, organização de almoxarifado e gestão de estoque (Supply Chain).
Seu objetivo é ajudar funcionários a organizar melhor o almoxarifado, dar dicas de segurança (EPIs),
sugerir layouts de prateleiras, métodos de etiquetagem (5S, Kanban) e uso eficiente de ferramentas como Excel/Word para controle.
Seja prático, direto e use formatação clara.`

// Fallback replies shown to the user. Service failures never leave this
// boundary as errors.
const (
	replyMissingKey = "Erro: Chave de API não configurada. Por favor, verifique suas variáveis de ambiente."
	replyFailure    = "Desculpe, ocorreu um erro ao conectar com o assistente inteligente."
	replyEmpty      = "Desculpe, não consegui gerar uma resposta no momento."
)

// ErrBusy signals that the session already has a message in flight; a new
// one cannot be sent until the prior response resolves or errors.
var ErrBusy = errors.New("assistant request already in flight")

// Service fronts the generative-language client for the chat screen.
type Service struct {
	client gemini.Client // nil when no API key is configured
	logger *zap.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService wires a new assistant service. A nil client is valid and makes
// every reply the missing-credential fallback.
func NewService(client gemini.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:   client,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// Reply sends one user message and returns the assistant's markdown answer,
// or a descriptive fallback string when the call cannot be made or fails.
// Only ErrBusy is ever returned as an error: at most one message per session
// may be in flight.
func (s *Service) Reply(ctx context.Context, sessionToken, message string) (string, error) {
	if !s.acquire(sessionToken) {
		return "", ErrBusy
	}
	defer s.release(sessionToken)

	if s.client == nil {
		return replyMissingKey, nil
	}

	text, err := s.client.GenerateContent(ctx, systemInstruction, message)
	if err != nil {
		s.logger.Error("assistant call failed", zap.Error(err))
		return replyFailure, nil
	}

	if strings.TrimSpace(text) == "" {
		return replyEmpty, nil
	}

	return text, nil
}

func (s *Service) acquire(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[token]; busy {
		return false
	}
	s.inFlight[token] = struct{}{}
	return true
}

func (s *Service) release(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, token)
}

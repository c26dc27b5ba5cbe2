package api

import (
	"github.com/ericogr/saber-duel/internal/portrait"
	"github.com/ericogr/saber-duel/internal/service"
)

// SessionHandler groups all session-related HTTP handlers.
type SessionHandler struct {
	ctrl         *service.Controller
	portraits    *portrait.Store
	tokens       *TokenIssuer
	secureCookie bool
}

// NewSessionHandler creates a SessionHandler. secureCookie marks the
// session cookie Secure (HTTPS deployments).
func NewSessionHandler(ctrl *service.Controller, portraits *portrait.Store, tokens *TokenIssuer, secureCookie bool) *SessionHandler {
	return &SessionHandler{ctrl: ctrl, portraits: portraits, tokens: tokens, secureCookie: secureCookie}
}

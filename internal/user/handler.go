package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/agendafacil/service-agenda-go/internal/auth"
	"github.com/agendafacil/service-agenda-go/internal/user/entity"
)

// Handler exposes HTTP endpoints for login, profile and employee listings.
type Handler struct {
	svc    *Service
	tokens *auth.Service
	logger *zap.SugaredLogger
}

func NewHandler(svc *Service, tokens *auth.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, tokens: tokens, logger: logger}
}

// LoginRequest is the login payload; tipo defaults to cliente.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Senha      string `json:"senha"`
	Tipo       string `json:"tipo"`
}

// LoginResponse pairs the sanitized user with its session token.
type LoginResponse struct {
	User  *entity.Profile `json:"user"`
	Token string          `json:"token"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid login payload", "err", err)
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Requisição inválida"})
		return
	}
	profile, err := h.svc.Login(r.Context(), req.Identifier, req.Senha, req.Tipo)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			h.logger.Debugw("login rejected", "identifier", req.Identifier, "tipo", req.Tipo)
			h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Credenciais inválidas"})
			return
		}
		h.logger.Errorw("login failed", "err", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Erro interno do servidor"})
		return
	}
	token, err := h.tokens.Issue(profile.ID, profile.Tipo, profile.Email)
	if err != nil {
		h.logger.Errorw("token issue failed", "err", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Erro interno do servidor"})
		return
	}
	h.logger.Infow("login ok", "user_id", profile.ID, "tipo", profile.Tipo)
	h.writeJSON(w, http.StatusOK, LoginResponse{User: profile, Token: token})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Token inválido"})
		return
	}
	profile, err := h.svc.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Usuário não encontrado"})
			return
		}
		h.logger.Errorw("get profile failed", "user_id", userID, "err", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Erro interno do servidor"})
		return
	}
	h.writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Token inválido"})
		return
	}
	var upd ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.logger.Debugw("invalid profile payload", "err", err)
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Requisição inválida"})
		return
	}
	if err := h.svc.UpdateProfile(r.Context(), userID, upd); err != nil {
		if errors.Is(err, ErrNotFound) {
			h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Usuário não encontrado"})
			return
		}
		h.logger.Errorw("update profile failed", "user_id", userID, "err", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Erro interno do servidor"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Perfil atualizado com sucesso"})
}

func (h *Handler) Funcionarios(w http.ResponseWriter, r *http.Request) {
	empresaID, err := strconv.ParseInt(r.PathValue("empresaId"), 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Identificador inválido"})
		return
	}
	funcionarios, err := h.svc.Funcionarios(r.Context(), empresaID)
	if err != nil {
		h.logger.Errorw("list funcionarios failed", "empresa_id", empresaID, "err", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Erro interno do servidor"})
		return
	}
	h.writeJSON(w, http.StatusOK, funcionarios)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

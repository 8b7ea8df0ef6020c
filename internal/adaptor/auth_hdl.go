package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// AdminSecretHeader asks registration for an admin account
const AdminSecretHeader = "X-API-Secret-Key"

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /user/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Register(r.Context(), &req, r.Header.Get(AdminSecretHeader))
	if err != nil {
		if errors.Is(err, usecase.ErrUnauthorized) {
			h.log.Warn("register failed - bad admin secret", zap.Error(err))
			utils.ResponseUnauthorized(w, "Incorrect API secret key")
			return
		}
		handleServiceError(w, h.log, err, "register", "", "")
		return
	}

	message := "User created successfully"
	if user.Role == entity.RoleAdmin {
		message = "Admin user created successfully"
	}
	utils.ResponseCreated(w, message, user)
}

// Login handles POST /user/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login", "", "")
		return
	}

	utils.ResponseSuccess(w, "User logged in successfully", token)
}

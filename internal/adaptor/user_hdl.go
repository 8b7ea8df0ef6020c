package adaptor

import (
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /user/me
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	// set by auth middleware
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile", "User does not exist", "")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// TestAdmin handles GET /user/test_admin_user; the admin middleware does the work
func (h *UserHandler) TestAdmin(w http.ResponseWriter, r *http.Request) {
	email, _ := utils.GetEmailFromContext(r.Context())
	h.log.Info("Admin gate passed", zap.String("email", email))

	utils.ResponseSuccess(w, "Admin login required test passed", nil)
}

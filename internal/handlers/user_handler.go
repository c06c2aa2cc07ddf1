// internal/handlers/user_handler.go
package handlers

import (
	"net/http"

	"go_5_toxic_turtle/internal/middleware"
	"go_5_toxic_turtle/internal/service"
	"go_5_toxic_turtle/internal/webutil"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// アカウント情報レスポンスDTO（内部IDやソフトデリート情報は返さない）
type userResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// GetMe は認証済みユーザー自身の情報を返します。
// GET /game/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, userResponse{
		UserID:   user.UserID.String(),
		Username: user.Username,
		Email:    user.Email,
	})
}

// DeleteMe は認証済みユーザーと、そのユーザーが所有する進捗・証明書を削除します。
// DELETE /game/me
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "アカウントと関連データを削除しました。",
	})
}

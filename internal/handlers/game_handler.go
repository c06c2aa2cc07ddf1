// internal/handlers/game_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go_5_toxic_turtle/internal/middleware"
	"go_5_toxic_turtle/internal/model"
	"go_5_toxic_turtle/internal/service"
	"go_5_toxic_turtle/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type GameHandler struct {
	service service.GameService
}

func NewGameHandler(s service.GameService) *GameHandler {
	return &GameHandler{service: s}
}

// GetCurrentLevel はクリア済み最大レベルを返します。
// GET /game/current_level
func (h *GameHandler) GetCurrentLevel(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.CurrentLevel(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// PassLevel はレベルクリアを記録します。
// POST /game/pass_level
func (h *GameHandler) PassLevel(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PassLevelRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
			return
		}
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.service.PassLevel(r.Context(), userID, req.Level)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress)
}

// CheckAllLevels は全レベルクリア済みかどうかを返します。
// GET /game/check_pass_all_level
func (h *GameHandler) CheckAllLevels(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.CheckAllLevels(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// GetLevelData はレベルの静的データ（コード・移動・カーソル）を返します。
// GET /game/get_level_data?level=n
func (h *GameHandler) GetLevelData(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	levelStr := r.URL.Query().Get("level")
	levelNum, err := strconv.Atoi(levelStr)
	if err != nil {
		appErr := model.NewAppError("INVALID_LEVEL", "levelクエリパラメータには整数を指定してください。", "level", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	resp, err := h.service.GetLevelData(r.Context(), userID, levelNum)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// GetProgressSummary は進捗と証明書のサマリーを返します。
// GET /game/user_progress_summary
func (h *GameHandler) GetProgressSummary(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.ProgressSummary(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

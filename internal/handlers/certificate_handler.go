// internal/handlers/certificate_handler.go
package handlers

import (
	"errors"
	"net/http"

	"go_5_toxic_turtle/internal/middleware"
	"go_5_toxic_turtle/internal/model"
	"go_5_toxic_turtle/internal/service"
	"go_5_toxic_turtle/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type CertificateHandler struct {
	service service.CertificateService
}

func NewCertificateHandler(s service.CertificateService) *CertificateHandler {
	return &CertificateHandler{service: s}
}

func toCertificateResponse(cert *model.Certificate) *model.CertificateResponse {
	return &model.CertificateResponse{
		CertificateID:   cert.CertificateID,
		UserID:          cert.UserID,
		CertificateName: cert.CertificateName,
		IssuedAt:        cert.IssuedAt,
	}
}

// Register は証明書を登録します。同一ユーザー・同一名は409。
// POST /game/register_certificate
func (h *CertificateHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.RegisterCertificateRequest
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

	cert, err := h.service.Register(r.Context(), userID, req.CertificateName)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, toCertificateResponse(cert))
}

// GetCertifiedData は最新の証明書を返します。無ければ404。
// GET /game/get_certified_data
func (h *CertificateHandler) GetCertifiedData(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	cert, err := h.service.Latest(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, toCertificateResponse(cert))
}

// CheckCertifiedExists は証明書が存在するかを返します（名前は問わない）。
// GET /game/check_if_certified_exist
func (h *CertificateHandler) CheckCertifiedExists(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.ExistsAny(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

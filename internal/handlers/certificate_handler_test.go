// internal/handlers/certificate_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go_5_toxic_turtle/internal/middleware"
	"go_5_toxic_turtle/internal/model"
	"go_5_toxic_turtle/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCertificateRouter(certSvc *mocks.MockCertificateService) http.Handler {
	h := NewCertificateHandler(certSvc)

	r := chi.NewRouter()
	r.Route("/game", func(r chi.Router) {
		r.Use(middleware.DevUserContextMiddleware)
		r.Post("/register_certificate", h.Register)
		r.Get("/get_certified_data", h.GetCertifiedData)
		r.Get("/check_if_certified_exist", h.CheckCertifiedExists)
	})
	return r
}

func TestCertificateHandler_Register(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 登録成功で201", func(t *testing.T) {
		certSvc := mocks.NewMockCertificateService(t)
		cert := &model.Certificate{
			CertificateID:   uuid.New(),
			UserID:          userID,
			CertificateName: "Completion",
			IssuedAt:        time.Now(),
		}
		certSvc.On("Register", mock.Anything, userID, "Completion").Return(cert, nil).Once()

		router := setupCertificateRouter(certSvc)

		body := `{"certificate_name": "Completion"}`
		req := httptest.NewRequest(http.MethodPost, "/game/register_certificate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", userID.String())
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())
		var resp model.CertificateResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Completion", resp.CertificateName)
		assert.Equal(t, userID, resp.UserID)
	})

	t.Run("異常系: 重複登録は409", func(t *testing.T) {
		certSvc := mocks.NewMockCertificateService(t)
		certSvc.On("Register", mock.Anything, userID, "Completion").Return(nil, model.NewAppError(
			"CERTIFICATE_ALREADY_REGISTERED", "証明書「Completion」は既に登録されています。", "certificate_name", model.ErrConflict,
		)).Once()

		router := setupCertificateRouter(certSvc)

		body := `{"certificate_name": "Completion"}`
		req := httptest.NewRequest(http.MethodPost, "/game/register_certificate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", userID.String())
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		resp := decodeErrorResponse(t, rr.Body.Bytes())
		assert.Equal(t, "CERTIFICATE_ALREADY_REGISTERED", resp.Error.Code)
	})

	t.Run("異常系: 名前未指定はバリデーションエラーで400", func(t *testing.T) {
		certSvc := mocks.NewMockCertificateService(t)
		router := setupCertificateRouter(certSvc)

		req := httptest.NewRequest(http.MethodPost, "/game/register_certificate", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", userID.String())
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeErrorResponse(t, rr.Body.Bytes())
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	})
}

func TestCertificateHandler_GetCertifiedData(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 最新の証明書が200で返る", func(t *testing.T) {
		certSvc := mocks.NewMockCertificateService(t)
		cert := &model.Certificate{
			CertificateID:   uuid.New(),
			UserID:          userID,
			CertificateName: "Completion",
			IssuedAt:        time.Now(),
		}
		certSvc.On("Latest", mock.Anything, userID).Return(cert, nil).Once()

		router := setupCertificateRouter(certSvc)

		req := httptest.NewRequest(http.MethodGet, "/game/get_certified_data", nil)
		req.Header.Set("X-User-ID", userID.String())
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp model.CertificateResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, cert.CertificateID, resp.CertificateID)
	})

	t.Run("異常系: 証明書が無い場合は404", func(t *testing.T) {
		certSvc := mocks.NewMockCertificateService(t)
		certSvc.On("Latest", mock.Anything, userID).Return(nil, model.NewAppError(
			"CERTIFICATE_NOT_FOUND", "証明書が見つかりません。", "", model.ErrNotFound,
		)).Once()

		router := setupCertificateRouter(certSvc)

		req := httptest.NewRequest(http.MethodGet, "/game/get_certified_data", nil)
		req.Header.Set("X-User-ID", userID.String())
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		resp := decodeErrorResponse(t, rr.Body.Bytes())
		assert.Equal(t, "CERTIFICATE_NOT_FOUND", resp.Error.Code)
	})
}

func TestCertificateHandler_CheckCertifiedExists(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name   string
		exists bool
	}{
		{name: "正常系: 証明書あり", exists: true},
		{name: "正常系: 証明書なし", exists: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			certSvc := mocks.NewMockCertificateService(t)
			resp := &model.CertificateExistsResponse{UserID: userID, Exists: tt.exists}
			if tt.exists {
				issuedAt := time.Now()
				resp.IssuedAt = &issuedAt
			}
			certSvc.On("ExistsAny", mock.Anything, userID).Return(resp, nil).Once()

			router := setupCertificateRouter(certSvc)

			req := httptest.NewRequest(http.MethodGet, "/game/check_if_certified_exist", nil)
			req.Header.Set("X-User-ID", userID.String())
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			var got model.CertificateExistsResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.exists, got.Exists)
			if !tt.exists {
				assert.Nil(t, got.IssuedAt)
			}
		})
	}
}

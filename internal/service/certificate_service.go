// internal/service/certificate_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_toxic_turtle/internal/middleware"
	"go_5_toxic_turtle/internal/model"
	"go_5_toxic_turtle/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertificateService インターフェース
type CertificateService interface {
	Register(ctx context.Context, userID uuid.UUID, name string) (*model.Certificate, error)
	Latest(ctx context.Context, userID uuid.UUID) (*model.Certificate, error)
	ExistsAny(ctx context.Context, userID uuid.UUID) (*model.CertificateExistsResponse, error)
}

type certificateService struct {
	db       *gorm.DB
	certRepo repository.CertificateRepository
	userRepo repository.UserRepository
	mailer   Mailer
}

func NewCertificateService(db *gorm.DB, certRepo repository.CertificateRepository, userRepo repository.UserRepository, mailer Mailer) CertificateService {
	return &certificateService{
		db:       db,
		certRepo: certRepo,
		userRepo: userRepo,
		mailer:   mailer,
	}
}

// Register は証明書を発行します。(user_id, name) はユーザー単位で一意。
// 事前チェックで分かる重複は ErrConflict を返し、同時登録の競合は
// ストレージのユニークインデックスが必ず片方を落とす。
func (s *certificateService) Register(ctx context.Context, userID uuid.UUID, name string) (*model.Certificate, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "certificate_name", name)

	var created *model.Certificate

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 重複チェック
		_, err := s.certRepo.FindByUserAndName(ctx, tx, userID, name)
		if err == nil {
			return model.NewAppError(
				"CERTIFICATE_ALREADY_REGISTERED",
				fmt.Sprintf("証明書「%s」は既に登録されています。", name),
				"certificate_name",
				model.ErrConflict,
			)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check certificate existence in transaction", "error", err)
			return model.ErrInternalServer
		}

		// 2. 証明書を作成
		cert := &model.Certificate{
			CertificateID:   uuid.New(),
			UserID:          userID,
			CertificateName: name,
			IssuedAt:        time.Now(),
		}
		if err := s.certRepo.Create(ctx, tx, cert); err != nil {
			// 競合に負けた側はユニークインデックス違反でここに来る
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError(
					"CERTIFICATE_ALREADY_REGISTERED",
					fmt.Sprintf("証明書「%s」は既に登録されています。", name),
					"certificate_name",
					model.ErrConflict,
				)
			}
			logger.Error("Failed to create certificate in transaction", "error", err)
			return model.ErrInternalServer
		}

		created = cert
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrInternalServer) {
			return nil, err
		}
		logger.Error("Transaction failed for Register", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Certificate registered", "certificate_id", created.CertificateID)
	s.notifyIssued(ctx, created)

	return created, nil
}

// notifyIssued は発行通知メールを送信します。通知の失敗で登録自体は失敗させない。
func (s *certificateService) notifyIssued(ctx context.Context, cert *model.Certificate) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByID(ctx, s.db, cert.UserID)
	if err != nil {
		logger.Warn("Skipping certificate mail: user lookup failed", "error", err, "user_id", cert.UserID)
		return
	}

	subject := fmt.Sprintf("証明書「%s」が発行されました", cert.CertificateName)
	body := fmt.Sprintf(
		"%s さん\n\nおめでとうございます！全レベルのクリアにより証明書「%s」が発行されました。\n発行日時: %s\n",
		user.Username, cert.CertificateName, cert.IssuedAt.Format(time.RFC3339),
	)
	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		logger.Warn("Failed to send certificate mail", "error", err, "to", user.Email)
	}
}

// Latest は発行日時の降順で最新の証明書を返します。1件も無ければ ErrNotFound。
func (s *certificateService) Latest(ctx context.Context, userID uuid.UUID) (*model.Certificate, error) {
	cert, err := s.certRepo.FindLatest(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError(
				"CERTIFICATE_NOT_FOUND",
				"証明書が見つかりません。",
				"",
				model.ErrNotFound,
			)
		}
		middleware.GetLogger(ctx).Error("Failed to find latest certificate", "error", err, "user_id", userID)
		return nil, model.ErrInternalServer
	}
	return cert, nil
}

// ExistsAny は名前を問わず証明書が存在するかを返します。
func (s *certificateService) ExistsAny(ctx context.Context, userID uuid.UUID) (*model.CertificateExistsResponse, error) {
	cert, err := s.certRepo.FindAny(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.CertificateExistsResponse{
				UserID: userID,
				Exists: false,
			}, nil
		}
		middleware.GetLogger(ctx).Error("Failed to check certificate existence", "error", err, "user_id", userID)
		return nil, model.ErrInternalServer
	}
	return &model.CertificateExistsResponse{
		UserID:   userID,
		Exists:   true,
		IssuedAt: &cert.IssuedAt,
	}, nil
}

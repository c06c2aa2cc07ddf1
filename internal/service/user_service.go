// internal/service/user_service.go
package service

import (
	"context"
	"errors"

	"go_5_toxic_turtle/internal/middleware"
	"go_5_toxic_turtle/internal/model"
	"go_5_toxic_turtle/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService はユーザー本体（外部コラボレータ所有のエンティティ）への
// 参照と、アカウント削除パスから呼ばれるカスケード削除を提供します。
type UserService interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	progRepo repository.ProgressRepository
	certRepo repository.CertificateRepository
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository, progRepo repository.ProgressRepository, certRepo repository.CertificateRepository) UserService {
	return &userService{
		db:       db,
		userRepo: userRepo,
		progRepo: progRepo,
		certRepo: certRepo,
	}
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.userRepo.FindByID(ctx, s.db, userID)
}

// DeleteUser はユーザーと、そのユーザーが所有する進捗・証明書を
// 1トランザクションで削除します。ORMの暗黙カスケードには頼らず、
// 明示的なステップとして実行する。
func (s *userService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.progRepo.DeleteByUser(ctx, tx, userID); err != nil {
			logger.Error("Failed to delete progress records in transaction", "error", err)
			return model.ErrInternalServer
		}
		if err := s.certRepo.DeleteByUser(ctx, tx, userID); err != nil {
			logger.Error("Failed to delete certificates in transaction", "error", err)
			return model.ErrInternalServer
		}
		if err := s.userRepo.Delete(ctx, tx, userID); err != nil {
			if errors.Is(err, model.ErrUserNotFound) {
				return err
			}
			logger.Error("Failed to delete user in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) || errors.Is(err, model.ErrInternalServer) {
			return err
		}
		logger.Error("Transaction failed for DeleteUser", "error", err)
		return model.ErrInternalServer
	}

	logger.Info("User and owned game records deleted")
	return nil
}

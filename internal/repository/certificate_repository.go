// internal/repository/certificate_repository.go
package repository

import (
	"context"
	"errors"

	"go_5_toxic_turtle/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type CertificateRepository interface {
	Create(ctx context.Context, tx *gorm.DB, cert *model.Certificate) error
	FindByUserAndName(ctx context.Context, db *gorm.DB, userID uuid.UUID, name string) (*model.Certificate, error)
	FindLatest(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Certificate, error)
	FindAny(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Certificate, error)
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Certificate, error)
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type gormCertificateRepository struct{}

func NewGormCertificateRepository() CertificateRepository {
	return &gormCertificateRepository{}
}

// Create は証明書を登録します。(user_id, certificate_name) のユニーク
// インデックス違反は model.ErrConflict に変換して返す。同時登録の競合は
// ここで必ず片方が負ける。
func (r *gormCertificateRepository) Create(ctx context.Context, tx *gorm.DB, cert *model.Certificate) error {
	result := tx.WithContext(ctx).Create(cert)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

// isUniqueViolation はGORMの正規化エラーと、素通りしてくるPostgresの
// 23505 (unique_violation) の両方を拾います。
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return false
}

func (r *gormCertificateRepository) FindByUserAndName(ctx context.Context, db *gorm.DB, userID uuid.UUID, name string) (*model.Certificate, error) {
	var cert model.Certificate
	result := db.WithContext(ctx).
		Where("user_id = ? AND certificate_name = ?", userID, name).
		First(&cert)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &cert, nil
}

// FindLatest は発行日時の降順で最新の1件を返します。
func (r *gormCertificateRepository) FindLatest(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Certificate, error) {
	var cert model.Certificate
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("issued_at DESC").
		First(&cert)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &cert, nil
}

// FindAny は名前を問わず任意の1件を返します（存在チェック用）。
func (r *gormCertificateRepository) FindAny(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Certificate, error) {
	var cert model.Certificate
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cert)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &cert, nil
}

func (r *gormCertificateRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Certificate, error) {
	var certs []*model.Certificate
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("issued_at DESC").
		Find(&certs)
	if result.Error != nil {
		return nil, result.Error
	}
	return certs, nil
}

// DeleteByUser はユーザー削除のカスケードとして全証明書を物理削除します。
func (r *gormCertificateRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Certificate{})
	return result.Error
}

// internal/repository/progress_repository.go
package repository

import (
	"context"
	"errors"

	"go_5_toxic_turtle/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressRepository はレベルクリア記録（進捗台帳）への永続化APIです。
// 各メソッドは呼び出し側から *gorm.DB を受け取る。トランザクション内で
// 実行したい場合は tx を渡す（サービス層の db.Transaction と組で使う）。
type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.Progress) error
	HasPassed(ctx context.Context, db *gorm.DB, userID uuid.UUID, level int) (bool, error)
	MaxLevel(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int, bool, error)
	CountDistinctLevels(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Progress, error)
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.Progress) error {
	// UUIDとPassedAtはService層で設定済み想定
	result := tx.WithContext(ctx).Create(progress)
	return result.Error
}

// HasPassed は該当レベルのクリア記録が1件以上あるかを返します。
func (r *gormProgressRepository) HasPassed(ctx context.Context, db *gorm.DB, userID uuid.UUID, level int) (bool, error) {
	var progress model.Progress
	result := db.WithContext(ctx).
		Where("user_id = ? AND level = ?", userID, level).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

// MaxLevel はクリア済みレベルの最大値を返します。記録が無い場合は found=false。
func (r *gormProgressRepository) MaxLevel(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int, bool, error) {
	var max *int
	result := db.WithContext(ctx).
		Model(&model.Progress{}).
		Select("MAX(level)").
		Where("user_id = ?", userID).
		Scan(&max)
	if result.Error != nil {
		return 0, false, result.Error
	}
	if max == nil {
		return 0, false, nil
	}
	return *max, true, nil
}

// CountDistinctLevels は重複を除いたクリア済みレベル数を返します。
func (r *gormProgressRepository) CountDistinctLevels(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).
		Model(&model.Progress{}).
		Distinct("level").
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *gormProgressRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Progress, error) {
	var progresses []*model.Progress
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("level ASC").
		Find(&progresses)
	if result.Error != nil {
		return nil, result.Error
	}
	return progresses, nil
}

// DeleteByUser はユーザー削除のカスケードとして全進捗を物理削除します。
func (r *gormProgressRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Progress{})
	return result.Error
}

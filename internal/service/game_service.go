// internal/service/game_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go_5_toxic_turtle/internal/level"
	"go_5_toxic_turtle/internal/middleware"
	"go_5_toxic_turtle/internal/model"
	"go_5_toxic_turtle/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameService インターフェース
type GameService interface {
	CurrentLevel(ctx context.Context, userID uuid.UUID) (*model.CurrentLevelResponse, error)
	PassLevel(ctx context.Context, userID uuid.UUID, levelNum int) (*model.Progress, error)
	CheckAllLevels(ctx context.Context, userID uuid.UUID) (*model.AllLevelsResponse, error)
	GetLevelData(ctx context.Context, userID uuid.UUID, levelNum int) (*model.LevelDataResponse, error)
	ProgressSummary(ctx context.Context, userID uuid.UUID) (*model.ProgressSummaryResponse, error)
	CanAccessLevel(ctx context.Context, userID uuid.UUID, levelNum int) (bool, error)
}

type gameService struct {
	db       *gorm.DB // トランザクション用にDB接続を持つ
	catalog  *level.Catalog
	progRepo repository.ProgressRepository
	certRepo repository.CertificateRepository
	userRepo repository.UserRepository
}

func NewGameService(db *gorm.DB, catalog *level.Catalog, progRepo repository.ProgressRepository, certRepo repository.CertificateRepository, userRepo repository.UserRepository) GameService {
	return &gameService{
		db:       db,
		catalog:  catalog,
		progRepo: progRepo,
		certRepo: certRepo,
		userRepo: userRepo,
	}
}

func (s *gameService) invalidLevelError(levelNum int) *model.AppError {
	return model.NewAppError(
		"INVALID_LEVEL",
		fmt.Sprintf("レベル番号が不正です。1〜%dの範囲で指定してください。", s.catalog.Total()),
		"level",
		model.ErrInvalidInput,
	)
}

func (s *gameService) lockedLevelError(levelNum int) *model.AppError {
	return model.NewAppError(
		"LEVEL_LOCKED",
		fmt.Sprintf("レベル%dはまだプレイできません。前のレベルを先にクリアしてください。", levelNum),
		"",
		model.ErrForbidden,
	)
}

// canAccess はアクセスゲート本体。レベル1は常に可。レベルn>1は n-1 の
// クリア記録が1件以上ある場合のみ可。各レコードは書き込み時にこのゲートを
// 通過しているため、チェーン全体の検証は書き込み履歴を通じて推移的に成立する
// （読み取りのたびに 1..n-1 を再検証はしない）。
func (s *gameService) canAccess(ctx context.Context, db *gorm.DB, userID uuid.UUID, levelNum int) (bool, error) {
	if !s.catalog.Contains(levelNum) {
		return false, s.invalidLevelError(levelNum)
	}
	if levelNum == 1 {
		return true, nil
	}
	passed, err := s.progRepo.HasPassed(ctx, db, userID, levelNum-1)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to check previous level record", "error", err, "level", levelNum)
		return false, model.ErrInternalServer
	}
	return passed, nil
}

func (s *gameService) CanAccessLevel(ctx context.Context, userID uuid.UUID, levelNum int) (bool, error) {
	return s.canAccess(ctx, s.db, userID, levelNum)
}

func (s *gameService) CurrentLevel(ctx context.Context, userID uuid.UUID) (*model.CurrentLevelResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	max, found, err := s.progRepo.MaxLevel(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to get max passed level", "error", err)
		return nil, model.ErrInternalServer
	}

	resp := &model.CurrentLevelResponse{
		UserID:      userID,
		TotalLevels: s.catalog.Total(),
	}
	if found {
		resp.CurrentLevel = &max
	}
	return resp, nil
}

// PassLevel はレベルクリアを記録します。検証→ゲート→追記を1トランザクションで
// 実行する。同一レベルの重複記録は意図的に許容される（重複排除しない）。
func (s *gameService) PassLevel(ctx context.Context, userID uuid.UUID, levelNum int) (*model.Progress, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "level", levelNum)

	if !s.catalog.Contains(levelNum) {
		return nil, s.invalidLevelError(levelNum)
	}

	var created *model.Progress

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := s.canAccess(ctx, tx, userID, levelNum)
		if err != nil {
			return err
		}
		if !ok {
			return s.lockedLevelError(levelNum)
		}

		progress := &model.Progress{
			ProgressID: uuid.New(),
			UserID:     userID,
			Level:      levelNum,
			PassedAt:   time.Now(),
		}
		if err := s.progRepo.Create(ctx, tx, progress); err != nil {
			logger.Error("Failed to create progress record in transaction", "error", err)
			return model.ErrInternalServer
		}

		created = progress
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		if errors.Is(err, model.ErrInternalServer) {
			return nil, err
		}
		logger.Error("Transaction failed for PassLevel", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Level passed", "progress_id", created.ProgressID)
	return created, nil
}

func (s *gameService) CheckAllLevels(ctx context.Context, userID uuid.UUID) (*model.AllLevelsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	count, err := s.progRepo.CountDistinctLevels(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count distinct passed levels", "error", err)
		return nil, model.ErrInternalServer
	}

	total := s.catalog.Total()
	return &model.AllLevelsResponse{
		UserID:          userID,
		AllLevelsPassed: int(count) == total,
		LevelsPassed:    int(count),
		TotalLevels:     total,
	}, nil
}

func (s *gameService) GetLevelData(ctx context.Context, userID uuid.UUID, levelNum int) (*model.LevelDataResponse, error) {
	if !s.catalog.Contains(levelNum) {
		return nil, s.invalidLevelError(levelNum)
	}

	ok, err := s.canAccess(ctx, s.db, userID, levelNum)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.lockedLevelError(levelNum)
	}

	entry, err := s.catalog.Get(levelNum)
	if err != nil {
		// Contains で確認済みなのでここには来ない
		return nil, model.ErrInternalServer
	}

	return &model.LevelDataResponse{
		UserID:      userID,
		LevelNumber: entry.Number,
		Code:        entry.Code,
		Movements:   entry.Movements,
		Cursor:      entry.Cursor,
		CanPlay:     true,
	}, nil
}

func (s *gameService) ProgressSummary(ctx context.Context, userID uuid.UUID) (*model.ProgressSummaryResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
		logger.Error("Failed to load user for summary", "error", err)
		return nil, model.ErrInternalServer
	}

	max, found, err := s.progRepo.MaxLevel(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to get max passed level", "error", err)
		return nil, model.ErrInternalServer
	}
	if !found {
		max = 0
	}

	count, err := s.progRepo.CountDistinctLevels(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count distinct passed levels", "error", err)
		return nil, model.ErrInternalServer
	}

	certs, err := s.certRepo.ListByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list certificates", "error", err)
		return nil, model.ErrInternalServer
	}

	certResponses := make([]model.CertificateResponse, 0, len(certs))
	for _, c := range certs {
		certResponses = append(certResponses, model.CertificateResponse{
			CertificateID:   c.CertificateID,
			UserID:          c.UserID,
			CertificateName: c.CertificateName,
			IssuedAt:        c.IssuedAt,
		})
	}

	total := s.catalog.Total()
	percentage := math.Round(float64(count)/float64(total)*100*100) / 100

	return &model.ProgressSummaryResponse{
		UserID:             userID,
		Username:           user.Username,
		MaxLevel:           max,
		LevelsPassed:       int(count),
		TotalLevels:        total,
		AllLevelsPassed:    int(count) == total,
		ProgressPercentage: percentage,
		CertificatesCount:  len(certResponses),
		Certificates:       certResponses,
	}, nil
}

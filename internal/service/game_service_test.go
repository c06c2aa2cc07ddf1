// internal/service/game_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go_5_toxic_turtle/internal/level"
	"go_5_toxic_turtle/internal/model"
	"go_5_toxic_turtle/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
// サービス層のテストでは実DBは不要だが、Transaction を実行するために
// インメモリの sqlite 接続を使う。リポジトリはすべてモック。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for testing")
	return db
}

func newTestCatalog(t *testing.T) *level.Catalog {
	t.Helper()
	catalog, err := level.New()
	require.NoError(t, err)
	return catalog
}

func TestGameService_CanAccessLevel(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name      string
		level     int
		setupMock func(m *mocks.ProgressRepository)
		want      bool
		wantErr   error
	}{
		{
			name:      "正常系: レベル1は記録なしでもアクセス可能",
			level:     1,
			setupMock: func(m *mocks.ProgressRepository) {},
			want:      true,
		},
		{
			name:  "正常系: 直前レベルをクリア済みならアクセス可能",
			level: 2,
			setupMock: func(m *mocks.ProgressRepository) {
				m.On("HasPassed", ctx, mock.AnythingOfType("*gorm.DB"), userID, 1).Return(true, nil).Once()
			},
			want: true,
		},
		{
			name:  "正常系: 直前レベル未クリアならアクセス不可",
			level: 3,
			setupMock: func(m *mocks.ProgressRepository) {
				m.On("HasPassed", ctx, mock.AnythingOfType("*gorm.DB"), userID, 2).Return(false, nil).Once()
			},
			want: false,
		},
		{
			name:      "異常系: レベル0は不正",
			level:     0,
			setupMock: func(m *mocks.ProgressRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name:      "異常系: 存在しないレベルは不正",
			level:     999,
			setupMock: func(m *mocks.ProgressRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			progRepo := mocks.NewProgressRepository(t)
			certRepo := mocks.NewCertificateRepository(t)
			userRepo := mocks.NewUserRepository(t)
			tt.setupMock(progRepo)

			svc := NewGameService(db, newTestCatalog(t), progRepo, certRepo, userRepo)

			got, err := svc.CanAccessLevel(ctx, userID, tt.level)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGameService_PassLevel(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: レベル1のクリアを記録できる", func(t *testing.T) {
		db := setupTestDB(t)
		progRepo := mocks.NewProgressRepository(t)
		certRepo := mocks.NewCertificateRepository(t)
		userRepo := mocks.NewUserRepository(t)

		progRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Progress")).Return(nil).Once()

		svc := NewGameService(db, newTestCatalog(t), progRepo, certRepo, userRepo)

		created, err := svc.PassLevel(ctx, userID, 1)
		require.NoError(t, err)
		assert.Equal(t, userID, created.UserID)
		assert.Equal(t, 1, created.Level)
		assert.NotEqual(t, uuid.Nil, created.ProgressID)
		assert.WithinDuration(t, time.Now(), created.PassedAt, 5*time.Second)
	})

	t.Run("正常系: 同じレベルを重複して記録できる", func(t *testing.T) {
		db := setupTestDB(t)
		progRepo := mocks.NewProgressRepository(t)
		certRepo := mocks.NewCertificateRepository(t)
		userRepo := mocks.NewUserRepository(t)

		progRepo.On("HasPassed", ctx, mock.AnythingOfType("*gorm.DB"), userID, 1).Return(true, nil).Twice()
		progRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Progress")).Return(nil).Twice()

		svc := NewGameService(db, newTestCatalog(t), progRepo, certRepo, userRepo)

		first, err := svc.PassLevel(ctx, userID, 2)
		require.NoError(t, err)
		second, err := svc.PassLevel(ctx, userID, 2)
		require.NoError(t, err)
		// 記録IDは別になる
		assert.NotEqual(t, first.ProgressID, second.ProgressID)
	})

	t.Run("異常系: 範囲外のレベルは ErrInvalidInput", func(t *testing.T) {
		db := setupTestDB(t)
		progRepo := mocks.NewProgressRepository(t)
		certRepo := mocks.NewCertificateRepository(t)
		userRepo := mocks.NewUserRepository(t)

		svc := NewGameService(db, newTestCatalog(t), progRepo, certRepo, userRepo)

		for _, lv := range []int{0, -1, 999} {
			_, err := svc.PassLevel(ctx, userID, lv)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrInvalidInput), "level=%d: expected ErrInvalidInput, got %v", lv, err)
		}
	})

	t.Run("異常系: 直前レベル未クリアは ErrForbidden", func(t *testing.T) {
		db := setupTestDB(t)
		progRepo := mocks.NewProgressRepository(t)
		certRepo := mocks.NewCertificateRepository(t)
		userRepo := mocks.NewUserRepository(t)

		progRepo.On("HasPassed", ctx, mock.AnythingOfType("*gorm.DB"), userID, 2).Return(false, nil).Once()

		svc := NewGameService(db, newTestCatalog(t), progRepo, certRepo, userRepo)

		_, err := svc.PassLevel(ctx, userID, 3)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrForbidden), "expected ErrForbidden, got %v", err)
		// 記録は作成されない（Create にモック期待を設定していないことで検証）
	})

	t.Run("異常系: 記録の作成に失敗した場合は ErrInternalServer", func(t *testing.T) {
		db := setupTestDB(t)
		progRepo := mocks.NewProgressRepository(t)
		certRepo := mocks.NewCertificateRepository(t)
		userRepo := mocks.NewUserRepository(t)

		progRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Progress")).Return(errors.New("db down")).Once()

		svc := NewGameService(db, newTestCatalog(t), progRepo, certRepo, userRepo)

		_, err := svc.PassLevel(ctx, userID, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInternalServer))
	})
}

func TestGameService_CurrentLevel(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: クリア記録が無い場合は current_level が nil", func(t *testing.T) {
		db := setupTestDB(t)
		progRepo := mocks.NewProgressRepository(t)
		certRepo := mocks.NewCertificateRepository(t)
		userRepo := mocks.NewUserRepository(t)

		progRepo.On("MaxLevel", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(0, false, nil).Once()

		svc := NewGameService(db, newTestCatalog(t), progRepo, certRepo, userRepo)

		resp, err := svc.CurrentLevel(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, resp.CurrentLevel)
		assert.Equal(t, 4, resp.TotalLevels)
		assert.Equal(t, userID, resp.UserID)
	})

	t.Run("正常系: 最大クリアレベルが返る", func(t *testing.T) {
		db := setupTestDB(t)
		progRepo := mocks.NewProgressRepository(t)
		certRepo := mocks.NewCertificateRepository(t)
		userRepo := mocks.NewUserRepository(t)

		progRepo.On("MaxLevel", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(3, true, nil).Once()

		svc := NewGameService(db, newTestCatalog(t), progRepo, certRepo, userRepo)

		resp, err := svc.CurrentLevel(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, resp.CurrentLevel)
		assert.Equal(t, 3, *resp.CurrentLevel)
	})
}

func TestGameService_CheckAllLevels(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name       string
		count      int64
		wantPassed bool
	}{
		{name: "正常系: 全レベルクリア済み", count: 4, wantPassed: true},
		{name: "正常系: 一部のみクリア", count: 2, wantPassed: false},
		{name: "正常系: 未クリア", count: 0, wantPassed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			progRepo := mocks.NewProgressRepository(t)
			certRepo := mocks.NewCertificateRepository(t)
			userRepo := mocks.NewUserRepository(t)

			progRepo.On("CountDistinctLevels", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(tt.count, nil).Once()

			svc := NewGameService(db, newTestCatalog(t), progRepo, certRepo, userRepo)

			resp, err := svc.CheckAllLevels(ctx, userID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPassed, resp.AllLevelsPassed)
			assert.Equal(t, int(tt.count), resp.LevelsPassed)
			assert.Equal(t, 4, resp.TotalLevels)
		})
	}
}

func TestGameService_GetLevelData(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: アクセス可能なレベルのデータが返る", func(t *testing.T) {
		db := setupTestDB(t)
		progRepo := mocks.NewProgressRepository(t)
		certRepo := mocks.NewCertificateRepository(t)
		userRepo := mocks.NewUserRepository(t)

		svc := NewGameService(db, newTestCatalog(t), progRepo, certRepo, userRepo)

		resp, err := svc.GetLevelData(ctx, userID, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.LevelNumber)
		assert.True(t, resp.CanPlay)
		assert.NotEmpty(t, resp.Code)
		// 操作列とカーソル列は同じ長さ
		assert.Equal(t, len(resp.Movements), len(resp.Cursor))
	})

	t.Run("異常系: ロックされたレベルは ErrForbidden", func(t *testing.T) {
		db := setupTestDB(t)
		progRepo := mocks.NewProgressRepository(t)
		certRepo := mocks.NewCertificateRepository(t)
		userRepo := mocks.NewUserRepository(t)

		progRepo.On("HasPassed", ctx, mock.AnythingOfType("*gorm.DB"), userID, 1).Return(false, nil).Once()

		svc := NewGameService(db, newTestCatalog(t), progRepo, certRepo, userRepo)

		_, err := svc.GetLevelData(ctx, userID, 2)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrForbidden))
	})

	t.Run("異常系: 範囲外のレベルは ErrInvalidInput", func(t *testing.T) {
		db := setupTestDB(t)
		progRepo := mocks.NewProgressRepository(t)
		certRepo := mocks.NewCertificateRepository(t)
		userRepo := mocks.NewUserRepository(t)

		svc := NewGameService(db, newTestCatalog(t), progRepo, certRepo, userRepo)

		_, err := svc.GetLevelData(ctx, userID, 5)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))
	})
}

func TestGameService_ProgressSummary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: 集計値が正しく組み立てられる", func(t *testing.T) {
		db := setupTestDB(t)
		progRepo := mocks.NewProgressRepository(t)
		certRepo := mocks.NewCertificateRepository(t)
		userRepo := mocks.NewUserRepository(t)

		user := &model.User{UserID: userID, Username: "demo_player"}
		issuedAt := time.Now()
		certs := []*model.Certificate{
			{CertificateID: uuid.New(), UserID: userID, CertificateName: "Completion", IssuedAt: issuedAt},
		}

		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(user, nil).Once()
		progRepo.On("MaxLevel", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(2, true, nil).Once()
		progRepo.On("CountDistinctLevels", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(int64(2), nil).Once()
		certRepo.On("ListByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(certs, nil).Once()

		svc := NewGameService(db, newTestCatalog(t), progRepo, certRepo, userRepo)

		resp, err := svc.ProgressSummary(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "demo_player", resp.Username)
		assert.Equal(t, 2, resp.MaxLevel)
		assert.Equal(t, 2, resp.LevelsPassed)
		assert.Equal(t, 4, resp.TotalLevels)
		assert.False(t, resp.AllLevelsPassed)
		// 2/4 = 50%
		assert.Equal(t, 50.0, resp.ProgressPercentage)
		assert.Equal(t, 1, resp.CertificatesCount)
		require.Len(t, resp.Certificates, 1)
		assert.Equal(t, "Completion", resp.Certificates[0].CertificateName)
	})

	t.Run("正常系: 記録なしユーザーは割合0で最大レベル0", func(t *testing.T) {
		db := setupTestDB(t)
		progRepo := mocks.NewProgressRepository(t)
		certRepo := mocks.NewCertificateRepository(t)
		userRepo := mocks.NewUserRepository(t)

		user := &model.User{UserID: userID, Username: "newbie"}
		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(user, nil).Once()
		progRepo.On("MaxLevel", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(0, false, nil).Once()
		progRepo.On("CountDistinctLevels", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(int64(0), nil).Once()
		certRepo.On("ListByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return([]*model.Certificate{}, nil).Once()

		svc := NewGameService(db, newTestCatalog(t), progRepo, certRepo, userRepo)

		resp, err := svc.ProgressSummary(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.MaxLevel)
		assert.Equal(t, 0.0, resp.ProgressPercentage)
		assert.Empty(t, resp.Certificates)
	})

	t.Run("異常系: ユーザーが存在しない場合は ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		progRepo := mocks.NewProgressRepository(t)
		certRepo := mocks.NewCertificateRepository(t)
		userRepo := mocks.NewUserRepository(t)

		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(nil, model.ErrUserNotFound).Once()

		svc := NewGameService(db, newTestCatalog(t), progRepo, certRepo, userRepo)

		_, err := svc.ProgressSummary(ctx, userID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrUserNotFound))
	})
}

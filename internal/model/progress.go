// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Progress はレベルクリアの記録を表します。
// 追記専用で、同一 (user, level) の重複レコードは仕様上許容される
// （ユニーク制約は張らない。アクセス可否はゲート側で書き込み時に判定する）。
type Progress struct {
	ProgressID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Level      int       `gorm:"not null" json:"level"`
	PassedAt   time.Time `gorm:"not null" json:"passed_at"`
}

func (Progress) TableName() string {
	return "progresses"
}

// レベルクリア登録リクエストDTO
type PassLevelRequest struct {
	Level int `json:"level" validate:"required,min=1"`
}

// GET /game/current_level のレスポンス
type CurrentLevelResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	CurrentLevel *int      `json:"current_level"` // 未クリアなら null
	TotalLevels  int       `json:"total_levels"`
}

// GET /game/check_pass_all_level のレスポンス
type AllLevelsResponse struct {
	UserID          uuid.UUID `json:"user_id"`
	AllLevelsPassed bool      `json:"all_levels_passed"`
	LevelsPassed    int       `json:"levels_passed"`
	TotalLevels     int       `json:"total_levels"`
}

// GET /game/get_level_data のレスポンス
type LevelDataResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	LevelNumber int       `json:"level_number"`
	Code        string    `json:"code"`
	Movements   []string  `json:"movements"`
	Cursor      []int     `json:"cursor"`
	CanPlay     bool      `json:"can_play"`
}

// GET /game/user_progress_summary のレスポンス
type ProgressSummaryResponse struct {
	UserID             uuid.UUID             `json:"user_id"`
	Username           string                `json:"username"`
	MaxLevel           int                   `json:"max_level"`
	LevelsPassed       int                   `json:"levels_passed"`
	TotalLevels        int                   `json:"total_levels"`
	AllLevelsPassed    bool                  `json:"all_levels_passed"`
	ProgressPercentage float64               `json:"progress_percentage"`
	CertificatesCount  int                   `json:"certificates_count"`
	Certificates       []CertificateResponse `json:"certificates"`
}

// cmd/db_seed/main.go
//
// 開発用のシードコマンド。デモユーザーを作成し、そのユーザーでAPIを叩くための
// 開発用Bearerトークンを標準出力に表示します。
// 本番の認証コラボレータが発行するトークンと同じ形式 (HS256, sub=user_id)。
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go_5_toxic_turtle/internal/config"
	"go_5_toxic_turtle/internal/model"
	"go_5_toxic_turtle/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Progress{}, &model.Certificate{}); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	userRepo := repository.NewGormUserRepository()

	user := &model.User{
		UserID:   uuid.New(),
		Username: "demo_player",
		Email:    "demo@example.com",
		IsActive: true,
	}

	ctx := context.Background()
	if err := userRepo.Create(ctx, db, user); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	// 開発用トークンを発行 (有効期限24時間)
	claims := jwt.RegisteredClaims{
		Subject:   user.UserID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWT.SecretKey))
	if err != nil {
		log.Fatalf("Failed to sign dev token: %v", err)
	}

	fmt.Fprintf(os.Stdout, "user_id: %s\n", user.UserID)
	fmt.Fprintf(os.Stdout, "username: %s\n", user.Username)
	fmt.Fprintf(os.Stdout, "token: %s\n", signed)
}

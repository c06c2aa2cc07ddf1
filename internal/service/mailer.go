// internal/service/mailer.go
package service

import (
	"context"

	"go_5_toxic_turtle/internal/config"
	"go_5_toxic_turtle/internal/middleware"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NewMailer は設定に応じた Mailer 実装を返します。
func NewMailer(cfg *config.Config) Mailer {
	switch cfg.Mail.Provider {
	case "ses":
		return NewSESMailer(cfg)
	default:
		return &LogMailer{}
	}
}

// --- LogMailer ---
// 開発・テスト用。実際には送信せずログに出すだけ。
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

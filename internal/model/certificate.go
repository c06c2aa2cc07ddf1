// internal/model/certificate.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Certificate は発行済み証明書を表します。
// certificate_name はユーザー単位で一意（グローバルではない）。
// 同時登録の競合はこの複合ユニークインデックスで決着させる。
type Certificate struct {
	CertificateID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_user_cert_name,unique" json:"user_id"`
	CertificateName string    `gorm:"not null;index:idx_user_cert_name,unique" json:"certificate_name"`
	IssuedAt        time.Time `gorm:"not null;index" json:"issued_at"`
}

func (Certificate) TableName() string {
	return "certificates"
}

// 証明書登録リクエストDTO
type RegisterCertificateRequest struct {
	CertificateName string `json:"certificate_name" validate:"required,min=1,max=255"`
}

// クライアントに返す証明書情報
type CertificateResponse struct {
	CertificateID   uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	CertificateName string    `json:"certificate_name"`
	IssuedAt        time.Time `json:"issued_at"`
}

// GET /game/check_if_certified_exist のレスポンス。
// 名前は見ない。何かしらの証明書が存在するかどうかだけを返す。
type CertificateExistsResponse struct {
	UserID   uuid.UUID  `json:"user_id"`
	Exists   bool       `json:"exists"`
	IssuedAt *time.Time `json:"issued_at"`
}

// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "ToxicTurtleAPI"
	AppVersion = "0.1.0"
)

// デフォルト設定値
const (
	DefaultServerPort   = ":8080"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
	DefaultMailProvider = "log"
	DefaultAuthEnabled  = true
)

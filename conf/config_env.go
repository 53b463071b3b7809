package conf

import (
	"github.com/caarlos0/env/v6"
)

// AppConfig presents app conf
type AppConfig struct {
	Port      string `env:"PORT" envDefault:"8081"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	DBHost    string `env:"DB_HOST" envDefault:"localhost"`
	DBPort    string `env:"DB_PORT" envDefault:"5432"`
	DBUser    string `env:"DB_USER" envDefault:"pos_dev_user"`
	DBPass    string `env:"DB_PASS" envDefault:""`
	DBName    string `env:"DB_NAME" envDefault:"pos_dev_system"`
	EnableDB  string `env:"ENABLE_DB" envDefault:"true"`

	JWTSecret        string   `env:"JWT_SECRET" envDefault:""`
	JWTIssuer        string   `env:"JWT_ISSUER" envDefault:"pos-system"`
	ReportTimezone   string   `env:"REPORT_TIMEZONE" envDefault:"Asia/Ho_Chi_Minh"`
	CorsAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

var config AppConfig

func SetEnv() {
	_ = env.Parse(&config)
}

func LoadEnv() AppConfig {
	return config
}

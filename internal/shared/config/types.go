package config

import (
	"fmt"
	"strings"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	FrontendURL    string   `mapstructure:"frontend_url"`
	Timezone       string   `mapstructure:"timezone"`
	AutoMigrate    bool     `mapstructure:"auto_migrate"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects the driver with Driver ("mysql" or "postgres").
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) IsPostgres() bool {
	return strings.EqualFold(d.Driver, "postgres") || strings.EqualFold(d.Driver, "postgresql")
}

// GetDSN returns the connection string for the configured driver.
func (d *DatabaseConfig) GetDSN() string {
	if d.IsPostgres() {
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type GoogleOAuthConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

func (g *GoogleOAuthConfig) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}

type OAuthConfig struct {
	Google GoogleOAuthConfig `mapstructure:"google"`
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// RateLimitConfig bounds anonymous write traffic (submissions, upvotes, logins).
type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	Requests      int  `mapstructure:"requests"`
	WindowSeconds int  `mapstructure:"window_seconds"`
}

type AMQPConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Queue   string `mapstructure:"queue"`
}

type StorageConfig struct {
	MediaRoot   string `mapstructure:"media_root"`
	MediaURL    string `mapstructure:"media_url"`
	MaxUploadMB int    `mapstructure:"max_upload_mb"`
}

// ComplaintConfig tunes identifier generation.
type ComplaintConfig struct {
	IDPrefix    string `mapstructure:"id_prefix"`
	MaxAttempts int    `mapstructure:"max_id_attempts"`
}

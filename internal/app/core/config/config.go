package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-pay-ledger/pkg/database"
	"github.com/JoeShih716/go-pay-ledger/pkg/logger"
)

// DriverMemory 使用記憶體 Store (搭配 WAL)
const DriverMemory = "memory"

// 環境變數覆寫
const (
	EnvDatabaseDriver   = "LEDGER_DATABASE_DRIVER"
	EnvDatabasePassword = "LEDGER_DATABASE_PASSWORD"
	EnvJWTSecret        = "LEDGER_JWT_SECRET"
	EnvAMQPURL          = "LEDGER_AMQP_URL"
)

type Config struct {
	Server   ServerConfig    `yaml:"server"`
	Database database.Config `yaml:"database"`
	WAL      WALConfig       `yaml:"wal"`
	Logger   logger.Config   `yaml:"logger"`
	Auth     AuthConfig      `yaml:"auth"`
	AMQP     AMQPConfig      `yaml:"amqp"`
}

type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`
	GRPCAddr string `yaml:"grpc_addr"`
}

type WALConfig struct {
	Path string `yaml:"path"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
	Issuer    string        `yaml:"issuer"`
}

// AMQPConfig URL 為空代表不發佈交易紀錄
type AMQPConfig struct {
	URL   string `yaml:"url"`
	Queue string `yaml:"queue"`
}

// Load 讀取設定檔
//
// 順序: .env (不存在不算錯誤) -> YAML -> 環境變數覆寫 -> 預設值
//
// 參數:
//
//	path: YAML 設定檔路徑
//
// 回傳:
//
//	*Config: 設定
//	error: 讀檔或解析錯誤
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse 解析 YAML 內容並套用環境變數與預設值
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvDatabaseDriver); ok && v != "" {
		c.Database.Driver = v
	}
	if v, ok := os.LookupEnv(EnvDatabasePassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvJWTSecret); ok && v != "" {
		c.Auth.JWTSecret = v
	}
	if v, ok := os.LookupEnv(EnvAMQPURL); ok {
		c.AMQP.URL = v
	}
}

// applyDefaults 補全預設配置 (如果 yaml 沒寫)
func (c *Config) applyDefaults() {
	if c.Server.HTTPAddr == "" {
		c.Server.HTTPAddr = ":8080"
	}
	if c.Server.GRPCAddr == "" {
		c.Server.GRPCAddr = ":50051"
	}

	if c.Database.Driver == "" {
		c.Database.Driver = DriverMemory
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 100
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 10
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 30 * time.Minute
	}
	if c.Database.LogLevel == "" {
		c.Database.LogLevel = "error"
	}

	if c.WAL.Path == "" {
		c.WAL.Path = "wal.log"
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}

	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}
	if c.Auth.Issuer == "" {
		c.Auth.Issuer = "go-pay-ledger"
	}
	if c.AMQP.Queue == "" {
		c.AMQP.Queue = "ledger.records"
	}
}

// UseMemoryStore 是否使用記憶體 Store
func (c *Config) UseMemoryStore() bool {
	return c.Database.Driver == DriverMemory
}

// Validate 啟動前檢查
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required (or set %s)", EnvJWTSecret)
	}
	switch c.Database.Driver {
	case DriverMemory, database.DriverMySQL, database.DriverPostgres, database.DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	return nil
}

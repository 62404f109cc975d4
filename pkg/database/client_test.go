package database

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "mysql",
			cfg:  Config{Driver: DriverMySQL, Host: "db", Port: 3306, User: "root", Password: "secret", DBName: "ledger"},
			want: "root:secret@tcp(db:3306)/ledger?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			name: "mysql is the default driver",
			cfg:  Config{Host: "db", Port: 3306, User: "u", Password: "p", DBName: "d"},
			want: "u:p@tcp(db:3306)/d?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			name: "postgres",
			cfg:  Config{Driver: DriverPostgres, Host: "pg", Port: 5432, User: "user", Password: "p@ss", DBName: "ledger", SSLMode: "require"},
			want: "postgres://user:p%40ss@pg:5432/ledger?sslmode=require",
		},
		{
			name: "postgres default ssl mode",
			cfg:  Config{Driver: DriverPostgres, Host: "pg", Port: 5432, User: "user", Password: "pw", DBName: "ledger"},
			want: "postgres://user:pw@pg:5432/ledger?sslmode=disable",
		},
		{
			name: "sqlite in memory",
			cfg:  Config{Driver: DriverSQLite},
			want: "file::memory:?cache=shared",
		},
		{
			name: "sqlite file",
			cfg:  Config{Driver: DriverSQLite, Path: "ledger.db"},
			want: "ledger.db",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, parseLogLevel("info"))
	assert.Equal(t, logger.Warn, parseLogLevel("warn"))
	assert.Equal(t, logger.Silent, parseLogLevel("silent"))
	assert.Equal(t, logger.Error, parseLogLevel(""))
	assert.Equal(t, logger.Error, parseLogLevel("verbose"))
}

func TestNewClient_UnsupportedDriver(t *testing.T) {
	_, err := NewClient(Config{Driver: "oracle"}, zerolog.Nop())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestNewClient_SQLite(t *testing.T) {
	client, err := NewClient(Config{
		Driver:       DriverSQLite,
		Path:         "file:client_test?mode=memory&cache=shared",
		MaxOpenConns: 1,
		LogLevel:     "silent",
	}, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	var one int
	require.NoError(t, client.DB().Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

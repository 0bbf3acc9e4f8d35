package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("database:\n  host: db\n  user: diary\n  dbname: diary\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 900, cfg.JWT.ExpiresIn)
	assert.Equal(t, "diary:@tcp(db:3306)/diary?charset=utf8mb4&parseTime=True&loc=Local", cfg.Database.GetDSN())
}

func TestParse_EnvOverride(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "secret-from-env")

	cfg, err := Parse([]byte("database:\n  password: from-file\njwt:\n  secret: file-secret\n"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "secret-from-env", cfg.JWT.Secret)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("server: [unclosed"))
	assert.Error(t, err)
}

func TestIsDevelopment(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"local", true},
		{"dev", true},
		{"development", true},
		{"production", false},
	}
	for _, tt := range tests {
		cfg := &Config{Server: ServerConfig{Env: tt.env}}
		assert.Equal(t, tt.expected, cfg.IsDevelopment(), tt.env)
	}
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", mask(""))
	assert.Equal(t, "****", mask("abc"))
	assert.Equal(t, "ab**ef", mask("abcdef"))
}

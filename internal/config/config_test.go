package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("defaults to seven days", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "")
		cfg, err := NewJWTConfig()
		require.NoError(t, err)
		assert.Equal(t, 168, cfg.ExpirationHours)
		assert.Equal(t, 168*3600, cfg.CookieMaxAge())
	})

	t.Run("invalid expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "zero")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("expiration below one hour", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "0")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})
}

func TestNewPasswordConfig(t *testing.T) {
	t.Run("default cost", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "")
		cfg, err := NewPasswordConfig()
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.BcryptCost)
	})

	t.Run("cost out of range", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "31")
		_, err := NewPasswordConfig()
		assert.Error(t, err)
	})
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 4} // minimum cost for fast tests

	hash, err := cfg.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, cfg.VerifyPassword("hunter22", hash))
	assert.False(t, cfg.VerifyPassword("wrong", hash))
}

func TestNewMongoConfig(t *testing.T) {
	t.Run("missing URI", func(t *testing.T) {
		t.Setenv("MONGODB_URI", "")
		_, err := NewMongoConfig()
		assert.Error(t, err)
	})

	t.Run("default database name", func(t *testing.T) {
		t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
		t.Setenv("MONGODB_DATABASE", "")
		cfg, err := NewMongoConfig()
		require.NoError(t, err)
		assert.Equal(t, "resume_screener", cfg.Database)
	})
}

func TestNewUploadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("MAX_UPLOAD_FILES", "")
		t.Setenv("MAX_UPLOAD_FILE_MB", "")
		cfg, err := NewUploadConfig()
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.MaxFiles)
		assert.Equal(t, int64(10<<20), cfg.MaxFileBytes)
		assert.Equal(t, 50, cfg.MinDescription)
	})

	t.Run("invalid file count", func(t *testing.T) {
		t.Setenv("MAX_UPLOAD_FILES", "-1")
		_, err := NewUploadConfig()
		assert.Error(t, err)
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	c, err := LoadConfig("config.toml")
	require.NoError(t, err)

	assert.True(t, c.DB.Automigrate)
	assert.Equal(t, "8081", c.HTTP.Port)
	assert.Equal(t, []string{"https://app.waitlister.dev"}, c.HTTP.AllowedOrigins)
	assert.Equal(t, 10, c.HTTP.JoinRateLimit)
	assert.Equal(t, "uploads", c.Bucket.BaseFolder)
	assert.Equal(t, "https://files.waitlister.dev", c.Bucket.PublicBaseURL)
	assert.Equal(t, "Waitlister", c.Mailer.FromName)
	assert.NoError(t, c.Validate())
	assert.False(t, c.BucketEnabled())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "from-env")
	t.Setenv("CREEM_WEBHOOK_SECRET", "whsec_env")

	c, err := LoadConfig("config.toml")
	require.NoError(t, err)
	assert.Equal(t, "from-env", c.Auth.JWTSecret)
	assert.Equal(t, "whsec_env", c.Creem.WebhookSecret)
}

func TestLoadConfigDSNFromParts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.toml")
	require.NoError(t, os.WriteFile(path, []byte("[auth]\njwt_secret = \"x\"\n"), 0o600))

	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_USER", "u")
	t.Setenv("MYSQL_PASSWORD", "p")
	t.Setenv("MYSQL_DATABASE", "w")

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "u:p@tcp(db.internal:3306)/w?charset=utf8mb4&parseTime=true", c.DB.DSN)
}

func TestValidate(t *testing.T) {
	c := &Config{}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql.dsn is required")
	assert.Contains(t, err.Error(), "auth.jwt_secret is required")

	c.DB.DSN = "x"
	c.Auth.JWTSecret = "y"
	c.HTTP.Port = "99999"
	c.Bucket.PublicBaseURL = "not a url"
	c.Mailer.APIKey = "SG.x"
	c.Mailer.FromEmail = "nope"
	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http.port")
	assert.Contains(t, err.Error(), "bucket.public_base_url")
	assert.Contains(t, err.Error(), "mailer.from_email")
}

func TestValidateRejectsWildcardOrigin(t *testing.T) {
	c := &Config{}
	c.DB.DSN = "x"
	c.Auth.JWTSecret = "y"
	c.HTTP.AllowedOrigins = []string{"https://app.waitlister.dev", "*"}

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wildcard")

	c.HTTP.AllowedOrigins = []string{"https://app.waitlister.dev"}
	assert.NoError(t, c.Validate())
}

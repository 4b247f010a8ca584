package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitApp_PortResolution(t *testing.T) {
	t.Run("APP_PORT wins over PORT", func(t *testing.T) {
		t.Setenv("APP_PORT", "7001")
		t.Setenv("PORT", "7002")
		var cfg Config
		initApp(&cfg)
		assert.Equal(t, 7001, cfg.App.Port)
	})

	t.Run("PORT used when APP_PORT empty", func(t *testing.T) {
		t.Setenv("APP_PORT", "")
		t.Setenv("PORT", "7002")
		var cfg Config
		initApp(&cfg)
		assert.Equal(t, 7002, cfg.App.Port)
	})

	t.Run("default port and frontend", func(t *testing.T) {
		t.Setenv("APP_PORT", "")
		t.Setenv("PORT", "")
		t.Setenv("FRONTEND_URL", "")
		var cfg Config
		initApp(&cfg)
		assert.Equal(t, 5000, cfg.App.Port)
		assert.Equal(t, "http://localhost:3000", cfg.App.FrontendURL)
	})
}

func TestInitApp_FrontendURLTrimmed(t *testing.T) {
	t.Setenv("FRONTEND_URL", "https://dash.example.com/")
	var cfg Config
	initApp(&cfg)
	assert.Equal(t, "https://dash.example.com", cfg.App.FrontendURL)
}

func TestInitYouTube_EnvOverrides(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
	t.Setenv("GOOGLE_REDIRECT_URI", "")
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("TOKEN_PATH", "")

	cfg := Config{App: App{Port: 5000}, YouTube: YouTube{APIKey: "YOUR_YOUTUBE_API_KEY"}}
	initYouTube(&cfg)

	assert.Equal(t, "client-id", cfg.YouTube.ClientID)
	assert.Equal(t, "secret", cfg.YouTube.ClientSecret)
	assert.Equal(t, "http://localhost:5000/auth/google/callback", cfg.YouTube.RedirectURI)
	assert.Empty(t, cfg.YouTube.APIKey, "placeholder values are ignored")
	assert.Equal(t, "google_oauth_tokens.json", cfg.YouTube.TokenPath)
	assert.Equal(t, DefaultScopes, cfg.YouTube.Scopes)
}

func TestInitDatabase_Defaults(t *testing.T) {
	t.Setenv("DB_VENDOR", "")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/app")
	var cfg Config
	initDatabase(&cfg)
	assert.Equal(t, "postgres", cfg.Database.Vendor)
	assert.Equal(t, "postgres://u:p@db:5432/app", cfg.Database.URL)
	assert.Equal(t, "1433", cfg.Database.Mssql.Port)
}

func TestLoadEnvFromFile_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("COMPANION_TEST_A=from-file\nCOMPANION_TEST_B=\"quoted\"\n"), 0o600))

	t.Setenv("COMPANION_TEST_A", "from-env")
	os.Unsetenv("COMPANION_TEST_B")
	defer os.Unsetenv("COMPANION_TEST_B")

	LoadEnvFromFile(path, filepath.Join(dir, "missing.env"))

	assert.Equal(t, "from-env", os.Getenv("COMPANION_TEST_A"))
	assert.Equal(t, "quoted", os.Getenv("COMPANION_TEST_B"))
}

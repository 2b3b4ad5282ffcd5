package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, cfg Config) (path string) {
	t.Helper()

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	path = filepath.Join(t.TempDir(), "config.json")
	err = os.WriteFile(path, data, 0o600)
	if err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	return path
}

func validConfig(t *testing.T) (cfg Config) {
	t.Helper()

	dir := t.TempDir()
	templateDir := filepath.Join(dir, "resume_templates")
	fragmentDir := filepath.Join(dir, "output_template")
	for _, d := range []string{templateDir, fragmentDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
	}

	cfg = Config{
		GeminiAPIKey: "test-key",
		UsersFile:    filepath.Join(dir, "users.json"),
		TemplateDir:  templateDir,
		FragmentDir:  fragmentDir,
		JWT: JWTConfig{
			Secret: "test-secret",
		},
	}
	return cfg
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, validConfig(t))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got '%s'", cfg.GeminiAPIKey)
	}
	if cfg.Port != "8090" {
		t.Errorf("Expected default port '8090', got '%s'", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("Expected default environment 'development', got '%s'", cfg.Environment)
	}
	if cfg.OutputDir != "./output" {
		t.Errorf("Expected default output dir './output', got '%s'", cfg.OutputDir)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, validConfig(t))

	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("PORT", "9999")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("TOKEN_TTL_MINUTES", "5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GeminiAPIKey != "env-key" {
		t.Errorf("Expected env API key, got '%s'", cfg.GeminiAPIKey)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("Expected env secret, got '%s'", cfg.JWT.Secret)
	}
	if cfg.Port != "9999" {
		t.Errorf("Expected env port '9999', got '%s'", cfg.Port)
	}
	if cfg.Environment != "production" {
		t.Errorf("Expected env environment 'production', got '%s'", cfg.Environment)
	}
	if cfg.GetTTLMinutes() != 5 {
		t.Errorf("Expected TTL of 5 minutes, got %d", cfg.GetTTLMinutes())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "resumer init") {
		t.Errorf("Expected error to mention 'resumer init', got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:    "missing api key",
			mutate:  func(cfg *Config) { cfg.GeminiAPIKey = "" },
			wantErr: "gemini_api_key",
		},
		{
			name:    "missing secret",
			mutate:  func(cfg *Config) { cfg.JWT.Secret = "" },
			wantErr: "jwt.secret",
		},
		{
			name:    "missing users file",
			mutate:  func(cfg *Config) { cfg.UsersFile = "" },
			wantErr: "users_file",
		},
		{
			name:    "missing template dir",
			mutate:  func(cfg *Config) { cfg.TemplateDir = "/nonexistent/path" },
			wantErr: "template directory not found",
		},
		{
			name:    "missing fragment dir",
			mutate:  func(cfg *Config) { cfg.FragmentDir = "/nonexistent/path" },
			wantErr: "fragment directory not found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig(t)
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Expected error to contain %q, got: %v", tc.wantErr, err)
			}
		})
	}
}

func TestGetModel(t *testing.T) {
	cfg := Config{}
	if cfg.GetModel() != "gemini-2.0-flash" {
		t.Errorf("Expected default model, got '%s'", cfg.GetModel())
	}

	cfg.Model = "gemini-2.5-pro"
	if cfg.GetModel() != "gemini-2.5-pro" {
		t.Errorf("Expected configured model, got '%s'", cfg.GetModel())
	}
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	err := InitConfig(path)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read created config: %v", err)
	}

	var cfg Config
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		t.Fatalf("Failed to parse created config: %v", err)
	}

	if cfg.Port != "8090" {
		t.Errorf("Expected default port in created config, got '%s'", cfg.Port)
	}

	// Second init must not clobber an existing file.
	err = InitConfig(path)
	if err == nil {
		t.Error("Expected error when config file already exists")
	}
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Port           string       `json:"port"`
	Environment    string       `json:"environment"`
	GeminiAPIKey   string       `json:"gemini_api_key"`
	Model          string       `json:"model,omitempty"`
	UsersFile      string       `json:"users_file"`
	TemplateDir    string       `json:"template_dir"`
	FragmentDir    string       `json:"fragment_dir"`
	OutputDir      string       `json:"output_dir"`
	Styles         StylesConfig `json:"styles"`
	JWT            JWTConfig    `json:"jwt"`
	AllowedOrigins []string     `json:"allowed_origins,omitempty"`
}

// StylesConfig holds CSS stylesheet locations for PDF rendering.
type StylesConfig struct {
	Resume      string `json:"resume"`
	CoverLetter string `json:"cover_letter"`
}

// JWTConfig holds bearer token settings.
type JWTConfig struct {
	Secret     string `json:"secret"`
	Issuer     string `json:"issuer,omitempty"`
	TTLMinutes int    `json:"ttl_minutes,omitempty"`
}

// GetModel returns the configured model or the default if not specified.
func (c *Config) GetModel() (model string) {
	if c.Model != "" {
		model = c.Model
		return model
	}
	model = "gemini-2.0-flash" // Default model
	return model
}

// GetTTLMinutes returns the token lifetime or the default if not specified.
func (c *Config) GetTTLMinutes() (minutes int) {
	if c.JWT.TTLMinutes > 0 {
		minutes = c.JWT.TTLMinutes
		return minutes
	}
	minutes = 30
	return minutes
}

// Load reads configuration from file with environment variable overrides.
func Load(configPath string) (cfg Config, err error) {
	// Pick up a .env file if one exists; absence is not an error
	_ = godotenv.Load()

	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return cfg, err
		}
		path = filepath.Join(homeDir, ".resumer", "config.json")
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Errorf("config file not found: %s (run 'resumer init' to create)", path)
			return cfg, err
		}
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// Parse JSON
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse config file: %s", path)
		return cfg, err
	}

	// Override with environment variables if set
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		cfg.GeminiAPIKey = apiKey
	}
	if secret := os.Getenv("SECRET_KEY"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		cfg.Environment = env
	}
	if ttl := os.Getenv("TOKEN_TTL_MINUTES"); ttl != "" {
		if n, convErr := strconv.Atoi(ttl); convErr == nil {
			cfg.JWT.TTLMinutes = n
		}
	}

	// Validate required fields
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks that all required configuration is present.
func (c *Config) Validate() (err error) {
	if c.GeminiAPIKey == "" {
		err = errors.New("gemini_api_key is required (set in config or GEMINI_API_KEY env var)")
		return err
	}

	if c.JWT.Secret == "" {
		err = errors.New("jwt.secret is required (set in config or SECRET_KEY env var)")
		return err
	}

	if c.UsersFile == "" {
		err = errors.New("users_file is required in config")
		return err
	}

	if c.TemplateDir == "" {
		err = errors.New("template_dir is required in config")
		return err
	}

	// Check template directory exists
	_, err = os.Stat(c.TemplateDir)
	if os.IsNotExist(err) {
		err = errors.Errorf("template directory not found: %s", c.TemplateDir)
		return err
	}

	if c.FragmentDir == "" {
		err = errors.New("fragment_dir is required in config")
		return err
	}

	_, err = os.Stat(c.FragmentDir)
	if os.IsNotExist(err) {
		err = errors.Errorf("fragment directory not found: %s", c.FragmentDir)
		return err
	}

	// Set defaults for optional fields
	if c.Port == "" {
		c.Port = "8090"
	}

	if c.Environment == "" {
		c.Environment = "development"
	}

	if c.OutputDir == "" {
		c.OutputDir = "./output"
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return err
		}
		path = filepath.Join(homeDir, ".resumer", "config.json")
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	defaultConfig := Config{
		Port:         "8090",
		Environment:  "development",
		GeminiAPIKey: "your-gemini-api-key",
		UsersFile:    "users.json",
		TemplateDir:  "templates/resume_templates",
		FragmentDir:  "templates/output_template",
		OutputDir:    "output",
		Styles: StylesConfig{
			Resume:      "templates/styles/resume.css",
			CoverLetter: "templates/styles/cover_letter.css",
		},
		JWT: JWTConfig{
			Secret:     "change-this-in-production",
			Issuer:     "resumer",
			TTLMinutes: 30,
		},
	}

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}

package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Env holds configuration sourced from the process environment.
type Env struct {
	ApiBaseUrl string `env:"PRAXIS_API_URL" envDefault:"http://localhost:8000"`
	Debug      bool   `env:"PRAXIS_DEBUG" envDefault:"false"`
}

// LoadEnv reads .env if present and parses the environment into Env.
// A missing .env file is not an error.
func LoadEnv() (Env, error) {
	_ = godotenv.Load()
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// File is the persistent CLI configuration, stored as TOML under the
// user's config directory.
type File struct {
	ApiBaseUrl string `toml:"api_base_url"`
	Editor     string `toml:"editor,omitempty"`
	Debug      bool   `toml:"debug,omitempty"`
}

func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "praxis", "config.toml"), nil
}

// LoadFile reads the CLI config file. A missing file yields the zero
// value without an error.
func LoadFile() (File, error) {
	path, err := configPath()
	if err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return File{}, nil
	}
	if err != nil {
		return File{}, fmt.Errorf("failed to read config file: %w", err)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}

// SaveFile writes the CLI config file, creating the directory if needed.
func SaveFile(f File) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Resolve merges the environment over the config file: env vars win,
// then the file, then defaults.
func Resolve() (Env, error) {
	cfg, err := LoadEnv()
	if err != nil {
		return Env{}, err
	}
	file, err := LoadFile()
	if err != nil {
		return Env{}, err
	}
	if os.Getenv("PRAXIS_API_URL") == "" && file.ApiBaseUrl != "" {
		cfg.ApiBaseUrl = file.ApiBaseUrl
	}
	if os.Getenv("PRAXIS_DEBUG") == "" && file.Debug {
		cfg.Debug = true
	}
	return cfg, nil
}

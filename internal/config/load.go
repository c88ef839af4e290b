package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	envAPIKey  = "GOOGLE_API_KEY"
	envAPIKeys = "GOOGLE_API_KEYS"
)

// Load reads the YAML file at path, applies the environment overlay and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return finish(cfg)
}

// LoadOrDefault behaves like Load but falls back to Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return finish(Default())
	}
	return cfg, err
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Transcriber: TranscriberConfig{
			Backend:  BackendWhisper,
			Language: "vi",
		},
		Whisper: WhisperConfig{
			ModelPath:  "models/ggml-medium.bin",
			BinaryPath: "whisper-cli",
			UseGPU:     true,
		},
	}
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func finish(cfg *Config) (*Config, error) {
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if key := strings.TrimSpace(os.Getenv(envAPIKey)); key != "" {
		cfg.Gemini.APIKeys = appendUnique(cfg.Gemini.APIKeys, key)
	}
	for _, key := range strings.Split(os.Getenv(envAPIKeys), ",") {
		if key = strings.TrimSpace(key); key != "" {
			cfg.Gemini.APIKeys = appendUnique(cfg.Gemini.APIKeys, key)
		}
	}
}

func appendUnique(keys []string, key string) []string {
	for _, k := range keys {
		if k == key {
			return keys
		}
	}
	return append(keys, key)
}

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	LogMode    string
	ServerPort string
	APIBaseURL string
	WSBaseURL  string
	PreviewDir string
}

func checkEnv(envVars []string) error {
	var missingVars []string

	for _, envVar := range envVars {
		if value, exists := os.LookupEnv(envVar); !exists || value == "" {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("error: this env vars are missing: %v", missingVars)
	} else {
		return nil
	}
}

func validateEnv() error {
	err := checkEnv([]string{
		"LOG_MODE",
		"SERVER_PORT",
		"API_BASE_URL",
		"WS_BASE_URL",
	})
	if err != nil {
		return err
	}

	return nil
}

func LoadConfig(envPath string) (*Config, error) {
	if err := godotenv.Load(envPath); err != nil {
		return nil, fmt.Errorf("load configuration file: %w", err)
	}

	if err := validateEnv(); err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	previewDir := os.Getenv("PREVIEW_DIR")
	if previewDir == "" {
		previewDir = "./previews"
	}

	return &Config{
		LogMode:    os.Getenv("LOG_MODE"),
		ServerPort: os.Getenv("SERVER_PORT"),
		APIBaseURL: os.Getenv("API_BASE_URL"),
		WSBaseURL:  os.Getenv("WS_BASE_URL"),
		PreviewDir: previewDir,
	}, nil
}

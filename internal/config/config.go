package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// DocumentName is the converted integration kit both tools read by default.
const DocumentName = "J9_OTA_NVTR_DIGITAL_INTEGRATION_KIT_V2.1-converted.html"

type Config struct {
	// Text extractor: input sits in the working directory.
	TextInput  string
	TextOutput string

	// Section parser: input sits one directory up.
	SectionsInput  string
	SectionsOutput string

	// HTTP server
	Port           string
	APIKey         string
	MaxUploadBytes int64

	LogLevel slog.Level
}

func Load() Config {
	cfg := Config{
		TextInput:  envOr("TEXT_INPUT", DocumentName),
		TextOutput: envOr("TEXT_OUTPUT", "extracted_content.txt"),

		SectionsInput:  envOr("SECTIONS_INPUT", "../"+DocumentName),
		SectionsOutput: envOr("SECTIONS_OUTPUT", "doc_sections.json"),

		Port:           envOr("PORT", "8090"),
		APIKey:         os.Getenv("HTMLEXTRACT_API_KEY"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		LogLevel: envLevel("LOG_LEVEL", slog.LevelInfo),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}

	return cfg
}

// ValidateServer checks the settings the HTTP server cannot run without.
func (c Config) ValidateServer() error {
	if c.APIKey == "" {
		return fmt.Errorf("HTMLEXTRACT_API_KEY is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envLevel(key string, fallback slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv(key)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return fallback
}

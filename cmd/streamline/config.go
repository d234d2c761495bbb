package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alorle/streamline/internal/adapter/driven"
)

type config struct {
	Port         string
	PlaylistURL  string
	DBPath       string
	LogLevel     slog.Level
	FetchTimeout time.Duration
	CatalogTTL   time.Duration
}

func loadConfig() config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	playlistURL := os.Getenv("PLAYLIST_URL")
	if playlistURL == "" {
		playlistURL = driven.DefaultPlaylistURL
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "streamline.db"
	}

	logLevel := slog.LevelInfo
	if logLevelStr := os.Getenv("LOG_LEVEL"); logLevelStr != "" {
		if level, ok := parseLogLevel(logLevelStr); ok {
			logLevel = level
		}
	}

	fetchTimeout := 30 * time.Second
	if timeoutStr := os.Getenv("FETCH_TIMEOUT"); timeoutStr != "" {
		if parsedTimeout, err := time.ParseDuration(timeoutStr); err == nil {
			fetchTimeout = parsedTimeout
		}
	}

	catalogTTL := time.Hour
	if ttlStr := os.Getenv("CATALOG_TTL"); ttlStr != "" {
		if parsedTTL, err := time.ParseDuration(ttlStr); err == nil {
			catalogTTL = parsedTTL
		}
	}

	return config{
		Port:         port,
		PlaylistURL:  playlistURL,
		DBPath:       dbPath,
		LogLevel:     logLevel,
		FetchTimeout: fetchTimeout,
		CatalogTTL:   catalogTTL,
	}
}

func parseLogLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// newLogger creates the structured JSON logger used by every command.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

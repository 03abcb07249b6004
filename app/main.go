package main

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/pocket-glue/app/api"
	"github.com/lysyi3m/pocket-glue/app/cfg"
	"github.com/lysyi3m/pocket-glue/app/colormode"
	"github.com/lysyi3m/pocket-glue/app/item"
	"github.com/lysyi3m/pocket-glue/app/locale"
	"github.com/lysyi3m/pocket-glue/app/settings"
	"github.com/lysyi3m/pocket-glue/app/tabs"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	setupLogging(appCfg.Debug)

	store, err := settings.Load(appCfg.SettingsFile)
	if err != nil {
		slog.Error("Failed to load settings", "path", appCfg.SettingsFile, "error", err)
		os.Exit(1)
	}

	feedParser := item.NewFeedParser()

	if !appCfg.ServeMode() {
		if err := resolveInput(appCfg.InputFile, appCfg.InputKind, feedParser, os.Stdout); err != nil {
			slog.Error("Failed to resolve input", "path", appCfg.InputFile, "error", err)
			os.Exit(1)
		}
		return
	}

	if err := serve(appCfg, store, feedParser); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func serve(appCfg *cfg.Cfg, store *settings.Store, feedParser *item.FeedParser) error {
	slog.Info("Starting Pocket Glue server", "version", appCfg.Version)

	colorScheme := cmp.Or(store.ColorScheme(), appCfg.ColorScheme)
	matcher := colormode.FromPreference(colorScheme)

	languages := appCfg.Languages
	if len(languages) == 0 {
		languages = locale.FromEnv()
	}

	slog.Info("Environment resolved",
		"color_scheme", colorScheme,
		"color_mode", colormode.ModeClass(matcher),
		"language", locale.LanguageCode(languages),
		"authenticated", store.AccessToken() != "")

	apiHandler := api.NewHandler(feedParser, store, matcher, tabs.NewMemoryHost(), languages, appCfg.Version)
	server := api.NewServer(apiHandler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case runErr = <-serverErrChan:
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	return runErr
}

// resolveInput reads a feed item JSON document or an RSS/Atom feed from path
// ("-" for stdin) and writes the display items as JSON.
func resolveInput(path, kind string, feedParser *item.FeedParser, out io.Writer) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if kind == "auto" {
		kind = detectInputKind(data)
	}
	slog.Debug("Resolving input", "path", path, "kind", kind, "bytes", len(data))

	var items []*item.FeedItem
	switch kind {
	case "json":
		items, err = item.DecodeItems(data)
	case "feed":
		items, err = feedParser.Run(data)
	default:
		return fmt.Errorf("unknown input kind: %s", kind)
	}
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(item.ResolveAll(items)); err != nil {
		return fmt.Errorf("failed to write display items: %w", err)
	}
	return nil
}

func detectInputKind(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[' || bytes.Equal(trimmed, []byte("null"))) {
		return "json"
	}
	return "feed"
}

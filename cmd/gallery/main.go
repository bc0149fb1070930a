package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/glabrego/gallery-cli/internal/app"
	"github.com/glabrego/gallery-cli/internal/config"
	"github.com/glabrego/gallery-cli/internal/logging"
	"github.com/glabrego/gallery-cli/internal/manifest"
	"github.com/glabrego/gallery-cli/internal/storage"
	"github.com/glabrego/gallery-cli/internal/tui"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logging init error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	repo, err := storage.NewRepository(cfg.DBPath)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := repo.Init(ctx); err != nil {
		log.Fatalf("storage schema error: %v", err)
	}
	if err := repo.CheckWritable(ctx); err != nil {
		log.Fatalf("storage write check failed (%v). Verify GALLERY_DB_PATH is writable: %s", err, cfg.DBPath)
	}

	client := manifest.NewClient(cfg.Manifest, nil)
	service := app.NewService(client, repo, logger)

	if last, ok, err := service.LastLoad(ctx); err != nil {
		logger.Warn("read previous manifest load", zap.Error(err))
	} else if ok {
		logger.Info("previous manifest load",
			zap.String("source", last.Source),
			zap.Int("photos", last.PhotoCount),
			zap.Time("loaded_at", last.LoadedAt),
		)
	}

	model := tui.NewModel(service, logger)
	model.SetLoadTimeout(cfg.LoadTimeout)
	model.SetPhotoResolver(client.ResolvePhoto)

	prefCtx, prefCancel := context.WithTimeout(context.Background(), 5*time.Second)
	prefs, err := service.LoadUIPreferences(prefCtx)
	prefCancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load UI preferences (%v), using defaults\n", err)
		prefs = app.DefaultUIPreferences()
	}
	model.ApplyPreferences(tui.Preferences{
		ShowSidebar:   prefs.ShowSidebar,
		ShowNumbers:   prefs.ShowNumbers,
		InlinePreview: prefs.InlinePreview && cfg.InlinePreview,
	})

	model.SetPreferencesSaver(func(p tui.Preferences) error {
		saveCtx, saveCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer saveCancel()
		return service.SaveUIPreferences(saveCtx, app.UIPreferences{
			ShowSidebar:   p.ShowSidebar,
			ShowNumbers:   p.ShowNumbers,
			InlinePreview: p.InlinePreview,
		})
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("tui exited", zap.Error(err))
		log.Fatalf("tui error: %v", err)
	}
}

package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/glabrego/gallery-cli/internal/logging"
	"github.com/glabrego/gallery-cli/internal/manifest"
	"github.com/glabrego/gallery-cli/internal/storage"
)

const (
	prefShowSidebar   = "show_sidebar"
	prefShowNumbers   = "show_numbers"
	prefInlinePreview = "inline_preview"
)

type ManifestClient interface {
	Source() string
	Load(ctx context.Context) ([]manifest.Photo, error)
}

type Repository interface {
	SavePreferences(ctx context.Context, prefs map[string]bool) error
	LoadPreferences(ctx context.Context) (map[string]bool, error)
	RecordLoad(ctx context.Context, record storage.LoadRecord) error
	LastLoad(ctx context.Context, source string) (storage.LoadRecord, bool, error)
}

// UIPreferences are the display toggles kept between runs. The active
// location filter is not among them.
type UIPreferences struct {
	ShowSidebar   bool
	ShowNumbers   bool
	InlinePreview bool
}

func DefaultUIPreferences() UIPreferences {
	return UIPreferences{ShowSidebar: true, InlinePreview: true}
}

type Service struct {
	client ManifestClient
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(client ManifestClient, repo Repository, logger *zap.Logger) *Service {
	return &Service{client: client, repo: repo, logger: logging.OrNop(logger), now: time.Now}
}

func (s *Service) Source() string {
	return s.client.Source()
}

// Load fetches the manifest. A successful load is recorded in the cache
// database; recording failures are logged and do not fail the load.
func (s *Service) Load(ctx context.Context) ([]manifest.Photo, error) {
	start := s.now()
	photos, err := s.client.Load(ctx)
	if err != nil {
		s.logger.Error("manifest load failed",
			zap.String("source", s.client.Source()),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("manifest loaded",
		zap.String("source", s.client.Source()),
		zap.Int("photos", len(photos)),
		zap.Duration("elapsed", s.now().Sub(start)),
	)

	if s.repo != nil {
		record := storage.LoadRecord{Source: s.client.Source(), PhotoCount: len(photos), LoadedAt: s.now()}
		if err := s.repo.RecordLoad(ctx, record); err != nil {
			s.logger.Warn("record manifest load", zap.Error(err))
		}
	}
	return photos, nil
}

// LastLoad reports the previous recorded load of the configured manifest.
func (s *Service) LastLoad(ctx context.Context) (storage.LoadRecord, bool, error) {
	if s.repo == nil {
		return storage.LoadRecord{}, false, nil
	}
	record, ok, err := s.repo.LastLoad(ctx, s.client.Source())
	if err != nil {
		return storage.LoadRecord{}, false, fmt.Errorf("load history from cache: %w", err)
	}
	return record, ok, nil
}

func (s *Service) LoadUIPreferences(ctx context.Context) (UIPreferences, error) {
	prefs := DefaultUIPreferences()
	if s.repo == nil {
		return prefs, nil
	}
	stored, err := s.repo.LoadPreferences(ctx)
	if err != nil {
		return prefs, fmt.Errorf("load ui preferences from cache: %w", err)
	}
	if v, ok := stored[prefShowSidebar]; ok {
		prefs.ShowSidebar = v
	}
	if v, ok := stored[prefShowNumbers]; ok {
		prefs.ShowNumbers = v
	}
	if v, ok := stored[prefInlinePreview]; ok {
		prefs.InlinePreview = v
	}
	return prefs, nil
}

func (s *Service) SaveUIPreferences(ctx context.Context, prefs UIPreferences) error {
	if s.repo == nil {
		return nil
	}
	err := s.repo.SavePreferences(ctx, map[string]bool{
		prefShowSidebar:   prefs.ShowSidebar,
		prefShowNumbers:   prefs.ShowNumbers,
		prefInlinePreview: prefs.InlinePreview,
	})
	if err != nil {
		return fmt.Errorf("save ui preferences to cache: %w", err)
	}
	return nil
}

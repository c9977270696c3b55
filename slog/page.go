// Package slog provides logging decorators for pageforge services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pageforge/pageforge"
)

// Ensure LoggingPageService implements pageforge.PageService.
var _ pageforge.PageService = (*LoggingPageService)(nil)

// LoggingPageService wraps a PageService with structured logging.
type LoggingPageService struct {
	next   pageforge.PageService
	logger *slog.Logger
}

// NewLoggingPageService creates a new LoggingPageService.
func NewLoggingPageService(next pageforge.PageService, logger *slog.Logger) *LoggingPageService {
	return &LoggingPageService{next: next, logger: logger}
}

// CreatePage delegates and logs the created page's id and slug.
func (s *LoggingPageService) CreatePage(ctx context.Context, page *pageforge.Page) error {
	begin := time.Now()
	err := s.next.CreatePage(ctx, page)
	if err != nil {
		s.logger.Error("create page", "slug", page.Slug, "err", err)
		return err
	}
	s.logger.Info("create page",
		"id", page.ID,
		"slug", page.Slug,
		"type", page.PageType,
		"duration", time.Since(begin),
	)
	return nil
}

// FindPageByID delegates to the wrapped service.
func (s *LoggingPageService) FindPageByID(ctx context.Context, id string) (*pageforge.Page, error) {
	return s.next.FindPageByID(ctx, id)
}

// FindPageBySlug delegates to the wrapped service.
func (s *LoggingPageService) FindPageBySlug(ctx context.Context, slug string) (*pageforge.Page, error) {
	return s.next.FindPageBySlug(ctx, slug)
}

// FindPages delegates to the wrapped service.
func (s *LoggingPageService) FindPages(ctx context.Context, filter pageforge.PageFilter) ([]*pageforge.Page, error) {
	return s.next.FindPages(ctx, filter)
}

// UpdatePage delegates and logs the update.
func (s *LoggingPageService) UpdatePage(ctx context.Context, id string, upd pageforge.PageUpdate) (*pageforge.Page, error) {
	begin := time.Now()
	page, err := s.next.UpdatePage(ctx, id, upd)
	if err != nil {
		s.logger.Error("update page", "id", id, "err", err)
		return nil, err
	}
	s.logger.Info("update page", "id", id, "duration", time.Since(begin))
	return page, nil
}

// UpdatePageField delegates and logs the field path and whether the update
// was recorded as an override.
func (s *LoggingPageService) UpdatePageField(ctx context.Context, id string, fieldPath string, value any) (*pageforge.Page, error) {
	begin := time.Now()
	_, _, isOverride := pageforge.SectionFieldPath(fieldPath)
	page, err := s.next.UpdatePageField(ctx, id, fieldPath, value)
	if err != nil {
		s.logger.Error("update page field", "id", id, "path", fieldPath, "err", err)
		return nil, err
	}
	s.logger.Info("update page field",
		"id", id,
		"path", fieldPath,
		"override", isOverride,
		"duration", time.Since(begin),
	)
	return page, nil
}

// DeletePage delegates and logs the deletion.
func (s *LoggingPageService) DeletePage(ctx context.Context, id string) error {
	err := s.next.DeletePage(ctx, id)
	if err != nil {
		s.logger.Error("delete page", "id", id, "err", err)
		return err
	}
	s.logger.Info("delete page", "id", id)
	return nil
}

// Package mock provides mock implementations of pageforge interfaces for testing.
package mock

import (
	"context"

	"github.com/pageforge/pageforge"
)

var _ pageforge.PageService = (*PageService)(nil)

// PageService is a mock implementation of pageforge.PageService.
type PageService struct {
	CreatePageFn      func(ctx context.Context, page *pageforge.Page) error
	FindPageByIDFn    func(ctx context.Context, id string) (*pageforge.Page, error)
	FindPageBySlugFn  func(ctx context.Context, slug string) (*pageforge.Page, error)
	FindPagesFn       func(ctx context.Context, filter pageforge.PageFilter) ([]*pageforge.Page, error)
	UpdatePageFn      func(ctx context.Context, id string, upd pageforge.PageUpdate) (*pageforge.Page, error)
	UpdatePageFieldFn func(ctx context.Context, id string, fieldPath string, value any) (*pageforge.Page, error)
	DeletePageFn      func(ctx context.Context, id string) error
}

func (s *PageService) CreatePage(ctx context.Context, page *pageforge.Page) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPageByID(ctx context.Context, id string) (*pageforge.Page, error) {
	return s.FindPageByIDFn(ctx, id)
}

func (s *PageService) FindPageBySlug(ctx context.Context, slug string) (*pageforge.Page, error) {
	return s.FindPageBySlugFn(ctx, slug)
}

func (s *PageService) FindPages(ctx context.Context, filter pageforge.PageFilter) ([]*pageforge.Page, error) {
	return s.FindPagesFn(ctx, filter)
}

func (s *PageService) UpdatePage(ctx context.Context, id string, upd pageforge.PageUpdate) (*pageforge.Page, error) {
	return s.UpdatePageFn(ctx, id, upd)
}

func (s *PageService) UpdatePageField(ctx context.Context, id string, fieldPath string, value any) (*pageforge.Page, error) {
	return s.UpdatePageFieldFn(ctx, id, fieldPath, value)
}

func (s *PageService) DeletePage(ctx context.Context, id string) error {
	return s.DeletePageFn(ctx, id)
}

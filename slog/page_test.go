package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/pageforge/pageforge"
	"github.com/pageforge/pageforge/mock"
	pfslog "github.com/pageforge/pageforge/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestLoggingPageService_CreatePage(t *testing.T) {
	t.Parallel()

	t.Run("logs the created page with duration", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.PageService{
			CreatePageFn: func(_ context.Context, page *pageforge.Page) error {
				page.ID = "id-1"
				return nil
			},
		}

		s := pfslog.NewLoggingPageService(inner, logger)
		err := s.CreatePage(context.Background(), &pageforge.Page{Title: "t", Slug: "my-shop-1"})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "create page")
		assert.Contains(t, output, "id=id-1")
		assert.Contains(t, output, "slug=my-shop-1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failures at error level", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.PageService{
			CreatePageFn: func(_ context.Context, _ *pageforge.Page) error {
				return errors.New("boom")
			},
		}

		s := pfslog.NewLoggingPageService(inner, logger)
		err := s.CreatePage(context.Background(), &pageforge.Page{Title: "t", Slug: "s"})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "err=boom")
	})
}

func TestLoggingPageService_UpdatePageField(t *testing.T) {
	t.Parallel()

	t.Run("marks section paths as overrides", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.PageService{
			UpdatePageFieldFn: func(_ context.Context, _ string, _ string, _ any) (*pageforge.Page, error) {
				return &pageforge.Page{}, nil
			},
		}

		s := pfslog.NewLoggingPageService(inner, logger)
		_, err := s.UpdatePageField(context.Background(), "id-1", "sections.0.data.title", "v")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "override=true")
	})

	t.Run("marks direct paths as non-overrides", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.PageService{
			UpdatePageFieldFn: func(_ context.Context, _ string, _ string, _ any) (*pageforge.Page, error) {
				return &pageforge.Page{}, nil
			},
		}

		s := pfslog.NewLoggingPageService(inner, logger)
		_, err := s.UpdatePageField(context.Background(), "id-1", "description", "v")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "override=false")
	})
}

func TestLoggingPageService_Finds(t *testing.T) {
	t.Parallel()

	t.Run("reads delegate silently", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		want := &pageforge.Page{ID: "id-1"}
		inner := &mock.PageService{
			FindPageByIDFn: func(_ context.Context, id string) (*pageforge.Page, error) {
				return want, nil
			},
		}

		s := pfslog.NewLoggingPageService(inner, logger)
		got, err := s.FindPageByID(context.Background(), "id-1")

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("logs whether the model produced content", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.ContentGenerator{
			GenerateFn: func(_ context.Context, _ *pageforge.TemplateData) (*pageforge.GeneratedContent, error) {
				return &pageforge.GeneratedContent{}, nil
			},
		}

		g := pfslog.NewLoggingGenerator(inner, logger)
		_, err := g.Generate(context.Background(), &pageforge.TemplateData{BusinessName: "shop"})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "generate content")
		assert.Contains(t, output, "business=shop")
		assert.Contains(t, output, "empty=true")
	})

	t.Run("logs failures at error level", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.ContentGenerator{
			GenerateFn: func(_ context.Context, _ *pageforge.TemplateData) (*pageforge.GeneratedContent, error) {
				return nil, errors.New("quota exceeded")
			},
		}

		g := pfslog.NewLoggingGenerator(inner, logger)
		_, err := g.Generate(context.Background(), &pageforge.TemplateData{BusinessName: "shop"})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=ERROR")
	})
}

func TestLoggingDetector_Detect(t *testing.T) {
	t.Parallel()

	t.Run("logs the detected category with duration", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.CategoryDetector{
			DetectFn: func(_ string, _ pageforge.PageCategory) pageforge.PageCategory {
				return pageforge.CategoryStore
			},
		}

		d := pfslog.NewLoggingDetector(inner, logger)
		category := d.Detect("<html></html>", "")

		assert.Equal(t, pageforge.CategoryStore, category)
		output := buf.String()
		assert.Contains(t, output, "category detection")
		assert.Contains(t, output, "category=store")
		assert.Contains(t, output, "selected=false")
		assert.Contains(t, output, "duration=")
	})

	t.Run("records when the caller preselected the category", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.CategoryDetector{
			DetectFn: func(_ string, selected pageforge.PageCategory) pageforge.PageCategory {
				return selected
			},
		}

		d := pfslog.NewLoggingDetector(inner, logger)
		category := d.Detect("<html></html>", pageforge.CategoryEvent)

		assert.Equal(t, pageforge.CategoryEvent, category)
		assert.Contains(t, buf.String(), "selected=true")
	})
}

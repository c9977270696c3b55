package pageforge_test

import (
	"testing"

	"github.com/pageforge/pageforge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePage(t *testing.T) {
	t.Parallel()

	t.Run("flat shape", func(t *testing.T) {
		t.Parallel()

		page := pageforge.NormalizePage(map[string]any{
			"id":       "p1",
			"title":    "החנות שלי",
			"slug":     "o-page-1",
			"pageType": "onlineStore",
			"phone":    "050-123-4567",
			"isActive": true,
			"sections": []any{
				map[string]any{"type": "faq", "order": float64(8), "data": map[string]any{"title": "שאלות"}},
				map[string]any{"type": "about", "order": float64(0)},
			},
			"products": []any{
				map[string]any{"name": "מוצר ראשון", "price": float64(120)},
			},
			"metadata": map[string]any{
				"videoUrl": "https://youtu.be/abc",
				"socialLinks": map[string]any{
					"facebook": "https://facebook.com/x",
				},
				"sectionOverrides": map[string]any{
					"0": map[string]any{"data.title": "override"},
				},
			},
		})

		assert.Equal(t, "p1", page.ID)
		assert.Equal(t, pageforge.CategoryStore, page.PageType)
		assert.True(t, page.IsActive)

		// Sections come back sorted by order.
		require.Len(t, page.Sections, 2)
		assert.Equal(t, "about", page.Sections[0].Type)
		assert.Equal(t, "faq", page.Sections[1].Type)

		require.Len(t, page.Products, 1)
		assert.Equal(t, 120.0, page.Products[0].Price)
		assert.True(t, page.Products[0].Enabled, "enabled defaults to true")

		assert.Equal(t, "https://youtu.be/abc", page.Metadata.VideoURL)
		assert.Equal(t, "https://facebook.com/x", page.Metadata.Social.Facebook)
		assert.Equal(t, "override", page.Metadata.SectionOverrides["0"]["data.title"])
	})

	t.Run("legacy nested shape", func(t *testing.T) {
		t.Parallel()

		page := pageforge.NormalizePage(map[string]any{
			"documentId": "doc-9",
			"attributes": map[string]any{
				"title":    "עסק ישן",
				"pageType": "service",
				"sections": map[string]any{
					"data": []any{
						map[string]any{"attributes": map[string]any{"type": "about", "enabled": false}},
					},
				},
				"storeProducts": map[string]any{
					"data": []any{
						map[string]any{"attributes": map[string]any{"name": "שירות", "price": 300}},
					},
				},
			},
		})

		assert.Equal(t, "doc-9", page.ID)
		assert.Equal(t, pageforge.CategoryServiceProvider, page.PageType)
		require.Len(t, page.Sections, 1)
		assert.False(t, page.Sections[0].Enabled)
		require.Len(t, page.Products, 1)
		assert.Equal(t, 300.0, page.Products[0].Price)
	})

	t.Run("nil input yields a generic empty page", func(t *testing.T) {
		t.Parallel()

		page := pageforge.NormalizePage(nil)

		assert.Equal(t, pageforge.CategoryGeneric, page.PageType)
		assert.Empty(t, page.Sections)
	})

	t.Run("missing order sorts last", func(t *testing.T) {
		t.Parallel()

		page := pageforge.NormalizePage(map[string]any{
			"sections": []any{
				map[string]any{"type": "mystery"},
				map[string]any{"type": "about", "order": float64(0)},
			},
		})

		require.Len(t, page.Sections, 2)
		assert.Equal(t, "about", page.Sections[0].Type)
		assert.Equal(t, pageforge.DefaultSectionOrder, page.Sections[1].Order)
	})
}

package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/pageforge/pageforge"
	"github.com/pageforge/pageforge/mock"
	"github.com/pageforge/pageforge/render"
	"github.com/pageforge/pageforge/sanitize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Renderer implements pageforge.Renderer at compile time.
var _ pageforge.Renderer = (*render.Renderer)(nil)

func newRenderer(body string) *render.Renderer {
	loader := &mock.TemplateLoader{
		LoadFn: func(_ context.Context, _ string) (string, error) {
			return body, nil
		},
	}
	return render.NewRenderer(loader, sanitize.New())
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("substitutes and escapes text tokens", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`<h1>{{BUSINESS_NAME}}</h1><p>{{PHONE}}</p>`)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{
			BusinessName: `קפה <הדס>`,
			Phone:        "050-123-4567",
		}, nil)

		require.NoError(t, err)
		assert.Contains(t, out, "<h1>קפה &lt;הדס&gt;</h1>")
		assert.Contains(t, out, "<p>050-123-4567</p>")
	})

	t.Run("resolves unknown template ids to the store template", func(t *testing.T) {
		t.Parallel()

		var loaded string
		loader := &mock.TemplateLoader{
			LoadFn: func(_ context.Context, name string) (string, error) {
				loaded = name
				return "<html></html>", nil
			},
		}
		r := render.NewRenderer(loader, sanitize.New())

		_, err := r.Render(context.Background(), "no-such-template", &pageforge.TemplateData{}, nil)
		require.NoError(t, err)
		assert.Equal(t, pageforge.TemplateStore, loaded)
	})

	t.Run("derives the whatsapp number from the phone", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`{{WHATSAPP_NUMBER}} {{COUNTRY_CODE}}`)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{
			Phone: "050-123-4567",
		}, nil)

		require.NoError(t, err)
		assert.Contains(t, out, "972501234567")
		assert.Contains(t, out, "972")
	})

	t.Run("defaults an empty description", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`{{DESCRIPTION}}`)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{}, nil)

		require.NoError(t, err)
		assert.Contains(t, out, "ברוכים הבאים")
	})

	t.Run("show tokens follow the selected sections", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`faq:{{SHOW_FAQ}} gallery:{{SHOW_GALLERY}} contact:{{SHOW_CONTACT}}`)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{}, []string{pageforge.SectionFAQ})

		require.NoError(t, err)
		assert.Contains(t, out, "faq:block")
		assert.Contains(t, out, "gallery:none")
		assert.Contains(t, out, "contact:block")
	})

	t.Run("include flags enable sections like selection does", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`{{SHOW_TEAM}}`)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{IncludeTeam: true}, nil)

		require.NoError(t, err)
		assert.Equal(t, "block", out)
	})

	t.Run("products visibility follows the data record", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`{{SHOW_PRODUCTS}}`)

		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{
			Products: []pageforge.Product{{Name: "מוצר לדוגמה", Price: 100, Enabled: true}},
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "block", out)

		out, err = r.Render(context.Background(), "store", &pageforge.TemplateData{
			PageType: pageforge.CategoryStore,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "block", out)

		out, err = r.Render(context.Background(), "store", &pageforge.TemplateData{}, nil)
		require.NoError(t, err)
		assert.Equal(t, "none", out)
	})

	t.Run("removes marker-delimited blocks of hidden sections", func(t *testing.T) {
		t.Parallel()

		body := `<header>top</header>
<!-- SECTION:faq --><div>faq content</div><!-- /SECTION:faq -->
<!-- SECTION:gallery --><div>gallery content</div><!-- /SECTION:gallery -->`

		r := newRenderer(body)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{}, []string{pageforge.SectionFAQ})

		require.NoError(t, err)
		assert.Contains(t, out, "faq content")
		assert.NotContains(t, out, "gallery content")
	})

	t.Run("removes class-tagged wrappers of hidden sections", func(t *testing.T) {
		t.Parallel()

		body := `<section class="hero">hello</section>
<section class="team-section extra">team content</section>`

		r := newRenderer(body)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{}, nil)

		require.NoError(t, err)
		assert.Contains(t, out, "hello")
		assert.NotContains(t, out, "team content")
	})

	t.Run("replaces inline product array literals", func(t *testing.T) {
		t.Parallel()

		body := `<script>var products = [{"name":"old"}];</script>`
		r := newRenderer(body)

		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{
			Products: []pageforge.Product{{Name: "כרית נוי", Price: 80, Enabled: true}},
		}, nil)

		require.NoError(t, err)
		assert.NotContains(t, out, "old")
		assert.Contains(t, out, "כרית נוי")
	})

	t.Run("strips unresolved tokens", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`before {{SOMETHING_UNKNOWN}} after`)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{}, nil)

		require.NoError(t, err)
		assert.Equal(t, "before  after", out)
	})

	t.Run("nil data renders the default record", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`{{BUSINESS_NAME}}`)
		out, err := r.Render(context.Background(), "store", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "העסק שלי", out)
	})
}

func TestRenderer_Fallback(t *testing.T) {
	t.Parallel()

	failing := &mock.TemplateLoader{
		LoadFn: func(_ context.Context, name string) (string, error) {
			return "", pageforge.Errorf(pageforge.ENOTFOUND, "template %q not found", name)
		},
	}

	t.Run("missing template degrades to a synthesized document", func(t *testing.T) {
		t.Parallel()

		r := render.NewRenderer(failing, sanitize.New())
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{
			BusinessName: "סטודיו רקפת",
			Description:  "סטודיו ליוגה",
			Phone:        "050-123-4567",
			Email:        "hello@example.com",
		}, nil)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
		assert.Contains(t, out, `dir="rtl"`)
		assert.Contains(t, out, "סטודיו רקפת")
		assert.Contains(t, out, "050-123-4567")
		assert.Contains(t, out, "hello@example.com")
	})

	t.Run("context cancellation is returned, not masked", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := render.NewRenderer(failing, sanitize.New())
		out, err := r.Render(ctx, "store", &pageforge.TemplateData{}, nil)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, out)
	})
}

func TestRenderer_DefaultContent(t *testing.T) {
	t.Parallel()

	t.Run("generated about wins and is sanitized", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`{{ABOUT_HTML}}`)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{
			AboutText: "טקסט ישן",
			Generated: &pageforge.GeneratedContent{
				About: "&lt;p&gt;אודות חדש&lt;/p&gt;<script>alert(1)</script>",
			},
		}, nil)

		require.NoError(t, err)
		assert.Contains(t, out, "<p>אודות חדש</p>")
		assert.NotContains(t, out, "<script>")
		assert.NotContains(t, out, "טקסט ישן")
	})

	t.Run("about falls back to the description", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`{{ABOUT_HTML}}`)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{
			Description: "מאפייה משפחתית",
		}, nil)

		require.NoError(t, err)
		assert.Contains(t, out, "מאפייה משפחתית")
	})

	t.Run("about without any text renders the empty-state prompt", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`{{ABOUT_HTML}}`)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{}, nil)

		require.NoError(t, err)
		assert.Contains(t, out, "ספרו כאן על העסק שלכם")
	})

	t.Run("faq defaults follow the page category", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			category pageforge.PageCategory
			items    int
		}{
			{pageforge.CategoryStore, 3},
			{pageforge.CategoryRestaurantMenu, 3},
			{pageforge.CategoryServiceProvider, 4},
			{pageforge.CategoryGeneric, 2},
			{pageforge.CategoryEvent, 2},
		}

		for _, tc := range cases {
			r := newRenderer(`{{FAQ_HTML}}`)
			out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{PageType: tc.category}, nil)

			require.NoError(t, err)
			assert.Equal(t, tc.items, strings.Count(out, `class="faq-item"`), "category %s", tc.category)
		}
	})

	t.Run("own faq items replace the canned set", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`{{FAQ_HTML}}`)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{
			FAQ: []pageforge.FAQItem{{Question: "שאלה אחת?", Answer: "תשובה אחת"}},
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(out, `class="faq-item"`))
		assert.Contains(t, out, "שאלה אחת?")
	})

	t.Run("testimonials default to three stock reviews", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`{{TESTIMONIALS_HTML}}`)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{}, nil)

		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(out, `class="testimonial-card"`))
		assert.Contains(t, out, strings.Repeat("⭐", 5))
	})

	t.Run("products markup skips disabled products", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`{{PRODUCTS_HTML}}`)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{
			Products: []pageforge.Product{
				{Name: "מוצר פעיל", Price: 120, Enabled: true},
				{Name: "מוצר כבוי", Price: 80, Enabled: false},
			},
		}, nil)

		require.NoError(t, err)
		assert.Contains(t, out, "מוצר פעיל")
		assert.Contains(t, out, "₪120")
		assert.NotContains(t, out, "מוצר כבוי")
	})

	t.Run("youtube video urls become embeds", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`{{VIDEO_HTML}}`)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{
			VideoURL: "https://www.youtube.com/watch?v=abc123",
		}, nil)

		require.NoError(t, err)
		assert.Contains(t, out, "youtube.com&#x2F;embed&#x2F;abc123")
		assert.Contains(t, out, "<iframe")
	})

	t.Run("social links render only configured networks", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`{{SOCIAL_LINKS_HTML}}`)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{
			Social: pageforge.SocialLinks{
				Instagram: "https://instagram.com/mybiz",
				WhatsApp:  "972501234567",
			},
		}, nil)

		require.NoError(t, err)
		assert.Contains(t, out, "Instagram")
		assert.Contains(t, out, "wa.me")
		assert.NotContains(t, out, "Facebook")
	})

	t.Run("unsafe urls are dropped, not rendered", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(`{{VIDEO_HTML}}`)
		out, err := r.Render(context.Background(), "store", &pageforge.TemplateData{
			VideoURL: "javascript:alert(1)",
		}, nil)

		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

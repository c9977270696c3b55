package gemini_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pageforge/pageforge"
	"github.com/pageforge/pageforge/gemini"
	"github.com/pageforge/pageforge/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Generator implements pageforge.ContentGenerator at compile time.
var _ pageforge.ContentGenerator = (*gemini.Generator)(nil)

func TestGenerator_Validation(t *testing.T) {
	t.Parallel()

	t.Run("nil data is rejected", func(t *testing.T) {
		t.Parallel()

		g := gemini.NewGenerator(nil, nil)
		_, err := g.Generate(context.Background(), nil)
		assert.Equal(t, pageforge.EINVALID, pageforge.ErrorCode(err))
	})

	t.Run("missing business name is rejected", func(t *testing.T) {
		t.Parallel()

		g := gemini.NewGenerator(nil, nil)
		_, err := g.Generate(context.Background(), &pageforge.TemplateData{})
		assert.Equal(t, pageforge.EINVALID, pageforge.ErrorCode(err))
	})

	t.Run("oversized prompts are rejected before sending", func(t *testing.T) {
		t.Parallel()

		tokens := &mock.TokenCounter{
			CountTokensFn: func(_ context.Context, _ string) (int, error) { return 1_000_000, nil },
		}

		g := gemini.NewGenerator(nil, tokens)
		_, err := g.Generate(context.Background(), &pageforge.TemplateData{BusinessName: "מאפיית הדס"})
		assert.Equal(t, pageforge.EINVALID, pageforge.ErrorCode(err))
	})

	t.Run("token counter failures propagate", func(t *testing.T) {
		t.Parallel()

		countErr := errors.New("tokenizer unavailable")
		tokens := &mock.TokenCounter{
			CountTokensFn: func(_ context.Context, _ string) (int, error) { return 0, countErr },
		}

		g := gemini.NewGenerator(nil, tokens)
		_, err := g.Generate(context.Background(), &pageforge.TemplateData{BusinessName: "מאפיית הדס"})
		assert.ErrorIs(t, err, countErr)
	})
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	t.Run("includes the business record fields", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildUserPrompt(&pageforge.TemplateData{
			BusinessName: "סטודיו רקפת",
			PageType:     pageforge.CategoryServiceProvider,
			Description:  "סטודיו ליוגה בחיפה",
			City:         "חיפה",
			Services:     []string{"שיעורי בוקר", "סדנאות"},
			Products:     []pageforge.Product{{Name: "כרטיסייה", Price: 450}},
		})

		assert.Contains(t, prompt, "<name>סטודיו רקפת</name>")
		assert.Contains(t, prompt, "<type>serviceProvider</type>")
		assert.Contains(t, prompt, "<description>סטודיו ליוגה בחיפה</description>")
		assert.Contains(t, prompt, "<city>חיפה</city>")
		assert.Contains(t, prompt, "<service>שיעורי בוקר</service>")
		assert.Contains(t, prompt, `<product price="450">כרטיסייה</product>`)
	})

	t.Run("omits empty optional fields", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildUserPrompt(&pageforge.TemplateData{BusinessName: "העסק"})
		assert.NotContains(t, prompt, "<description>")
		assert.NotContains(t, prompt, "<city>")
		assert.NotContains(t, prompt, "<service>")
	})
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.7, float64(*config.Temperature), 0.001)
	assert.Equal(t, "application/json", config.ResponseMIMEType)
	require.NotNil(t, config.SystemInstruction)
	require.NotEmpty(t, config.SystemInstruction.Parts)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "JSON")
}

func TestParseContent(t *testing.T) {
	t.Parallel()

	t.Run("parses a clean JSON object", func(t *testing.T) {
		t.Parallel()

		content := gemini.ParseContent(`{"about":"<p>אודות</p>","faq":"<div>שאלות</div>"}`)
		assert.Equal(t, "<p>אודות</p>", content.About)
		assert.Equal(t, "<div>שאלות</div>", content.FAQ)
		assert.Empty(t, content.Services)
	})

	t.Run("tolerates fences and surrounding prose", func(t *testing.T) {
		t.Parallel()

		content := gemini.ParseContent("Here you go:\n```json\n{\"about\":\"<p>תוכן</p>\"}\n```\nEnjoy!")
		assert.Equal(t, "<p>תוכן</p>", content.About)
	})

	t.Run("no JSON yields empty content", func(t *testing.T) {
		t.Parallel()

		content := gemini.ParseContent("I could not produce content.")
		require.NotNil(t, content)
		assert.True(t, content.Empty())
	})

	t.Run("malformed JSON yields empty content", func(t *testing.T) {
		t.Parallel()

		content := gemini.ParseContent(`{"about": <broken>}`)
		require.NotNil(t, content)
		assert.True(t, content.Empty())
	})
}

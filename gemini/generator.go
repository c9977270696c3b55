// Package gemini implements content generation using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pageforge/pageforge"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// maxPromptTokens caps the prompt size when a token counter is available.
const maxPromptTokens = 30000

// Ensure Generator implements pageforge.ContentGenerator at compile time.
var _ pageforge.ContentGenerator = (*Generator)(nil)

// Generator implements pageforge.ContentGenerator using Google Gemini. The
// model's output is advisory: malformed responses degrade to empty content
// rather than failing the caller.
type Generator struct {
	client *genai.Client
	tokens pageforge.TokenCounter
}

// NewGenerator creates a new Generator. tokens may be nil, in which case
// prompts are not size-checked before sending.
func NewGenerator(client *genai.Client, tokens pageforge.TokenCounter) *Generator {
	return &Generator{client: client, tokens: tokens}
}

// Generate produces optional section content for a business record.
func (g *Generator) Generate(ctx context.Context, data *pageforge.TemplateData) (*pageforge.GeneratedContent, error) {
	if data == nil || data.BusinessName == "" {
		return nil, pageforge.Errorf(pageforge.EINVALID, "business name required")
	}

	prompt := BuildUserPrompt(data)
	if g.tokens != nil {
		count, err := g.tokens.CountTokens(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if count > maxPromptTokens {
			return nil, pageforge.Errorf(pageforge.EINVALID, "prompt too large: %d tokens", count)
		}
	}

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, pageforge.Errorf(pageforge.EINTERNAL, "gemini returned nil result")
	}

	return ParseContent(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a Hebrew marketing copywriter producing section content for small-business landing pages. " +
					"Respond with a single JSON object with the keys about, gallery, testimonials, faq, services. " +
					"Each value is an HTML fragment in Hebrew, or an empty string when you have nothing useful to add. " +
					"Do not include markdown fences or commentary outside the JSON object.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the user prompt describing the business.
func BuildUserPrompt(data *pageforge.TemplateData) string {
	var sb strings.Builder
	sb.WriteString("<business>\n")
	fmt.Fprintf(&sb, "<name>%s</name>\n", data.BusinessName)
	fmt.Fprintf(&sb, "<type>%s</type>\n", data.PageType)
	if data.Description != "" {
		fmt.Fprintf(&sb, "<description>%s</description>\n", data.Description)
	}
	if data.City != "" {
		fmt.Fprintf(&sb, "<city>%s</city>\n", data.City)
	}
	for _, service := range data.Services {
		fmt.Fprintf(&sb, "<service>%s</service>\n", service)
	}
	for _, p := range data.Products {
		fmt.Fprintf(&sb, "<product price=\"%g\">%s</product>\n", p.Price, p.Name)
	}
	sb.WriteString("</business>\n\n")
	sb.WriteString("Write the about, testimonials, faq and services content for this business.")
	return sb.String()
}

// ParseContent extracts generated content from a model response. The model
// occasionally wraps JSON in fences or prose; parsing is tolerant and a
// response with no usable JSON yields empty content.
func ParseContent(text string) *pageforge.GeneratedContent {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return &pageforge.GeneratedContent{}
	}

	var content pageforge.GeneratedContent
	if err := json.Unmarshal([]byte(text[start:end+1]), &content); err != nil {
		return &pageforge.GeneratedContent{}
	}
	return &content
}

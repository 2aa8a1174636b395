package aisearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
	"google.golang.org/genai"
)

// Client wraps the Gemini API for sustainable product search. The model is
// asked for a strict JSON array; fenced or decorated output is cleaned up
// before unmarshalling.
type Client struct {
	genaiClient *genai.Client
	model       string
}

// NewClient creates a Gemini-backed product searcher.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Client{genaiClient: client, model: model}, nil
}

const searchPrompt = "You are a sustainable shopping assistant.\n\n" +
	"Task:\n" +
	"- Suggest up to 5 sustainable products or merchants matching the user's query.\n" +
	"- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n" +
	"- Output a JSON array of objects.\n\n" +
	"Each object must have these fields:\n" +
	"- \"name\": string, the product name\n" +
	"- \"merchant\": string, where to buy it\n" +
	"- \"description\": string, one sentence on why it is sustainable\n" +
	"- \"estimatedScore\": integer 0-100, your sustainability estimate\n\n" +
	"Return ONLY valid raw JSON.\n" +
	"Do NOT wrap the response in code fences.\n" +
	"Output must begin with \"[\" and end with \"]\".\n"

// SearchProducts asks the model for sustainable product suggestions.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]domain.EcoProduct, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: searchPrompt + "\nQuery: " + query},
			},
		},
	}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var products []domain.EcoProduct
	if err := json.Unmarshal([]byte(cleanModelJSON(rawText)), &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model response: %w", err)
	}
	return products, nil
}

// cleanModelJSON strips Markdown fences and surrounding text the model may
// add despite instructions, keeping only the JSON array.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}

package suggest

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

type GeminiModel struct {
	client    *genai.Client
	model     string
	maxTokens int64
}

func NewGeminiModel(client *genai.Client, model string, maxTokens int64) *GeminiModel {
	if model == "" {
		model = defaultGeminiModel
	}
	if maxTokens == 0 {
		maxTokens = 1024
	}
	return &GeminiModel{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}
}

func (m *GeminiModel) Name() string {
	return GoogleProvider
}

func (m *GeminiModel) Complete(ctx context.Context, system, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens:   int32(m.maxTokens),
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	response, err := m.client.Models.GenerateContent(ctx, m.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content returned")
	}

	var sb strings.Builder
	for _, p := range response.Candidates[0].Content.Parts {
		if p.Text != "" {
			sb.WriteString(p.Text)
		}
	}
	return sb.String(), nil
}

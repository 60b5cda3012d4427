package suggest

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

const defaultAnthropicModel = anthropic.ModelClaude3_5HaikuLatest

type AnthropicModel struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

func NewAnthropicModel(client *anthropic.Client, model string, maxTokens int64) *AnthropicModel {
	if maxTokens == 0 {
		maxTokens = 1024
	}
	m := anthropic.Model(model)
	if model == "" {
		m = defaultAnthropicModel
	}
	return &AnthropicModel{
		client:    client,
		model:     m,
		maxTokens: maxTokens,
	}
}

func (m *AnthropicModel) Name() string {
	return AnthropicProvider
}

func (m *AnthropicModel) Complete(ctx context.Context, system, prompt string) (string, error) {
	msg, err := m.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     m.model,
		MaxTokens: m.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		System: []anthropic.TextBlockParam{{Text: system}},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	return sb.String(), nil
}

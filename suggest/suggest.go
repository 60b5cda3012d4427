// Package suggest generates AI-backed keyword suggestions for search
// refinement. The search engine only sees the search.Suggester
// contract; which provider sits behind it is wiring.
package suggest

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"google.golang.org/genai"

	"github.com/honganh1206/booknest/search"
)

const (
	AnthropicProvider = "anthropic"
	GoogleProvider    = "gemini"
	HeuristicProvider = "heuristic"
)

// Provider is one LLM backend: a single prompt in, raw text out.
type Provider interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
	Name() string
}

type Config struct {
	Provider  string
	Model     string
	MaxTokens int64
	CacheTTL  time.Duration
}

// Init builds a suggester for the configured provider. The heuristic
// provider needs no network or API key and is the fallback choice for
// local development.
func Init(ctx context.Context, config Config) (search.Suggester, error) {
	if config.CacheTTL == 0 {
		config.CacheTTL = 24 * time.Hour
	}

	switch config.Provider {
	case AnthropicProvider:
		client := anthropic.NewClient() // Default to look up ANTHROPIC_API_KEY
		provider := NewAnthropicModel(&client, config.Model, config.MaxTokens)
		return NewService(provider, NewCache(config.CacheTTL)), nil
	case GoogleProvider:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, err
		}
		provider := NewGeminiModel(client, config.Model, config.MaxTokens)
		return NewService(provider, NewCache(config.CacheTTL)), nil
	case HeuristicProvider:
		return NewHeuristic(), nil
	default:
		return nil, fmt.Errorf("unknown suggestion provider: %s", config.Provider)
	}
}

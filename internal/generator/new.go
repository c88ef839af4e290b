package generator

import (
	"context"
	"errors"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/notebot/internal/config"
	"github.com/nguyentantai21042004/notebot/internal/logger"
)

// ErrNoAPIKey is returned by New when no Gemini API key is configured.
var ErrNoAPIKey = errors.New("no Gemini API key configured (set GOOGLE_API_KEY)")

// generateFunc performs one GenerateContent call with the given key.
type generateFunc func(ctx context.Context, apiKey, model string, contents []*genai.Content) (*genai.GenerateContentResponse, error)

type implGenerator struct {
	apiKeys      []string
	logger       logger.Logger
	model        string
	excerptChars int
	generate     generateFunc

	mu         sync.Mutex
	currentKey int
}

// New creates a Generator that rotates through the configured Gemini API keys.
func New(cfg *config.Config, log logger.Logger) (Generator, error) {
	if len(cfg.Gemini.APIKeys) == 0 {
		return nil, ErrNoAPIKey
	}
	return &implGenerator{
		apiKeys:      cfg.Gemini.APIKeys,
		logger:       log,
		model:        cfg.Gemini.Model,
		excerptChars: cfg.Notes.TitleExcerptChars,
		generate:     generateWithGemini,
	}, nil
}

func generateWithGemini(ctx context.Context, apiKey, model string, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return client.Models.GenerateContent(ctx, model, contents, nil)
}

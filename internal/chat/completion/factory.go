package completion

import (
	"context"

	"luxestay/pkg/client"
	"luxestay/pkg/config"
)

// New builds the completer for the configured provider. It returns a nil
// Completer when the provider has no API key. The returned close func is
// never nil.
func New(ctx context.Context, cfg *config.Config) (Completer, func(), error) {
	noop := func() {}
	if !cfg.ChatConfigured() {
		return nil, noop, nil
	}

	switch cfg.ChatProvider {
	case config.ChatProviderGemini:
		g, err := NewGeminiCompleter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, noop, err
		}
		return g, func() {
			if err := g.Close(); err != nil {
				cfg.Log.Warn("Failed to close Gemini client", "error", err)
			}
		}, nil
	default:
		httpClient := client.NewHttpClient(cfg.GroqBaseURL, cfg.UpstreamTimeout)
		return NewGroqCompleter(httpClient, cfg.GroqAPIKey, cfg.GroqModel), noop, nil
	}
}

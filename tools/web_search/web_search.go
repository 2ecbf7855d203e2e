package web_search

import (
	"context"
	"errors"

	"github.com/websage-ai/websage/config"
	"github.com/websage-ai/websage/tools/web_search/googlecse"
	"github.com/websage-ai/websage/tools/web_search/models"
	"github.com/websage-ai/websage/tools/web_search/serper"
)

// WebSearcher returns up to k ordered results for a query.
type WebSearcher interface {
	Discover(ctx context.Context, q string, k int) ([]models.Result, error)
}

type Provider string

const (
	GoogleCSEProvider Provider = "googlecse"
	SerperProvider    Provider = "serper"
)

var ErrUnsupportedProvider = errors.New("unsupported search provider")

func NewWebSearcher(provider Provider, cfg config.SearchConfig) (WebSearcher, error) {
	switch provider {
	case GoogleCSEProvider:
		return googlecse.Search{ApiKey: cfg.APIKey, EngineID: cfg.EngineID, Timeout: cfg.Timeout}, nil
	case SerperProvider:
		return serper.Search{ApiKey: cfg.APIKey, Timeout: cfg.Timeout}, nil
	default:
		return nil, ErrUnsupportedProvider
	}
}

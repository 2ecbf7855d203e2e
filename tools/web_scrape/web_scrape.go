package web_scrape

import (
	"context"
	"errors"

	"github.com/websage-ai/websage/config"
	"github.com/websage-ai/websage/tools/web_scrape/chromedp"
	"github.com/websage-ai/websage/tools/web_scrape/models"
	"github.com/websage-ai/websage/tools/web_scrape/static"
)

// Scraper fetches one URL and extracts its readable text. Failures are
// absorbed: callers get a Page with empty Text and a nil error.
type Scraper interface {
	Scrape(ctx context.Context, url string) (models.Page, error)
}

type FetcherType string

const (
	StaticFetcherType   FetcherType = "static"
	ChromedpFetcherType FetcherType = "chromedp"
)

var ErrUnsupportedFetcher = errors.New("unsupported fetcher type")

func NewScraper(fetcherType FetcherType, cfg config.ScrapeConfig) (Scraper, error) {
	switch fetcherType {
	case StaticFetcherType:
		return &static.Scrape{
			Timeout:  cfg.Timeout,
			MaxChars: cfg.PerPageChars,
			MinDelay: cfg.MinDelay,
			MaxDelay: cfg.MaxDelay,
		}, nil
	case ChromedpFetcherType:
		return &chromedp.Scrape{
			Timeout:  cfg.Timeout,
			MaxChars: cfg.PerPageChars,
			MinDelay: cfg.MinDelay,
			MaxDelay: cfg.MaxDelay,
		}, nil
	default:
		return nil, ErrUnsupportedFetcher
	}
}

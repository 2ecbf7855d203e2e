package assistant

import (
	"context"
	"errors"

	providermodels "github.com/websage-ai/websage/provider/models"
	scrapemodels "github.com/websage-ai/websage/tools/web_scrape/models"
	searchmodels "github.com/websage-ai/websage/tools/web_search/models"
)

type fakeLLM struct {
	fn      func(prompt string) (providermodels.Result, error)
	prompts []string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string) (providermodels.Result, error) {
	f.prompts = append(f.prompts, prompt)
	if f.fn == nil {
		return providermodels.Result{Text: "ok"}, nil
	}
	return f.fn(prompt)
}

func llmSaying(text string) *fakeLLM {
	return &fakeLLM{fn: func(string) (providermodels.Result, error) {
		return providermodels.Result{Text: text}, nil
	}}
}

func llmFailing() *fakeLLM {
	return &fakeLLM{fn: func(string) (providermodels.Result, error) {
		return providermodels.Result{}, errors.New("boom")
	}}
}

type fakeSearcher struct {
	urls []string
	err  error
}

func (f *fakeSearcher) Discover(_ context.Context, _ string, k int) ([]searchmodels.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []searchmodels.Result
	for _, u := range f.urls {
		out = append(out, searchmodels.Result{URL: u})
		if len(out) >= k {
			break
		}
	}
	return out, nil
}

// fakeScraper returns pages[url] as the scraped text and records fetch order
type fakeScraper struct {
	pages   map[string]string
	fetched []string
}

func (f *fakeScraper) Scrape(_ context.Context, url string) (scrapemodels.Page, error) {
	f.fetched = append(f.fetched, url)
	return scrapemodels.Page{URL: url, Text: f.pages[url], Status: 200}, nil
}

package chromedp

import (
	"context"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	readability "github.com/go-shiori/go-readability"

	"github.com/websage-ai/websage/tools/web_scrape/models"
)

// Scrape renders a page in headless Chrome before extraction, for sites that
// build their content with JavaScript. Same absorbed-failure contract as the
// static scraper.
type Scrape struct {
	Timeout  time.Duration
	MaxChars int
	MinDelay time.Duration
	MaxDelay time.Duration
}

func (s *Scrape) Scrape(ctx context.Context, pageURL string) (models.Page, error) {
	if strings.TrimSpace(pageURL) == "" {
		return models.Page{}, nil
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	if s.MaxDelay > 0 {
		d := s.MinDelay
		if span := s.MaxDelay - s.MinDelay; span > 0 {
			d += time.Duration(rand.Int63n(int64(span)))
		}
		t := time.NewTimer(d)
		select {
		case <-ctx.Done():
			t.Stop()
			return models.Page{URL: pageURL}, nil
		case <-t.C:
		}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	t0 := time.Now()

	rawHTML, err := fetchHTML(ctx, pageURL)
	if err != nil {
		return models.Page{URL: pageURL, Status: 599, FetchMS: int(time.Since(t0) / time.Millisecond)}, nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), mustParseURL(pageURL))
	if err != nil {
		return models.Page{URL: pageURL, Status: 200, FetchMS: int(time.Since(t0) / time.Millisecond)}, nil
	}
	text := strings.Join(strings.Fields(article.TextContent), " ")
	if s.MaxChars > 0 && len(text) > s.MaxChars {
		text = text[:s.MaxChars]
	}
	return models.Page{
		URL:     pageURL,
		Text:    text,
		Status:  200,
		FetchMS: int(time.Since(t0) / time.Millisecond),
	}, nil
}

func fetchHTML(ctx context.Context, pageURL string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),
	)
	actx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	bctx, cancelBrowser := chromedp.NewContext(actx)
	defer cancelBrowser()

	var rawHTML string
	err := chromedp.Run(bctx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &rawHTML, chromedp.ByQuery),
	)
	return rawHTML, err
}

func mustParseURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		return &url.URL{}
	}
	return u
}

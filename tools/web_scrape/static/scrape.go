package static

import (
	"context"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"

	"github.com/websage-ai/websage/tools/web_scrape/models"
)

const (
	DefaultTimeout  = 7 * time.Second
	MaxCharsDefault = 1500
)

// content-ish div classes whose text survives the boilerplate filter
var contentClasses = []string{
	"content", "article-body", "post-content", "main-content", "entry-content", "article",
}

const (
	minFragmentChars  = 50  // headings, paragraphs, list items
	minContainerChars = 200 // labeled content containers
)

// Scrape fetches a page over plain HTTP and extracts readable text by
// heuristic tag and size filtering. A randomized delay in [MinDelay,MaxDelay]
// runs before every fetch as throttling courtesy to the scraped site.
type Scrape struct {
	Timeout  time.Duration
	MaxChars int
	MinDelay time.Duration
	MaxDelay time.Duration
	Client   *http.Client // defaults to a client with Timeout
}

func (s *Scrape) Scrape(ctx context.Context, url string) (models.Page, error) {
	if strings.TrimSpace(url) == "" {
		return models.Page{}, nil
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxChars := s.MaxChars
	if maxChars <= 0 {
		maxChars = MaxCharsDefault
	}

	if err := wait(ctx, s.MinDelay, s.MaxDelay); err != nil {
		return models.Page{URL: url}, nil
	}

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	t0 := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Page{URL: url, Status: 599}, nil
	}
	setBrowserHeaders(req)

	resp, err := client.Do(req)
	if err != nil {
		return models.Page{URL: url, Status: 599, FetchMS: int(time.Since(t0) / time.Millisecond)}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Page{URL: url, Status: resp.StatusCode, FetchMS: int(time.Since(t0) / time.Millisecond)}, nil
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return models.Page{URL: url, Status: resp.StatusCode, FetchMS: int(time.Since(t0) / time.Millisecond)}, nil
	}

	text := ExtractText(doc)
	if len(text) > maxChars {
		text = text[:maxChars]
	}
	return models.Page{
		URL:     url,
		Text:    text,
		Status:  resp.StatusCode,
		FetchMS: int(time.Since(t0) / time.Millisecond),
	}, nil
}

// ExtractText walks heading, paragraph, list-item and labeled content-container
// elements, keeping fragments above a per-type length threshold, and joins the
// survivors with single spaces.
func ExtractText(doc *html.Node) string {
	var parts []string
	for _, node := range dom.GetAllNodesWithTag(doc, "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "div") {
		switch dom.TagName(node) {
		case "div":
			if !hasContentClass(node) {
				continue
			}
			if text := normalize(dom.TextContent(node)); len(text) > minContainerChars {
				parts = append(parts, text)
			}
		default:
			if text := normalize(dom.TextContent(node)); len(text) > minFragmentChars {
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, " ")
}

func hasContentClass(node *html.Node) bool {
	classes := strings.Fields(dom.ClassName(node))
	for _, c := range classes {
		for _, want := range contentClasses {
			if c == want {
				return true
			}
		}
	}
	return false
}

// normalize collapses runs of whitespace to single spaces and trims the ends
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Referer", "https://www.google.com/")
}

// wait sleeps for a uniform random duration in [min,max], honoring ctx
func wait(ctx context.Context, min, max time.Duration) error {
	if max <= 0 {
		return nil
	}
	d := min
	if span := max - min; span > 0 {
		d += time.Duration(rand.Int63n(int64(span)))
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package assistant

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/websage-ai/websage/tools/web_scrape"
	"github.com/websage-ai/websage/tools/web_search"
)

// ErrNoContext signals that no candidate URL yielded usable content. The
// caller falls back to an ungrounded answer rather than sending an empty
// context block.
var ErrNoContext = errors.New("retrieval produced no usable context")

// Grounding is the assembled context for one generation call. Sources holds
// the URLs whose scraped text fed Context, in discovery order. TruncatedFrom
// is the pre-cut character count when the total budget forced a cut, 0
// otherwise.
type Grounding struct {
	Context       string
	Sources       []string
	TruncatedFrom int
}

// Retriever drives search then sequential scraping until enough pages
// succeed. Scraping stops as soon as TargetScrapes non-empty pages are
// collected; later URLs are never fetched, bounding latency and request
// volume.
type Retriever struct {
	Searcher      web_search.WebSearcher
	Scraper       web_scrape.Scraper
	TargetScrapes int
	MaxURLs       int
	TotalChars    int
	Logger        *log.Logger
}

func (r *Retriever) Retrieve(ctx context.Context, query string) (Grounding, error) {
	results, err := r.Searcher.Discover(ctx, query, r.MaxURLs)
	if err != nil {
		// search unavailable reads the same as zero results downstream
		r.logf("web search failed: %v", err)
		searchFailures.Inc()
		results = nil
	}

	var (
		texts   []string
		sources []string
	)
	for _, res := range results {
		if len(texts) >= r.TargetScrapes {
			break
		}
		scrapeAttempts.Inc()
		page, err := r.Scraper.Scrape(ctx, res.URL)
		if err != nil {
			r.logf("scrape %s: %v", res.URL, err)
			continue
		}
		if page.Text == "" {
			r.logf("no usable content from %s (status %d)", res.URL, page.Status)
			continue
		}
		scrapeSuccesses.Inc()
		texts = append(texts, page.Text)
		sources = append(sources, res.URL)
	}

	if len(sources) == 0 {
		return Grounding{}, ErrNoContext
	}

	combined := strings.Join(texts, "\n\n")
	grounding := Grounding{Context: combined, Sources: sources}
	if len(combined) > r.TotalChars {
		grounding.TruncatedFrom = len(combined)
		grounding.Context = combined[:r.TotalChars]
		contextTruncations.Inc()
	}
	return grounding, nil
}

func (r *Retriever) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

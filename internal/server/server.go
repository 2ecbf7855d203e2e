package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/websage-ai/websage/config"
	"github.com/websage-ai/websage/internal/assistant"
	"github.com/websage-ai/websage/provider"
	"github.com/websage-ai/websage/tools/web_scrape"
	"github.com/websage-ai/websage/tools/web_search"
)

// Run wires the service from config and serves the HTTP API until the
// process exits.
func Run(cfg *config.Config) error {
	e := newEcho()

	ctx := context.Background()
	llm, err := provider.NewProvider(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("llm provider: %w", err)
	}
	searcher, err := web_search.NewWebSearcher(web_search.Provider(cfg.Search.Provider), cfg.Search)
	if err != nil {
		return fmt.Errorf("web searcher: %w", err)
	}
	scraper, err := web_scrape.NewScraper(web_scrape.FetcherType(cfg.Scrape.Fetcher), cfg.Scrape)
	if err != nil {
		return fmt.Errorf("scraper: %w", err)
	}
	store, err := newStore(cfg.Session)
	if err != nil {
		return fmt.Errorf("session store: %w", err)
	}

	asst := &assistant.Assistant{
		Classifier: &assistant.Classifier{LLM: llm, Logger: log.New(log.Writer(), "[INTENT] ", log.LstdFlags)},
		Generator:  &assistant.Generator{LLM: llm, Logger: log.New(log.Writer(), "[GEN] ", log.LstdFlags)},
		Retriever: &assistant.Retriever{
			Searcher:      searcher,
			Scraper:       scraper,
			TargetScrapes: cfg.Retrieval.TargetScrapes,
			MaxURLs:       cfg.Retrieval.MaxURLs,
			TotalChars:    cfg.Retrieval.TotalChars,
			Logger:        log.New(log.Writer(), "[RETRIEVE] ", log.LstdFlags),
		},
		Logger: log.New(log.Writer(), "[TURN] ", log.LstdFlags),
	}

	h := &ChatHandler{
		Store:      store,
		Assistant:  asst,
		SessionTTL: cfg.Session.TTL,
		Logger:     log.New(log.Writer(), "[CHAT] ", log.LstdFlags),
	}
	h.Register(e.Group("/api"))

	return e.Start(cfg.Server.Address)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	// Unified HTTP error handler with structured JSON and logging
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	return e
}

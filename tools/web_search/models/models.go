package models

// Result is a single web search hit. Only URL is required downstream; title
// and snippet travel along for logging.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

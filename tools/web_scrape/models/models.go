package models

// Page is the outcome of scraping one URL. Empty Text means "no usable
// content" regardless of cause; Status records the HTTP status when one was
// received (599 stands in for transport failures, matching no response at all).
type Page struct {
	URL     string `json:"url"`
	Text    string `json:"text"`
	Status  int    `json:"status"`
	FetchMS int    `json:"fetch_ms"`
}

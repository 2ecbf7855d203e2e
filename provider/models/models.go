package models

// Result is one model completion. Blocked reports a safety-policy stop that
// produced no text; Text and Blocked are never both set.
type Result struct {
	Text    string `json:"text"`
	Blocked bool   `json:"blocked"`
}

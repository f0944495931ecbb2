package domain

// Strategy is one titled piece of advice from the model.
type Strategy struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type VerdictStatus string

const (
	VerdictSafe  VerdictStatus = "Safe"
	VerdictRisky VerdictStatus = "Risky"
)

// Verdict is the model's affordability call on the first wishlist item.
type Verdict struct {
	Item   string        `json:"item"`
	Status VerdictStatus `json:"status"`
	Color  string        `json:"color"`
	Impact string        `json:"impact"`
	Advice string        `json:"advice"`
}

// Advice is the structured advisory result. When the model's reply cannot be
// parsed, Assessment carries the raw text and the rest is empty; the caller
// always gets a renderable value.
type Advice struct {
	Assessment string     `json:"assessment"`
	Strategies []Strategy `json:"strategies"`
	Verdict    *Verdict   `json:"verdict"`
}

// ModelInfo describes one entry of the local model catalog.
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"desc"`
}

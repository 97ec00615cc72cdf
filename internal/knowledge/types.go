package knowledge

// Passage is one retrieved text chunk and the page or file it came from.
type Passage struct {
	Text   string
	Source string
	Score  float64
}

// Document is a chunk to index.
type Document struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Source string `json:"source"`
}

package domain

// EcoProduct is a product suggestion returned by the generative search
// feature. Scores here are model estimates, not table lookups.
type EcoProduct struct {
	Name           string `json:"name"`
	Merchant       string `json:"merchant"`
	Description    string `json:"description"`
	EstimatedScore int    `json:"estimatedScore"`
}

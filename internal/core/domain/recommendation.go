package domain

// FundRecommendation describes a sustainable investment product suggested to
// users whose overall score clears the fund's minimum.
type FundRecommendation struct {
	Ticker      string `json:"ticker"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MinScore    int    `json:"minScore"`
	RiskLevel   string `json:"riskLevel"`
}

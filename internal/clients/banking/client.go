package banking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
)

// Client talks to the banking aggregator's REST API. Only the transactions
// endpoint is used; responses are mapped into the same raw rows the CSV
// parser produces so both sources feed one pipeline.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an aggregator client. The API key is sent as a bearer
// token on every request.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// aggregatorTransaction mirrors one element of the aggregator's
// /accounts/{id}/transactions response.
type aggregatorTransaction struct {
	Date     string `json:"date"`
	Merchant string `json:"merchant"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

type transactionsResponse struct {
	Transactions []aggregatorTransaction `json:"transactions"`
}

// FetchTransactions pulls the raw transactions of one external account.
func (c *Client) FetchTransactions(ctx context.Context, externalID string) ([]domain.RawRow, error) {
	endpoint := fmt.Sprintf("%s/accounts/%s/transactions", c.baseURL, url.PathEscape(externalID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build aggregator request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("aggregator request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("aggregator returned status %d", resp.StatusCode)
	}

	var body transactionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode aggregator response: %w", err)
	}

	rows := make([]domain.RawRow, len(body.Transactions))
	for i, t := range body.Transactions {
		rows[i] = domain.RawRow{
			Date:     t.Date,
			Merchant: t.Merchant,
			Category: t.Category,
			Amount:   t.Amount,
		}
	}
	return rows, nil
}

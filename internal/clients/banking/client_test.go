package banking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchTransactions_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/ext-123/transactions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"transactions": [
				{"date": "2024-01-15", "merchant": "Whole Foods", "category": "Groceries", "amount": "100.00"},
				{"date": "2024-01-16", "merchant": "Shell", "category": "Gas", "amount": "45.50"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	rows, err := client.FetchTransactions(context.Background(), "ext-123")

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Whole Foods", rows[0].Merchant)
	assert.Equal(t, "Groceries", rows[0].Category)
	assert.Equal(t, "100.00", rows[0].Amount)
	assert.Equal(t, "45.50", rows[1].Amount)
}

func TestFetchTransactions_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.FetchTransactions(context.Background(), "ext-123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFetchTransactions_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.FetchTransactions(context.Background(), "ext-123")

	require.Error(t, err)
}

func TestFetchTransactions_EmptyAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"transactions": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	rows, err := client.FetchTransactions(context.Background(), "ext-empty")

	require.NoError(t, err)
	assert.Empty(t, rows)
}

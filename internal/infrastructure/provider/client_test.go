package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statements "main/internal/domain/entity/statements"
)

func TestFetchStatement(t *testing.T) {
	var gotPath, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("api_token")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"date": "2024-12-31", "items": {"Total Revenue": 1000, "Net Income": 100}},
			{"date": "2025-12-31", "items": {"Total Revenue": 1200, "Net Income": 150}}
		]`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	statement, err := client.FetchStatement(context.Background(), "AAPL", statements.IncomeStatementType)
	require.NoError(t, err)

	assert.Equal(t, "/fundamentals/AAPL/income-statement", gotPath)
	assert.Equal(t, "test-key", gotToken)
	assert.Equal(t, statements.IncomeStatementType, statement.Type)

	// Periods come back most recent first regardless of wire order.
	require.Len(t, statement.Periods, 2)
	assert.Equal(t, 2025, statement.Periods[0].Year())
	revenue, ok := statement.Periods[0].Item(statements.LineTotalRevenue)
	require.True(t, ok)
	assert.Equal(t, 1200.0, revenue)
}

func TestFetchStatementBadDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"date": "not-a-date", "items": {}}]`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.FetchStatement(context.Background(), "AAPL", statements.BalanceSheetType)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse period date")
}

func TestFetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fundamentals/AAPL/general", r.URL.Path)
		w.Write([]byte(`{
			"code": "AAPL",
			"name": "Apple Inc.",
			"sector": "Technology",
			"industry": "Consumer Electronics",
			"market_capitalization": 3000000000000,
			"current_price": 195.5
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	profile, err := client.FetchProfile(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", profile.Ticker)
	assert.Equal(t, "Apple Inc.", profile.Name)
	assert.Equal(t, "Technology", profile.Sector)
	assert.Equal(t, 3e12, profile.MarketCap)
	assert.Equal(t, 195.5, profile.CurrentPrice)
}

func TestFetchProfileEmptyNameFallsBackToTicker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": "XYZ"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	profile, err := client.FetchProfile(context.Background(), "XYZ")
	require.NoError(t, err)
	assert.Equal(t, "XYZ", profile.Name)
}

func TestAPIErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "unknown symbol"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.FetchStatement(context.Background(), "NOPE", statements.CashFlowType)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "unknown symbol", apiErr.Message)
	assert.Equal(t, "/fundamentals/NOPE/cash-flow", apiErr.Endpoint)
}

func TestAPIErrorRawBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`backend unavailable`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.FetchProfile(context.Background(), "AAPL")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "backend unavailable", apiErr.Message)
}

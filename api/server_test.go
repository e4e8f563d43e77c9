package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	aimock "github.com/poiesic/compsearch/ai/mock"
	"github.com/poiesic/compsearch/core"
	fdmock "github.com/poiesic/compsearch/findata/mock"
	"github.com/poiesic/compsearch/index"
	idxmock "github.com/poiesic/compsearch/index/mock"
	"github.com/poiesic/compsearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func richFundamentals(base float64) *core.Fundamentals {
	desc := "A company."
	return &core.Fundamentals{
		TrailingPE:         f64(base),
		ForwardPE:          f64(base + 1),
		MarketCap:          f64(base * 1e9),
		Revenue:            f64(base * 1e8),
		GrossMargin:        f64(0.4),
		EBITDAMargin:       f64(0.3),
		OperatingMargin:    f64(0.2),
		EBITDA:             f64(base * 1e7),
		TotalDebt:          f64(base * 2e7),
		QuickRatio:         f64(1.1),
		CurrentRatio:       f64(1.5),
		DebtToEquity:       f64(80),
		RevenuePerShare:    f64(12),
		FreeCashFlow:       f64(base * 3e6),
		OperatingCashflow:  f64(base * 4e6),
		EarningsGrowth:     f64(0.1),
		RevenueGrowth:      f64(0.05),
		CompanyDescription: &desc,
	}
}

func newTestServer(t *testing.T, embedder *aimock.MockEmbedder, idx *idxmock.MockIndex, provider *fdmock.MockProvider) *httptest.Server {
	t.Helper()

	searcher, err := search.NewSearcher(embedder, idx, provider)
	require.NoError(t, err)
	t.Cleanup(searcher.Release)

	server, err := NewServer(searcher)
	require.NoError(t, err)

	srv := httptest.NewServer(server.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestNewServerRequiresSearcher(t *testing.T) {
	_, err := NewServer(nil)
	assert.Equal(t, ErrSearcherRequired, err)
}

func TestSearchEndpoint(t *testing.T) {
	embedder := aimock.NewMockEmbedder()
	idx := idxmock.NewMockIndex()
	provider := fdmock.NewMockProvider()

	idx.Matches = []index.Match{
		{ID: "ACME", Company: core.Company{Name: "ACME Corp", Exchange: "NYSE", Ticker: "ACME", Country: "US", Industry: "Machinery", Sector: "Industrials"}},
		{ID: "WDGT", Company: core.Company{Name: "Widget Inc", Exchange: "NASDAQ", Ticker: "WDGT", Country: "US", Industry: "Machinery", Sector: "Industrials"}},
	}
	provider.Fundamentals["ACME"] = richFundamentals(10)
	provider.Fundamentals["WDGT"] = richFundamentals(20)

	srv := newTestServer(t, embedder, idx, provider)

	resp := postJSON(t, srv.URL+"/search", map[string]any{
		"description": "industrial machinery",
		"countries":   []string{"US"},
		"sectors":     []string{"Industrials"},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	var records []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 2)
	assert.Equal(t, "ACME", records[0]["ticker"])
	assert.Equal(t, "WDGT", records[1]["ticker"])

	// Missing attributes serialize as explicit nulls.
	require.Contains(t, records[0], "peg_ratio")
	assert.Nil(t, records[0]["peg_ratio"])

	// The filter reached the index.
	assert.Equal(t, []string{"US"}, idx.LastFilter.Countries)
	assert.Equal(t, []string{"Industrials"}, idx.LastFilter.Sectors)
}

func TestSearchEndpointRejectsBadInput(t *testing.T) {
	srv := newTestServer(t, aimock.NewMockEmbedder(), idxmock.NewMockIndex(), fdmock.NewMockProvider())

	t.Run("empty description", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/search", map[string]any{"description": ""})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body["error"], "description")
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/search", "application/json", bytes.NewReader([]byte("{not json")))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestSearchEndpointUpstreamFailure(t *testing.T) {
	embedder := aimock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embedding service down")
	}

	srv := newTestServer(t, embedder, idxmock.NewMockIndex(), fdmock.NewMockProvider())

	resp := postJSON(t, srv.URL+"/search", map[string]any{"description": "anything"})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestSearchTickerEndpoint(t *testing.T) {
	embedder := aimock.NewMockEmbedder()
	idx := idxmock.NewMockIndex()
	provider := fdmock.NewMockProvider()

	idx.Matches = []index.Match{
		{ID: "ACME", Company: core.Company{Name: "ACME Corp", Exchange: "NYSE", Ticker: "ACME", Country: "US", Industry: "Machinery", Sector: "Industrials"}},
	}
	provider.Fundamentals["ACME"] = richFundamentals(10)

	srv := newTestServer(t, embedder, idx, provider)

	t.Run("known ticker", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/search_ticker", map[string]any{"ticker": "ACME"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var records []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
		require.Len(t, records, 1)
		assert.Equal(t, "ACME", records[0]["ticker"])
	})

	t.Run("unknown ticker", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/search_ticker", map[string]any{"ticker": "NOPE"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("empty ticker", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/search_ticker", map[string]any{"ticker": ""})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPreflight(t *testing.T) {
	srv := newTestServer(t, aimock.NewMockEmbedder(), idxmock.NewMockIndex(), fdmock.NewMockProvider())

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/search", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

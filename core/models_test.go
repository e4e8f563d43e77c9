package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

func TestAgreementRatio(t *testing.T) {
	base := func() *CompanyRecord {
		return &CompanyRecord{
			Company: Company{
				Name:     "ACME Corp",
				Exchange: "NYSE",
				Ticker:   "ACME",
				Country:  "US",
				Industry: "Machinery",
				Sector:   "Industrials",
			},
			Fundamentals: Fundamentals{
				TrailingPE: f64(21.5),
				MarketCap:  f64(5.2e9),
			},
		}
	}

	t.Run("identical records agree fully", func(t *testing.T) {
		a, b := base(), base()
		assert.Equal(t, 1.0, AgreementRatio(a, b))
	})

	t.Run("only ticker differs", func(t *testing.T) {
		a, b := base(), base()
		b.Ticker = "ACME-L"
		assert.InDelta(t, 34.0/35.0, AgreementRatio(a, b), 1e-9)
	})

	t.Run("missing equals missing, not zero", func(t *testing.T) {
		a, b := base(), base()
		a.TrailingPE = nil
		b.TrailingPE = f64(0)
		assert.InDelta(t, 34.0/35.0, AgreementRatio(a, b), 1e-9)

		b.TrailingPE = nil
		assert.Equal(t, 1.0, AgreementRatio(a, b))
	})

	t.Run("float fields compare exactly", func(t *testing.T) {
		a, b := base(), base()
		b.MarketCap = f64(5.2e9 + 1)
		assert.InDelta(t, 34.0/35.0, AgreementRatio(a, b), 1e-9)
	})
}

func TestMissingRatio(t *testing.T) {
	t.Run("empty fundamentals are fully missing", func(t *testing.T) {
		r := &CompanyRecord{}
		assert.Equal(t, 1.0, r.MissingRatio())
	})

	t.Run("identity fields are not in the denominator", func(t *testing.T) {
		r := &CompanyRecord{Company: Company{Name: "ACME", Ticker: "ACME"}}
		assert.Equal(t, 1.0, r.MissingRatio())

		r.TrailingPE = f64(10)
		assert.InDelta(t, 28.0/29.0, r.MissingRatio(), 1e-9)
	})
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, 1.23, RoundPercent(0.01234))
	assert.Equal(t, 0.35, RoundPercent(0.0035))
	assert.Equal(t, 100.0, RoundPercent(1))
	assert.Equal(t, 0.0, RoundPercent(0))
}

func TestCompanyRecordJSON(t *testing.T) {
	r := &CompanyRecord{
		Company: Company{
			Name:     "ACME Corp",
			Exchange: "NYSE",
			Ticker:   "ACME",
			Country:  "US",
			Industry: "Machinery",
			Sector:   "Industrials",
		},
		Fundamentals: Fundamentals{
			TrailingPE:         f64(21.5),
			CompanyDescription: str("ACME Corp makes anvils."),
		},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Identity and present attributes carry values.
	assert.Equal(t, "ACME", decoded["ticker"])
	assert.Equal(t, 21.5, decoded["trailing_pe"])

	// Missing attributes are explicit nulls, keeping the key set fixed
	// across records.
	require.Contains(t, decoded, "market_cap")
	assert.Nil(t, decoded["market_cap"])
	require.Contains(t, decoded, "forward_dividend_yield")
	assert.Nil(t, decoded["forward_dividend_yield"])

	// 6 identity + 29 financial keys, enrichment_error omitted when false.
	assert.Len(t, decoded, 35)
	assert.NotContains(t, decoded, "enrichment_error")

	r.EnrichmentError = true
	data, err = json.Marshal(r)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, true, decoded["enrichment_error"])
}

package search

import (
	"fmt"

	"github.com/poiesic/compsearch/core"
	"github.com/poiesic/compsearch/index"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }
func str(v string) *string   { return &v }

// fullFundamentals returns a Fundamentals with all 29 attributes present,
// derived from base so different companies get different profiles.
func fullFundamentals(base float64) *core.Fundamentals {
	return &core.Fundamentals{
		FullTimeEmployees:        i64(int64(base * 100)),
		IRWebsiteLink:            str(fmt.Sprintf("https://ir.example.com/%.0f", base)),
		ForwardDividend:          f64(base + 0.1),
		ForwardDividendYield:     f64(base + 0.2),
		TrailingPE:               f64(base + 0.3),
		ForwardPE:                f64(base + 0.4),
		MarketCap:                f64(base * 1e9),
		PriceToSalesTrailing12Mo: f64(base + 0.5),
		EnterpriseValue:          f64(base * 1.1e9),
		PriceToBook:              f64(base + 0.6),
		TrailingEPS:              f64(base + 0.7),
		ForwardEPS:               f64(base + 0.8),
		PEGRatio:                 f64(base + 0.9),
		EBITDA:                   f64(base * 1e8),
		TotalDebt:                f64(base * 2e8),
		QuickRatio:               f64(base + 1.1),
		CurrentRatio:             f64(base + 1.2),
		Revenue:                  f64(base * 3e8),
		DebtToEquity:             f64(base + 1.3),
		RevenuePerShare:          f64(base + 1.4),
		FreeCashFlow:             f64(base * 4e7),
		OperatingCashflow:        f64(base * 5e7),
		EarningsGrowth:           f64(base + 1.5),
		RevenueGrowth:            f64(base + 1.6),
		GrossMargin:              f64(base + 1.7),
		EBITDAMargin:             f64(base + 1.8),
		OperatingMargin:          f64(base + 1.9),
		TrailingPEGRatio:         f64(base + 2.0),
		CompanyDescription:       str(fmt.Sprintf("Company %.0f does things.", base)),
	}
}

// fundamentalsWithPresent returns a Fundamentals with exactly n of the 29
// attributes present, filled in schema order.
func fundamentalsWithPresent(n int) *core.Fundamentals {
	f := &core.Fundamentals{}
	setters := []func(){
		func() { f.FullTimeEmployees = i64(500) },
		func() { f.IRWebsiteLink = str("https://ir.example.com") },
		func() { f.ForwardDividend = f64(1.0) },
		func() { f.ForwardDividendYield = f64(1.1) },
		func() { f.TrailingPE = f64(1.2) },
		func() { f.ForwardPE = f64(1.3) },
		func() { f.MarketCap = f64(1.4) },
		func() { f.PriceToSalesTrailing12Mo = f64(1.5) },
		func() { f.EnterpriseValue = f64(1.6) },
		func() { f.PriceToBook = f64(1.7) },
		func() { f.TrailingEPS = f64(1.8) },
		func() { f.ForwardEPS = f64(1.9) },
		func() { f.PEGRatio = f64(2.0) },
		func() { f.EBITDA = f64(2.1) },
		func() { f.TotalDebt = f64(2.2) },
		func() { f.QuickRatio = f64(2.3) },
		func() { f.CurrentRatio = f64(2.4) },
		func() { f.Revenue = f64(2.5) },
		func() { f.DebtToEquity = f64(2.6) },
		func() { f.RevenuePerShare = f64(2.7) },
		func() { f.FreeCashFlow = f64(2.8) },
		func() { f.OperatingCashflow = f64(2.9) },
		func() { f.EarningsGrowth = f64(3.0) },
		func() { f.RevenueGrowth = f64(3.1) },
		func() { f.GrossMargin = f64(3.2) },
		func() { f.EBITDAMargin = f64(3.3) },
		func() { f.OperatingMargin = f64(3.4) },
		func() { f.TrailingPEGRatio = f64(3.5) },
		func() { f.CompanyDescription = str("sparse co") },
	}
	for i := 0; i < n && i < len(setters); i++ {
		setters[i]()
	}
	return f
}

func company(ticker string) core.Company {
	return core.Company{
		Name:     "Company " + ticker,
		Exchange: "NYSE",
		Ticker:   ticker,
		Country:  "US",
		Industry: "Software",
		Sector:   "Technology",
	}
}

func matchFor(ticker string) index.Match {
	return index.Match{ID: ticker, Company: company(ticker)}
}

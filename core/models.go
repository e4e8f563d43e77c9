package core

import "math"

// Company holds the identity metadata stored alongside a vector in the
// similarity index. These fields are always present; the index is the
// source of truth for them, not the financial data provider.
type Company struct {
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Ticker   string `json:"ticker"`
	Country  string `json:"country"`
	Industry string `json:"industry"`
	Sector   string `json:"sector"`
}

// Fundamentals is the fixed schema of financial attributes fetched live
// for a ticker. Every attribute is optional: a nil pointer is the explicit
// "missing" marker, never conflated with zero. The display-layer "N/A"
// rendering is derived from nil at the boundary only.
//
// ForwardDividendYield is a percentage rounded to two decimal places by the
// provider before the record is ever compared field-wise.
type Fundamentals struct {
	FullTimeEmployees        *int64   `json:"full_time_employees"`
	IRWebsiteLink            *string  `json:"ir_website_link"`
	ForwardDividend          *float64 `json:"forward_dividend"`
	ForwardDividendYield     *float64 `json:"forward_dividend_yield"`
	TrailingPE               *float64 `json:"trailing_pe"`
	ForwardPE                *float64 `json:"forward_pe"`
	MarketCap                *float64 `json:"market_cap"`
	PriceToSalesTrailing12Mo *float64 `json:"price_to_sales_trailing12mo"`
	EnterpriseValue          *float64 `json:"enterprise_value"`
	PriceToBook              *float64 `json:"price_to_book"`
	TrailingEPS              *float64 `json:"trailing_eps"`
	ForwardEPS               *float64 `json:"forward_eps"`
	PEGRatio                 *float64 `json:"peg_ratio"`
	EBITDA                   *float64 `json:"ebitda"`
	TotalDebt                *float64 `json:"total_debt"`
	QuickRatio               *float64 `json:"quick_ratio"`
	CurrentRatio             *float64 `json:"current_ratio"`
	Revenue                  *float64 `json:"revenue"`
	DebtToEquity             *float64 `json:"debt_to_equity"`
	RevenuePerShare          *float64 `json:"revenue_per_share"`
	FreeCashFlow             *float64 `json:"free_cash_flow"`
	OperatingCashflow        *float64 `json:"operating_cashflow"`
	EarningsGrowth           *float64 `json:"earnings_growth"`
	RevenueGrowth            *float64 `json:"revenue_growth"`
	GrossMargin              *float64 `json:"gross_margin"`
	EBITDAMargin             *float64 `json:"ebitda_margin"`
	OperatingMargin          *float64 `json:"operating_margin"`
	TrailingPEGRatio         *float64 `json:"trailing_peg_ratio"`
	CompanyDescription       *string  `json:"company_description"`
}

// CompanyRecord is a candidate's index metadata merged with its live
// fundamentals. EnrichmentError marks records whose financial lookup
// failed; such records keep all fundamentals missing rather than failing
// the whole response.
type CompanyRecord struct {
	Company
	Fundamentals
	EnrichmentError bool `json:"enrichment_error,omitempty"`
}

// financialFields returns the financial attributes in schema order as
// comparable values, nil for missing. The order and length are identical
// for every record, which is what makes field-wise comparison valid.
func (f *Fundamentals) financialFields() []any {
	return []any{
		deref(f.FullTimeEmployees),
		deref(f.IRWebsiteLink),
		deref(f.ForwardDividend),
		deref(f.ForwardDividendYield),
		deref(f.TrailingPE),
		deref(f.ForwardPE),
		deref(f.MarketCap),
		deref(f.PriceToSalesTrailing12Mo),
		deref(f.EnterpriseValue),
		deref(f.PriceToBook),
		deref(f.TrailingEPS),
		deref(f.ForwardEPS),
		deref(f.PEGRatio),
		deref(f.EBITDA),
		deref(f.TotalDebt),
		deref(f.QuickRatio),
		deref(f.CurrentRatio),
		deref(f.Revenue),
		deref(f.DebtToEquity),
		deref(f.RevenuePerShare),
		deref(f.FreeCashFlow),
		deref(f.OperatingCashflow),
		deref(f.EarningsGrowth),
		deref(f.RevenueGrowth),
		deref(f.GrossMargin),
		deref(f.EBITDAMargin),
		deref(f.OperatingMargin),
		deref(f.TrailingPEGRatio),
		deref(f.CompanyDescription),
	}
}

// comparableFields returns every field of the record in schema order:
// the six identity fields followed by the financial attributes. Identity
// fields are deliberately included, so two distinct tickers can still
// agree highly when their financial profiles are near-identical.
func (r *CompanyRecord) comparableFields() []any {
	fields := make([]any, 0, 6+len(r.financialFields()))
	fields = append(fields, r.Name, r.Exchange, r.Ticker, r.Country, r.Industry, r.Sector)
	return append(fields, r.financialFields()...)
}

// AgreementRatio computes the fraction of fields holding exactly equal
// values between two records. Missing compared against missing counts as
// equal. Float fields compare bit-for-bit; any rounding the provider
// applies has already happened by the time records exist.
func AgreementRatio(a, b *CompanyRecord) float64 {
	fa := a.comparableFields()
	fb := b.comparableFields()

	equal := 0
	for i := range fa {
		if fa[i] == fb[i] {
			equal++
		}
	}
	return float64(equal) / float64(len(fa))
}

// MissingRatio computes the fraction of the record's financial attributes
// that are missing. Identity fields come from the index and are always
// present, so they are not part of the denominator.
func (r *CompanyRecord) MissingRatio() float64 {
	fields := r.financialFields()

	missing := 0
	for _, v := range fields {
		if v == nil {
			missing++
		}
	}
	return float64(missing) / float64(len(fields))
}

// RoundPercent converts a raw fraction to a percentage rounded to two
// decimal places, e.g. 0.01234 -> 1.23.
func RoundPercent(raw float64) float64 {
	return math.Round(raw*100*100) / 100
}

// deref unwraps an optional field for comparison. A nil pointer becomes a
// nil any, which only equals another nil.
func deref[T comparable](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

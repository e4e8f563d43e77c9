package yahoo

import (
	"strings"

	"github.com/poiesic/compsearch/core"
)

// rawValue is Yahoo's wrapped numeric: {"raw": 1.23, "fmt": "1.23"}.
// Absent values arrive as {} and leave Raw nil.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  *apiError            `json:"error"`
	} `json:"quoteSummary"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type quoteSummaryResult struct {
	AssetProfile *struct {
		LongBusinessSummary string `json:"longBusinessSummary"`
		FullTimeEmployees   *int64 `json:"fullTimeEmployees"`
		IRWebsite           string `json:"irWebsite"`
	} `json:"assetProfile"`

	SummaryDetail *struct {
		DividendRate                 rawValue `json:"dividendRate"`
		DividendYield                rawValue `json:"dividendYield"`
		TrailingPE                   rawValue `json:"trailingPE"`
		ForwardPE                    rawValue `json:"forwardPE"`
		MarketCap                    rawValue `json:"marketCap"`
		PriceToSalesTrailing12Months rawValue `json:"priceToSalesTrailing12Months"`
	} `json:"summaryDetail"`

	DefaultKeyStatistics *struct {
		EnterpriseValue  rawValue `json:"enterpriseValue"`
		PriceToBook      rawValue `json:"priceToBook"`
		TrailingEps      rawValue `json:"trailingEps"`
		ForwardEps       rawValue `json:"forwardEps"`
		PegRatio         rawValue `json:"pegRatio"`
		TrailingPegRatio rawValue `json:"trailingPegRatio"`
	} `json:"defaultKeyStatistics"`

	FinancialData *struct {
		Ebitda            rawValue `json:"ebitda"`
		TotalDebt         rawValue `json:"totalDebt"`
		QuickRatio        rawValue `json:"quickRatio"`
		CurrentRatio      rawValue `json:"currentRatio"`
		TotalRevenue      rawValue `json:"totalRevenue"`
		DebtToEquity      rawValue `json:"debtToEquity"`
		RevenuePerShare   rawValue `json:"revenuePerShare"`
		FreeCashflow      rawValue `json:"freeCashflow"`
		OperatingCashflow rawValue `json:"operatingCashflow"`
		EarningsGrowth    rawValue `json:"earningsGrowth"`
		RevenueGrowth     rawValue `json:"revenueGrowth"`
		GrossMargins      rawValue `json:"grossMargins"`
		EbitdaMargins     rawValue `json:"ebitdaMargins"`
		OperatingMargins  rawValue `json:"operatingMargins"`
	} `json:"financialData"`
}

// fundamentals maps the decoded quoteSummary modules onto the domain
// schema. Attributes Yahoo did not report stay nil. The dividend yield is
// converted to a two-decimal percentage here, before any record
// comparison can see it.
func (r *quoteSummaryResult) fundamentals() *core.Fundamentals {
	f := &core.Fundamentals{}

	if ap := r.AssetProfile; ap != nil {
		f.FullTimeEmployees = ap.FullTimeEmployees
		if summary := strings.TrimSpace(ap.LongBusinessSummary); summary != "" {
			f.CompanyDescription = &summary
		}
		if ap.IRWebsite != "" {
			site := ap.IRWebsite
			f.IRWebsiteLink = &site
		}
	}

	if sd := r.SummaryDetail; sd != nil {
		f.ForwardDividend = sd.DividendRate.Raw
		if y := sd.DividendYield.Raw; y != nil {
			pct := core.RoundPercent(*y)
			f.ForwardDividendYield = &pct
		}
		f.TrailingPE = sd.TrailingPE.Raw
		f.ForwardPE = sd.ForwardPE.Raw
		f.MarketCap = sd.MarketCap.Raw
		f.PriceToSalesTrailing12Mo = sd.PriceToSalesTrailing12Months.Raw
	}

	if ks := r.DefaultKeyStatistics; ks != nil {
		f.EnterpriseValue = ks.EnterpriseValue.Raw
		f.PriceToBook = ks.PriceToBook.Raw
		f.TrailingEPS = ks.TrailingEps.Raw
		f.ForwardEPS = ks.ForwardEps.Raw
		f.PEGRatio = ks.PegRatio.Raw
		f.TrailingPEGRatio = ks.TrailingPegRatio.Raw
	}

	if fd := r.FinancialData; fd != nil {
		f.EBITDA = fd.Ebitda.Raw
		f.TotalDebt = fd.TotalDebt.Raw
		f.QuickRatio = fd.QuickRatio.Raw
		f.CurrentRatio = fd.CurrentRatio.Raw
		f.Revenue = fd.TotalRevenue.Raw
		f.DebtToEquity = fd.DebtToEquity.Raw
		f.RevenuePerShare = fd.RevenuePerShare.Raw
		f.FreeCashFlow = fd.FreeCashflow.Raw
		f.OperatingCashflow = fd.OperatingCashflow.Raw
		f.EarningsGrowth = fd.EarningsGrowth.Raw
		f.RevenueGrowth = fd.RevenueGrowth.Raw
		f.GrossMargin = fd.GrossMargins.Raw
		f.EBITDAMargin = fd.EbitdaMargins.Raw
		f.OperatingMargin = fd.OperatingMargins.Raw
	}

	return f
}

package advisor

// Fund represents a single fund record in the demo catalog
type Fund struct {
	Name              string  `json:"name"`
	Ticker            string  `json:"ticker"`
	Category          string  `json:"category"`
	MorningstarRating int     `json:"morningstar_rating"`
	RiskLevel         string  `json:"risk_level"`
	TotalReturnYTD    float64 `json:"total_return_ytd"`
	ExpenseRatio      float64 `json:"expense_ratio"`
	MinimumInvestment int     `json:"minimum_investment"`
}

// Risk levels recognized by the fund catalog.
const (
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
)

var fundDatabase = []Fund{
	{
		Name:              "Global Growth Fund",
		Ticker:            "GLGFX",
		Category:          "Global Large-Stock Growth",
		MorningstarRating: 4,
		RiskLevel:         RiskModerate,
		TotalReturnYTD:    15.72,
		ExpenseRatio:      0.85,
		MinimumInvestment: 250000,
	},
	{
		Name:              "US Large Cap Value Fund",
		Ticker:            "USLVX",
		Category:          "Large Value",
		MorningstarRating: 5,
		RiskLevel:         RiskLow,
		TotalReturnYTD:    9.34,
		ExpenseRatio:      0.68,
		MinimumInvestment: 2500,
	},
	{
		Name:              "Emerging Markets Bond Fund",
		Ticker:            "EMBFX",
		Category:          "Emerging Markets Bond",
		MorningstarRating: 3,
		RiskLevel:         RiskHigh,
		TotalReturnYTD:    6.21,
		ExpenseRatio:      0.95,
		MinimumInvestment: 10000,
	},
	{
		Name:              "Technology Sector Fund",
		Ticker:            "TECHX",
		Category:          "Technology",
		MorningstarRating: 4,
		RiskLevel:         RiskHigh,
		TotalReturnYTD:    22.51,
		ExpenseRatio:      1.05,
		MinimumInvestment: 5000,
	},
	{
		Name:              "Sustainable Energy Fund",
		Ticker:            "SUENX",
		Category:          "Alternative Energy",
		MorningstarRating: 5,
		RiskLevel:         RiskModerate,
		TotalReturnYTD:    18.63,
		ExpenseRatio:      1.15,
		MinimumInvestment: 1000,
	},
}

// FundCriteria is a conjunction of optional fund filters.
// Zero values mean "no constraint".
type FundCriteria struct {
	RiskLevel       string  `json:"risk_level,omitempty"`
	MinRating       int     `json:"min_rating,omitempty"`
	MaxExpenseRatio float64 `json:"max_expense_ratio,omitempty"`
	MaxInvestment   int     `json:"max_investment,omitempty"`
}

// LookupFunds filters the fixed fund catalog by the given criteria.
// Every set criterion must hold; tightening any single threshold can only
// shrink the result. Returns an empty slice (never nil) when nothing matches.
func LookupFunds(criteria FundCriteria) []Fund {
	out := make([]Fund, 0, len(fundDatabase))
	for _, fund := range fundDatabase {
		if criteria.RiskLevel != "" && fund.RiskLevel != criteria.RiskLevel {
			continue
		}
		if criteria.MinRating > 0 && fund.MorningstarRating < criteria.MinRating {
			continue
		}
		if criteria.MaxExpenseRatio > 0 && fund.ExpenseRatio > criteria.MaxExpenseRatio {
			continue
		}
		if criteria.MaxInvestment > 0 && fund.MinimumInvestment > criteria.MaxInvestment {
			continue
		}
		out = append(out, fund)
	}
	return out
}

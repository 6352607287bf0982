package donation

import "github.com/shopspring/decimal"

// Cost of one unit of each impact category, in dollars.
var (
	schoolSuppliesCost      = decimal.NewFromInt(25)
	mentorshipMonthCost     = decimal.NewFromInt(50)
	businessSeedCapitalCost = decimal.NewFromInt(200)
)

// Impact is an illustrative breakdown of what a gift pays for.
type Impact struct {
	SchoolSupplies      int64
	MonthsOfMentorship  int64
	BusinessSeedCapital int64
}

// CalculateImpact maps an amount to whole units per category using floor
// division.
func CalculateImpact(amount decimal.Decimal) Impact {
	return Impact{
		SchoolSupplies:      amount.Div(schoolSuppliesCost).Floor().IntPart(),
		MonthsOfMentorship:  amount.Div(mentorshipMonthCost).Floor().IntPart(),
		BusinessSeedCapital: amount.Div(businessSeedCapitalCost).Floor().IntPart(),
	}
}

package mockdata

import "github.com/shopspring/decimal"

const recentDonationLimit = 5

// Stats computes the admin dashboard aggregates.
func Stats() DashboardStats {
	stats := DashboardStats{
		TotalBeneficiaries: len(beneficiaries),
		TotalDonors:        len(donors),
		TotalRaised:        decimal.Zero,
	}
	for _, b := range beneficiaries {
		switch b.Status {
		case BeneficiaryActive:
			stats.ActiveBeneficiaries++
		case BeneficiaryGraduated:
			stats.GraduatedBeneficiaries++
		}
	}
	for _, d := range donations {
		if d.PaymentStatus == PaymentCompleted {
			stats.TotalRaised = stats.TotalRaised.Add(d.Amount)
		}
	}
	counts := make(map[ProgramCategory]int)
	var order []ProgramCategory
	for _, p := range Programs() {
		if p.Status == ProgramActive {
			stats.ActivePrograms++
		}
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category] += p.BeneficiaryCount
	}
	for _, category := range order {
		stats.ProgramDistribution = append(stats.ProgramDistribution, ProgramShare{Category: category, Count: counts[category]})
	}
	recent := Donations()
	if len(recent) > recentDonationLimit {
		recent = recent[:recentDonationLimit]
	}
	stats.RecentDonations = recent
	return stats
}

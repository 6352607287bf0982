package donor

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lceo-rwanda/portal/internal/portal/donation"
	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
)

// donorFor returns the record linked to the viewer, or the first donor when
// the viewer has none.
func donorFor(viewer module.Viewer) mockdata.Donor {
	if d, ok := mockdata.DonorByUserID(viewer.User.ID); ok {
		return d
	}
	all := mockdata.Donors()
	if len(all) == 0 {
		return mockdata.Donor{}
	}
	return all[0]
}

// scheduledGift is the next expected recurring donation.
type scheduledGift struct {
	Due    time.Time
	Amount decimal.Decimal
	Type   mockdata.DonationType
}

type overview struct {
	Donor       mockdata.Donor
	Impact      donation.Impact
	Recent      []mockdata.Donation
	Next        *scheduledGift
	ProgramsFed int
}

const recentLimit = 3

func overviewFor(d mockdata.Donor) overview {
	history := mockdata.DonationsByDonor(d.ID)
	o := overview{
		Donor:       d,
		Impact:      donation.CalculateImpact(d.TotalDonated),
		Recent:      history,
		ProgramsFed: len(allocate(history)),
	}
	if len(o.Recent) > recentLimit {
		o.Recent = o.Recent[:recentLimit]
	}
	o.Next = nextScheduled(history)
	return o
}

// nextScheduled projects the latest recurring gift forward one period.
func nextScheduled(history []mockdata.Donation) *scheduledGift {
	for _, gift := range history {
		var due time.Time
		switch gift.DonationType {
		case mockdata.DonationMonthly:
			due = gift.CreatedAt.AddDate(0, 1, 0)
		case mockdata.DonationQuarterly:
			due = gift.CreatedAt.AddDate(0, 3, 0)
		case mockdata.DonationYearly:
			due = gift.CreatedAt.AddDate(1, 0, 0)
		default:
			continue
		}
		return &scheduledGift{Due: due, Amount: gift.Amount, Type: gift.DonationType}
	}
	return nil
}

// allocation is the donor's giving to one program.
type allocation struct {
	ProgramID string
	Total     decimal.Decimal
	Gifts     int
}

// allocate groups completed gifts by program in first-seen order.
func allocate(history []mockdata.Donation) []allocation {
	var out []allocation
	index := make(map[string]int)
	for _, gift := range history {
		if gift.PaymentStatus != mockdata.PaymentCompleted {
			continue
		}
		i, ok := index[gift.ProgramID]
		if !ok {
			i = len(out)
			index[gift.ProgramID] = i
			out = append(out, allocation{ProgramID: gift.ProgramID, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(gift.Amount)
		out[i].Gifts++
	}
	return out
}

// report is a published impact document.
type report struct {
	Title    string
	Released string
	Summary  string
}

var reports = []report{
	{Title: "Q2 2023 Quarterly Report", Released: "Released July 2023", Summary: "Progress on entrepreneurship cohorts and school retention."},
	{Title: "Annual Impact Report 2022", Released: "Released Jan 2023", Summary: "A full year of programs, outcomes and finances."},
}

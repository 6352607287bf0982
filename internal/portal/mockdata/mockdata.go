package mockdata

import (
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Users returns every seeded user.
func Users() []User { return slices.Clone(users) }

// Beneficiaries returns every seeded beneficiary.
func Beneficiaries() []Beneficiary { return slices.Clone(beneficiaries) }

// Donors returns every seeded donor.
func Donors() []Donor { return slices.Clone(donors) }

// Donations returns every seeded donation, newest first.
func Donations() []Donation {
	out := slices.Clone(donations)
	sortDonationsNewestFirst(out)
	return out
}

// Goals returns every seeded goal.
func Goals() []Goal { return slices.Clone(goals) }

// WeeklyTrackings returns every seeded tracking entry.
func WeeklyTrackings() []WeeklyTracking { return slices.Clone(trackings) }

// Stories returns every seeded story.
func Stories() []Story { return slices.Clone(stories) }

// Programs returns every program ordered by SortOrder.
func Programs() []Program {
	out := make([]Program, 0, len(programs))
	for _, p := range programs {
		out = append(out, cloneProgram(p))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// ActivePrograms returns programs currently accepting donations.
func ActivePrograms() []Program {
	var out []Program
	for _, p := range Programs() {
		if p.Status == ProgramActive {
			out = append(out, p)
		}
	}
	return out
}

// UserByID finds a user by id.
func UserByID(id string) (User, bool) {
	id = strings.TrimSpace(id)
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// UserByEmail finds a user by email, ignoring case.
func UserByEmail(email string) (User, bool) {
	email = strings.TrimSpace(email)
	if email == "" {
		return User{}, false
	}
	for _, u := range users {
		if u.Email != "" && strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return User{}, false
}

// FirstUserOfType returns the first seeded user with the given type.
func FirstUserOfType(t UserType) (User, bool) {
	for _, u := range users {
		if u.UserType == t {
			return u, true
		}
	}
	return User{}, false
}

// ProgramByID finds a program by id.
func ProgramByID(id string) (Program, bool) {
	id = strings.TrimSpace(id)
	for _, p := range programs {
		if p.ID == id {
			return cloneProgram(p), true
		}
	}
	return Program{}, false
}

// BeneficiaryByID finds a beneficiary by id.
func BeneficiaryByID(id string) (Beneficiary, bool) {
	for _, b := range beneficiaries {
		if b.ID == id {
			return b, true
		}
	}
	return Beneficiary{}, false
}

// BeneficiaryByUserID finds the beneficiary profile owned by a user.
func BeneficiaryByUserID(userID string) (Beneficiary, bool) {
	if userID == "" {
		return Beneficiary{}, false
	}
	for _, b := range beneficiaries {
		if b.UserID == userID {
			return b, true
		}
	}
	return Beneficiary{}, false
}

// DonorByUserID finds the donor profile owned by a user.
func DonorByUserID(userID string) (Donor, bool) {
	if userID == "" {
		return Donor{}, false
	}
	for _, d := range donors {
		if d.UserID == userID {
			return d, true
		}
	}
	return Donor{}, false
}

// DonorByID finds a donor by id.
func DonorByID(id string) (Donor, bool) {
	for _, d := range donors {
		if d.ID == id {
			return d, true
		}
	}
	return Donor{}, false
}

// DonationsByDonor returns a donor's donations, newest first.
func DonationsByDonor(donorID string) []Donation {
	var out []Donation
	for _, d := range donations {
		if d.DonorID == donorID {
			out = append(out, d)
		}
	}
	sortDonationsNewestFirst(out)
	return out
}

// GoalsByBeneficiary returns a beneficiary's goals.
func GoalsByBeneficiary(beneficiaryID string) []Goal {
	var out []Goal
	for _, g := range goals {
		if g.BeneficiaryID == beneficiaryID {
			out = append(out, g)
		}
	}
	return out
}

// TrackingsByBeneficiary returns a beneficiary's tracking entries, newest first.
func TrackingsByBeneficiary(beneficiaryID string) []WeeklyTracking {
	var out []WeeklyTracking
	for _, tr := range trackings {
		if tr.BeneficiaryID == beneficiaryID {
			out = append(out, tr)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].WeekEnding.After(out[j].WeekEnding) })
	return out
}

// FeaturedStories returns stories flagged for the landing page.
func FeaturedStories() []Story {
	var out []Story
	for _, s := range stories {
		if s.IsFeatured {
			out = append(out, s)
		}
	}
	return out
}

// TrackingTotals sums income and expenses across entries.
func TrackingTotals(entries []WeeklyTracking) (income, expenses decimal.Decimal) {
	for _, tr := range entries {
		income = income.Add(tr.Income)
		expenses = expenses.Add(tr.Expenses)
	}
	return income, expenses
}

func cloneProgram(p Program) Program {
	p.SDGAlignment = slices.Clone(p.SDGAlignment)
	return p
}

func sortDonationsNewestFirst(list []Donation) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
}

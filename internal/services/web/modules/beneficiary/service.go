package beneficiary

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lceo-rwanda/portal/internal/platform/id"
	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/formvalue"
)

// trackingKey holds the weekly entries submitted from this browser.
const trackingKey = "weekly_trackings"

// trackingWindow is how recent the last entry must be for tracking to count
// as up to date.
const trackingWindow = 7 * 24 * time.Hour

type service struct {
	store module.KeyValue
	now   func() time.Time
}

func newService(store module.KeyValue, now func() time.Time) service {
	if now == nil {
		now = time.Now
	}
	return service{store: store, now: now}
}

// beneficiaryFor returns the record linked to the viewer, or the first
// beneficiary when the viewer has none.
func beneficiaryFor(viewer module.Viewer) mockdata.Beneficiary {
	if b, ok := mockdata.BeneficiaryByUserID(viewer.User.ID); ok {
		return b
	}
	all := mockdata.Beneficiaries()
	if len(all) == 0 {
		return mockdata.Beneficiary{}
	}
	return all[0]
}

type journeySummary struct {
	Beneficiary mockdata.Beneficiary
	ProgramName string
	Growth      decimal.Decimal
	TrackingDue bool
	Attendance  int
	ActiveGoals int
}

func (s service) journey(ctx context.Context, namespace string, b mockdata.Beneficiary, lang mockdata.Language) (journeySummary, error) {
	entries, err := s.trackings(ctx, namespace, b)
	if err != nil {
		return journeySummary{}, err
	}
	j := journeySummary{
		Beneficiary: b,
		Growth:      b.CurrentCapital.Sub(b.StartCapital),
		TrackingDue: s.trackingDue(entries),
		Attendance:  attendanceRate(entries),
	}
	if p, ok := mockdata.ProgramByID(b.ProgramID); ok {
		j.ProgramName = p.Name.In(lang)
	}
	for _, g := range mockdata.GoalsByBeneficiary(b.ID) {
		if g.Status == mockdata.GoalInProgress {
			j.ActiveGoals++
		}
	}
	return j, nil
}

func (s service) trackingDue(entries []mockdata.WeeklyTracking) bool {
	if len(entries) == 0 {
		return true
	}
	return s.now().Sub(entries[0].WeekEnding) > trackingWindow
}

// attendanceRate is the share of entries marked present or late.
func attendanceRate(entries []mockdata.WeeklyTracking) int {
	if len(entries) == 0 {
		return 0
	}
	attended := 0
	for _, e := range entries {
		if e.Attendance == mockdata.AttendancePresent || e.Attendance == mockdata.AttendanceLate {
			attended++
		}
	}
	return attended * 100 / len(entries)
}

type goalBoard struct {
	Active      []mockdata.Goal
	Achieved    []mockdata.Goal
	NotStarted  []mockdata.Goal
	Total       int
	SuccessRate int
}

func goalsFor(b mockdata.Beneficiary) goalBoard {
	goals := mockdata.GoalsByBeneficiary(b.ID)
	board := goalBoard{Total: len(goals)}
	for _, g := range goals {
		switch g.Status {
		case mockdata.GoalInProgress:
			board.Active = append(board.Active, g)
		case mockdata.GoalAchieved:
			board.Achieved = append(board.Achieved, g)
		case mockdata.GoalNotStarted:
			board.NotStarted = append(board.NotStarted, g)
		}
	}
	if board.Total > 0 {
		board.SuccessRate = len(board.Achieved) * 100 / board.Total
	}
	return board
}

// trackings merges browser-submitted entries with the seeded history,
// newest first.
func (s service) trackings(ctx context.Context, namespace string, b mockdata.Beneficiary) ([]mockdata.WeeklyTracking, error) {
	submitted, err := s.submitted(ctx, namespace)
	if err != nil {
		return nil, err
	}
	var entries []mockdata.WeeklyTracking
	for _, e := range submitted {
		if e.BeneficiaryID == b.ID {
			entries = append(entries, e)
		}
	}
	entries = append(entries, mockdata.TrackingsByBeneficiary(b.ID)...)
	slices.SortStableFunc(entries, func(x, y mockdata.WeeklyTracking) int {
		return cmp.Compare(y.WeekEnding.Unix(), x.WeekEnding.Unix())
	})
	return entries, nil
}

func (s service) submitted(ctx context.Context, namespace string) ([]mockdata.WeeklyTracking, error) {
	raw, ok, err := s.store.GetValue(ctx, namespace, trackingKey)
	if err != nil {
		return nil, fmt.Errorf("load weekly trackings: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var entries []mockdata.WeeklyTracking
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

// submitTracking stores entry for the browser and returns it with its id.
func (s service) submitTracking(ctx context.Context, namespace string, entry mockdata.WeeklyTracking) (mockdata.WeeklyTracking, error) {
	entryID, err := id.NewID()
	if err != nil {
		return mockdata.WeeklyTracking{}, err
	}
	entry.ID = entryID
	entries, err := s.submitted(ctx, namespace)
	if err != nil {
		return mockdata.WeeklyTracking{}, err
	}
	entries = append(entries, entry)
	payload, err := json.Marshal(entries)
	if err != nil {
		return mockdata.WeeklyTracking{}, fmt.Errorf("encode weekly trackings: %w", err)
	}
	if err := s.store.PutValue(ctx, namespace, trackingKey, payload); err != nil {
		return mockdata.WeeklyTracking{}, fmt.Errorf("save weekly trackings: %w", err)
	}
	return entry, nil
}

// trackingStats summarizes the history table.
type trackingStats struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	AverageIncome decimal.Decimal
	Submissions   int
	Attendance    int
}

func statsFor(entries []mockdata.WeeklyTracking) trackingStats {
	income, expenses := mockdata.TrackingTotals(entries)
	stats := trackingStats{
		TotalIncome:   income,
		TotalExpenses: expenses,
		AverageIncome: decimal.Zero,
		Submissions:   len(entries),
		Attendance:    attendanceRate(entries),
	}
	if len(entries) > 0 {
		stats.AverageIncome = income.Div(decimal.NewFromInt(int64(len(entries)))).Floor()
	}
	return stats
}

// trackingForm is the submitted weekly entry before validation.
type trackingForm struct {
	WeekEnding string
	Attendance string
	Income     string
	Expenses   string
	Savings    string
	TaskGiven  string
	TaskStatus string
	Challenges string
	Notes      string
}

const dateLayout = "2006-01-02"

// parseTracking validates f and returns the entry or the catalog key of the
// first failing rule.
func parseTracking(f trackingForm, beneficiaryID string, now time.Time) (mockdata.WeeklyTracking, string) {
	income, incomeOK := formvalue.NonNegativeDecimal(f.Income)
	expenses, expensesOK := formvalue.NonNegativeDecimal(f.Expenses)
	savings, savingsOK := formvalue.NonNegativeDecimal(f.Savings)
	if !incomeOK || !expensesOK || !savingsOK {
		return mockdata.WeeklyTracking{}, "error.tracking.amounts"
	}
	weekEnding := now.UTC().Truncate(24 * time.Hour)
	if f.WeekEnding != "" {
		parsed, err := time.Parse(dateLayout, f.WeekEnding)
		if err != nil {
			return mockdata.WeeklyTracking{}, "error.tracking.week"
		}
		weekEnding = parsed
	}
	attendance := mockdata.AttendancePresent
	switch a := mockdata.AttendanceStatus(f.Attendance); a {
	case mockdata.AttendancePresent, mockdata.AttendanceAbsent, mockdata.AttendanceLate:
		attendance = a
	}
	var taskStatus mockdata.TaskStatus
	switch t := mockdata.TaskStatus(f.TaskStatus); t {
	case mockdata.TaskCompleted, mockdata.TaskInProgress, mockdata.TaskNotDone:
		taskStatus = t
	}
	return mockdata.WeeklyTracking{
		BeneficiaryID:  beneficiaryID,
		WeekEnding:     weekEnding,
		Attendance:     attendance,
		TaskGiven:      f.TaskGiven,
		TaskStatus:     taskStatus,
		Income:         income,
		Expenses:       expenses,
		CurrentCapital: savings,
		Challenges:     f.Challenges,
		Notes:          f.Notes,
	}, ""
}

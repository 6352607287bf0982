package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lceo-rwanda/portal/internal/platform/id"
	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
	apperrors "github.com/lceo-rwanda/portal/internal/services/web/platform/errors"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/formvalue"
)

// Browser-local records layered over the seed data.
const (
	statusKey        = "admin_beneficiary_status"
	beneficiariesKey = "admin_added_beneficiaries"
	donorsKey        = "admin_added_donors"
	settingsKey      = "admin_settings"
)

type service struct {
	store  module.KeyValue
	now    func() time.Time
	logger *slog.Logger
}

func newService(store module.KeyValue, now func() time.Time, logger *slog.Logger) service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return service{store: store, now: now, logger: logger}
}

// loadValue decodes the stored value for key, returning fallback when the
// key is absent, null, or unreadable.
func loadValue[T any](ctx context.Context, s service, namespace, key string, fallback T) (T, error) {
	raw, ok, err := s.store.GetValue(ctx, namespace, key)
	if err != nil {
		return fallback, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return fallback, nil
	}
	var decoded *T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		s.logger.WarnContext(ctx, "discarding unreadable admin record", "key", key, "error", err)
		return fallback, nil
	}
	if decoded == nil {
		return fallback, nil
	}
	return *decoded, nil
}

func (s service) save(ctx context.Context, namespace, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.store.PutValue(ctx, namespace, key, payload); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// beneficiaries returns seeded and added records with status changes applied.
func (s service) beneficiaries(ctx context.Context, namespace string) ([]mockdata.Beneficiary, error) {
	added, err := loadValue[[]mockdata.Beneficiary](ctx, s, namespace, beneficiariesKey, nil)
	if err != nil {
		return nil, err
	}
	overrides, err := s.statusOverrides(ctx, namespace)
	if err != nil {
		return nil, err
	}
	all := append(mockdata.Beneficiaries(), added...)
	for i := range all {
		if status, ok := overrides[all[i].ID]; ok {
			all[i].Status = status
		}
	}
	return all, nil
}

func (s service) statusOverrides(ctx context.Context, namespace string) (map[string]mockdata.BeneficiaryStatus, error) {
	overrides, err := loadValue[map[string]mockdata.BeneficiaryStatus](ctx, s, namespace, statusKey, nil)
	if err != nil {
		return nil, err
	}
	if overrides == nil {
		overrides = map[string]mockdata.BeneficiaryStatus{}
	}
	return overrides, nil
}

func filterByStatus(list []mockdata.Beneficiary, status mockdata.BeneficiaryStatus) []mockdata.Beneficiary {
	if status == "" {
		return list
	}
	var out []mockdata.Beneficiary
	for _, b := range list {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out
}

// updateStatus records a status change for one beneficiary.
func (s service) updateStatus(ctx context.Context, namespace, beneficiaryID string, status mockdata.BeneficiaryStatus) (mockdata.Beneficiary, error) {
	all, err := s.beneficiaries(ctx, namespace)
	if err != nil {
		return mockdata.Beneficiary{}, err
	}
	i := slices.IndexFunc(all, func(b mockdata.Beneficiary) bool { return b.ID == beneficiaryID })
	if i < 0 {
		return mockdata.Beneficiary{}, apperrors.E(apperrors.KindNotFound, "beneficiary not found")
	}
	overrides, err := s.statusOverrides(ctx, namespace)
	if err != nil {
		return mockdata.Beneficiary{}, err
	}
	overrides[beneficiaryID] = status
	if err := s.save(ctx, namespace, statusKey, overrides); err != nil {
		return mockdata.Beneficiary{}, err
	}
	updated := all[i]
	updated.Status = status
	return updated, nil
}

// beneficiaryForm is the submitted add-beneficiary form.
type beneficiaryForm struct {
	FullName        string
	Email           string
	Phone           string
	ProgramID       string
	District        string
	BusinessType    string
	StartCapital    string
	Password        string
	ConfirmPassword string
}

// parseBeneficiary validates form and returns the new record, or the
// catalog key of the first failing rule.
func parseBeneficiary(form beneficiaryForm, now time.Time) (mockdata.Beneficiary, string) {
	switch {
	case formvalue.AnyBlank(form.FullName, form.Email, form.ProgramID, form.Password, form.ConfirmPassword):
		return mockdata.Beneficiary{}, "error.required_fields"
	case !formvalue.Email(form.Email):
		return mockdata.Beneficiary{}, "error.email_invalid"
	case len(form.Password) < formvalue.MinPasswordLength:
		return mockdata.Beneficiary{}, "toast.password.too_short"
	case form.Password != form.ConfirmPassword:
		return mockdata.Beneficiary{}, "toast.password.mismatch"
	}
	if _, ok := mockdata.ProgramByID(form.ProgramID); !ok {
		return mockdata.Beneficiary{}, "error.program_invalid"
	}
	capital, ok := formvalue.NonNegativeDecimal(form.StartCapital)
	if !ok {
		return mockdata.Beneficiary{}, "error.capital_invalid"
	}
	return mockdata.Beneficiary{
		FullName:       strings.TrimSpace(form.FullName),
		Location:       mockdata.Location{District: form.District},
		ProgramID:      form.ProgramID,
		Status:         mockdata.BeneficiaryActive,
		EnrollmentDate: now,
		StartCapital:   capital,
		CurrentCapital: capital,
		BusinessType:   form.BusinessType,
	}, ""
}

func (s service) addBeneficiary(ctx context.Context, namespace string, b mockdata.Beneficiary) (mockdata.Beneficiary, error) {
	recordID, err := id.NewID()
	if err != nil {
		return mockdata.Beneficiary{}, err
	}
	b.ID = recordID
	added, err := loadValue[[]mockdata.Beneficiary](ctx, s, namespace, beneficiariesKey, nil)
	if err != nil {
		return mockdata.Beneficiary{}, err
	}
	if err := s.save(ctx, namespace, beneficiariesKey, append(added, b)); err != nil {
		return mockdata.Beneficiary{}, err
	}
	return b, nil
}

// donors returns seeded and added donor records.
func (s service) donors(ctx context.Context, namespace string) ([]mockdata.Donor, error) {
	added, err := loadValue[[]mockdata.Donor](ctx, s, namespace, donorsKey, nil)
	if err != nil {
		return nil, err
	}
	return append(mockdata.Donors(), added...), nil
}

// donorForm is the submitted add-donor form.
type donorForm struct {
	FullName  string
	Email     string
	Country   string
	Currency  string
	Recurring bool
	Anonymous bool
}

var donorCurrencies = []mockdata.Currency{mockdata.CurrencyUSD, mockdata.CurrencyEUR, mockdata.CurrencyRWF}

func parseDonor(form donorForm, now time.Time) (mockdata.Donor, string) {
	switch {
	case formvalue.AnyBlank(form.FullName, form.Email, form.Country):
		return mockdata.Donor{}, "error.required_fields"
	case !formvalue.Email(form.Email):
		return mockdata.Donor{}, "error.email_invalid"
	}
	currency := mockdata.Currency(strings.ToUpper(form.Currency))
	if !slices.Contains(donorCurrencies, currency) {
		currency = mockdata.CurrencyUSD
	}
	return mockdata.Donor{
		FullName:          strings.TrimSpace(form.FullName),
		Country:           form.Country,
		PreferredCurrency: currency,
		TotalDonated:      decimal.Zero,
		IsRecurringDonor:  form.Recurring,
		Anonymous:         form.Anonymous,
		CreatedAt:         now,
	}, ""
}

func (s service) addDonor(ctx context.Context, namespace string, d mockdata.Donor) (mockdata.Donor, error) {
	recordID, err := id.NewID()
	if err != nil {
		return mockdata.Donor{}, err
	}
	d.ID = recordID
	added, err := loadValue[[]mockdata.Donor](ctx, s, namespace, donorsKey, nil)
	if err != nil {
		return mockdata.Donor{}, err
	}
	if err := s.save(ctx, namespace, donorsKey, append(added, d)); err != nil {
		return mockdata.Donor{}, err
	}
	return d, nil
}

// dashboard merges the seed aggregates with this browser's changes.
func (s service) dashboard(ctx context.Context, namespace string) (mockdata.DashboardStats, error) {
	stats := mockdata.Stats()
	all, err := s.beneficiaries(ctx, namespace)
	if err != nil {
		return stats, err
	}
	donors, err := s.donors(ctx, namespace)
	if err != nil {
		return stats, err
	}
	stats.TotalBeneficiaries = len(all)
	stats.ActiveBeneficiaries = len(filterByStatus(all, mockdata.BeneficiaryActive))
	stats.GraduatedBeneficiaries = len(filterByStatus(all, mockdata.BeneficiaryGraduated))
	stats.TotalDonors = len(donors)
	return stats, nil
}

// financials summarizes budgets and giving across programs.
type financials struct {
	TotalRaised decimal.Decimal
	Budget      decimal.Decimal
	Allocated   decimal.Decimal
	Utilized    decimal.Decimal
	Programs    []mockdata.Program
	ByType      []typeTotal
}

type typeTotal struct {
	Type  mockdata.DonationType
	Total decimal.Decimal
	Count int
}

var donationTypes = []mockdata.DonationType{
	mockdata.DonationOneTime,
	mockdata.DonationMonthly,
	mockdata.DonationQuarterly,
	mockdata.DonationYearly,
}

func financialSummary() financials {
	f := financials{
		TotalRaised: decimal.Zero,
		Budget:      decimal.Zero,
		Allocated:   decimal.Zero,
		Utilized:    decimal.Zero,
		Programs:    mockdata.Programs(),
	}
	for _, p := range f.Programs {
		f.Budget = f.Budget.Add(p.Budget)
		f.Allocated = f.Allocated.Add(p.FundsAllocated)
		f.Utilized = f.Utilized.Add(p.FundsUtilized)
	}
	totals := make(map[mockdata.DonationType]*typeTotal)
	for _, t := range donationTypes {
		f.ByType = append(f.ByType, typeTotal{Type: t, Total: decimal.Zero})
	}
	for i := range f.ByType {
		totals[f.ByType[i].Type] = &f.ByType[i]
	}
	for _, d := range mockdata.Donations() {
		if d.PaymentStatus != mockdata.PaymentCompleted {
			continue
		}
		f.TotalRaised = f.TotalRaised.Add(d.Amount)
		if t, ok := totals[d.DonationType]; ok {
			t.Total = t.Total.Add(d.Amount)
			t.Count++
		}
	}
	return f
}

// utilization is utilized over allocated funds as a whole percent.
func utilization(p mockdata.Program) int64 {
	if p.FundsAllocated.IsZero() {
		return 0
	}
	return p.FundsUtilized.Mul(decimal.NewFromInt(100)).Div(p.FundsAllocated).Floor().IntPart()
}

// settings are the organization preferences editable by staff.
type settings struct {
	OrganizationName   string            `json:"organizationName"`
	ContactEmail       string            `json:"contactEmail"`
	DefaultLanguage    mockdata.Language `json:"defaultLanguage"`
	EmailNotifications bool              `json:"emailNotifications"`
	TrackingReminders  bool              `json:"trackingReminders"`
}

func defaultSettings() settings {
	return settings{
		OrganizationName:   "Life-Changing Endeavor Organization",
		ContactEmail:       "info@lceo.org",
		DefaultLanguage:    mockdata.LanguageEnglish,
		EmailNotifications: true,
		TrackingReminders:  true,
	}
}

func (s service) settings(ctx context.Context, namespace string) (settings, error) {
	current, err := loadValue(ctx, s, namespace, settingsKey, defaultSettings())
	if err != nil {
		return settings{}, err
	}
	return current, nil
}

// validateSettings returns the catalog key of the first failing rule.
func validateSettings(next settings) string {
	switch {
	case formvalue.AnyBlank(next.OrganizationName, next.ContactEmail):
		return "error.required_fields"
	case !formvalue.Email(next.ContactEmail):
		return "error.email_invalid"
	}
	return ""
}

func (s service) saveSettings(ctx context.Context, namespace string, next settings) error {
	if next.DefaultLanguage != mockdata.LanguageKinyarwanda {
		next.DefaultLanguage = mockdata.LanguageEnglish
	}
	return s.save(ctx, namespace, settingsKey, next)
}

// generatedReport is one downloadable staff report.
type generatedReport struct {
	Title       string
	Description string
	Period      string
}

var staffReports = []generatedReport{
	{Title: "Beneficiary Progress", Description: "Capital growth, attendance and goal completion per beneficiary.", Period: "Monthly"},
	{Title: "Donor Contributions", Description: "Gifts by donor, program and recurrence.", Period: "Quarterly"},
	{Title: "Program Budget Utilization", Description: "Budget, allocated and utilized funds per program.", Period: "Quarterly"},
	{Title: "Annual Impact", Description: "Outcomes across education, entrepreneurship and health.", Period: "Yearly"},
}

package admin

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"

	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	webi18n "github.com/lceo-rwanda/portal/internal/services/web/i18n"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
	ui "github.com/lceo-rwanda/portal/internal/services/web/templates"
)

const displayDate = "Jan 2, 2006"

var statusLabels = map[mockdata.BeneficiaryStatus]string{
	mockdata.BeneficiaryActive:    "Active",
	mockdata.BeneficiaryGraduated: "Graduated",
	mockdata.BeneficiaryInactive:  "Inactive",
}

var statusOptions = []ui.Option{
	{Value: string(mockdata.BeneficiaryActive), Label: "Active"},
	{Value: string(mockdata.BeneficiaryGraduated), Label: "Graduated"},
	{Value: string(mockdata.BeneficiaryInactive), Label: "Inactive"},
}

var categoryLabels = map[mockdata.ProgramCategory]string{
	mockdata.CategoryEducation:        "Education",
	mockdata.CategoryEntrepreneurship: "Entrepreneurship",
	mockdata.CategoryHealth:           "Health",
	mockdata.CategoryCrossCutting:     "Cross-cutting",
}

var donationTypeLabels = map[mockdata.DonationType]string{
	mockdata.DonationOneTime:   "One-time",
	mockdata.DonationMonthly:   "Monthly",
	mockdata.DonationQuarterly: "Quarterly",
	mockdata.DonationYearly:    "Yearly",
}

func usd(loc *message.Printer, amount decimal.Decimal) string {
	return webi18n.Money(loc, amount, string(mockdata.CurrencyUSD))
}

func rwf(loc *message.Printer, amount decimal.Decimal) string {
	return webi18n.Money(loc, amount, string(mockdata.CurrencyRWF))
}

func programName(programID string, lang mockdata.Language) string {
	if p, ok := mockdata.ProgramByID(programID); ok {
		return p.Name.In(lang)
	}
	return programID
}

func cell(s string) templ.Component { return ui.El("td", nil, ui.Text(s)) }

func head(labels ...string) templ.Component {
	return ui.El("thead", nil, ui.El("tr", nil, ui.Each(labels, func(l string) templ.Component {
		return ui.El("th", nil, ui.Text(l))
	})))
}

func pageHeader(title, subtitle string, actions ...templ.Component) templ.Component {
	return ui.Div("page-header",
		ui.H1(title),
		ui.P(subtitle),
		ui.Div("page-actions", actions...),
	)
}

func dashboardView(stats mockdata.DashboardStats, loc *message.Printer, lang mockdata.Language) templ.Component {
	return ui.Section("portal-page",
		pageHeader("Admin Dashboard", "Overview of programs, beneficiaries and giving"),
		ui.Div("stat-grid",
			ui.Stat("Total Beneficiaries", webi18n.Count(loc, int64(stats.TotalBeneficiaries))),
			ui.Stat("Active Beneficiaries", webi18n.Count(loc, int64(stats.ActiveBeneficiaries))),
			ui.Stat("Graduated", webi18n.Count(loc, int64(stats.GraduatedBeneficiaries))),
			ui.Stat("Total Donors", webi18n.Count(loc, int64(stats.TotalDonors))),
			ui.Stat("Total Raised", usd(loc, stats.TotalRaised)),
			ui.Stat("Active Programs", webi18n.Count(loc, int64(stats.ActivePrograms))),
		),
		ui.Div("card",
			ui.H2("Program Distribution"),
			ui.El("ul", ui.A("class", "distribution"), ui.Each(stats.ProgramDistribution, func(s mockdata.ProgramShare) templ.Component {
				return ui.El("li", ui.A("data-category", string(s.Category)),
					ui.Span("label", categoryLabels[s.Category]),
					ui.Span("value", webi18n.Count(loc, int64(s.Count))),
				)
			})),
		),
		ui.Div("card",
			ui.H2("Recent Donations"),
			ui.El("table", ui.A("class", "table"),
				head("Date", "Program", "Amount", "Type"),
				ui.El("tbody", nil, ui.Each(stats.RecentDonations, func(d mockdata.Donation) templ.Component {
					return ui.El("tr", ui.A("data-donation", d.ID),
						cell(d.CreatedAt.Format(displayDate)),
						cell(programName(d.ProgramID, lang)),
						cell(webi18n.Money(loc, d.Amount, string(d.Currency))),
						cell(donationTypeLabels[d.DonationType]),
					)
				})),
			),
		),
		ui.Div("quick-actions",
			ui.Link(routepath.AdminBeneficiariesAdd, "button", "Add Beneficiary"),
			ui.Link(routepath.AdminDonorsAdd, "button button-secondary", "Add Donor"),
			ui.Link(routepath.AdminReports, "button button-secondary", "Generate Report"),
		),
	)
}

func exportURL(status mockdata.BeneficiaryStatus) string {
	if status == "" {
		return routepath.AdminBeneficiariesExport
	}
	return routepath.AdminBeneficiariesExport + "?status=" + string(status)
}

func beneficiariesView(list []mockdata.Beneficiary, status mockdata.BeneficiaryStatus, loc *message.Printer, lang mockdata.Language) templ.Component {
	filters := append([]ui.Option{{Value: "", Label: "All statuses"}}, statusOptions...)
	return ui.Section("portal-page",
		pageHeader("Beneficiaries", strconv.Itoa(len(list))+" records",
			ui.Link(routepath.AdminBeneficiariesAdd, "button", "Add Beneficiary"),
			ui.Link(exportURL(status), "button button-secondary", "Export CSV"),
		),
		ui.El("form", ui.A("method", "get", "action", routepath.AdminBeneficiaries, "class", "filters"),
			ui.Select("Status", "status", filters, string(status)),
			ui.Submit("Filter", "", ""),
		),
		ui.If(len(list) == 0, ui.P("No beneficiaries match this filter.")),
		ui.If(len(list) > 0, ui.El("table", ui.A("class", "table beneficiaries"),
			head("Name", "Program", "District", "Capital", "Status", "Update"),
			ui.El("tbody", nil, ui.Each(list, func(b mockdata.Beneficiary) templ.Component {
				return ui.El("tr", ui.A("data-beneficiary", b.ID),
					cell(b.FullName),
					cell(programName(b.ProgramID, lang)),
					cell(b.Location.District),
					cell(rwf(loc, b.CurrentCapital)),
					ui.El("td", nil, ui.El("span", ui.A("class", "badge", "data-status", string(b.Status)), ui.Text(statusLabels[b.Status]))),
					ui.El("td", nil, ui.Form(routepath.AdminBeneficiaryStatus(b.ID),
						ui.Hidden("filter", string(status)),
						ui.Select("New status", "status", statusOptions, string(b.Status)),
						ui.Submit("Update", "", ""),
					)),
				)
			})),
		)),
	)
}

func programOptions(lang mockdata.Language) []ui.Option {
	var opts []ui.Option
	for _, p := range mockdata.Programs() {
		opts = append(opts, ui.Option{Value: p.ID, Label: p.Name.In(lang)})
	}
	return opts
}

func addBeneficiaryView(form beneficiaryForm, errMessage string, lang mockdata.Language) templ.Component {
	return ui.Section("portal-page",
		pageHeader("Add Beneficiary", "Enroll a new participant in a program"),
		ui.Div("card",
			ui.Form(routepath.AdminBeneficiariesAdd,
				ui.FieldError(errMessage),
				ui.Field("Full name", "fullName", "text", form.FullName, true),
				ui.Field("Email", "email", "email", form.Email, true),
				ui.Field("Phone", "phone", "tel", form.Phone, false),
				ui.Select("Program", "programId", programOptions(lang), form.ProgramID),
				ui.Field("District", "district", "text", form.District, false),
				ui.Field("Business type", "businessType", "text", form.BusinessType, false),
				ui.Field("Start capital (RWF)", "startCapital", "number", form.StartCapital, false),
				ui.Field("Password", "password", "password", "", true),
				ui.Field("Confirm password", "confirmPassword", "password", "", true),
				ui.Submit("Add Beneficiary", "", ""),
			),
		),
	)
}

func programsView(programs []mockdata.Program, loc *message.Printer, lang mockdata.Language) templ.Component {
	return ui.Section("portal-page",
		pageHeader("Programs", "Budgets and enrollment per program"),
		ui.Div("program-grid", ui.Each(programs, func(p mockdata.Program) templ.Component {
			return ui.El("article", ui.A("class", "card program", "data-program", p.ID, "data-status", string(p.Status)),
				ui.H2(p.Name.In(lang)),
				ui.Span("badge", categoryLabels[p.Category]),
				ui.P(p.Description.In(lang)),
				ui.El("dl", nil,
					ui.El("dt", nil, ui.Text("Budget")), ui.El("dd", nil, ui.Text(usd(loc, p.Budget))),
					ui.El("dt", nil, ui.Text("Utilized")), ui.El("dd", nil, ui.Text(usd(loc, p.FundsUtilized))),
					ui.El("dt", nil, ui.Text("Beneficiaries")), ui.El("dd", nil, ui.Text(webi18n.Count(loc, int64(p.BeneficiaryCount)))),
				),
				ui.ProgressBar(p.FundedPercent()),
				ui.Span("muted", strconv.FormatInt(p.FundedPercent(), 10)+"% funded"),
			)
		})),
	)
}

func donorsView(donors []mockdata.Donor, loc *message.Printer) templ.Component {
	return ui.Section("portal-page",
		pageHeader("Donors", strconv.Itoa(len(donors))+" supporters",
			ui.Link(routepath.AdminDonorsAdd, "button", "Add Donor"),
		),
		ui.El("table", ui.A("class", "table donors"),
			head("Name", "Country", "Total Donated", "Recurring", "Since"),
			ui.El("tbody", nil, ui.Each(donors, func(d mockdata.Donor) templ.Component {
				recurring := "No"
				if d.IsRecurringDonor {
					recurring = "Yes"
				}
				name := d.FullName
				if d.Anonymous {
					name += " (anonymous)"
				}
				return ui.El("tr", ui.A("data-donor", d.ID),
					cell(name),
					cell(d.Country),
					cell(webi18n.Money(loc, d.TotalDonated, string(d.PreferredCurrency))),
					cell(recurring),
					cell(strconv.Itoa(d.CreatedAt.Year())),
				)
			})),
		),
	)
}

var currencyOptions = []ui.Option{
	{Value: string(mockdata.CurrencyUSD), Label: "USD"},
	{Value: string(mockdata.CurrencyEUR), Label: "EUR"},
	{Value: string(mockdata.CurrencyRWF), Label: "RWF"},
}

func addDonorView(form donorForm, errMessage string) templ.Component {
	return ui.Section("portal-page",
		pageHeader("Add Donor", "Record a new supporter"),
		ui.Div("card",
			ui.Form(routepath.AdminDonorsAdd,
				ui.FieldError(errMessage),
				ui.Field("Full name", "fullName", "text", form.FullName, true),
				ui.Field("Email", "email", "email", form.Email, true),
				ui.Field("Country", "country", "text", form.Country, true),
				ui.Select("Preferred currency", "currency", currencyOptions, form.Currency),
				ui.Checkbox("Recurring donor", "recurring", form.Recurring),
				ui.Checkbox("Give anonymously", "anonymous", form.Anonymous),
				ui.Submit("Add Donor", "", ""),
			),
		),
	)
}

func financialView(f financials, loc *message.Printer, lang mockdata.Language) templ.Component {
	return ui.Section("portal-page",
		pageHeader("Financial Overview", "Giving and program spending"),
		ui.Div("stat-grid",
			ui.Stat("Total Raised", usd(loc, f.TotalRaised)),
			ui.Stat("Total Budget", usd(loc, f.Budget)),
			ui.Stat("Allocated", usd(loc, f.Allocated)),
			ui.Stat("Utilized", usd(loc, f.Utilized)),
		),
		ui.Div("card",
			ui.H2("Program Spending"),
			ui.El("table", ui.A("class", "table"),
				head("Program", "Budget", "Allocated", "Utilized", "Utilization"),
				ui.El("tbody", nil, ui.Each(f.Programs, func(p mockdata.Program) templ.Component {
					return ui.El("tr", ui.A("data-program", p.ID),
						cell(p.Name.In(lang)),
						cell(usd(loc, p.Budget)),
						cell(usd(loc, p.FundsAllocated)),
						cell(usd(loc, p.FundsUtilized)),
						cell(strconv.FormatInt(utilization(p), 10)+"%"),
					)
				})),
			),
		),
		ui.Div("card",
			ui.H2("Donations by Type"),
			ui.El("table", ui.A("class", "table"),
				head("Type", "Gifts", "Total"),
				ui.El("tbody", nil, ui.Each(f.ByType, func(t typeTotal) templ.Component {
					return ui.El("tr", ui.A("data-type", string(t.Type)),
						cell(donationTypeLabels[t.Type]),
						cell(strconv.Itoa(t.Count)),
						cell(usd(loc, t.Total)),
					)
				})),
			),
		),
	)
}

func reportsView() templ.Component {
	return ui.Section("portal-page",
		pageHeader("Reports", "Staff reports built from portal data",
			ui.Link(routepath.AdminBeneficiariesExport, "button button-secondary", "Export Beneficiaries CSV"),
		),
		ui.Div("report-grid", ui.Each(staffReports, func(rp generatedReport) templ.Component {
			return ui.El("article", ui.A("class", "card report"),
				ui.H2(rp.Title),
				ui.Span("badge", rp.Period),
				ui.P(rp.Description),
			)
		})),
	)
}

var languageOptions = []ui.Option{
	{Value: string(mockdata.LanguageEnglish), Label: "English"},
	{Value: string(mockdata.LanguageKinyarwanda), Label: "Kinyarwanda"},
}

func settingsView(current settings) templ.Component {
	return ui.Section("portal-page",
		pageHeader("Settings", "Organization preferences"),
		ui.Div("card",
			ui.Form(routepath.AdminSettings,
				ui.Field("Organization name", "organizationName", "text", current.OrganizationName, true),
				ui.Field("Contact email", "contactEmail", "email", current.ContactEmail, true),
				ui.Select("Default language", "defaultLanguage", languageOptions, string(current.DefaultLanguage)),
				ui.Checkbox("Email notifications", "emailNotifications", current.EmailNotifications),
				ui.Checkbox("Weekly tracking reminders", "trackingReminders", current.TrackingReminders),
				ui.Submit("Save Settings", "", ""),
			),
		),
	)
}

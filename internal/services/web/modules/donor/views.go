package donor

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

func usd(loc *message.Printer, amount decimal.Decimal) string {
	return webi18n.Money(loc, amount, string(mockdata.CurrencyUSD))
}

var donationTypeLabels = map[mockdata.DonationType]string{
	mockdata.DonationOneTime:   "One-time",
	mockdata.DonationMonthly:   "Monthly",
	mockdata.DonationQuarterly: "Quarterly",
	mockdata.DonationYearly:    "Yearly",
}

var paymentStatusLabels = map[mockdata.PaymentStatus]string{
	mockdata.PaymentPending:   "Pending",
	mockdata.PaymentCompleted: "Completed",
	mockdata.PaymentFailed:    "Failed",
	mockdata.PaymentRefunded:  "Refunded",
}

func programName(id string, lang mockdata.Language) string {
	if p, ok := mockdata.ProgramByID(id); ok {
		return p.Name.In(lang)
	}
	return "General Fund"
}

func overviewView(o overview, loc *message.Printer, lang mockdata.Language) templ.Component {
	return ui.Section("portal-page",
		ui.Div("page-header",
			ui.H1("Donor Portal"),
			ui.P("Thank you for your support, "+o.Donor.FullName+"!"),
			ui.Link(routepath.Donate, "button", "Make a Donation"),
		),
		ui.Div("stat-grid",
			ui.Div("stat stat-primary",
				ui.Span("stat-value", usd(loc, o.Donor.TotalDonated)),
				ui.Span("stat-label", "Total Contributions"),
				ui.Span("stat-note", "Since "+strconv.Itoa(o.Donor.CreatedAt.Year())),
			),
			ui.Div("stat",
				ui.Span("stat-value", strconv.Itoa(o.ProgramsFed)),
				ui.Span("stat-label", "Programs Supported"),
			),
			nextGiftStat(o.Next, loc),
		),
		ui.Div("card",
			ui.H2("Your Impact"),
			ui.El("ul", ui.A("class", "impact-list"),
				ui.El("li", nil, ui.Text(webi18n.T(loc, "donate.impact.school_supplies", o.Impact.SchoolSupplies))),
				ui.El("li", nil, ui.Text(webi18n.T(loc, "donate.impact.mentorship", o.Impact.MonthsOfMentorship))),
				ui.El("li", nil, ui.Text(webi18n.T(loc, "donate.impact.seed_capital", o.Impact.BusinessSeedCapital))),
			),
		),
		ui.Div("card",
			ui.H2("Recent Donations"),
			donationTable(o.Recent, loc, lang),
			ui.Link(routepath.DonorDonations, "auth-link", "View all donations"),
		),
		ui.Div("card",
			ui.H2("Impact Reports"),
			reportList(),
			ui.Link(routepath.DonorReports, "auth-link", "View all reports"),
		),
	)
}

func nextGiftStat(next *scheduledGift, loc *message.Printer) templ.Component {
	if next == nil {
		return ui.Stat("Next Scheduled Donation", "None scheduled")
	}
	return ui.Div("stat",
		ui.Span("stat-value", next.Due.Format(displayDate)),
		ui.Span("stat-label", "Next Scheduled Donation"),
		ui.Span("stat-note", "Recurring "+donationTypeLabels[next.Type]+" ("+usd(loc, next.Amount)+")"),
	)
}

func donationTable(history []mockdata.Donation, loc *message.Printer, lang mockdata.Language) templ.Component {
	if len(history) == 0 {
		return ui.P("No donations yet.")
	}
	cell := func(s string) templ.Component { return ui.El("td", nil, ui.Text(s)) }
	head := func(s string) templ.Component { return ui.El("th", nil, ui.Text(s)) }
	return ui.El("table", ui.A("class", "table donation-history"),
		ui.El("thead", nil, ui.El("tr", nil, head("Date"), head("Program"), head("Amount"), head("Type"), head("Status"))),
		ui.El("tbody", nil, ui.Each(history, func(d mockdata.Donation) templ.Component {
			return ui.El("tr", ui.A("data-donation", d.ID),
				cell(d.CreatedAt.Format(displayDate)),
				cell(programName(d.ProgramID, lang)),
				cell(webi18n.Money(loc, d.Amount, string(d.Currency))),
				cell(donationTypeLabels[d.DonationType]),
				cell(paymentStatusLabels[d.PaymentStatus]),
			)
		})),
	)
}

func donationsView(d mockdata.Donor, history []mockdata.Donation, loc *message.Printer, lang mockdata.Language) templ.Component {
	return ui.Section("portal-page",
		ui.H1("My Donations"),
		ui.P("A complete record of your gifts to LCEO"),
		ui.Div("stat-grid",
			ui.Stat("Total Contributions", usd(loc, d.TotalDonated)),
			ui.Stat("Donations", strconv.Itoa(len(history))),
			ui.Stat("Last Donation", d.LastDonationDate.Format(displayDate)),
		),
		ui.Div("card", donationTable(history, loc, lang)),
	)
}

func reportList() templ.Component {
	return ui.El("ul", ui.A("class", "report-list"), ui.Each(reports, func(rp report) templ.Component {
		return ui.El("li", nil,
			ui.H3(rp.Title),
			ui.Span("muted", rp.Released),
			ui.P(rp.Summary),
		)
	}))
}

func reportsView(allocations []allocation, loc *message.Printer, lang mockdata.Language) templ.Component {
	return ui.Section("portal-page",
		ui.H1("Impact Reports"),
		ui.P("See how your contributions are put to work"),
		ui.Div("card",
			ui.H2("Where your gifts went"),
			ui.Each(allocations, func(a allocation) templ.Component {
				return ui.El("div", ui.A("class", "allocation", "data-program", a.ProgramID),
					ui.H3(programName(a.ProgramID, lang)),
					ui.P(usd(loc, a.Total)+" across "+strconv.Itoa(a.Gifts)+" gifts"),
				)
			}),
		),
		ui.Div("card",
			ui.H2("Published Reports"),
			reportList(),
		),
	)
}

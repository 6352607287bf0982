package donate

import (
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/lceo-rwanda/portal/internal/portal/donation"
	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	webi18n "github.com/lceo-rwanda/portal/internal/services/web/i18n"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
	ui "github.com/lceo-rwanda/portal/internal/services/web/templates"
)

var stepTitles = map[donation.State]string{
	donation.StateProgramSelection: "Choose a program",
	donation.StateTypeSelection:    "Donation type",
	donation.StateAmountAndDetails: "Amount and details",
	donation.StatePaymentInfo:      "Payment information",
	donation.StateConfirmation:     "Confirmation",
}

func wizardView(wiz *donation.Wizard, loc *message.Printer, lang mockdata.Language) templ.Component {
	state := wiz.State()
	return ui.Section("donate-wizard",
		ui.H1("Make a Donation"),
		ui.El("p", ui.A("class", "wizard-step", "data-step", strconv.Itoa(wiz.Step())),
			ui.Text(webi18n.T(loc, "donate.step_of", wiz.Step(), donation.TotalSteps)),
			ui.Text(" · "+stepTitles[state]),
		),
		ui.ProgressBar(int64(wiz.Progress())),
		stepView(wiz, loc, lang),
	)
}

func stepView(wiz *donation.Wizard, loc *message.Printer, lang mockdata.Language) templ.Component {
	d := wiz.Data()
	if wiz.Completed() {
		return confirmationView(d, loc, lang)
	}
	var fields templ.Component
	switch wiz.State() {
	case donation.StateProgramSelection:
		fields = programStep(d, lang)
	case donation.StateTypeSelection:
		fields = typeStep(d)
	case donation.StateAmountAndDetails:
		fields = amountStep(d, loc)
	case donation.StatePaymentInfo:
		fields = paymentStep(d, loc, lang)
	}
	nextLabel := "Continue"
	if wiz.State() == donation.StatePaymentInfo {
		nextLabel = "Complete Donation"
	}
	return ui.Form(routepath.Donate,
		fields,
		ui.Div("wizard-actions",
			ui.If(wiz.CanBack(), ui.Submit("Back", "action", actionBack)),
			ui.Submit(nextLabel, "action", actionNext),
		),
	)
}

func programStep(d donation.Data, lang mockdata.Language) templ.Component {
	choices := programChoices(lang)
	options := make([]ui.Option, 0, len(choices))
	for _, c := range choices {
		options = append(options, ui.Option{Value: c.ID, Label: c.Name})
	}
	return ui.Group(
		ui.H2("Where should your gift go?"),
		ui.Radios("program", options, d.Program),
	)
}

func typeStep(d donation.Data) templ.Component {
	return ui.Group(
		ui.H2("How would you like to give?"),
		ui.Radios("type", []ui.Option{
			{Value: string(donation.TypeRecurring), Label: "Recurring donation"},
			{Value: string(donation.TypeOneTime), Label: "One-time donation"},
		}, string(d.Type)),
		ui.Select("Frequency", "frequency", []ui.Option{
			{Value: string(donation.FrequencyMonthly), Label: "Monthly"},
			{Value: string(donation.FrequencyQuarterly), Label: "Quarterly"},
			{Value: string(donation.FrequencyYearly), Label: "Yearly"},
		}, string(d.Frequency)),
	)
}

func amountStep(d donation.Data, loc *message.Printer) templ.Component {
	options := make([]ui.Option, 0, len(donation.SuggestedAmounts))
	for _, amount := range donation.SuggestedAmounts {
		options = append(options, ui.Option{Value: strconv.FormatInt(amount, 10), Label: "$" + strconv.FormatInt(amount, 10)})
	}
	return ui.Group(
		ui.H2("Choose an amount"),
		ui.Radios("amount", options, d.Amount),
		ui.Field("Custom amount (USD)", "customAmount", "number", d.CustomAmount, false),
		impactPreview(d, loc),
		ui.Checkbox("Make my donation anonymous", "anonymous", d.Anonymous),
		ui.TextArea("Message (optional)", "message", d.Message, false),
	)
}

func impactPreview(d donation.Data, loc *message.Printer) templ.Component {
	amount := d.SelectedAmount()
	if !amount.IsPositive() {
		return nil
	}
	return ui.Div("impact-preview",
		ui.H3("Your impact"),
		impactList(donation.CalculateImpact(amount), loc),
	)
}

func impactList(impact donation.Impact, loc *message.Printer) templ.Component {
	return ui.El("ul", ui.A("class", "impact-list"),
		ui.El("li", nil, ui.Text(webi18n.T(loc, "donate.impact.school_supplies", impact.SchoolSupplies))),
		ui.El("li", nil, ui.Text(webi18n.T(loc, "donate.impact.mentorship", impact.MonthsOfMentorship))),
		ui.El("li", nil, ui.Text(webi18n.T(loc, "donate.impact.seed_capital", impact.BusinessSeedCapital))),
	)
}

func paymentStep(d donation.Data, loc *message.Printer, lang mockdata.Language) templ.Component {
	return ui.Group(
		ui.H2("Payment information"),
		ui.Radios("paymentMethod", []ui.Option{
			{Value: string(donation.MethodCard), Label: "Credit or debit card"},
			{Value: string(donation.MethodMobile), Label: "Mobile money"},
			{Value: string(donation.MethodBank), Label: "Bank transfer"},
		}, string(d.PaymentMethod)),
		ui.Field("Full name", "name", "text", d.Name, true),
		ui.Field("Email address", "email", "email", d.Email, true),
		summary(d, loc, lang),
	)
}

func cadenceLabel(d donation.Data) string {
	if !d.Recurring() {
		return "One-time"
	}
	switch d.Frequency {
	case donation.FrequencyQuarterly:
		return "Quarterly"
	case donation.FrequencyYearly:
		return "Yearly"
	default:
		return "Monthly"
	}
}

func summary(d donation.Data, loc *message.Printer, lang mockdata.Language) templ.Component {
	row := func(label, value string) templ.Component {
		return ui.Group(ui.El("dt", nil, ui.Text(label)), ui.El("dd", nil, ui.Text(value)))
	}
	return ui.El("dl", ui.A("class", "donation-summary"),
		row("Program", programName(d.Program, lang)),
		row("Frequency", cadenceLabel(d)),
		row("Amount", webi18n.Money(loc, d.SelectedAmount(), string(mockdata.CurrencyUSD))),
	)
}

func confirmationView(d donation.Data, loc *message.Printer, lang mockdata.Language) templ.Component {
	return ui.Div("donation-confirmation",
		ui.H2(webi18n.T(loc, "donate.thank_you", d.Name)),
		ui.P("Your donation has been received. A receipt has been sent to "+d.Email+"."),
		summary(d, loc, lang),
		ui.H3("Your impact"),
		impactList(donation.CalculateImpact(d.SelectedAmount()), loc),
		ui.Div("wizard-actions",
			ui.Link(routepath.Root, "button secondary", "Back to home"),
			ui.Form(routepath.Donate, ui.Submit("Make another donation", "action", actionRestart)),
		),
	)
}

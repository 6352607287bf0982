package public

import (
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	webi18n "github.com/lceo-rwanda/portal/internal/services/web/i18n"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
	ui "github.com/lceo-rwanda/portal/internal/services/web/templates"
)

func cards(items []card) templ.Component {
	return ui.Div("cards", ui.Each(items, func(c card) templ.Component {
		return ui.Div("card", ui.H3(c.Title), ui.P(c.Description))
	}))
}

func pageHero(title, subtitle string) templ.Component {
	return ui.Section("hero", ui.H1(title), ui.P(subtitle))
}

func programCards(programs []programCard) templ.Component {
	return ui.Div("cards", ui.Each(programs, func(p programCard) templ.Component {
		return ui.El("article", ui.A("class", "card program-card", "data-program", p.ID),
			ui.H3(p.Name),
			ui.P(p.Description),
			ui.ProgressBar(p.FundedPercent),
			ui.El("p", ui.A("class", "muted"), ui.Textf("%d%% funded · %d beneficiaries", p.FundedPercent, p.Beneficiaries)),
			ui.Link(routepath.Program(p.ID), "button secondary", "Learn more"),
		)
	}))
}

func storyCards(stories []mockdata.Story, lang mockdata.Language) templ.Component {
	return ui.Div("cards", ui.Each(stories, func(s mockdata.Story) templ.Component {
		return ui.El("article", ui.A("class", "card story-card"),
			ui.H3(s.Title.In(lang)),
			ui.P(s.Content.In(lang)),
			ui.El("p", ui.A("class", "muted"), ui.Text(s.AuthorName)),
		)
	}))
}

func homeView(programs []programCard, stories []mockdata.Story, lang mockdata.Language) templ.Component {
	return ui.Group(
		ui.Section("hero",
			ui.H1("Empowering young women in Rwanda"),
			ui.P("Education, entrepreneurship and health programs that help girls and young women build independent futures."),
			ui.Div("hero-actions",
				ui.Link(routepath.Donate, "button", "Donate now"),
				ui.Link(routepath.GetInvolved, "button secondary", "Get involved"),
			),
		),
		ui.Section("impact-figures",
			ui.H2("Our Impact in Numbers"),
			ui.Div("stats", ui.Each(headlineFigures, func(f headlineFigure) templ.Component {
				return ui.Stat(f.Label, f.Value)
			})),
		),
		ui.Section("programs", ui.H2("Our Programs"), programCards(programs)),
		ui.Section("stories", ui.H2("Stories of Change"), storyCards(stories, lang)),
		ui.Section("cta",
			ui.H2("Join us in creating lasting change"),
			ui.Link(routepath.Donate, "button", "Support a young woman today"),
		),
	)
}

func aboutView() templ.Component {
	return ui.Group(
		pageHero("About LCEO", "Life-Changing Endeavor Organization works with vulnerable girls and young women in Rwanda."),
		ui.Section("values", ui.H2("What Drives Us"), cards(coreValues)),
		ui.Section("milestones", ui.H2("Milestones and Achievements"), cards(milestones)),
	)
}

func howWeWorkView() templ.Component {
	return ui.Group(
		pageHero("How We Work", "A holistic model that combines protection, education and economic empowerment."),
		ui.Section("approaches", ui.H2("Focus Areas"), cards(approaches)),
		ui.Section("graduation", ui.H2("The Graduation Approach"), cards(graduationSteps)),
	)
}

func strategicDirectionView() templ.Component {
	return ui.Group(
		pageHero("Strategic Direction", "Lasting transformation starts with mindset, identity and mental resilience."),
		ui.Section("change-levels", ui.H2("Levels of Change"), cards(changeLevels)),
		ui.Section("sdgs", ui.H2("Sustainable Development Goals"), cards(sdgGoals)),
	)
}

func programsView(programs []programCard) templ.Component {
	return ui.Group(
		pageHero("Our Programs", "Every program is designed with the communities it serves."),
		programCards(programs),
	)
}

func programView(detail programDetail, loc *message.Printer, lang mockdata.Language) templ.Component {
	p := detail.Program
	var stories templ.Component = ui.P("No stories published for this program yet.")
	if len(detail.Stories) > 0 {
		stories = storyCards(detail.Stories, lang)
	}
	return ui.Group(
		ui.Link(routepath.Programs, "back-link", "Back to Programs"),
		pageHero(detail.Name, detail.Description),
		ui.Section("program-figures",
			ui.Div("stats",
				ui.Stat("Beneficiaries", strconv.Itoa(detail.Beneficiaries)),
				ui.Stat("Budget", webi18n.Money(loc, p.Budget, string(mockdata.CurrencyUSD))),
				ui.Stat("Funds Utilized", webi18n.Money(loc, p.FundsUtilized, string(mockdata.CurrencyUSD))),
				ui.Stat("Funded", strconv.FormatInt(detail.FundedPercent, 10)+"%"),
			),
			ui.ProgressBar(detail.FundedPercent),
		),
		ui.Section("program-approach", ui.H2("Our Approach"), cards(graduationSteps)),
		ui.Section("program-stories", ui.H2("Stories"), stories),
		ui.Section("cta", ui.Link(routepath.DonateFor(p.ID), "button", "Support This Program")),
	)
}

func impactView(summary impactSummary, loc *message.Printer, lang mockdata.Language) templ.Component {
	stats := summary.Stats
	return ui.Group(
		pageHero("Our Impact", "Progress we measure every week with the women we serve."),
		ui.Section("impact-stats",
			ui.Div("stats",
				ui.Stat("Beneficiaries", webi18n.Count(loc, int64(stats.TotalBeneficiaries))),
				ui.Stat("Graduated", webi18n.Count(loc, int64(stats.GraduatedBeneficiaries))),
				ui.Stat("Donors", webi18n.Count(loc, int64(stats.TotalDonors))),
				ui.Stat("Raised", webi18n.Money(loc, stats.TotalRaised, string(mockdata.CurrencyUSD))),
				ui.Stat("Active Programs", webi18n.Count(loc, int64(stats.ActivePrograms))),
			),
		),
		ui.Section("distribution",
			ui.H2("Beneficiaries by Focus Area"),
			ui.El("ul", nil, ui.Each(stats.ProgramDistribution, func(share mockdata.ProgramShare) templ.Component {
				return ui.El("li", nil, ui.Textf("%s: %d", share.Category, share.Count))
			})),
		),
		ui.Section("stories", ui.H2("Impact Stories"), storyCards(summary.Stories, lang)),
	)
}

func resourcesView() templ.Component {
	return ui.Group(
		pageHero("Resources", "Reports, guides and research from our programs."),
		ui.Each(resourceGroups, func(group resourceGroup) templ.Component {
			return ui.Section("resource-group",
				ui.H2(group.Heading),
				ui.El("ul", nil, ui.Each(group.Items, func(item string) templ.Component {
					return ui.El("li", nil, ui.Text(item))
				})),
			)
		}),
	)
}

func getInvolvedView() templ.Component {
	return ui.Group(
		pageHero("Get Involved", "There are many ways to support our mission."),
		ui.Section("ways", ui.H2("Ways to Support Our Mission"), cards(waysToHelp)),
		ui.Section("cta",
			ui.Link(routepath.Donate, "button", "Donate"),
			ui.Link(routepath.Contact, "button secondary", "Volunteer With Us"),
		),
	)
}

// contactForm holds submitted contact values for re-rendering.
type contactForm struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func contactView(form contactForm, errMessage string) templ.Component {
	return ui.Group(
		pageHero("Contact Us", "We would love to hear from you."),
		ui.Section("contact-details", cards(contactDetails)),
		ui.Section("contact-form",
			ui.H2("Send Us a Message"),
			ui.FieldError(errMessage),
			ui.Form(routepath.Contact,
				ui.Field("Full Name *", "name", "text", form.Name, true),
				ui.Field("Email Address *", "email", "email", form.Email, true),
				ui.Field("Phone Number", "phone", "tel", form.Phone, false),
				ui.Field("Subject", "subject", "text", form.Subject, false),
				ui.TextArea("Your Message *", "message", form.Message, true),
				ui.Submit("Send Message", "", ""),
			),
		),
		ui.Section("contact-newsletter",
			ui.H2("Subscribe to Our Newsletter"),
			ui.Form(routepath.Newsletter,
				ui.Hidden("source", newsletterSourceContact),
				ui.Hidden("next", routepath.Contact),
				ui.Field("Email", "email", "email", "", true),
				ui.Submit("Subscribe", "", ""),
			),
		),
	)
}

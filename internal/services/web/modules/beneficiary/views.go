package beneficiary

import (
	"math"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"

	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	webi18n "github.com/lceo-rwanda/portal/internal/services/web/i18n"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
	ui "github.com/lceo-rwanda/portal/internal/services/web/templates"
)

const displayDate = "Jan 2, 2006"

func rwf(loc *message.Printer, amount decimal.Decimal) string {
	return webi18n.Money(loc, amount, string(mockdata.CurrencyRWF))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(displayDate)
}

func percent(n int) string { return strconv.Itoa(n) + "%" }

func detailRow(label, value string) templ.Component {
	return ui.Group(ui.El("dt", nil, ui.Text(label)), ui.El("dd", nil, ui.Text(value)))
}

func journeyView(j journeySummary, loc *message.Printer) templ.Component {
	b := j.Beneficiary
	return ui.Section("portal-page",
		ui.H1("My Progress Dashboard"),
		ui.P("Welcome back, "+b.FullName+"!"),
		ui.If(j.TrackingDue, ui.El("div", ui.A("class", "alert alert-warning", "role", "alert"),
			ui.H3("Weekly Tracking Due"),
			ui.P("You haven't submitted your tracking report for this week yet. Please submit it by Friday."),
			ui.Link(routepath.DashboardTracking, "button", "Submit weekly tracking"),
		)),
		ui.Div("stat-grid",
			ui.Div("stat",
				ui.Span("stat-value", rwf(loc, b.CurrentCapital)),
				ui.Span("stat-label", "Current Capital"),
				ui.Span("stat-note", "+"+rwf(loc, j.Growth)+" growth"),
			),
			ui.Div("stat",
				ui.Span("stat-value", percent(b.ProfileCompletion)),
				ui.Span("stat-label", "Profile Completion"),
				ui.ProgressBar(int64(b.ProfileCompletion)),
			),
			ui.Stat("Attendance", percent(j.Attendance)),
			ui.Stat("Next Tracking", formatDate(b.NextTrackingDate)),
		),
		ui.Div("card-grid",
			ui.Div("card",
				ui.H2("My Business"),
				ui.El("dl", ui.A("class", "details"),
					detailRow("Business Type", b.BusinessType),
					detailRow("Program", j.ProgramName),
					detailRow("Start Date", formatDate(b.EnrollmentDate)),
					detailRow("Location", b.Location.Sector+", "+b.Location.District),
					detailRow("Active Goals", strconv.Itoa(j.ActiveGoals)),
				),
			),
			ui.Div("card",
				ui.H2("Upcoming Tasks"),
				ui.El("ul", ui.A("class", "task-list"),
					task("Submit Weekly Financial Report", "Due: Friday 5:00 PM"),
					task("Mentor Check-in Meeting", "Monday 2:00 PM"),
					task("Complete Business Plan Module 3", "Due: Next Week"),
				),
			),
		),
	)
}

func task(title, due string) templ.Component {
	return ui.El("li", nil, ui.El("strong", nil, ui.Text(title)), ui.Span("muted", due))
}

var goalTypeLabels = map[mockdata.GoalType]string{
	mockdata.GoalFinancial: "Financial",
	mockdata.GoalBusiness:  "Business",
	mockdata.GoalEducation: "Education",
	mockdata.GoalPersonal:  "Personal",
	mockdata.GoalSkills:    "Skills",
}

func goalsView(board goalBoard, loc *message.Printer, now time.Time) templ.Component {
	return ui.Section("portal-page",
		ui.H1("My Goals"),
		ui.P("Track your progress toward your personal and business goals"),
		ui.Div("stat-grid",
			ui.Stat("Total Goals", strconv.Itoa(board.Total)),
			ui.Stat("In Progress", strconv.Itoa(len(board.Active))),
			ui.Stat("Achieved", strconv.Itoa(len(board.Achieved))),
			ui.Stat("Success Rate", percent(board.SuccessRate)),
		),
		goalSection("Active Goals", board.Active, loc, now, true),
		goalSection("Achieved Goals", board.Achieved, loc, now, false),
		goalSection("Not Started", board.NotStarted, loc, now, false),
	)
}

func goalSection(title string, goals []mockdata.Goal, loc *message.Printer, now time.Time, showProgress bool) templ.Component {
	if len(goals) == 0 {
		return nil
	}
	return ui.Div("goal-section",
		ui.H2(title),
		ui.Each(goals, func(g mockdata.Goal) templ.Component {
			return ui.El("article", ui.A("class", "card goal", "data-goal", g.ID, "data-status", string(g.Status)),
				ui.Span("badge", goalTypeLabels[g.Type]),
				ui.H3(g.Description),
				ui.If(showProgress, ui.Group(
					ui.ProgressBar(g.ProgressPercent()),
					ui.P(rwf(loc, g.CurrentProgress)+" of "+rwf(loc, g.TargetAmount)),
					ui.P(daysLeft(g.TargetDate, now)),
				)),
				ui.P("Target date: "+formatDate(g.TargetDate)),
			)
		}),
	)
}

func daysLeft(target, now time.Time) string {
	days := int(math.Ceil(target.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return "Past target date"
	case days == 1:
		return "1 day left"
	default:
		return strconv.Itoa(days) + " days left"
	}
}

var attendanceOptions = []ui.Option{
	{Value: string(mockdata.AttendancePresent), Label: "Present"},
	{Value: string(mockdata.AttendanceLate), Label: "Late"},
	{Value: string(mockdata.AttendanceAbsent), Label: "Absent"},
}

var taskStatusOptions = []ui.Option{
	{Value: "", Label: "Select status"},
	{Value: string(mockdata.TaskCompleted), Label: "Completed"},
	{Value: string(mockdata.TaskInProgress), Label: "In progress"},
	{Value: string(mockdata.TaskNotDone), Label: "Not done"},
}

func optionLabel(options []ui.Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return "-"
}

func trackingView(b mockdata.Beneficiary, form trackingForm, entries []mockdata.WeeklyTracking, stats trackingStats, loc *message.Printer) templ.Component {
	return ui.Section("portal-page",
		ui.H1("Weekly Tracking"),
		ui.P("Submit your weekly business progress and view your history"),
		ui.Div("stat-grid",
			ui.Stat("Current Capital", rwf(loc, b.CurrentCapital)),
			ui.Stat("Avg Weekly Income", rwf(loc, stats.AverageIncome)),
			ui.Stat("Total Submissions", strconv.Itoa(stats.Submissions)),
			ui.Stat("Attendance Rate", percent(stats.Attendance)),
		),
		ui.Div("card",
			ui.H2("Submit Weekly Tracking"),
			ui.Form(routepath.DashboardTracking,
				ui.Field("Week Ending", "weekEnding", "date", form.WeekEnding, false),
				ui.Select("Attendance Status", "attendance", attendanceOptions, form.Attendance),
				ui.Field("Income This Week (RWF)", "income", "number", form.Income, false),
				ui.Field("Expenses This Week (RWF)", "expenses", "number", form.Expenses, false),
				ui.Field("Current Capital (RWF)", "savings", "number", form.Savings, false),
				ui.Field("Task Given Last Week", "taskGiven", "text", form.TaskGiven, false),
				ui.Select("Task Completion Status", "taskStatus", taskStatusOptions, form.TaskStatus),
				ui.TextArea("Challenges Faced This Week", "challenges", form.Challenges, false),
				ui.TextArea("Additional Notes", "notes", form.Notes, false),
				ui.Submit("Submit Weekly Tracking", "", ""),
			),
		),
		ui.Div("card",
			ui.H2("Tracking History"),
			historyTable(entries, stats, loc),
		),
	)
}

func historyTable(entries []mockdata.WeeklyTracking, stats trackingStats, loc *message.Printer) templ.Component {
	if len(entries) == 0 {
		return ui.P("No tracking submitted yet.")
	}
	cell := func(s string) templ.Component { return ui.El("td", nil, ui.Text(s)) }
	head := func(s string) templ.Component { return ui.El("th", nil, ui.Text(s)) }
	return ui.El("table", ui.A("class", "table tracking-history"),
		ui.El("thead", nil, ui.El("tr", nil,
			head("Week Ending"), head("Attendance"), head("Income"), head("Expenses"), head("Capital"), head("Task"),
		)),
		ui.El("tbody", nil, ui.Each(entries, func(e mockdata.WeeklyTracking) templ.Component {
			return ui.El("tr", ui.A("data-tracking", e.ID),
				cell(formatDate(e.WeekEnding)),
				cell(optionLabel(attendanceOptions, string(e.Attendance))),
				cell(rwf(loc, e.Income)),
				cell(rwf(loc, e.Expenses)),
				cell(rwf(loc, e.CurrentCapital)),
				cell(optionLabel(taskStatusOptions, string(e.TaskStatus))),
			)
		})),
		ui.El("tfoot", nil, ui.El("tr", nil,
			cell("Totals"), cell(""),
			ui.El("td", ui.A("data-total", "income"), ui.Text(rwf(loc, stats.TotalIncome))),
			ui.El("td", ui.A("data-total", "expenses"), ui.Text(rwf(loc, stats.TotalExpenses))),
			cell(""), cell(""),
		)),
	)
}

type material struct {
	Title       string
	Kind        string
	Category    string
	Length      string
	Description string
}

var materials = []material{
	{Title: "Business Planning Fundamentals", Kind: "PDF", Category: "Business", Length: "2.5 MB", Description: "Learn how to create a comprehensive business plan"},
	{Title: "Financial Management for Small Business", Kind: "Video", Category: "Finance", Length: "45 min", Description: "Master basic accounting and financial tracking"},
	{Title: "Marketing Your Products", Kind: "PDF", Category: "Marketing", Length: "1.8 MB", Description: "Effective strategies to reach your customers"},
	{Title: "Customer Service Excellence", Kind: "Video", Category: "Skills", Length: "30 min", Description: "Build lasting relationships with customers"},
	{Title: "Leadership & Personal Development", Kind: "PDF", Category: "Personal", Length: "3.2 MB", Description: "Develop your leadership and communication skills"},
	{Title: "Mental Health & Resilience", Kind: "Video", Category: "Health", Length: "25 min", Description: "Building mental strength and wellbeing"},
}

type document struct {
	Name     string
	Kind     string
	Uploaded string
	Status   string
}

var documents = []document{
	{Name: "Program Agreement", Kind: "PDF", Uploaded: "2024-01-15", Status: "verified"},
	{Name: "ID Card Copy", Kind: "Image", Uploaded: "2024-01-15", Status: "verified"},
	{Name: "Business License", Kind: "PDF", Uploaded: "2024-02-10", Status: "pending"},
}

type faq struct {
	Question string
	Answer   string
}

var faqs = []faq{
	{Question: "How do I submit my weekly tracking?", Answer: "Go to the Weekly Tracking page and fill out the form with your business activities. Submit it before the deadline each week."},
	{Question: "What should I do if I miss a training session?", Answer: "Contact your program coordinator immediately. They will help you catch up with the missed content."},
	{Question: "How can I access my capital?", Answer: "Capital disbursements are made according to your program schedule. Contact your coordinator for specific details."},
	{Question: "Can I change my business type?", Answer: "Yes, but this requires approval from your program coordinator. Please contact them to request the change."},
}

func resourcesView() templ.Component {
	return ui.Section("portal-page",
		ui.H1("Resources & Support"),
		ui.P("Access training materials, documents, and get help when you need it"),
		ui.Div("card",
			ui.H2("Training Materials"),
			ui.Div("card-grid", ui.Each(materials, func(m material) templ.Component {
				return ui.El("article", ui.A("class", "card material"),
					ui.Span("badge", m.Category),
					ui.H3(m.Title),
					ui.P(m.Description),
					ui.Span("muted", m.Kind+" · "+m.Length),
				)
			})),
		),
		ui.Div("card",
			ui.H2("My Documents"),
			ui.El("ul", ui.A("class", "document-list"), ui.Each(documents, func(d document) templ.Component {
				return ui.El("li", ui.A("data-status", d.Status),
					ui.El("strong", nil, ui.Text(d.Name)),
					ui.Span("muted", d.Kind+" · uploaded "+d.Uploaded),
					ui.Span("badge badge-"+d.Status, d.Status),
				)
			})),
		),
		ui.Div("card",
			ui.H2("Program Coordinator"),
			ui.P("Jeanne Uwimana"),
			ui.P("+250 788 555 010 · coordinator@lceo.org"),
			ui.H3("Emergency Contacts"),
			ui.P("LCEO Office: +250 788 555 000"),
			ui.P("Health Hotline: 114"),
		),
		ui.Div("card",
			ui.H2("Frequently Asked Questions"),
			ui.Each(faqs, func(f faq) templ.Component {
				return ui.Div("faq", ui.H3(f.Question), ui.P(f.Answer))
			}),
		),
	)
}
